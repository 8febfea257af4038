package criteria

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Perms holds permission bits as written, e.g. "644" or "u=rwx,g=rx".
// Criteria files may give octal bits as a bare number; the number's
// decimal digits are kept as the text.
type Perms string

// UnmarshalJSON accepts a JSON string or number.
func (p *Perms) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Perms(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("perms must be a string or number: %w", err)
	}
	*p = Perms(n.String())
	return nil
}

// UnmarshalTOML accepts a TOML string or integer.
func (p *Perms) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case string:
		*p = Perms(v)
	case int64:
		*p = Perms(strconv.FormatInt(v, 10))
	default:
		return fmt.Errorf("perms must be a string or integer, got %T", v)
	}
	return nil
}

// UnmarshalYAML accepts any scalar and keeps its text, so 0644 stays 0644.
func (p *Perms) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("perms must be a scalar (line %d)", node.Line)
	}
	*p = Perms(node.Value)
	return nil
}
