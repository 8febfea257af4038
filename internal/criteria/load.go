package criteria

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads criteria from a YAML, TOML or JSON file, chosen by extension.
// Fields missing from the file keep their Defaults values.
func Load(path string) (Criteria, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Criteria{}, fmt.Errorf("failed to read criteria: %w", err)
	}

	c, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return Criteria{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode parses criteria in the format named by ext (".yaml", ".yml",
// ".toml" or ".json").
func Decode(data []byte, ext string) (Criteria, error) {
	c := Defaults()

	var err error
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &c)
	case ".toml":
		_, err = toml.Decode(string(data), &c)
	case ".json":
		err = json.Unmarshal(data, &c)
	default:
		return Criteria{}, fmt.Errorf("unsupported criteria format %q (supported: .yaml, .yml, .toml, .json)", ext)
	}
	if err != nil {
		return Criteria{}, fmt.Errorf("invalid criteria: %w", err)
	}

	return c, nil
}
