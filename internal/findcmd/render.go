package findcmd

import "strings"

// Option names the criterion a clause was rendered from.
type Option string

const (
	OptionDirectory   Option = "directory"
	OptionDepth       Option = "depth"
	OptionType        Option = "type"
	OptionName        Option = "name"
	OptionSize        Option = "size"
	OptionOwners      Option = "owners"
	OptionGroups      Option = "groups"
	OptionPermissions Option = "permissions"
	OptionTime        Option = "time"
	OptionAction      Option = "action"
)

// Clause is one rendered segment of the command line.
type Clause struct {
	Option Option
	Text   string
}

const (
	not     = `\!`
	openOr  = `\(`
	closeOr = `\)`
)

// Clauses returns the rendered clauses in command-line order. Global
// options such as the depth limits come before any test.
func (b *Builder) Clauses() []Clause {
	var out []Clause
	add := func(opt Option, texts ...string) {
		for _, t := range texts {
			if t != "" {
				out = append(out, Clause{Option: opt, Text: t})
			}
		}
	}

	if b.directory != "" {
		add(OptionDirectory, Quote(b.directory))
	}
	add(OptionDepth, b.depthClauses()...)
	if b.fileType != "" {
		add(OptionType, "-type "+Quote(string(b.fileType)))
	}
	add(OptionName, b.nameClause())
	if f := b.SizeFilter(); f != nil {
		add(OptionSize, f.clauses()...)
	}
	add(OptionOwners, ownerClause(b.owners, "-user", "-nouser"))
	add(OptionGroups, ownerClause(b.groups, "-group", "-nogroup"))
	add(OptionPermissions, b.permClause())
	if f := b.TimeFilter(); f != nil {
		add(OptionTime, f.clauses()...)
	}
	add(OptionAction, b.actionClauses()...)

	return out
}

func (b *Builder) depthClauses() []string {
	if b.depth == nil {
		return nil
	}
	var out []string
	if b.depth.Min != nil {
		out = append(out, "-mindepth "+formatNumber(float64(*b.depth.Min)))
	}
	if b.depth.Max != nil {
		out = append(out, "-maxdepth "+formatNumber(float64(*b.depth.Max)))
	}
	return out
}

func (b *Builder) nameClause() string {
	p := b.namePattern
	if p == nil {
		return ""
	}

	flag := "-name "
	if p.IgnoreCase {
		flag = "-iname "
	}

	alts := Alternatives(p.Pattern)
	tests := make([]string, len(alts))
	for i, alt := range alts {
		tests[i] = flag + Quote(alt)
	}

	clause := tests[0]
	if len(tests) > 1 {
		clause = group(tests)
	}
	if p.Inverse {
		clause = not + " " + clause
	}
	return clause
}

func ownerClause(o *OwnerSpec, flag, sentinel string) string {
	if o == nil {
		return ""
	}

	var tests []string
	for _, name := range strings.Split(o.Values, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		tests = append(tests, flag+" "+Quote(name))
	}
	if o.IncludeInvalid {
		tests = append(tests, sentinel)
	}

	if len(tests) <= 1 {
		return strings.Join(tests, "")
	}
	return group(tests)
}

// group joins tests into an OR-group. The parentheses are escaped because
// they belong to find's expression syntax, not the shell's.
func group(tests []string) string {
	return openOr + " " + strings.Join(tests, " -o ") + " " + closeOr
}

// permForms maps every PermMode to the text placed before "-perm" and the
// sign placed before the permission bits.
var permForms = map[PermMode]struct{ prefix, sign string }{
	PermNormal:  {"", ""},
	PermNot:     {not + " ", ""},
	PermAtLeast: {"", "-"},
	PermCommon:  {"", "/"},
}

func (b *Builder) permClause() string {
	if b.perms == nil {
		return ""
	}
	mode := b.perms.Mode
	if mode == "" {
		mode = PermNormal
	}
	form, ok := permForms[mode]
	if !ok {
		return ""
	}
	return form.prefix + "-perm " + form.sign + Quote(b.perms.Perms)
}

func (b *Builder) actionClauses() []string {
	a := b.action
	if a == nil {
		return nil
	}

	var out []string
	// find prints by default, but only as long as no other action is given.
	if a.Print && (a.Print0 || a.Delete || a.Exec) {
		out = append(out, "-print")
	}
	if a.Print0 {
		out = append(out, "-print0")
	}
	if a.Delete {
		out = append(out, "-delete")
	}
	if a.Exec && a.Command != "" {
		flag := "-exec"
		if a.Confirm {
			flag = "-ok"
		}
		out = append(out, flag+" "+a.Command+` \;`)
	}
	return out
}
