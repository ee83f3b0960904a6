package token

import "regexp"

// Lexical building blocks of the TDoc grammar. A name is a run of
// letters, digits, hyphens and underscores. A value is single quoted,
// double quoted (the surrounding quote can be embedded with a backslash
// escape) or a bare run without whitespace.
const (
	Name  = `[A-Za-z0-9\-_]+`
	StrSQ = `'(\\'|[^'])*'`
	StrDQ = `"(\\"|[^"])*"`

	Value      = `(` + StrSQ + `|` + StrDQ + `|[^ \t\r\n]+)`
	InlineAttr = `(` + Name + `:)?` + Name + `=` + Value
)

var (
	// reAttr matches one inline attribute at the start of its input,
	// allowing leading blanks. The value group is optional: an attribute
	// with a bare `=` decodes to the empty string.
	reAttr = regexp.MustCompile(`^[ \t]*((?P<ns>` + Name + `):)?(?P<name>` + Name + `)=(?P<value>` + Value + `)?`)

	// reComment matches a comment line: tab indentation then `#`.
	reComment = regexp.MustCompile(`^\t*#.*`)

	// reNode matches a full node line:
	//
	//	NS:NAME#ID|PARSER ATTR=VALUE…: CONTENT
	//
	// Anchored to the whole line; a partial match is not a node line.
	reNode = regexp.MustCompile(`^((?P<ns>` + Name + `):)?(?P<name>` + Name + `)` +
		`(#(?P<id>` + Name + `))?` +
		`(\|(?P<parser>` + Name + `))?` +
		`(?P<attrs>([ ]+` + InlineAttr + `)*)?` +
		`(: (?P<content>.*))?$`)

	nodeGroups = groupIndex(reNode)
	attrGroups = groupIndex(reAttr)
)

func groupIndex(re *regexp.Regexp) map[string]int {
	m := make(map[string]int)
	for i, name := range re.SubexpNames() {
		if name != "" {
			m[name] = i
		}
	}
	return m
}

// Attribute is one decoded attribute. An empty NS means the attribute is
// not namespaced.
type Attribute struct {
	NS    string
	Name  string
	Value string
}

// Node is the decoded form of one node line.
type Node struct {
	NS      string
	Name    string
	Parser  string
	Attrs   []Attribute
	Content string
	// HasContent distinguishes a node line ending in `: ` (empty inline
	// content) from one with no inline content at all.
	HasContent bool
}

// IsComment reports whether the de-indented line is a comment line.
func IsComment(line string) bool {
	return reComment.MatchString(line)
}

// IsAttribute reports whether the de-indented line is an attribute line.
func IsAttribute(line string) bool {
	return len(line) > 0 && line[0] == '@'
}

// IsExplicitContent reports whether the de-indented line is an explicit
// content line.
func IsExplicitContent(line string) bool {
	return len(line) > 0 && line[0] == ':'
}

// MatchNode decodes a node line. It returns nil if the line does not
// match the node grammar. The `#ID` shorthand becomes an attribute named
// `id` in first position; if an explicit unnamespaced `id=` attribute is
// also present, the shorthand value replaces it in place rather than
// being appended.
func MatchNode(line string) *Node {
	m := reNode.FindStringSubmatchIndex(line)
	if m == nil {
		return nil
	}
	get := func(name string) string {
		i := 2 * nodeGroups[name]
		if m[i] < 0 {
			return ""
		}
		return line[m[i]:m[i+1]]
	}
	n := &Node{
		NS:     get("ns"),
		Name:   get("name"),
		Parser: get("parser"),
		Attrs:  ScanAttributes(get("attrs")),
	}
	if id := get("id"); id != "" {
		attrs := make([]Attribute, 1, len(n.Attrs)+1)
		attrs[0] = Attribute{Name: "id", Value: id}
		for _, a := range n.Attrs {
			if a.NS == "" && a.Name == "id" {
				continue
			}
			attrs = append(attrs, a)
		}
		n.Attrs = attrs
	}
	if m[2*nodeGroups["content"]] >= 0 {
		n.Content = get("content")
		n.HasContent = true
	}
	return n
}

// ScanAttributes decodes a run of inline `NAME=VALUE` attributes. Quoted
// values are unquoted; an attribute whose value fails to match the value
// grammar entirely is skipped rather than reported.
func ScanAttributes(s string) []Attribute {
	for len(s) > 0 {
		switch s[len(s)-1] {
		case '\n', ' ', '\t':
			s = s[:len(s)-1]
			continue
		}
		break
	}
	var attrs []Attribute
	o := 0
	for o < len(s) {
		m := reAttr.FindStringSubmatchIndex(s[o:])
		if m == nil {
			break
		}
		get := func(name string) string {
			i := 2 * attrGroups[name]
			if m[i] < 0 {
				return ""
			}
			return s[o+m[i] : o+m[i+1]]
		}
		attrs = append(attrs, Attribute{
			NS:    get("ns"),
			Name:  get("name"),
			Value: Unquote(get("value")),
		})
		o += m[1]
	}
	return attrs
}
