package token

import "strings"

// Unquote decodes an attribute value. The surrounding quote characters
// are stripped when they match, and the corresponding escaped quote is
// unescaped. Mismatched quote characters at the two ends leave the value
// untouched: that is a defined leniency of the grammar, not an error.
func Unquote(v string) string {
	if len(v) < 2 {
		return v
	}
	s, e := v[0], v[len(v)-1]
	if s != e {
		return v
	}
	switch s {
	case '"':
		return strings.ReplaceAll(v[1:len(v)-1], `\"`, `"`)
	case '\'':
		return strings.ReplaceAll(v[1:len(v)-1], `\'`, `'`)
	}
	return v
}

// NeedsQuote reports whether a value cannot be re-serialized bare.
func NeedsQuote(v string) bool {
	return strings.ContainsAny(v, `" `)
}

// Quote re-serializes an attribute value. Values containing a space or a
// double quote are double quoted with internal double quotes escaped;
// anything else is emitted bare.
func Quote(v string) string {
	if !NeedsQuote(v) {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `\"`) + `"`
}
