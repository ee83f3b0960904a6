// Package token defines the lexical layer of the TDoc notation.
//
// TDoc is line oriented: after indentation is stripped, a line is a node
// line, an attribute line, a comment line, or content. This package holds
// the grammar for the line-level tokens (names, quoted and bare values,
// inline attributes, node lines) and the quoting rules for attribute
// values. It is pure data plus matching; all parsing state lives in the
// parse package.
//
// # Related Packages
//
//   - github.com/tlang-format/tdoc/go-tdoc/parse - line-by-line parser
//   - github.com/tlang-format/tdoc/go-tdoc/emit - output emitters
package token
