// Package parse implements the TDoc line-by-line parser.
//
// The parser is a single-pass state machine fed one line at a time. It
// tracks nesting depth from indentation alone, classifies each line
// (node, attribute, comment, explicit or implicit content) with strict
// precedence, and forwards structural directives to an Emitter. Regions
// declared with a `|hint` suffix are handed to a sub-parser and passed
// through as raw text.
//
// # Usage
//
//	p := parse.New(parse.WithComments(true))
//	out, err := p.Parse(lines, emitter)
//
// A Parser instance handles one document at a time; sequential reuse
// after a full Start/Feed*/End cycle is valid.
//
// # Related Packages
//
//   - github.com/tlang-format/tdoc/go-tdoc/token - line-level grammar
//   - github.com/tlang-format/tdoc/go-tdoc/emit - output emitters
//   - github.com/tlang-format/tdoc/go-tdoc/stream - pull-driven events
package parse
