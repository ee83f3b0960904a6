package tdoc

import (
	"strings"

	"github.com/tlang-format/tdoc/go-tdoc/emit"
	"github.com/tlang-format/tdoc/go-tdoc/parse"
)

// Check syntax-checks a document without materializing output. It
// returns nil when the document parses, or a diagnostic carrying the
// line of the first structural violation.
func Check(text string, opts ...parse.Option) *parse.Error {
	p := parse.New(opts...)
	em := emit.NewNull()
	p.Start(em)
	for _, line := range strings.Split(text, "\n") {
		if _, err := p.Feed(line, em); err != nil {
			return &parse.Error{
				Line:    p.Line(),
				Message: err.Error(),
			}
		}
	}
	p.End(em)
	return nil
}
