package emit

import (
	"strings"

	"github.com/tlang-format/tdoc/go-tdoc/parse"
	"github.com/tlang-format/tdoc/go-tdoc/token"
)

// TDocEmitter re-serializes the event stream as normalized canonical
// notation. It keeps a running indent (one tab per open node) and an
// attribute position counter, which is used to apply the `#id`
// shorthand when the first attribute of a node is an unnamespaced id
// whose value needs no quoting.
type TDocEmitter struct {
	opts      *parse.Options
	indent    string
	attrIndex int
}

var _ parse.Emitter = (*TDocEmitter)(nil)

func NewTDoc() *TDocEmitter {
	return &TDocEmitter{}
}

func (e *TDocEmitter) SetOptions(opts *parse.Options) {
	e.opts = opts
}

func (e *TDocEmitter) OnDocumentStart(opts *parse.Options) []any {
	e.opts = opts
	e.indent = ""
	e.attrIndex = 0
	return nil
}

func (e *TDocEmitter) OnDocumentEnd() []any {
	return nil
}

func (e *TDocEmitter) OnNodeStart(ns, name, parser string) []any {
	line := e.indent + qname(ns, name)
	if parser != "" {
		line += "|" + parser
	}
	e.indent += "\t"
	e.attrIndex = 0
	return []any{line}
}

func (e *TDocEmitter) OnNodeContentStart(ns, name, parser string) []any {
	return []any{"\n"}
}

func (e *TDocEmitter) OnNodeEnd(ns, name, parser string) []any {
	e.indent = strings.TrimSuffix(e.indent, "\t")
	return nil
}

func (e *TDocEmitter) OnAttribute(ns, name, value string) []any {
	text := token.Quote(value)
	defer func() { e.attrIndex++ }()
	if e.attrIndex == 0 && ns == "" && name == "id" && text != "" && text[0] != '"' {
		return []any{"#" + text}
	}
	attr := " " + qname(ns, name)
	if text != "" {
		attr += "=" + text
	}
	return []any{attr}
}

// Content lines are written in their explicit `:`-prefixed form: a bare
// content word would otherwise re-parse as a node, and re-parsing the
// normalized output must reproduce the same events.
func (e *TDocEmitter) OnContentLine(text string) []any {
	return []any{e.indent + ":" + text + "\n"}
}

// Raw content is verbatim by definition and stays bare; the sub-parser
// region it re-parses into never classifies its lines.
func (e *TDocEmitter) OnRawContentLine(text string) []any {
	return []any{e.indent + text + "\n"}
}

func (e *TDocEmitter) OnCommentLine(text string, indent int) []any {
	return []any{strings.Repeat("\t", indent) + "#" + text + "\n"}
}
