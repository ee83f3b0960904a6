package emit

import (
	"strings"

	"github.com/tlang-format/tdoc/go-tdoc/parse"
)

// xmlEscaper escapes the five XML special characters in text content
// and attribute values.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// XMLEmitter serializes the event stream as XML text. It tracks whether
// the most recently opened tag is still unclosed (no `>` written yet)
// and whether it has had any child content, deferring the `>` until the
// first nested thing arrives and emitting a self-closing form for empty
// nodes. A node in the reserved `pi` namespace is rendered as a
// processing instruction.
type XMLEmitter struct {
	opts   *parse.Options
	colors *Colors

	closed bool
	empty  bool
}

var _ parse.Emitter = (*XMLEmitter)(nil)

// XMLOption configures an XMLEmitter.
type XMLOption func(*XMLEmitter)

// XMLColors enables terminal colorization of the XML output.
func XMLColors(c *Colors) XMLOption {
	return func(e *XMLEmitter) { e.colors = c }
}

func NewXML(opts ...XMLOption) *XMLEmitter {
	e := &XMLEmitter{closed: true, empty: true}
	for _, f := range opts {
		f(e)
	}
	return e
}

func (e *XMLEmitter) SetOptions(opts *parse.Options) {
	e.opts = opts
}

func (e *XMLEmitter) OnDocumentStart(opts *parse.Options) []any {
	e.opts = opts
	e.closed = true
	e.empty = true
	return []any{e.color(PIColor, "<?xml version=\"1.0\"?>") + "\n"}
}

func (e *XMLEmitter) OnDocumentEnd() []any {
	return nil
}

func (e *XMLEmitter) OnNodeStart(ns, name, parser string) []any {
	var out []any
	if !e.closed {
		out = append(out, ">")
	}
	if ns == "pi" {
		out = append(out, e.color(PIColor, "<?"+name))
	} else {
		out = append(out, e.color(TagColor, "<"+qname(ns, name)))
	}
	e.empty = true
	e.closed = false
	return out
}

func (e *XMLEmitter) OnNodeContentStart(ns, name, parser string) []any {
	return nil
}

func (e *XMLEmitter) OnNodeEnd(ns, name, parser string) []any {
	var out []any
	switch {
	case ns == "pi":
		out = append(out, e.color(PIColor, "?>")+"\n")
	case e.empty:
		out = append(out, e.color(TagColor, " />"))
	default:
		out = append(out, e.color(TagColor, "</"+qname(ns, name)+">"))
	}
	e.empty = false
	e.closed = true
	return out
}

func (e *XMLEmitter) OnAttribute(ns, name, value string) []any {
	attr := " " + e.color(AttrColor, qname(ns, name)) + "=" +
		e.color(ValueColor, `"`+xmlEscaper.Replace(value)+`"`)
	return []any{attr}
}

func (e *XMLEmitter) OnContentLine(text string) []any {
	var out []any
	if !e.closed {
		out = append(out, ">")
		e.closed = true
	} else {
		out = append(out, "\n")
	}
	e.empty = false
	return append(out, e.color(TextColor, xmlEscaper.Replace(text)))
}

func (e *XMLEmitter) OnRawContentLine(text string) []any {
	return e.OnContentLine(text)
}

func (e *XMLEmitter) OnCommentLine(text string, indent int) []any {
	var out []any
	if !e.closed {
		out = append(out, ">")
		e.closed = true
	}
	e.empty = false
	if e.opts != nil && e.opts.Comments {
		out = append(out, e.color(CommentColor, "<!-- "+text+" -->")+"\n")
	}
	return out
}

func (e *XMLEmitter) color(attr ColorAttr, s string) string {
	if e.colors == nil {
		return s
	}
	return e.colors.Color(attr, s)
}

func qname(ns, name string) string {
	if ns == "" {
		return name
	}
	return ns + ":" + name
}
