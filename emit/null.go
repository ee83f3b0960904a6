package emit

import "github.com/tlang-format/tdoc/go-tdoc/parse"

// NullEmitter produces a single empty placeholder per callback. It is
// used to run the parser for its side effects only, i.e. to syntax
// check a document without materializing output.
type NullEmitter struct{}

var _ parse.Emitter = (*NullEmitter)(nil)

func NewNull() *NullEmitter {
	return &NullEmitter{}
}

func (NullEmitter) SetOptions(opts *parse.Options) {}

func (NullEmitter) OnDocumentStart(opts *parse.Options) []any { return []any{nil} }
func (NullEmitter) OnDocumentEnd() []any                      { return []any{nil} }
func (NullEmitter) OnNodeStart(ns, name, parser string) []any { return []any{nil} }
func (NullEmitter) OnNodeContentStart(ns, name, parser string) []any {
	return []any{nil}
}
func (NullEmitter) OnNodeEnd(ns, name, parser string) []any      { return []any{nil} }
func (NullEmitter) OnAttribute(ns, name, value string) []any     { return []any{nil} }
func (NullEmitter) OnContentLine(text string) []any              { return []any{nil} }
func (NullEmitter) OnRawContentLine(text string) []any           { return []any{nil} }
func (NullEmitter) OnCommentLine(text string, indent int) []any  { return []any{nil} }
