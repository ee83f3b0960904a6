package stream

import "github.com/tlang-format/tdoc/go-tdoc/parse"

// EventEmitter renders each parser directive as one *Event value.
type EventEmitter struct {
	opts *parse.Options
}

var _ parse.Emitter = (*EventEmitter)(nil)

func NewEventEmitter() *EventEmitter {
	return &EventEmitter{}
}

func (e *EventEmitter) SetOptions(opts *parse.Options) {
	e.opts = opts
}

func (e *EventEmitter) OnDocumentStart(opts *parse.Options) []any {
	e.opts = opts
	return []any{&Event{Type: EventDocumentStart}}
}

func (e *EventEmitter) OnDocumentEnd() []any {
	return []any{&Event{Type: EventDocumentEnd}}
}

func (e *EventEmitter) OnNodeStart(ns, name, parser string) []any {
	return []any{&Event{Type: EventNodeStart, NS: ns, Name: name, Parser: parser}}
}

func (e *EventEmitter) OnNodeContentStart(ns, name, parser string) []any {
	return []any{&Event{Type: EventNodeContentStart, NS: ns, Name: name, Parser: parser}}
}

func (e *EventEmitter) OnNodeEnd(ns, name, parser string) []any {
	return []any{&Event{Type: EventNodeEnd, NS: ns, Name: name, Parser: parser}}
}

func (e *EventEmitter) OnAttribute(ns, name, value string) []any {
	return []any{&Event{Type: EventAttribute, NS: ns, Name: name, Value: value}}
}

func (e *EventEmitter) OnContentLine(text string) []any {
	return []any{&Event{Type: EventContent, Text: text}}
}

func (e *EventEmitter) OnRawContentLine(text string) []any {
	return []any{&Event{Type: EventRawContent, Text: text}}
}

func (e *EventEmitter) OnCommentLine(text string, indent int) []any {
	return []any{&Event{Type: EventComment, Text: text, Indent: indent}}
}
