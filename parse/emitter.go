package parse

// Emitter is the sink for parser directives. Each callback returns the
// values the emitter produces for that directive: output text fragments
// for serializing emitters, event records for the event emitter,
// placeholders for the null emitter, or diagnostic *Error values. The
// parser never inspects these values; it forwards them in call order.
//
// An empty namespace argument means the node or attribute is not
// namespaced; an empty parser argument means no sub-parser hint.
type Emitter interface {
	// SetOptions hands the run configuration to the emitter before the
	// document starts.
	SetOptions(opts *Options)

	OnDocumentStart(opts *Options) []any
	OnDocumentEnd() []any

	OnNodeStart(ns, name, parser string) []any
	OnNodeContentStart(ns, name, parser string) []any
	OnNodeEnd(ns, name, parser string) []any

	OnAttribute(ns, name, value string) []any
	OnContentLine(text string) []any
	OnRawContentLine(text string) []any
	OnCommentLine(text string, indent int) []any
}
