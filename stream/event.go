package stream

import "fmt"

// Event is one structural event produced by parsing. Events correspond
// one-to-one to the parse.Emitter callbacks.
type Event struct {
	Type EventType `json:"type"`

	// NS, Name and Parser are set on node events; NS is also set on
	// attribute events.
	NS     string `json:"ns,omitempty"`
	Name   string `json:"name,omitempty"`
	Parser string `json:"parser,omitempty"`

	// Value is set on attribute events.
	Value string `json:"value,omitempty"`

	// Text is set on content, raw content and comment events.
	Text string `json:"text,omitempty"`

	// Indent is the measured depth of a comment event.
	Indent int `json:"indent,omitempty"`
}

func (e *Event) String() string {
	switch e.Type {
	case EventNodeStart, EventNodeContentStart, EventNodeEnd:
		if e.NS != "" {
			return fmt.Sprintf("%s %s:%s", e.Type, e.NS, e.Name)
		}
		return fmt.Sprintf("%s %s", e.Type, e.Name)
	case EventAttribute:
		if e.NS != "" {
			return fmt.Sprintf("%s %s:%s=%q", e.Type, e.NS, e.Name, e.Value)
		}
		return fmt.Sprintf("%s %s=%q", e.Type, e.Name, e.Value)
	case EventContent, EventRawContent, EventComment:
		return fmt.Sprintf("%s %q", e.Type, e.Text)
	default:
		return e.Type.String()
	}
}

// EventType represents the type of a structural event.
type EventType int

const (
	EventDocumentStart EventType = iota
	EventDocumentEnd
	EventNodeStart
	EventNodeContentStart
	EventNodeEnd
	EventAttribute
	EventContent
	EventRawContent
	EventComment
)

func (t EventType) String() string {
	switch t {
	case EventDocumentStart:
		return "DocumentStart"
	case EventDocumentEnd:
		return "DocumentEnd"
	case EventNodeStart:
		return "NodeStart"
	case EventNodeContentStart:
		return "NodeContentStart"
	case EventNodeEnd:
		return "NodeEnd"
	case EventAttribute:
		return "Attribute"
	case EventContent:
		return "Content"
	case EventRawContent:
		return "RawContent"
	case EventComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *EventType) UnmarshalText(d []byte) error {
	k := string(d)
	pt, ok := map[string]EventType{
		"DocumentStart":    EventDocumentStart,
		"DocumentEnd":      EventDocumentEnd,
		"NodeStart":        EventNodeStart,
		"NodeContentStart": EventNodeContentStart,
		"NodeEnd":          EventNodeEnd,
		"Attribute":        EventAttribute,
		"Content":          EventContent,
		"RawContent":       EventRawContent,
		"Comment":          EventComment,
	}[k]
	if ok {
		*t = pt
		return nil
	}
	return fmt.Errorf("unknown type %q", k)
}
