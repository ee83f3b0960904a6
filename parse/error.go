package parse

import "fmt"

// Error is a diagnostic value that can be relayed through the emitter
// output stream instead of a structural event. Sinks must pass it
// through without aborting their write loop.
type Error struct {
	Line    int
	Col     int
	Message string
	Length  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Col, e.Message)
}
