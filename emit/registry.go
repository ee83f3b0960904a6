package emit

import (
	"fmt"

	"github.com/tlang-format/tdoc/go-tdoc/parse"
	"github.com/tlang-format/tdoc/go-tdoc/stream"
)

// formats is the fixed ordered mapping of output-format names to
// emitter constructors; the first entry is the default.
var formats = []struct {
	name string
	mk   func() parse.Emitter
}{
	{"xml", func() parse.Emitter { return NewXML() }},
	{"events", func() parse.Emitter { return stream.NewEventEmitter() }},
	{"tdoc", func() parse.Emitter { return NewTDoc() }},
	{"null", func() parse.Emitter { return NewNull() }},
}

// Formats returns the supported output-format names in preference
// order.
func Formats() []string {
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = f.name
	}
	return names
}

// New returns a fresh emitter for the named output format.
func New(name string) (parse.Emitter, error) {
	for _, f := range formats {
		if f.name == name {
			return f.mk(), nil
		}
	}
	return nil, fmt.Errorf("unknown output format %q", name)
}

// Default returns the default emitter (XML).
func Default() parse.Emitter {
	return NewXML()
}
