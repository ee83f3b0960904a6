package stream

import (
	"bufio"
	"io"

	"github.com/tlang-format/tdoc/go-tdoc/parse"
)

// Decoder provides structural event-based decoding of TDoc documents.
// It composes a line source, the parser and an EventEmitter into a
// lazy, pull-driven event sequence: no line is consumed until an event
// is requested.
type Decoder struct {
	scanner  *bufio.Scanner
	parser   *parse.Parser
	emitter  *EventEmitter
	embedded *parse.EmbeddedReader

	pending []*Event
	started bool
	ended   bool
}

// NewDecoder creates a Decoder reading lines from r. When the options
// configure embedding, the lines pass through an EmbeddedReader first.
func NewDecoder(r io.Reader, opts ...parse.Option) *Decoder {
	p := parse.New(opts...)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	d := &Decoder{
		scanner: sc,
		parser:  p,
		emitter: NewEventEmitter(),
	}
	if p.Options().IsEmbedded() {
		d.embedded = parse.NewEmbeddedReader(p)
	}
	return d
}

// ReadEvent returns the next structural event. It returns io.EOF after
// the DocumentEnd event has been delivered. A structural parse error
// ends the stream; the caller must not continue reading after one.
func (d *Decoder) ReadEvent() (*Event, error) {
	if !d.started {
		d.started = true
		d.push(d.parser.Start(d.emitter))
	}
	for len(d.pending) == 0 && !d.ended {
		if !d.scanner.Scan() {
			if err := d.scanner.Err(); err != nil {
				return nil, err
			}
			d.ended = true
			d.push(d.parser.End(d.emitter))
			break
		}
		line := d.scanner.Text()
		lines := []string{line}
		if d.embedded != nil {
			lines = d.embedded.Filter(line)
		}
		for _, ln := range lines {
			vals, err := d.parser.Feed(ln, d.emitter)
			d.push(vals)
			if err != nil {
				return nil, err
			}
		}
	}
	if len(d.pending) == 0 {
		return nil, io.EOF
	}
	ev := d.pending[0]
	d.pending = d.pending[1:]
	return ev, nil
}

// Depth returns the depth of the innermost open node.
func (d *Decoder) Depth() int {
	return d.parser.Depth()
}

// Line returns the number of source lines consumed so far.
func (d *Decoder) Line() int {
	return d.parser.Line()
}

func (d *Decoder) push(vals []any) {
	for _, v := range vals {
		if ev, ok := v.(*Event); ok {
			d.pending = append(d.pending, ev)
		}
	}
}
