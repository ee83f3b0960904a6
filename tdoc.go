// Package tdoc converts the indentation-structured TDoc notation into a
// stream of structural events, rendered as XML, normalized canonical
// notation or an event trace.
//
// The driver functions here compose a line source, the parser, an
// optional embedded reader and a sink. The heavy lifting lives in the
// subpackages:
//
//   - github.com/tlang-format/tdoc/go-tdoc/parse - the line engine
//   - github.com/tlang-format/tdoc/go-tdoc/token - the line grammar
//   - github.com/tlang-format/tdoc/go-tdoc/emit - output emitters
//   - github.com/tlang-format/tdoc/go-tdoc/stream - pull-driven events
package tdoc

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/tlang-format/tdoc/go-tdoc/parse"
)

// ParseReader parses notation read line-by-line from r, draining the
// emitter's output into sink as it is produced. When the options
// configure embedding, host lines pass through an EmbeddedReader first.
// Consumption is incremental: nothing is buffered beyond one line.
func ParseReader(r io.Reader, em parse.Emitter, sink Sink, opts ...parse.Option) error {
	p := parse.New(opts...)
	var er *parse.EmbeddedReader
	if p.Options().IsEmbedded() {
		er = parse.NewEmbeddedReader(p)
	}
	if err := sink.Write(p.Start(em)); err != nil {
		return err
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines := []string{sc.Text()}
		if er != nil {
			lines = er.Filter(sc.Text())
		}
		for _, line := range lines {
			vals, err := p.Feed(line, em)
			if werr := sink.Write(vals); werr != nil {
				return werr
			}
			if err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return sink.Write(p.End(em))
}

// ParseLines parses a document already split into lines.
func ParseLines(lines []string, em parse.Emitter, sink Sink, opts ...parse.Option) error {
	p := parse.New(opts...)
	vals, err := p.Parse(lines, em)
	if werr := sink.Write(vals); werr != nil {
		return werr
	}
	return err
}

// ParseString parses an in-memory document.
func ParseString(text string, em parse.Emitter, sink Sink, opts ...parse.Option) error {
	return ParseReader(strings.NewReader(text), em, sink, opts...)
}

// ParsePath parses the file at path.
func ParsePath(path string, em parse.Emitter, sink Sink, opts ...parse.Option) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ParseReader(f, em, sink, opts...)
}
