package parse

import (
	"strings"

	"github.com/tlang-format/tdoc/go-tdoc/debug"
)

// shebang marks an interpreter line at the start of a host file.
const shebang = "#!"

// EmbeddedReader extracts TDoc content from a host text file. Notation
// lines are recognized by the configured markers; every other host line
// is wrapped, per contiguous run, in a synthetic raw-content node
// anchored at the depth of the most recently parsed notation line.
//
// The reader sits in front of the parser: each host line is turned into
// zero or more notation lines, which the caller feeds to the same
// Parser the reader was built from (the reader tracks the parser's
// current indentation prefix and last line depth).
type EmbeddedReader struct {
	p *Parser

	inContent bool
	inBlock   bool
	depth     int
	n         int
}

// NewEmbeddedReader returns a reader extracting notation for p,
// according to p's embedding options.
func NewEmbeddedReader(p *Parser) *EmbeddedReader {
	return &EmbeddedReader{p: p}
}

// Filter converts one host line into notation lines. A trailing line
// terminator, if present, is trimmed.
func (r *EmbeddedReader) Filter(line string) []string {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	i := r.n
	r.n++
	opts := r.p.Options()
	if i == 0 && strings.HasPrefix(line, shebang) {
		return nil
	}
	if opts.EmbedStart != "" && !r.inBlock && strings.HasPrefix(line, opts.EmbedStart) {
		r.inBlock = true
		r.inContent = false
		return nil
	}
	if r.inBlock {
		if opts.EmbedEnd != "" && strings.HasPrefix(line, opts.EmbedEnd) {
			r.inBlock = false
			return nil
		}
		return []string{line}
	}
	if opts.EmbedLine != "" && strings.HasPrefix(line, opts.EmbedLine) {
		r.inContent = false
		return []string{line[len(opts.EmbedLine):]}
	}
	// Opaque host content. Each contiguous run is anchored at the depth
	// of the notation line parsed before the run began. The indentation
	// prefix can be reconfigured mid-document, so it is read from the
	// parser for every line.
	if !r.inContent {
		r.inContent = true
		r.depth = r.p.LastLineDepth()
		node := opts.EmbedNode
		if node == "" {
			node = "embed"
		}
		if !strings.Contains(node, "|") {
			node += "|raw"
		}
		if debug.Embed() {
			debug.Logf("embed %d: open %s at depth %d\n", i, node, r.depth)
		}
		prefix := strings.Repeat(r.p.IndentPrefix(), r.depth)
		return []string{
			prefix + node,
			prefix + r.p.IndentPrefix() + line,
		}
	}
	prefix := strings.Repeat(r.p.IndentPrefix(), r.depth)
	return []string{prefix + r.p.IndentPrefix() + line}
}
