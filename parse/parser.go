package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tlang-format/tdoc/go-tdoc/debug"
	"github.com/tlang-format/tdoc/go-tdoc/token"
)

// IndentMode selects the literal indentation unit used to measure depth.
type IndentMode int

const (
	IndentTabs IndentMode = iota
	IndentSpaces
)

func (m IndentMode) String() string {
	if m == IndentSpaces {
		return "spaces"
	}
	return "tabs"
}

type stackItem struct {
	depth int
	ns    string
	name  string
}

// Parser is the TDoc engine: a stateful line-by-line parser with an
// event-based interface. It owns the indentation mode, the nesting
// stack and the sub-parser activation state.
type Parser struct {
	opts *Options

	indentMode   IndentMode
	indentCount  int
	indentPrefix string

	stack []stackItem

	// Active sub-parser name and the depth it was activated at;
	// subParser == "" means none.
	subParser      string
	subParserDepth int

	// Depth of the most recently fed line, used by the embedded reader
	// to anchor synthetic nodes.
	lastLineDepth int

	lineNo int
}

// New returns a Parser configured with the given options. The default
// indentation unit is one tab.
func New(opts ...Option) *Parser {
	p := &Parser{opts: NewOptions(opts...)}
	p.SetIndent(IndentTabs, 1)
	return p
}

// Options returns the run configuration.
func (p *Parser) Options() *Options {
	return p.opts
}

// SetIndent sets the indentation mode and repeat count; together they
// define the prefix string used to extract indentation from fed lines.
func (p *Parser) SetIndent(mode IndentMode, count int) {
	p.indentMode = mode
	p.indentCount = count
	unit := byte('\t')
	if mode == IndentSpaces {
		unit = ' '
	}
	p.indentPrefix = strings.Repeat(string(unit), count)
	p.lastLineDepth = 0
	if debug.Indent() {
		debug.Logf("indent mode=%s count=%d\n", mode, count)
	}
}

// IndentPrefix returns the current indentation unit string.
func (p *Parser) IndentPrefix() string {
	return p.indentPrefix
}

// LastLineDepth returns the measured depth of the most recently fed
// line.
func (p *Parser) LastLineDepth() int {
	return p.lastLineDepth
}

// Depth returns the depth of the innermost open node, or 0 if none.
func (p *Parser) Depth() int {
	if len(p.stack) == 0 {
		return 0
	}
	return p.stack[len(p.stack)-1].depth
}

// Line returns the number of lines fed since Start.
func (p *Parser) Line() int {
	return p.lineNo
}

// Parse runs a full Start/Feed*/End cycle over lines and returns the
// concatenated emitter output. This is the preferred way to drive a
// parser over an in-memory document.
func (p *Parser) Parse(lines []string, em Emitter) ([]any, error) {
	out := p.Start(em)
	for _, line := range lines {
		vals, err := p.Feed(line, em)
		out = append(out, vals...)
		if err != nil {
			return out, err
		}
	}
	return append(out, p.End(em)...), nil
}

// Start resets the parser state, hands the options to the emitter and
// opens the document (and the configured root node, if any).
func (p *Parser) Start(em Emitter) []any {
	p.stack = nil
	p.subParser = ""
	p.subParserDepth = 0
	p.lineNo = 0
	p.SetIndent(IndentTabs, 1)
	em.SetOptions(p.opts)
	out := em.OnDocumentStart(p.opts)
	if p.opts.RootNode != "" {
		out = append(out, em.OnNodeStart("", p.opts.RootNode, "")...)
		out = append(out, em.OnNodeContentStart("", p.opts.RootNode, "")...)
	}
	return out
}

// End closes any still-open nodes and the document.
func (p *Parser) End(em Emitter) []any {
	var out []any
	for len(p.stack) > 0 {
		d := p.stack[len(p.stack)-1]
		p.stack = p.stack[:len(p.stack)-1]
		out = append(out, em.OnNodeEnd(d.ns, d.name, "")...)
	}
	if p.opts.RootNode != "" {
		out = append(out, em.OnNodeEnd("", p.opts.RootNode, "")...)
	}
	return append(out, em.OnDocumentEnd()...)
}

// Feed classifies one line and forwards the resulting directives to the
// emitter. A trailing line terminator, if present, is trimmed. Feed
// returns a non-nil error only for structural violations (an
// indentation jump of more than one level, or an invalid `tdoc:indent`
// directive); after such an error the caller must abandon the parse.
func (p *Parser) Feed(line string, em Emitter) ([]any, error) {
	p.lineNo++
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	depth, l := p.lineIndent(line)
	p.lastLineDepth = depth
	if debug.Feed() {
		debug.Logf("feed %d: depth=%d %q\n", p.lineNo, depth, l)
	}

	if p.subParser != "" {
		switch {
		case depth > p.subParserDepth:
			// Nested under the sub-parser: raw content, with the
			// block's base indentation stripped and any deeper
			// indentation preserved.
			return em.OnRawContentLine(p.stripIndent(line, p.subParserDepth+1)), nil
		case l == "":
			// Blank lines inside the embedded block are preserved.
			return em.OnRawContentLine(""), nil
		default:
			// The line is not part of the embedded block; it is
			// classified normally below.
			p.subParser = ""
			p.subParserDepth = 0
		}
	}

	switch {
	case token.IsComment(l):
		text := l[strings.IndexByte(l, '#')+1:]
		return em.OnCommentLine(text, depth), nil

	case token.IsAttribute(l):
		ns, name, value := parseAttributeLine(l)
		return p.onAttribute(em, ns, name, value)
	}

	if node := token.MatchNode(l); node != nil {
		// A node only if it is not over-indented; a deeper line that
		// happens to look like a node is text content.
		if depth > p.Depth()+1 {
			return em.OnContentLine(l), nil
		}
		var out []any
		if depth <= p.Depth() {
			for len(p.stack) > 0 && p.Depth() >= depth {
				d := p.stack[len(p.stack)-1]
				p.stack = p.stack[:len(p.stack)-1]
				out = append(out, em.OnNodeEnd(d.ns, d.name, "")...)
			}
		} else if depth != p.Depth()+1 {
			return out, fmt.Errorf("%w: parsing depth should be %d, got %d at %s",
				ErrIndent, p.Depth()+1, depth, token.Pos{Line: p.lineNo})
		}
		p.stack = append(p.stack, stackItem{depth: depth, ns: node.NS, name: node.Name})
		if node.Parser != "" {
			p.subParser = node.Parser
			p.subParserDepth = depth
		}
		out = append(out, em.OnNodeStart(node.NS, node.Name, node.Parser)...)
		for _, a := range node.Attrs {
			vals, err := p.onAttribute(em, a.NS, a.Name, a.Value)
			out = append(out, vals...)
			if err != nil {
				return out, err
			}
		}
		out = append(out, em.OnNodeContentStart(node.NS, node.Name, node.Parser)...)
		if node.HasContent {
			out = append(out, em.OnContentLine(node.Content)...)
		}
		return out, nil
	}

	if token.IsExplicitContent(l) {
		return em.OnContentLine(l[1:]), nil
	}

	// Whatever is left is implicit content; whitespace-only
	// continuation lines are dropped.
	if text := p.stripIndent(line, p.Depth()+1); text != "" {
		return em.OnContentLine(text), nil
	}
	return nil, nil
}

// onAttribute forwards an attribute to the emitter, intercepting the
// `tdoc:indent` directive which reconfigures the indentation mode
// instead of being emitted.
func (p *Parser) onAttribute(em Emitter, ns, name, value string) ([]any, error) {
	if ns == "tdoc" && name == "indent" {
		return nil, p.setIndentSpec(value)
	}
	return em.OnAttribute(ns, name, value), nil
}

func (p *Parser) setIndentSpec(value string) error {
	spec, num, hasNum := strings.Cut(strings.TrimSpace(value), "=")
	var mode IndentMode
	var count int
	switch spec {
	case "tabs":
		mode, count = IndentTabs, 1
	case "spaces":
		mode, count = IndentSpaces, 4
	default:
		return fmt.Errorf("%w: expects `tabs` or `spaces=N`, got %q at %s",
			ErrIndentSpec, value, token.Pos{Line: p.lineNo})
	}
	if hasNum {
		n, err := strconv.Atoi(num)
		if err != nil || n < 1 {
			return fmt.Errorf("%w: bad count %q at %s",
				ErrIndentSpec, num, token.Pos{Line: p.lineNo})
		}
		count = n
	}
	p.SetIndent(mode, count)
	return nil
}

// parseAttributeLine splits an `@NS:NAME VALUE` line.
func parseAttributeLine(l string) (ns, name, value string) {
	name, value, _ = strings.Cut(l[1:], " ")
	if i := strings.IndexByte(name, ':'); i >= 0 {
		ns, name = name[:i], name[i+1:]
	}
	return ns, name, value
}

// lineIndent measures how many times the indentation prefix repeats at
// the start of line and returns the de-indented remainder.
func (p *Parser) lineIndent(line string) (int, string) {
	depth := 0
	for strings.HasPrefix(line, p.indentPrefix) {
		line = line[len(p.indentPrefix):]
		depth++
	}
	return depth, line
}

// stripIndent removes at most n indentation prefixes from line.
func (p *Parser) stripIndent(line string, n int) string {
	for ; n > 0 && strings.HasPrefix(line, p.indentPrefix); n-- {
		line = line[len(p.indentPrefix):]
	}
	return line
}
