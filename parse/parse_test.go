package parse_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/tlang-format/tdoc/go-tdoc/parse"
	"github.com/tlang-format/tdoc/go-tdoc/stream"

	"github.com/google/go-cmp/cmp"
)

func eventsOf(t *testing.T, in string, opts ...parse.Option) []*stream.Event {
	t.Helper()
	p := parse.New(opts...)
	vals, err := p.Parse(strings.Split(in, "\n"), stream.NewEventEmitter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return pick(vals)
}

func pick(vals []any) []*stream.Event {
	var evs []*stream.Event
	for _, v := range vals {
		if ev, ok := v.(*stream.Event); ok {
			evs = append(evs, ev)
		}
	}
	return evs
}

func TestParseBasic(t *testing.T) {
	in := "doc\n" +
		"\titem: hello\n" +
		"\titem\n" +
		"\t\t@key value"
	want := []*stream.Event{
		{Type: stream.EventDocumentStart},
		{Type: stream.EventNodeStart, Name: "doc"},
		{Type: stream.EventNodeContentStart, Name: "doc"},
		{Type: stream.EventNodeStart, Name: "item"},
		{Type: stream.EventNodeContentStart, Name: "item"},
		{Type: stream.EventContent, Text: "hello"},
		{Type: stream.EventNodeEnd, Name: "item"},
		{Type: stream.EventNodeStart, Name: "item"},
		{Type: stream.EventNodeContentStart, Name: "item"},
		{Type: stream.EventAttribute, Name: "key", Value: "value"},
		{Type: stream.EventNodeEnd, Name: "item"},
		{Type: stream.EventNodeEnd, Name: "doc"},
		{Type: stream.EventDocumentEnd},
	}
	if d := cmp.Diff(want, eventsOf(t, in)); d != "" {
		t.Errorf("events (-want +got):\n%s", d)
	}
}

func TestParseInlineAttributes(t *testing.T) {
	in := `item#42 a=1 b="x y"`
	want := []*stream.Event{
		{Type: stream.EventDocumentStart},
		{Type: stream.EventNodeStart, Name: "item"},
		{Type: stream.EventAttribute, Name: "id", Value: "42"},
		{Type: stream.EventAttribute, Name: "a", Value: "1"},
		{Type: stream.EventAttribute, Name: "b", Value: "x y"},
		{Type: stream.EventNodeContentStart, Name: "item"},
		{Type: stream.EventNodeEnd, Name: "item"},
		{Type: stream.EventDocumentEnd},
	}
	if d := cmp.Diff(want, eventsOf(t, in)); d != "" {
		t.Errorf("events (-want +got):\n%s", d)
	}
}

func TestParseDedent(t *testing.T) {
	in := "a\n" +
		"\tb\n" +
		"\t\tc\n" +
		"\td"
	// d at depth 1 closes c and b before opening
	evs := eventsOf(t, in)
	var trace []string
	for _, ev := range evs {
		if ev.Type == stream.EventNodeStart || ev.Type == stream.EventNodeEnd {
			trace = append(trace, ev.String())
		}
	}
	want := []string{
		"NodeStart a",
		"NodeStart b",
		"NodeStart c",
		"NodeEnd c",
		"NodeEnd b",
		"NodeStart d",
		"NodeEnd d",
		"NodeEnd a",
	}
	if d := cmp.Diff(want, trace); d != "" {
		t.Errorf("node trace (-want +got):\n%s", d)
	}
}

func TestParseSibling(t *testing.T) {
	in := "a\nb"
	evs := eventsOf(t, in)
	want := []*stream.Event{
		{Type: stream.EventDocumentStart},
		{Type: stream.EventNodeStart, Name: "a"},
		{Type: stream.EventNodeContentStart, Name: "a"},
		{Type: stream.EventNodeEnd, Name: "a"},
		{Type: stream.EventNodeStart, Name: "b"},
		{Type: stream.EventNodeContentStart, Name: "b"},
		{Type: stream.EventNodeEnd, Name: "b"},
		{Type: stream.EventDocumentEnd},
	}
	if d := cmp.Diff(want, evs); d != "" {
		t.Errorf("events (-want +got):\n%s", d)
	}
}

func TestParseTextOverflow(t *testing.T) {
	// an over-indented line that looks like a node is prose, not a node
	in := "doc\n" +
		"\t\t\titem x=1: looks like a node"
	evs := eventsOf(t, in)
	var starts, contents []string
	for _, ev := range evs {
		switch ev.Type {
		case stream.EventNodeStart:
			starts = append(starts, ev.Name)
		case stream.EventContent:
			contents = append(contents, ev.Text)
		}
	}
	if d := cmp.Diff([]string{"doc"}, starts); d != "" {
		t.Errorf("node starts (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"item x=1: looks like a node"}, contents); d != "" {
		t.Errorf("contents (-want +got):\n%s", d)
	}
}

func TestParseDepthSkipIsContent(t *testing.T) {
	// a line that skips indentation levels is reclassified as prose
	// even when it matches the node shape; no error is reported
	in := "a\n" +
		"\tb\n" +
		"\t\t\tc x=1: deep"
	evs := eventsOf(t, in)
	var starts, contents []string
	for _, ev := range evs {
		switch ev.Type {
		case stream.EventNodeStart:
			starts = append(starts, ev.Name)
		case stream.EventContent:
			contents = append(contents, ev.Text)
		}
	}
	if d := cmp.Diff([]string{"a", "b"}, starts); d != "" {
		t.Errorf("node starts (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"c x=1: deep"}, contents); d != "" {
		t.Errorf("contents (-want +got):\n%s", d)
	}
}

func TestParseSubParser(t *testing.T) {
	in := "doc\n" +
		"\tcode|raw\n" +
		"\t\tx = 1\n" +
		"\n" +
		"\t\t@attr foo\n" +
		"\t\t\tnode: looking line\n" +
		"\tafter"
	evs := eventsOf(t, in)
	var raw []string
	var starts []string
	var attrs int
	for _, ev := range evs {
		switch ev.Type {
		case stream.EventRawContent:
			raw = append(raw, ev.Text)
		case stream.EventNodeStart:
			starts = append(starts, ev.Name)
		case stream.EventAttribute:
			attrs++
		}
	}
	// everything under code|raw passes through verbatim, including the
	// blank line and lines shaped like attributes or nodes
	wantRaw := []string{"x = 1", "", "@attr foo", "\tnode: looking line"}
	if d := cmp.Diff(wantRaw, raw); d != "" {
		t.Errorf("raw content (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]string{"doc", "code", "after"}, starts); d != "" {
		t.Errorf("node starts (-want +got):\n%s", d)
	}
	if attrs != 0 {
		t.Errorf("expected no attribute events, got %d", attrs)
	}
}

func TestParseExplicitContent(t *testing.T) {
	in := "doc\n" +
		"\t:node: shaped but explicit"
	evs := eventsOf(t, in)
	var contents []string
	for _, ev := range evs {
		if ev.Type == stream.EventContent {
			contents = append(contents, ev.Text)
		}
	}
	if d := cmp.Diff([]string{"node: shaped but explicit"}, contents); d != "" {
		t.Errorf("contents (-want +got):\n%s", d)
	}
}

func TestParseComments(t *testing.T) {
	in := "#top\n" +
		"doc\n" +
		"\t#inner"
	evs := eventsOf(t, in)
	want := []*stream.Event{
		{Type: stream.EventComment, Text: "top"},
		{Type: stream.EventComment, Text: "inner", Indent: 1},
	}
	var comments []*stream.Event
	for _, ev := range evs {
		if ev.Type == stream.EventComment {
			comments = append(comments, ev)
		}
	}
	if d := cmp.Diff(want, comments); d != "" {
		t.Errorf("comments (-want +got):\n%s", d)
	}
}

func TestParseIndentDirective(t *testing.T) {
	in := "doc\n" +
		"\t@tdoc:indent spaces=2\n" +
		"  child\n" +
		"    grand"
	evs := eventsOf(t, in)
	var trace []string
	for _, ev := range evs {
		if ev.Type == stream.EventNodeStart || ev.Type == stream.EventNodeEnd ||
			ev.Type == stream.EventAttribute {
			trace = append(trace, ev.String())
		}
	}
	// the directive itself is consumed, not forwarded
	want := []string{
		"NodeStart doc",
		"NodeStart child",
		"NodeStart grand",
		"NodeEnd grand",
		"NodeEnd child",
		"NodeEnd doc",
	}
	if d := cmp.Diff(want, trace); d != "" {
		t.Errorf("node trace (-want +got):\n%s", d)
	}
}

func TestParseIndentDirectiveBad(t *testing.T) {
	p := parse.New()
	_, err := p.Parse([]string{"@tdoc:indent banana"}, stream.NewEventEmitter())
	if !errors.Is(err, parse.ErrIndentSpec) {
		t.Errorf("expected ErrIndentSpec, got %v", err)
	}
	if !errors.Is(err, parse.ErrParse) {
		t.Errorf("expected error to wrap ErrParse, got %v", err)
	}
}

func TestParseRootNode(t *testing.T) {
	evs := eventsOf(t, "item", parse.WithRootNode("document"))
	if len(evs) < 2 {
		t.Fatalf("expected events, got %d", len(evs))
	}
	if evs[1].Type != stream.EventNodeStart || evs[1].Name != "document" {
		t.Errorf("expected synthetic document start, got %v", evs[1])
	}
	last := evs[len(evs)-2]
	if last.Type != stream.EventNodeEnd || last.Name != "document" {
		t.Errorf("expected synthetic document end, got %v", last)
	}
}

func TestParseReuse(t *testing.T) {
	// sequential reuse after a full cycle is valid, and the indentation
	// mode resets between documents
	p := parse.New()
	if _, err := p.Parse([]string{"a", "\t@tdoc:indent spaces=2", "  b"}, stream.NewEventEmitter()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	vals, err := p.Parse([]string{"a", "\tb"}, stream.NewEventEmitter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var starts []string
	for _, ev := range pick(vals) {
		if ev.Type == stream.EventNodeStart {
			starts = append(starts, ev.Name)
		}
	}
	if d := cmp.Diff([]string{"a", "b"}, starts); d != "" {
		t.Errorf("node starts (-want +got):\n%s", d)
	}
}

func TestParseBlankLinesDropped(t *testing.T) {
	in := "doc\n" +
		"\n" +
		"\titem"
	evs := eventsOf(t, in)
	for _, ev := range evs {
		if ev.Type == stream.EventContent {
			t.Errorf("unexpected content event %v", ev)
		}
	}
}
