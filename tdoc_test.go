package tdoc

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tlang-format/tdoc/go-tdoc/emit"
	"github.com/tlang-format/tdoc/go-tdoc/parse"
)

func TestParseStringXML(t *testing.T) {
	var buf bytes.Buffer
	err := ParseString("doc\n\titem: hi", emit.NewXML(), &Writer{Out: &buf})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<?xml version=\"1.0\"?>\n<doc><item>hi</item></doc>"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestParseReaderEmbedded(t *testing.T) {
	host := "#!/bin/sh\n" +
		"#:doc\n" +
		"echo hello\n"
	var buf bytes.Buffer
	err := ParseReader(strings.NewReader(host), emit.NewXML(), &Writer{Out: &buf},
		parse.WithEmbed(true), parse.WithEmbedLine("#:"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "<?xml version=\"1.0\"?>\n<doc /><embed>echo hello</embed>"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	// rendering the normalized form gives the same xml as the original
	in := "doc\n" +
		"\titem id=42 a='x y': some text\n" +
		"\ttitle: hello\n" +
		"\tcode|raw\n" +
		"\t\tif x > 0:"
	var canon bytes.Buffer
	if err := ParseString(in, emit.NewTDoc(), &Writer{Out: &canon}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var a, b bytes.Buffer
	if err := ParseString(in, emit.NewXML(), &Writer{Out: &a}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ParseString(canon.String(), emit.NewXML(), &Writer{Out: &b}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.String() != b.String() {
		t.Errorf("xml differs after normalization:\noriginal:   %q\nnormalized: %q", a.String(), b.String())
	}
}

func TestCheck(t *testing.T) {
	if err := Check("doc\n\titem: hi"); err != nil {
		t.Errorf("expected valid document, got %v", err)
	}
	err := Check("doc\n\t@tdoc:indent banana")
	if err == nil {
		t.Fatal("expected a diagnostic")
	}
	if err.Line != 2 {
		t.Errorf("expected diagnostic on line 2, got %d", err.Line)
	}
}

func TestNullWriter(t *testing.T) {
	if err := ParseString("doc\n\titem", emit.NewXML(), NullWriter{}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValueWriter(t *testing.T) {
	w := &ValueWriter{}
	if err := w.Write([]any{nil, "a", nil, "b"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Value != "b" {
		t.Errorf("expected last value, got %v", w.Value)
	}
}
