package main

import (
	"context"
	"testing"

	"go.lsp.dev/protocol"
)

func testServer() *Server {
	return &Server{docs: &documentStore{docs: make(map[string]*document)}}
}

func pos(line, char uint32) protocol.Position {
	return protocol.Position{Line: line, Character: char}
}

func TestApplyChangeMultiByte(t *testing.T) {
	// an edit below a line with multi-byte runes must not shift;
	// offsets are byte indexes into the document
	content := "doc: héllo\nitem\n"
	got := applyChange(content, protocol.Range{Start: pos(1, 0), End: pos(1, 4)}, "node")
	want := "doc: héllo\nnode\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyChangeInsert(t *testing.T) {
	content := "doc\n"
	got := applyChange(content, protocol.Range{Start: pos(1, 0), End: pos(1, 0)}, "\titem\n")
	want := "doc\n\titem\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestApplyChangeBadRange(t *testing.T) {
	content := "doc\n"
	if got := applyChange(content, protocol.Range{Start: pos(9, 0), End: pos(0, 1)}, "x"); got != content {
		t.Errorf("inverted range changed the document: %q", got)
	}
}

func TestLineColToOffset(t *testing.T) {
	content := "héllo\nworld"
	// column counts runes, the returned offset counts bytes
	if got := lineColToOffset(content, 0, 2); got != 3 {
		t.Errorf("got offset %d, want 3", got)
	}
	if got := lineColToOffset(content, 1, 0); got != 7 {
		t.Errorf("got offset %d, want 7", got)
	}
	if got := lineColToOffset(content, 5, 0); got != len(content) {
		t.Errorf("got offset %d, want %d", got, len(content))
	}
}

func TestDidChangeIncremental(t *testing.T) {
	s := testServer()
	ctx := context.Background()
	uri := protocol.DocumentURI("file:///x.tdoc")
	if err := s.DidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: uri, Version: 1, Text: "doc: héllo\nitem\n"},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := s.DidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: uri},
			Version:                2,
		},
		ContentChanges: []protocol.TextDocumentContentChangeEvent{
			{Range: protocol.Range{Start: pos(1, 0), End: pos(1, 4)}, Text: "node"},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := s.docs.get(string(uri))
	if doc == nil {
		t.Fatal("document missing after change")
	}
	if doc.content != "doc: héllo\nnode\n" {
		t.Errorf("got %q, want %q", doc.content, "doc: héllo\nnode\n")
	}
}
