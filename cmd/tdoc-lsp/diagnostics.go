package main

import (
	"context"
	"sync"

	tdoc "github.com/tlang-format/tdoc/go-tdoc"
	"github.com/tlang-format/tdoc/go-tdoc/debug"
	"github.com/tlang-format/tdoc/go-tdoc/parse"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri     string
	content string
	version int32
	// First structural violation, nil if the document parses.
	parseErr *parse.Error
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	ds.docs[uri] = &document{
		uri:      uri,
		content:  content,
		version:  version,
		parseErr: tdoc.Check(content),
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := s.validateDocument(doc)
	if debug.LSP() {
		debug.Logf("lsp: %d diagnostics for %s\n", len(diagnostics), uri)
	}

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func (s *Server) validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	if doc.parseErr == nil {
		return diagnostics
	}

	// Diagnostic lines are 0-based, the parser's are 1-based.
	line := uint32(0)
	if doc.parseErr.Line > 0 {
		line = uint32(doc.parseErr.Line - 1)
	}
	col := uint32(doc.parseErr.Col)
	diagnostics = append(diagnostics, protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: col},
			End:   protocol.Position{Line: line, Character: col + 1},
		},
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.parseErr.Message,
		Source:   "tdoc",
	})
	return diagnostics
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}

	content := doc.content
	for _, change := range params.ContentChanges {
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			// Full document replacement
			content = change.Text
		} else {
			content = applyChange(content, rangeVal, change.Text)
		}
	}

	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// applyChange splices an incremental edit into content. Offsets from
// lineColToOffset are byte indexes, so the splice slices the string
// directly; indexing runes here would corrupt documents with multi-byte
// characters.
func applyChange(content string, r protocol.Range, text string) string {
	startOffset := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
	endOffset := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
	if startOffset > endOffset || endOffset > len(content) {
		return content
	}
	return content[:startOffset] + text + content[endOffset:]
}

// lineColToOffset returns the byte offset of a 0-based line/column
// position, counting columns in runes.
func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	currentCol := 0
	for i, r := range content {
		if currentLine == line && currentCol == col {
			return i
		}
		if r == '\n' {
			currentLine++
			currentCol = 0
		} else {
			currentCol++
		}
	}
	return len(content)
}
