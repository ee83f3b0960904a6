package main

import (
	"bytes"
	"context"

	tdoc "github.com/tlang-format/tdoc/go-tdoc"
	"github.com/tlang-format/tdoc/go-tdoc/emit"

	"go.lsp.dev/protocol"
)

func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	if doc.parseErr != nil {
		// Don't reformat broken documents.
		return nil, nil
	}

	var buf bytes.Buffer
	sink := &tdoc.Writer{Out: &buf}
	if err := tdoc.ParseString(doc.content, emit.NewTDoc(), sink); err != nil {
		return nil, nil
	}
	formatted := buf.String()

	if formatted == doc.content {
		return []protocol.TextEdit{}, nil
	}

	lines := bytes.Count([]byte(doc.content), []byte("\n"))
	if len(doc.content) > 0 && doc.content[len(doc.content)-1] != '\n' {
		lines++
	}

	// A single edit replacing the entire document.
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End: protocol.Position{
					Line:      uint32(lines),
					Character: 0,
				},
			},
			NewText: formatted,
		},
	}, nil
}
