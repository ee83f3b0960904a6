package tdoc

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/tlang-format/tdoc/go-tdoc/parse"
)

// Sink consumes the values produced by an emitter, in order.
type Sink interface {
	Write(values []any) error
}

// Writer writes string values verbatim to Out. Diagnostic values are
// reported without aborting the write loop; anything else is rendered
// as one JSON document per line. Nil placeholders are skipped.
type Writer struct {
	Out io.Writer
}

func (w *Writer) Write(values []any) error {
	for _, v := range values {
		switch x := v.(type) {
		case nil:
		case string:
			if _, err := io.WriteString(w.Out, x); err != nil {
				return err
			}
		case *parse.Error:
			slog.Error(x.Error())
		default:
			d, err := json.Marshal(x)
			if err != nil {
				return err
			}
			if _, err := w.Out.Write(append(d, '\n')); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValueWriter keeps the last non-nil value produced. It is used when
// invoking the engine as an in-process transformer that returns a
// result value.
type ValueWriter struct {
	Value any
}

func (w *ValueWriter) Write(values []any) error {
	for _, v := range values {
		if v != nil {
			w.Value = v
		}
	}
	return nil
}

// NullWriter discards all output, for syntax-check-only runs.
type NullWriter struct{}

func (NullWriter) Write(values []any) error {
	return nil
}
