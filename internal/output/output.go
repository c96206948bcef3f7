// Package output provides consistent CLI output formatting.
package output

import (
	"fmt"
	"io"

	"github.com/flightprep/loadsheet/internal/errors"
)

// Writer provides formatted output for the CLI.
type Writer struct {
	out io.Writer
}

// New creates an output Writer.
func New(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Result prints computation output verbatim.
func (w *Writer) Result(s string) {
	_, _ = fmt.Fprint(w.out, s)
}

// Status prints a status line.
func (w *Writer) Status(msg string) {
	_, _ = fmt.Fprintf(w.out, "   %s\n", msg)
}

// Statusf prints a formatted status line.
func (w *Writer) Statusf(format string, args ...any) {
	w.Status(fmt.Sprintf(format, args...))
}

// Success prints a success line.
func (w *Writer) Success(msg string) {
	_, _ = fmt.Fprintf(w.out, "✅ %s\n", msg)
}

// Warning prints a warning line.
func (w *Writer) Warning(msg string) {
	_, _ = fmt.Fprintf(w.out, "⚠️  %s\n", msg)
}

// Error prints an error, including the suggestion carried by structured
// errors.
func (w *Writer) Error(err error) {
	_, _ = fmt.Fprintf(w.out, "❌ %s\n", errors.Display(err))
}
