// Package render defines the renderer contract shared by the label output
// formats.
//
// # Overview
//
// A label renders from one row sequence into three independent formats:
//
//   - HTML (in [sink], markup + embedded CSS)
//   - PDF (in [sink], single-page vector output)
//   - PNG (in [sink], rasterized at 2x resolution)
//
// Each format draws the same rows with the same display text; only visual
// treatment (column alignment, rule weights, colors) is decided per format,
// via the shared [styles.Sheet].
//
// # Contract
//
// A renderer is a [Func]. It must be deterministic: identical rows and an
// identical sheet produce byte-identical output. Failures wrap into [Error]
// so callers can report which format failed without losing the cause.
//
// [sink]: github.com/curadolabs/labelgen/pkg/render/sink
package render

import (
	"errors"
	"fmt"

	"github.com/curadolabs/labelgen/pkg/layout"
	"github.com/curadolabs/labelgen/pkg/render/styles"
)

// Supported output formats.
const (
	FormatHTML = "html"
	FormatPDF  = "pdf"
	FormatPNG  = "png"
)

// ContentTypes maps each format to its MIME type.
var ContentTypes = map[string]string{
	FormatHTML: "text/html; charset=utf-8",
	FormatPDF:  "application/pdf",
	FormatPNG:  "image/png",
}

// Func renders a row sequence into one output format.
type Func func(rows []layout.Row, sheet styles.Sheet) ([]byte, error)

// Error records a failure in one output format. Formats fail independently;
// one format's Error never aborts the others.
type Error struct {
	Format string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("render %s: %v", e.Format, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// WrapError wraps err as a render failure for format. Returns nil for a
// nil err; an existing *Error for the same format passes through.
func WrapError(format string, err error) error {
	if err == nil {
		return nil
	}
	var re *Error
	if errors.As(err, &re) && re.Format == format {
		return err
	}
	return &Error{Format: format, Err: err}
}
