// Package pipeline provides the core label generation pipeline.
//
// This package implements the complete normalize → layout → render pipeline
// that is shared by the CLI and the HTTP API. Centralizing it keeps both
// entry points byte-identical in behavior.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Normalize: validate the request and resolve every default
//  2. Layout: compute daily-value percentages and build the row sequence
//  3. Render: serialize the rows into each requested format, concurrently
//
// Formats render independently: a PNG encoder failure still yields the HTML
// and PDF artifacts, reported alongside the per-format error. Generation
// fails outright only when validation fails or every format fails.
//
// # Usage
//
//	runner := pipeline.NewRunner(store, logger)
//	opts := pipeline.Options{
//	    Request: req,
//	    Formats: []string{pipeline.FormatHTML, pipeline.FormatPDF},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    return err
//	}
//	pdf := result.Artifacts["pdf"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/curadolabs/labelgen/pkg/errors"
	"github.com/curadolabs/labelgen/pkg/label"
	"github.com/curadolabs/labelgen/pkg/layout"
	"github.com/curadolabs/labelgen/pkg/render"
)

// Format constants re-exported for callers that configure the pipeline.
const (
	FormatHTML = render.FormatHTML
	FormatPDF  = render.FormatPDF
	FormatPNG  = render.FormatPNG
)

// DefaultRenderTimeout bounds each format's rendering time.
const DefaultRenderTimeout = 10 * time.Second

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML: true,
	FormatPDF:  true,
	FormatPNG:  true,
}

// AllFormats lists the supported formats in stable order.
var AllFormats = []string{FormatHTML, FormatPDF, FormatPNG}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.NewField(errors.ErrCodeInvalidFormat, "formats",
			"invalid format: %q (must be one of: html, pdf, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// Options contains all configuration for one generation run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Request is the raw label payload. Required.
	Request *label.Request `json:"request"`

	// Formats selects the outputs to render. Defaults to all formats.
	Formats []string `json:"formats,omitempty"`

	// GeneratedAt stamps the label's timestamp row. Zero means now.
	// Fixing it makes output reproducible across formats and runs.
	GeneratedAt time.Time `json:"generated_at,omitempty"`

	// Timeout bounds each format's rendering time.
	Timeout time.Duration `json:"timeout,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect
// as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Request == nil {
		return errors.NewField(errors.ErrCodeMissingField, "request", "request is required")
	}
	if len(o.Formats) == 0 {
		o.Formats = append([]string(nil), AllFormats...)
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.GeneratedAt.IsZero() {
		o.GeneratedAt = time.Now()
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultRenderTimeout
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	o.validated = true
	return nil
}

// Result contains the outputs of one generation run.
type Result struct {
	// Model is the normalized label model.
	Model *label.Model

	// Rows is the format-agnostic row sequence all artifacts were
	// rendered from.
	Rows []layout.Row

	// Percents maps nutrient keys to their truncated %DV figures.
	Percents map[string]int

	// Artifacts contains rendered outputs keyed by format. Only formats
	// that succeeded are present.
	Artifacts map[string][]byte

	// Errors contains per-format render failures. Formats present in
	// Artifacts never appear here.
	Errors map[string]error

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RowCount      int
	NormalizeTime time.Duration
	LayoutTime    time.Duration
	RenderTime    time.Duration
}
