package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/curadolabs/labelgen/pkg/errors"
	"github.com/curadolabs/labelgen/pkg/labelstore"
	"github.com/curadolabs/labelgen/pkg/layout"
	"github.com/curadolabs/labelgen/pkg/nutrition"
	"github.com/curadolabs/labelgen/pkg/observability"
	"github.com/curadolabs/labelgen/pkg/render"
	"github.com/curadolabs/labelgen/pkg/render/sink"
	"github.com/curadolabs/labelgen/pkg/render/styles"
)

// Runner encapsulates pipeline execution.
//
// The Runner is stateless except for the store, logger, and sink table;
// it doesn't hold generation results. Multiple goroutines can safely use
// the same Runner with different options.
type Runner struct {
	Store  labelstore.Store
	Logger *log.Logger

	// Sinks maps formats to renderers. Populated with the standard sinks
	// by NewRunner; tests substitute entries to exercise failure paths.
	Sinks map[string]render.Func
}

// NewRunner creates a runner with the given store and logger.
// If store is nil, an in-memory store is used.
// If logger is nil, the default logger is used.
func NewRunner(store labelstore.Store, logger *log.Logger) *Runner {
	if store == nil {
		store = labelstore.NewMemoryStore()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Store:  store,
		Logger: logger,
		Sinks: map[string]render.Func{
			FormatHTML: sink.HTML,
			FormatPDF:  sink.PDF,
			FormatPNG:  sink.PNG,
		},
	}
}

// Execute runs the complete normalize → layout → render pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	start := time.Now()

	result := &Result{
		Artifacts: make(map[string][]byte),
		Errors:    make(map[string]error),
	}

	// Stage 1: Normalize
	normalizeStart := time.Now()
	model, err := opts.Request.Normalize()
	if err != nil {
		return nil, err
	}
	result.Model = model
	result.Stats.NormalizeTime = time.Since(normalizeStart)
	observability.Generation().OnGenerateStart(ctx, model.LabelType, opts.Formats)

	// Stage 2: Layout
	layoutStart := time.Now()
	result.Percents = nutrition.Percents(model.Adjustments)
	rows, err := layout.Build(model, result.Percents, opts.GeneratedAt)
	if err != nil {
		return nil, err
	}
	result.Rows = rows
	result.Stats.RowCount = len(rows)
	result.Stats.LayoutTime = time.Since(layoutStart)

	sheet, err := styles.FromStyle(model.Style)
	if err != nil {
		return nil, err
	}

	logger.Info("built label layout",
		"label_type", model.LabelType,
		"rows", len(rows),
		"duration", result.Stats.LayoutTime)

	// Stage 3: Render, one goroutine per format.
	renderStart := time.Now()
	type outcome struct {
		format string
		data   []byte
		err    error
	}
	ch := make(chan outcome, len(opts.Formats))
	for _, format := range opts.Formats {
		go func(format string) {
			observability.Generation().OnRenderStart(ctx, format)
			formatStart := time.Now()
			data, err := r.renderFormat(ctx, opts.Timeout, format, rows, sheet)
			observability.Generation().OnRenderComplete(ctx, format, len(data), time.Since(formatStart), err)
			ch <- outcome{format, data, err}
		}(format)
	}
	for range opts.Formats {
		out := <-ch
		if out.err != nil {
			result.Errors[out.format] = out.err
			logger.Warn("format failed", "format", out.format, "error", out.err)
			continue
		}
		result.Artifacts[out.format] = out.data
	}
	result.Stats.RenderTime = time.Since(renderStart)

	if len(result.Artifacts) == 0 {
		var first error
		for _, f := range opts.Formats {
			if err, ok := result.Errors[f]; ok {
				first = err
				break
			}
		}
		err := errors.Wrap(errors.ErrCodeRenderFailed, first, "all formats failed")
		observability.Generation().OnGenerateComplete(ctx, model.LabelType,
			0, len(result.Errors), time.Since(start), err)
		return nil, err
	}

	logger.Info("rendered label",
		"formats", opts.Formats,
		"failed", len(result.Errors),
		"duration", result.Stats.RenderTime)
	observability.Generation().OnGenerateComplete(ctx, model.LabelType,
		len(result.Artifacts), len(result.Errors), time.Since(start), nil)

	return result, nil
}

// renderFormat runs one sink with a per-format timeout. The sink runs in
// its own goroutine so a stuck encoder cannot block collection.
func (r *Runner) renderFormat(ctx context.Context, timeout time.Duration, format string, rows []layout.Row, sheet styles.Sheet) ([]byte, error) {
	fn, ok := r.Sinks[format]
	if !ok {
		return nil, render.WrapError(format, errors.New(errors.ErrCodeInternal, "no renderer for format %q", format))
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type res struct {
		data []byte
		err  error
	}
	done := make(chan res, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- res{err: errors.New(errors.ErrCodeRenderFailed, "renderer panic: %v", p)}
			}
		}()
		data, err := fn(rows, sheet)
		done <- res{data, err}
	}()

	select {
	case out := <-done:
		if out.err != nil {
			return nil, render.WrapError(format, out.err)
		}
		return out.data, nil
	case <-ctx.Done():
		return nil, render.WrapError(format,
			errors.Wrap(errors.ErrCodeTimeout, ctx.Err(), "render exceeded %s", timeout))
	}
}

// Stored describes a generation persisted by GenerateAndStore.
type Stored struct {
	ID     string            `json:"id"`
	Result *Result           `json:"-"`
	URLs   map[string]string `json:"urls"`
	Embed  string            `json:"embed"`
}

// GenerateAndStore runs the pipeline, persists the outcome under a fresh
// label ID, and returns the download URLs plus an embeddable iframe
// snippet for the HTML artifact.
func (r *Runner) GenerateAndStore(ctx context.Context, opts Options) (*Stored, error) {
	result, err := r.Execute(ctx, opts)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	rec := &labelstore.Record{
		ID:        id,
		Model:     result.Model,
		Artifacts: result.Artifacts,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.Store.Put(ctx, rec); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "store label")
	}

	urls := make(map[string]string, len(result.Artifacts))
	for format := range result.Artifacts {
		urls[format] = fmt.Sprintf("/api/labels/%s/download/%s", id, format)
	}

	stored := &Stored{ID: id, Result: result, URLs: urls}
	if _, ok := result.Artifacts[FormatHTML]; ok {
		// The HTML label box-sizes to exactly Style.Width.
		stored.Embed = fmt.Sprintf(
			`<iframe src="/api/labels/%s/embed" width="%.0f" frameborder="0" style="border:none;"></iframe>`,
			id, result.Model.Style.Width)
	}

	r.Logger.Info("stored label", "id", id, "formats", len(result.Artifacts))
	return stored, nil
}

// Close releases resources held by the runner (primarily the store).
func (r *Runner) Close() error {
	if r.Store != nil {
		return r.Store.Close()
	}
	return nil
}
