package observability

import (
	"context"
	"testing"
	"time"
)

type recordingHooks struct {
	starts    []string
	completes []string
}

func (r *recordingHooks) OnGenerateStart(_ context.Context, labelType string, _ []string) {
	r.starts = append(r.starts, labelType)
}

func (r *recordingHooks) OnRenderStart(_ context.Context, format string) {
	r.starts = append(r.starts, format)
}

func (r *recordingHooks) OnRenderComplete(_ context.Context, format string, _ int, _ time.Duration, _ error) {
	r.completes = append(r.completes, format)
}

func (r *recordingHooks) OnGenerateComplete(_ context.Context, labelType string, _, _ int, _ time.Duration, _ error) {
	r.completes = append(r.completes, labelType)
}

func TestSetGenerationHooks(t *testing.T) {
	defer SetGenerationHooks(nil)

	rec := &recordingHooks{}
	SetGenerationHooks(rec)

	ctx := context.Background()
	Generation().OnRenderStart(ctx, "pdf")
	Generation().OnRenderComplete(ctx, "pdf", 1024, time.Millisecond, nil)

	if len(rec.starts) != 1 || rec.starts[0] != "pdf" {
		t.Errorf("starts = %v, want [pdf]", rec.starts)
	}
	if len(rec.completes) != 1 || rec.completes[0] != "pdf" {
		t.Errorf("completes = %v, want [pdf]", rec.completes)
	}
}

func TestNilRestoresNoop(t *testing.T) {
	SetGenerationHooks(&recordingHooks{})
	SetGenerationHooks(nil)

	// Must not panic and must not be the recording implementation.
	Generation().OnGenerateStart(context.Background(), "USDA (Old FDA) Vertical", nil)
	if _, ok := Generation().(*recordingHooks); ok {
		t.Error("nil registration did not restore the no-op hooks")
	}
}
