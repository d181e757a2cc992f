package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/curadolabs/labelgen/pkg/errors"
	"github.com/curadolabs/labelgen/pkg/label"
	"github.com/curadolabs/labelgen/pkg/labelstore"
	"github.com/curadolabs/labelgen/pkg/layout"
	"github.com/curadolabs/labelgen/pkg/render"
	"github.com/curadolabs/labelgen/pkg/render/styles"
)

func testRequest() *label.Request {
	return &label.Request{
		RecipeTitle: "Horchata Concentrate",
		RecipeData: &label.RecipeData{
			Items: []label.Ingredient{
				{FDCID: 1101256, Description: "Rice"},
				{FDCID: 1103276, Description: "Cinnamon"},
			},
			Total: map[string]float64{"calories": 150},
		},
		BusinessInfo: &label.BusinessInfo{BusinessName: "Curado Kitchen"},
		NutritionAdjustments: map[string]float64{
			"calories":      150,
			"sodium":        74,
			"carbohydrates": 33,
			"sugars":        22,
			"added_sugars":  12,
		},
	}
}

func testOptions() Options {
	return Options{
		Request:     testRequest(),
		GeneratedAt: time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC),
	}
}

func TestValidateAndSetDefaults(t *testing.T) {
	opts := Options{Request: testRequest()}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error = %v", err)
	}
	if len(opts.Formats) != 3 {
		t.Errorf("Formats = %v, want all three", opts.Formats)
	}
	if opts.Timeout != DefaultRenderTimeout {
		t.Errorf("Timeout = %v, want %v", opts.Timeout, DefaultRenderTimeout)
	}
	if opts.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not defaulted")
	}

	// Idempotent: a second call leaves everything in place.
	formats := opts.Formats
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("second ValidateAndSetDefaults() error = %v", err)
	}
	if &formats[0] != &opts.Formats[0] {
		t.Error("second validation reallocated formats")
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		code errors.Code
	}{
		{"missing request", Options{}, errors.ErrCodeMissingField},
		{"bad format", Options{Request: testRequest(), Formats: []string{"svg"}}, errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestExecuteAllFormats(t *testing.T) {
	r := NewRunner(nil, nil)
	defer r.Close()

	result, err := r.Execute(context.Background(), testOptions())
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, format := range AllFormats {
		if len(result.Artifacts[format]) == 0 {
			t.Errorf("Artifacts[%s] is empty", format)
		}
	}
	if len(result.Errors) != 0 {
		t.Errorf("Errors = %v, want none", result.Errors)
	}
	if !bytes.HasPrefix(result.Artifacts[FormatPDF], []byte("%PDF-")) {
		t.Error("pdf artifact missing header")
	}
	if !strings.Contains(string(result.Artifacts[FormatHTML]), "Horchata Concentrate") {
		t.Error("html artifact missing recipe title")
	}
	if result.Percents["sodium"] != 3 {
		t.Errorf("Percents[sodium] = %d, want 3", result.Percents["sodium"])
	}
	if result.Stats.RowCount != len(result.Rows) {
		t.Errorf("Stats.RowCount = %d, want %d", result.Stats.RowCount, len(result.Rows))
	}
}

func TestExecuteValidationFailure(t *testing.T) {
	r := NewRunner(nil, nil)
	defer r.Close()

	opts := testOptions()
	opts.Request.RecipeTitle = ""
	_, err := r.Execute(context.Background(), opts)
	if !errors.IsValidation(err) {
		t.Fatalf("Execute() error = %v, want validation error", err)
	}
	if got := errors.Field(err); got != "recipe_title" {
		t.Errorf("Field() = %q, want recipe_title", got)
	}
}

func TestExecutePartialFailure(t *testing.T) {
	r := NewRunner(nil, nil)
	defer r.Close()
	r.Sinks[FormatPNG] = func([]layout.Row, styles.Sheet) ([]byte, error) {
		return nil, stderrors.New("encoder exploded")
	}

	result, err := r.Execute(context.Background(), testOptions())
	if err != nil {
		t.Fatalf("Execute() error = %v, want partial success", err)
	}
	if _, ok := result.Artifacts[FormatPNG]; ok {
		t.Error("failed format still produced an artifact")
	}
	if len(result.Artifacts[FormatHTML]) == 0 || len(result.Artifacts[FormatPDF]) == 0 {
		t.Error("surviving formats missing artifacts")
	}

	pngErr := result.Errors[FormatPNG]
	var re *render.Error
	if !stderrors.As(pngErr, &re) {
		t.Fatalf("Errors[png] = %v, want *render.Error", pngErr)
	}
	if re.Format != FormatPNG {
		t.Errorf("render error format = %q, want png", re.Format)
	}
}

func TestExecuteAllFormatsFail(t *testing.T) {
	r := NewRunner(nil, nil)
	defer r.Close()
	for _, f := range AllFormats {
		r.Sinks[f] = func([]layout.Row, styles.Sheet) ([]byte, error) {
			return nil, stderrors.New("boom")
		}
	}

	_, err := r.Execute(context.Background(), testOptions())
	if !errors.Is(err, errors.ErrCodeRenderFailed) {
		t.Fatalf("Execute() error = %v, want %s", err, errors.ErrCodeRenderFailed)
	}
}

func TestExecuteRenderTimeout(t *testing.T) {
	r := NewRunner(nil, nil)
	defer r.Close()
	r.Sinks[FormatPDF] = func([]layout.Row, styles.Sheet) ([]byte, error) {
		time.Sleep(time.Second)
		return []byte("late"), nil
	}

	opts := testOptions()
	opts.Formats = []string{FormatPDF, FormatHTML}
	opts.Timeout = 10 * time.Millisecond
	result, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !errors.Is(result.Errors[FormatPDF], errors.ErrCodeTimeout) {
		t.Errorf("Errors[pdf] = %v, want %s", result.Errors[FormatPDF], errors.ErrCodeTimeout)
	}
	if len(result.Artifacts[FormatHTML]) == 0 {
		t.Error("html artifact missing")
	}
}

func TestExecuteDeterministic(t *testing.T) {
	r := NewRunner(nil, nil)
	defer r.Close()

	opts := testOptions()
	opts.Formats = []string{FormatHTML}
	a, err := r.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	b, err := r.Execute(context.Background(), testOptionsWithFormats(FormatHTML))
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !bytes.Equal(a.Artifacts[FormatHTML], b.Artifacts[FormatHTML]) {
		t.Error("identical requests produced different html artifacts")
	}
}

func testOptionsWithFormats(formats ...string) Options {
	opts := testOptions()
	opts.Formats = formats
	return opts
}

func TestGenerateAndStore(t *testing.T) {
	store := labelstore.NewMemoryStore()
	r := NewRunner(store, nil)
	defer r.Close()

	stored, err := r.GenerateAndStore(context.Background(), testOptions())
	if err != nil {
		t.Fatalf("GenerateAndStore() error = %v", err)
	}
	if stored.ID == "" {
		t.Fatal("stored ID is empty")
	}
	if want := "/api/labels/" + stored.ID + "/download/pdf"; stored.URLs[FormatPDF] != want {
		t.Errorf("URLs[pdf] = %q, want %q", stored.URLs[FormatPDF], want)
	}
	if !strings.Contains(stored.Embed, stored.ID) {
		t.Errorf("Embed = %q, does not reference label ID", stored.Embed)
	}
	if !strings.Contains(stored.Embed, "<iframe") {
		t.Errorf("Embed = %q, want iframe snippet", stored.Embed)
	}
	// The iframe is sized to the label's rendered width.
	if !strings.Contains(stored.Embed, `width="300"`) {
		t.Errorf("Embed = %q, want width matching the default label width", stored.Embed)
	}

	rec, err := store.Get(context.Background(), stored.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !bytes.Equal(rec.Artifacts[FormatPDF], stored.Result.Artifacts[FormatPDF]) {
		t.Error("stored pdf differs from generated pdf")
	}
	if rec.Model.RecipeTitle != "Horchata Concentrate" {
		t.Errorf("stored model title = %q", rec.Model.RecipeTitle)
	}
}
