package layout

import (
	"strings"
	"time"

	"github.com/curadolabs/labelgen/pkg/errors"
	"github.com/curadolabs/labelgen/pkg/label"
)

// BuilderFunc produces the ordered row sequence for one label type.
// percents maps nutrient keys to truncated %DV figures; keys without a
// reference intake are absent. generatedAt stamps the trailing
// timestamp row and must be identical across formats of one request.
type BuilderFunc func(m *label.Model, percents map[string]int, generatedAt time.Time) []Row

var builders = map[string]BuilderFunc{}

// Register installs the builder for a label type. Later registrations
// for the same type win, which lets tests swap builders in.
func Register(labelType string, fn BuilderFunc) {
	builders[labelType] = fn
}

// Build runs the registered builder for the model's label type.
// Normalization guarantees the type is registered, so an error here
// means the model was constructed by hand.
func Build(m *label.Model, percents map[string]int, generatedAt time.Time) ([]Row, error) {
	fn, ok := builders[m.LabelType]
	if !ok {
		return nil, errors.NewField(errors.ErrCodeInvalidLabelType, "label_type",
			"no layout registered for label type %q", m.LabelType)
	}
	return fn(m, percents, generatedAt), nil
}

func init() {
	Register(label.TypeUSDAVertical, buildUSDAVertical)
}

// applyCase transforms s per the style's text_case setting.
func applyCase(s, textCase string) string {
	switch textCase {
	case "uppercase":
		return strings.ToUpper(s)
	case "lowercase":
		return strings.ToLower(s)
	default:
		return s
	}
}
