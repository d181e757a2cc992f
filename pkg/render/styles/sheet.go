// Package styles derives the shared visual parameters every label renderer
// draws from.
//
// A Sheet is computed once per request from the validated style settings and
// handed to the HTML, PDF, and PNG sinks unchanged. Geometry lives here in
// CSS pixels; the PDF sink converts to millimeters and the PNG sink applies
// the raster scale, so a row occupies the same proportional space in all
// three formats.
package styles

import (
	"fmt"
	"image/color"

	"github.com/curadolabs/labelgen/pkg/errors"
	"github.com/curadolabs/labelgen/pkg/label"
	"github.com/curadolabs/labelgen/pkg/layout"
)

// Type metrics in CSS pixels. The heading is the oversized panel title,
// title is the recipe name, body covers nutrient lines, small covers the
// footnote and trailing text sections.
const (
	FontHeading  = 28.0
	FontTitle    = 16.0
	FontCalories = 24.0
	FontBody     = 12.0
	FontSmall    = 9.0

	Padding    = 8.0
	LineGap    = 4.0
	IndentStep = 12.0

	RuleHairline = 1.0
	RuleThick    = 5.0
)

// RasterScale is the device pixel ratio applied by the PNG sink. A 300px
// label rasterizes to a 600px-wide image.
const RasterScale = 2.0

// PxPerMM converts CSS pixels to millimeters at the standard 96dpi.
const PxPerMM = 96.0 / 25.4

// MM converts a pixel measure to millimeters for vector output.
func MM(px float64) float64 { return px / PxPerMM }

// Sheet is the resolved visual configuration for one label.
type Sheet struct {
	Width     float64 // label width in CSS pixels
	Alignment string  // left, center, right

	Text       color.RGBA
	Background color.RGBA

	// Original hex strings, kept for CSS emission.
	TextHex       string
	BackgroundHex string
}

// FromStyle resolves a Sheet from validated style settings. Color strings
// are the only fields that can still fail here; a malformed hex value
// surfaces as a validation error naming the style field.
func FromStyle(s label.Style) (Sheet, error) {
	text, err := ParseHex(s.TextColor)
	if err != nil {
		return Sheet{}, errors.NewField(errors.ErrCodeInvalidRequest,
			"label_style.text_color", "invalid color %q", s.TextColor)
	}
	bg, err := ParseHex(s.BackgroundColor)
	if err != nil {
		return Sheet{}, errors.NewField(errors.ErrCodeInvalidRequest,
			"label_style.background_color", "invalid color %q", s.BackgroundColor)
	}
	return Sheet{
		Width:         s.Width,
		Alignment:     s.Alignment,
		Text:          text,
		Background:    bg,
		TextHex:       s.TextColor,
		BackgroundHex: s.BackgroundColor,
	}, nil
}

// ParseHex parses a "#RRGGBB" or "#RGB" color string.
func ParseHex(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 4:
		_, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 17
		c.G *= 17
		c.B *= 17
	default:
		err = fmt.Errorf("styles: color %q is not #RGB or #RRGGBB", s)
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("styles: parse color %q: %w", s, err)
	}
	return c, nil
}

// RuleWeight returns the stroke weight in pixels for a separator row.
func RuleWeight(t layout.Thickness) float64 {
	if t == layout.Thick {
		return RuleThick
	}
	return RuleHairline
}

// FontFor returns the pixel size and bold flag for a row's primary text.
func FontFor(r layout.Row) (size float64, bold bool) {
	switch r.Kind {
	case layout.KindHeader:
		return FontTitle, true
	case layout.KindCalories:
		return FontCalories, true
	case layout.KindServingInfo, layout.KindNutrient:
		return FontBody, true
	case layout.KindSubNutrient, layout.KindVitamin, layout.KindDailyValueHeader:
		return FontBody, false
	case layout.KindText:
		switch r.ID {
		case layout.IDNutritionHeading:
			return FontHeading, true
		case layout.IDAmountPerServing:
			return FontBody, true
		default:
			return FontSmall, false
		}
	default:
		return FontBody, false
	}
}

// RowHeight returns the vertical space a row occupies in pixels, excluding
// wrapped text rows whose height depends on line count.
func RowHeight(r layout.Row) float64 {
	switch r.Kind {
	case layout.KindSeparator:
		return RuleWeight(r.Thickness) + LineGap
	case layout.KindServingInfo:
		// Two lines: the servings-per-container line and the serving size.
		return 2 * (FontBody + LineGap)
	}
	size, _ := FontFor(r)
	return size + LineGap
}
