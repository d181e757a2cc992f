package sink

import (
	"bytes"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/curadolabs/labelgen/pkg/fonts"
	"github.com/curadolabs/labelgen/pkg/layout"
	"github.com/curadolabs/labelgen/pkg/render/styles"
)

// PNG rasterizes the label at the sheet's raster scale: a 300px-wide label
// produces a 600px-wide image. Geometry matches the PDF sink pixel for
// pixel at scale 1.
func PNG(rows []layout.Row, sheet styles.Sheet) ([]byte, error) {
	d := &pngDrawer{
		sheet: sheet,
		faces: map[faceKey]font.Face{},
	}
	defer d.closeFaces()

	height := d.measure(rows)

	scaled := func(v float64) int { return int(v*styles.RasterScale + 0.5) }
	dc := gg.NewContext(scaled(sheet.Width), scaled(height))
	dc.Scale(styles.RasterScale, styles.RasterScale)
	dc.SetColor(sheet.Background)
	dc.Clear()

	d.dc = dc
	d.y = styles.Padding
	for _, r := range rows {
		d.draw(r)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type faceKey struct {
	size float64
	bold bool
}

type pngDrawer struct {
	sheet styles.Sheet
	dc    *gg.Context
	faces map[faceKey]font.Face
	y     float64 // cursor from top, px
}

func (d *pngDrawer) face(size float64, bold bool) font.Face {
	key := faceKey{size, bold}
	if f, ok := d.faces[key]; ok {
		return f
	}
	ttf := fonts.Regular()
	if bold {
		ttf = fonts.Bold()
	}
	f := truetype.NewFace(ttf, &truetype.Options{Size: size})
	d.faces[key] = f
	return f
}

func (d *pngDrawer) closeFaces() {
	for _, f := range d.faces {
		f.Close()
	}
}

func (d *pngDrawer) contentWidth() float64 { return d.sheet.Width - 2*styles.Padding }

func (d *pngDrawer) textWidth(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

// measure walks the rows once to compute the image height in px.
func (d *pngDrawer) measure(rows []layout.Row) float64 {
	h := 2 * styles.Padding
	for _, r := range rows {
		if r.Kind == layout.KindText {
			size, bold := styles.FontFor(r)
			lines := d.wrap(d.face(size, bold), r.Text, d.contentWidth())
			h += float64(len(lines))*size + styles.LineGap
			continue
		}
		h += styles.RowHeight(r)
	}
	return h
}

func (d *pngDrawer) draw(r layout.Row) {
	right := d.sheet.Width - styles.Padding

	switch r.Kind {
	case layout.KindHeader:
		d.alignedText(r.Text, styles.FontTitle, true)

	case layout.KindSeparator:
		weight := styles.RuleWeight(r.Thickness)
		d.dc.SetColor(d.sheet.Text)
		d.dc.DrawRectangle(styles.Padding, d.y, d.contentWidth(), weight)
		d.dc.Fill()
		d.y += weight + styles.LineGap

	case layout.KindServingInfo:
		d.text(styles.Padding, r.ServingsLine, styles.FontBody, false)
		d.y += styles.FontBody + styles.LineGap
		d.text(styles.Padding, r.Text, styles.FontBody, true)
		d.textRight(right, r.ServingSize, styles.FontBody, true)
		d.y += styles.FontBody + styles.LineGap

	case layout.KindCalories:
		// Label and value share the value's baseline.
		base := d.y + d.ascent(styles.FontCalories, true)
		d.textBaseline(styles.Padding, base, r.Label, styles.FontTitle, true)
		value := layout.FormatAmount(r.Value)
		face := d.face(styles.FontCalories, true)
		d.textBaseline(right-d.textWidth(face, value), base, value, styles.FontCalories, true)
		d.y += styles.FontCalories + styles.LineGap

	case layout.KindDailyValueHeader:
		d.textRight(right, r.Text, styles.FontBody, true)
		d.y += styles.FontBody + styles.LineGap

	case layout.KindNutrient, layout.KindSubNutrient, layout.KindVitamin:
		d.nutrientRow(r, right)

	case layout.KindText:
		size, bold := styles.FontFor(r)
		d.textBlock(r, size, bold)
	}
}

func (d *pngDrawer) nutrientRow(r layout.Row, right float64) {
	x := styles.Padding + float64(r.Indent)*styles.IndentStep
	nameBold := r.Kind == layout.KindNutrient
	d.text(x, r.Label, styles.FontBody, nameBold)

	if amount := r.AmountText(); amount != "" {
		nameFace := d.face(styles.FontBody, nameBold)
		d.text(x+d.textWidth(nameFace, r.Label+" "), amount, styles.FontBody, false)
	}
	if pct := r.PercentText(); pct != "" {
		d.textRight(right, pct, styles.FontBody, true)
	}
	d.y += styles.FontBody + styles.LineGap
}

// textBlock draws a wrapped free-text row honoring the sheet alignment.
// Panel-internal text (heading, amount-per-serving, footnote) stays left.
func (d *pngDrawer) textBlock(r layout.Row, size float64, bold bool) {
	align := d.sheet.Alignment
	switch r.ID {
	case layout.IDNutritionHeading, layout.IDAmountPerServing, layout.IDFootnote:
		align = "left"
	}
	face := d.face(size, bold)
	for _, line := range d.wrap(face, r.Text, d.contentWidth()) {
		d.drawAligned(line, size, bold, align)
		d.y += size
	}
	d.y += styles.LineGap
}

func (d *pngDrawer) alignedText(text string, size float64, bold bool) {
	d.drawAligned(text, size, bold, d.sheet.Alignment)
	d.y += size + styles.LineGap
}

func (d *pngDrawer) drawAligned(text string, size float64, bold bool, align string) {
	switch align {
	case "center":
		face := d.face(size, bold)
		d.text((d.sheet.Width-d.textWidth(face, text))/2, text, size, bold)
	case "right":
		d.textRight(d.sheet.Width-styles.Padding, text, size, bold)
	default:
		d.text(styles.Padding, text, size, bold)
	}
}

func (d *pngDrawer) ascent(size float64, bold bool) float64 {
	return float64(d.face(size, bold).Metrics().Ascent) / 64
}

func (d *pngDrawer) text(x float64, s string, size float64, bold bool) {
	d.textBaseline(x, d.y+d.ascent(size, bold), s, size, bold)
}

func (d *pngDrawer) textRight(right float64, s string, size float64, bold bool) {
	face := d.face(size, bold)
	d.textBaseline(right-d.textWidth(face, s), d.y+d.ascent(size, bold), s, size, bold)
}

func (d *pngDrawer) textBaseline(x, baseline float64, s string, size float64, bold bool) {
	if s == "" {
		return
	}
	d.dc.SetFontFace(d.face(size, bold))
	d.dc.SetColor(d.sheet.Text)
	d.dc.DrawString(s, x, baseline)
}

// wrap greedily wraps text to maxWidth px using the face's advance widths.
func (d *pngDrawer) wrap(face font.Face, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if d.textWidth(face, current+" "+w) <= maxWidth {
			current += " " + w
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}
