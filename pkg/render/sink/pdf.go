package sink

import (
	"bytes"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/curadolabs/labelgen/pkg/fonts"
	"github.com/curadolabs/labelgen/pkg/layout"
	"github.com/curadolabs/labelgen/pkg/render/styles"
)

// PDF renders the label as a single-page vector PDF. The page height is
// measured from the rows before drawing, so the label always fits exactly.
func PDF(rows []layout.Row, sheet styles.Sheet) ([]byte, error) {
	family := canvas.NewFontFamily("go")
	if err := family.LoadFont(fonts.RegularTTF(), 0, canvas.FontRegular); err != nil {
		return nil, err
	}
	if err := family.LoadFont(fonts.BoldTTF(), 0, canvas.FontBold); err != nil {
		return nil, err
	}

	d := &pdfDrawer{
		sheet:  sheet,
		family: family,
		width:  styles.MM(sheet.Width),
		pad:    styles.MM(styles.Padding),
	}

	height := d.measure(rows)
	c := canvas.New(d.width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV)

	ctx.SetFillColor(sheet.Background)
	ctx.DrawPath(0, 0, canvas.Rectangle(d.width, height))

	d.ctx = ctx
	d.y = d.pad
	for _, r := range rows {
		d.draw(r)
	}

	var buf bytes.Buffer
	w := pdf.New(&buf, d.width, height, nil)
	c.RenderTo(w)
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pdfDrawer struct {
	sheet  styles.Sheet
	family *canvas.FontFamily
	ctx    *canvas.Context

	width float64 // page width, mm
	pad   float64 // content padding, mm
	y     float64 // cursor from top, mm
}

// face builds a font face for a pixel size. Canvas face sizes are points.
func (d *pdfDrawer) face(px float64, bold bool) *canvas.FontFace {
	style := canvas.FontRegular
	if bold {
		style = canvas.FontBold
	}
	return d.family.Face(px*0.75, d.sheet.Text, style, canvas.FontNormal)
}

func (d *pdfDrawer) contentWidth() float64 { return d.width - 2*d.pad }

// measure walks the rows once to compute the page height in mm.
func (d *pdfDrawer) measure(rows []layout.Row) float64 {
	h := 2 * d.pad
	for _, r := range rows {
		if r.Kind == layout.KindText {
			size, bold := styles.FontFor(r)
			lines := wrapText(d.face(size, bold), r.Text, d.contentWidth())
			h += float64(len(lines))*styles.MM(size) + styles.MM(styles.LineGap)
			continue
		}
		h += styles.MM(styles.RowHeight(r))
	}
	return h
}

func (d *pdfDrawer) draw(r layout.Row) {
	switch r.Kind {
	case layout.KindHeader:
		d.alignedText(r.Text, styles.FontTitle, true)

	case layout.KindSeparator:
		weight := styles.MM(styles.RuleWeight(r.Thickness))
		d.ctx.SetFillColor(d.sheet.Text)
		d.ctx.DrawPath(d.pad, d.y, canvas.Rectangle(d.contentWidth(), weight))
		d.y += weight + styles.MM(styles.LineGap)

	case layout.KindServingInfo:
		face := d.face(styles.FontBody, false)
		d.textAt(d.pad, face, r.ServingsLine, canvas.Left)
		d.y += styles.MM(styles.FontBody + styles.LineGap)
		boldFace := d.face(styles.FontBody, true)
		d.textAt(d.pad, boldFace, r.Text, canvas.Left)
		d.textAt(d.width-d.pad, boldFace, r.ServingSize, canvas.Right)
		d.y += styles.MM(styles.FontBody + styles.LineGap)

	case layout.KindCalories:
		big := d.face(styles.FontCalories, true)
		// Label and value share the value's baseline.
		base := d.y + big.Metrics().Ascent
		label := d.face(styles.FontTitle, true)
		d.ctx.DrawText(d.pad, base, canvas.NewTextLine(label, r.Label, canvas.Left))
		d.ctx.DrawText(d.width-d.pad, base, canvas.NewTextLine(big, layout.FormatAmount(r.Value), canvas.Right))
		d.y += styles.MM(styles.FontCalories + styles.LineGap)

	case layout.KindDailyValueHeader:
		face := d.face(styles.FontBody, true)
		d.textAt(d.width-d.pad, face, r.Text, canvas.Right)
		d.y += styles.MM(styles.FontBody + styles.LineGap)

	case layout.KindNutrient, layout.KindSubNutrient, layout.KindVitamin:
		d.nutrientRow(r)

	case layout.KindText:
		size, bold := styles.FontFor(r)
		d.textBlock(r, size, bold)
	}
}

func (d *pdfDrawer) nutrientRow(r layout.Row) {
	x := d.pad + styles.MM(float64(r.Indent)*styles.IndentStep)
	nameFace := d.face(styles.FontBody, r.Kind == layout.KindNutrient)
	d.textAt(x, nameFace, r.Label, canvas.Left)

	if amount := r.AmountText(); amount != "" {
		amountFace := d.face(styles.FontBody, false)
		d.textAt(x+nameFace.TextWidth(r.Label+" "), amountFace, amount, canvas.Left)
	}
	if pct := r.PercentText(); pct != "" {
		d.textAt(d.width-d.pad, d.face(styles.FontBody, true), pct, canvas.Right)
	}
	d.y += styles.MM(styles.FontBody + styles.LineGap)
}

// textBlock draws a wrapped free-text row honoring the sheet alignment.
// Panel-internal text (heading, amount-per-serving, footnote) stays left.
func (d *pdfDrawer) textBlock(r layout.Row, size float64, bold bool) {
	align := d.sheet.Alignment
	switch r.ID {
	case layout.IDNutritionHeading, layout.IDAmountPerServing, layout.IDFootnote:
		align = "left"
	}
	face := d.face(size, bold)
	for _, line := range wrapText(face, r.Text, d.contentWidth()) {
		d.drawAligned(face, line, align)
		d.y += styles.MM(size)
	}
	d.y += styles.MM(styles.LineGap)
}

func (d *pdfDrawer) alignedText(text string, size float64, bold bool) {
	face := d.face(size, bold)
	d.drawAligned(face, text, d.sheet.Alignment)
	d.y += styles.MM(size + styles.LineGap)
}

func (d *pdfDrawer) drawAligned(face *canvas.FontFace, text, align string) {
	switch align {
	case "center":
		d.textAt(d.width/2, face, text, canvas.Center)
	case "right":
		d.textAt(d.width-d.pad, face, text, canvas.Right)
	default:
		d.textAt(d.pad, face, text, canvas.Left)
	}
}

func (d *pdfDrawer) textAt(x float64, face *canvas.FontFace, text string, anchor canvas.TextAlign) {
	if text == "" {
		return
	}
	d.ctx.DrawText(x, d.y+face.Metrics().Ascent, canvas.NewTextLine(face, text, anchor))
}

// wrapText greedily wraps text to the given width in mm, measured with the
// face's own metrics. A single overlong word occupies its own line.
func wrapText(face *canvas.FontFace, text string, maxWidth float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}
	var lines []string
	current := words[0]
	for _, w := range words[1:] {
		if face.TextWidth(current+" "+w) <= maxWidth {
			current += " " + w
			continue
		}
		lines = append(lines, current)
		current = w
	}
	return append(lines, current)
}
