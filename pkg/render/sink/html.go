// Package sink implements the label output formats.
//
// Each sink serializes the same row sequence independently: HTML writes
// markup with embedded CSS, PDF draws vector text and rules onto a single
// page, PNG rasterizes at 2x resolution. No sink consults the label model;
// everything they need is in the rows and the style sheet.
package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/curadolabs/labelgen/pkg/fonts"
	"github.com/curadolabs/labelgen/pkg/layout"
	"github.com/curadolabs/labelgen/pkg/render/styles"
)

// HTML renders the label as a standalone HTML document. It is infallible;
// the error return exists to satisfy the renderer contract.
func HTML(rows []layout.Row, sheet styles.Sheet) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<style>\n")
	writeCSS(&buf, sheet)
	buf.WriteString("</style>\n</head>\n<body>\n")
	fmt.Fprintf(&buf, "<div class=\"label\">\n")

	for _, r := range rows {
		writeRow(&buf, r)
	}

	buf.WriteString("</div>\n</body>\n</html>\n")
	return buf.Bytes(), nil
}

func writeCSS(buf *bytes.Buffer, sheet styles.Sheet) {
	fmt.Fprintf(buf, `body { margin: 0; font-family: %s; }
.label { width: %.0fpx; padding: %.0fpx; box-sizing: border-box; color: %s; background: %s; text-align: %s; }
.title { font-size: %.0fpx; font-weight: bold; margin-bottom: %.0fpx; }
.heading { font-size: %.0fpx; font-weight: 900; line-height: 1; text-align: left; }
.serving, .row, .calories { display: flex; justify-content: space-between; font-size: %.0fpx; text-align: left; }
.serving { flex-direction: column; }
.serving .size { display: flex; justify-content: space-between; font-weight: bold; }
.calories { font-size: %.0fpx; font-weight: 900; align-items: flex-end; }
.amount-per, .row .name b { font-weight: bold; }
.amount-per, .dv-header { font-size: %.0fpx; text-align: left; }
.dv-header { text-align: right; font-weight: bold; }
.row .name { flex: 1; }
.indent-1 { padding-left: %.0fpx; }
.indent-2 { padding-left: %.0fpx; }
.text { font-size: %.0fpx; margin-top: %.0fpx; text-align: left; }
hr { border: none; margin: %.0fpx 0; background: %s; }
hr.hairline { height: %.0fpx; }
hr.thick { height: %.0fpx; }
`,
		fonts.Family,
		sheet.Width, styles.Padding, sheet.TextHex, sheet.BackgroundHex, sheet.Alignment,
		styles.FontTitle, styles.LineGap,
		styles.FontHeading,
		styles.FontBody,
		styles.FontCalories,
		styles.FontBody,
		styles.IndentStep, 2*styles.IndentStep,
		styles.FontSmall, styles.LineGap,
		styles.LineGap/2, sheet.TextHex,
		styles.RuleHairline, styles.RuleThick)
}

func writeRow(buf *bytes.Buffer, r layout.Row) {
	switch r.Kind {
	case layout.KindHeader:
		fmt.Fprintf(buf, "<div class=\"title\">%s</div>\n", html.EscapeString(r.Text))

	case layout.KindSeparator:
		fmt.Fprintf(buf, "<hr class=\"%s\">\n", r.Thickness)

	case layout.KindServingInfo:
		buf.WriteString("<div class=\"serving\">\n")
		fmt.Fprintf(buf, "  <div>%s</div>\n", html.EscapeString(r.ServingsLine))
		fmt.Fprintf(buf, "  <div class=\"size\"><span>%s</span><span>%s</span></div>\n",
			html.EscapeString(r.Text), html.EscapeString(r.ServingSize))
		buf.WriteString("</div>\n")

	case layout.KindCalories:
		fmt.Fprintf(buf, "<div class=\"calories\"><span>%s</span><span>%s</span></div>\n",
			html.EscapeString(r.Label), layout.FormatAmount(r.Value))

	case layout.KindDailyValueHeader:
		fmt.Fprintf(buf, "<div class=\"dv-header\">%s</div>\n", html.EscapeString(r.Text))

	case layout.KindNutrient, layout.KindSubNutrient, layout.KindVitamin:
		writeNutrientRow(buf, r)

	case layout.KindText:
		fmt.Fprintf(buf, "<div class=\"text\" id=\"%s\">%s</div>\n", r.ID, html.EscapeString(r.Text))
	}
}

func writeNutrientRow(buf *bytes.Buffer, r layout.Row) {
	fmt.Fprintf(buf, "<div class=\"row indent-%d\" id=\"%s\"><span class=\"name\">", r.Indent, r.ID)
	if r.Kind == layout.KindNutrient {
		fmt.Fprintf(buf, "<b>%s</b>", html.EscapeString(r.Label))
	} else {
		buf.WriteString(html.EscapeString(r.Label))
	}
	if amount := r.AmountText(); amount != "" {
		fmt.Fprintf(buf, " %s", html.EscapeString(amount))
	}
	buf.WriteString("</span>")
	if pct := r.PercentText(); pct != "" {
		fmt.Fprintf(buf, "<span class=\"dv\"><b>%s</b></span>", pct)
	}
	buf.WriteString("</div>\n")
}
