package styles

import (
	"image/color"
	"testing"

	"github.com/curadolabs/labelgen/pkg/errors"
	"github.com/curadolabs/labelgen/pkg/label"
	"github.com/curadolabs/labelgen/pkg/layout"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#000000", color.RGBA{0, 0, 0, 0xff}, false},
		{"#FFFFFF", color.RGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"#1a2b3c", color.RGBA{0x1a, 0x2b, 0x3c, 0xff}, false},
		{"#fff", color.RGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"red", color.RGBA{}, true},
		{"#12345", color.RGBA{}, true},
		{"", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %t", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromStyle(t *testing.T) {
	s := label.Style{
		Width:           300,
		Alignment:       "center",
		TextColor:       "#112233",
		BackgroundColor: "#FFFFFF",
	}
	sheet, err := FromStyle(s)
	if err != nil {
		t.Fatalf("FromStyle() error = %v", err)
	}
	if sheet.Width != 300 {
		t.Errorf("Width = %v, want 300", sheet.Width)
	}
	if sheet.Alignment != "center" {
		t.Errorf("Alignment = %q, want center", sheet.Alignment)
	}
	if want := (color.RGBA{0x11, 0x22, 0x33, 0xff}); sheet.Text != want {
		t.Errorf("Text = %v, want %v", sheet.Text, want)
	}
	if sheet.BackgroundHex != "#FFFFFF" {
		t.Errorf("BackgroundHex = %q, want #FFFFFF", sheet.BackgroundHex)
	}
}

func TestRowHeight(t *testing.T) {
	tests := []struct {
		name string
		row  layout.Row
		want float64
	}{
		{"nutrient", layout.Row{Kind: layout.KindNutrient}, FontBody + LineGap},
		{"hairline", layout.Row{Kind: layout.KindSeparator, Thickness: layout.Hairline}, RuleHairline + LineGap},
		{"thick", layout.Row{Kind: layout.KindSeparator, Thickness: layout.Thick}, RuleThick + LineGap},
		// Serving info occupies two lines: servings count and serving size.
		{"serving info", layout.Row{Kind: layout.KindServingInfo}, 2 * (FontBody + LineGap)},
		{"calories", layout.Row{Kind: layout.KindCalories}, FontCalories + LineGap},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RowHeight(tt.row); got != tt.want {
				t.Errorf("RowHeight(%s) = %v, want %v", tt.row.Kind, got, tt.want)
			}
		})
	}
}

func TestFromStyleBadColor(t *testing.T) {
	s := label.Style{Width: 300, TextColor: "black", BackgroundColor: "#FFFFFF"}
	_, err := FromStyle(s)
	if !errors.Is(err, errors.ErrCodeInvalidRequest) {
		t.Fatalf("FromStyle() error = %v, want %s", err, errors.ErrCodeInvalidRequest)
	}
	if got := errors.Field(err); got != "label_style.text_color" {
		t.Errorf("Field() = %q, want label_style.text_color", got)
	}
}
