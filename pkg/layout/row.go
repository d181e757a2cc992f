// Package layout turns a validated label model and its computed daily-value
// percentages into an ordered, format-agnostic sequence of rows.
//
// A Row is one renderable unit of the label: a nutrient line, a separator, a
// heading, a free-text block. Builders registered per label type decide row
// selection and ordering; the HTML, PDF, and PNG sinks are plain serializers
// over the resulting sequence and never branch on the label type. All display
// text, including number formatting and localization, is composed here so the
// three output formats cannot drift apart.
package layout

import "strconv"

// Kind discriminates the row variants.
type Kind string

// Row kinds.
const (
	KindHeader           Kind = "header"             // recipe title
	KindServingInfo      Kind = "serving_info"       // servings per container + serving size
	KindCalories         Kind = "calories"           // large calories callout
	KindDailyValueHeader Kind = "daily_value_header" // "% Daily Value*" column header
	KindNutrient         Kind = "nutrient"           // core nutrient line
	KindSubNutrient      Kind = "subnutrient"        // nested under a parent nutrient
	KindVitamin          Kind = "vitamin"            // vitamin/mineral line
	KindSeparator        Kind = "separator"          // horizontal rule
	KindText             Kind = "text"               // free text (ingredients, footnote, ...)
)

// Thickness selects the separator weight.
type Thickness string

// Separator thicknesses.
const (
	Hairline Thickness = "hairline"
	Thick    Thickness = "thick"
)

// Well-known IDs for text rows and nutrient rows. Renderers may use these
// for markup ids; tests use them to locate rows.
const (
	IDNutritionHeading  = "nutrition_heading"
	IDAmountPerServing  = "amount_per_serving"
	IDFootnote          = "footnote"
	IDIngredients       = "ingredients"
	IDAllergens         = "allergens"
	IDFacilityAllergens = "facility_allergens"
	IDBusinessAddress   = "business_address"
	IDTimestamp         = "timestamp"
)

// Row is one renderable unit of the label. Only the fields relevant to the
// row's Kind are set; renderers must treat rows as immutable.
type Row struct {
	Kind Kind

	// ID identifies text rows and carries the nutrient key for nutrient,
	// subnutrient, and vitamin rows.
	ID string

	// Text holds the content of Header and Text rows, the serving-size
	// caption of ServingInfo rows, and the column header of
	// DailyValueHeader rows.
	Text string

	// Nutrient fields.
	Label         string  // display name, fully localized
	Value         float64 // amount in canonical units
	Unit          string  // display unit suffix ("g", "mg", "mcg"); empty for calories
	AmountInLabel bool    // amount is embedded in Label; no separate amount column
	Indent        int     // 0 = flush left, 1 = subgroup, 2 = sub-subgroup
	Percent       *int    // %DV, nil when the nutrient has no reference intake
	Parent        string  // parent nutrient key for SubNutrient rows

	// Separator fields.
	Thickness Thickness

	// ServingInfo fields.
	ServingsPerPackage float64
	ServingsLine       string // composed "N servings per container" line
	ServingSize        string // composed serving size, e.g. "1 cup (240g)"
}

// FormatAmount renders a nutrient amount the way every output format must
// display it: no exponent, no trailing zeros, "74" not "74.0".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AmountText returns the row's displayed amount including its unit suffix,
// e.g. "74mg". Empty when the amount is embedded in the label.
func (r Row) AmountText() string {
	if r.AmountInLabel {
		return ""
	}
	return FormatAmount(r.Value) + r.Unit
}

// PercentText returns the displayed percent daily value ("3%"), or the
// empty string for rows without one.
func (r Row) PercentText() string {
	if r.Percent == nil {
		return ""
	}
	return strconv.Itoa(*r.Percent) + "%"
}
