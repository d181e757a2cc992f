// Package nutrition computes percent-of-daily-reference-intake values for
// label nutrients.
//
// The reference table is a process-wide immutable constant: the FDA daily
// reference intakes used on the standard nutrition facts panel. Percentages
// truncate toward zero rather than round, matching the regulatory-label
// convention of never overstating %DV.
package nutrition

// Reference intake amounts, keyed by nutrient adjustment key. Amounts are in
// the same canonical units the adjustments use (grams, milligrams,
// micrograms). Nutrients without a reference intake (calories, trans fat,
// total sugars, protein) have no entry and render without a percentage.
var dailyValues = map[string]float64{
	"fat":           78,   // g
	"saturated_fat": 20,   // g
	"cholesterol":   300,  // mg
	"sodium":        2300, // mg
	"carbohydrates": 275,  // g
	"dietary_fiber": 28,   // g
	"added_sugars":  50,   // g
	"vitamin_d":     20,   // mcg
	"calcium":       1300, // mg
	"iron":          18,   // mg
	"potassium":     4700, // mg
}

// Reference returns the daily reference intake for a nutrient key.
// ok is false for nutrients without a reference intake.
func Reference(key string) (amount float64, ok bool) {
	amount, ok = dailyValues[key]
	return amount, ok
}

// Percent computes the percent daily value for one nutrient, truncated
// toward zero. ok is false when the nutrient has no reference intake.
func Percent(key string, value float64) (percent int, ok bool) {
	ref, ok := dailyValues[key]
	if !ok {
		return 0, false
	}
	return int(value * 100 / ref), true
}

// Percents computes the percent daily value for every adjustment key that
// has a reference intake. Keys without a reference are absent from the
// result; a zero value still yields an entry of 0 (row visibility is the
// layout builder's concern, not this package's).
func Percents(adjustments map[string]float64) map[string]int {
	out := make(map[string]int, len(dailyValues))
	for key, value := range adjustments {
		if pct, ok := Percent(key, value); ok {
			out[key] = pct
		}
	}
	return out
}
