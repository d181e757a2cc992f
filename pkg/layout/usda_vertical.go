package layout

import (
	"strings"
	"time"

	"github.com/curadolabs/labelgen/pkg/label"
)

// buildUSDAVertical assembles the standard vertical nutrition facts panel:
// heading, serving info, calories callout, the fixed nutrient table, the
// conditional vitamin block, and the trailing text sections. Core nutrients
// appear even at zero; added sugars and vitamins appear only when positive.
func buildUSDAVertical(m *label.Model, percents map[string]int, generatedAt time.Time) []Row {
	tr := stringsFor(m.Style.Language)
	b := &panelBuilder{model: m, percents: percents, tr: tr}

	if !m.Sections.HideRecipeTitle {
		b.add(Row{Kind: KindHeader, Text: applyCase(m.RecipeTitle, m.Style.TextCase)})
	}
	if !m.Sections.HideNutritionFacts {
		b.nutritionFacts()
	}
	b.textSections()

	b.add(Row{
		Kind: KindText,
		ID:   IDTimestamp,
		Text: tr.Generated + ": " + generatedAt.Format("2006-01-02 15:04:05"),
	})
	return b.rows
}

type panelBuilder struct {
	model    *label.Model
	percents map[string]int
	tr       labelStrings
	rows     []Row
}

func (b *panelBuilder) add(r Row) { b.rows = append(b.rows, r) }

func (b *panelBuilder) sep(t Thickness) {
	b.add(Row{Kind: KindSeparator, Thickness: t})
}

// percent looks up the truncated %DV for a nutrient key. Keys without a
// reference intake return nil and the row renders with an empty column.
func (b *panelBuilder) percent(key string) *int {
	if p, ok := b.percents[key]; ok {
		v := p
		return &v
	}
	return nil
}

func (b *panelBuilder) servingSize() string {
	size := b.model.Style.ServingSizeEN
	if w := b.model.Style.ServingSizeWeight; w != "" {
		size += " (" + w + ")"
	}
	return size
}

func (b *panelBuilder) nutritionFacts() {
	m, tr := b.model, b.tr

	b.add(Row{Kind: KindText, ID: IDNutritionHeading, Text: tr.NutritionFacts})
	b.sep(Hairline)
	b.add(Row{
		Kind:               KindServingInfo,
		Text:               tr.ServingSize,
		ServingsPerPackage: m.Style.ServingsPerPackage,
		ServingsLine:       FormatAmount(m.Style.ServingsPerPackage) + " " + tr.ServingsPerPackage,
		ServingSize:        b.servingSize(),
	})
	b.sep(Thick)

	b.add(Row{Kind: KindText, ID: IDAmountPerServing, Text: tr.AmountPerServing})
	b.add(Row{
		Kind:  KindCalories,
		ID:    label.Calories,
		Label: tr.Calories,
		Value: m.Adjustment(label.Calories),
	})
	b.sep(Thick)

	b.add(Row{Kind: KindDailyValueHeader, Text: tr.DailyValueHeader})
	b.sep(Hairline)

	b.nutrient(label.Fat, tr.TotalFat, "g")
	b.subnutrient(label.SaturatedFat, label.Fat, tr.SaturatedFat, "g", 1)
	b.subnutrient(label.TransFat, label.Fat, tr.TransFat, "g", 1)
	b.nutrient(label.Cholesterol, tr.Cholesterol, "mg")
	b.nutrient(label.Sodium, tr.Sodium, "mg")
	b.nutrient(label.Carbohydrates, tr.TotalCarbohydrate, "g")
	b.subnutrient(label.DietaryFiber, label.Carbohydrates, tr.DietaryFiber, "g", 1)
	b.subnutrient(label.Sugars, label.Carbohydrates, tr.TotalSugars, "g", 1)
	b.addedSugars()
	b.nutrient(label.Protein, tr.Protein, "g")

	// Protein closes the table with a thick rule, not a hairline.
	b.rows[len(b.rows)-1].Thickness = Thick

	b.vitamins()
	b.add(Row{Kind: KindText, ID: IDFootnote, Text: tr.Footnote})
}

func (b *panelBuilder) nutrient(key, name, unit string) {
	b.add(Row{
		Kind:    KindNutrient,
		ID:      key,
		Label:   name,
		Value:   b.model.Adjustment(key),
		Unit:    unit,
		Percent: b.percent(key),
	})
	b.sep(Hairline)
}

func (b *panelBuilder) subnutrient(key, parent, name, unit string, indent int) {
	b.add(Row{
		Kind:    KindSubNutrient,
		ID:      key,
		Parent:  parent,
		Label:   name,
		Value:   b.model.Adjustment(key),
		Unit:    unit,
		Indent:  indent,
		Percent: b.percent(key),
	})
	b.sep(Hairline)
}

// addedSugars emits the "Includes Ng Added Sugars" line nested under total
// sugars, only when the value is positive.
func (b *panelBuilder) addedSugars() {
	v := b.model.Adjustment(label.AddedSugars)
	if v <= 0 {
		return
	}
	b.add(Row{
		Kind:          KindSubNutrient,
		ID:            label.AddedSugars,
		Parent:        label.Sugars,
		Label:         b.tr.IncludesAddedSugars[0] + FormatAmount(v) + "g" + b.tr.IncludesAddedSugars[1],
		Value:         v,
		Unit:          "g",
		AmountInLabel: true,
		Indent:        2,
		Percent:       b.percent(label.AddedSugars),
	})
	b.sep(Hairline)
}

// vitamins emits the vitamin and mineral block below the thick rule.
// Only entries with positive values appear; a zero block emits nothing.
func (b *panelBuilder) vitamins() {
	entries := []struct {
		key, name, unit string
	}{
		{label.VitaminD, b.tr.VitaminD, "mcg"},
		{label.Calcium, b.tr.Calcium, "mg"},
		{label.Iron, b.tr.Iron, "mg"},
		{label.Potassium, b.tr.Potassium, "mg"},
	}
	emitted := false
	for _, e := range entries {
		v := b.model.Adjustment(e.key)
		if v <= 0 {
			continue
		}
		if emitted {
			b.sep(Hairline)
		}
		b.add(Row{
			Kind:          KindVitamin,
			ID:            e.key,
			Label:         e.name + " " + FormatAmount(v) + e.unit,
			Value:         v,
			Unit:          e.unit,
			AmountInLabel: true,
			Percent:       b.percent(e.key),
		})
		emitted = true
	}
	if emitted {
		b.sep(Thick)
	}
}

// textSections emits the free-text blocks after the panel: ingredient
// statement, allergen declarations, and the business line. These render
// uppercased regardless of the style's text_case, matching the printed
// panel conventions.
func (b *panelBuilder) textSections() {
	m, tr := b.model, b.tr

	if !m.Sections.HideIngredientList {
		if ing := m.IngredientsText(); ing != "" {
			b.add(Row{
				Kind: KindText,
				ID:   IDIngredients,
				Text: strings.ToUpper(tr.Ingredients + ": " + ing),
			})
		}
	}
	if !m.Sections.HideAllergens && len(m.Allergens) > 0 {
		b.add(Row{
			Kind: KindText,
			ID:   IDAllergens,
			Text: strings.ToUpper(tr.Contains + ": " + strings.Join(m.Allergens, ", ")),
		})
	}
	if !m.Sections.HideFacilityAllergens && len(m.FacilityAllergens) > 0 {
		b.add(Row{
			Kind: KindText,
			ID:   IDFacilityAllergens,
			Text: strings.ToUpper(tr.Facility + ": " + strings.Join(m.FacilityAllergens, ", ")),
		})
	}
	if !m.Sections.HideBusinessInfo && m.BusinessInfo != nil {
		text := m.BusinessInfo.BusinessName
		if m.BusinessInfo.Address != "" {
			text += ", " + m.BusinessInfo.Address
		}
		b.add(Row{Kind: KindText, ID: IDBusinessAddress, Text: strings.ToUpper(text)})
	}
}
