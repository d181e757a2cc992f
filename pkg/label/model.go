package label

// Model is the fully-validated, fully-defaulted description of one label.
// A Model is constructed once per generation request by Normalize and is
// never mutated afterwards; it may be shared freely between concurrent
// renderers and cached by the label store.
type Model struct {
	RecipeTitle       string
	RecipeData        RecipeData
	BusinessInfo      *BusinessInfo // nil only when Sections.HideBusinessInfo
	Sections          Sections
	Style             Style
	Adjustments       map[string]float64 // every recognized key present, >= 0
	LabelType         string
	Allergens         []string
	FacilityAllergens []string
}

// Adjustment returns the defaulted value for a recognized nutrient key.
// Unknown keys return 0.
func (m *Model) Adjustment(key string) float64 {
	return m.Adjustments[key]
}

// IngredientsText joins the recipe item descriptions into the ingredient
// statement rendered on the label. Empty when the recipe has no items.
func (m *Model) IngredientsText() string {
	if len(m.RecipeData.Items) == 0 {
		return ""
	}
	out := ""
	for i, item := range m.RecipeData.Items {
		if i > 0 {
			out += ", "
		}
		out += item.Description
	}
	return out
}

// clone helpers keep the Model independent from the caller's request so
// later mutation of the request cannot leak into a built Model.

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func cloneFloatMap(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func cloneRecipeData(in *RecipeData) RecipeData {
	if in == nil {
		return RecipeData{}
	}
	out := RecipeData{
		Total: cloneFloatMap(in.Total),
	}
	if len(in.Items) > 0 {
		out.Items = make([]Ingredient, len(in.Items))
		for i, item := range in.Items {
			item.Nutrients = cloneFloatMap(item.Nutrients)
			out.Items[i] = item
		}
	}
	return out
}
