// Package label defines the label request schema and the normalizer that
// turns a raw, possibly partial request into an immutable Model.
//
// A Request mirrors the JSON payload external clients construct: recipe
// nutrition data, section visibility flags, display style, nutrient-value
// overrides, and the regulatory layout to build. Normalize validates the
// request, applies every default, and returns a Model that the rest of the
// pipeline treats as read-only.
package label

// Request is the raw label generation payload.
// All fields are optional at the JSON level; Normalize decides which
// omissions are defaulted and which are errors.
type Request struct {
	RecipeTitle          string             `json:"recipe_title"`
	RecipeData           *RecipeData        `json:"recipe_data,omitempty"`
	BusinessInfo         *BusinessInfo      `json:"business_info,omitempty"`
	LabelSections        Sections           `json:"label_sections"`
	LabelStyle           Style              `json:"label_style"`
	NutritionAdjustments map[string]float64 `json:"nutrition_adjustments,omitempty"`
	LabelType            string             `json:"label_type,omitempty"`
	Allergens            []string           `json:"allergens,omitempty"`
	FacilityAllergens    []string           `json:"facility_allergens,omitempty"`
}

// RecipeData carries the upstream-aggregated recipe nutrition data.
// The core treats it as opaque beyond ingredient-list rendering: items are
// already resolved and unit-normalized by the recipe service.
type RecipeData struct {
	Items []Ingredient       `json:"items"`
	Total map[string]float64 `json:"total"`
}

// Ingredient is one scored recipe item as supplied by the recipe service.
type Ingredient struct {
	FDCID       int                `json:"fdc_id"`
	Description string             `json:"description"`
	Category    string             `json:"category,omitempty"`
	DataType    string             `json:"data_type,omitempty"`
	Nutrients   map[string]float64 `json:"nutrients,omitempty"`
}

// BusinessInfo identifies the producing business on the label.
type BusinessInfo struct {
	BusinessName string `json:"business_name"`
	Address      string `json:"address,omitempty"`
}

// Sections holds the label section visibility flags.
// Every flag defaults to false, meaning the section is shown.
type Sections struct {
	HideRecipeTitle       bool `json:"hide_recipe_title"`
	HideNutritionFacts    bool `json:"hide_nutrition_facts"`
	HideIngredientList    bool `json:"hide_ingredient_list"`
	HideAllergens         bool `json:"hide_allergens"`
	HideFacilityAllergens bool `json:"hide_facility_allergens"`
	HideBusinessInfo      bool `json:"hide_business_info"`
}

// Style holds the display configuration for the label.
type Style struct {
	Language           string  `json:"language,omitempty"`
	ServingSizeEN      string  `json:"serving_size_en,omitempty"`
	ServingSizeWeight  string  `json:"serving_size_weight,omitempty"`
	ServingsPerPackage float64 `json:"servings_per_package,omitempty"`
	Alignment          string  `json:"alignment,omitempty"`
	TextCase           string  `json:"text_case,omitempty"`
	Width              float64 `json:"width,omitempty"`
	TextColor          string  `json:"text_color,omitempty"`
	BackgroundColor    string  `json:"background_color,omitempty"`
}

// Style defaults applied by Normalize.
const (
	DefaultLanguage           = "english"
	DefaultServingSize        = "1 serving"
	DefaultServingsPerPackage = 1
	DefaultAlignment          = "left"
	DefaultTextCase           = "none"
	DefaultWidth              = 300
	DefaultTextColor          = "#000000"
	DefaultBackgroundColor    = "#FFFFFF"
)

// TypeUSDAVertical is the standard vertical nutrition facts panel layout.
const TypeUSDAVertical = "USDA (Old FDA) Vertical"

// Nutrient keys recognized in nutrition_adjustments. Keys outside this set
// are silently dropped so newer clients can send fields this version does
// not know about without failing the request.
const (
	Calories      = "calories"
	Fat           = "fat"
	SaturatedFat  = "saturated_fat"
	TransFat      = "trans_fat"
	Cholesterol   = "cholesterol"
	Sodium        = "sodium"
	Carbohydrates = "carbohydrates"
	DietaryFiber  = "dietary_fiber"
	Sugars        = "sugars"
	AddedSugars   = "added_sugars"
	Protein       = "protein"
	VitaminD      = "vitamin_d"
	Calcium       = "calcium"
	Iron          = "iron"
	Potassium     = "potassium"
)

// RecognizedNutrients enumerates the adjustment keys understood by this
// version, in no particular order.
var RecognizedNutrients = []string{
	Calories, Fat, SaturatedFat, TransFat, Cholesterol, Sodium,
	Carbohydrates, DietaryFiber, Sugars, AddedSugars, Protein,
	VitaminD, Calcium, Iron, Potassium,
}

// Supported enumerations for style fields.
var (
	validLanguages = map[string]bool{"english": true, "spanish": true}
	validAlignment = map[string]bool{"left": true, "center": true, "right": true}
	validTextCase  = map[string]bool{"none": true, "uppercase": true, "lowercase": true}
)
