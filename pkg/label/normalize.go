package label

import (
	"github.com/curadolabs/labelgen/pkg/errors"
)

// labelTypes is the set of recognized layout variants. Additional variants
// register a layout builder under the same name in pkg/layout; renderers
// never branch on the type.
var labelTypes = map[string]bool{
	TypeUSDAVertical: true,
}

// LabelTypes returns the recognized label type names.
func LabelTypes() []string {
	out := make([]string, 0, len(labelTypes))
	for t := range labelTypes {
		out = append(out, t)
	}
	return out
}

// Normalize validates a raw request and returns a fully-defaulted Model.
//
// Every default from the request schema is applied here so that downstream
// components never consult the raw request. Validation failures return a
// structured error naming the offending field (errors.IsValidation reports
// true); no partial Model is returned.
func (r *Request) Normalize() (*Model, error) {
	if r.RecipeTitle == "" {
		return nil, errors.NewField(errors.ErrCodeMissingField, "recipe_title", "recipe_title is required")
	}
	if r.RecipeData == nil {
		return nil, errors.NewField(errors.ErrCodeMissingField, "recipe_data", "recipe_data is required")
	}
	if len(r.RecipeData.Items) == 0 {
		return nil, errors.NewField(errors.ErrCodeMissingField, "recipe_data.items", "recipe_data.items must not be empty")
	}
	if len(r.RecipeData.Total) == 0 {
		return nil, errors.NewField(errors.ErrCodeMissingField, "recipe_data.total", "recipe_data.total must not be empty")
	}

	if !r.LabelSections.HideBusinessInfo {
		if r.BusinessInfo == nil {
			return nil, errors.NewField(errors.ErrCodeMissingField, "business_info", "business_info is required unless label_sections.hide_business_info is set")
		}
		if r.BusinessInfo.BusinessName == "" {
			return nil, errors.NewField(errors.ErrCodeMissingField, "business_info.business_name", "business_info.business_name is required")
		}
	}

	labelType := r.LabelType
	if labelType == "" {
		labelType = TypeUSDAVertical
	}
	if !labelTypes[labelType] {
		return nil, errors.NewField(errors.ErrCodeInvalidLabelType, "label_type", "unrecognized label_type %q", labelType)
	}

	style, err := normalizeStyle(r.LabelStyle)
	if err != nil {
		return nil, err
	}

	adjustments, err := normalizeAdjustments(r.NutritionAdjustments)
	if err != nil {
		return nil, err
	}

	m := &Model{
		RecipeTitle:       r.RecipeTitle,
		RecipeData:        cloneRecipeData(r.RecipeData),
		Sections:          r.LabelSections,
		Style:             style,
		Adjustments:       adjustments,
		LabelType:         labelType,
		Allergens:         cloneStrings(r.Allergens),
		FacilityAllergens: cloneStrings(r.FacilityAllergens),
	}
	if r.BusinessInfo != nil {
		info := *r.BusinessInfo
		m.BusinessInfo = &info
	}
	return m, nil
}

func normalizeStyle(s Style) (Style, error) {
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	if !validLanguages[s.Language] {
		return Style{}, errors.NewField(errors.ErrCodeInvalidRequest, "label_style.language", "unsupported language %q", s.Language)
	}
	if s.ServingSizeEN == "" {
		s.ServingSizeEN = DefaultServingSize
	}
	if s.ServingsPerPackage == 0 {
		s.ServingsPerPackage = DefaultServingsPerPackage
	}
	if s.ServingsPerPackage < 0 {
		return Style{}, errors.NewField(errors.ErrCodeInvalidRequest, "label_style.servings_per_package", "servings_per_package must not be negative")
	}
	if s.Alignment == "" {
		s.Alignment = DefaultAlignment
	}
	if !validAlignment[s.Alignment] {
		return Style{}, errors.NewField(errors.ErrCodeInvalidRequest, "label_style.alignment", "unsupported alignment %q", s.Alignment)
	}
	if s.TextCase == "" {
		s.TextCase = DefaultTextCase
	}
	if !validTextCase[s.TextCase] {
		return Style{}, errors.NewField(errors.ErrCodeInvalidRequest, "label_style.text_case", "unsupported text_case %q", s.TextCase)
	}
	if s.Width == 0 {
		s.Width = DefaultWidth
	}
	if s.Width < 0 {
		return Style{}, errors.NewField(errors.ErrCodeInvalidRequest, "label_style.width", "width must not be negative")
	}
	if s.TextColor == "" {
		s.TextColor = DefaultTextColor
	}
	if s.BackgroundColor == "" {
		s.BackgroundColor = DefaultBackgroundColor
	}
	return s, nil
}

// normalizeAdjustments copies recognized keys, rejects negative values, and
// fills every missing key with 0. Unrecognized keys are dropped silently so
// requests from newer clients still succeed.
func normalizeAdjustments(in map[string]float64) (map[string]float64, error) {
	out := make(map[string]float64, len(RecognizedNutrients))
	for _, key := range RecognizedNutrients {
		out[key] = 0
	}
	for key, value := range in {
		if _, ok := out[key]; !ok {
			continue
		}
		if value < 0 {
			return nil, errors.NewField(errors.ErrCodeInvalidRequest, "nutrition_adjustments."+key, "%s must not be negative, got %v", key, value)
		}
		out[key] = value
	}
	return out, nil
}
