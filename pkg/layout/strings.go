package layout

// labelStrings holds every localized fragment a builder needs. Keys into
// translations match label.Request.Language values.
type labelStrings struct {
	NutritionFacts      string
	ServingsPerPackage  string // suffix after the numeric count
	ServingSize         string
	AmountPerServing    string
	Calories            string
	DailyValueHeader    string
	TotalFat            string
	SaturatedFat        string
	TransFat            string
	Cholesterol         string
	Sodium              string
	TotalCarbohydrate   string
	DietaryFiber        string
	TotalSugars         string
	IncludesAddedSugars [2]string // amount is spliced between the halves
	Protein             string
	VitaminD            string
	Calcium             string
	Iron                string
	Potassium           string
	Ingredients         string
	Contains            string
	Facility            string
	Footnote            string
	Generated           string
}

var translations = map[string]labelStrings{
	"english": {
		NutritionFacts:      "Nutrition Facts",
		ServingsPerPackage:  "servings per container",
		ServingSize:         "Serving size",
		AmountPerServing:    "Amount Per Serving",
		Calories:            "Calories",
		DailyValueHeader:    "% Daily Value*",
		TotalFat:            "Total Fat",
		SaturatedFat:        "Saturated Fat",
		TransFat:            "Trans Fat",
		Cholesterol:         "Cholesterol",
		Sodium:              "Sodium",
		TotalCarbohydrate:   "Total Carbohydrate",
		DietaryFiber:        "Dietary Fiber",
		TotalSugars:         "Total Sugars",
		IncludesAddedSugars: [2]string{"Includes ", " Added Sugars"},
		Protein:             "Protein",
		VitaminD:            "Vitamin D",
		Calcium:             "Calcium",
		Iron:                "Iron",
		Potassium:           "Potassium",
		Ingredients:         "Ingredients",
		Contains:            "Contains",
		Facility:            "Manufactured in a facility that also processes",
		Footnote: "* The % Daily Value (DV) tells you how much a nutrient in a serving " +
			"of food contributes to a daily diet. 2,000 calories a day is used for " +
			"general nutrition advice.",
		Generated: "Generated",
	},
	"spanish": {
		NutritionFacts:      "Datos de Nutrición",
		ServingsPerPackage:  "porciones por envase",
		ServingSize:         "Tamaño por porción",
		AmountPerServing:    "Cantidad por porción",
		Calories:            "Calorías",
		DailyValueHeader:    "% Valor Diario*",
		TotalFat:            "Grasa Total",
		SaturatedFat:        "Grasa Saturada",
		TransFat:            "Grasa Trans",
		Cholesterol:         "Colesterol",
		Sodium:              "Sodio",
		TotalCarbohydrate:   "Carbohidrato Total",
		DietaryFiber:        "Fibra Dietética",
		TotalSugars:         "Azúcares Totales",
		IncludesAddedSugars: [2]string{"Incluye ", " azúcares añadidos"},
		Protein:             "Proteína",
		VitaminD:            "Vitamina D",
		Calcium:             "Calcio",
		Iron:                "Hierro",
		Potassium:           "Potasio",
		Ingredients:         "Ingredientes",
		Contains:            "Contiene",
		Facility:            "Elaborado en una instalación que también procesa",
		Footnote: "* El % Valor Diario (VD) le indica cuánto contribuye un nutriente en " +
			"una porción de alimento a una dieta diaria. Se usan 2,000 calorías al día " +
			"para consejos de nutrición general.",
		Generated: "Generado",
	},
}

// stringsFor returns the translation table for lang, falling back to
// english for anything unrecognized. Validation upstream means the
// fallback only triggers for models constructed by hand.
func stringsFor(lang string) labelStrings {
	if tr, ok := translations[lang]; ok {
		return tr
	}
	return translations["english"]
}
