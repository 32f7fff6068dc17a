package schema

import "github.com/tapi-calorie/tapi/internal/domain"

const (
	// SlugPattern is the pattern every resource id must match.
	SlugPattern = "^[a-z0-9]+(-[a-z0-9]+)*$"

	idMaxLength          = 128
	nameMaxLength        = 128
	descriptionMaxLength = 8 * 1024
)

func object(required []string, props map[string]any) map[string]any {
	return map[string]any{
		"type":       "object",
		"required":   required,
		"properties": props,
	}
}

func slug(description string) map[string]any {
	return map[string]any{
		"description": description,
		"type":        "string",
		"maxLength":   idMaxLength,
		"pattern":     SlugPattern,
	}
}

func text(description string, maxLength int) map[string]any {
	return map[string]any{
		"description": description,
		"type":        "string",
		"maxLength":   maxLength,
	}
}

func number(description string) map[string]any {
	return map[string]any{
		"description": description,
		"type":        "number",
	}
}

func personSchema() map[string]any {
	return object([]string{"id"}, map[string]any{
		"id": slug("Person id"),
	})
}

func mealSchema() map[string]any {
	servings := number("number of servings in this meal")
	servings["exclusiveMinimum"] = 0

	return object([]string{"id", "name", "servings"}, map[string]any{
		"id":          slug("usually meal name in small letters and white spaces replaced with dashes"),
		"name":        text("meal name", nameMaxLength),
		"servings":    servings,
		"description": text("Description of the meal", descriptionMaxLength),
	})
}

func portionSchema() map[string]any {
	return object([]string{"id", "name", "calories"}, map[string]any{
		"id":           slug("usually portion name in small letters and white spaces replaced with dashes"),
		"name":         text("portion name", nameMaxLength),
		"calories":     number("number of calories/100g in this portion"),
		"density":      number("Density of the portion"),
		"alcohol":      number("alcohol/100g of the portion"),
		"carbohydrate": number("Carbs/100g of the portion"),
		"protein":      number("Protein/100g of the portion"),
		"fat":          number("Fat/100g of the portion"),
	})
}

func mealPortionSchema() map[string]any {
	return object([]string{"meal_id", "portion_id", "weight_per_serving"}, map[string]any{
		"meal_id":            slug("usually meal name in small letters and white spaces replaced with dashes"),
		"portion_id":         slug("usually portion name in small letters and white spaces replaced with dashes"),
		"weight_per_serving": number("Weight of portion per serving of the Meal"),
	})
}

func mealRecordSchema() map[string]any {
	return object([]string{"person_id", "meal_id", "amount", "timestamp"}, map[string]any{
		"person_id": slug("Person id"),
		"meal_id":   slug("usually meal name in small letters and white spaces replaced with dashes"),
		"amount":    number("number of servings of meal"),
		"timestamp": map[string]any{
			"description": "time of recording",
			"type":        "string",
			"format":      "date-time",
		},
	})
}

var definitions = map[string]func() map[string]any{
	domain.ResourcePerson:      personSchema,
	domain.ResourceMeal:        mealSchema,
	domain.ResourcePortion:     portionSchema,
	domain.ResourceMealPortion: mealPortionSchema,
	domain.ResourceMealRecord:  mealRecordSchema,
}

// Describe returns a fresh copy of the JSON schema for a resource type, for
// embedding in add/edit controls. It returns nil for unknown resources.
func Describe(resource string) map[string]any {
	def, ok := definitions[resource]
	if !ok {
		return nil
	}
	return def()
}
