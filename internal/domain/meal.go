package domain

// Meal is a recipe made of portions, cooked for a number of servings.
type Meal struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Servings    float64 `json:"servings"`
	Description *string `json:"description"`
}
