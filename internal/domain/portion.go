package domain

// Portion is an ingredient. Nutrient values are per 100g.
type Portion struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Calories     float64 `json:"calories"`
	Density      float64 `json:"density"`
	Alcohol      float64 `json:"alcohol"`
	Carbohydrate float64 `json:"carbohydrate"`
	Protein      float64 `json:"protein"`
	Fat          float64 `json:"fat"`
}
