package domain

// MealPortionKey identifies a MealPortion.
type MealPortionKey struct {
	MealID    string
	PortionID string
}

// MealPortion says how many grams of a portion go into one serving of a meal.
type MealPortion struct {
	MealID           string  `json:"meal_id"`
	PortionID        string  `json:"portion_id"`
	WeightPerServing float64 `json:"weight_per_serving"`
}

func (mp MealPortion) Key() MealPortionKey {
	return MealPortionKey{MealID: mp.MealID, PortionID: mp.PortionID}
}
