package domain

// Person is someone whose meals are recorded.
type Person struct {
	ID string `json:"id"`
}
