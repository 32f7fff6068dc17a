package domain

import "time"

// MealRecordKey identifies a MealRecord. Timestamp is UTC with microsecond precision.
type MealRecordKey struct {
	PersonID  string
	MealID    string
	Timestamp time.Time
}

// Equal compares keys using time.Time.Equal for the timestamp.
func (k MealRecordKey) Equal(other MealRecordKey) bool {
	return k.PersonID == other.PersonID && k.MealID == other.MealID && k.Timestamp.Equal(other.Timestamp)
}

// MealRecord is one consumption of a meal by a person.
type MealRecord struct {
	PersonID  string    `json:"person_id"`
	MealID    string    `json:"meal_id"`
	Timestamp time.Time `json:"timestamp"`
	Amount    float64   `json:"amount"`
}

func (mr MealRecord) Key() MealRecordKey {
	return MealRecordKey{PersonID: mr.PersonID, MealID: mr.MealID, Timestamp: mr.Timestamp}
}

// NormalizeTimestamp brings a timestamp to the precision and zone used in keys.
func NormalizeTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
