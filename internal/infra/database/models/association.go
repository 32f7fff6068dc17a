package models

import (
	"time"
)

type MealPortion struct {
	MealID           string  `json:"meal_id" gorm:"primaryKey;type:varchar(128)"`
	Meal             Meal    `json:"-" gorm:"foreignKey:MealID;references:ID;constraint:OnDelete:CASCADE;"`
	PortionID        string  `json:"portion_id" gorm:"primaryKey;type:varchar(128);index"`
	Portion          Portion `json:"-" gorm:"foreignKey:PortionID;references:ID;constraint:OnDelete:RESTRICT;"`
	WeightPerServing float64 `json:"weight_per_serving" gorm:"not null"`
}

type MealRecord struct {
	PersonID  string    `json:"person_id" gorm:"primaryKey;type:varchar(128)"`
	Person    Person    `json:"-" gorm:"foreignKey:PersonID;references:ID;constraint:OnDelete:CASCADE;"`
	MealID    string    `json:"meal_id" gorm:"primaryKey;type:varchar(128);index"`
	Meal      Meal      `json:"-" gorm:"foreignKey:MealID;references:ID;constraint:OnDelete:CASCADE;"`
	Timestamp time.Time `json:"timestamp" gorm:"primaryKey"`
	Amount    float64   `json:"amount" gorm:"not null"`
}
