package models

type Person struct {
	ID string `json:"id" gorm:"primaryKey;type:varchar(128)"`
}

type Meal struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(128)"`
	Name        string  `json:"name" gorm:"type:varchar(128);not null"`
	Servings    float64 `json:"servings" gorm:"not null"`
	Description *string `json:"description" gorm:"type:text"`
}

type Portion struct {
	ID           string  `json:"id" gorm:"primaryKey;type:varchar(128)"`
	Name         string  `json:"name" gorm:"type:varchar(128);not null"`
	Calories     float64 `json:"calories" gorm:"not null"`
	Density      float64 `json:"density" gorm:"not null;default:0"`
	Alcohol      float64 `json:"alcohol" gorm:"not null;default:0"`
	Carbohydrate float64 `json:"carbohydrate" gorm:"not null;default:0"`
	Protein      float64 `json:"protein" gorm:"not null;default:0"`
	Fat          float64 `json:"fat" gorm:"not null;default:0"`
}
