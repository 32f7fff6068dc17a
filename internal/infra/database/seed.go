package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tapi-calorie/tapi/internal/infra/database/models"
)

// LoadExampleData inserts a small demo data set. Rows that already exist are
// left alone, so it is safe to run on every start.
func LoadExampleData(ctx context.Context, db *gorm.DB, now time.Time) error {
	now = now.UTC().Truncate(time.Microsecond)

	persons := []models.Person{{ID: "123"}}
	portions := []models.Portion{
		{ID: "olive-oil", Name: "Olive oil", Calories: 700, Density: 0.89, Fat: 100},
		{ID: "salmon", Name: "salmon", Calories: 200, Density: 0.95, Fat: 20},
		{ID: "cream", Name: "cream", Calories: 250, Density: 0.65, Fat: 15},
		{ID: "oat", Name: "oat", Calories: 250, Density: 0.65, Fat: 15},
		{ID: "milk", Name: "milk", Calories: 32, Density: 0.89, Fat: 2},
	}
	meals := []models.Meal{
		{ID: "salmon-soup", Name: "Salmon Soup", Servings: 2.5},
		{ID: "oatmeal", Name: "Oatmeal", Servings: 2},
	}
	mealPortions := []models.MealPortion{
		{MealID: "salmon-soup", PortionID: "olive-oil", WeightPerServing: 10},
		{MealID: "salmon-soup", PortionID: "salmon", WeightPerServing: 200},
		{MealID: "salmon-soup", PortionID: "cream", WeightPerServing: 200},
		{MealID: "oatmeal", PortionID: "oat", WeightPerServing: 150},
		{MealID: "oatmeal", PortionID: "milk", WeightPerServing: 50},
	}
	mealRecords := []models.MealRecord{
		{PersonID: "123", MealID: "salmon-soup", Amount: 1.5, Timestamp: now},
		{PersonID: "123", MealID: "oatmeal", Amount: 1, Timestamp: now},
		{PersonID: "123", MealID: "salmon-soup", Amount: 1, Timestamp: time.Date(2020, 1, 31, 13, 14, 31, 0, time.UTC)},
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, rows := range []any{&persons, &portions, &meals, &mealPortions, &mealRecords} {
			err := tx.Clauses(clause.OnConflict{DoNothing: true}).Omit(clause.Associations).Create(rows).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to load example data")
	}
	return nil
}
