package usecase

import (
	"context"

	"github.com/tapi-calorie/tapi/internal/domain"
)

// Repositories run every mutation in its own transaction and roll it back on
// any error. Get and Delete return domain.ErrNotFound for missing rows;
// Create, Update and Delete return domain.ErrConflict for uniqueness or
// foreign-key violations.

// PersonRepository stores persons. Delete cascades to the person's meal records.
type PersonRepository interface {
	List(ctx context.Context) ([]domain.Person, error)
	Get(ctx context.Context, id string) (domain.Person, error)
	Create(ctx context.Context, person domain.Person) error
	Delete(ctx context.Context, id string) error
}

// MealRepository stores meals. Delete cascades to meal portions and meal records.
type MealRepository interface {
	List(ctx context.Context) ([]domain.Meal, error)
	Get(ctx context.Context, id string) (domain.Meal, error)
	Create(ctx context.Context, meal domain.Meal) error
	Update(ctx context.Context, meal domain.Meal) error
	Delete(ctx context.Context, id string) error
}

// PortionRepository stores portions. Deleting a portion still used by a meal
// is a conflict.
type PortionRepository interface {
	List(ctx context.Context) ([]domain.Portion, error)
	Get(ctx context.Context, id string) (domain.Portion, error)
	Create(ctx context.Context, portion domain.Portion) error
	Update(ctx context.Context, portion domain.Portion) error
	Delete(ctx context.Context, id string) error
}

// MealPortionRepository stores the composition of meals.
type MealPortionRepository interface {
	ListByMeal(ctx context.Context, mealID string) ([]domain.MealPortion, error)
	Get(ctx context.Context, key domain.MealPortionKey) (domain.MealPortion, error)
	Create(ctx context.Context, mp domain.MealPortion) error
	Update(ctx context.Context, mp domain.MealPortion) error
	Delete(ctx context.Context, key domain.MealPortionKey) error
}

// MealRecordRepository stores consumption records.
type MealRecordRepository interface {
	List(ctx context.Context) ([]domain.MealRecord, error)
	ListByPerson(ctx context.Context, personID string) ([]domain.MealRecord, error)
	Get(ctx context.Context, key domain.MealRecordKey) (domain.MealRecord, error)
	Create(ctx context.Context, mr domain.MealRecord) error
	Update(ctx context.Context, mr domain.MealRecord) error
	Delete(ctx context.Context, key domain.MealRecordKey) error
}

// ChangePublisher is told about every committed mutation.
type ChangePublisher interface {
	Publish(ctx context.Context, event domain.ChangeEvent) error
}
