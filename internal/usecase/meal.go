package usecase

import (
	"context"

	"github.com/tapi-calorie/tapi/internal/domain"
)

// MealInput is the request body for creating or editing a meal.
type MealInput struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Servings    float64 `json:"servings"`
	Description *string `json:"description"`
}

type MealUsecase struct {
	repo   MealRepository
	notify notifier
}

func NewMealUsecase(repo MealRepository, publisher ChangePublisher) *MealUsecase {
	return &MealUsecase{repo: repo, notify: notifier{publisher: publisher}}
}

func (uc *MealUsecase) List(ctx context.Context) ([]domain.Meal, error) {
	return uc.repo.List(ctx)
}

func (uc *MealUsecase) Get(ctx context.Context, id string) (domain.Meal, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *MealUsecase) Create(ctx context.Context, input MealInput) (domain.Meal, error) {
	ctx, span := tracer.Start(ctx, "Meal.Usecase.Create")
	defer span.End()

	meal := domain.Meal{
		ID:          input.ID,
		Name:        input.Name,
		Servings:    input.Servings,
		Description: input.Description,
	}
	if err := uc.repo.Create(ctx, meal); err != nil {
		span.RecordError(err)
		return domain.Meal{}, err
	}

	uc.notify.changed(ctx, domain.ResourceMeal, domain.ActionCreated, meal.ID)
	return meal, nil
}

// Update edits name, servings and, when given, description. The id in the
// input is ignored.
func (uc *MealUsecase) Update(ctx context.Context, id string, input MealInput) error {
	ctx, span := tracer.Start(ctx, "Meal.Usecase.Update")
	defer span.End()

	meal, err := uc.repo.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	meal.Name = input.Name
	meal.Servings = input.Servings
	if input.Description != nil {
		meal.Description = input.Description
	}

	if err := uc.repo.Update(ctx, meal); err != nil {
		span.RecordError(err)
		return err
	}

	uc.notify.changed(ctx, domain.ResourceMeal, domain.ActionUpdated, id)
	return nil
}

func (uc *MealUsecase) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Meal.Usecase.Delete")
	defer span.End()

	if err := uc.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return err
	}

	uc.notify.changed(ctx, domain.ResourceMeal, domain.ActionDeleted, id)
	return nil
}
