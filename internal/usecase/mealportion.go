package usecase

import (
	"context"

	"github.com/tapi-calorie/tapi/internal/domain"
	"github.com/tapi-calorie/tapi/internal/handle"
)

// MealPortionInput is the request body for creating or editing a meal portion.
type MealPortionInput struct {
	MealID           string  `json:"meal_id"`
	PortionID        string  `json:"portion_id"`
	WeightPerServing float64 `json:"weight_per_serving"`
}

type MealPortionUsecase struct {
	repo   MealPortionRepository
	codec  handle.MealPortionCodec
	notify notifier
}

func NewMealPortionUsecase(repo MealPortionRepository, publisher ChangePublisher) *MealPortionUsecase {
	return &MealPortionUsecase{repo: repo, notify: notifier{publisher: publisher}}
}

func (uc *MealPortionUsecase) ListByMeal(ctx context.Context, mealID string) ([]domain.MealPortion, error) {
	return uc.repo.ListByMeal(ctx, mealID)
}

func (uc *MealPortionUsecase) Get(ctx context.Context, key domain.MealPortionKey) (domain.MealPortion, error) {
	return uc.repo.Get(ctx, key)
}

// Create adds a portion to mealID. The meal_id in the input is ignored in
// favour of mealID.
func (uc *MealPortionUsecase) Create(ctx context.Context, mealID string, input MealPortionInput) (domain.MealPortion, error) {
	ctx, span := tracer.Start(ctx, "MealPortion.Usecase.Create")
	defer span.End()

	mp := domain.MealPortion{
		MealID:           mealID,
		PortionID:        input.PortionID,
		WeightPerServing: input.WeightPerServing,
	}
	if err := uc.repo.Create(ctx, mp); err != nil {
		span.RecordError(err)
		return domain.MealPortion{}, err
	}

	uc.notify.changed(ctx, domain.ResourceMealPortion, domain.ActionCreated, uc.codec.Encode(mp.Key()))
	return mp, nil
}

// Update edits weight_per_serving only.
func (uc *MealPortionUsecase) Update(ctx context.Context, key domain.MealPortionKey, input MealPortionInput) error {
	ctx, span := tracer.Start(ctx, "MealPortion.Usecase.Update")
	defer span.End()

	mp, err := uc.repo.Get(ctx, key)
	if err != nil {
		span.RecordError(err)
		return err
	}

	mp.WeightPerServing = input.WeightPerServing

	if err := uc.repo.Update(ctx, mp); err != nil {
		span.RecordError(err)
		return err
	}

	uc.notify.changed(ctx, domain.ResourceMealPortion, domain.ActionUpdated, uc.codec.Encode(key))
	return nil
}

func (uc *MealPortionUsecase) Delete(ctx context.Context, key domain.MealPortionKey) error {
	ctx, span := tracer.Start(ctx, "MealPortion.Usecase.Delete")
	defer span.End()

	if err := uc.repo.Delete(ctx, key); err != nil {
		span.RecordError(err)
		return err
	}

	uc.notify.changed(ctx, domain.ResourceMealPortion, domain.ActionDeleted, uc.codec.Encode(key))
	return nil
}
