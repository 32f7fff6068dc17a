package usecase

import (
	"context"

	"github.com/tapi-calorie/tapi/internal/domain"
)

// PortionInput is the request body for creating or editing a portion.
// Unset nutrients are zero on create and unchanged on update.
type PortionInput struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Calories     float64  `json:"calories"`
	Density      *float64 `json:"density"`
	Alcohol      *float64 `json:"alcohol"`
	Carbohydrate *float64 `json:"carbohydrate"`
	Protein      *float64 `json:"protein"`
	Fat          *float64 `json:"fat"`
}

func (in PortionInput) apply(p *domain.Portion) {
	p.Name = in.Name
	p.Calories = in.Calories
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&p.Density, in.Density)
	set(&p.Alcohol, in.Alcohol)
	set(&p.Carbohydrate, in.Carbohydrate)
	set(&p.Protein, in.Protein)
	set(&p.Fat, in.Fat)
}

type PortionUsecase struct {
	repo   PortionRepository
	notify notifier
}

func NewPortionUsecase(repo PortionRepository, publisher ChangePublisher) *PortionUsecase {
	return &PortionUsecase{repo: repo, notify: notifier{publisher: publisher}}
}

func (uc *PortionUsecase) List(ctx context.Context) ([]domain.Portion, error) {
	return uc.repo.List(ctx)
}

func (uc *PortionUsecase) Get(ctx context.Context, id string) (domain.Portion, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *PortionUsecase) Create(ctx context.Context, input PortionInput) (domain.Portion, error) {
	ctx, span := tracer.Start(ctx, "Portion.Usecase.Create")
	defer span.End()

	portion := domain.Portion{ID: input.ID}
	input.apply(&portion)

	if err := uc.repo.Create(ctx, portion); err != nil {
		span.RecordError(err)
		return domain.Portion{}, err
	}

	uc.notify.changed(ctx, domain.ResourcePortion, domain.ActionCreated, portion.ID)
	return portion, nil
}

// Update edits everything but the id.
func (uc *PortionUsecase) Update(ctx context.Context, id string, input PortionInput) error {
	ctx, span := tracer.Start(ctx, "Portion.Usecase.Update")
	defer span.End()

	portion, err := uc.repo.Get(ctx, id)
	if err != nil {
		span.RecordError(err)
		return err
	}

	input.apply(&portion)

	if err := uc.repo.Update(ctx, portion); err != nil {
		span.RecordError(err)
		return err
	}

	uc.notify.changed(ctx, domain.ResourcePortion, domain.ActionUpdated, id)
	return nil
}

func (uc *PortionUsecase) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Portion.Usecase.Delete")
	defer span.End()

	if err := uc.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return err
	}

	uc.notify.changed(ctx, domain.ResourcePortion, domain.ActionDeleted, id)
	return nil
}
