package usecase

import (
	"context"

	"github.com/tapi-calorie/tapi/internal/domain"
)

// PersonInput is the request body for creating a person.
type PersonInput struct {
	ID string `json:"id"`
}

type PersonUsecase struct {
	repo   PersonRepository
	notify notifier
}

func NewPersonUsecase(repo PersonRepository, publisher ChangePublisher) *PersonUsecase {
	return &PersonUsecase{repo: repo, notify: notifier{publisher: publisher}}
}

func (uc *PersonUsecase) List(ctx context.Context) ([]domain.Person, error) {
	return uc.repo.List(ctx)
}

func (uc *PersonUsecase) Get(ctx context.Context, id string) (domain.Person, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *PersonUsecase) Create(ctx context.Context, input PersonInput) (domain.Person, error) {
	ctx, span := tracer.Start(ctx, "Person.Usecase.Create")
	defer span.End()

	person := domain.Person{ID: input.ID}
	if err := uc.repo.Create(ctx, person); err != nil {
		span.RecordError(err)
		return domain.Person{}, err
	}

	uc.notify.changed(ctx, domain.ResourcePerson, domain.ActionCreated, person.ID)
	return person, nil
}

func (uc *PersonUsecase) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Person.Usecase.Delete")
	defer span.End()

	if err := uc.repo.Delete(ctx, id); err != nil {
		span.RecordError(err)
		return err
	}

	uc.notify.changed(ctx, domain.ResourcePerson, domain.ActionDeleted, id)
	return nil
}
