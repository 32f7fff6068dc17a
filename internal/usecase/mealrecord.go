package usecase

import (
	"context"
	"time"

	"github.com/tapi-calorie/tapi/internal/domain"
	"github.com/tapi-calorie/tapi/internal/handle"
)

// MealRecordInput is the request body for creating or editing a meal record.
type MealRecordInput struct {
	PersonID  string    `json:"person_id"`
	MealID    string    `json:"meal_id"`
	Amount    float64   `json:"amount"`
	Timestamp time.Time `json:"timestamp"`
}

type MealRecordUsecase struct {
	repo   MealRecordRepository
	codec  handle.MealRecordCodec
	notify notifier
}

func NewMealRecordUsecase(repo MealRecordRepository, publisher ChangePublisher) *MealRecordUsecase {
	return &MealRecordUsecase{repo: repo, notify: notifier{publisher: publisher}}
}

func (uc *MealRecordUsecase) List(ctx context.Context) ([]domain.MealRecord, error) {
	return uc.repo.List(ctx)
}

func (uc *MealRecordUsecase) ListByPerson(ctx context.Context, personID string) ([]domain.MealRecord, error) {
	return uc.repo.ListByPerson(ctx, personID)
}

func (uc *MealRecordUsecase) Get(ctx context.Context, key domain.MealRecordKey) (domain.MealRecord, error) {
	key.Timestamp = domain.NormalizeTimestamp(key.Timestamp)
	return uc.repo.Get(ctx, key)
}

func (uc *MealRecordUsecase) Create(ctx context.Context, input MealRecordInput) (domain.MealRecord, error) {
	ctx, span := tracer.Start(ctx, "MealRecord.Usecase.Create")
	defer span.End()

	mr := domain.MealRecord{
		PersonID:  input.PersonID,
		MealID:    input.MealID,
		Timestamp: domain.NormalizeTimestamp(input.Timestamp),
		Amount:    input.Amount,
	}
	if err := uc.repo.Create(ctx, mr); err != nil {
		span.RecordError(err)
		return domain.MealRecord{}, err
	}

	uc.notify.changed(ctx, domain.ResourceMealRecord, domain.ActionCreated, uc.codec.Encode(mr.Key()))
	return mr, nil
}

// Update edits amount only. Key fields in the input are ignored.
func (uc *MealRecordUsecase) Update(ctx context.Context, key domain.MealRecordKey, input MealRecordInput) error {
	ctx, span := tracer.Start(ctx, "MealRecord.Usecase.Update")
	defer span.End()

	mr, err := uc.Get(ctx, key)
	if err != nil {
		span.RecordError(err)
		return err
	}

	mr.Amount = input.Amount

	if err := uc.repo.Update(ctx, mr); err != nil {
		span.RecordError(err)
		return err
	}

	uc.notify.changed(ctx, domain.ResourceMealRecord, domain.ActionUpdated, uc.codec.Encode(mr.Key()))
	return nil
}

func (uc *MealRecordUsecase) Delete(ctx context.Context, key domain.MealRecordKey) error {
	ctx, span := tracer.Start(ctx, "MealRecord.Usecase.Delete")
	defer span.End()

	key.Timestamp = domain.NormalizeTimestamp(key.Timestamp)
	if err := uc.repo.Delete(ctx, key); err != nil {
		span.RecordError(err)
		return err
	}

	uc.notify.changed(ctx, domain.ResourceMealRecord, domain.ActionDeleted, uc.codec.Encode(key))
	return nil
}
