package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tapi-calorie/tapi/internal/domain"
	"github.com/tapi-calorie/tapi/internal/infra/database/models"
)

type MealRecordRepository struct {
	db *gorm.DB
}

func NewMealRecordRepository(db *gorm.DB) *MealRecordRepository {
	return &MealRecordRepository{db: db}
}

func mealRecordFromModel(row models.MealRecord) domain.MealRecord {
	return domain.MealRecord{
		PersonID:  row.PersonID,
		MealID:    row.MealID,
		Timestamp: domain.NormalizeTimestamp(row.Timestamp),
		Amount:    row.Amount,
	}
}

func (r *MealRecordRepository) find(query *gorm.DB) ([]domain.MealRecord, error) {
	var rows []models.MealRecord
	if err := query.Order("timestamp").Order("person_id").Order("meal_id").Find(&rows).Error; err != nil {
		return nil, translateError(err, domain.ResourceMealRecord)
	}

	records := make([]domain.MealRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, mealRecordFromModel(row))
	}
	return records, nil
}

func (r *MealRecordRepository) List(ctx context.Context) ([]domain.MealRecord, error) {
	ctx, span := tracer.Start(ctx, "MealRecord.Repository.List")
	defer span.End()

	records, err := r.find(r.db.WithContext(ctx))
	if err != nil {
		span.RecordError(err)
	}
	return records, err
}

func (r *MealRecordRepository) ListByPerson(ctx context.Context, personID string) ([]domain.MealRecord, error) {
	ctx, span := tracer.Start(ctx, "MealRecord.Repository.ListByPerson")
	defer span.End()

	records, err := r.find(r.db.WithContext(ctx).Where("person_id = ?", personID))
	if err != nil {
		span.RecordError(err)
	}
	return records, err
}

func (r *MealRecordRepository) Get(ctx context.Context, key domain.MealRecordKey) (domain.MealRecord, error) {
	ctx, span := tracer.Start(ctx, "MealRecord.Repository.Get")
	defer span.End()

	var row models.MealRecord
	err := r.db.WithContext(ctx).
		Where("person_id = ? AND meal_id = ? AND timestamp = ?", key.PersonID, key.MealID, domain.NormalizeTimestamp(key.Timestamp)).
		Take(&row).Error
	if err != nil {
		return domain.MealRecord{}, translateError(err, domain.ResourceMealRecord)
	}
	return mealRecordFromModel(row), nil
}

// Create requires both the person and the meal to exist.
func (r *MealRecordRepository) Create(ctx context.Context, mr domain.MealRecord) error {
	ctx, span := tracer.Start(ctx, "MealRecord.Repository.Create")
	defer span.End()

	ts := domain.NormalizeTimestamp(mr.Timestamp)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Person{}, domain.ResourcePerson, mr.PersonID); err != nil {
			return err
		}
		if err := mustExist(tx, &models.Meal{}, domain.ResourceMeal, mr.MealID); err != nil {
			return err
		}
		dup, err := exists(tx, &models.MealRecord{}, "person_id = ? AND meal_id = ? AND timestamp = ?", mr.PersonID, mr.MealID, ts)
		if err != nil {
			return err
		}
		if dup {
			return domain.ConflictError{Resource: domain.ResourceMealRecord, Reason: "record already exists"}
		}
		row := models.MealRecord{
			PersonID:  mr.PersonID,
			MealID:    mr.MealID,
			Timestamp: ts,
			Amount:    mr.Amount,
		}
		return tx.Omit(clause.Associations).Create(&row).Error
	})
	if err != nil {
		span.RecordError(err)
	}
	return translateError(err, domain.ResourceMealRecord)
}

func (r *MealRecordRepository) Update(ctx context.Context, mr domain.MealRecord) error {
	ctx, span := tracer.Start(ctx, "MealRecord.Repository.Update")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.MealRecord{}).
			Where("person_id = ? AND meal_id = ? AND timestamp = ?", mr.PersonID, mr.MealID, domain.NormalizeTimestamp(mr.Timestamp)).
			Update("amount", mr.Amount)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: domain.ResourceMealRecord}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
	}
	return translateError(err, domain.ResourceMealRecord)
}

func (r *MealRecordRepository) Delete(ctx context.Context, key domain.MealRecordKey) error {
	ctx, span := tracer.Start(ctx, "MealRecord.Repository.Delete")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("person_id = ? AND meal_id = ? AND timestamp = ?", key.PersonID, key.MealID, domain.NormalizeTimestamp(key.Timestamp)).
			Delete(&models.MealRecord{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: domain.ResourceMealRecord}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
	}
	return translateError(err, domain.ResourceMealRecord)
}
