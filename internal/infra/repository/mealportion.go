package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tapi-calorie/tapi/internal/domain"
	"github.com/tapi-calorie/tapi/internal/infra/database/models"
)

type MealPortionRepository struct {
	db *gorm.DB
}

func NewMealPortionRepository(db *gorm.DB) *MealPortionRepository {
	return &MealPortionRepository{db: db}
}

func mealPortionFromModel(row models.MealPortion) domain.MealPortion {
	return domain.MealPortion{
		MealID:           row.MealID,
		PortionID:        row.PortionID,
		WeightPerServing: row.WeightPerServing,
	}
}

func (r *MealPortionRepository) ListByMeal(ctx context.Context, mealID string) ([]domain.MealPortion, error) {
	ctx, span := tracer.Start(ctx, "MealPortion.Repository.ListByMeal")
	defer span.End()

	var rows []models.MealPortion
	err := r.db.WithContext(ctx).
		Where("meal_id = ?", mealID).
		Order("portion_id").
		Find(&rows).Error
	if err != nil {
		span.RecordError(err)
		return nil, translateError(err, domain.ResourceMealPortion)
	}

	result := make([]domain.MealPortion, 0, len(rows))
	for _, row := range rows {
		result = append(result, mealPortionFromModel(row))
	}
	return result, nil
}

func (r *MealPortionRepository) Get(ctx context.Context, key domain.MealPortionKey) (domain.MealPortion, error) {
	ctx, span := tracer.Start(ctx, "MealPortion.Repository.Get")
	defer span.End()

	var row models.MealPortion
	err := r.db.WithContext(ctx).
		Where("meal_id = ? AND portion_id = ?", key.MealID, key.PortionID).
		Take(&row).Error
	if err != nil {
		return domain.MealPortion{}, translateError(err, domain.ResourceMealPortion)
	}
	return mealPortionFromModel(row), nil
}

// Create requires both the meal and the portion to exist.
func (r *MealPortionRepository) Create(ctx context.Context, mp domain.MealPortion) error {
	ctx, span := tracer.Start(ctx, "MealPortion.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := mustExist(tx, &models.Meal{}, domain.ResourceMeal, mp.MealID); err != nil {
			return err
		}
		if err := mustExist(tx, &models.Portion{}, domain.ResourcePortion, mp.PortionID); err != nil {
			return err
		}
		dup, err := exists(tx, &models.MealPortion{}, "meal_id = ? AND portion_id = ?", mp.MealID, mp.PortionID)
		if err != nil {
			return err
		}
		if dup {
			return domain.ConflictError{Resource: domain.ResourceMealPortion, Reason: "portion " + mp.PortionID + " is already part of meal " + mp.MealID}
		}
		row := models.MealPortion{
			MealID:           mp.MealID,
			PortionID:        mp.PortionID,
			WeightPerServing: mp.WeightPerServing,
		}
		return tx.Omit(clause.Associations).Create(&row).Error
	})
	if err != nil {
		span.RecordError(err)
	}
	return translateError(err, domain.ResourceMealPortion)
}

func (r *MealPortionRepository) Update(ctx context.Context, mp domain.MealPortion) error {
	ctx, span := tracer.Start(ctx, "MealPortion.Repository.Update")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.MealPortion{}).
			Where("meal_id = ? AND portion_id = ?", mp.MealID, mp.PortionID).
			Update("weight_per_serving", mp.WeightPerServing)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: domain.ResourceMealPortion}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
	}
	return translateError(err, domain.ResourceMealPortion)
}

func (r *MealPortionRepository) Delete(ctx context.Context, key domain.MealPortionKey) error {
	ctx, span := tracer.Start(ctx, "MealPortion.Repository.Delete")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("meal_id = ? AND portion_id = ?", key.MealID, key.PortionID).Delete(&models.MealPortion{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: domain.ResourceMealPortion}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
	}
	return translateError(err, domain.ResourceMealPortion)
}
