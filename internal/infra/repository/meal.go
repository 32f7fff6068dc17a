package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tapi-calorie/tapi/internal/domain"
	"github.com/tapi-calorie/tapi/internal/infra/database/models"
)

type MealRepository struct {
	db *gorm.DB
}

func NewMealRepository(db *gorm.DB) *MealRepository {
	return &MealRepository{db: db}
}

func mealFromModel(row models.Meal) domain.Meal {
	return domain.Meal{
		ID:          row.ID,
		Name:        row.Name,
		Servings:    row.Servings,
		Description: row.Description,
	}
}

func (r *MealRepository) List(ctx context.Context) ([]domain.Meal, error) {
	ctx, span := tracer.Start(ctx, "Meal.Repository.List")
	defer span.End()

	var rows []models.Meal
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		span.RecordError(err)
		return nil, translateError(err, domain.ResourceMeal)
	}

	meals := make([]domain.Meal, 0, len(rows))
	for _, row := range rows {
		meals = append(meals, mealFromModel(row))
	}
	return meals, nil
}

func (r *MealRepository) Get(ctx context.Context, id string) (domain.Meal, error) {
	ctx, span := tracer.Start(ctx, "Meal.Repository.Get")
	defer span.End()

	var row models.Meal
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return domain.Meal{}, translateError(err, domain.ResourceMeal)
	}
	return mealFromModel(row), nil
}

func (r *MealRepository) Create(ctx context.Context, meal domain.Meal) error {
	ctx, span := tracer.Start(ctx, "Meal.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dup, err := exists(tx, &models.Meal{}, "id = ?", meal.ID)
		if err != nil {
			return err
		}
		if dup {
			return domain.ConflictError{Resource: domain.ResourceMeal, Reason: "meal " + meal.ID + " already exists"}
		}
		row := models.Meal{
			ID:          meal.ID,
			Name:        meal.Name,
			Servings:    meal.Servings,
			Description: meal.Description,
		}
		return tx.Omit(clause.Associations).Create(&row).Error
	})
	if err != nil {
		span.RecordError(err)
	}
	return translateError(err, domain.ResourceMeal)
}

func (r *MealRepository) Update(ctx context.Context, meal domain.Meal) error {
	ctx, span := tracer.Start(ctx, "Meal.Repository.Update")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Meal{}).Where("id = ?", meal.ID).Updates(map[string]any{
			"name":        meal.Name,
			"servings":    meal.Servings,
			"description": meal.Description,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: domain.ResourceMeal}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
	}
	return translateError(err, domain.ResourceMeal)
}

// Delete removes the meal, its portions and every record of it.
func (r *MealRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Meal.Repository.Delete")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", id).Delete(&models.MealRecord{}).Error; err != nil {
			return err
		}
		if err := tx.Where("meal_id = ?", id).Delete(&models.MealPortion{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Meal{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: domain.ResourceMeal}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
	}
	return translateError(err, domain.ResourceMeal)
}
