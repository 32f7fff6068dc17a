package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tapi-calorie/tapi/internal/domain"
	"github.com/tapi-calorie/tapi/internal/infra/database/models"
)

type PortionRepository struct {
	db *gorm.DB
}

func NewPortionRepository(db *gorm.DB) *PortionRepository {
	return &PortionRepository{db: db}
}

func portionFromModel(row models.Portion) domain.Portion {
	return domain.Portion{
		ID:           row.ID,
		Name:         row.Name,
		Calories:     row.Calories,
		Density:      row.Density,
		Alcohol:      row.Alcohol,
		Carbohydrate: row.Carbohydrate,
		Protein:      row.Protein,
		Fat:          row.Fat,
	}
}

func (r *PortionRepository) List(ctx context.Context) ([]domain.Portion, error) {
	ctx, span := tracer.Start(ctx, "Portion.Repository.List")
	defer span.End()

	var rows []models.Portion
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		span.RecordError(err)
		return nil, translateError(err, domain.ResourcePortion)
	}

	portions := make([]domain.Portion, 0, len(rows))
	for _, row := range rows {
		portions = append(portions, portionFromModel(row))
	}
	return portions, nil
}

func (r *PortionRepository) Get(ctx context.Context, id string) (domain.Portion, error) {
	ctx, span := tracer.Start(ctx, "Portion.Repository.Get")
	defer span.End()

	var row models.Portion
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return domain.Portion{}, translateError(err, domain.ResourcePortion)
	}
	return portionFromModel(row), nil
}

func (r *PortionRepository) Create(ctx context.Context, portion domain.Portion) error {
	ctx, span := tracer.Start(ctx, "Portion.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dup, err := exists(tx, &models.Portion{}, "id = ?", portion.ID)
		if err != nil {
			return err
		}
		if dup {
			return domain.ConflictError{Resource: domain.ResourcePortion, Reason: "portion " + portion.ID + " already exists"}
		}
		row := models.Portion{
			ID:           portion.ID,
			Name:         portion.Name,
			Calories:     portion.Calories,
			Density:      portion.Density,
			Alcohol:      portion.Alcohol,
			Carbohydrate: portion.Carbohydrate,
			Protein:      portion.Protein,
			Fat:          portion.Fat,
		}
		return tx.Omit(clause.Associations).Create(&row).Error
	})
	if err != nil {
		span.RecordError(err)
	}
	return translateError(err, domain.ResourcePortion)
}

func (r *PortionRepository) Update(ctx context.Context, portion domain.Portion) error {
	ctx, span := tracer.Start(ctx, "Portion.Repository.Update")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Portion{}).Where("id = ?", portion.ID).Updates(map[string]any{
			"name":         portion.Name,
			"calories":     portion.Calories,
			"density":      portion.Density,
			"alcohol":      portion.Alcohol,
			"carbohydrate": portion.Carbohydrate,
			"protein":      portion.Protein,
			"fat":          portion.Fat,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: domain.ResourcePortion}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
	}
	return translateError(err, domain.ResourcePortion)
}

// Delete refuses to remove a portion that is still part of a meal.
func (r *PortionRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Portion.Repository.Delete")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		used, err := exists(tx, &models.MealPortion{}, "portion_id = ?", id)
		if err != nil {
			return err
		}
		if used {
			return domain.ConflictError{Resource: domain.ResourcePortion, Reason: "portion " + id + " is used by a meal"}
		}
		result := tx.Where("id = ?", id).Delete(&models.Portion{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: domain.ResourcePortion}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
	}
	return translateError(err, domain.ResourcePortion)
}
