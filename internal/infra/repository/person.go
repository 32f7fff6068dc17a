package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tapi-calorie/tapi/internal/domain"
	"github.com/tapi-calorie/tapi/internal/infra/database/models"
)

type PersonRepository struct {
	db *gorm.DB
}

func NewPersonRepository(db *gorm.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) List(ctx context.Context) ([]domain.Person, error) {
	ctx, span := tracer.Start(ctx, "Person.Repository.List")
	defer span.End()

	var rows []models.Person
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		span.RecordError(err)
		return nil, translateError(err, domain.ResourcePerson)
	}

	persons := make([]domain.Person, 0, len(rows))
	for _, row := range rows {
		persons = append(persons, domain.Person{ID: row.ID})
	}
	return persons, nil
}

func (r *PersonRepository) Get(ctx context.Context, id string) (domain.Person, error) {
	ctx, span := tracer.Start(ctx, "Person.Repository.Get")
	defer span.End()

	var row models.Person
	if err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error; err != nil {
		return domain.Person{}, translateError(err, domain.ResourcePerson)
	}
	return domain.Person{ID: row.ID}, nil
}

func (r *PersonRepository) Create(ctx context.Context, person domain.Person) error {
	ctx, span := tracer.Start(ctx, "Person.Repository.Create")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dup, err := exists(tx, &models.Person{}, "id = ?", person.ID)
		if err != nil {
			return err
		}
		if dup {
			return domain.ConflictError{Resource: domain.ResourcePerson, Reason: "person " + person.ID + " already exists"}
		}
		return tx.Create(&models.Person{ID: person.ID}).Error
	})
	if err != nil {
		span.RecordError(err)
	}
	return translateError(err, domain.ResourcePerson)
}

// Delete removes the person together with its meal records.
func (r *PersonRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "Person.Repository.Delete")
	defer span.End()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("person_id = ?", id).Delete(&models.MealRecord{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Person{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: domain.ResourcePerson}
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
	}
	return translateError(err, domain.ResourcePerson)
}
