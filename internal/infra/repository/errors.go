package repository

import (
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"gorm.io/gorm"

	"github.com/tapi-calorie/tapi/internal/domain"
)

var tracer = otel.Tracer("repository")

// translateError maps gorm errors onto the domain sentinels. Domain errors
// raised inside a transaction pass through untouched.
func translateError(err error, resource string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrConflict):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.NotFoundError{Resource: resource}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errors.Wrap(domain.ConflictError{Resource: resource, Reason: "already exists"}, err.Error())
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return errors.Wrap(domain.ConflictError{Resource: resource, Reason: "foreign key violated"}, err.Error())
	}
	return errors.Wrapf(err, "%s query failed", resource)
}

// exists reports whether any row of model matches the condition.
func exists(tx *gorm.DB, model any, query string, args ...any) (bool, error) {
	var count int64
	if err := tx.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// mustExist turns a missing referenced row into a conflict.
func mustExist(tx *gorm.DB, model any, resource, id string) error {
	ok, err := exists(tx, model, "id = ?", id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ConflictError{Resource: resource, Reason: "referenced " + resource + " " + id + " does not exist"}
	}
	return nil
}
