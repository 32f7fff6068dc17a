package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tapi-calorie/tapi/internal/domain"
	"github.com/tapi-calorie/tapi/internal/infra/database/models"
)

func TestConcurrentCreateHasSingleWinner(t *testing.T) {
	db := setupDB(t)
	persons := NewPersonRepository(db)

	const workers = 8
	errs := make([]error, workers)

	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = persons.Create(context.Background(), domain.Person{ID: "carol"})
		}(i)
	}
	close(start)
	wg.Wait()

	var ok, conflict int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, domain.ErrConflict):
			conflict++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, workers-1, conflict)
}

func TestTranslateErrorDuplicateKey(t *testing.T) {
	db := setupDB(t)

	require.NoError(t, db.Create(&models.Person{ID: "dave"}).Error)
	err := db.Create(&models.Person{ID: "dave"}).Error
	require.ErrorIs(t, err, gorm.ErrDuplicatedKey)

	translated := translateError(err, domain.ResourcePerson)
	assert.ErrorIs(t, translated, domain.ErrConflict)

	var conflict domain.ConflictError
	require.True(t, errors.As(translated, &conflict))
	assert.Equal(t, domain.ResourcePerson, conflict.Resource)
}

func TestTranslateErrorForeignKey(t *testing.T) {
	db := setupDB(t)

	err := db.Omit(clause.Associations).Create(&models.MealRecord{
		PersonID:  "nobody",
		MealID:    "nothing",
		Timestamp: time.Date(2020, 1, 31, 13, 14, 31, 0, time.UTC),
		Amount:    1,
	}).Error
	require.ErrorIs(t, err, gorm.ErrForeignKeyViolated)

	assert.ErrorIs(t, translateError(err, domain.ResourceMealRecord), domain.ErrConflict)
}

func TestTranslateErrorPassesThrough(t *testing.T) {
	assert.NoError(t, translateError(nil, domain.ResourceMeal))

	notFound := domain.NotFoundError{Resource: domain.ResourceMeal}
	assert.Equal(t, error(notFound), translateError(notFound, domain.ResourceMeal))

	assert.ErrorIs(t, translateError(gorm.ErrRecordNotFound, domain.ResourceMeal), domain.ErrNotFound)

	other := errors.New("connection reset")
	translated := translateError(other, domain.ResourceMeal)
	assert.ErrorIs(t, translated, other)
	assert.NotErrorIs(t, translated, domain.ErrConflict)
}
