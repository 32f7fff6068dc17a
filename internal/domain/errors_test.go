package domain

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorsMatchThroughWrapping(t *testing.T) {
	notFound := errors.Wrap(NotFoundError{Resource: ResourceMeal}, "lookup")
	assert.True(t, errors.Is(notFound, ErrNotFound))
	assert.False(t, errors.Is(notFound, ErrConflict))
	assert.Equal(t, "lookup: meal not found", notFound.Error())

	conflict := errors.Wrap(ConflictError{Resource: ResourcePortion, Reason: "in use"}, "delete")
	assert.True(t, errors.Is(conflict, ErrConflict))
	assert.False(t, errors.Is(conflict, ErrNotFound))

	var target ConflictError
	assert.True(t, errors.As(conflict, &target))
	assert.Equal(t, "portion conflict: in use", target.Error())
}

func TestMealRecordKeyEqual(t *testing.T) {
	a := MealRecord{PersonID: "alice", MealID: "oatmeal"}.Key()
	b := MealRecordKey{PersonID: "alice", MealID: "oatmeal"}
	assert.True(t, a.Equal(b))

	b.MealID = "soup"
	assert.False(t, a.Equal(b))
}
