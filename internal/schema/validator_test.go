package schema

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapi-calorie/tapi/internal/domain"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func newValidator(t *testing.T) *Validator {
	t.Helper()
	v, err := NewValidator()
	require.NoError(t, err)
	return v
}

func TestValidateAcceptsValidPayloads(t *testing.T) {
	t.Parallel()
	v := newValidator(t)

	cases := map[string]string{
		domain.ResourcePerson:      `{"id": "123"}`,
		domain.ResourceMeal:        `{"id": "myoatmeal", "name": "My Oatmeal", "servings": 3}`,
		domain.ResourcePortion:     `{"id": "myoat", "name": "My Oat", "calories": 352, "fat": 6.9}`,
		domain.ResourceMealPortion: `{"meal_id": "oatmeal", "portion_id": "oat", "weight_per_serving": 150}`,
		domain.ResourceMealRecord:  `{"person_id": "123", "meal_id": "oatmeal", "amount": 1.5, "timestamp": "2020-01-31T13:14:31Z"}`,
	}

	for resource, raw := range cases {
		assert.NoError(t, v.Validate(resource, decode(t, raw)), resource)
	}
}

func TestValidatePersonRejects(t *testing.T) {
	t.Parallel()
	v := newValidator(t)

	cases := []string{
		`{}`,
		`{"id": ""}`,
		`{"id": "#$%^"}`,
		`{"id": "` + strings.Repeat("a", 129) + `"}`,
		`{"id": 123}`,
		`{"id": "Upper"}`,
		`{"id": "trailing-"}`,
		`["123"]`,
		`"123"`,
	}

	for _, raw := range cases {
		err := v.Validate(domain.ResourcePerson, decode(t, raw))
		var violation *ViolationError
		assert.ErrorAs(t, err, &violation, raw)
	}
}

func TestValidateIsTypeExact(t *testing.T) {
	t.Parallel()
	v := newValidator(t)

	err := v.Validate(domain.ResourceMeal, decode(t, `{"id": "oatmeal", "name": "Oatmeal", "servings": "3"}`))
	var violation *ViolationError
	require.ErrorAs(t, err, &violation)
	assert.Contains(t, violation.Message, "servings")
}

func TestValidateMealServingsPositive(t *testing.T) {
	t.Parallel()
	v := newValidator(t)

	assert.Error(t, v.Validate(domain.ResourceMeal, decode(t, `{"id": "a", "name": "A", "servings": 0}`)))
	assert.Error(t, v.Validate(domain.ResourceMeal, decode(t, `{"id": "a", "name": "A", "servings": -1}`)))
	assert.NoError(t, v.Validate(domain.ResourceMeal, decode(t, `{"id": "a", "name": "A", "servings": 2.5}`)))
}

func TestValidateIgnoresUnknownFields(t *testing.T) {
	t.Parallel()
	v := newValidator(t)

	assert.NoError(t, v.Validate(domain.ResourcePerson, decode(t, `{"id": "123", "nickname": "x"}`)))
}

func TestValidateMealRecordTimestamp(t *testing.T) {
	t.Parallel()
	v := newValidator(t)

	bad := `{"person_id": "123", "meal_id": "oatmeal", "amount": 1, "timestamp": "yesterday"}`
	assert.Error(t, v.Validate(domain.ResourceMealRecord, decode(t, bad)))

	missing := `{"person_id": "123", "meal_id": "oatmeal", "amount": 1}`
	assert.Error(t, v.Validate(domain.ResourceMealRecord, decode(t, missing)))
}

func TestValidateUnknownResource(t *testing.T) {
	t.Parallel()
	v := newValidator(t)

	err := v.Validate("activity", decode(t, `{}`))
	require.Error(t, err)
	var violation *ViolationError
	assert.False(t, errors.As(err, &violation))
}

func TestDescribeReturnsCopies(t *testing.T) {
	t.Parallel()

	first := Describe(domain.ResourceMeal)
	first["type"] = "array"

	second := Describe(domain.ResourceMeal)
	assert.Equal(t, "object", second["type"])
	assert.Nil(t, Describe("activity"))
}
