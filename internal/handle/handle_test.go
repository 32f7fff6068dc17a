package handle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tapi-calorie/tapi/internal/domain"
)

func TestMealPortionRoundTrip(t *testing.T) {
	t.Parallel()

	codec := MealPortionCodec{}
	keys := []domain.MealPortionKey{
		{MealID: "oatmeal", PortionID: "oat"},
		{MealID: "salmon-soup", PortionID: "olive-oil"},
		{MealID: "soup", PortionID: "soup-stock"},
		{MealID: "a", PortionID: "a-a-a"},
	}

	for _, key := range keys {
		got, err := codec.Decode(key.MealID, codec.Encode(key))
		require.NoError(t, err)
		assert.Equal(t, key, got)
	}
}

func TestMealPortionEncode(t *testing.T) {
	t.Parallel()

	got := MealPortionCodec{}.Encode(domain.MealPortionKey{MealID: "salmon-soup", PortionID: "cream"})
	assert.Equal(t, "salmon-soup-cream", got)
}

func TestMealPortionDecodeRejects(t *testing.T) {
	t.Parallel()

	codec := MealPortionCodec{}
	cases := []struct {
		meal   string
		handle string
	}{
		{"oatmeal", "oat"},
		{"oatmeal", "oatmeal-"},
		{"oatmeal", "oatmealoat"},
		{"oatmeal", "porridge-oat"},
		{"", "-oat"},
	}

	for _, tc := range cases {
		_, err := codec.Decode(tc.meal, tc.handle)
		assert.ErrorIs(t, err, ErrMalformedHandle, "meal=%q handle=%q", tc.meal, tc.handle)
	}
}

func TestMealRecordRoundTrip(t *testing.T) {
	t.Parallel()

	codec := MealRecordCodec{}
	keys := []domain.MealRecordKey{
		{PersonID: "123", MealID: "oatmeal", Timestamp: time.Date(2020, 1, 31, 13, 14, 31, 0, time.UTC)},
		{PersonID: "jane-doe", MealID: "salmon-soup", Timestamp: time.Date(2021, 3, 4, 5, 6, 7, 123456000, time.UTC)},
		{PersonID: "a-b", MealID: "b", Timestamp: time.Date(1999, 12, 31, 23, 59, 59, 999999000, time.UTC)},
	}

	for _, key := range keys {
		h := codec.Encode(key)
		got, err := codec.Decode(key.MealID, h)
		require.NoError(t, err, h)
		assert.True(t, key.Equal(got), "%s decoded to %+v", h, got)
	}
}

func TestMealRecordEncode(t *testing.T) {
	t.Parallel()

	key := domain.MealRecordKey{
		PersonID:  "123",
		MealID:    "oatmeal",
		Timestamp: time.Date(2020, 1, 31, 13, 14, 31, 0, time.UTC),
	}
	assert.Equal(t, "123-oatmeal-2020-01-31_13:14:31.000000", MealRecordCodec{}.Encode(key))
}

func TestMealRecordEncodeUsesUTC(t *testing.T) {
	t.Parallel()

	helsinki := time.FixedZone("EET", 2*60*60)
	key := domain.MealRecordKey{
		PersonID:  "p",
		MealID:    "m",
		Timestamp: time.Date(2020, 1, 31, 15, 14, 31, 500000000, helsinki),
	}
	assert.Equal(t, "p-m-2020-01-31_13:14:31.500000", MealRecordCodec{}.Encode(key))
}

func TestMealRecordDecodeAcceptsSpace(t *testing.T) {
	t.Parallel()

	got, err := MealRecordCodec{}.Decode("oatmeal", "123-oatmeal-2020-01-31 13:14:31.000000")
	require.NoError(t, err)
	assert.Equal(t, "123", got.PersonID)
	assert.True(t, time.Date(2020, 1, 31, 13, 14, 31, 0, time.UTC).Equal(got.Timestamp))
}

func TestMealRecordDecodeRejects(t *testing.T) {
	t.Parallel()

	codec := MealRecordCodec{}
	cases := []struct {
		meal   string
		handle string
	}{
		{"oatmeal", "123-oatmeal"},
		{"oatmeal", "123-oatmeal-2020-01-31"},
		{"oatmeal", "123-oatmeal-2020-01-31_13:14:31"},
		{"oatmeal", "123-oatmeal-2020-13-31_13:14:31.000000"},
		{"oatmeal", "123-porridge-2020-01-31_13:14:31.000000"},
		{"oatmeal", "oatmeal-2020-01-31_13:14:31.000000"},
		{"oatmeal", "-oatmeal-2020-01-31_13:14:31.000000"},
		{"", "123--2020-01-31_13:14:31.000000"},
		{"oatmeal", ""},
	}

	for _, tc := range cases {
		_, err := codec.Decode(tc.meal, tc.handle)
		assert.ErrorIs(t, err, ErrMalformedHandle, "meal=%q handle=%q", tc.meal, tc.handle)
	}
}
