// Package handle encodes composite keys into single URL path segments and back.
//
// Both codecs take the meal id as an explicit argument when decoding, because
// every route that carries a composite handle already carries the meal id in
// an earlier path segment. Decoding strips the known meal id instead of
// splitting on its first occurrence, so ids that themselves contain
// "<meal>-" still decode to the key they were encoded from.
package handle

import (
	"errors"
	"strings"
	"time"

	"github.com/tapi-calorie/tapi/internal/domain"
)

// ErrMalformedHandle is returned when a handle cannot be decoded.
var ErrMalformedHandle = errors.New("malformed handle")

const (
	separator = "-"

	// TimestampLayout renders timestamps as YYYY-MM-DD_HH:MM:SS.ffffff.
	TimestampLayout = "2006-01-02_15:04:05.000000"

	// the layout above contributes exactly two separators
	timestampFields = 3
)

// MealPortionCodec handles "<meal_id>-<portion_id>".
type MealPortionCodec struct{}

func (MealPortionCodec) Encode(key domain.MealPortionKey) string {
	return key.MealID + separator + key.PortionID
}

func (MealPortionCodec) Decode(meal, handle string) (domain.MealPortionKey, error) {
	prefix := meal + separator
	if meal == "" || !strings.HasPrefix(handle, prefix) {
		return domain.MealPortionKey{}, ErrMalformedHandle
	}
	portion := strings.TrimPrefix(handle, prefix)
	if portion == "" {
		return domain.MealPortionKey{}, ErrMalformedHandle
	}
	return domain.MealPortionKey{MealID: meal, PortionID: portion}, nil
}

// MealRecordCodec handles "<person_id>-<meal_id>-<timestamp>".
type MealRecordCodec struct{}

func (MealRecordCodec) Encode(key domain.MealRecordKey) string {
	return key.PersonID + separator + key.MealID + separator + FormatTimestamp(key.Timestamp)
}

func (MealRecordCodec) Decode(meal, handle string) (domain.MealRecordKey, error) {
	if meal == "" {
		return domain.MealRecordKey{}, ErrMalformedHandle
	}

	fields := strings.Split(handle, separator)
	// person, meal and the timestamp fields at the very least
	if len(fields) < timestampFields+2 {
		return domain.MealRecordKey{}, ErrMalformedHandle
	}

	split := len(fields) - timestampFields
	ts, err := ParseTimestamp(strings.Join(fields[split:], separator))
	if err != nil {
		return domain.MealRecordKey{}, ErrMalformedHandle
	}

	head := strings.Join(fields[:split], separator)
	suffix := separator + meal
	if !strings.HasSuffix(head, suffix) {
		return domain.MealRecordKey{}, ErrMalformedHandle
	}
	person := strings.TrimSuffix(head, suffix)
	if person == "" {
		return domain.MealRecordKey{}, ErrMalformedHandle
	}

	return domain.MealRecordKey{PersonID: person, MealID: meal, Timestamp: ts}, nil
}

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp reverses FormatTimestamp. A space is accepted where the
// layout has an underscore.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.Replace(s, " ", "_", 1)
	t, err := time.ParseInLocation(TimestampLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
