package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/tapi-calorie/tapi/internal/domain"
)

func setupSignal(t *testing.T) *SignalService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewSignalService(client)
}

func TestRealtimeForwardsSubscribedEvents(t *testing.T) {
	signal := setupSignal(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	input := make(chan []string)
	output := make(chan domain.ChangeEvent, 4)
	go signal.Realtime(ctx, input, output)

	input <- []string{domain.ResourceMeal}

	event := domain.ChangeEvent{
		Resource:  domain.ResourceMeal,
		Action:    domain.ActionCreated,
		Key:       "oatmeal",
		Timestamp: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	// publish until the subscription is live
	var got domain.ChangeEvent
	assert.Eventually(t, func() bool {
		if err := signal.Publish(ctx, domain.ChangeEvent{Resource: domain.ResourcePerson, Key: "ignored"}); err != nil {
			return false
		}
		if err := signal.Publish(ctx, event); err != nil {
			return false
		}
		select {
		case got = <-output:
			return true
		case <-time.After(20 * time.Millisecond):
			return false
		}
	}, 2*time.Second, 10*time.Millisecond)

	assert.Equal(t, domain.ResourceMeal, got.Resource)
	assert.Equal(t, "oatmeal", got.Key)
	assert.Equal(t, domain.ActionCreated, got.Action)
}

func TestChannel(t *testing.T) {
	assert.Equal(t, "tapi:mealrecord", Channel(domain.ResourceMealRecord))
}
