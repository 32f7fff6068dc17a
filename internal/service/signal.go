package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/tapi-calorie/tapi/internal/domain"
)

const channelPrefix = "tapi:"

// Resources lists every resource a realtime client may listen to.
var Resources = []string{
	domain.ResourcePerson,
	domain.ResourceMeal,
	domain.ResourcePortion,
	domain.ResourceMealPortion,
	domain.ResourceMealRecord,
}

// Channel returns the redis channel carrying changes of resource.
func Channel(resource string) string {
	return channelPrefix + resource
}

type SignalService struct {
	rdb *redis.Client
}

func NewSignalService(redisClient *redis.Client) *SignalService {
	return &SignalService{
		rdb: redisClient,
	}
}

func (s *SignalService) Publish(ctx context.Context, event domain.ChangeEvent) error {

	jsonstr, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal change event")
	}

	err = s.rdb.Publish(ctx, Channel(event.Resource), jsonstr).Err()
	if err != nil {
		return errors.Wrap(err, "publish change event")
	}

	return nil
}

// Realtime subscribes to the resources received on input and forwards their
// change events to output until ctx is done or input is closed. An empty
// resource list subscribes to everything.
func (s *SignalService) Realtime(ctx context.Context, input <-chan []string, output chan<- domain.ChangeEvent) {
	pubsub := s.rdb.Subscribe(ctx)
	defer pubsub.Close()

	messages := pubsub.Channel()

	for {
		select {
		case <-ctx.Done():
			return
		case resources, ok := <-input:
			if !ok {
				return
			}
			if len(resources) == 0 {
				resources = Resources
			}
			channels := make([]string, 0, len(resources))
			for _, resource := range resources {
				channels = append(channels, Channel(resource))
			}
			if err := pubsub.Subscribe(ctx, channels...); err != nil {
				slog.ErrorContext(
					ctx, "failed to subscribe",
					slog.String("error", err.Error()),
					slog.String("module", "signal"),
				)
			}
		case msg, ok := <-messages:
			if !ok {
				return
			}
			var event domain.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				slog.WarnContext(
					ctx, "dropping malformed change event",
					slog.String("channel", msg.Channel),
					slog.String("error", err.Error()),
					slog.String("module", "signal"),
				)
				continue
			}
			select {
			case output <- event:
			case <-ctx.Done():
				return
			}
		}
	}
}
