package events

import (
	"claimdesk/config"
	"claimdesk/internal/database"
	"claimdesk/internal/logger"
	"context"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valkey-io/valkey-go"
)

const ClaimChannel = "claims"

// Event is one lifecycle notification published on the bus. Data carries
// event-specific fields (status, submission number, amounts).
type Event struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Channel   string         `json:"channel,omitempty"`
	ClaimID   string         `json:"claimId,omitempty"`
	Data      map[string]any `json:"data,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
}

func NewEvent(eventType, claimID string, data map[string]any) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		ClaimID:   claimID,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// EventBus fans lifecycle events out over valkey pub/sub. A nil client makes
// every operation a no-op, which keeps tests and offline tooling simple.
type EventBus struct {
	client database.CacheClient
	log    logger.Logger
	cancel context.CancelFunc
}

func New(client database.CacheClient, config config.Config) *EventBus {
	return &EventBus{
		client: client,
		log:    logger.New("events"),
	}
}

func (b *EventBus) Publish(channel string, event Event) error {
	if b.client == nil {
		return nil
	}

	log := b.log.Function("Publish")

	event.Channel = channel
	payload, err := json.Marshal(event)
	if err != nil {
		return log.Err("failed to marshal event", err, "event", event)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cmd := b.client.B().Publish().Channel(channel).Message(string(payload)).Build()
	if err := b.client.Do(ctx, cmd).Error(); err != nil {
		return log.Err("failed to publish event", err, "channel", channel)
	}

	return nil
}

// Subscribe delivers every event published on channel to handler until the
// bus is closed. It blocks, so callers run it in a goroutine.
func (b *EventBus) Subscribe(channel string, handler func(Event)) error {
	if b.client == nil {
		return nil
	}

	log := b.log.Function("Subscribe")

	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	err := b.client.Receive(ctx, b.client.B().Subscribe().Channel(channel).Build(), func(msg valkey.PubSubMessage) {
		var event Event
		if err := json.Unmarshal([]byte(msg.Message), &event); err != nil {
			log.Er("failed to unmarshal event", err, "channel", channel)
			return
		}
		handler(event)
	})
	if err != nil && ctx.Err() == nil {
		return log.Err("subscription ended unexpectedly", err, "channel", channel)
	}

	return nil
}

func (b *EventBus) Close() error {
	if b.cancel != nil {
		b.cancel()
	}
	return nil
}
