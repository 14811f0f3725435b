// Package events publishes storefront domain events such as cart changes and
// placed orders.
package events

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Event types
const (
	TypeCartItemAdded   = "cart.item_added"
	TypeCartItemUpdated = "cart.item_updated"
	TypeCartItemRemoved = "cart.item_removed"
	TypeCartCleared     = "cart.cleared"
	TypeCheckoutStarted = "checkout.started"
	TypeOrderPlaced     = "checkout.order_placed"
	TypeUserSignedIn    = "auth.signed_in"
	TypeUserSignedOut   = "auth.signed_out"
)

// Event is a fact about one session
type Event struct {
	Type       string                 `json:"type"`
	SessionID  string                 `json:"session_id"`
	OccurredAt time.Time              `json:"occurred_at"`
	Data       map[string]interface{} `json:"data,omitempty"`
}

// New stamps an event with the current time
func New(eventType, sessionID string, data map[string]interface{}) Event {
	return Event{
		Type:       eventType,
		SessionID:  sessionID,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// Publisher delivers events. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// LogPublisher writes events to the log
type LogPublisher struct {
	logger *zap.Logger
}

func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, event Event) error {
	p.logger.Info("Domain event",
		zap.String("type", event.Type),
		zap.String("session_id", event.SessionID),
		zap.Any("data", event.Data),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}

// NopPublisher discards events
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }
