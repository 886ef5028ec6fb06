// Package events publishes registry domain events after transactions commit.
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source=events.go -destination=mocks/mocks.go -package=mocks Publisher

// Event types emitted by the registry.
const (
	CompanyRegistered     = "company.registered"
	CompanyCapitalUpdated = "company.capital_updated"
	CompanyCreated        = "company.created"
	CompanyUpdated        = "company.updated"
	CompanyDeleted        = "company.deleted"
	PersonCreated         = "person.created"
	PersonUpdated         = "person.updated"
	PersonDeleted         = "person.deleted"
	ShareholdingCreated   = "shareholding.created"
	ShareholdingUpdated   = "shareholding.updated"
	ShareholdingDeleted   = "shareholding.deleted"
)

// Event is the envelope written to the broker.
type Event struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	AggregateID string          `json:"aggregate_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

// New builds an event for the aggregate with the given id. A payload that
// cannot be marshalled is dropped from the envelope.
func New(eventType string, aggregateID int64, payload any) Event {
	e := Event{
		ID:          uuid.NewString(),
		Type:        eventType,
		AggregateID: strconv.FormatInt(aggregateID, 10),
		OccurredAt:  time.Now().UTC(),
	}
	if payload != nil {
		if b, err := json.Marshal(payload); err == nil {
			e.Payload = b
		}
	}
	return e
}

// Publisher delivers events to a broker.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Noop discards events. It is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, Event) error { return nil }
func (Noop) Close() error                         { return nil }
