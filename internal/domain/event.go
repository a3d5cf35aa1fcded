package domain

import (
	"time"

	"github.com/google/uuid"
)

// Типы доменных событий
const (
	EventCatalogIndexed       = "catalog.indexed"
	EventRecommendationServed = "recommendation.served"
)

// Event - доменное событие для внешних потребителей.
type Event struct {
	ID         string
	Type       string
	OccurredAt time.Time
	Attributes map[string]any
}

func NewEvent(eventType string, attributes map[string]any) *Event {
	return &Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Attributes: attributes,
	}
}
