// Package shared contains common domain types, errors, and event contracts
// that are used across all domain packages.
package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each event represents something significant that
// happened in the domain.
const (
	// Student events
	EventStudentCreated   EventType = "student.created"
	EventCourseEnrolled   EventType = "student.course_enrolled"
	EventCGPAUpdated      EventType = "student.cgpa_updated"
	EventSemesterAdvanced EventType = "student.semester_advanced"
	EventSemesterHeld     EventType = "student.semester_held"

	// Registration events
	EventCourseAdded          EventType = "registration.course_added"
	EventStudentRegistered    EventType = "registration.student_registered"
	EventRegistrationRejected EventType = "registration.rejected"
	EventStudentWithdrawn     EventType = "registration.student_withdrawn"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string

	// Payload returns the event data as a map for serialization.
	Payload() map[string]interface{}
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	EventID     string    `json:"event_id"`
	Type        EventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	AggregateId string    `json:"aggregate_id"`
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// NewBaseEvent creates a new base event with a fresh event ID.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		EventID:     uuid.New().String(),
		Type:        eventType,
		Timestamp:   time.Now().UTC(),
		AggregateId: aggregateID,
	}
}

// EventHandler processes a single domain event.
type EventHandler func(ctx context.Context, event Event) error

// EventBus publishes domain events to subscribed handlers.
type EventBus interface {
	// Publish sends an event to all handlers subscribed to its type.
	Publish(ctx context.Context, event Event) error

	// Subscribe registers a handler for a specific event type.
	Subscribe(eventType EventType, handler EventHandler) error

	// SubscribeAll registers a handler for every event.
	SubscribeAll(handler EventHandler) error

	// Close shuts the bus down; further publishes fail.
	Close() error
}
