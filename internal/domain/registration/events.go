package registration

import (
	"time"

	"github.com/campus-hub/academic-registry/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN EVENTS
// Registration events are aggregated by course code.
// ══════════════════════════════════════════════════════════════════════════════

// CourseAddedEvent - a course was inserted into the catalog.
type CourseAddedEvent struct {
	shared.BaseEvent
	CourseName    string       `json:"course_name"`
	Capacity      int          `json:"capacity"`
	Prerequisites []CourseCode `json:"prerequisites"`
	Deadline      time.Time    `json:"deadline"`
}

// Payload implements shared.Event.
func (e CourseAddedEvent) Payload() map[string]interface{} {
	prereqs := make([]string, 0, len(e.Prerequisites))
	for _, p := range e.Prerequisites {
		prereqs = append(prereqs, p.String())
	}
	return map[string]interface{}{
		"course_name":   e.CourseName,
		"capacity":      e.Capacity,
		"prerequisites": prereqs,
		"deadline":      e.Deadline,
	}
}

// NewCourseAddedEvent creates the catalog-insertion event.
func NewCourseAddedEvent(code CourseCode, name string, capacity int, prerequisites []CourseCode, deadline time.Time) CourseAddedEvent {
	return CourseAddedEvent{
		BaseEvent:     shared.NewBaseEvent(shared.EventCourseAdded, code.String()),
		CourseName:    name,
		Capacity:      capacity,
		Prerequisites: prerequisites,
		Deadline:      deadline,
	}
}

// StudentRegisteredEvent - a registration attempt succeeded.
type StudentRegisteredEvent struct {
	shared.BaseEvent
	StudentID string `json:"student_id"`
	SeatsLeft int    `json:"seats_left"`
}

// Payload implements shared.Event.
func (e StudentRegisteredEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_id": e.StudentID,
		"seats_left": e.SeatsLeft,
	}
}

// NewStudentRegisteredEvent creates the successful-registration event.
func NewStudentRegisteredEvent(code CourseCode, studentID string, seatsLeft int) StudentRegisteredEvent {
	return StudentRegisteredEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventStudentRegistered, code.String()),
		StudentID: studentID,
		SeatsLeft: seatsLeft,
	}
}

// RegistrationRejectedEvent - a registration attempt was rejected by a
// business rule (deadline, duplicate, capacity, prerequisites).
type RegistrationRejectedEvent struct {
	shared.BaseEvent
	StudentID string `json:"student_id"`
	Reason    Status `json:"reason"`
}

// Payload implements shared.Event.
func (e RegistrationRejectedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_id": e.StudentID,
		"reason":     e.Reason.String(),
	}
}

// NewRegistrationRejectedEvent creates the rejection event.
func NewRegistrationRejectedEvent(code CourseCode, studentID string, reason Status) RegistrationRejectedEvent {
	return RegistrationRejectedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventRegistrationRejected, code.String()),
		StudentID: studentID,
		Reason:    reason,
	}
}

// StudentWithdrawnEvent - a student was removed from a course's
// enrollment set.
type StudentWithdrawnEvent struct {
	shared.BaseEvent
	StudentID string `json:"student_id"`
}

// Payload implements shared.Event.
func (e StudentWithdrawnEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_id": e.StudentID,
	}
}

// NewStudentWithdrawnEvent creates the withdrawal event.
func NewStudentWithdrawnEvent(code CourseCode, studentID string) StudentWithdrawnEvent {
	return StudentWithdrawnEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventStudentWithdrawn, code.String()),
		StudentID: studentID,
	}
}
