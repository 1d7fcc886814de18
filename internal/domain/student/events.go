package student

import (
	"github.com/campus-hub/academic-registry/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN EVENTS
// Events produced by student record changes. The domain constructs them;
// the application layer publishes them on the event bus.
// ══════════════════════════════════════════════════════════════════════════════

// CreatedEvent - a new student record was created.
type CreatedEvent struct {
	shared.BaseEvent
	Name       string `json:"name"`
	Department string `json:"department"`
}

// Payload implements shared.Event.
func (e CreatedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"name":       e.Name,
		"department": e.Department,
	}
}

// NewCreatedEvent creates the event for a freshly constructed student.
func NewCreatedEvent(s *Student) CreatedEvent {
	return CreatedEvent{
		BaseEvent:  shared.NewBaseEvent(shared.EventStudentCreated, s.ID().String()),
		Name:       s.Name(),
		Department: s.Department(),
	}
}

// CourseEnrolledEvent - a course code was appended to the student's list.
type CourseEnrolledEvent struct {
	shared.BaseEvent
	CourseCode  string `json:"course_code"`
	TotalLoaded int    `json:"total_loaded"`
}

// Payload implements shared.Event.
func (e CourseEnrolledEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"course_code":  e.CourseCode,
		"total_loaded": e.TotalLoaded,
	}
}

// NewCourseEnrolledEvent creates the enrollment event.
func NewCourseEnrolledEvent(s *Student, courseCode string) CourseEnrolledEvent {
	return CourseEnrolledEvent{
		BaseEvent:   shared.NewBaseEvent(shared.EventCourseEnrolled, s.ID().String()),
		CourseCode:  courseCode,
		TotalLoaded: len(s.EnrolledCourses()),
	}
}

// CGPAUpdatedEvent - the student's CGPA changed.
type CGPAUpdatedEvent struct {
	shared.BaseEvent
	OldCGPA     CGPA             `json:"old_cgpa"`
	NewCGPA     CGPA             `json:"new_cgpa"`
	OldStanding AcademicStanding `json:"old_standing"`
	NewStanding AcademicStanding `json:"new_standing"`
}

// Payload implements shared.Event.
func (e CGPAUpdatedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"old_cgpa":     e.OldCGPA.Float64(),
		"new_cgpa":     e.NewCGPA.Float64(),
		"old_standing": string(e.OldStanding),
		"new_standing": string(e.NewStanding),
	}
}

// NewCGPAUpdatedEvent creates the CGPA change event.
// Call after UpdateCGPA succeeded, passing the prior value.
func NewCGPAUpdatedEvent(s *Student, oldCGPA CGPA) CGPAUpdatedEvent {
	return CGPAUpdatedEvent{
		BaseEvent:   shared.NewBaseEvent(shared.EventCGPAUpdated, s.ID().String()),
		OldCGPA:     oldCGPA,
		NewCGPA:     s.CGPA(),
		OldStanding: StandingForCGPA(oldCGPA),
		NewStanding: s.AcademicStanding(),
	}
}

// SemesterAdvancedEvent - the student moved to the next semester.
type SemesterAdvancedEvent struct {
	shared.BaseEvent
	Semester int `json:"semester"`
}

// Payload implements shared.Event.
func (e SemesterAdvancedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"semester": e.Semester,
	}
}

// NewSemesterAdvancedEvent creates the advancement event.
func NewSemesterAdvancedEvent(s *Student) SemesterAdvancedEvent {
	return SemesterAdvancedEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventSemesterAdvanced, s.ID().String()),
		Semester:  s.Semester(),
	}
}

// SemesterHeldEvent - advancement was refused because of probation.
type SemesterHeldEvent struct {
	shared.BaseEvent
	Semester int  `json:"semester"`
	CGPA     CGPA `json:"cgpa"`
}

// Payload implements shared.Event.
func (e SemesterHeldEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"semester": e.Semester,
		"cgpa":     e.CGPA.Float64(),
	}
}

// NewSemesterHeldEvent creates the probation-hold event.
func NewSemesterHeldEvent(s *Student) SemesterHeldEvent {
	return SemesterHeldEvent{
		BaseEvent: shared.NewBaseEvent(shared.EventSemesterHeld, s.ID().String()),
		Semester:  s.Semester(),
		CGPA:      s.CGPA(),
	}
}
