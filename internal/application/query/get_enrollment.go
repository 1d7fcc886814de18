// Package query contains read operations (CQRS - Queries).
package query

import (
	"errors"
	"time"

	"github.com/campus-hub/academic-registry/internal/domain/registration"
)

// GetEnrollmentQuery requests enrollment statistics for one course.
type GetEnrollmentQuery struct {
	CourseCode registration.CourseCode
}

// Validate validates the query.
func (q GetEnrollmentQuery) Validate() error {
	if q.CourseCode == "" {
		return errors.New("get_enrollment: course_code is required")
	}
	return nil
}

// EnrollmentView is the read model for one course's enrollment state.
type EnrollmentView struct {
	CourseCode    registration.CourseCode
	CourseName    string
	Enrolled      int
	SeatsLeft     int
	Full          bool
	Deadline      time.Time
	Prerequisites []registration.CourseCode
}

// GetEnrollmentHandler handles GetEnrollmentQuery.
type GetEnrollmentHandler struct {
	registry *registration.Registry
}

// NewGetEnrollmentHandler creates the handler.
func NewGetEnrollmentHandler(registry *registration.Registry) *GetEnrollmentHandler {
	return &GetEnrollmentHandler{registry: registry}
}

// Handle builds the enrollment view. Unknown courses propagate the
// registry's out-of-range error.
func (h *GetEnrollmentHandler) Handle(q GetEnrollmentQuery) (*EnrollmentView, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}

	enrolled, err := h.registry.EnrollmentCount(q.CourseCode)
	if err != nil {
		return nil, err
	}

	full, err := h.registry.IsCourseFull(q.CourseCode)
	if err != nil {
		return nil, err
	}

	name, err := h.registry.CourseName(q.CourseCode)
	if err != nil {
		return nil, err
	}

	seatsLeft, err := h.registry.SeatsLeft(q.CourseCode)
	if err != nil {
		return nil, err
	}

	deadline, err := h.registry.Deadline(q.CourseCode)
	if err != nil {
		return nil, err
	}

	prereqs, err := h.registry.Prerequisites(q.CourseCode)
	if err != nil {
		return nil, err
	}

	return &EnrollmentView{
		CourseCode:    q.CourseCode,
		CourseName:    name,
		Enrolled:      enrolled,
		SeatsLeft:     seatsLeft,
		Full:          full,
		Deadline:      deadline,
		Prerequisites: prereqs,
	}, nil
}
