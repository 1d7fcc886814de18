package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campus-hub/academic-registry/internal/domain/registration"
	"github.com/campus-hub/academic-registry/internal/domain/shared"
	"github.com/campus-hub/academic-registry/internal/domain/student"
	"github.com/campus-hub/academic-registry/pkg/clock"
)

func TestGetEnrollmentHandler(t *testing.T) {
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	deadline := now.Add(7 * 24 * time.Hour)

	registry := registration.NewRegistryWithClock(clock.NewFixed(now))
	require.NoError(t, registry.AddCourse("CS201", "Data Structures", 2,
		[]registration.CourseCode{"CS101"}, deadline))

	s, err := student.NewStudent(student.NewStudentParams{
		ID:         "CS2023001",
		Name:       "Test Student",
		Department: "Computer Science",
	})
	require.NoError(t, err)
	_, err = s.EnrollInCourse("CS101")
	require.NoError(t, err)

	status, err := registry.RegisterStudent(s, "CS201")
	require.NoError(t, err)
	require.Equal(t, registration.StatusSuccess, status)

	handler := NewGetEnrollmentHandler(registry)
	view, err := handler.Handle(GetEnrollmentQuery{CourseCode: "CS201"})
	require.NoError(t, err)

	assert.Equal(t, registration.CourseCode("CS201"), view.CourseCode)
	assert.Equal(t, "Data Structures", view.CourseName)
	assert.Equal(t, 1, view.Enrolled)
	assert.Equal(t, 1, view.SeatsLeft)
	assert.False(t, view.Full)
	assert.Equal(t, deadline, view.Deadline)
	assert.Equal(t, []registration.CourseCode{"CS101"}, view.Prerequisites)
}

func TestGetEnrollmentHandler_UnknownCourse(t *testing.T) {
	handler := NewGetEnrollmentHandler(registration.NewRegistry())

	_, err := handler.Handle(GetEnrollmentQuery{CourseCode: "CS999"})
	require.Error(t, err)
	assert.True(t, shared.IsOutOfRange(err))
}

func TestGetEnrollmentHandler_ValidatesQuery(t *testing.T) {
	handler := NewGetEnrollmentHandler(registration.NewRegistry())

	_, err := handler.Handle(GetEnrollmentQuery{})
	assert.Error(t, err)
}
