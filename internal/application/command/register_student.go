package command

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/campus-hub/academic-registry/internal/domain/registration"
	"github.com/campus-hub/academic-registry/internal/domain/shared"
	"github.com/campus-hub/academic-registry/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER STUDENT COMMAND
// Runs the registry's validation chain and reports the outcome both as a
// result value and as domain events.
// ══════════════════════════════════════════════════════════════════════════════

// RegisterStudentCommand contains the data to register a student for a
// course.
type RegisterStudentCommand struct {
	// Student is the caller-owned student record. The registry keeps
	// only its ID.
	Student *student.Student

	// CourseCode is the catalog code of the target course.
	CourseCode registration.CourseCode
}

// Validate validates the command.
func (c RegisterStudentCommand) Validate() error {
	if c.Student == nil {
		return errors.New("register_student: student is required")
	}
	if c.CourseCode == "" {
		return errors.New("register_student: course_code is required")
	}
	return nil
}

// RegisterStudentResult contains the outcome of a registration attempt.
type RegisterStudentResult struct {
	// Status is the registry's five-way outcome.
	Status registration.Status

	// StudentID is the ID of the student that attempted registration.
	StudentID student.StudentID

	// CourseCode is the target course.
	CourseCode registration.CourseCode

	// SeatsLeft is the remaining capacity after the attempt.
	SeatsLeft int

	// AttemptedAt is when the attempt was processed.
	AttemptedAt time.Time
}

// RegisterStudentHandler handles RegisterStudentCommand.
type RegisterStudentHandler struct {
	registry *registration.Registry
	eventBus shared.EventBus
	logger   *slog.Logger
}

// NewRegisterStudentHandler creates the handler.
func NewRegisterStudentHandler(registry *registration.Registry, eventBus shared.EventBus, logger *slog.Logger) *RegisterStudentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RegisterStudentHandler{
		registry: registry,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Handle runs the registration attempt. Hard failures (unknown course,
// student course limit) come back as errors; business-rule rejections
// come back in the result status.
func (h *RegisterStudentHandler) Handle(ctx context.Context, cmd RegisterStudentCommand) (*RegisterStudentResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	status, err := h.registry.RegisterStudent(cmd.Student, cmd.CourseCode)
	if err != nil {
		h.logger.Warn("registration failed",
			"student_id", cmd.Student.ID().String(),
			"course_code", cmd.CourseCode.String(),
			"error", err)
		return nil, err
	}

	seatsLeft, _ := h.registry.SeatsLeft(cmd.CourseCode)
	result := &RegisterStudentResult{
		Status:      status,
		StudentID:   cmd.Student.ID(),
		CourseCode:  cmd.CourseCode,
		SeatsLeft:   seatsLeft,
		AttemptedAt: time.Now().UTC(),
	}

	if status == registration.StatusSuccess {
		h.logger.Info("student registered",
			"student_id", cmd.Student.ID().String(),
			"course_code", cmd.CourseCode.String(),
			"seats_left", seatsLeft)

		h.publish(ctx, registration.NewStudentRegisteredEvent(cmd.CourseCode, cmd.Student.ID().String(), seatsLeft))
		h.publish(ctx, student.NewCourseEnrolledEvent(cmd.Student, cmd.CourseCode.String()))
		return result, nil
	}

	h.logger.Info("registration rejected",
		"student_id", cmd.Student.ID().String(),
		"course_code", cmd.CourseCode.String(),
		"reason", status.String())

	h.publish(ctx, registration.NewRegistrationRejectedEvent(cmd.CourseCode, cmd.Student.ID().String(), status))
	return result, nil
}

func (h *RegisterStudentHandler) publish(ctx context.Context, event shared.Event) {
	if err := h.eventBus.Publish(ctx, event); err != nil {
		h.logger.Error("publish failed",
			"event_type", event.EventType(),
			"error", err)
	}
}
