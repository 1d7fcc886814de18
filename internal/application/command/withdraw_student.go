package command

import (
	"context"
	"errors"
	"log/slog"

	"github.com/campus-hub/academic-registry/internal/domain/registration"
	"github.com/campus-hub/academic-registry/internal/domain/shared"
	"github.com/campus-hub/academic-registry/internal/domain/student"
)

// WithdrawStudentCommand contains the data to withdraw a student from a
// course.
type WithdrawStudentCommand struct {
	StudentID  student.StudentID
	CourseCode registration.CourseCode
}

// Validate validates the command.
func (c WithdrawStudentCommand) Validate() error {
	if c.StudentID == "" {
		return errors.New("withdraw_student: student_id is required")
	}
	if c.CourseCode == "" {
		return errors.New("withdraw_student: course_code is required")
	}
	return nil
}

// WithdrawStudentHandler handles WithdrawStudentCommand.
type WithdrawStudentHandler struct {
	registry *registration.Registry
	eventBus shared.EventBus
	logger   *slog.Logger
}

// NewWithdrawStudentHandler creates the handler.
func NewWithdrawStudentHandler(registry *registration.Registry, eventBus shared.EventBus, logger *slog.Logger) *WithdrawStudentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WithdrawStudentHandler{
		registry: registry,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Handle removes the student from the course's enrollment set. Returns
// true iff a removal occurred. The student's own enrollment list is not
// touched.
func (h *WithdrawStudentHandler) Handle(ctx context.Context, cmd WithdrawStudentCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	withdrawn := h.registry.WithdrawStudent(cmd.StudentID, cmd.CourseCode)
	if !withdrawn {
		h.logger.Info("withdrawal no-op",
			"student_id", cmd.StudentID.String(),
			"course_code", cmd.CourseCode.String())
		return false, nil
	}

	h.logger.Info("student withdrawn",
		"student_id", cmd.StudentID.String(),
		"course_code", cmd.CourseCode.String())

	event := registration.NewStudentWithdrawnEvent(cmd.CourseCode, cmd.StudentID.String())
	if err := h.eventBus.Publish(ctx, event); err != nil {
		h.logger.Error("publish student_withdrawn failed", "error", err)
	}

	return true, nil
}
