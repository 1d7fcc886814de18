// Package command contains write operations (CQRS - Commands).
//
// Commands validate themselves, invoke the domain, publish the resulting
// events, and log structurally. The domain layer stays silent; everything
// observable happens here.
package command

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/campus-hub/academic-registry/internal/domain/registration"
	"github.com/campus-hub/academic-registry/internal/domain/shared"
)

// AddCourseCommand contains the data to insert a course into the catalog.
type AddCourseCommand struct {
	CourseCode    registration.CourseCode
	CourseName    string
	Capacity      int
	Prerequisites []registration.CourseCode
	Deadline      time.Time
}

// Validate validates the command.
func (c AddCourseCommand) Validate() error {
	if c.CourseCode == "" {
		return errors.New("add_course: course_code is required")
	}
	if c.CourseName == "" {
		return errors.New("add_course: course_name is required")
	}
	if c.Deadline.IsZero() {
		return errors.New("add_course: deadline is required")
	}
	return nil
}

// AddCourseHandler handles AddCourseCommand.
type AddCourseHandler struct {
	registry *registration.Registry
	eventBus shared.EventBus
	logger   *slog.Logger
}

// NewAddCourseHandler creates the handler.
func NewAddCourseHandler(registry *registration.Registry, eventBus shared.EventBus, logger *slog.Logger) *AddCourseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AddCourseHandler{
		registry: registry,
		eventBus: eventBus,
		logger:   logger,
	}
}

// Handle inserts the course and publishes CourseAddedEvent.
func (h *AddCourseHandler) Handle(ctx context.Context, cmd AddCourseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.registry.AddCourse(cmd.CourseCode, cmd.CourseName, cmd.Capacity, cmd.Prerequisites, cmd.Deadline); err != nil {
		h.logger.Warn("add course rejected",
			"course_code", cmd.CourseCode.String(),
			"error", err)
		return err
	}

	h.logger.Info("course added",
		"course_code", cmd.CourseCode.String(),
		"course_name", cmd.CourseName,
		"capacity", cmd.Capacity,
		"deadline", cmd.Deadline)

	event := registration.NewCourseAddedEvent(cmd.CourseCode, cmd.CourseName, cmd.Capacity, cmd.Prerequisites, cmd.Deadline)
	if err := h.eventBus.Publish(ctx, event); err != nil {
		h.logger.Error("publish course_added failed", "error", err)
	}

	return nil
}
