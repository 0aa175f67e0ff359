// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alem-hub/progress-tracker/internal/domain/shared"
	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD STUDENT COMMAND
// Registers a student from parsed credentials. The ID is derived from the
// email, so a second student with the same email is rejected.
// ══════════════════════════════════════════════════════════════════════════════

// AddStudentCommand contains the parsed credentials line.
type AddStudentCommand struct {
	Credentials student.Credentials
}

// Validate returns the first invalid credential field as InvalidFieldError.
func (c AddStudentCommand) Validate() error {
	return c.Credentials.Validate()
}

// AddStudentResult contains the stored student.
type AddStudentResult struct {
	Student *student.Student
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// AddStudentHandler handles the AddStudentCommand.
type AddStudentHandler struct {
	studentRepo student.Repository
	logger      *slog.Logger
}

// NewAddStudentHandler creates a new AddStudentHandler.
func NewAddStudentHandler(studentRepo student.Repository, logger *slog.Logger) *AddStudentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AddStudentHandler{
		studentRepo: studentRepo,
		logger:      logger.With("handler", "add_student"),
	}
}

// Handle validates the credentials and inserts the student.
// Invalid credentials never reach the repository.
func (h *AddStudentHandler) Handle(ctx context.Context, cmd AddStudentCommand) (*AddStudentResult, error) {
	if err := cmd.Validate(); err != nil {
		h.logger.Debug("credentials rejected", "error", err)
		return nil, err
	}

	s, err := student.NewStudent(cmd.Credentials)
	if err != nil {
		return nil, err
	}

	exists, err := h.studentRepo.Exists(ctx, s.ID)
	if err != nil {
		return nil, fmt.Errorf("add_student: check existing: %w", err)
	}
	if exists {
		h.logger.Debug("email already taken", "student_id", s.ID)
		return nil, student.ErrEmailTaken
	}

	if err := h.studentRepo.Create(ctx, s); err != nil {
		if shared.IsAlreadyExists(err) {
			return nil, student.ErrEmailTaken
		}
		return nil, fmt.Errorf("add_student: create: %w", err)
	}

	h.logger.Debug("student added", "student_id", s.ID)
	return &AddStudentResult{Student: s}, nil
}
