package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alem-hub/progress-tracker/internal/domain/shared"
	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// ADD POINTS COMMAND
// Adds one submission's points to an existing student. Points are only ever
// added; the command never creates a student.
// ══════════════════════════════════════════════════════════════════════════════

// AddPointsCommand contains a parsed points line.
type AddPointsCommand struct {
	Entry student.PointsEntry
}

// AddPointsResult contains the student after the update.
type AddPointsResult struct {
	Student *student.Student
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// AddPointsHandler handles the AddPointsCommand.
type AddPointsHandler struct {
	studentRepo student.Repository
	logger      *slog.Logger
}

// NewAddPointsHandler creates a new AddPointsHandler.
func NewAddPointsHandler(studentRepo student.Repository, logger *slog.Logger) *AddPointsHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AddPointsHandler{
		studentRepo: studentRepo,
		logger:      logger.With("handler", "add_points"),
	}
}

// Handle adds the deltas and counts one submission per non-zero delta.
// A key that is not an integer matches no student. A sum above
// student.MaxPoints is rejected with student.ErrPointsOverflow.
func (h *AddPointsHandler) Handle(ctx context.Context, cmd AddPointsCommand) (*AddPointsResult, error) {
	key := cmd.Entry.Key
	if !key.Numeric {
		return nil, student.ErrStudentNotFound
	}

	s, err := h.studentRepo.GetByID(ctx, key.ID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, student.ErrStudentNotFound
		}
		return nil, fmt.Errorf("add_points: get student: %w", err)
	}

	if err := s.AddPoints(cmd.Entry.Delta); err != nil {
		return nil, err
	}

	if err := h.studentRepo.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("add_points: update student: %w", err)
	}

	h.logger.Debug("points updated", "student_id", s.ID, "delta", cmd.Entry.Delta)
	return &AddPointsResult{Student: s}, nil
}
