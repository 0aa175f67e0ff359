package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/alem-hub/progress-tracker/internal/domain/notification"
	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// NOTIFY COMMAND
// Sends a one-time notice for every completed course not yet notified.
// ══════════════════════════════════════════════════════════════════════════════

// NotifyCommand has no parameters: every student is checked.
type NotifyCommand struct{}

// NotifyResult contains the new notices and the number of students notified.
type NotifyResult struct {
	Notifications    []*notification.Notification
	StudentsNotified int
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// NotifyHandler handles the NotifyCommand.
type NotifyHandler struct {
	studentRepo student.Repository
	engine      *notification.Engine
	logger      *slog.Logger
}

// NewNotifyHandler creates a new NotifyHandler.
func NewNotifyHandler(studentRepo student.Repository, ledger notification.Ledger, logger *slog.Logger) *NotifyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NotifyHandler{
		studentRepo: studentRepo,
		engine:      notification.NewEngine(ledger),
		logger:      logger.With("handler", "notify"),
	}
}

// Handle runs the notification engine over all students in insertion order.
// On a ledger write failure it returns the notices recorded so far together
// with the error.
func (h *NotifyHandler) Handle(ctx context.Context, _ NotifyCommand) (*NotifyResult, error) {
	students, err := h.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("notify: list students: %w", err)
	}

	res, err := h.engine.Run(ctx, students)
	if err != nil {
		if res == nil {
			return nil, err
		}
		// Recorded notices are returned with the error so they still get delivered.
		h.logger.Warn("notify interrupted", "delivered", len(res.Notifications), "error", err)
		return &NotifyResult{
			Notifications:    res.Notifications,
			StudentsNotified: res.StudentsNotified,
		}, err
	}

	for _, n := range res.Notifications {
		h.logger.Debug("notification produced",
			"notification_id", n.ID,
			"course", n.Key.Course,
		)
	}

	return &NotifyResult{
		Notifications:    res.Notifications,
		StudentsNotified: res.StudentsNotified,
	}, nil
}
