package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/progress-tracker/internal/domain/course"
	"github.com/alem-hub/progress-tracker/internal/domain/leaderboard"
	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET LEADERBOARD QUERY
// Получает лидерборд курса по его названию (без учёта регистра).
// ══════════════════════════════════════════════════════════════════════════════

// GetLeaderboardQuery содержит название курса.
type GetLeaderboardQuery struct {
	CourseName string
}

// GetLeaderboardHandler обрабатывает запрос лидерборда.
type GetLeaderboardHandler struct {
	studentRepo student.Repository
}

// NewGetLeaderboardHandler создаёт новый обработчик.
func NewGetLeaderboardHandler(studentRepo student.Repository) *GetLeaderboardHandler {
	return &GetLeaderboardHandler{studentRepo: studentRepo}
}

// Handle возвращает ErrUnknownCourse для неизвестного названия,
// не обращаясь к хранилищу.
func (h *GetLeaderboardHandler) Handle(ctx context.Context, q GetLeaderboardQuery) (*leaderboard.Ranking, error) {
	idx, _, err := course.Lookup(q.CourseName)
	if err != nil {
		return nil, err
	}

	students, err := h.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("get_leaderboard: %w", err)
	}

	return leaderboard.Build(idx, students), nil
}
