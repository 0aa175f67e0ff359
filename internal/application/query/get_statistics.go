package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/progress-tracker/internal/domain/statistics"
	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET STATISTICS QUERY
// Считает популярность, активность и сложность курсов на момент запроса.
// ══════════════════════════════════════════════════════════════════════════════

// GetStatisticsHandler обрабатывает запрос сводной статистики.
type GetStatisticsHandler struct {
	studentRepo student.Repository
}

// NewGetStatisticsHandler создаёт новый обработчик.
func NewGetStatisticsHandler(studentRepo student.Repository) *GetStatisticsHandler {
	return &GetStatisticsHandler{studentRepo: studentRepo}
}

// Handle пересчитывает статистику по всем студентам.
func (h *GetStatisticsHandler) Handle(ctx context.Context) (statistics.Summary, error) {
	students, err := h.studentRepo.List(ctx)
	if err != nil {
		return statistics.Summary{}, fmt.Errorf("get_statistics: %w", err)
	}
	return statistics.Compute(students), nil
}
