package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

// ListStudentsHandler возвращает ID всех студентов в порядке добавления.
type ListStudentsHandler struct {
	studentRepo student.Repository
}

// NewListStudentsHandler создаёт новый обработчик.
func NewListStudentsHandler(studentRepo student.Repository) *ListStudentsHandler {
	return &ListStudentsHandler{studentRepo: studentRepo}
}

// Handle возвращает список ID; пустой список, если студентов нет.
func (h *ListStudentsHandler) Handle(ctx context.Context) ([]student.ID, error) {
	students, err := h.studentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list_students: %w", err)
	}

	ids := make([]student.ID, len(students))
	for i, s := range students {
		ids[i] = s.ID
	}
	return ids, nil
}
