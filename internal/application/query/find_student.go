// Package query contains read operations following CQRS pattern.
// Queries never modify state - they only read and return data.
package query

import (
	"context"
	"fmt"

	"github.com/alem-hub/progress-tracker/internal/domain/shared"
	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// FIND STUDENT QUERY
// Находит студента по идентификатору в том виде, в каком его ввёл пользователь.
// ══════════════════════════════════════════════════════════════════════════════

// FindStudentQuery содержит ключ поиска.
type FindStudentQuery struct {
	Key student.Key
}

// FindStudentHandler обрабатывает запрос поиска студента.
type FindStudentHandler struct {
	studentRepo student.Repository
}

// NewFindStudentHandler создаёт новый обработчик.
func NewFindStudentHandler(studentRepo student.Repository) *FindStudentHandler {
	return &FindStudentHandler{studentRepo: studentRepo}
}

// Handle возвращает студента или ErrStudentNotFound.
// Нечисловой ключ никогда не находит студента.
func (h *FindStudentHandler) Handle(ctx context.Context, q FindStudentQuery) (*student.Student, error) {
	if !q.Key.Numeric {
		return nil, student.ErrStudentNotFound
	}

	s, err := h.studentRepo.GetByID(ctx, q.Key.ID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, student.ErrStudentNotFound
		}
		return nil, fmt.Errorf("find_student: %w", err)
	}
	return s, nil
}
