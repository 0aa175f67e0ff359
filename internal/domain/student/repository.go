package student

import (
	"context"
)

// ══════════════════════════════════════════════════════════════════════════════
// REPOSITORY INTERFACES
// Эти интерфейсы определяют контракт для работы с хранилищем данных.
// Реализации находятся в infrastructure/persistence.
// ══════════════════════════════════════════════════════════════════════════════

// Repository определяет операции над хранилищем студентов.
// Порядок вставки - единственный значимый порядок записей.
type Repository interface {
	// Create добавляет нового студента.
	// Возвращает ErrEmailTaken, если студент с таким ID уже существует.
	Create(ctx context.Context, student *Student) error

	// GetByID возвращает студента по ID.
	// Возвращает ErrStudentNotFound, если студент не найден.
	GetByID(ctx context.Context, id ID) (*Student, error)

	// Update сохраняет очки и сдачи студента.
	// Возвращает ErrStudentNotFound, если студент не найден.
	Update(ctx context.Context, student *Student) error

	// Exists проверяет существование студента по ID.
	Exists(ctx context.Context, id ID) (bool, error)

	// List возвращает всех студентов в порядке добавления.
	List(ctx context.Context) ([]*Student, error)

	// Count возвращает общее количество студентов.
	Count(ctx context.Context) (int, error)
}
