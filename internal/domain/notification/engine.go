package notification

import (
	"context"
	"fmt"

	"github.com/alem-hub/progress-tracker/internal/domain/course"
	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

// Result - итог одного запуска рассылки.
type Result struct {
	// Notifications - новые уведомления в порядке студентов и курсов.
	Notifications []*Notification

	// StudentsNotified - число разных студентов, получивших хотя бы одно
	// новое уведомление (а не число уведомлений).
	StudentsNotified int
}

// Engine находит завершённые курсы и формирует уведомления,
// пропуская уже отправленные.
type Engine struct {
	ledger Ledger
}

// NewEngine создаёт Engine поверх хранилища отправленных уведомлений.
func NewEngine(ledger Ledger) *Engine {
	return &Engine{ledger: ledger}
}

// Run проходит по студентам в порядке репозитория и по курсам в порядке
// каталога и собирает уведомления о завершённых курсах, ещё не отмеченных
// в Ledger. Ключи записываются в Ledger только после того, как проверка
// всех студентов прошла успешно.
//
// Если запись ключа не удалась, Run возвращает вместе с ошибкой частичный
// Result с уже записанными уведомлениями: их нужно доставить, иначе
// следующий запуск их пропустит.
func (e *Engine) Run(ctx context.Context, students []*student.Student) (*Result, error) {
	type pending struct {
		owner        int
		notification *Notification
	}

	var queue []pending
	for idx, s := range students {
		for i, c := range course.All() {
			if !c.IsCompleted(s.Points[i]) {
				continue
			}

			key := Key{Email: s.Email, FullName: s.FullName(), Course: c.Name}
			sent, err := e.ledger.Contains(ctx, key)
			if err != nil {
				return nil, fmt.Errorf("notification: check ledger: %w", err)
			}
			if !sent {
				queue = append(queue, pending{owner: idx, notification: NewNotification(key)})
			}
		}
	}

	result := &Result{Notifications: make([]*Notification, 0, len(queue))}
	lastOwner := -1
	for _, p := range queue {
		if err := e.ledger.Record(ctx, p.notification.Key); err != nil {
			return result, fmt.Errorf("notification: record ledger: %w", err)
		}

		result.Notifications = append(result.Notifications, p.notification)
		if p.owner != lastOwner {
			result.StudentsNotified++
			lastOwner = p.owner
		}
	}

	return result, nil
}
