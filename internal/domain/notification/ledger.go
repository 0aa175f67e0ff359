package notification

import "context"

// Ledger хранит множество уже отправленных уведомлений.
// Реализации находятся в infrastructure/persistence.
type Ledger interface {
	// Contains проверяет, отправлялось ли уведомление с таким ключом.
	Contains(ctx context.Context, key Key) (bool, error)

	// Record отмечает ключ как отправленный. Повторная запись не является ошибкой.
	Record(ctx context.Context, key Key) error
}
