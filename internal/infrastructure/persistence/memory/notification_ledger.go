package memory

import (
	"context"
	"sync"

	"github.com/alem-hub/progress-tracker/internal/domain/notification"
)

// NotificationLedger implements notification.Ledger as an in-process set.
type NotificationLedger struct {
	mu   sync.RWMutex
	sent map[notification.Key]struct{}
}

// NewNotificationLedger creates an empty ledger.
func NewNotificationLedger() *NotificationLedger {
	return &NotificationLedger{sent: make(map[notification.Key]struct{})}
}

// Contains reports whether the key was recorded.
func (l *NotificationLedger) Contains(_ context.Context, key notification.Key) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	_, ok := l.sent[key]
	return ok, nil
}

// Record adds the key to the set.
func (l *NotificationLedger) Record(_ context.Context, key notification.Key) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sent[key] = struct{}{}
	return nil
}

// Len returns the number of recorded notifications.
func (l *NotificationLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.sent)
}
