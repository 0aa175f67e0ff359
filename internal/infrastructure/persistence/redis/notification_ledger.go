package redis

import (
	"context"

	"github.com/alem-hub/progress-tracker/internal/domain/notification"
	"github.com/alem-hub/progress-tracker/internal/domain/shared"
)

// sentSetName is the set holding every notification key already delivered.
const sentSetName = "notifications:sent"

// NotificationLedger implements notification.Ledger on top of a Redis set.
type NotificationLedger struct {
	client *Client
	key    string
}

// NewNotificationLedger creates a ledger stored under the client's namespace.
func NewNotificationLedger(client *Client) *NotificationLedger {
	return &NotificationLedger{
		client: client,
		key:    client.Key(sentSetName),
	}
}

// Contains reports whether the notification was already sent.
func (l *NotificationLedger) Contains(ctx context.Context, key notification.Key) (bool, error) {
	ok, err := l.client.rdb.SIsMember(ctx, l.key, key.String()).Result()
	if err != nil {
		return false, unavailable("Contains", err)
	}
	return ok, nil
}

// Record marks the notification as sent. Recording twice is a no-op.
func (l *NotificationLedger) Record(ctx context.Context, key notification.Key) error {
	if err := l.client.rdb.SAdd(ctx, l.key, key.String()).Err(); err != nil {
		return unavailable("Record", err)
	}
	return nil
}

// Len returns the number of recorded notifications.
func (l *NotificationLedger) Len(ctx context.Context) (int64, error) {
	return l.client.rdb.SCard(ctx, l.key).Result()
}

// Reset forgets every recorded notification.
func (l *NotificationLedger) Reset(ctx context.Context) error {
	return l.client.rdb.Del(ctx, l.key).Err()
}

func unavailable(op string, err error) error {
	return shared.WrapError("notification", op, shared.ErrServiceUnavailable, "ledger is unavailable", err)
}
