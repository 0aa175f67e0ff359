// Package notification содержит доменную модель уведомлений о завершении курсов.
// Каждая пара (студент, курс) уведомляется не более одного раза: отправленные
// уведомления хранятся в Ledger.
package notification

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// NotificationID - уникальный идентификатор уведомления (UUID).
type NotificationID string

// NewNotificationID генерирует новый идентификатор.
func NewNotificationID() NotificationID {
	return NotificationID(uuid.NewString())
}

// String возвращает строковое представление ID.
func (id NotificationID) String() string {
	return string(id)
}

// Key - кортеж (email, полное имя, курс), по которому дедуплицируются уведомления.
type Key struct {
	Email    string
	FullName string
	Course   string
}

// String возвращает ключ в виде одной строки для хранилищ вида "множество строк".
func (k Key) String() string {
	return k.Email + "\x1f" + k.FullName + "\x1f" + k.Course
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: NOTIFICATION
// ══════════════════════════════════════════════════════════════════════════════

// Notification - уведомление о завершении курса.
type Notification struct {
	ID        NotificationID
	Key       Key
	CreatedAt time.Time
}

// NewNotification создаёт уведомление для ключа.
func NewNotification(key Key) *Notification {
	return &Notification{
		ID:        NewNotificationID(),
		Key:       key,
		CreatedAt: time.Now().UTC(),
	}
}

// Render возвращает текст письма.
func (n *Notification) Render() string {
	return fmt.Sprintf(
		"To: %s\nRe: Your Learning Progress\nHello, %s! You have accomplished our %s course!",
		n.Key.Email, n.Key.FullName, n.Key.Course,
	)
}

// String возвращает строковое представление для логирования.
func (n *Notification) String() string {
	return fmt.Sprintf("Notification{ID: %s, To: %s, Course: %s}", n.ID, n.Key.Email, n.Key.Course)
}
