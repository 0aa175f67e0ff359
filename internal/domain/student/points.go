package student

import (
	"strconv"
	"strings"

	"github.com/alem-hub/progress-tracker/internal/domain/course"
)

// Key - идентификатор студента в том виде, в каком его ввёл пользователь.
// Если токен является целым числом, Numeric = true и ID заполнен;
// иначе по ключу невозможно найти ни одного студента.
type Key struct {
	Raw     string
	ID      ID
	Numeric bool
}

// ParseKey разбирает токен идентификатора.
func ParseKey(token string) Key {
	token = strings.TrimSpace(token)
	key := Key{Raw: token}
	if n, err := strconv.Atoi(token); err == nil {
		key.ID = ID(n)
		key.Numeric = true
	}
	return key
}

// String возвращает исходный ввод пользователя.
func (k Key) String() string {
	return k.Raw
}

// PointsEntry - разобранная строка "<id> <p0> <p1> <p2> <p3>".
type PointsEntry struct {
	Key   Key
	Delta Vector
}

// ParsePoints разбирает строку с очками. Требуется ровно 5 токенов,
// все дельты - целые числа от 0 до MaxPoints; иначе ErrMalformedPoints.
func ParsePoints(line string) (PointsEntry, error) {
	tokens := strings.Fields(line)
	if len(tokens) != course.Count+1 {
		return PointsEntry{}, ErrMalformedPoints
	}

	var delta Vector
	for i, tok := range tokens[1:] {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 || n > MaxPoints {
			return PointsEntry{}, ErrMalformedPoints
		}
		delta[i] = n
	}

	return PointsEntry{Key: ParseKey(tokens[0]), Delta: delta}, nil
}
