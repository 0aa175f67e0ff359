// Package course описывает фиксированный каталог курсов трекера.
// Порядок курсов в каталоге задаёт смысл индексов во всех векторах
// очков и сдач (points/submissions) по всей системе.
package course

import (
	"strings"

	"github.com/alem-hub/progress-tracker/internal/domain/shared"
)

// Count - количество курсов в каталоге.
const Count = 4

// ErrUnknownCourse - курса с таким названием нет в каталоге.
var ErrUnknownCourse = shared.ErrUnknownCourse

// Course - курс и количество очков, необходимое для его завершения.
type Course struct {
	Name           string
	CompletePoints int
}

// catalog - упорядоченный список курсов. Не изменяется во время работы.
var catalog = [Count]Course{
	{Name: "Python", CompletePoints: 600},
	{Name: "DSA", CompletePoints: 400},
	{Name: "Databases", CompletePoints: 480},
	{Name: "Flask", CompletePoints: 550},
}

// All возвращает копию каталога в каноническом порядке.
func All() [Count]Course {
	return catalog
}

// At возвращает курс по индексу слота.
func At(index int) Course {
	return catalog[index]
}

// Names возвращает названия курсов в каноническом порядке.
func Names() []string {
	names := make([]string, Count)
	for i, c := range catalog {
		names[i] = c.Name
	}
	return names
}

// Lookup находит курс по названию без учёта регистра.
// Возвращает ErrUnknownCourse, если такого курса нет.
func Lookup(name string) (int, Course, error) {
	name = strings.TrimSpace(name)
	for i, c := range catalog {
		if strings.EqualFold(c.Name, name) {
			return i, c, nil
		}
	}
	return -1, Course{}, ErrUnknownCourse
}

// IsCompleted возвращает true, если очков достаточно для завершения курса.
func (c Course) IsCompleted(points int) bool {
	return points >= c.CompletePoints
}

// Completion возвращает долю выполнения курса (points / threshold).
func (c Course) Completion(points int) float64 {
	return float64(points) / float64(c.CompletePoints)
}
