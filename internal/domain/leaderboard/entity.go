// Package leaderboard содержит доменную модель лидерборда по курсу:
// список студентов, отсортированный по очкам, с долей выполнения курса.
package leaderboard

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alem-hub/progress-tracker/internal/domain/course"
	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// LEADERBOARD ENTRY
// ══════════════════════════════════════════════════════════════════════════════

// Entry представляет одну строку лидерборда.
type Entry struct {
	// StudentID - идентификатор студента.
	StudentID student.ID

	// Points - очки студента по курсу.
	Points int

	// Completion - доля выполнения курса (points / threshold).
	Completion float64
}

// CompletionPercent возвращает долю выполнения в процентах,
// округлённую до одного знака после запятой.
func (e Entry) CompletionPercent() string {
	return fmt.Sprintf("%.1f%%", e.Completion*100)
}

// ══════════════════════════════════════════════════════════════════════════════
// RANKING (Ranked List)
// ══════════════════════════════════════════════════════════════════════════════

// Ranking - отсортированный лидерборд одного курса.
type Ranking struct {
	Course  course.Course
	entries []Entry
}

// Build строит лидерборд курса по индексу слота: все студенты с
// ненулевыми очками, по убыванию очков, при равенстве - по возрастанию ID.
func Build(courseIndex int, students []*student.Student) *Ranking {
	c := course.At(courseIndex)
	r := &Ranking{Course: c, entries: make([]Entry, 0, len(students))}

	for _, s := range students {
		points := s.Points[courseIndex]
		if points <= 0 {
			continue
		}
		r.entries = append(r.entries, Entry{
			StudentID:  s.ID,
			Points:     points,
			Completion: c.Completion(points),
		})
	}

	r.sort()
	return r
}

func (r *Ranking) sort() {
	sort.SliceStable(r.entries, func(i, j int) bool {
		// По убыванию очков
		if r.entries[i].Points != r.entries[j].Points {
			return r.entries[i].Points > r.entries[j].Points
		}
		// При равных очках - по возрастанию ID
		return r.entries[i].StudentID < r.entries[j].StudentID
	})
}

// All возвращает копию всех записей.
func (r *Ranking) All() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Count возвращает количество записей.
func (r *Ranking) Count() int {
	return len(r.entries)
}

// Top возвращает топ-N записей.
func (r *Ranking) Top(n int) []Entry {
	if n > len(r.entries) {
		n = len(r.entries)
	}
	if n <= 0 {
		return []Entry{}
	}
	return r.All()[:n]
}

// Render форматирует лидерборд в виде таблицы: название курса,
// заголовок и по строке на студента.
func (r *Ranking) Render() string {
	var b strings.Builder
	b.WriteString(r.Course.Name)
	b.WriteString("\nid    points    completed")
	for _, e := range r.entries {
		fmt.Fprintf(&b, "\n%-5d %-9d %s", e.StudentID, e.Points, e.CompletionPercent())
	}
	return b.String()
}
