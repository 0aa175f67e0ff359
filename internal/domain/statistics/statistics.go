// Package statistics считает агрегаты по курсам: популярность, активность
// и сложность, а также превосходные степени "самый/наименее" для каждой метрики.
package statistics

import (
	"strings"

	"github.com/alem-hub/progress-tracker/internal/domain/course"
	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

// Metric - вектор значений метрики, по одному на слот курса.
type Metric [course.Count]float64

// IsZero возвращает true, если все слоты равны нулю.
func (m Metric) IsZero() bool {
	return m == Metric{}
}

// Superlative - пара меток "самый" и "наименее" для одной метрики.
// Пустая строка означает отсутствие результата.
type Superlative struct {
	Most  string
	Least string
}

// MostLeast вычисляет превосходные степени метрики.
//
//   - все слоты нулевые: обе метки пустые;
//   - Most: названия всех курсов с максимумом через ", " в порядке каталога;
//   - Least: единственный курс с минимумом среди курсов, не попавших в Most;
//     если таких курсов несколько или ни одного, метка пустая.
func MostLeast(m Metric) Superlative {
	if m.IsZero() {
		return Superlative{}
	}

	maxValue, minValue := m[0], m[0]
	for _, v := range m[1:] {
		maxValue = max(maxValue, v)
		minValue = min(minValue, v)
	}

	var most, least []string
	for i, v := range m {
		switch v {
		case maxValue:
			most = append(most, course.At(i).Name)
		case minValue:
			least = append(least, course.At(i).Name)
		}
	}

	result := Superlative{Most: strings.Join(most, ", ")}
	if len(least) == 1 {
		result.Least = least[0]
	}
	return result
}

// Summary - агрегаты по всем студентам и их превосходные степени.
type Summary struct {
	Enrolled   Metric
	Activity   Metric
	AvgGrade   Metric
	Popularity Superlative
	Activeness Superlative
	Difficulty Superlative
}

// Compute считает агрегаты по списку студентов.
//
// Средняя оценка курса без активности равна 0, поэтому такой курс
// может оказаться "самым сложным".
func Compute(students []*student.Student) Summary {
	var s Summary
	var totals Metric

	for _, st := range students {
		for i := range course.Count {
			if st.Submissions[i] > 0 {
				s.Enrolled[i]++
			}
			s.Activity[i] += float64(st.Submissions[i])
			totals[i] += float64(st.Points[i])
		}
	}

	for i := range course.Count {
		if s.Activity[i] != 0 {
			s.AvgGrade[i] = totals[i] / s.Activity[i]
		}
	}

	s.Popularity = MostLeast(s.Enrolled)
	s.Activeness = MostLeast(s.Activity)
	s.Difficulty = MostLeast(s.AvgGrade)
	return s
}

// Lines возвращает шесть строк сводки в порядке вывода; отсутствующие
// значения заменяются на placeholder.
func (s Summary) Lines(placeholder string) []string {
	or := func(v string) string {
		if v == "" {
			return placeholder
		}
		return v
	}

	return []string{
		"Most popular: " + or(s.Popularity.Most),
		"Least popular: " + or(s.Popularity.Least),
		"Highest activity: " + or(s.Activeness.Most),
		"Lowest activity: " + or(s.Activeness.Least),
		"Easiest course: " + or(s.Difficulty.Most),
		"Hardest course: " + or(s.Difficulty.Least),
	}
}
