package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

func TestMostLeast(t *testing.T) {
	tests := []struct {
		name   string
		metric Metric
		want   Superlative
	}{
		{"all zero", Metric{0, 0, 0, 0}, Superlative{}},
		{"tied max, unique min", Metric{5, 5, 3, 1}, Superlative{Most: "Python, DSA", Least: "Flask"}},
		{"tied min suppressed", Metric{5, 3, 3, 5}, Superlative{Most: "Python, Flask"}},
		{"all equal", Metric{2, 2, 2, 2}, Superlative{Most: "Python, DSA, Databases, Flask"}},
		{"single max, zero min", Metric{0, 0, 7, 0}, Superlative{Most: "Databases"}},
		{"two distinct values", Metric{1, 4, 4, 4}, Superlative{Most: "DSA, Databases, Flask", Least: "Python"}},
		{"fractions", Metric{7.5, 7.25, 2.5, 8}, Superlative{Most: "Flask", Least: "Databases"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MostLeast(tt.metric))
		})
	}
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil)

	assert.Equal(t, Superlative{}, s.Popularity)
	assert.Equal(t, Superlative{}, s.Activeness)
	assert.Equal(t, Superlative{}, s.Difficulty)
	assert.Equal(t, []string{
		"Most popular: n/a",
		"Least popular: n/a",
		"Highest activity: n/a",
		"Lowest activity: n/a",
		"Easiest course: n/a",
		"Hardest course: n/a",
	}, s.Lines("n/a"))
}

func TestCompute(t *testing.T) {
	a := &student.Student{ID: 1}
	a.AddPoints(student.Vector{10, 4, 0, 0})
	a.AddPoints(student.Vector{2, 0, 0, 0})

	b := &student.Student{ID: 2}
	b.AddPoints(student.Vector{8, 6, 3, 0})

	s := Compute([]*student.Student{a, b})

	assert.Equal(t, Metric{2, 2, 1, 0}, s.Enrolled)
	assert.Equal(t, Metric{3, 2, 1, 0}, s.Activity)
	assert.Equal(t, Metric{20.0 / 3, 5, 3, 0}, s.AvgGrade)

	assert.Equal(t, Superlative{Most: "Python, DSA", Least: "Flask"}, s.Popularity)
	assert.Equal(t, Superlative{Most: "Python", Least: "Flask"}, s.Activeness)
	assert.Equal(t, Superlative{Most: "Python", Least: "Flask"}, s.Difficulty)
}

func TestCompute_ZeroActivityCourseCanBeHardest(t *testing.T) {
	a := &student.Student{ID: 1}
	a.AddPoints(student.Vector{5, 5, 5, 0})

	s := Compute([]*student.Student{a})

	assert.Equal(t, "Flask", s.Difficulty.Least)
}
