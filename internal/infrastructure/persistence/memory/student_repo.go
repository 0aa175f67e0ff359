// Package memory implements in-process persistence for the tracker.
// It is the default backend: state lives for the lifetime of the process.
package memory

import (
	"context"
	"sync"

	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

// StudentRepository implements student.Repository with an insertion-ordered map.
// Stored records are cloned on the way in and out.
type StudentRepository struct {
	mu    sync.RWMutex
	byID  map[student.ID]*student.Student
	order []student.ID
}

// NewStudentRepository creates an empty StudentRepository.
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{
		byID:  make(map[student.ID]*student.Student),
		order: make([]student.ID, 0),
	}
}

// Create inserts a new student.
func (r *StudentRepository) Create(_ context.Context, s *student.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[s.ID]; exists {
		return student.ErrEmailTaken
	}

	r.byID[s.ID] = s.Clone()
	r.order = append(r.order, s.ID)
	return nil
}

// GetByID returns a student by ID.
func (r *StudentRepository) GetByID(_ context.Context, id student.ID) (*student.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, student.ErrStudentNotFound
	}
	return s.Clone(), nil
}

// Update replaces the stored student.
func (r *StudentRepository) Update(_ context.Context, s *student.Student) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[s.ID]; !ok {
		return student.ErrStudentNotFound
	}
	r.byID[s.ID] = s.Clone()
	return nil
}

// Exists checks whether a student with the ID exists.
func (r *StudentRepository) Exists(_ context.Context, id student.ID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok, nil
}

// List returns all students in insertion order.
func (r *StudentRepository) List(_ context.Context) ([]*student.Student, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*student.Student, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

// Count returns the number of students.
func (r *StudentRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order), nil
}
