package postgres

import (
	"context"
	"fmt"
	"math"

	"github.com/jackc/pgx/v5"

	"github.com/alem-hub/progress-tracker/internal/domain/course"
	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// STUDENT REPOSITORY IMPLEMENTATION
// ══════════════════════════════════════════════════════════════════════════════

const studentColumns = `id, first_name, last_name, email, points, submissions, created_at`

// StudentRepository implements student.Repository for PostgreSQL.
type StudentRepository struct {
	conn *Connection
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(conn *Connection) *StudentRepository {
	return &StudentRepository{conn: conn}
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *student.Student) error {
	ctx, cancel := r.conn.withTimeout(ctx)
	defer cancel()

	points, submissions, err := toArrays(s)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO tracker_students (id, first_name, last_name, email, points, submissions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = r.conn.Exec(ctx, query,
		int(s.ID),
		s.FirstName,
		s.LastName,
		s.Email,
		points,
		submissions,
		s.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return student.ErrEmailTaken
		}
		return fmt.Errorf("failed to create student: %w", err)
	}

	return nil
}

// GetByID returns a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id student.ID) (*student.Student, error) {
	ctx, cancel := r.conn.withTimeout(ctx)
	defer cancel()

	query := `SELECT ` + studentColumns + ` FROM tracker_students WHERE id = $1`

	s, err := scanStudent(r.conn.QueryRow(ctx, query, int(id)))
	if err != nil {
		if IsNoRows(err) {
			return nil, student.ErrStudentNotFound
		}
		return nil, fmt.Errorf("failed to get student %d: %w", id, err)
	}
	return s, nil
}

// Update stores the student's points and submissions.
func (r *StudentRepository) Update(ctx context.Context, s *student.Student) error {
	ctx, cancel := r.conn.withTimeout(ctx)
	defer cancel()

	points, submissions, err := toArrays(s)
	if err != nil {
		return err
	}

	query := `
		UPDATE tracker_students SET
			points = $1,
			submissions = $2,
			updated_at = NOW()
		WHERE id = $3
	`

	tag, err := r.conn.Exec(ctx, query, points, submissions, int(s.ID))
	if err != nil {
		return fmt.Errorf("failed to update student %d: %w", s.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return student.ErrStudentNotFound
	}
	return nil
}

// Exists checks whether a student with the ID exists.
func (r *StudentRepository) Exists(ctx context.Context, id student.ID) (bool, error) {
	ctx, cancel := r.conn.withTimeout(ctx)
	defer cancel()

	var exists bool
	err := r.conn.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM tracker_students WHERE id = $1)`, int(id)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check student %d: %w", id, err)
	}
	return exists, nil
}

// List returns all students in insertion order.
func (r *StudentRepository) List(ctx context.Context) ([]*student.Student, error) {
	ctx, cancel := r.conn.withTimeout(ctx)
	defer cancel()

	rows, err := r.conn.Query(ctx, `SELECT `+studentColumns+` FROM tracker_students ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	students := make([]*student.Student, 0)
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}

	return students, rows.Err()
}

// Count returns the number of students.
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	ctx, cancel := r.conn.withTimeout(ctx)
	defer cancel()

	var n int
	if err := r.conn.QueryRow(ctx, `SELECT COUNT(*) FROM tracker_students`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return n, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func scanStudent(row pgx.Row) (*student.Student, error) {
	var (
		s                   student.Student
		id                  int
		points, submissions []int32
	)

	err := row.Scan(&id, &s.FirstName, &s.LastName, &s.Email, &points, &submissions, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	s.ID = student.ID(id)
	if s.Points, err = fromArray(points); err != nil {
		return nil, err
	}
	if s.Submissions, err = fromArray(submissions); err != nil {
		return nil, err
	}
	return &s, nil
}

func toArrays(s *student.Student) (points, submissions []int32, err error) {
	if points, err = toArray(s.Points); err != nil {
		return nil, nil, fmt.Errorf("student %d points: %w", s.ID, err)
	}
	if submissions, err = toArray(s.Submissions); err != nil {
		return nil, nil, fmt.Errorf("student %d submissions: %w", s.ID, err)
	}
	return points, submissions, nil
}

// toArray refuses values that do not fit an INTEGER column.
func toArray(v student.Vector) ([]int32, error) {
	out := make([]int32, len(v))
	for i, n := range v {
		if n < 0 || n > math.MaxInt32 {
			return nil, fmt.Errorf("slot %d value %d out of INTEGER range", i, n)
		}
		out[i] = int32(n)
	}
	return out, nil
}

func fromArray(a []int32) (student.Vector, error) {
	var v student.Vector
	if len(a) != course.Count {
		return v, fmt.Errorf("expected %d course slots, got %d", course.Count, len(a))
	}
	for i, n := range a {
		v[i] = int(n)
	}
	return v, nil
}
