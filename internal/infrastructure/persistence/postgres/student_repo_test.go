package postgres

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

func TestArrayConversion(t *testing.T) {
	v := student.Vector{1, 0, 42, student.MaxPoints}

	arr, err := toArray(v)
	require.NoError(t, err)
	back, err := fromArray(arr)
	require.NoError(t, err)
	assert.Equal(t, v, back)

	_, err = fromArray([]int32{1, 2, 3})
	assert.Error(t, err)

	_, err = toArray(student.Vector{0, student.MaxPoints + 1, 0, 0})
	assert.Error(t, err)
	_, err = toArray(student.Vector{0, 0, -1, 0})
	assert.Error(t, err)
}

func TestGetMigrations(t *testing.T) {
	migs := GetMigrations()
	require.NotEmpty(t, migs)
	for i, m := range migs {
		assert.Equal(t, i+1, m.Version)
		assert.NotEmpty(t, m.UpSQL)
		assert.NotEmpty(t, m.DownSQL)
	}
}

// newTestConnection connects to TRACKER_TEST_DATABASE_URL and starts from an empty table.
func newTestConnection(t *testing.T) *Connection {
	t.Helper()

	url := os.Getenv("TRACKER_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TRACKER_TEST_DATABASE_URL is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cfg := DefaultConfig()
	cfg.URL = url
	conn, err := NewConnection(ctx, cfg)
	require.NoError(t, err)
	t.Cleanup(conn.Close)

	require.NoError(t, NewMigrator(conn).Migrate(ctx))
	_, err = conn.Exec(ctx, `TRUNCATE tracker_students`)
	require.NoError(t, err)
	return conn
}

func TestStudentRepository_Integration(t *testing.T) {
	conn := newTestConnection(t)
	ctx := context.Background()
	repo := NewStudentRepository(conn)

	first := &student.Student{ID: 20, FirstName: "Jane", LastName: "Doe", Email: "jane@x.io", CreatedAt: time.Now().UTC()}
	second := &student.Student{ID: 10, FirstName: "John", LastName: "Doe", Email: "john@x.io", CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	assert.ErrorIs(t, repo.Create(ctx, first), student.ErrEmailTaken)

	long := &student.Student{
		ID:        30,
		FirstName: strings.Repeat("a", 150),
		LastName:  strings.Repeat("b", 250),
		Email:     strings.Repeat("c", 320) + "@x.io",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, long))

	require.NoError(t, first.AddPoints(student.Vector{3, 0, 5, 0}))
	require.NoError(t, repo.Update(ctx, first))

	got, err := repo.GetByID(ctx, 20)
	require.NoError(t, err)
	assert.Equal(t, student.Vector{3, 0, 5, 0}, got.Points)
	assert.Equal(t, student.Vector{1, 0, 1, 0}, got.Submissions)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, student.ID(20), list[0].ID)
	assert.Equal(t, student.ID(10), list[1].ID)
	assert.Equal(t, long.LastName, list[2].LastName)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, student.ErrStudentNotFound)
	assert.ErrorIs(t, repo.Update(ctx, &student.Student{ID: 99}), student.ErrStudentNotFound)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	status, err := NewMigrator(conn).Status(ctx)
	require.NoError(t, err)
	for _, m := range status {
		assert.True(t, m.IsApplied, m.Name)
	}
}
