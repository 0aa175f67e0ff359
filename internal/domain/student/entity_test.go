package student

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestDeriveID(t *testing.T) {
	a := DeriveID("jane@example.com")
	assert.Equal(t, a, DeriveID("jane@example.com"))
	assert.NotEqual(t, a, DeriveID("john@example.com"))

	for _, email := range []string{"a@b.c", "x@y.zz", "long.address_with-chars@sub.domain.org"} {
		id := DeriveID(email)
		assert.GreaterOrEqual(t, int(id), 0)
		assert.Less(t, int(id), MaxID)
	}
}

func TestNewStudent(t *testing.T) {
	s, err := NewStudent(Credentials{
		FirstName: strPtr("Jane"),
		LastName:  strPtr("Doe"),
		Email:     strPtr("jane@example.com"),
	})
	require.NoError(t, err)

	assert.Equal(t, DeriveID("jane@example.com"), s.ID)
	assert.Equal(t, "Jane Doe", s.FullName())
	assert.True(t, s.Points.IsZero())
	assert.True(t, s.Submissions.IsZero())

	_, err = NewStudent(Credentials{FirstName: strPtr("Jane"), Email: strPtr("jane@example.com")})
	assert.Error(t, err)
}

func TestStudent_AddPoints(t *testing.T) {
	s := &Student{ID: 1}

	require.NoError(t, s.AddPoints(Vector{3, 0, 5, 0}))
	require.NoError(t, s.AddPoints(Vector{1, 0, 0, 2}))

	assert.Equal(t, Vector{4, 0, 5, 2}, s.Points)
	assert.Equal(t, Vector{2, 0, 1, 1}, s.Submissions)
	assert.True(t, s.IsEnrolled(0))
	assert.False(t, s.IsEnrolled(1))
}

func TestStudent_AddZeroPoints(t *testing.T) {
	s := &Student{ID: 1}
	require.NoError(t, s.AddPoints(Vector{}))

	assert.True(t, s.Points.IsZero())
	assert.True(t, s.Submissions.IsZero())
}

func TestStudent_Clone(t *testing.T) {
	s := &Student{ID: 7, Points: Vector{1, 2, 3, 4}}
	c := s.Clone()
	c.Points[0] = 100

	assert.Equal(t, 1, s.Points[0])
	assert.Nil(t, (*Student)(nil).Clone())
}

func TestStudent_AddPointsOverflow(t *testing.T) {
	s := &Student{ID: 1}
	require.NoError(t, s.AddPoints(Vector{MaxPoints, 0, 7, 0}))

	err := s.AddPoints(Vector{1, 0, 1, 0})
	assert.ErrorIs(t, err, ErrPointsOverflow)
	assert.Equal(t, Vector{MaxPoints, 0, 7, 0}, s.Points, "rejected delta leaves the student untouched")
	assert.Equal(t, Vector{1, 0, 1, 0}, s.Submissions)

	require.NoError(t, s.AddPoints(Vector{0, 0, 3, 0}))
	assert.Equal(t, Vector{MaxPoints, 0, 10, 0}, s.Points)
}
