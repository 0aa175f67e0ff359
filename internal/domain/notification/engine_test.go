package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

type mapLedger map[Key]struct{}

func (m mapLedger) Contains(_ context.Context, key Key) (bool, error) {
	_, ok := m[key]
	return ok, nil
}

func (m mapLedger) Record(_ context.Context, key Key) error {
	m[key] = struct{}{}
	return nil
}

type failingLedger struct{}

func (failingLedger) Contains(context.Context, Key) (bool, error) {
	return false, errors.New("boom")
}

func (failingLedger) Record(context.Context, Key) error { return nil }

// flakyLedger fails the checkFailOn-th Contains call and the failOn-th
// Record call, and works otherwise.
type flakyLedger struct {
	mapLedger
	checks      int
	checkFailOn int
	records     int
	failOn      int
}

func (l *flakyLedger) Contains(ctx context.Context, key Key) (bool, error) {
	l.checks++
	if l.checks == l.checkFailOn {
		return false, errors.New("redis down")
	}
	return l.mapLedger.Contains(ctx, key)
}

func (l *flakyLedger) Record(ctx context.Context, key Key) error {
	l.records++
	if l.records == l.failOn {
		return errors.New("redis down")
	}
	return l.mapLedger.Record(ctx, key)
}

func newStudent(id student.ID, first, last, email string, points student.Vector) *student.Student {
	s := &student.Student{ID: id, FirstName: first, LastName: last, Email: email}
	s.AddPoints(points)
	return s
}

func TestEngine_Run(t *testing.T) {
	ctx := context.Background()
	students := []*student.Student{
		newStudent(1, "John", "Doe", "johnd@email.net", student.Vector{600, 400, 0, 0}),
		newStudent(2, "Jane", "Spark", "jspark@yahoo.com", student.Vector{0, 0, 480, 0}),
		newStudent(3, "Lazy", "Bones", "lazy@bones.io", student.Vector{599, 399, 479, 549}),
	}

	engine := NewEngine(mapLedger{})

	res, err := engine.Run(ctx, students)
	require.NoError(t, err)
	require.Len(t, res.Notifications, 3)
	assert.Equal(t, 2, res.StudentsNotified)

	assert.Equal(t, Key{"johnd@email.net", "John Doe", "Python"}, res.Notifications[0].Key)
	assert.Equal(t, Key{"johnd@email.net", "John Doe", "DSA"}, res.Notifications[1].Key)
	assert.Equal(t, Key{"jspark@yahoo.com", "Jane Spark", "Databases"}, res.Notifications[2].Key)
	assert.NotEqual(t, res.Notifications[0].ID, res.Notifications[1].ID)

	again, err := engine.Run(ctx, students)
	require.NoError(t, err)
	assert.Empty(t, again.Notifications)
	assert.Equal(t, 0, again.StudentsNotified)
}

func TestEngine_Run_NewCompletionOnly(t *testing.T) {
	ctx := context.Background()
	s := newStudent(1, "John", "Doe", "johnd@email.net", student.Vector{600, 0, 0, 0})
	engine := NewEngine(mapLedger{})

	_, err := engine.Run(ctx, []*student.Student{s})
	require.NoError(t, err)

	s.AddPoints(student.Vector{0, 0, 0, 550})
	res, err := engine.Run(ctx, []*student.Student{s})
	require.NoError(t, err)
	require.Len(t, res.Notifications, 1)
	assert.Equal(t, "Flask", res.Notifications[0].Key.Course)
	assert.Equal(t, 1, res.StudentsNotified)
}

func TestEngine_Run_LedgerError(t *testing.T) {
	s := newStudent(1, "John", "Doe", "johnd@email.net", student.Vector{600, 0, 0, 0})

	_, err := NewEngine(failingLedger{}).Run(context.Background(), []*student.Student{s})
	assert.Error(t, err)
}

func TestEngine_Run_CheckErrorRecordsNothing(t *testing.T) {
	s := newStudent(1, "John", "Doe", "johnd@email.net", student.Vector{600, 400, 0, 0})
	ledger := &flakyLedger{mapLedger: mapLedger{}, checkFailOn: 2}

	_, err := NewEngine(ledger).Run(context.Background(), []*student.Student{s})
	require.Error(t, err)
	assert.Empty(t, ledger.mapLedger)
}

func TestEngine_Run_RecordErrorReturnsDelivered(t *testing.T) {
	ctx := context.Background()
	students := []*student.Student{
		newStudent(1, "John", "Doe", "johnd@email.net", student.Vector{600, 400, 0, 0}),
	}
	ledger := &flakyLedger{mapLedger: mapLedger{}, failOn: 2}
	engine := NewEngine(ledger)

	res, err := engine.Run(ctx, students)
	require.Error(t, err)
	assert.ErrorContains(t, err, "redis down")
	require.NotNil(t, res)
	require.Len(t, res.Notifications, 1)
	assert.Equal(t, "Python", res.Notifications[0].Key.Course)
	assert.Equal(t, 1, res.StudentsNotified)

	again, err := engine.Run(ctx, students)
	require.NoError(t, err)
	require.Len(t, again.Notifications, 1)
	assert.Equal(t, "DSA", again.Notifications[0].Key.Course)
}

func TestNotification_Render(t *testing.T) {
	n := NewNotification(Key{Email: "johnd@email.net", FullName: "John Doe", Course: "Python"})

	assert.Equal(t,
		"To: johnd@email.net\nRe: Your Learning Progress\nHello, John Doe! You have accomplished our Python course!",
		n.Render())
	assert.NotEmpty(t, n.ID.String())
}
