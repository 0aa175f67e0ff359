package cli

import (
	"context"
	"errors"

	"github.com/alem-hub/progress-tracker/internal/application/command"
	"github.com/alem-hub/progress-tracker/internal/application/query"
	"github.com/alem-hub/progress-tracker/internal/domain/course"
	"github.com/alem-hub/progress-tracker/internal/domain/shared"
	"github.com/alem-hub/progress-tracker/internal/domain/student"
)

// ══════════════════════════════════════════════════════════════════════════════
// SUB-SHELLS
// Each loop returns nil on "back" and errQuit when input ends.
// ══════════════════════════════════════════════════════════════════════════════

// subshell prints the intro and feeds every non-"back" line to handle.
func (s *Session) subshell(ctx context.Context, intro string, handle func(line string)) error {
	s.println(intro)
	for {
		line, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		if isBack(line) {
			return nil
		}
		handle(line)
	}
}

func (s *Session) runAddStudents(ctx context.Context) error {
	added := 0

	err := s.subshell(ctx, msgAddStudentsHint, func(line string) {
		if s.addStudentLine(ctx, line) {
			added++
		}
	})
	if err != nil {
		return err
	}

	s.println(formatStudentsAdded(added))
	return nil
}

// addStudentLine reports whether a student was added.
func (s *Session) addStudentLine(ctx context.Context, line string) bool {
	creds, err := student.ParseCredentials(line)
	if err != nil {
		s.stats.CommandFailed(CommandAddStudents.String(), "validation")
		s.println(msgBadCredentials)
		return false
	}

	_, err = s.addStudent.Handle(ctx, command.AddStudentCommand{Credentials: creds})

	var fieldErr *shared.InvalidFieldError
	switch {
	case err == nil:
		s.stats.StudentAdded()
		s.println(msgStudentAdded)
		return true
	case errors.As(err, &fieldErr):
		s.stats.CommandFailed(CommandAddStudents.String(), "validation")
		s.println(formatIncorrectField(fieldErr.Field))
	case errors.Is(err, student.ErrEmailTaken):
		s.stats.CommandFailed(CommandAddStudents.String(), "conflict")
		s.println(msgEmailTaken)
	default:
		s.reportError(CommandAddStudents, err)
	}
	return false
}

func (s *Session) runAddPoints(ctx context.Context) error {
	return s.subshell(ctx, msgAddPointsHint, func(line string) {
		entry, err := student.ParsePoints(line)
		if err != nil {
			s.stats.CommandFailed(CommandAddPoints.String(), "validation")
			s.println(msgBadPoints)
			return
		}

		_, err = s.addPoints.Handle(ctx, command.AddPointsCommand{Entry: entry})
		switch {
		case err == nil:
			s.stats.PointsUpdated()
			s.println(msgPointsUpdated)
		case errors.Is(err, student.ErrStudentNotFound):
			s.stats.CommandFailed(CommandAddPoints.String(), "not_found")
			s.println(formatStudentNotFound(entry.Key.Raw))
		case errors.Is(err, student.ErrPointsOverflow):
			s.stats.CommandFailed(CommandAddPoints.String(), "validation")
			s.println(msgBadPoints)
		default:
			s.reportError(CommandAddPoints, err)
		}
	})
}

func (s *Session) runFind(ctx context.Context) error {
	return s.subshell(ctx, msgFindHint, func(line string) {
		key := student.ParseKey(line)

		st, err := s.findStudent.Handle(ctx, query.FindStudentQuery{Key: key})
		switch {
		case err == nil:
			s.println(formatStudentPoints(st))
		case errors.Is(err, student.ErrStudentNotFound):
			s.stats.CommandFailed(CommandFind.String(), "not_found")
			s.println(formatStudentNotFound(key.Raw))
		default:
			s.reportError(CommandFind, err)
		}
	})
}

func (s *Session) runStatistics(ctx context.Context) error {
	summary, err := s.getStatistics.Handle(ctx)
	if err != nil {
		s.reportError(CommandStatistics, err)
		return nil
	}

	s.println(msgStatisticsHint)
	for _, line := range summary.Lines(notApplicable) {
		s.println(line)
	}

	for {
		line, err := s.readLine(ctx)
		if err != nil {
			return err
		}
		if isBack(line) {
			return nil
		}

		ranking, err := s.getRanking.Handle(ctx, query.GetLeaderboardQuery{CourseName: line})
		switch {
		case err == nil:
			s.println(ranking.Render())
		case errors.Is(err, course.ErrUnknownCourse):
			s.stats.CommandFailed(CommandStatistics.String(), "not_found")
			s.println(msgUnknownCourse)
		default:
			s.reportError(CommandStatistics, err)
		}
	}
}
