// Package cli implements the interactive text shell of the tracker.
//
// The top level reads a command per line; "add students", "add points",
// "find" and "statistics" open sub-shells that treat every line as data
// until "back".
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/alem-hub/progress-tracker/internal/application/command"
	"github.com/alem-hub/progress-tracker/internal/application/query"
	"github.com/alem-hub/progress-tracker/internal/domain/notification"
	"github.com/alem-hub/progress-tracker/internal/domain/student"
	"github.com/alem-hub/progress-tracker/internal/infrastructure/metrics"
)

// errQuit stops the session without the farewell, as on end of input.
var errQuit = errors.New("cli: input closed")

// Dependencies holds everything a session needs.
type Dependencies struct {
	Students student.Repository
	Ledger   notification.Ledger

	// Metrics may be nil.
	Metrics *metrics.Metrics

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Session is one run of the interactive shell. It owns the handlers and
// passes them to each sub-shell.
type Session struct {
	id     string
	in     InputReader
	out    io.Writer
	logger *slog.Logger
	stats  *metrics.Metrics

	addStudent    *command.AddStudentHandler
	addPoints     *command.AddPointsHandler
	notify        *command.NotifyHandler
	findStudent   *query.FindStudentHandler
	listStudents  *query.ListStudentsHandler
	getStatistics *query.GetStatisticsHandler
	getRanking    *query.GetLeaderboardHandler
}

// NewSession creates a session reading from in and writing the protocol to out.
func NewSession(deps Dependencies, in InputReader, out io.Writer) *Session {
	id := uuid.NewString()

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("session_id", id)

	return &Session{
		id:     id,
		in:     in,
		out:    out,
		logger: logger,
		stats:  deps.Metrics,

		addStudent:    command.NewAddStudentHandler(deps.Students, logger),
		addPoints:     command.NewAddPointsHandler(deps.Students, logger),
		notify:        command.NewNotifyHandler(deps.Students, deps.Ledger, logger),
		findStudent:   query.NewFindStudentHandler(deps.Students),
		listStudents:  query.NewListStudentsHandler(deps.Students),
		getStatistics: query.NewGetStatisticsHandler(deps.Students),
		getRanking:    query.NewGetLeaderboardHandler(deps.Students),
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// Run prints the title and processes commands until "exit", end of input or
// ctx cancellation. Only read failures other than end of input are returned.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Debug("session started")
	s.println(msgTitle)

	for {
		line, err := s.readLine(ctx)
		if err != nil {
			return s.finish(err)
		}

		cmd := ParseCommand(line)
		if cmd != CommandEmpty && cmd != CommandUnknown {
			s.stats.CommandExecuted(cmd.String())
		}

		if err := s.dispatch(ctx, cmd); err != nil {
			return s.finish(err)
		}
		if cmd == CommandExit {
			s.logger.Debug("session finished")
			return nil
		}
	}
}

func (s *Session) dispatch(ctx context.Context, cmd Command) error {
	switch cmd {
	case CommandEmpty:
		s.println(msgNoInput)
	case CommandExit:
		s.println(msgBye)
	case CommandBack:
		s.println(msgExitHint)
	case CommandAddStudents:
		return s.runAddStudents(ctx)
	case CommandAddPoints:
		return s.runAddPoints(ctx)
	case CommandFind:
		return s.runFind(ctx)
	case CommandList:
		s.list(ctx)
	case CommandStatistics:
		return s.runStatistics(ctx)
	case CommandNotify:
		s.notifyAll(ctx)
	default:
		s.println(msgUnknownCommand)
	}
	return nil
}

// finish maps end of input and cancellation to a quiet exit.
func (s *Session) finish(err error) error {
	if errors.Is(err, errQuit) {
		s.logger.Debug("session finished", "reason", "input closed")
		return nil
	}
	return err
}

// readLine wraps the reader so that EOF and cancellation become errQuit.
func (s *Session) readLine(ctx context.Context) (string, error) {
	line, err := s.in.ReadLine(ctx)
	if err == nil {
		return line, nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "", errQuit
	}
	return "", fmt.Errorf("cli: read input: %w", err)
}

func (s *Session) println(line string) {
	fmt.Fprintln(s.out, line)
}

// reportError prints an infrastructure failure and keeps the shell running.
func (s *Session) reportError(cmd Command, err error) {
	s.logger.Error("command failed", "command", cmd.String(), "error", err)
	s.stats.CommandFailed(cmd.String(), "internal")
	s.println(formatInternalError(err))
}

// ══════════════════════════════════════════════════════════════════════════════
// ONE-SHOT COMMANDS
// ══════════════════════════════════════════════════════════════════════════════

func (s *Session) list(ctx context.Context) {
	ids, err := s.listStudents.Handle(ctx)
	if err != nil {
		s.reportError(CommandList, err)
		return
	}

	if len(ids) == 0 {
		s.println(msgNoStudents)
		return
	}

	s.println(msgStudentsHeader)
	for _, id := range ids {
		s.println(id.String())
	}
}

func (s *Session) notifyAll(ctx context.Context) {
	res, err := s.notify.Handle(ctx, command.NotifyCommand{})
	if res != nil {
		for _, n := range res.Notifications {
			s.println(n.Render())
		}
		s.stats.NotificationsSent(len(res.Notifications))
	}
	if err != nil {
		s.reportError(CommandNotify, err)
		return
	}
	s.println(formatStudentsNotified(res.StudentsNotified))
}
