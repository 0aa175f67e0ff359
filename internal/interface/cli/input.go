package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// InputReader abstracts line-oriented input so sessions can be scripted in tests.
type InputReader interface {
	// ReadLine blocks until a line is available and returns it without the
	// line terminator. It returns io.EOF when input is exhausted and
	// ctx.Err() when ctx is done first.
	ReadLine(ctx context.Context) (string, error)
}

type lineResult struct {
	line string
	err  error
}

// LineReader implements InputReader over any io.Reader.
//
// Reads happen on a background goroutine so a blocked read does not keep
// ReadLine from observing context cancellation. Close stops that goroutine
// as soon as its pending read returns.
type LineReader struct {
	reader    *bufio.Reader
	start     sync.Once
	closeOnce sync.Once
	lines     chan lineResult
	done      chan struct{}
	exited    chan struct{}
}

// NewLineReader creates a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{
		reader: bufio.NewReader(r),
		lines:  make(chan lineResult),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
}

// send hands a result to ReadLine; false means the reader was closed.
func (r *LineReader) send(res lineResult) bool {
	select {
	case r.lines <- res:
		return true
	case <-r.done:
		return false
	}
}

func (r *LineReader) pump() {
	defer close(r.exited)

	for {
		line, err := r.reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")

		switch {
		case err == nil:
			if !r.send(lineResult{line: line}) {
				return
			}
		case errors.Is(err, io.EOF) && line != "":
			// Last line without a terminator still counts.
			r.send(lineResult{line: line})
			return
		case errors.Is(err, io.EOF):
			return
		default:
			r.send(lineResult{err: err})
			return
		}
	}
}

// ReadLine reads a single line.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	r.start.Do(func() { go r.pump() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-r.done:
		return "", io.EOF
	case <-r.exited:
		return "", io.EOF
	case res := <-r.lines:
		return res.line, res.err
	}
}

// Close releases the background reader. Later ReadLine calls return io.EOF.
// It does not close the underlying io.Reader.
func (r *LineReader) Close() error {
	r.closeOnce.Do(func() { close(r.done) })
	return nil
}
