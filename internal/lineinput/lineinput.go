// Package lineinput reads command lines from a terminal or a plain stream.
package lineinput

import (
	"bufio"
	"fmt"
	"io"
	"os"

	internalstrings "github.com/amonks/skid/internal/strings"
	"golang.org/x/term"
)

// Reader returns one line per call. It returns io.EOF when input ends or
// the user interrupts with Ctrl-C or Ctrl-D.
type Reader interface {
	ReadLine() (string, error)
}

// IsInteractive reports whether f is a terminal.
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Scanner reads newline-terminated lines from a stream without echo or prompt.
type Scanner struct {
	scanner *bufio.Scanner
}

// NewScanner returns a Scanner over r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next line without its line ending.
func (s *Scanner) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return internalstrings.TrimTrailingNewlines(s.scanner.Text()), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", io.EOF
}

// Terminal reads lines with editing and in-session history. The terminal is
// in raw mode only while a line is being read.
type Terminal struct {
	term *term.Terminal

	// enter switches to raw mode and returns the func that leaves it.
	enter func() (func() error, error)
}

// NewTerminal wraps rw without touching terminal modes.
func NewTerminal(rw io.ReadWriter, prompt string) *Terminal {
	return &Terminal{
		term: term.NewTerminal(rw, prompt),
		enter: func() (func() error, error) {
			return func() error { return nil }, nil
		},
	}
}

// OpenTerminal reads lines from the terminal in, echoing to out.
func OpenTerminal(in *os.File, out io.Writer, prompt string) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%s is not a terminal", in.Name())
	}

	t := NewTerminal(struct {
		io.Reader
		io.Writer
	}{in, out}, prompt)
	t.enter = func() (func() error, error) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return nil, fmt.Errorf("enable raw mode: %w", err)
		}
		if width, height, err := term.GetSize(fd); err == nil {
			_ = t.term.SetSize(width, height)
		}
		return func() error { return term.Restore(fd, state) }, nil
	}
	return t, nil
}

// ReadLine returns the next edited line.
func (t *Terminal) ReadLine() (string, error) {
	restore, err := t.enter()
	if err != nil {
		return "", err
	}
	line, err := t.term.ReadLine()
	if restoreErr := restore(); restoreErr != nil && err == nil {
		err = fmt.Errorf("restore terminal: %w", restoreErr)
	}
	return line, err
}
