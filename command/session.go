package command

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/32bitkid/gedit/screen"
)

const Prompt = "Please enter a command:"

// Session is a read-eval-print loop over a line-oriented input. Unless
// another Confirmer is configured, re-create confirmations are read from
// the same input.
type Session struct {
	*Dispatcher

	in  *bufio.Scanner
	out io.Writer
}

func NewSession(in io.Reader, out io.Writer, editor screen.Editor, options ...Options) *Session {
	s := &Session{
		in:  bufio.NewScanner(in),
		out: out,
	}
	s.Dispatcher = NewDispatcher(editor, out, append([]Options{{Confirmer: s}}, options...)...)
	return s
}

// Run executes commands until the exit command or the end of input.
func (s *Session) Run() error {
	for {
		if _, err := io.WriteString(s.out, Prompt); err != nil {
			return err
		}

		line, ok, err := s.readLine()
		if err != nil || !ok {
			return err
		}

		if err := s.Execute(line); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return err
		}
	}
}

// Confirm writes prompt and reads the answer from the session input. Only
// Y or y confirm; running out of input declines.
func (s *Session) Confirm(prompt string) (bool, error) {
	if _, err := io.WriteString(s.out, prompt); err != nil {
		return false, err
	}
	line, _, err := s.readLine()
	if err != nil {
		return false, err
	}
	answer := strings.TrimSpace(line)
	return answer == "Y" || answer == "y", nil
}

func (s *Session) readLine() (string, bool, error) {
	if !s.in.Scan() {
		return "", false, s.in.Err()
	}
	return s.in.Text(), true, nil
}
