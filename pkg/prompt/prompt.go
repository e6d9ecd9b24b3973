// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package prompt asks the user yes/no questions.
package prompt

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// Prompter asks for confirmation before a destructive step.
type Prompter interface {
	// Confirm blocks until the user answers. Only an explicit yes returns
	// true.
	Confirm(ctx context.Context, message string) (bool, error)
}

// Default picks the interactive terminal prompter when stdin is a terminal
// and a line reader over stdin otherwise.
func Default() Prompter {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return NewTerminal()
	}
	return NewLine(os.Stdin, os.Stdout)
}

// Terminal reads a single keystroke through pterm.
type Terminal struct {
	printer pterm.InteractiveConfirmPrinter
}

// NewTerminal creates a Terminal prompter
func NewTerminal() *Terminal {
	return &Terminal{
		printer: *pterm.DefaultInteractiveConfirm.
			WithDefaultValue(false).
			WithConfirmText("y").
			WithRejectText("n"),
	}
}

// Confirm implements Prompter.Confirm
func (t *Terminal) Confirm(ctx context.Context, message string) (bool, error) {
	type answer struct {
		ok  bool
		err error
	}

	// the keystroke read cannot be interrupted, so it is abandoned on cancel
	ch := make(chan answer, 1)
	go func() {
		ok, err := t.printer.Show(message)
		ch <- answer{ok: ok, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, errors.Errorf("waiting for answer: %w", ctx.Err())
	case a := <-ch:
		if a.err != nil {
			return false, errors.Errorf("reading answer: %w", a.err)
		}
		return a.ok, nil
	}
}

// Line reads one line per question from r and echoes the question to w.
type Line struct {
	r *bufio.Reader
	w io.Writer
}

// NewLine creates a Line prompter
func NewLine(r io.Reader, w io.Writer) *Line {
	return &Line{r: bufio.NewReader(r), w: w}
}

// Confirm implements Prompter.Confirm. Anything but an answer starting with
// y or Y is a no, including end of input.
func (l *Line) Confirm(ctx context.Context, message string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, errors.Errorf("waiting for answer: %w", err)
	}

	if _, err := io.WriteString(l.w, message+" [y/n]: "); err != nil {
		return false, errors.Errorf("writing prompt: %w", err)
	}

	line, err := l.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, errors.Errorf("reading answer: %w", err)
	}

	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "y"), nil
}

// Scripted answers from a fixed list, then no. Used where no user is
// around, such as tests.
type Scripted struct {
	Answers []bool
	Asked   []string
}

// Confirm implements Prompter.Confirm
func (s *Scripted) Confirm(ctx context.Context, message string) (bool, error) {
	s.Asked = append(s.Asked, message)
	if len(s.Answers) == 0 {
		return false, nil
	}
	ok := s.Answers[0]
	s.Answers = s.Answers[1:]
	return ok, nil
}
