// Copyright (c) 2023-2025 The webcash developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package termui implements the ui.UI contract on a line-oriented
// terminal: terms of service are printed to the output stream and
// acceptance is read as a yes/no answer on the input stream.
package termui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/webcashsuite/wcwallet/wcerr"
)

// defaultWidth is used for the separator rule when the output is not a
// terminal whose width can be queried.
const defaultWidth = 80

// TermUI prompts for terms-of-service acceptance on a terminal.  The
// zero value is not usable; obtain instances from New.
type TermUI struct {
	in      *bufio.Reader
	out     io.Writer
	width   int
	started bool
}

// New returns a terminal UI reading from in and writing to out.  Nil
// streams default to standard input and output.
func New(in io.Reader, out io.Writer) *TermUI {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return &TermUI{in: bufio.NewReader(in), out: out}
}

// Startup queries the terminal geometry when the output is one.
func (u *TermUI) Startup() error {
	u.width = defaultWidth
	if f, ok := u.out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			u.width = w
		}
	}
	u.started = true
	return nil
}

// ShowTerms prints the terms text bracketed by separator rules and
// reads a yes/no answer.  End of input counts as a rejection: the
// prompt was presented, the user walked away.
func (u *TermUI) ShowTerms(text string) (bool, error) {
	if !u.started {
		return false, wcerr.New(wcerr.ErrHeadless,
			"terminal ui has not been started", nil)
	}

	rule := strings.Repeat("-", u.width)
	if _, err := fmt.Fprintf(u.out, "%s\n%s\n%s\n", rule, text, rule); err != nil {
		return false, err
	}

	for {
		if _, err := fmt.Fprint(u.out, "Accept these terms of service? (yes/no): "); err != nil {
			return false, err
		}
		line, err := u.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(line))
		switch answer {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if err != nil {
			if err == io.EOF {
				return false, nil
			}
			return false, err
		}
		fmt.Fprintln(u.out, "Please answer yes or no.")
	}
}

// Shutdown releases the terminal.
func (u *TermUI) Shutdown() error {
	u.started = false
	return nil
}
