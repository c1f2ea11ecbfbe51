package ui

import (
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// UI prints progress and results for the CLI.
type UI struct {
	out     io.Writer
	errOut  io.Writer
	quiet   bool
	spinner *spinner.Spinner

	colorSuccess *color.Color
	colorError   *color.Color
}

// New creates a UI writing results to out and progress/errors to errOut.
func New(out, errOut io.Writer, quiet bool) *UI {
	return &UI{
		out:          out,
		errOut:       errOut,
		quiet:        quiet,
		colorSuccess: color.New(color.FgGreen),
		colorError:   color.New(color.FgRed),
	}
}

// Start shows a spinner with msg while a long write runs. Only on terminals.
func (u *UI) Start(msg string) {
	if u.quiet || !isTerminal(u.errOut) || u.spinner != nil {
		return
	}
	u.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(u.errOut))
	u.spinner.Suffix = " " + msg
	u.spinner.Start()
}

// Stop removes the spinner, if any.
func (u *UI) Stop() {
	if u.spinner == nil {
		return
	}
	u.spinner.Stop()
	u.spinner = nil
}

// Success prints msg on out.
func (u *UI) Success(msg string) {
	u.colorSuccess.Fprintln(u.out, msg)
}

// Error prints msg on errOut. Errors are shown even when quiet.
func (u *UI) Error(msg string) {
	u.colorError.Fprintf(u.errOut, "Error: %s\n", msg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
