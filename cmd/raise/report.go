package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"hypr-raise/internal/raise"
)

const (
	exitFailure = 1
	exitUsage   = 2
)

// exitCode maps errors to the process exit status: 2 for bad input, 1 for
// compositor and launch failures.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var argErr *raise.ArgumentError
	var patErr *raise.PatternError
	if errors.As(err, &argErr) || errors.As(err, &patErr) {
		return exitUsage
	}
	return exitFailure
}

func reportError(w io.Writer, err error) {
	prefix := color.New(color.Bold, color.FgHiRed)
	prefix.Fprint(w, "raise: ")
	fmt.Fprintln(w, err)
}

type decisionStyle struct {
	label  *color.Color
	action *color.Color
	id     *color.Color
}

func newDecisionStyle() decisionStyle {
	return decisionStyle{
		label:  color.New(color.Bold),
		action: color.New(color.Bold, color.FgHiBlue),
		id:     color.New(color.FgHiGreen),
	}
}

// printDecision writes the --dry-run report.
func printDecision(w io.Writer, d raise.Decision, launchCmd string) {
	s := newDecisionStyle()

	s.label.Fprint(w, "action:     ")
	s.action.Fprintln(w, d.Action.String())
	s.label.Fprint(w, "candidates: ")
	fmt.Fprintln(w, d.Candidates)

	if d.Action == raise.Launch {
		s.label.Fprint(w, "command:    ")
		fmt.Fprintln(w, launchCmd)
		return
	}

	s.label.Fprint(w, "target:     ")
	s.id.Fprint(w, d.Target.ID)
	fmt.Fprintf(w, " class=%q title=%q\n", d.Target.Class, d.Target.Title)
}
