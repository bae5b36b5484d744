// Package raise implements run-or-raise: focus a window matching a set of
// matchers, cycle through matches, or launch a command when nothing matches.
package raise

import (
	"context"
	"errors"

	"hypr-raise/internal/match"
	"hypr-raise/pkg/core"
)

// Raiser drives one run-or-raise decision against its collaborators.
type Raiser struct {
	windows  core.WindowLister
	focuser  core.Focuser
	launcher core.Launcher
	log      core.Logger
}

// New creates a Raiser. The compositor backend usually serves as both lister
// and focuser.
func New(windows core.WindowLister, focuser core.Focuser, launcher core.Launcher, log core.Logger) *Raiser {
	return &Raiser{
		windows:  windows,
		focuser:  focuser,
		launcher: launcher,
		log:      log,
	}
}

// Plan queries the window list once and decides what to do without acting.
func (r *Raiser) Plan(ctx context.Context, set match.Set) (Decision, error) {
	windows, err := r.windows.ListWindows(ctx)
	if err != nil {
		var qe *QueryError
		if errors.As(err, &qe) {
			return Decision{}, err
		}
		return Decision{}, &QueryError{Err: err}
	}
	r.log.Debug("Window list received", "count", len(windows), "matchers", len(set))

	d := Decide(windows, set)
	r.log.Debug("Selection decided",
		"action", d.Action.String(),
		"candidates", d.Candidates,
		"target", d.Target.ID,
		"index", d.Index)
	return d, nil
}

// Apply carries out a decision: exactly one focus call or one launch call.
func (r *Raiser) Apply(ctx context.Context, d Decision, launch string) error {
	if d.Action == Launch {
		r.log.Info("No matching window, launching", "command", launch)
		if err := r.launcher.Launch(ctx, launch); err != nil {
			var se *SpawnError
			if errors.As(err, &se) {
				return err
			}
			return &SpawnError{Command: launch, Err: err}
		}
		return nil
	}

	r.log.Info("Focusing window",
		"action", d.Action.String(),
		"id", d.Target.ID,
		"class", d.Target.Class,
		"title", d.Target.Title)
	if err := r.focuser.FocusWindow(ctx, d.Target.ID); err != nil {
		var fe *FocusError
		if errors.As(err, &fe) {
			return err
		}
		return &FocusError{ID: d.Target.ID, Err: err}
	}
	return nil
}

// Run validates the launch command, then plans and applies a decision.
func (r *Raiser) Run(ctx context.Context, set match.Set, launch string) (Decision, error) {
	if launch == "" {
		return Decision{}, &ArgumentError{Msg: "a launch command is required"}
	}

	d, err := r.Plan(ctx, set)
	if err != nil {
		r.log.Error("Failed to query windows", err)
		return Decision{}, err
	}

	if err := r.Apply(ctx, d, launch); err != nil {
		r.log.Error("Failed to apply decision", err, "action", d.Action.String())
		return d, err
	}
	return d, nil
}
