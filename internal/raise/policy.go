package raise

import "hypr-raise/internal/match"

// Action is the terminal outcome of a selection pass.
type Action int

const (
	// Launch runs the launch command because no window matched.
	Launch Action = iota
	// FocusSingle focuses the only matching window, which was not focused.
	FocusSingle
	// FocusCycle advances from the focused matching window to the next one.
	FocusCycle
	// FocusFirst focuses the first match when none of the matches is focused.
	FocusFirst
)

func (a Action) String() string {
	switch a {
	case Launch:
		return "launch"
	case FocusSingle:
		return "focus-single"
	case FocusCycle:
		return "focus-cycle"
	case FocusFirst:
		return "focus-first"
	default:
		return "unknown"
	}
}

// Decision is what Decide chose for one window snapshot.
type Decision struct {
	Action Action
	// Target is the window to focus; zero for Launch.
	Target match.Window
	// Index is Target's position in the candidate list, -1 for Launch.
	Index int
	// Candidates is the number of windows that satisfied the set.
	Candidates int
}

// Decide filters windows through set, keeping compositor order, and picks
// the window to focus. When the focused window is a candidate the next
// candidate is chosen, wrapping after the last one.
func Decide(windows []match.Window, set match.Set) Decision {
	candidates := set.Filter(windows)
	n := len(candidates)

	if n == 0 {
		return Decision{Action: Launch, Index: -1}
	}

	if n == 1 && !candidates[0].Focused {
		return Decision{Action: FocusSingle, Target: candidates[0], Index: 0, Candidates: n}
	}

	for i, w := range candidates {
		if w.Focused {
			next := (i + 1) % n
			return Decision{Action: FocusCycle, Target: candidates[next], Index: next, Candidates: n}
		}
	}

	return Decision{Action: FocusFirst, Target: candidates[0], Index: 0, Candidates: n}
}
