package raise

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hypr-raise/internal/match"
)

func TestDecide(t *testing.T) {
	w := func(id, class string, focused bool) match.Window {
		return match.Window{ID: id, Class: class, Focused: focused}
	}

	tests := []struct {
		name       string
		windows    []match.Window
		wantAction Action
		wantID     string
		wantIndex  int
	}{
		{
			name:       "no windows",
			windows:    nil,
			wantAction: Launch,
			wantIndex:  -1,
		},
		{
			name:       "no candidates",
			windows:    []match.Window{w("k", "kitty", true)},
			wantAction: Launch,
			wantIndex:  -1,
		},
		{
			name:       "single unfocused candidate",
			windows:    []match.Window{w("k", "kitty", true), w("a", "app", false)},
			wantAction: FocusSingle,
			wantID:     "a",
		},
		{
			name:       "single focused candidate refocuses itself",
			windows:    []match.Window{w("a", "app", true), w("k", "kitty", false)},
			wantAction: FocusCycle,
			wantID:     "a",
		},
		{
			name: "cycle to next",
			windows: []match.Window{
				w("a0", "app", false), w("k", "kitty", false), w("a1", "app", true), w("a2", "app", false),
			},
			wantAction: FocusCycle,
			wantID:     "a2",
			wantIndex:  2,
		},
		{
			name: "cycle wraps to first",
			windows: []match.Window{
				w("a0", "app", false), w("a1", "app", false), w("a2", "app", true),
			},
			wantAction: FocusCycle,
			wantID:     "a0",
		},
		{
			name: "focus first when none focused",
			windows: []match.Window{
				w("k", "kitty", true), w("a0", "app", false), w("a1", "app", false),
			},
			wantAction: FocusFirst,
			wantID:     "a0",
		},
	}

	set := match.Set{{Field: match.Class, Method: match.Equals, Pattern: "app"}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decide(tt.windows, set)
			assert.Equal(t, tt.wantAction, d.Action)
			assert.Equal(t, tt.wantID, d.Target.ID)
			assert.Equal(t, tt.wantIndex, d.Index)
		})
	}
}

func TestDecide_CycleThroughThree(t *testing.T) {
	set := match.Set{{Field: match.Class, Method: match.Equals, Pattern: "app"}}
	windows := func(focused int) []match.Window {
		ws := []match.Window{
			{ID: "W0", Class: "app"},
			{ID: "W1", Class: "app"},
			{ID: "W2", Class: "app"},
		}
		ws[focused].Focused = true
		return ws
	}

	assert.Equal(t, "W2", Decide(windows(1), set).Target.ID)
	assert.Equal(t, "W0", Decide(windows(2), set).Target.ID)
	assert.Equal(t, "W1", Decide(windows(0), set).Target.ID)
}

func TestDecide_CandidateCount(t *testing.T) {
	set := match.Set{{Field: match.Title, Method: match.Contains, Pattern: "vim"}}
	windows := []match.Window{
		{ID: "1", Title: "nvim"},
		{ID: "2", Title: "emacs"},
		{ID: "3", Title: "vim - notes"},
	}

	d := Decide(windows, set)
	assert.Equal(t, FocusFirst, d.Action)
	assert.Equal(t, 2, d.Candidates)
	assert.Equal(t, "1", d.Target.ID)
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "launch", Launch.String())
	assert.Equal(t, "focus-cycle", FocusCycle.String())
	assert.Equal(t, "unknown", Action(42).String())
}
