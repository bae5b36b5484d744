package match

// Window is a read-only snapshot of one compositor window, taken once per
// invocation.
type Window struct {
	// ID is assigned by the compositor (a Hyprland address or an X11 window id)
	ID           string
	Class        string
	InitialClass string
	Title        string
	InitialTitle string
	Tag          string
	XdgTag       string
	Focused      bool
}

// Value returns the string the given field resolves to. Fields the compositor
// did not report are empty.
func (w Window) Value(f Field) string {
	switch f {
	case Class:
		return w.Class
	case InitialClass:
		return w.InitialClass
	case Title:
		return w.Title
	case InitialTitle:
		return w.InitialTitle
	case Tag:
		return w.Tag
	case XdgTag:
		return w.XdgTag
	}
	return ""
}
