package match

import "fmt"

// Field names a window property a matcher can test.
type Field int

const (
	Class Field = iota
	InitialClass
	Title
	InitialTitle
	Tag
	XdgTag
)

var fieldAliases = map[string]Field{
	"class":         Class,
	"c":             Class,
	"initial-class": InitialClass,
	"initialClass":  InitialClass,
	"title":         Title,
	"initial-title": InitialTitle,
	"initialTitle":  InitialTitle,
	"tag":           Tag,
	"xdgtag":        XdgTag,
	"xdg-tag":       XdgTag,
	"xdgTag":        XdgTag,
}

// ParseField resolves a field name or alias. Lookup is case-sensitive.
func ParseField(name string) (Field, error) {
	f, ok := fieldAliases[name]
	if !ok {
		return 0, &ArgumentError{Msg: fmt.Sprintf("unsupported match field %q", name)}
	}
	return f, nil
}

func (f Field) String() string {
	switch f {
	case Class:
		return "class"
	case InitialClass:
		return "initialClass"
	case Title:
		return "title"
	case InitialTitle:
		return "initialTitle"
	case Tag:
		return "tag"
	case XdgTag:
		return "xdgTag"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}
