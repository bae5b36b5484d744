package match

import "fmt"

// Method is the comparison a matcher applies to a field value.
type Method int

const (
	Equals Method = iota
	Contains
	Prefix
	Suffix
	Regex
)

var methodAliases = map[string]Method{
	"equals":      Equals,
	"eq":          Equals,
	"contains":    Contains,
	"substr":      Contains,
	"prefix":      Prefix,
	"starts-with": Prefix,
	"startswith":  Prefix,
	"suffix":      Suffix,
	"ends-with":   Suffix,
	"endswith":    Suffix,
	"regex":       Regex,
	"re":          Regex,
}

// ParseMethod resolves a method name or alias. An empty name means Equals.
func ParseMethod(name string) (Method, error) {
	if name == "" {
		return Equals, nil
	}
	m, ok := methodAliases[name]
	if !ok {
		return 0, &ArgumentError{Msg: fmt.Sprintf("unsupported match method %q", name)}
	}
	return m, nil
}

func (m Method) String() string {
	switch m {
	case Equals:
		return "equals"
	case Contains:
		return "contains"
	case Prefix:
		return "prefix"
	case Suffix:
		return "suffix"
	case Regex:
		return "regex"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}
