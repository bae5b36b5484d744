// Package match implements the window matcher language: parsing
// "field[:method]=pattern" expressions and evaluating them against window
// snapshots.
package match

import (
	"fmt"
	"strings"
)

// Matcher is a single field/method/pattern predicate over a Window.
type Matcher struct {
	Field   Field
	Method  Method
	Pattern string

	// set only for Regex
	re searcher
}

// New builds a matcher, compiling Regex patterns with the default engine.
func New(field Field, method Method, pattern string) (Matcher, error) {
	return Parser{}.New(field, method, pattern)
}

// Parse parses "field[:method]=pattern" with the default regex engine.
func Parse(raw string) (Matcher, error) {
	return Parser{}.Parse(raw)
}

// Parser turns raw matcher expressions into Matchers.
type Parser struct {
	Engine Engine
}

// Parse splits raw on the first '=' into selector and pattern, then the
// selector on the first ':' into field and optional method.
func (p Parser) Parse(raw string) (Matcher, error) {
	selector, pattern, ok := strings.Cut(raw, "=")
	if !ok {
		return Matcher{}, &ArgumentError{
			Msg: fmt.Sprintf("invalid matcher %q: expected field[:method]=pattern", raw),
		}
	}

	fieldName, methodName, _ := strings.Cut(selector, ":")

	field, err := ParseField(fieldName)
	if err != nil {
		return Matcher{}, err
	}
	method, err := ParseMethod(methodName)
	if err != nil {
		return Matcher{}, err
	}
	return p.New(field, method, pattern)
}

// New validates pattern and, for Regex, compiles it.
func (p Parser) New(field Field, method Method, pattern string) (Matcher, error) {
	if pattern == "" {
		return Matcher{}, &ArgumentError{Msg: fmt.Sprintf("empty pattern for field %s", field)}
	}

	m := Matcher{Field: field, Method: method, Pattern: pattern}
	if method == Regex {
		re, err := p.Engine.compile(pattern)
		if err != nil {
			return Matcher{}, err
		}
		m.re = re
	}
	return m, nil
}

// MatchValue applies the matcher's method to a field value.
func (m Matcher) MatchValue(value string) bool {
	switch m.Method {
	case Equals:
		return value == m.Pattern
	case Contains:
		return strings.Contains(value, m.Pattern)
	case Prefix:
		return strings.HasPrefix(value, m.Pattern)
	case Suffix:
		return strings.HasSuffix(value, m.Pattern)
	case Regex:
		return m.re != nil && m.re.MatchString(value)
	}
	return false
}

// Matches reports whether w satisfies the matcher.
func (m Matcher) Matches(w Window) bool {
	return m.MatchValue(w.Value(m.Field))
}

func (m Matcher) String() string {
	return fmt.Sprintf("%s:%s=%s", m.Field, m.Method, m.Pattern)
}

// Set is a conjunction of matchers.
type Set []Matcher

// Matches reports whether every matcher in the set matches w. An empty set
// matches every window.
func (s Set) Matches(w Window) bool {
	for _, m := range s {
		if !m.Matches(w) {
			return false
		}
	}
	return true
}

// Filter returns the windows that satisfy the set, in their original order.
func (s Set) Filter(windows []Window) []Window {
	var out []Window
	for _, w := range windows {
		if s.Matches(w) {
			out = append(out, w)
		}
	}
	return out
}
