package match

import (
	"fmt"
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

// Engine selects the regular expression implementation used for Regex
// matchers.
type Engine int

const (
	// EngineRE2 uses Go's regexp package (linear time, no backtracking).
	EngineRE2 Engine = iota
	// EnginePerl uses regexp2 and supports lookaround and backreferences.
	EnginePerl
)

// perlMatchTimeout bounds a single regexp2 evaluation against a window field.
const perlMatchTimeout = 2 * time.Second

// ParseEngine resolves a regex engine name from configuration.
func ParseEngine(name string) (Engine, error) {
	switch name {
	case "", "re2":
		return EngineRE2, nil
	case "perl", "pcre", "regexp2":
		return EnginePerl, nil
	}
	return 0, &ArgumentError{Msg: fmt.Sprintf("unsupported regex engine %q", name)}
}

func (e Engine) String() string {
	if e == EnginePerl {
		return "perl"
	}
	return "re2"
}

type searcher interface {
	MatchString(s string) bool
}

type perlSearcher struct {
	re *regexp2.Regexp
}

// MatchString reports a timed-out or failed evaluation as no match.
func (p perlSearcher) MatchString(s string) bool {
	ok, err := p.re.MatchString(s)
	return err == nil && ok
}

func (e Engine) compile(pattern string) (searcher, error) {
	if e == EnginePerl {
		re, err := regexp2.Compile(pattern, regexp2.None)
		if err != nil {
			return nil, &PatternError{Pattern: pattern, Err: err}
		}
		re.MatchTimeout = perlMatchTimeout
		return perlSearcher{re: re}, nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &PatternError{Pattern: pattern, Err: err}
	}
	return re, nil
}
