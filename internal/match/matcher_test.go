package match

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_DefaultsToEquals(t *testing.T) {
	m, err := Parse("class=foo")
	require.NoError(t, err)
	assert.Equal(t, Matcher{Field: Class, Method: Equals, Pattern: "foo"}, m)
}

func TestParse_FieldAliases(t *testing.T) {
	tests := map[string]Field{
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
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := Parse(name + "=x")
			require.NoError(t, err)
			assert.Equal(t, want, m.Field)
		})
	}
}

func TestParse_MethodAliases(t *testing.T) {
	tests := map[string]Method{
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
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			m, err := Parse("title:" + name + "=x")
			require.NoError(t, err)
			assert.Equal(t, want, m.Method)
			assert.Equal(t, Title, m.Field)
		})
	}
}

func TestParse_PatternMayContainSeparators(t *testing.T) {
	m, err := Parse("title:contains=a=b:c")
	require.NoError(t, err)
	assert.Equal(t, Contains, m.Method)
	assert.Equal(t, "a=b:c", m.Pattern)
}

func TestParse_ArgumentErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"unknown field", "foo=bar"},
		{"field is case-sensitive", "Class=firefox"},
		{"unknown method", "class:fuzzy=firefox"},
		{"missing separator", "class"},
		{"empty pattern", "class="},
		{"empty field", "=firefox"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			require.Error(t, err)
			var argErr *ArgumentError
			assert.True(t, errors.As(err, &argErr), "got %T", err)
		})
	}
}

func TestParse_InvalidRegex(t *testing.T) {
	_, err := Parse("title:regex=([a-z")
	require.Error(t, err)

	var patErr *PatternError
	require.True(t, errors.As(err, &patErr))
	assert.Equal(t, "([a-z", patErr.Pattern)
	assert.Contains(t, err.Error(), "([a-z")
}

func TestParser_PerlEngine(t *testing.T) {
	p := Parser{Engine: EnginePerl}

	m, err := p.Parse(`title:re=^(?!Private).*Firefox$`)
	require.NoError(t, err)
	assert.True(t, m.MatchValue("Docs - Mozilla Firefox"))
	assert.False(t, m.MatchValue("Private Browsing - Mozilla Firefox"))

	// lookahead is rejected by RE2
	_, err = Parse(`title:re=^(?!Private).*Firefox$`)
	var patErr *PatternError
	assert.True(t, errors.As(err, &patErr))
}

func TestParseEngine(t *testing.T) {
	e, err := ParseEngine("")
	require.NoError(t, err)
	assert.Equal(t, EngineRE2, e)

	e, err = ParseEngine("perl")
	require.NoError(t, err)
	assert.Equal(t, EnginePerl, e)

	_, err = ParseEngine("onig")
	assert.Error(t, err)
}

func TestMatcher_MatchValue(t *testing.T) {
	tests := []struct {
		name    string
		method  Method
		pattern string
		value   string
		want    bool
	}{
		{"equals exact", Equals, "firefox", "firefox", true},
		{"equals is case-sensitive", Equals, "firefox", "Firefox", false},
		{"equals rejects substring", Equals, "fire", "firefox", false},
		{"contains middle", Contains, "Docs", "My Docs - Firefox", true},
		{"contains missing", Contains, "Other", "My Docs - Firefox", false},
		{"prefix", Prefix, "org.", "org.kde.dolphin", true},
		{"prefix not at start", Prefix, "kde", "org.kde.dolphin", false},
		{"suffix", Suffix, "- Firefox", "Docs - Firefox", true},
		{"suffix not at end", Suffix, "Docs", "Docs - Firefox", false},
		{"regex searches anywhere", Regex, `fox`, "Firefox", true},
		{"regex anchored", Regex, `^fox`, "Firefox", false},
		{"regex inline flag", Regex, `(?i)^firefox$`, "FireFox", true},
		{"empty value", Contains, "a", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(Title, tt.method, tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.MatchValue(tt.value))
		})
	}
}

func TestMatcher_Fields(t *testing.T) {
	w := Window{
		ID:           "0x1",
		Class:        "Firefox",
		InitialClass: "firefox",
		Title:        "Docs - Firefox",
		InitialTitle: "Welcome",
		Tag:          "work",
		XdgTag:       "browser",
	}

	tests := []struct {
		raw  string
		want bool
	}{
		{"class=Firefox", true},
		{"class=Chromium", false},
		{"initialClass=firefox", true},
		{"initialClass=kitty", false},
		{"title:contains=Docs", true},
		{"title:contains=Other", false},
		{"initialTitle=Welcome", true},
		{"initialTitle=Other", false},
		{"tag=work", true},
		{"tag=play", false},
		{"xdgTag=browser", true},
		{"xdgTag=video", false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			m, err := Parse(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Matches(w))
		})
	}
}

func TestMatcher_AbsentFieldsAreEmpty(t *testing.T) {
	w := Window{Class: "kitty"}

	m, err := Parse("tag:regex=^$")
	require.NoError(t, err)
	assert.True(t, m.Matches(w))

	m, err = Parse("xdgTag:prefix=a")
	require.NoError(t, err)
	assert.False(t, m.Matches(w))
}

func TestSet_Conjunction(t *testing.T) {
	windows := []Window{
		{ID: "a", Class: "firefox", Title: "Docs"},
		{ID: "b", Class: "firefox", Title: "Mail"},
		{ID: "c", Class: "kitty", Title: "Docs"},
	}
	class, err := Parse("class=firefox")
	require.NoError(t, err)
	title, err := Parse("title=Docs")
	require.NoError(t, err)

	assert.Equal(t, []Window{windows[0]}, Set{class, title}.Filter(windows))
	assert.Equal(t, []Window{windows[0]}, Set{title, class}.Filter(windows))
	assert.Equal(t, windows, Set{}.Filter(windows))
}

func TestSet_RemovingMatcherNeverShrinksResult(t *testing.T) {
	windows := []Window{
		{ID: "a", Class: "firefox", Title: "Docs", Tag: "work"},
		{ID: "b", Class: "firefox", Title: "Mail"},
		{ID: "c", Class: "kitty", Title: "Docs", Tag: "work"},
		{ID: "d", Class: "kitty", Title: "htop"},
	}
	var set Set
	for _, raw := range []string{"class:prefix=f", "title:re=o", "tag=work"} {
		m, err := Parse(raw)
		require.NoError(t, err)
		set = append(set, m)
	}

	full := set.Filter(windows)
	for i := range set {
		reduced := append(append(Set{}, set[:i]...), set[i+1:]...)
		got := reduced.Filter(windows)
		for _, w := range full {
			assert.Contains(t, got, w, "dropping %s lost %s", set[i], w.ID)
		}
		assert.GreaterOrEqual(t, len(got), len(full))
	}
}
