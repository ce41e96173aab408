package logbook

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxSearchLength caps search terms, in runes.
const MaxSearchLength = 512

// Filter decides which records are visible. It is built fresh for each query
// and never modified while evaluating.
type Filter struct {
	MinLevel      Severity
	Hidden        map[string]struct{}
	Search        string
	Regex         bool
	CaseSensitive bool

	// Pattern is the compiled Search when Regex is set. A nil Pattern in
	// regex mode admits everything, so a malformed expression hides nothing.
	Pattern *regexp.Regexp
}

// Match reports whether rec passes the level, category, and search gates, in
// that order. render produces the display line searched against; it is only
// called when a search term is set.
func (f Filter) Match(rec Record, render func(Record) string) bool {
	if rec.Level < f.MinLevel {
		return false
	}
	if f.hides(rec.Categories) {
		return false
	}
	if f.Search == "" {
		return true
	}
	return f.matchText(render(rec))
}

// hides reports whether any of categories is hidden. One hidden category
// hides the whole record.
func (f Filter) hides(categories []string) bool {
	if len(f.Hidden) == 0 {
		return false
	}
	for _, name := range categories {
		if _, ok := f.Hidden[name]; ok {
			return true
		}
	}
	return false
}

func (f Filter) matchText(text string) bool {
	switch {
	case f.Regex:
		if f.Pattern == nil {
			return true
		}
		return f.Pattern.MatchString(text)
	case f.CaseSensitive:
		return strings.Contains(text, f.Search)
	default:
		return strings.Contains(strings.ToLower(text), strings.ToLower(f.Search))
	}
}

// CompileSearch compiles term as a regular expression, case-insensitive
// unless caseSensitive is set. It returns nil for an empty or invalid term.
func CompileSearch(term string, caseSensitive bool) *regexp.Regexp {
	if term == "" {
		return nil
	}
	expr := term
	if !caseSensitive {
		expr = "(?i)" + term
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil
	}
	return re
}

// SanitizeSearch drops newlines and control characters and caps the result
// at MaxSearchLength runes.
func SanitizeSearch(term string) string {
	var b strings.Builder
	n := 0
	for _, r := range term {
		if r == '\n' || unicode.IsControl(r) {
			continue
		}
		if n == MaxSearchLength {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}
