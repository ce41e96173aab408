package logbook

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gobwas/glob"
)

const (
	DefaultMaxMessageLength   = 2000
	DefaultMaxRecordsPerLevel = 2000

	maxInputPrefixLength = 128
	defaultInputCategory = "Input"
)

// Logger stores records with per-level retention and answers filtered
// queries over them. It is not safe for concurrent use; producers on other
// goroutines should hand records over through a Sink owned by the caller.
//
// The exported fields are display and retention preferences the owner may
// change at any time. None of them alter records already stored. Lowering
// MaxRecordsPerLevel directly takes effect on the next ingestion; use
// SetMaxRecordsPerLevel to apply it immediately.
//
// A Logger must not be copied after first use. Use FromState(l.State()) for
// an independent duplicate.
type Logger struct {
	MinDisplayLevel Severity
	TimeFormat      TimeFormat
	TimePrecision   TimePrecision
	ShowCategories  bool
	ShowLevel       bool

	MaxMessageLength   int
	MaxRecordsPerLevel int

	// SearchTerm changes take effect on the compiled pattern only through
	// SetSearch, SetSearchOptions or UpdateSearchRegex.
	SearchTerm          string
	SearchWithRegex     bool
	SearchCaseSensitive bool

	// InputPrefix is prepended (capped at 128 runes) to text passed to Submit.
	InputPrefix string
	InputLevel  Severity

	store           Store
	ledger          Ledger
	hidden          map[string]struct{}
	inputCategories []string
	searchRegex     *regexp.Regexp
	now             func() time.Time
}

// New returns a Logger with default preferences: every level shown, local
// time in whole seconds, level and category tags on.
func New() *Logger {
	return &Logger{
		MinDisplayLevel:    Debug,
		TimeFormat:         TimeLocal,
		TimePrecision:      Seconds,
		ShowCategories:     true,
		ShowLevel:          true,
		MaxMessageLength:   DefaultMaxMessageLength,
		MaxRecordsPerLevel: DefaultMaxRecordsPerLevel,
		InputLevel:         Info,
		hidden:             make(map[string]struct{}),
		inputCategories:    []string{defaultInputCategory},
		now:                time.Now,
	}
}

// Log records message at level under categories.
func (l *Logger) Log(level Severity, categories []string, message string) {
	l.LogRecord(newRecordAt(l.clock(), level, categories, message))
}

func (l *Logger) Debug(categories []string, message string) { l.Log(Debug, categories, message) }
func (l *Logger) Info(categories []string, message string)  { l.Log(Info, categories, message) }
func (l *Logger) Warn(categories []string, message string)  { l.Log(Warn, categories, message) }
func (l *Logger) Error(categories []string, message string) { l.Log(Error, categories, message) }

// LogRecord stores rec as given, keeping its timestamp, so records pushed out
// of order sort by their own time. The message is cleaned and truncated to
// MaxMessageLength first, then retention is enforced on every level.
func (l *Logger) LogRecord(rec Record) {
	rec.Level = rec.Level.clamp()
	rec.Categories = cloneStrings(rec.Categories)
	rec.Message = truncateMessage(stripNewlines(rec.Message), l.MaxMessageLength)

	l.ledger.Add(rec.Categories)
	l.store.Push(rec)
	l.enforceLimits()
}

func (l *Logger) enforceLimits() {
	for _, level := range Severities() {
		for _, rec := range l.store.Enforce(level, l.MaxRecordsPerLevel) {
			l.ledger.Remove(rec.Categories)
		}
	}
}

// SetMaxRecordsPerLevel changes the retention bound and evicts immediately.
func (l *Logger) SetMaxRecordsPerLevel(n int) {
	l.MaxRecordsPerLevel = n
	l.enforceLimits()
}

// Clear drops every record and empties the category ledger. Hidden
// categories are preferences and survive.
func (l *Logger) Clear() {
	l.store.Reset()
	l.ledger.Reset()
}

// TotalRecords returns the unfiltered number of stored records.
func (l *Logger) TotalRecords() int {
	return l.store.Len()
}

// LevelRecords returns the unfiltered number of records stored for level.
func (l *Logger) LevelRecords(level Severity) int {
	return l.store.LenLevel(level)
}

// AllCategories returns every category name in the ledger, sorted. Names
// whose live count dropped to zero are still reported.
func (l *Logger) AllCategories() []string {
	return l.ledger.Names()
}

// CategoryCount returns how many live category occurrences carry name.
func (l *Logger) CategoryCount(name string) uint32 {
	return l.ledger.Count(name)
}

// Filter returns the predicate built from the current preferences. The
// result owns its Hidden set; changing it leaves the Logger untouched.
func (l *Logger) Filter() Filter {
	f := l.filter()
	f.Hidden = maps.Clone(f.Hidden)
	return f
}

// filter shares the hidden set with l, for use within a single query.
func (l *Logger) filter() Filter {
	return Filter{
		MinLevel:      l.MinDisplayLevel,
		Hidden:        l.hidden,
		Search:        l.SearchTerm,
		Regex:         l.SearchWithRegex,
		CaseSensitive: l.SearchCaseSensitive,
		Pattern:       l.searchRegex,
	}
}

// MatchesFilters reports whether rec is visible under the current filters.
func (l *Logger) MatchesFilters(rec Record) bool {
	return l.filter().Match(rec, l.renderer())
}

// FilteredRecords returns visible records in storage order: level by level,
// each level oldest first.
func (l *Logger) FilteredRecords() []Record {
	f := l.filter()
	render := l.renderer()
	var out []Record
	for rec := range l.store.All() {
		if f.Match(rec, render) {
			out = append(out, rec)
		}
	}
	return out
}

// SortedRecords returns visible records ordered by timestamp. Records with
// equal timestamps keep their storage order.
func (l *Logger) SortedRecords() []Record {
	out := l.FilteredRecords()
	slices.SortStableFunc(out, func(a, b Record) int {
		return a.Timestamp.Compare(b.Timestamp)
	})
	return out
}

// CopyText renders the visible records in time order, one line each.
func (l *Logger) CopyText() string {
	render := l.renderer()
	var b strings.Builder
	for _, rec := range l.SortedRecords() {
		b.WriteString(render(rec))
		b.WriteByte('\n')
	}
	return b.String()
}

// FormatRecord renders rec as one display line using the current format
// preferences. Search matches against this text.
func (l *Logger) FormatRecord(rec Record) string {
	return l.formatRecord(rec, l.TimePadding())
}

// renderer fixes the timestamp padding once for a whole query.
func (l *Logger) renderer() func(Record) string {
	pad := l.TimePadding()
	return func(rec Record) string {
		return l.formatRecord(rec, pad)
	}
}

func (l *Logger) formatRecord(rec Record, pad int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%*s", pad, l.FormatTime(rec.Timestamp)))
	if l.ShowLevel {
		b.WriteString("[" + rec.Level.String() + "] ")
	}
	if l.ShowCategories {
		b.WriteString("[" + strings.Join(rec.Categories, ",") + "] ")
	}
	b.WriteString(rec.Message)
	return b.String()
}

// FormatTime renders t in the current time format, with a trailing space
// unless timestamps are hidden.
func (l *Logger) FormatTime(t time.Time) string {
	return formatTime(t, l.TimeFormat, l.TimePrecision)
}

// TimePadding is the width every rendered timestamp is padded to, taken from
// the rendering of the current time.
func (l *Logger) TimePadding() int {
	return utf8.RuneCountInString(l.FormatTime(l.clock()))
}

// HideCategory hides records tagged name. The preference is kept even when
// no such record exists.
func (l *Logger) HideCategory(name string) {
	if l.hidden == nil {
		l.hidden = make(map[string]struct{})
	}
	l.hidden[name] = struct{}{}
}

// ShowCategory makes records tagged name visible again.
func (l *Logger) ShowCategory(name string) {
	delete(l.hidden, name)
}

// ToggleCategory flips the visibility of name.
func (l *Logger) ToggleCategory(name string) {
	if l.IsHidden(name) {
		l.ShowCategory(name)
		return
	}
	l.HideCategory(name)
}

// IsHidden reports whether name is hidden.
func (l *Logger) IsHidden(name string) bool {
	_, ok := l.hidden[name]
	return ok
}

// HiddenCategories returns the hidden category names, sorted.
func (l *Logger) HiddenCategories() []string {
	if len(l.hidden) == 0 {
		return nil
	}
	names := make([]string, 0, len(l.hidden))
	for name := range l.hidden {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ShowAllCategories clears every hidden category.
func (l *Logger) ShowAllCategories() {
	clear(l.hidden)
}

// HideAllCategories hides every category in the ledger.
func (l *Logger) HideAllCategories() {
	for _, name := range l.ledger.Names() {
		l.HideCategory(name)
	}
}

// HideCategoriesMatching hides every known category matching the shell glob
// pattern and returns how many matched.
func (l *Logger) HideCategoriesMatching(pattern string) (int, error) {
	return eachMatching(pattern, l.ledger.Names(), l.HideCategory)
}

// ShowCategoriesMatching shows every hidden category matching the shell glob
// pattern and returns how many matched.
func (l *Logger) ShowCategoriesMatching(pattern string) (int, error) {
	return eachMatching(pattern, l.HiddenCategories(), l.ShowCategory)
}

func eachMatching(pattern string, names []string, fn func(string)) (int, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("compile category pattern %q: %w", pattern, err)
	}
	n := 0
	for _, name := range names {
		if g.Match(name) {
			fn(name)
			n++
		}
	}
	return n, nil
}

// SetSearch sanitizes and stores term, then recompiles the search pattern.
func (l *Logger) SetSearch(term string) {
	l.SearchTerm = SanitizeSearch(term)
	l.UpdateSearchRegex()
}

// SetSearchOptions changes the search mode and recompiles the pattern.
func (l *Logger) SetSearchOptions(regex, caseSensitive bool) {
	l.SearchWithRegex = regex
	l.SearchCaseSensitive = caseSensitive
	l.UpdateSearchRegex()
}

// UpdateSearchRegex recompiles the cached pattern from SearchTerm. Filtering
// never compiles on its own, so callers writing SearchTerm directly must call
// this. An invalid expression leaves no pattern, which admits every record.
func (l *Logger) UpdateSearchRegex() {
	if !l.SearchWithRegex {
		l.searchRegex = nil
		return
	}
	l.searchRegex = CompileSearch(l.SearchTerm, l.SearchCaseSensitive)
}

// SearchPatternValid reports whether regex search is off or its pattern
// compiled.
func (l *Logger) SearchPatternValid() bool {
	return !l.SearchWithRegex || l.SearchTerm == "" || l.searchRegex != nil
}

// SetInputCategories sets the categories applied to Submit.
func (l *Logger) SetInputCategories(categories []string) {
	l.inputCategories = cloneStrings(categories)
}

// InputCategories returns the categories applied to Submit.
func (l *Logger) InputCategories() []string {
	return cloneStrings(l.inputCategories)
}

// Submit logs user-typed text at InputLevel under the input categories. Blank
// text is ignored and reported as false.
func (l *Logger) Submit(text string) bool {
	if strings.TrimSpace(text) == "" {
		return false
	}
	prefix := l.InputPrefix
	if utf8.RuneCountInString(prefix) > maxInputPrefixLength {
		prefix = string([]rune(prefix)[:maxInputPrefixLength])
	}
	l.Log(l.InputLevel, l.inputCategories, prefix+text)
	return true
}

func (l *Logger) clock() time.Time {
	if l.now == nil {
		return time.Now()
	}
	return l.now()
}
