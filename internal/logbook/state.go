package logbook

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// State is the serializable form of a Logger. The compiled search pattern is
// not part of it and is rebuilt by FromState.
type State struct {
	MinDisplayLevel     Severity          `toml:"min_display_level"`
	TimeFormat          TimeFormat        `toml:"time_format"`
	TimePrecision       TimePrecision     `toml:"time_precision"`
	ShowCategories      bool              `toml:"show_categories"`
	ShowLevel           bool              `toml:"show_level"`
	MaxMessageLength    int               `toml:"max_message_length"`
	MaxRecordsPerLevel  int               `toml:"max_records_per_level"`
	SearchTerm          string            `toml:"search_term"`
	SearchWithRegex     bool              `toml:"search_with_regex"`
	SearchCaseSensitive bool              `toml:"search_case_sensitive"`
	InputPrefix         string            `toml:"input_prefix"`
	InputLevel          Severity          `toml:"input_level"`
	InputCategories     []string          `toml:"input_categories"`
	HiddenCategories    []string          `toml:"hidden_categories"`
	CategoryCounts      map[string]uint32 `toml:"category_counts"`
	Records             []Record          `toml:"records"`
}

// State captures the logger's records, ledger and preferences.
func (l *Logger) State() State {
	var records []Record
	for rec := range l.store.All() {
		rec.Categories = cloneStrings(rec.Categories)
		records = append(records, rec)
	}
	return State{
		MinDisplayLevel:     l.MinDisplayLevel,
		TimeFormat:          l.TimeFormat,
		TimePrecision:       l.TimePrecision,
		ShowCategories:      l.ShowCategories,
		ShowLevel:           l.ShowLevel,
		MaxMessageLength:    l.MaxMessageLength,
		MaxRecordsPerLevel:  l.MaxRecordsPerLevel,
		SearchTerm:          l.SearchTerm,
		SearchWithRegex:     l.SearchWithRegex,
		SearchCaseSensitive: l.SearchCaseSensitive,
		InputPrefix:         l.InputPrefix,
		InputLevel:          l.InputLevel,
		InputCategories:     cloneStrings(l.inputCategories),
		HiddenCategories:    l.HiddenCategories(),
		CategoryCounts:      l.ledger.snapshot(),
		Records:             records,
	}
}

// FromState rebuilds a Logger from s. Records are restored without
// truncation or eviction. When s carries no category counts the ledger is
// recomputed from the records.
func FromState(s State) *Logger {
	l := New()
	l.MinDisplayLevel = s.MinDisplayLevel.clamp()
	l.TimeFormat = s.TimeFormat
	l.TimePrecision = s.TimePrecision
	l.ShowCategories = s.ShowCategories
	l.ShowLevel = s.ShowLevel
	l.MaxMessageLength = s.MaxMessageLength
	l.MaxRecordsPerLevel = s.MaxRecordsPerLevel
	l.SearchTerm = s.SearchTerm
	l.SearchWithRegex = s.SearchWithRegex
	l.SearchCaseSensitive = s.SearchCaseSensitive
	l.InputPrefix = s.InputPrefix
	l.InputLevel = s.InputLevel.clamp()
	if s.InputCategories != nil {
		l.inputCategories = cloneStrings(s.InputCategories)
	}
	for _, name := range s.HiddenCategories {
		l.HideCategory(name)
	}
	for _, rec := range s.Records {
		rec.Level = rec.Level.clamp()
		rec.Categories = cloneStrings(rec.Categories)
		l.store.Push(rec)
	}
	if len(s.CategoryCounts) > 0 {
		for name, n := range s.CategoryCounts {
			l.ledger.restore(name, n)
		}
	} else {
		for _, rec := range s.Records {
			l.ledger.Add(rec.Categories)
		}
	}
	l.UpdateSearchRegex()
	return l
}

// MarshalState encodes the logger as TOML.
func (l *Logger) MarshalState() ([]byte, error) {
	data, err := toml.Marshal(l.State())
	if err != nil {
		return nil, fmt.Errorf("encode logger state: %w", err)
	}
	return data, nil
}

// UnmarshalState decodes a TOML logger state produced by MarshalState.
func UnmarshalState(data []byte) (*Logger, error) {
	var s State
	if err := toml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode logger state: %w", err)
	}
	return FromState(s), nil
}
