package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TotalDays is the fixed length of a tracked year. Day records are created
// once, numbered 1..TotalDays, and only ever mutated afterwards.
const TotalDays = 365

var (
	ErrInvalidTheme     = errors.New("model: invalid theme")
	ErrInvalidLanguage  = errors.New("model: invalid language")
	ErrInvalidSentiment = errors.New("model: invalid sentiment")
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

type Language string

const (
	LanguageEN   Language = "en"
	LanguageENUK Language = "en-uk"
	LanguageJP   Language = "jp"
	LanguageZH   Language = "zh"
)

// LanguageCycle is the fixed order the language toggle advances through.
var LanguageCycle = []Language{LanguageEN, LanguageENUK, LanguageJP, LanguageZH}

func (l Language) IsValid() bool {
	switch l {
	case LanguageEN, LanguageENUK, LanguageJP, LanguageZH:
		return true
	default:
		return false
	}
}

type Sentiment string

const (
	SentimentPositive    Sentiment = "positive"
	SentimentEncouraging Sentiment = "encouraging"
	SentimentNeutral     Sentiment = "neutral"
)

func (s Sentiment) IsValid() bool {
	switch s {
	case SentimentPositive, SentimentEncouraging, SentimentNeutral:
		return true
	default:
		return false
	}
}

type SubTask struct {
	ID        string
	Title     string
	Completed bool
}

// Task completion is toggled by the user; it is never derived from the
// sub-task list, and sub-task completion does not roll up.
type Task struct {
	ID        string
	Title     string
	Completed bool
	SubTasks  []SubTask
}

// Day holds the tasks logged for one day of the year. Completed is a cached
// derivation: true iff Tasks is non-empty and every task is completed. The
// mutation engine recomputes it on every change to Tasks.
type Day struct {
	DayID     int
	Completed bool
	Tasks     []Task
}

// DerivedCompleted reports what the Completed cache must hold for the
// current task list.
func (d Day) DerivedCompleted() bool {
	if len(d.Tasks) == 0 {
		return false
	}
	for _, t := range d.Tasks {
		if !t.Completed {
			return false
		}
	}
	return true
}

type Habit struct {
	ID     string
	Title  string
	Active bool
}

// YearState is the aggregate root: a full year of days plus habits and
// user preferences. It is persisted as a whole after every mutation.
type YearState struct {
	Days     []Day
	Habits   []Habit
	Goal     string
	Theme    Theme
	Language Language
}

// AIInsight is the advisor gateway result. It is displayed, never persisted.
type AIInsight struct {
	Message   string
	Sentiment Sentiment
}

// NewID returns a fresh opaque identifier for tasks, sub-tasks and habits.
// Uniqueness within the owning collection is all callers rely on.
func NewID() string {
	return uuid.NewString()
}

// DefaultYearState builds the hard-coded initial state: 365 empty,
// incomplete days and the three seed habits.
func DefaultYearState() YearState {
	days := make([]Day, TotalDays)
	for i := range days {
		days[i] = Day{DayID: i + 1}
	}
	return YearState{
		Days: days,
		Habits: []Habit{
			{ID: "1", Title: "Wake up early", Active: true},
			{ID: "2", Title: "Exercise", Active: true},
			{ID: "3", Title: "Read 20 mins", Active: true},
		},
		Goal:     "My 365-Day Mastery",
		Theme:    ThemeLight,
		Language: LanguageEN,
	}
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	seen := make(map[string]bool, len(t.SubTasks))
	for _, st := range t.SubTasks {
		if strings.TrimSpace(st.ID) == "" {
			return errors.New("model: subtask id is required")
		}
		if seen[st.ID] {
			return fmt.Errorf("model: duplicate subtask id %q", st.ID)
		}
		seen[st.ID] = true
	}
	return nil
}

func (d Day) Validate() error {
	if d.DayID < 1 || d.DayID > TotalDays {
		return fmt.Errorf("model: day id %d out of range [1, %d]", d.DayID, TotalDays)
	}
	seen := make(map[string]bool, len(d.Tasks))
	for _, t := range d.Tasks {
		if err := t.Validate(); err != nil {
			return err
		}
		if seen[t.ID] {
			return fmt.Errorf("model: duplicate task id %q on day %d", t.ID, d.DayID)
		}
		seen[t.ID] = true
	}
	if d.Completed != d.DerivedCompleted() {
		return fmt.Errorf("model: day %d completed flag out of sync with tasks", d.DayID)
	}
	return nil
}

func (s YearState) Validate() error {
	if len(s.Days) != TotalDays {
		return fmt.Errorf("model: expected %d days, got %d", TotalDays, len(s.Days))
	}
	for i, d := range s.Days {
		if d.DayID != i+1 {
			return fmt.Errorf("model: day at index %d has id %d, want %d", i, d.DayID, i+1)
		}
		if err := d.Validate(); err != nil {
			return err
		}
	}
	seen := make(map[string]bool, len(s.Habits))
	for _, h := range s.Habits {
		if strings.TrimSpace(h.ID) == "" {
			return errors.New("model: habit id is required")
		}
		if seen[h.ID] {
			return fmt.Errorf("model: duplicate habit id %q", h.ID)
		}
		seen[h.ID] = true
	}
	if !s.Theme.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, s.Theme)
	}
	if !s.Language.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, s.Language)
	}
	return nil
}
