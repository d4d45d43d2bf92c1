package model

import (
	"errors"
	"testing"
)

func TestDefaultYearState(t *testing.T) {
	state := DefaultYearState()
	if err := state.Validate(); err != nil {
		t.Fatalf("default state invalid: %v", err)
	}
	if len(state.Days) != TotalDays {
		t.Fatalf("expected %d days, got %d", TotalDays, len(state.Days))
	}
	if state.Days[0].DayID != 1 || state.Days[TotalDays-1].DayID != TotalDays {
		t.Fatalf("day ids not contiguous: first=%d last=%d", state.Days[0].DayID, state.Days[TotalDays-1].DayID)
	}
	for _, d := range state.Days {
		if d.Completed || len(d.Tasks) != 0 {
			t.Fatalf("day %d not empty/incomplete: %#v", d.DayID, d)
		}
	}
	if len(state.Habits) != 3 {
		t.Fatalf("expected 3 seed habits, got %d", len(state.Habits))
	}
	if state.Goal != "My 365-Day Mastery" {
		t.Fatalf("unexpected default goal: %q", state.Goal)
	}
	if state.Theme != ThemeLight || state.Language != LanguageEN {
		t.Fatalf("unexpected defaults: theme=%q language=%q", state.Theme, state.Language)
	}
}

func TestDerivedCompleted(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		want  bool
	}{
		{"no tasks", nil, false},
		{"all done", []Task{{ID: "a", Completed: true}, {ID: "b", Completed: true}}, true},
		{"one open", []Task{{ID: "a", Completed: true}, {ID: "b"}}, false},
		{"single open", []Task{{ID: "a"}}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := Day{DayID: 1, Tasks: tc.tasks}
			if got := d.DerivedCompleted(); got != tc.want {
				t.Fatalf("DerivedCompleted() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestYearStateValidateRejectsGaps(t *testing.T) {
	state := DefaultYearState()
	state.Days[9].DayID = 99
	if err := state.Validate(); err == nil {
		t.Fatal("expected error for non-contiguous day ids")
	}
}

func TestYearStateValidateRejectsStaleCompletedCache(t *testing.T) {
	state := DefaultYearState()
	state.Days[3].Completed = true
	if err := state.Validate(); err == nil {
		t.Fatal("expected error for completed day without tasks")
	}
}

func TestYearStateValidateRejectsBadEnums(t *testing.T) {
	state := DefaultYearState()
	state.Theme = Theme("sepia")
	err := state.Validate()
	if err == nil || !errors.Is(err, ErrInvalidTheme) {
		t.Fatalf("expected ErrInvalidTheme, got: %v", err)
	}

	state.Theme = ThemeDark
	state.Language = Language("fr")
	err = state.Validate()
	if err == nil || !errors.Is(err, ErrInvalidLanguage) {
		t.Fatalf("expected ErrInvalidLanguage, got: %v", err)
	}
}

func TestYearStateValidateRejectsDuplicateTaskIDs(t *testing.T) {
	state := DefaultYearState()
	state.Days[0].Tasks = []Task{{ID: "t1", Title: "a"}, {ID: "t1", Title: "b"}}
	if err := state.Validate(); err == nil {
		t.Fatal("expected error for duplicate task ids")
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for range 64 {
		id := NewID()
		if id == "" {
			t.Fatal("empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id: %s", id)
		}
		seen[id] = true
	}
}
