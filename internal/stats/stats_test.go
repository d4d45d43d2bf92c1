package stats

import (
	"testing"
	"time"

	"github.com/dowk233/steelMaster/internal/model"
)

func completedDay(id int) model.Day {
	return model.Day{
		DayID:     id,
		Completed: true,
		Tasks:     []model.Task{{ID: "t", Title: "done", Completed: true}},
	}
}

func daysWithCompleted(ids ...int) []model.Day {
	days := make([]model.Day, model.TotalDays)
	for i := range days {
		days[i] = model.Day{DayID: i + 1}
	}
	for _, id := range ids {
		days[id-1] = completedDay(id)
	}
	return days
}

func TestEmptyStateScenario(t *testing.T) {
	state := model.DefaultYearState()
	if got := CompletedCount(state.Days); got != 0 {
		t.Fatalf("CompletedCount = %d, want 0", got)
	}
	if got := YearPercentage(state.Days); got != 0 {
		t.Fatalf("YearPercentage = %d, want 0", got)
	}
	if got := LongestStreak(state.Days); got != 0 {
		t.Fatalf("LongestStreak = %d, want 0", got)
	}
}

func TestCompletedCountAndPercentage(t *testing.T) {
	days := daysWithCompleted(1, 2, 3, 10, 200)
	if got := CompletedCount(days); got != 5 {
		t.Fatalf("CompletedCount = %d, want 5", got)
	}
	// 5/365 = 1.37%, rounds to 1.
	if got := YearPercentage(days); got != 1 {
		t.Fatalf("YearPercentage = %d, want 1", got)
	}

	half := make([]int, 0, 183)
	for id := 1; id <= 183; id++ {
		half = append(half, id)
	}
	// 183/365 = 50.1%, rounds to 50.
	if got := YearPercentage(daysWithCompleted(half...)); got != 50 {
		t.Fatalf("YearPercentage = %d, want 50", got)
	}
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name string
		ids  []int
		want int
	}{
		{"none", nil, 0},
		{"single", []int{42}, 1},
		{"run of five then broken", []int{1, 2, 3, 4, 5, 7, 8}, 5},
		{"later run wins", []int{1, 2, 10, 11, 12, 13}, 4},
		{"trailing incomplete days ignored", []int{100, 101, 102}, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LongestStreak(daysWithCompleted(tc.ids...)); got != tc.want {
				t.Fatalf("LongestStreak = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestLongestStreakZeroTaskDayBreaksRun(t *testing.T) {
	days := daysWithCompleted(1, 2, 4, 5, 6)
	// Day 3 has no tasks and is therefore incomplete; the run must reset.
	if got := LongestStreak(days); got != 3 {
		t.Fatalf("LongestStreak = %d, want 3", got)
	}
}

func TestYesterday(t *testing.T) {
	days := daysWithCompleted()
	days[9] = model.Day{
		DayID: 10,
		Tasks: []model.Task{
			{ID: "a", Completed: true},
			{ID: "b", Completed: true},
			{ID: "c", Completed: false},
		},
	}

	got := Yesterday(days, 11)
	want := YesterdayStats{TaskCount: 3, DoneCount: 2, CompletionPct: 67, WasComplete: false}
	if got != want {
		t.Fatalf("Yesterday = %#v, want %#v", got, want)
	}
}

func TestYesterdayClampsAtDayOne(t *testing.T) {
	days := daysWithCompleted(1)
	got := Yesterday(days, 1)
	if !got.WasComplete || got.TaskCount != 1 {
		t.Fatalf("todayID=1 must read day 1 itself, got %#v", got)
	}
}

func TestYesterdayMissingDayIsZero(t *testing.T) {
	got := Yesterday([]model.Day{{DayID: 1}}, 300)
	if got != (YesterdayStats{}) {
		t.Fatalf("missing day must read as zeros, got %#v", got)
	}
}

func TestRecentTrend(t *testing.T) {
	days := daysWithCompleted()
	days[19] = model.Day{DayID: 20, Tasks: []model.Task{
		{ID: "a", Completed: true},
		{ID: "b", Completed: false},
	}}
	days[21] = completedDay(22)

	got := RecentTrend(days, 23, 7)
	if len(got) != 7 {
		t.Fatalf("expected 7 points, got %d", len(got))
	}
	if got[0].DayID != 16 || got[6].DayID != 22 {
		t.Fatalf("window misplaced: first=%d last=%d", got[0].DayID, got[6].DayID)
	}
	byID := make(map[int]int, len(got))
	for _, p := range got {
		byID[p.DayID] = p.ScorePct
	}
	if byID[20] != 50 {
		t.Fatalf("day 20 score = %d, want 50", byID[20])
	}
	if byID[22] != 100 {
		t.Fatalf("day 22 score = %d, want 100", byID[22])
	}
	if byID[17] != 0 {
		t.Fatalf("empty day 17 score = %d, want 0", byID[17])
	}
}

func TestRecentTrendClampsAtDayOne(t *testing.T) {
	days := daysWithCompleted(1, 2)
	got := RecentTrend(days, 3, 7)
	if len(got) != 2 {
		t.Fatalf("expected 2 points, got %d", len(got))
	}
	if got[0].DayID != 1 || got[1].DayID != 2 {
		t.Fatalf("unexpected window: %#v", got)
	}
}

func TestStreakMonotonicUnderCompletion(t *testing.T) {
	days := daysWithCompleted(1, 2, 4)
	before := LongestStreak(days)
	days[2] = completedDay(3)
	after := LongestStreak(days)
	if after < before {
		t.Fatalf("streak decreased %d -> %d after completing a day", before, after)
	}
	if after != 4 {
		t.Fatalf("merged runs should give 4, got %d", after)
	}
}

func TestDayOfYear(t *testing.T) {
	jan1 := time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC)
	if got := DayOfYear(jan1); got != 1 {
		t.Fatalf("DayOfYear(jan 1) = %d, want 1", got)
	}
	dec31 := time.Date(2026, time.December, 31, 23, 0, 0, 0, time.UTC)
	if got := DayOfYear(dec31); got != 365 {
		t.Fatalf("DayOfYear(dec 31) = %d, want 365", got)
	}
}
