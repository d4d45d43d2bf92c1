// Package stats derives read-only aggregates from a year snapshot. Every
// function is order-sensitive: callers supply days sorted ascending by
// DayID (the canonical YearState layout) and nothing here re-sorts.
package stats

import (
	"math"
	"time"

	"github.com/dowk233/steelMaster/internal/model"
)

// DefaultTrendWindow is the number of days RecentTrend looks back over.
const DefaultTrendWindow = 7

type YesterdayStats struct {
	TaskCount     int
	DoneCount     int
	CompletionPct int
	WasComplete   bool
}

type TrendPoint struct {
	DayID    int
	ScorePct int
}

// CompletedCount counts days whose completion cache is set.
func CompletedCount(days []model.Day) int {
	count := 0
	for _, d := range days {
		if d.Completed {
			count++
		}
	}
	return count
}

// YearPercentage is the completed share of the whole 365-day year,
// rounded to the nearest whole percent.
func YearPercentage(days []model.Day) int {
	return int(math.Round(float64(CompletedCount(days)) / float64(model.TotalDays) * 100))
}

// YesterdayStats summarizes the day before todayID. Day 1 is its own
// yesterday, and a missing day reads as zero tasks, zero percent,
// incomplete.
func Yesterday(days []model.Day, todayID int) YesterdayStats {
	yesterdayID := todayID - 1
	if yesterdayID < 1 {
		yesterdayID = 1
	}
	day, ok := findDay(days, yesterdayID)
	if !ok {
		return YesterdayStats{}
	}
	done := 0
	for _, t := range day.Tasks {
		if t.Completed {
			done++
		}
	}
	pct := 0
	if len(day.Tasks) > 0 {
		pct = int(math.Round(float64(done) / float64(len(day.Tasks)) * 100))
	}
	return YesterdayStats{
		TaskCount:     len(day.Tasks),
		DoneCount:     done,
		CompletionPct: pct,
		WasComplete:   day.Completed,
	}
}

// RecentTrend scores the up-to-window days immediately preceding todayID,
// clamped at day 1. A day with no tasks scores zero.
func RecentTrend(days []model.Day, todayID, window int) []TrendPoint {
	if window <= 0 {
		window = DefaultTrendWindow
	}
	from := todayID - window
	if from < 1 {
		from = 1
	}
	out := make([]TrendPoint, 0, window)
	for id := from; id < todayID; id++ {
		day, ok := findDay(days, id)
		if !ok {
			continue
		}
		score := 0
		if len(day.Tasks) > 0 {
			done := 0
			for _, t := range day.Tasks {
				if t.Completed {
					done++
				}
			}
			score = int(math.Round(float64(done) / float64(len(day.Tasks)) * 100))
		}
		out = append(out, TrendPoint{DayID: day.DayID, ScorePct: score})
	}
	return out
}

// LongestStreak is the longest run of consecutive completed days in slice
// order. Any incomplete day resets the run, including days with no tasks.
func LongestStreak(days []model.Day) int {
	maxStreak, current := 0, 0
	for _, d := range days {
		if d.Completed {
			current++
			if current > maxStreak {
				maxStreak = current
			}
		} else {
			current = 0
		}
	}
	return maxStreak
}

// DayOfYear is the 1-based offset of t from January 1 in t's location.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

func findDay(days []model.Day, dayID int) (model.Day, bool) {
	// Canonical layout puts day N at index N-1; fall back to a scan for
	// partial slices handed in by tests or views.
	if idx := dayID - 1; idx >= 0 && idx < len(days) && days[idx].DayID == dayID {
		return days[idx], true
	}
	for _, d := range days {
		if d.DayID == dayID {
			return d, true
		}
	}
	return model.Day{}, false
}
