package views

import (
	"fmt"
	"strings"

	"github.com/dowk233/steelMaster/internal/i18n"
)

type SubTaskRowData struct {
	Title     string
	Completed bool
	Selected  bool
}

type TaskRowData struct {
	Title     string
	Completed bool
	Selected  bool
	SubTasks  []SubTaskRowData
}

type TodayPanelData struct {
	Labels      i18n.Strings
	DayID       int
	Goal        string
	Complete    bool
	Tasks       []TaskRowData
	EntryPrompt string
	EntryView   string
}

type HabitRowData struct {
	Title    string
	Active   bool
	Selected bool
}

type HabitPanelData struct {
	Labels  i18n.Strings
	Habits  []HabitRowData
	Focused bool
}

type GridPanelData struct {
	Labels    i18n.Strings
	Completed []bool
	HasTasks  []bool
	Cursor    int
	TodayID   int
	Columns   int
}

type TrendBarData struct {
	DayID    int
	ScorePct int
}

type StatsPanelData struct {
	Labels i18n.Strings

	YesterdayTasks int
	YesterdayDone  int
	YesterdayPct   int
	YesterdayFull  bool

	CompletedDays int
	YearPct       int
	LongestStreak int
	Trend         []TrendBarData
}

type InsightPanelData struct {
	Labels     i18n.Strings
	Theme      string
	Message    string
	Sentiment  string
	Refreshing bool
	Spinner    string
	FetchedAt  string
}

func RenderTodayPanel(data TodayPanelData) string {
	var b strings.Builder
	mark := " "
	if data.Complete {
		mark = "*"
	}
	fmt.Fprintf(&b, "%s %d %s\n", data.Labels.TodayTitle, data.DayID, mark)
	if data.Goal != "" {
		fmt.Fprintf(&b, "%s: %s\n", data.Labels.GoalLabel, data.Goal)
	}
	b.WriteString("actions: [a]task [s]sub [space]toggle [d]delete [tab]habits\n")

	if len(data.Tasks) == 0 {
		b.WriteString(data.Labels.NoTasks + "\n")
	}
	for _, task := range data.Tasks {
		b.WriteString(renderTaskRow(task))
		for _, sub := range task.SubTasks {
			b.WriteString(renderSubRow(sub))
		}
	}

	if data.EntryPrompt != "" {
		fmt.Fprintf(&b, "\n%s: %s\n", data.EntryPrompt, data.EntryView)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func renderTaskRow(task TaskRowData) string {
	cursor := " "
	if task.Selected {
		cursor = ">"
	}
	return fmt.Sprintf("%s %s %s\n", cursor, checkbox(task.Completed), task.Title)
}

func renderSubRow(sub SubTaskRowData) string {
	cursor := " "
	if sub.Selected {
		cursor = ">"
	}
	return fmt.Sprintf("  %s %s %s\n", cursor, checkbox(sub.Completed), sub.Title)
}

func RenderHabitPanel(data HabitPanelData) string {
	var b strings.Builder
	focus := ""
	if data.Focused {
		focus = " <"
	}
	fmt.Fprintf(&b, "%s%s\n%s\n", data.Labels.Habits, focus, data.Labels.HabitsSub)
	if len(data.Habits) == 0 {
		b.WriteString(data.Labels.NoHabits)
		return b.String()
	}
	for _, habit := range data.Habits {
		cursor := " "
		if habit.Selected && data.Focused {
			cursor = ">"
		}
		state := "on"
		if !habit.Active {
			state = "off"
		}
		fmt.Fprintf(&b, "%s [%s] %s\n", cursor, state, habit.Title)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// RenderGridPanel draws the whole year as one cell per day. The cursor cell
// is bracketed, today is marked regardless of position.
func RenderGridPanel(data GridPanelData) string {
	cols := data.Columns
	if cols <= 0 {
		cols = 28
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", data.Labels.NavGrid)
	b.WriteString("actions: [h/j/k/l]move [t]today [enter]open\n")
	for i := range data.Completed {
		cell := "."
		switch {
		case data.Completed[i]:
			cell = "#"
		case data.HasTasks[i]:
			cell = "o"
		}
		if i == data.TodayID-1 {
			cell = "@"
			if data.Completed[i] {
				cell = "#"
			}
		}
		if i == data.Cursor {
			b.WriteString("[" + cell + "]")
		} else {
			b.WriteString(" " + cell + " ")
		}
		if (i+1)%cols == 0 {
			b.WriteString("\n")
		}
	}
	fmt.Fprintf(&b, "\nday %d", data.Cursor+1)
	return strings.TrimSpace(b.String())
}

func RenderStatsPanel(data StatsPanelData) string {
	var b strings.Builder
	l := data.Labels

	fmt.Fprintf(&b, "%s:\n", l.StatsYesterday)
	verdict := l.StatsIncomplete
	if data.YesterdayFull {
		verdict = l.StatsPerfect
	}
	fmt.Fprintf(&b, "  %s: %d/%d %s (%d%% %s) %s\n",
		l.StatsPerformance, data.YesterdayDone, data.YesterdayTasks, l.StatsCleared,
		data.YesterdayPct, l.StatsAccuracy, verdict)

	fmt.Fprintf(&b, "\n%s:\n", l.StatsYearly)
	fmt.Fprintf(&b, "  %s %d%% %s\n", ProgressBar(data.YearPct, 24), data.YearPct, l.StatsJourney)
	fmt.Fprintf(&b, "  %s: %d %s\n", l.StatsVictories, data.CompletedDays, l.StatsDays)
	fmt.Fprintf(&b, "  %s: %d %s\n", l.StatsStreak, data.LongestStreak, l.StatsDays)

	fmt.Fprintf(&b, "\n%s:\n", l.StatsMomentum)
	if len(data.Trend) == 0 {
		b.WriteString("  (no history)")
		return b.String()
	}
	for _, point := range data.Trend {
		fmt.Fprintf(&b, "  %3d %s %d%%\n", point.DayID, ProgressBar(point.ScorePct, 16), point.ScorePct)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderInsightPanel(data InsightPanelData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", data.Labels.AITitle)
	if data.Refreshing {
		fmt.Fprintf(&b, " %s %s", data.Spinner, data.Labels.AIAnalyzing)
		return b.String()
	}
	if data.Message == "" {
		return b.String()
	}
	fmt.Fprintf(&b, " [%s]\n", data.Sentiment)
	b.WriteString(RenderMarkdown(data.Message, data.Theme))
	if data.FetchedAt != "" {
		fmt.Fprintf(&b, "\n%s: %s", data.Labels.AIRefresh, data.FetchedAt)
	}
	return b.String()
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return "command: " + inputView
}

// ProgressBar renders pct as a fixed-width block bar. pct is clamped to
// 0..100.
func ProgressBar(pct, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct * width / 100
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}
