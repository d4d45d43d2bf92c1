package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/dowk233/steelMaster/internal/i18n"
	"github.com/dowk233/steelMaster/internal/model"
	"github.com/dowk233/steelMaster/internal/stats"
	"github.com/dowk233/steelMaster/internal/views"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	labels := i18n.For(m.State.Language)

	var left, right string
	switch m.CurrentView {
	case ViewGrid:
		left = m.gridPanel(labels)
		right = m.statsPanel(labels)
	case ViewStats:
		left = m.statsPanel(labels)
		right = m.insightPanel(labels)
	default:
		left = m.todayPanel(labels)
		right = m.habitPanel(labels) + "\n\n" + m.insightPanel(labels)
	}

	footer := "? help | q quit"
	if m.HelpVisible {
		footer = m.helpModel.ShortHelpView([]key.Binding{
			m.Keys.Today, m.Keys.Grid, m.Keys.Stats, m.Keys.Palette, m.Keys.Help, m.Keys.Quit,
		}) + " | T theme | L language | R refresh"
	}

	return views.RenderApp(views.AppData{
		Theme:       string(m.State.Theme),
		Header:      m.header(labels),
		LeftPane:    left,
		RightPane:   right,
		StatusLine:  m.Status.Text,
		StatusError: m.Status.IsError,
		Palette:     views.RenderCommandPalette(m.Palette.Active, m.commandInput.View()),
		Footer:      footer,
	})
}

func (m Model) header(labels i18n.Strings) string {
	tabs := []struct {
		view View
		name string
	}{
		{ViewToday, labels.NavToday},
		{ViewGrid, labels.NavGrid},
		{ViewStats, labels.NavStats},
	}
	out := ""
	for i, tab := range tabs {
		if i > 0 {
			out += " | "
		}
		if tab.view == m.CurrentView {
			out += "[" + tab.name + "]"
		} else {
			out += tab.name
		}
	}
	return fmt.Sprintf("%s  (%s, %s)", out, m.State.Theme, m.State.Language)
}

func (m Model) todayPanel(labels i18n.Strings) string {
	day := m.SelectedDay()
	rows := make([]views.TaskRowData, 0, len(day.Tasks))
	for i, task := range day.Tasks {
		taskRow := views.TaskRowData{
			Title:     task.Title,
			Completed: task.Completed,
			Selected:  !m.Today.FocusHabits && m.Today.Cursor.TaskIndex == i && m.Today.Cursor.SubIndex == -1,
		}
		for j, sub := range task.SubTasks {
			taskRow.SubTasks = append(taskRow.SubTasks, views.SubTaskRowData{
				Title:     sub.Title,
				Completed: sub.Completed,
				Selected:  !m.Today.FocusHabits && m.Today.Cursor.TaskIndex == i && m.Today.Cursor.SubIndex == j,
			})
		}
		rows = append(rows, taskRow)
	}

	data := views.TodayPanelData{
		Labels:   labels,
		DayID:    day.DayID,
		Goal:     m.State.Goal,
		Complete: day.Completed,
		Tasks:    rows,
	}
	if m.Entry != EntryNone {
		data.EntryPrompt = string(m.Entry)
		data.EntryView = m.entryInput.View()
	}
	return views.RenderTodayPanel(data)
}

func (m Model) habitPanel(labels i18n.Strings) string {
	rows := make([]views.HabitRowData, 0, len(m.State.Habits))
	for i, habit := range m.State.Habits {
		rows = append(rows, views.HabitRowData{
			Title:    habit.Title,
			Active:   habit.Active,
			Selected: i == m.Today.HabitCursor,
		})
	}
	return views.RenderHabitPanel(views.HabitPanelData{
		Labels:  labels,
		Habits:  rows,
		Focused: m.Today.FocusHabits,
	})
}

func (m Model) gridPanel(labels i18n.Strings) string {
	completed := make([]bool, model.TotalDays)
	hasTasks := make([]bool, model.TotalDays)
	for _, day := range m.State.Days {
		idx := day.DayID - 1
		if idx < 0 || idx >= model.TotalDays {
			continue
		}
		completed[idx] = day.Completed
		hasTasks[idx] = len(day.Tasks) > 0
	}
	return views.RenderGridPanel(views.GridPanelData{
		Labels:    labels,
		Completed: completed,
		HasTasks:  hasTasks,
		Cursor:    m.Grid.Cursor,
		TodayID:   m.TodayID,
	})
}

func (m Model) statsPanel(labels i18n.Strings) string {
	yesterday := stats.Yesterday(m.State.Days, m.TodayID)
	trend := stats.RecentTrend(m.State.Days, m.TodayID, stats.DefaultTrendWindow)
	bars := make([]views.TrendBarData, 0, len(trend))
	for _, point := range trend {
		bars = append(bars, views.TrendBarData{DayID: point.DayID, ScorePct: point.ScorePct})
	}
	return views.RenderStatsPanel(views.StatsPanelData{
		Labels:         labels,
		YesterdayTasks: yesterday.TaskCount,
		YesterdayDone:  yesterday.DoneCount,
		YesterdayPct:   yesterday.CompletionPct,
		YesterdayFull:  yesterday.WasComplete,
		CompletedDays:  stats.CompletedCount(m.State.Days),
		YearPct:        stats.YearPercentage(m.State.Days),
		LongestStreak:  stats.LongestStreak(m.State.Days),
		Trend:          bars,
	})
}

func (m Model) insightPanel(labels i18n.Strings) string {
	data := views.InsightPanelData{
		Labels:     labels,
		Theme:      string(m.State.Theme),
		Message:    m.Insight.Message,
		Sentiment:  string(m.Insight.Sentiment),
		Refreshing: m.insightRefreshing,
		Spinner:    m.thinkSpinner.View(),
	}
	if !m.InsightAt.IsZero() {
		data.FetchedAt = m.InsightAt.Format("15:04")
	}
	return views.RenderInsightPanel(data)
}
