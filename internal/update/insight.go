package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dowk233/steelMaster/internal/model"
	"github.com/dowk233/steelMaster/internal/scheduler"
)

// waitForRefreshCmd blocks on the refresh stream and resurfaces each event
// as a message. The stream closing ends the listen loop.
func waitForRefreshCmd(ch <-chan scheduler.RefreshEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return RefreshDueMsg{Event: ev}
	}
}

func (m Model) onRefreshDue() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	if m.refresh != nil {
		cmds = append(cmds, waitForRefreshCmd(m.refresh.C()))
	}
	if m.gateway != nil && !m.insightRefreshing {
		m.insightRefreshing = true
		cmds = append(cmds, m.thinkSpinner.Tick, fetchInsightCmd(m.gateway, m.State))
	}
	return m, tea.Batch(cmds...)
}

func fetchInsightCmd(gateway InsightGateway, state model.YearState) tea.Cmd {
	days := state.Days
	goal := state.Goal
	return func() tea.Msg {
		insight := gateway.RequestInsight(context.Background(), days, goal)
		return InsightMsg{Insight: insight, At: time.Now()}
	}
}
