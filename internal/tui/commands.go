package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/csheth/convoy/internal/forms"
	"github.com/csheth/convoy/internal/stats"
	"github.com/csheth/convoy/internal/submission"
)

func fetchStatsJob(poller *stats.Poller) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		snapshot, err := poller.Fetch(ctx)
		return statsResultMsg{stats: snapshot, err: err}, err
	}
}

func submitJob(ctrl *submission.Controller, req submission.Request) jobRunner {
	return func(ctx context.Context) (tea.Msg, error) {
		outcome := ctrl.Run(ctx, req)
		return submitResultMsg{form: req.Form, outcome: outcome}, outcome.Err
	}
}

func jobKindFor(ctrl *submission.Controller) jobKind {
	if ctrl.Form() == forms.Application {
		return jobKindApplication
	}
	return jobKindNewsletter
}

// startStatsRefresh begins a poller fetch. Requests made while one is already
// in flight are dropped.
func (m *model) startStatsRefresh() tea.Cmd {
	if _, ok := m.poller.Begin(); !ok {
		m.logger.Debug("stats refresh skipped, fetch already in flight")
		return nil
	}
	return tea.Batch(m.spinner.Tick, m.jobs.Start(jobKindStats, fetchStatsJob(m.poller)))
}

func (m *model) activateStats() tea.Cmd {
	if !m.poller.MarkActivated() {
		return nil
	}
	return m.startStatsRefresh()
}

// drainRefresh turns a refresh requested by a controller into a job.
func (m *model) drainRefresh() tea.Cmd {
	if !m.refreshRequested {
		return nil
	}
	m.refreshRequested = false
	return m.startStatsRefresh()
}
