// Package tui is the live watch view: the engine is polled on an
// interval and the table re-rendered, with connections that were absent
// from the previous snapshot flagged in the first column.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pratik-anurag/portscope/internal/scan"
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	styleHelp  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	styleErr   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type Model struct {
	eng      *scan.Engine
	interval time.Duration

	table    table.Model
	prevKeys map[string]int
	count    int
	platform string
	lastErr  error
	scanning bool
}

type snapshotMsg struct {
	snap scan.Snapshot
	err  error
}

type tickMsg time.Time

func New(eng *scan.Engine, interval time.Duration) Model {
	columns := []table.Column{
		{Title: "", Width: 1},
		{Title: "Proto", Width: 5},
		{Title: "Local", Width: 26},
		{Title: "Remote", Width: 26},
		{Title: "State", Width: 12},
		{Title: "PID", Width: 7},
		{Title: "Process", Width: 16},
		{Title: "User", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(20),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return Model{
		eng:      eng,
		interval: interval,
		table:    t,
		prevKeys: map[string]int{},
		scanning: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.collect()
}

func (m Model) collect() tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		snap, err := eng.Collect(context.Background())
		return snapshotMsg{snap: snap, err: err}
	}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 6)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			if !m.scanning {
				m.scanning = true
				return m, m.collect()
			}
			return m, nil
		}

	case tickMsg:
		if !m.scanning {
			m.scanning = true
			return m, m.collect()
		}
		return m, nil

	case snapshotMsg:
		m.scanning = false
		m.lastErr = msg.err
		if msg.err == nil {
			m.applySnapshot(msg.snap)
		}
		return m, m.tick()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// applySnapshot rebuilds the rows and marks connections not present in
// the previous snapshot. Keys are not unique, so presence is tracked by
// count per key: the Nth duplicate is "new" only if the previous
// snapshot held fewer than N of that key.
func (m *Model) applySnapshot(snap scan.Snapshot) {
	m.count = snap.Count
	m.platform = snap.Platform

	seen := map[string]int{}
	rows := make([]table.Row, 0, len(snap.Records))
	nextKeys := map[string]int{}
	for _, r := range snap.Records {
		key := r.Key()
		seen[key]++
		nextKeys[key]++

		marker := ""
		if seen[key] > m.prevKeys[key] {
			marker = "•"
		}
		rows = append(rows, table.Row{
			marker,
			string(r.Proto),
			r.LocalAddr(),
			r.RemoteAddr(),
			r.State,
			pidCell(r.PID),
			r.ProcName,
			r.User,
		})
	}
	m.prevKeys = nextKeys
	m.table.SetRows(rows)
}

func pidCell(pid int) string {
	if pid <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d", pid)
}

func (m Model) View() string {
	title := fmt.Sprintf("portscope watch · %d connections (%s)", m.count, m.platform)
	if m.scanning {
		title += "  scanning…"
	}
	out := styleTitle.Render(title) + "\n"
	if m.lastErr != nil {
		out += styleErr.Render("scan failed: "+m.lastErr.Error()) + "\n"
	}
	out += m.table.View() + "\n"
	out += styleHelp.Render("q quit · r rescan · • new since last scan")
	return out
}
