// Package render formats snapshots for terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pratik-anurag/portscope/internal/model"
	"github.com/pratik-anurag/portscope/internal/scan"
)

type Options struct {
	Color bool
}

var (
	styleListen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleEstab  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	styleWait   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Connections renders a snapshot as a fixed-width table.
func Connections(snap scan.Snapshot, opt Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d connections (%s)\n\n", snap.Count, snap.Platform)
	fmt.Fprintf(&b, "%-5s %-28s %-28s %-13s %7s %-18s %s\n",
		"PROTO", "LOCAL", "REMOTE", "STATE", "PID", "PROCESS", "USER")
	for _, r := range snap.Records {
		fmt.Fprintf(&b, "%-5s %-28s %-28s %-13s %7s %-18s %s\n",
			r.Proto,
			r.LocalAddr(),
			r.RemoteAddr(),
			stateLabel(r, opt),
			pidLabel(r.PID),
			dash(r.ProcName),
			dash(r.User),
		)
	}
	return b.String()
}

func stateLabel(r model.Record, opt Options) string {
	// pad before styling so ANSI codes don't break column widths
	s := fmt.Sprintf("%-13s", r.State)
	if !opt.Color {
		return s
	}
	switch {
	case strings.HasPrefix(r.State, "LISTEN"):
		return styleListen.Render(s)
	case r.State == "ESTABLISHED" || r.State == "ESTAB":
		return styleEstab.Render(s)
	case strings.Contains(r.State, "WAIT"):
		return styleWait.Render(s)
	default:
		return s
	}
}

func pidLabel(pid int) string {
	if pid <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d", pid)
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
