package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/pratik-anurag/portscope/internal/config"
	"github.com/pratik-anurag/portscope/internal/scan"
	"github.com/pratik-anurag/portscope/internal/tui"
)

func runWatch(args []string) int {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	c := parseCommon(fs)
	var interval time.Duration
	fs.DurationVar(&interval, "interval", 2*time.Second, "rescan interval")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if interval < 500*time.Millisecond {
		fmt.Fprintln(os.Stderr, "watch: --interval must be at least 500ms")
		return 2
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "watch:", err)
		return 2
	}

	eng := scan.New(cfg, newLogger(c.Verbose))
	p := tea.NewProgram(tui.New(eng, interval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "watch:", err)
		return 1
	}
	return 0
}
