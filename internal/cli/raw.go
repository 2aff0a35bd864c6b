package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pratik-anurag/portscope/internal/config"
	"github.com/pratik-anurag/portscope/internal/scan"
)

// raw prints the OS command output verbatim, for eyeballing what the
// extractors are actually fed on this box.
func runRaw(args []string) int {
	fs := flag.NewFlagSet("raw", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	c := parseCommon(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "raw:", err)
		return 2
	}

	out, err := scan.New(cfg, newLogger(c.Verbose)).Raw(context.Background())
	if err != nil {
		fmt.Fprintln(os.Stderr, "raw:", err)
		return 1
	}
	fmt.Print(out)
	return 0
}
