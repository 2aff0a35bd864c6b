package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/pratik-anurag/portscope/internal/config"
	"github.com/pratik-anurag/portscope/internal/model"
	"github.com/pratik-anurag/portscope/internal/render"
	"github.com/pratik-anurag/portscope/internal/scan"
)

func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	c := parseCommon(fs)
	var jsonOut bool
	var maxPort int
	var proto string
	fs.BoolVar(&jsonOut, "json", false, "output JSON")
	fs.IntVar(&maxPort, "max-port", 0, "only include local ports <= N (default: config)")
	fs.StringVar(&proto, "proto", "all", "protocol filter: tcp|udp|all")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 0 {
		fmt.Fprintln(os.Stderr, "list: unexpected arguments")
		return 2
	}
	protoFilter, ok := parseProtoFilter(proto)
	if !ok {
		fmt.Fprintln(os.Stderr, "list: invalid --proto (tcp|udp|all)")
		return 2
	}

	cfg, err := config.Load(c.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "list:", err)
		return 2
	}
	if maxPort > 0 {
		cfg.MaxPort = maxPort
	}

	logger := newLogger(c.Verbose)
	eng := scan.New(cfg, logger)

	// live count on stderr, only when someone is watching
	var onProgress scan.Progress
	showProgress := !jsonOut && term.IsTerminal(int(os.Stderr.Fd()))
	if showProgress {
		onProgress = func(current, total int) {
			fmt.Fprintf(os.Stderr, "\rscanning... %d/~%d", current, total)
		}
	}

	snap, err := eng.CollectPorts(context.Background(), cfg.MaxPort, onProgress)
	if showProgress {
		fmt.Fprint(os.Stderr, "\r\033[K")
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "list:", err)
		return 1
	}

	if protoFilter != "" {
		filtered := snap.Records[:0]
		for _, r := range snap.Records {
			if r.Proto == protoFilter {
				filtered = append(filtered, r)
			}
		}
		snap.Records = filtered
		snap.Count = len(filtered)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(snap)
		return 0
	}

	fmt.Print(render.Connections(snap, render.Options{Color: resolveColor(c.Color)}))
	return 0
}

func parseProtoFilter(s string) (model.Protocol, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "tcp":
		return model.ProtoTCP, true
	case "udp":
		return model.ProtoUDP, true
	case "all", "":
		return "", true
	default:
		return "", false
	}
}

func resolveColor(mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
