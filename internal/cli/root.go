// Package cli wires the subcommands. Each runX returns a process exit
// code: 0 ok, 1 runtime failure, 2 usage error.
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

func Run(args []string) int {
	if len(args) == 0 {
		usage()
		return 2
	}
	switch args[0] {
	case "list":
		return runList(args[1:])
	case "raw":
		return runRaw(args[1:])
	case "watch":
		return runWatch(args[1:])
	case "help", "-h", "--help":
		usage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "portscope: unknown command %q\n\n", args[0])
		usage()
		return 2
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `portscope - network connection inventory

Usage:
  portscope list  [--json] [--max-port N] [--proto tcp|udp|all]
  portscope raw
  portscope watch [--interval 2s]

Common flags:
  --config PATH   config file (YAML)
  -v              debug logging
  --color MODE    auto|always|never
`)
}

type commonFlags struct {
	Config  string
	Verbose bool
	Color   string
}

func parseCommon(fs *flag.FlagSet) *commonFlags {
	c := &commonFlags{}
	fs.StringVar(&c.Config, "config", "", "config file (YAML)")
	fs.BoolVar(&c.Verbose, "v", false, "debug logging")
	fs.StringVar(&c.Color, "color", "auto", "color mode: auto|always|never")
	return c
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
