package main

import (
	"os"

	"github.com/pratik-anurag/portscope/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:]))
}
