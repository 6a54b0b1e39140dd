package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/cutoff/internal/cli"
)

func main() {
	// Quiet by default so the answer is the only stdout line; --verbose
	// raises the level to debug.
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := cli.NewCmdCutoff(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
