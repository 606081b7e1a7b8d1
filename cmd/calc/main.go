package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/calclab/calc/internal/cli"
	"github.com/calclab/calc/internal/config"
	"github.com/calclab/calc/internal/logging"
)

// main is a thin boundary: arguments are canonicalized into an Invocation
// before any engine logic runs, and all failures map to documented exit codes.
func main() {
	inv, err := cli.ParseInvocation(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Print(cli.Usage())
			os.Exit(cli.ExitSuccess)
		}
		fmt.Fprintf(os.Stderr, "calc: %v\n", err)
		os.Exit(cli.ExitInvalidInvocation)
	}

	cfg, err := config.Load(inv.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "calc: %v\n", err)
		os.Exit(cli.ExitConfigError)
	}
	inv.ApplyConfig(cfg)

	log, err := logging.New(logging.Config{
		Level:       inv.LogLevel,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "calc: invalid log level %q\n", inv.LogLevel)
		os.Exit(cli.ExitConfigError)
	}
	runner := cli.NewRunner(os.Stdout, os.Stderr, os.Stdin, log)
	code := runner.Run(inv, cfg)
	_ = log.Sync() // os.Exit skips deferred calls
	os.Exit(code)
}
