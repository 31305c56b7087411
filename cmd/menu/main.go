package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Makepad-fr/menu/internal/cli"
	"github.com/Makepad-fr/menu/internal/config"
	"github.com/Makepad-fr/menu/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}

	// Root flags (apply to every subcommand)
	role := flag.String("role", cfg.Menu.Role, "login role: christoffel or user")
	snap := flag.String("snapshot", "", "resume from a menu snapshot file (- for stdin)")
	handoff := flag.Bool("handoff", false, "login: print the menu snapshot on exit")
	output := flag.String("out", "", "write the updated menu snapshot to this file instead of stdout")
	noColor := flag.Bool("no-color", cfg.UI.NoColor, "disable colored output")
	flag.Parse()

	ui.SetTheme(cfg.UI.Theme)
	ui.SetCurrency(cfg.UI.Currency)
	if *noColor {
		ui.SetColorForcing(false, true)
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stderr)
		os.Exit(2)
	}

	// The TUI owns the terminal; keep logs off it unless LOG_FILE is set.
	var fallback io.Writer = os.Stderr
	if args[0] == "login" {
		fallback = io.Discard
	}
	out, closeLog, err := config.OpenLogOutput(cfg.Logger, fallback)
	if err != nil {
		ui.Fail(os.Stderr, err.Error())
		os.Exit(1)
	}
	logger := config.NewLogger(cfg.Logger, out)

	code := cli.Run(args, cli.Options{
		Role:     *role,
		Snapshot: *snap,
		Handoff:  *handoff,
		Output:   *output,
		Policy:   cfg.Menu.Policy(),
		Logger:   logger,
	})
	_ = closeLog()
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
