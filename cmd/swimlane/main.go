package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/idilsaglam/swimlane/internal/cli"
	"github.com/idilsaglam/swimlane/internal/config"
	"github.com/idilsaglam/swimlane/internal/logging"
	"github.com/idilsaglam/swimlane/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	flags := pflag.NewFlagSet("swimlane", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "config file (default ./"+config.FileName+" when present)")
	seedPath := flags.String("seed", "", "seed rows file (.yaml or .json)")
	theme := flags.String("theme", "", "classic, neon or mono")
	logFile := flags.String("log-file", "", "append JSON log records to this file")
	noMouse := flags.Bool("no-mouse", false, "disable mouse dragging")
	debug := flags.Bool("debug", false, "log at debug level")
	flags.BoolP("help", "h", false, "show help")
	flags.Usage = cli.PrintHelp

	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		ui.Fail(err.Error())
		os.Exit(2)
	}
	if help, _ := flags.GetBool("help"); help {
		cli.PrintHelp()
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}
	// Flags win over the file.
	if flags.Changed("seed") {
		cfg.Seed = *seedPath
	}
	if flags.Changed("theme") {
		cfg.Theme = *theme
	}
	if flags.Changed("log-file") {
		cfg.LogFile = *logFile
	}
	if *noMouse {
		off := false
		cfg.Mouse = &off
	}
	if err := cfg.Validate(); err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger, closeLog, err := logging.New(cfg.LogFile, level)
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}

	code := cli.Run(flags.Args(), cli.Options{Config: cfg, Logger: logger})
	if err := closeLog(); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(code)
}
