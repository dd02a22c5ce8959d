package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/idilsaglam/swimlane/internal/config"
	"github.com/idilsaglam/swimlane/internal/lanes"
	"github.com/idilsaglam/swimlane/internal/model"
	"github.com/idilsaglam/swimlane/internal/seed"
	"github.com/idilsaglam/swimlane/internal/store"
	"github.com/idilsaglam/swimlane/internal/tui"
	"github.com/idilsaglam/swimlane/internal/ui"
)

// Options carry the resolved configuration from main.
type Options struct {
	Config config.Config
	Logger *slog.Logger
}

// runBoard is swapped out in tests; the real board needs a terminal.
var runBoard = tui.Run

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// No subcommand opens the board.
func Run(args []string, opt Options) int {
	if opt.Logger == nil {
		opt.Logger = slog.New(slog.DiscardHandler)
	}
	ui.SetTheme(opt.Config.Theme)
	if len(args) == 0 {
		return doBoard(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "board":
		if len(a) != 0 {
			ui.Fail("usage: swimlane board")
			return 2
		}
		return doBoard(opt)

	case "ls":
		if len(a) > 1 {
			ui.Fail("usage: swimlane ls [lane]")
			return 2
		}
		lanesToShow := model.Lanes[:]
		if len(a) == 1 {
			l, ok := model.ParseLane(a[0])
			if !ok {
				ui.Fail("ls: unknown lane: " + a[0])
				fmt.Fprintln(ui.Err, ui.Dim("Hint: lanes are backlog, in-progress, complete"))
				return 2
			}
			lanesToShow = []model.Lane{l}
		}
		return doList(opt, lanesToShow)

	case "check":
		if len(a) != 0 {
			ui.Fail("usage: swimlane check")
			return 2
		}
		return doCheck(opt)

	case "init":
		if len(a) != 0 {
			ui.Fail("usage: swimlane init")
			return 2
		}
		return doInit()
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(ui.Err)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Fprintf(ui.Out, `swimlane - a three-lane client board

Usage:
  swimlane [flags] [subcommand] [args]

Subcommands:
  board              Open the interactive board (default)
  ls [lane]          Print every lane, or just one
  check              Validate the seed data and print lane counts
  init               Write a commented %s to the current directory

Flags:
  -c, --config PATH  Config file (default ./%s when present)
      --seed PATH    Seed rows (.yaml or .json) instead of the built-in list
      --theme NAME   classic, neon or mono
      --log-file PATH
                     Append JSON log records to PATH
      --no-mouse     Disable mouse dragging
      --debug        Log debug records too (needs --log-file)
  -h, --help         Show this help

Examples:
  swimlane
  swimlane ls in-progress
  swimlane --seed clients.yaml check
`, config.FileName, config.FileName)
}

// -------------- subcommand impls ----------------

func loadStore(opt Options) (*store.Store, string, bool) {
	rows, from, err := seed.Resolve(opt.Config.Seed)
	if err != nil {
		ui.Fail("seed: " + err.Error())
		return nil, "", false
	}
	st, err := store.New(rows, opt.Logger)
	if err != nil {
		ui.Fail(fmt.Sprintf("seed %s: %v", from, err))
		return nil, "", false
	}
	return st, from, true
}

func doBoard(opt Options) int {
	st, from, ok := loadStore(opt)
	if !ok {
		return 1
	}
	opt.Logger.Info("board opened", "seed", from, "items", st.Snapshot().Len())
	err := runBoard(st, tui.Options{
		Theme:  opt.Config.Theme,
		Mouse:  opt.Config.MouseEnabled(),
		Logger: opt.Logger,
	})
	if err != nil {
		ui.Fail("board: " + err.Error())
		return 1
	}
	return 0
}

func doList(opt Options, show []model.Lane) int {
	st, _, ok := loadStore(opt)
	if !ok {
		return 1
	}
	snap := st.Snapshot()
	counts := lanes.Counts(snap)
	done := counts[model.LaneComplete.Index()]

	t := ui.Current()
	for _, l := range show {
		items := lanes.View(snap, l)
		header := fmt.Sprintf("%s  %s",
			ui.C(t.LaneColor(l), l.Title()),
			ui.C(t.Muted, fmt.Sprintf("%d of %d", len(items), snap.Len())),
		)
		lines := []string{header, ""}
		lines = append(lines, itemLines(items)...)
		ui.Panel(lines)
	}
	fmt.Fprintln(ui.Out, ui.C(t.Muted, "complete "+ui.ProgressBar(done, snap.Len(), 28)))
	return 0
}

func doCheck(opt Options) int {
	st, from, ok := loadStore(opt)
	if !ok {
		return 1
	}
	n := lanes.Counts(st.Snapshot())
	parts := make([]string, 0, len(model.Lanes))
	for i, l := range model.Lanes {
		parts = append(parts, fmt.Sprintf("%s %d", l, n[i]))
	}
	ui.OK(fmt.Sprintf("%d items from %s (%s)", st.Snapshot().Len(), from, strings.Join(parts, ", ")))
	return 0
}

func doInit() int {
	wd, err := os.Getwd()
	if err != nil {
		ui.Fail("init: " + err.Error())
		return 1
	}
	p := filepath.Join(wd, config.FileName)
	created, err := config.WriteDefault(p)
	if err != nil {
		ui.Fail("init: " + err.Error())
		return 1
	}
	if !created {
		ui.Fail(config.FileName + " already exists")
		return 1
	}
	ui.OK("wrote " + config.FileName)
	return 0
}

// -------------- rendering helpers --------------

func itemLines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{ui.C(ui.Current().Muted, "(none)")}
	}
	out := make([]string, 0, len(items))
	for _, it := range items {
		id := ui.Dim(fmt.Sprintf("%3s.", it.ID))
		name := ui.Truncate(it.Name, 40)
		desc := ui.C(ui.Current().Muted, ui.Truncate(it.Description, 48))
		out = append(out, fmt.Sprintf("%s %s %s  %s", id, ui.Current().SymCard, name, desc))
	}
	return out
}
