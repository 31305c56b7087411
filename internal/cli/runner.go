package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Makepad-fr/menu/internal/menu"
	"github.com/Makepad-fr/menu/internal/model"
	"github.com/Makepad-fr/menu/internal/session"
	"github.com/Makepad-fr/menu/internal/snapshot"
	"github.com/Makepad-fr/menu/internal/tui"
	"github.com/Makepad-fr/menu/internal/ui"
)

// Options tune behavior from root flags.
type Options struct {
	Role     string // "christoffel" or "user"
	Snapshot string // snapshot to resume from: file path, "-" for stdin, "" for none
	Handoff  bool   // login: print the final snapshot on exit
	Output   string // write handed-off snapshots to this file instead of stdout
	Policy   menu.ImportPolicy
	Logger   zerolog.Logger

	In       io.Reader
	Out, Err io.Writer

	// runTUI is swapped in tests.
	runTUI func(tui.Options) ([]byte, error)
}

func (o *Options) defaults() {
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Role == "" {
		o.Role = string(model.RoleUser)
	}
	if o.Policy == "" {
		o.Policy = menu.DropInvalid
	}
	if o.runTUI == nil {
		o.runTUI = tui.Run
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage or rejected input).
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		PrintHelp(opt.Err)
		return 2
	}
	cmd, a := args[0], args[1:]
	logger := opt.Logger.With().Str("component", "cli").Str("cmd", cmd).Logger()
	logger.Debug().Strs("args", a).Msg("running")

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "login":
		return doLogin(opt)

	case "ls":
		return doList(opt)

	case "stats":
		return doStats(opt)

	case "filter":
		if len(a) != 1 {
			ui.Fail(opt.Err, "usage: menu filter <all|starter|main|dessert>")
			return 2
		}
		sel, err := model.ParseSelector(a[0])
		if err != nil {
			ui.Fail(opt.Err, "filter: "+err.Error())
			return 2
		}
		return doFilter(opt, sel)

	case "add":
		if len(a) != 4 {
			ui.Fail(opt.Err, "usage: menu add <name> <description> <course> <price>")
			return 2
		}
		return doAdd(opt, model.Draft{Name: a[0], Description: a[1], Course: a[2], Price: a[3]})

	case "rm":
		if len(a) != 1 {
			ui.Fail(opt.Err, "usage: menu rm <id>")
			return 2
		}
		return doRemove(opt, a[0])

	case "reset":
		if len(a) != 1 || a[0] != "--yes" {
			ui.Fail(opt.Err, "reset clears every dish; confirm with: menu reset --yes")
			return 2
		}
		return doReset(opt)

	case "export":
		return doExport(opt)
	}

	ui.Fail(opt.Err, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprintf(w, `menu - Christoffel's menu

Usage:
  menu [flags] <subcommand> [args]

Subcommands:
  login                                   Interactive session (login, menu, add, remove, filter, help)
  ls                                      Show the menu grouped by course, with statistics
  stats                                   Show item count and average prices
  filter <all|starter|main|dessert>       Show only one course
  add <name> <description> <course> <price>   Add a dish (chef only)
  rm <id>                                 Remove a dish by id (chef only)
  reset --yes                             Clear every dish (chef only)
  export                                  Print the snapshot after validation

Commands that change the menu print the updated snapshot to stdout (or to
the -out file) so the next command can pick it up with -snapshot.

Examples:
  menu -role christoffel add "Soup" "Hot" Starter 45.00 > menu.json
  menu -snapshot menu.json ls
  menu -snapshot menu.json filter main
  menu -role christoffel -snapshot menu.json -out menu.json rm <id>
`)
}

// -------------- subcommand impls ----------------

// open resumes a session from the snapshot named in opt.
func open(opt Options) (*session.Session, int) {
	carried, err := snapshot.Load(opt.Snapshot, opt.In)
	if err != nil {
		ui.Fail(opt.Err, "load: "+err.Error())
		return nil, 1
	}
	s, err := session.Login(opt.Role, carried,
		session.WithLogger(opt.Logger),
		session.WithRegistryOptions(menu.WithImportPolicy(opt.Policy)),
	)
	if err != nil {
		msg := err.Error()
		if errors.Is(err, menu.ErrPartialImport) {
			msg += " (snapshot left unchanged)"
		}
		ui.Fail(opt.Err, msg)
		return nil, 2
	}
	if w := s.ImportWarning(); w != nil {
		ui.Warn(opt.Err, w.Error())
	}
	return s, 0
}

// mutate opens a session, checks the role may perform a, runs fn against the
// registry and hands the resulting snapshot to stdout.
func mutate(opt Options, a session.Action, fn func(*menu.Registry) (string, int)) int {
	s, code := open(opt)
	if s == nil {
		return code
	}
	if err := s.Authorize(a); err != nil {
		ui.Fail(opt.Err, err.Error())
		return 2
	}
	reg, err := s.Registry()
	if err != nil {
		ui.Fail(opt.Err, err.Error())
		return 1
	}
	msg, code := fn(reg)
	if code != 0 {
		return code
	}
	out, err := s.Logout()
	if err != nil {
		ui.Fail(opt.Err, "save: "+err.Error())
		return 1
	}
	if err := handOff(opt, out); err != nil {
		ui.Fail(opt.Err, "write: "+err.Error())
		return 1
	}
	ui.OK(opt.Err, msg)
	return 0
}

// menuOf reads the dishes of an open session.
func menuOf(opt Options, s *session.Session) ([]model.Dish, bool) {
	reg, err := s.Registry()
	if err != nil {
		ui.Fail(opt.Err, err.Error())
		return nil, false
	}
	return reg.Dishes(), true
}

func doLogin(opt Options) int {
	carried, err := snapshot.Load(opt.Snapshot, opt.In)
	if err != nil {
		ui.Fail(opt.Err, "load: "+err.Error())
		return 1
	}
	role, err := model.ParseRole(opt.Role)
	if err != nil {
		ui.Fail(opt.Err, err.Error())
		return 2
	}
	final, err := opt.runTUI(tui.Options{
		Role:     role,
		Snapshot: carried,
		Logger:   opt.Logger,
		Registry: []menu.Option{menu.WithImportPolicy(opt.Policy)},
	})
	if err != nil {
		ui.Fail(opt.Err, "tui: "+err.Error())
		return 1
	}
	if opt.Handoff || opt.Output != "" {
		if err := handOff(opt, final); err != nil {
			ui.Fail(opt.Err, "write: "+err.Error())
			return 1
		}
	}
	return 0
}

func doList(opt Options) int {
	s, code := open(opt)
	if s == nil {
		return code
	}
	dishes, ok := menuOf(opt, s)
	if !ok {
		return 1
	}

	lines := []string{
		ui.C(ui.Current().Title, "Christoffel's Menu"),
		ui.C(ui.Current().Muted, "Logged in as: "+s.Role().Label()),
		"",
	}
	lines = append(lines, menuLines(dishes)...)
	lines = append(lines, "")
	lines = append(lines, statsLines(menu.ComputeStatistics(dishes))...)
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Muted, "Tip: add with `menu -role christoffel add \"Soup\" \"Hot\" Starter 45`"))
	ui.Panel(opt.Out, lines)
	return 0
}

func doStats(opt Options) int {
	s, code := open(opt)
	if s == nil {
		return code
	}
	dishes, ok := menuOf(opt, s)
	if !ok {
		return 1
	}
	ui.Panel(opt.Out, statsLines(menu.ComputeStatistics(dishes)))
	return 0
}

func doFilter(opt Options, sel model.Selector) int {
	s, code := open(opt)
	if s == nil {
		return code
	}
	dishes, ok := menuOf(opt, s)
	if !ok {
		return 1
	}
	filtered := menu.FilterByCourse(dishes, sel)

	lines := []string{
		fmt.Sprintf("%s  %s %d of %d",
			ui.C(ui.Current().Title, "Filter: "+string(sel)),
			ui.C(ui.Current().Accent, "showing"), len(filtered), len(dishes)),
		"",
	}
	if len(filtered) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, "No dishes found for this course."))
	} else {
		lines = append(lines, dishLines(filtered)...)
	}
	ui.Panel(opt.Out, lines)
	return 0
}

func doAdd(opt Options, d model.Draft) int {
	return mutate(opt, session.ActionAdd, func(reg *menu.Registry) (string, int) {
		dish, err := reg.Append(d)
		if err != nil {
			var ierr *menu.InvalidInputError
			if errors.As(err, &ierr) && ierr.Missing() {
				ui.Fail(opt.Err, "add: please fill in all fields ("+ierr.Error()+")")
			} else {
				ui.Fail(opt.Err, "add: "+err.Error())
			}
			return "", 2
		}
		return fmt.Sprintf("added %s (%s)", dish.Name, dish.ID), 0
	})
}

func doRemove(opt Options, id string) int {
	return mutate(opt, session.ActionRemove, func(reg *menu.Registry) (string, int) {
		if !reg.Remove(strings.TrimSpace(id)) {
			ui.Warn(opt.Err, "no dish with id "+id)
			return "nothing removed", 0
		}
		return "removed", 0
	})
}

func doReset(opt Options) int {
	return mutate(opt, session.ActionReset, func(reg *menu.Registry) (string, int) {
		n := reg.Len()
		reg.Clear()
		return fmt.Sprintf("cleared %d dish(es)", n), 0
	})
}

func doExport(opt Options) int {
	s, code := open(opt)
	if s == nil {
		return code
	}
	out, err := s.Logout()
	if err != nil {
		ui.Fail(opt.Err, "export: "+err.Error())
		return 1
	}
	if err := handOff(opt, out); err != nil {
		ui.Fail(opt.Err, "write: "+err.Error())
		return 1
	}
	return 0
}

// handOff passes a snapshot on to the next command, via -out or stdout.
func handOff(opt Options, b []byte) error {
	if opt.Output != "" {
		return snapshot.Save(opt.Output, b)
	}
	_, err := opt.Out.Write(append(b, '\n'))
	return err
}
