package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/menu/internal/menu"
	"github.com/Makepad-fr/menu/internal/model"
	"github.com/Makepad-fr/menu/internal/session"
	"github.com/Makepad-fr/menu/internal/snapshot"
	"github.com/Makepad-fr/menu/internal/tui"
	"github.com/Makepad-fr/menu/internal/ui"
)

func TestMain(m *testing.M) {
	ui.SetColorForcing(false, true)
	os.Exit(m.Run())
}

type result struct {
	code     int
	out, err string
}

func run(t *testing.T, opt Options, args ...string) result {
	t.Helper()
	var out, errb bytes.Buffer
	opt.Out, opt.Err = &out, &errb
	if opt.In == nil {
		opt.In = strings.NewReader("")
	}
	code := Run(args, opt)
	return result{code: code, out: out.String(), err: errb.String()}
}

func writeSnapshot(t *testing.T, dishes []model.Dish) string {
	t.Helper()
	b, err := snapshot.Encode(dishes)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}

var sample = []model.Dish{
	{ID: "s1", Name: "Soup", Description: "Hot", Course: model.Starter, Price: 45},
	{ID: "m1", Name: "Steak", Description: "Rare", Course: model.Main, Price: 120},
	{ID: "s2", Name: "Salad", Description: "Cold", Course: model.Starter, Price: 55},
}

func decode(t *testing.T, s string) []model.Dish {
	t.Helper()
	d, err := snapshot.Decode([]byte(s))
	require.NoError(t, err)
	return d
}

func TestRun_Usage(t *testing.T) {
	res := run(t, Options{})
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.err, "Usage:")

	res = run(t, Options{}, "help")
	assert.Equal(t, 0, res.code)
	assert.Contains(t, res.out, "Subcommands:")

	res = run(t, Options{}, "bake")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.err, "unknown subcommand: bake")
}

func TestRun_Add(t *testing.T) {
	res := run(t, Options{Role: "christoffel"}, "add", "Soup", "Hot", "Starter", "45.00")
	require.Equal(t, 0, res.code, res.err)
	assert.Contains(t, res.err, "added Soup")

	dishes := decode(t, res.out)
	require.Len(t, dishes, 1)
	assert.Equal(t, "Soup", dishes[0].Name)
	assert.Equal(t, model.Starter, dishes[0].Course)
	assert.Equal(t, 45.0, dishes[0].Price)
	assert.NotEmpty(t, dishes[0].ID)
}

func TestRun_Add_AppendsToSnapshot(t *testing.T) {
	path := writeSnapshot(t, sample)
	res := run(t, Options{Role: "christoffel", Snapshot: path}, "add", "Tart", "Sweet", "dessert", "30")
	require.Equal(t, 0, res.code, res.err)

	dishes := decode(t, res.out)
	require.Len(t, dishes, 4)
	assert.Equal(t, sample, dishes[:3])
	assert.Equal(t, model.Dessert, dishes[3].Course)
}

func TestRun_Add_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		args    []string
		errText string
	}{
		{name: "User may not add", role: "user", args: []string{"Soup", "Hot", "Starter", "45"}, errText: "only Christoffel"},
		{name: "Negative price", role: "christoffel", args: []string{"Soup", "Hot", "Starter", "-5"}, errText: "price must be a number greater than zero"},
		{name: "Unknown course", role: "christoffel", args: []string{"Soup", "Hot", "Snack", "5"}, errText: "course must be Starter, Main or Dessert"},
		{name: "Empty description", role: "christoffel", args: []string{"Soup", "", "Starter", "5"}, errText: "please fill in all fields"},
		{name: "Wrong arity", role: "christoffel", args: []string{"Soup"}, errText: "usage: menu add"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, Options{Role: tt.role}, append([]string{"add"}, tt.args...)...)
			assert.Equal(t, 2, res.code)
			assert.Contains(t, res.err, tt.errText)
			assert.Empty(t, res.out, "no snapshot is handed off")
		})
	}
}

func TestRun_Remove(t *testing.T) {
	path := writeSnapshot(t, sample)

	res := run(t, Options{Role: "christoffel", Snapshot: path}, "rm", "m1")
	require.Equal(t, 0, res.code, res.err)
	assert.Equal(t, []model.Dish{sample[0], sample[2]}, decode(t, res.out))

	res = run(t, Options{Role: "christoffel", Snapshot: path}, "rm", "nope")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.err, "no dish with id nope")
	assert.Equal(t, sample, decode(t, res.out))

	res = run(t, Options{Role: "user", Snapshot: path}, "rm", "m1")
	assert.Equal(t, 2, res.code)
}

func TestRun_Reset(t *testing.T) {
	path := writeSnapshot(t, sample)

	res := run(t, Options{Role: "christoffel", Snapshot: path}, "reset")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.err, "--yes")

	res = run(t, Options{Role: "christoffel", Snapshot: path}, "reset", "--yes")
	require.Equal(t, 0, res.code, res.err)
	assert.Empty(t, decode(t, res.out))
	assert.Contains(t, res.err, "cleared 3 dish(es)")
}

func TestRun_List(t *testing.T) {
	path := writeSnapshot(t, sample)

	res := run(t, Options{Snapshot: path}, "ls")
	require.Equal(t, 0, res.code, res.err)
	assert.Contains(t, res.out, "Logged in as: User")
	assert.Contains(t, res.out, "Soup")
	assert.Contains(t, res.out, "R 120.00")
	assert.Contains(t, res.out, "Total Items: 3")
	assert.Contains(t, res.out, "Overall Avg. Price: R 73.33")

	// Starter appears first, and both starters sit in its section.
	starter := strings.Index(res.out, "Starter")
	mainIdx := strings.Index(res.out, "Main")
	salad := strings.Index(res.out, "Salad")
	require.True(t, starter >= 0 && mainIdx >= 0 && salad >= 0)
	assert.Less(t, starter, salad)
	assert.Less(t, salad, mainIdx)
}

func TestRun_List_Empty(t *testing.T) {
	res := run(t, Options{}, "ls")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.out, "No dishes yet. Add a dish to get started.")
	assert.Contains(t, res.out, "Overall Avg. Price: R 0.00")
}

func TestRun_Stats(t *testing.T) {
	path := writeSnapshot(t, sample)
	res := run(t, Options{Snapshot: path}, "stats")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.out, "R 50.00")
	assert.Contains(t, res.out, "R 120.00")
	assert.NotContains(t, res.out, "Dessert")
}

func TestRun_Filter(t *testing.T) {
	path := writeSnapshot(t, sample)

	res := run(t, Options{Snapshot: path}, "filter", "main")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.out, "Steak")
	assert.NotContains(t, res.out, "Soup")
	assert.Contains(t, res.out, "1 of 3")

	res = run(t, Options{Snapshot: path}, "filter", "dessert")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.out, "No dishes found for this course.")

	res = run(t, Options{Snapshot: path}, "filter", "brunch")
	assert.Equal(t, 2, res.code)
}

func TestRun_SnapshotFromStdin(t *testing.T) {
	b, err := snapshot.Encode(sample)
	require.NoError(t, err)

	res := run(t, Options{Snapshot: "-", In: bytes.NewReader(b)}, "filter", "starter")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.out, "Salad")
}

func TestRun_PartialImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"id":"1","name":"Soup","description":"Hot","course":"starter","price":45},
		{"id":"2","name":"Chips","description":"","course":"Snack","price":10}
	]`), 0o644))

	res := run(t, Options{Snapshot: path}, "export")
	require.Equal(t, 0, res.code)
	assert.Contains(t, res.err, "dropped 1")
	dishes := decode(t, res.out)
	require.Len(t, dishes, 1)
	assert.Equal(t, model.Starter, dishes[0].Course)

	res = run(t, Options{Snapshot: path, Policy: menu.RejectAll}, "export")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.err, "snapshot rejected")
	assert.Empty(t, res.out)
}

func TestRun_RejectedSnapshotIsKept(t *testing.T) {
	withBadRow := append(append([]model.Dish{}, sample...),
		model.Dish{ID: "x1", Name: "Chips", Description: "Salty", Course: "Snack", Price: 10})
	path := writeSnapshot(t, withBadRow)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	tests := []struct {
		name string
		args []string
	}{
		{name: "Add", args: []string{"add", "Tart", "Sweet", "Dessert", "30"}},
		{name: "Remove", args: []string{"rm", "s1"}},
		{name: "Reset", args: []string{"reset", "--yes"}},
		{name: "Export", args: []string{"export"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := run(t, Options{Role: "christoffel", Snapshot: path, Output: path, Policy: menu.RejectAll}, tt.args...)
			assert.Equal(t, 2, res.code)
			assert.Contains(t, res.err, "snapshot left unchanged")
			assert.NotContains(t, res.err, "✔")
			assert.Empty(t, res.out)

			after, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, before, after)
		})
	}
}

func TestRun_MalformedSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{`), 0o644))

	res := run(t, Options{Snapshot: path}, "ls")
	assert.Equal(t, 2, res.code)
	assert.Contains(t, res.err, "snapshot")
}

func TestRun_Login(t *testing.T) {
	path := writeSnapshot(t, sample)
	var got tui.Options
	stub := func(o tui.Options) ([]byte, error) {
		got = o
		return []byte(`[]`), nil
	}

	res := run(t, Options{Role: "christoffel", Snapshot: path, Handoff: true, runTUI: stub}, "login")
	require.Equal(t, 0, res.code, res.err)
	assert.Equal(t, model.RoleChef, got.Role)
	assert.Equal(t, sample, decode(t, string(got.Snapshot)))
	assert.Equal(t, "[]\n", res.out)

	res = run(t, Options{runTUI: stub}, "login")
	require.Equal(t, 0, res.code)
	assert.Empty(t, res.out, "no hand-off unless asked")

	failing := func(tui.Options) ([]byte, error) { return nil, errors.New("no tty") }
	res = run(t, Options{runTUI: failing}, "login")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.err, "tui: no tty")
}

func TestRun_OutputFile(t *testing.T) {
	path := writeSnapshot(t, sample)

	res := run(t, Options{Role: "christoffel", Snapshot: path, Output: path}, "rm", "s1")
	require.Equal(t, 0, res.code, res.err)
	assert.Empty(t, res.out)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []model.Dish{sample[1], sample[2]}, decode(t, string(raw)))

	res = run(t, Options{Snapshot: path}, "ls")
	require.Equal(t, 0, res.code)
	assert.NotContains(t, res.out, "Soup")
	assert.Contains(t, res.out, "Total Items: 2")
}

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestStatsLines_AlignedWithColor(t *testing.T) {
	ui.SetColorForcing(true, false)
	t.Cleanup(func() { ui.SetColorForcing(false, true) })

	st := menu.ComputeStatistics([]model.Dish{
		{ID: "1", Name: "Soup", Course: model.Starter, Price: 45},
		{ID: "2", Name: "Pie", Course: model.Dessert, Price: 30},
		{ID: "3", Name: "Steak", Course: model.Main, Price: 120},
	})
	lines := statsLines(st)
	perCourse := lines[len(lines)-3:]
	require.Contains(t, perCourse[0], "\x1b[", "colour is on")

	col := -1
	for _, ln := range perCourse {
		plain := ansiEscape.ReplaceAllString(ln, "")
		i := strings.Index(plain, "R ")
		require.GreaterOrEqual(t, i, 0)
		if col < 0 {
			col = i
		}
		assert.Equal(t, col, i, plain)
	}
	assert.Equal(t, 9, col)
}

func TestMenuOf_ClosedSession(t *testing.T) {
	s, err := session.Login("user", nil)
	require.NoError(t, err)

	var errb bytes.Buffer
	opt := Options{Err: &errb}
	dishes, ok := menuOf(opt, s)
	require.True(t, ok)
	assert.Empty(t, dishes)

	_, err = s.Logout()
	require.NoError(t, err)
	dishes, ok = menuOf(opt, s)
	assert.False(t, ok)
	assert.Nil(t, dishes)
	assert.Contains(t, errb.String(), "session has ended")
}
