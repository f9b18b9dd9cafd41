package cli

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/SeamusWaldron/cubeascii/internal/config"
	"github.com/SeamusWaldron/cubeascii/internal/cube"
	"github.com/SeamusWaldron/cubeascii/internal/game"
	"github.com/SeamusWaldron/cubeascii/internal/recorder"
	"github.com/SeamusWaldron/cubeascii/internal/render"
	"github.com/SeamusWaldron/cubeascii/internal/storage"
)

// runCLI executes the command tree with a private home directory.
func runCLI(t *testing.T, args ...string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("%v failed: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func TestRenderCommand(t *testing.T) {
	out := runCLI(t, "render", "--width", "24", "--height", "8", "--color", "none",
		"--moves", "R U", "--scramble", "0", "--seed", "1")

	if strings.Contains(out, "\x1b") {
		t.Error("--color none should not emit escapes")
	}
	rows := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(rows) != 8 {
		t.Fatalf("got %d rows, want 8:\n%s", len(rows), out)
	}
	for i, row := range rows {
		if len([]rune(row)) != 24 {
			t.Errorf("row %d has width %d", i, len([]rune(row)))
		}
	}
}

func TestScrambleCommand(t *testing.T) {
	out := runCLI(t, "scramble", "--length", "6", "--seed", "3")
	if !strings.Contains(out, "Seed:     3") {
		t.Errorf("seed not printed:\n%s", out)
	}

	var line string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "Scramble: ") {
			line = strings.TrimPrefix(l, "Scramble: ")
		}
	}
	moves, err := cube.ParseSequence(line)
	if err != nil || len(moves) != 6 {
		t.Errorf("scramble %q: %d moves, %v", line, len(moves), err)
	}

	again := runCLI(t, "scramble", "--length", "6", "--seed", "3")
	if again != out {
		t.Error("same seed should print the same scramble")
	}
}

func TestHistoryCommands(t *testing.T) {
	dbFile := filepath.Join(t.TempDir(), "history.db")
	db, err := storage.Open(dbFile)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	j := recorder.NewJournal(db, nil)
	id, err := j.Start(11)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	j.Record(game.EventMove, "F2")
	j.End(false)
	db.Close()

	out := runCLI(t, "history", "--db", dbFile)
	if !strings.Contains(out, id) {
		t.Errorf("history does not list %s:\n%s", id, out)
	}

	out = runCLI(t, "history", "show", "last", "--db", dbFile)
	if !strings.Contains(out, "F2") || !strings.Contains(out, "Seed:     11") {
		t.Errorf("history show last:\n%s", out)
	}
}

func TestJournaledSeedReplays(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	const seed = uint64(1<<63 + 12345)

	dbFile := filepath.Join(t.TempDir(), "history.db")
	db, err := storage.Open(dbFile)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	j, err := startJournal(db, seed)
	if err != nil {
		t.Fatalf("startJournal failed: %v", err)
	}
	j.End(false)
	db.Close()

	out := runCLI(t, "history", "show", "last", "--db", dbFile)
	var printed string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "Seed:") {
			printed = strings.TrimSpace(strings.TrimPrefix(l, "Seed:"))
		}
	}
	if printed != strconv.FormatUint(seed, 10) {
		t.Fatalf("history printed seed %q, want %d", printed, seed)
	}

	frame := runCLI(t, "render", "--seed", printed, "--scramble", "5", "--moves", "",
		"--width", "20", "--height", "10", "--color", "none")

	cfg := config.Default()
	cfg.ScrambleLength = 5
	g := game.New(cube.NewTable(), cfg, game.WithSeed(seed))
	g.Dispatch(game.Scramble())
	want := g.Render(render.Viewport{Width: 20, Height: 10}).String() + "\n"
	if frame != want {
		t.Errorf("render --seed %s does not replay the journaled scramble", printed)
	}
}

func newTestModel() *playModel {
	cfg := config.Default()
	g := game.New(cube.NewTable(), cfg, game.WithSeed(1))
	return newPlayModel(g, cfg, render.NewPalette(termenv.Ascii))
}

func TestPlayModelKeys(t *testing.T) {
	m := newTestModel()
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 16})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	if m.game.Twists() != 1 || m.game.Cube().IsSolved() {
		t.Error("r should turn the R face")
	}
	view := m.View()
	if rows := strings.Count(view, "\n"); rows != 15 {
		t.Errorf("view has %d line breaks, want 15", rows)
	}
	if !strings.Contains(view, "turns 1") || !strings.Contains(view, "twist R") {
		t.Errorf("status line missing:\n%s", view)
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || !m.quitting {
		t.Error("esc should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestPlayModelTickReschedules(t *testing.T) {
	m := newTestModel()
	if _, cmd := m.Update(tickMsg{}); cmd == nil {
		t.Error("tick should schedule the next tick")
	}
}
