package cli

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeascii/internal/config"
	"github.com/SeamusWaldron/cubeascii/internal/cube"
	"github.com/SeamusWaldron/cubeascii/internal/game"
	"github.com/SeamusWaldron/cubeascii/internal/logging"
	"github.com/SeamusWaldron/cubeascii/internal/recorder"
	"github.com/SeamusWaldron/cubeascii/internal/render"
	"github.com/SeamusWaldron/cubeascii/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube (default command)",
	Long: `Start the interactive cube.

Keyboard shortcuts:
  arrows      - Orbit the camera
  q / e       - Roll the view
  + / -       - Zoom in / out
  u d f b r l - Turn a face clockwise (uppercase: counter-clockwise)
  '           - Next turn is counter-clockwise
  2           - Next turn is a half turn
  space       - Scramble
  x           - Reset to solved
  Esc         - Quit`,
	RunE: runPlay,
}

var (
	playSeed    uint64
	playInertia bool
	playFPS     int
	playColor   string
)

func init() {
	addPlayFlags(playCmd)
	rootCmd.AddCommand(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Uint64Var(&playSeed, "seed", 0, "Scramble seed (default: random)")
	cmd.Flags().BoolVar(&playInertia, "inertia", false, "Let the camera glide after each key")
	cmd.Flags().IntVar(&playFPS, "fps", 0, "Frames per second (default from config)")
	cmd.Flags().StringVar(&playColor, "color", "", "Color profile: auto, truecolor, 256, 16, none")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// statusHeight is the number of rows below the cube.
const statusHeight = 1

type tickMsg time.Time

type playModel struct {
	game    *game.Game
	keymap  *game.Keymap
	palette render.Palette
	fps     int

	width    int
	height   int
	lastCmd  string
	quitting bool
}

func newPlayModel(g *game.Game, cfg config.Config, palette render.Palette) *playModel {
	return &playModel{
		game:    g,
		keymap:  game.NewKeymap(cfg),
		palette: palette,
		fps:     cfg.FPS,
	}
}

func (m *playModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, ok := m.keymap.Map(msg.String())
		if !ok {
			return m, nil
		}
		if !m.game.Dispatch(cmd) {
			m.quitting = true
			return m, tea.Quit
		}
		if cmd.Kind == game.KindTwist || cmd.Kind == game.KindScramble || cmd.Kind == game.KindReset {
			m.lastCmd = cmd.String()
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.game.Tick()
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return ""
	}

	vp := render.Viewport{Width: m.width, Height: max(m.height-statusHeight, 0)}
	frame := m.game.Render(vp)

	var b strings.Builder
	b.WriteString(frame.Serialize(m.palette))
	if frame.Height() > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(m.statusLine())
	return b.String()
}

func (m *playModel) statusLine() string {
	parts := []string{titleStyle.Render("cubeascii")}

	if m.game.Cube().IsSolved() {
		parts = append(parts, solvedStyle.Render("solved"))
	} else {
		parts = append(parts, statusStyle.Render("scrambled"))
	}
	parts = append(parts, statusStyle.Render(fmt.Sprintf("turns %d", m.game.Twists())))

	if m.lastCmd != "" {
		parts = append(parts, moveStyle.Render(m.lastCmd))
	}
	if prime, double := m.keymap.Pending(); prime || double {
		armed := "'"
		if double {
			armed = "2"
		}
		parts = append(parts, moveStyle.Render("next: "+armed))
	}
	if err := m.game.JournalErr(); err != nil {
		parts = append(parts, errorStyle.Render("history: "+err.Error()))
	}
	parts = append(parts, helpStyle.Render("arrows/aws orbit · udfbrl turn · space scramble · x reset · esc quit"))

	line := strings.Join(parts, "  ")
	if m.width > 0 {
		line = lipgloss.NewStyle().MaxWidth(m.width).Render(line)
	}
	return line
}

// startJournal opens a session for seed. The state file is optional.
func startJournal(db *storage.DB, seed uint64) (*recorder.Journal, error) {
	stateFile, err := recorder.NewDefaultStateFile()
	if err != nil {
		logging.Logger().Warn("state file unavailable", "error", err)
		stateFile = nil
	}
	j := recorder.NewJournal(db, stateFile)
	if _, err := j.Start(seed); err != nil {
		return nil, err
	}
	return j, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("inertia") {
		cfg.Inertia = playInertia
	}
	if playFPS > 0 {
		cfg.FPS = playFPS
	}
	if playColor != "" {
		cfg.ColorProfile = playColor
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	profile, _ := render.ParseProfile(cfg.ColorProfile)

	seed := playSeed
	if seed == 0 {
		seed = rand.Uint64()
	}
	opts := []game.Option{game.WithSeed(seed)}

	var journal *recorder.Journal
	if cfg.History {
		if db, err := openDB(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
		} else {
			defer db.Close()
			journal, err = startJournal(db, seed)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: history disabled: %v\n", err)
			} else {
				opts = append(opts, game.WithJournal(journal))
			}
		}
	}

	g := game.New(cube.NewTable(), cfg, opts...)

	p := tea.NewProgram(newPlayModel(g, cfg, render.NewPalette(profile)), tea.WithAltScreen())
	_, runErr := p.Run()

	if journal != nil {
		if err := journal.End(g.Cube().IsSolved()); err != nil {
			logging.Logger().Warn("session not closed", "error", err)
		}
	}
	if runErr != nil {
		return fmt.Errorf("TUI error: %w", runErr)
	}
	return nil
}
