package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// GameKeyMap lists the bindings shown in the game footer.
type GameKeyMap struct {
	Move     key.Binding
	Restart  key.Binding
	Settings key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Restart, k.Settings, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultGameKeyMap returns the footer bindings. Keys are matched by KeyMapper.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Move:     key.NewBinding(key.WithKeys("w", "a", "s", "d"), key.WithHelp("wasd/arrows", "move")),
		Restart:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "retry")),
		Settings: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "settings")),
		Back:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "menu")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// ModelOptions configures a Model.
type ModelOptions struct {
	Game     snake.Options // Renderer and ScoreSink are replaced by the model's panel
	Store    *storage.Store
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Now      func() time.Time // Clock for key input; defaults to time.Now
	Menu     bool             // Offer "back to menu" after game over
	Embedded bool             // Hosted by SessionModel; leaving the game does not end the program
}

// Model is the Bubble Tea model for one snake game.
type Model struct {
	game      *snake.Game
	panel     *Panel
	screen    *core.Screen
	store     *storage.Store
	log       *log.Logger
	keyMapper *KeyMapper
	keys      GameKeyMap
	help      help.Model
	settings  SettingsModel
	config    core.RuntimeConfig
	now       func() time.Time
	menu      bool
	embedded  bool

	generation uint64
	scoreSaved bool // Whether the score of the current session was recorded
	quitting   bool
	backToMenu bool
}

// NewModel creates the game and the model driving it.
func NewModel(opts ModelOptions) (Model, error) {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	panel := NewPanel()
	gameOpts := opts.Game
	gameOpts.Renderer = panel
	gameOpts.ScoreSink = panel
	if gameOpts.Seed == 0 {
		gameOpts.Seed = cfg.Seed
	}
	if gameOpts.Logger == nil {
		gameOpts.Logger = logger
	}

	game, err := snake.New(gameOpts)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:      game,
		panel:     panel,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:     opts.Store,
		log:       logger,
		keyMapper: NewKeyMapper(),
		keys:      DefaultGameKeyMap(),
		help:      h,
		config:    cfg,
		now:       now,
		menu:      opts.Menu,
		embedded:  opts.Embedded,
	}, nil
}

// Game exposes the engine, mainly for tests.
func (m Model) Game() *snake.Game { return m.game }

// Init starts the first session and the frame tick.
func (m Model) Init() tea.Cmd {
	m.game.Start(m.now())
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.game.Advance(time.Time(msg))
		m.recordScore()
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		m.game.Stop()
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	now := m.now()

	if m.game.Paused() {
		var cmds []snake.Command
		m.settings, cmds = m.settings.Update(msg)
		for _, cmd := range cmds {
			m.game.Handle(cmd, now)
		}
		m.recordScore()
		return m, nil
	}

	action, _ := m.keyMapper.MapKey(msg)
	switch action {
	case core.ActionSettings:
		snap := m.game.Snapshot()
		m.settings = NewSettingsModel(snap.Difficulty, snap.PreferredColor)
	case core.ActionRestart:
		if m.game.State() != snake.StateGameOver {
			return m, nil
		}
	case core.ActionBack:
		if m.menu && m.game.State() == snake.StateGameOver {
			m.backToMenu = true
			m.game.Stop()
			if m.embedded {
				return m, nil
			}
			return m, tea.Quit
		}
		return m, nil
	}

	if cmd, ok := snake.CommandForAction(action); ok {
		m.game.Handle(cmd, now)
		m.recordScore()
	}
	return m, nil
}

// recordScore saves a finished session to the scoreboard exactly once.
func (m *Model) recordScore() {
	snap := m.panel.Snapshot
	if snap.Generation != m.generation {
		m.generation = snap.Generation
		m.scoreSaved = false
	}
	if !snap.GameOver() || m.scoreSaved {
		return
	}
	m.scoreSaved = true
	if m.store == nil || snap.Score == 0 {
		return
	}

	entry := storage.ScoreEntry{
		Variant:    snap.Variant,
		Difficulty: string(snap.Difficulty),
		Score:      snap.Score,
		Length:     len(snap.Snake),
	}
	if _, err := m.store.SaveScore(entry); err != nil {
		m.log.Error("failed to save score", "variant", snap.Variant, "score", snap.Score, "err", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() {
	DrawGame(m.screen, m.panel.Snapshot, m.panel)

	home, err := os.UserHomeDir()
	if err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.Variant(), time.Now().Format("20060102_150405"))
	if err := os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot failed", "err", err)
	}
}

// View renders the board, the settings overlay when paused, and the footer.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	helpLine := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys))

	if m.panel.Snapshot.Paused {
		box := lipgloss.Place(m.config.ScreenW, max(m.config.ScreenH-1, 1),
			lipgloss.Center, lipgloss.Center, m.settings.View())
		return box + "\n" + helpLine
	}

	DrawGame(m.screen, m.panel.Snapshot, m.panel)
	return RenderScreen(m.screen) + "\n" + helpLine
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool { return m.quitting }

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool { return m.backToMenu }

// GameResult reports how a game screen was left.
type GameResult struct {
	BackToMenu bool
	Difficulty config.Difficulty // Difficulty selected when the game was left
	Config     core.RuntimeConfig
}

// Run starts the Bubble Tea program for one game.
func Run(opts ModelOptions) (GameResult, error) {
	model, err := NewModel(opts)
	if err != nil {
		return GameResult{Config: opts.Runtime}, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return GameResult{Config: opts.Runtime}, err
	}

	m, ok := final.(Model)
	if !ok {
		return GameResult{Config: opts.Runtime}, nil
	}
	return GameResult{
		BackToMenu: m.backToMenu,
		Difficulty: m.game.Difficulty(),
		Config:     m.config,
	}, nil
}
