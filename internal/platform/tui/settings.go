package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// ColorPreset is a named snake color offered in settings.
type ColorPreset struct {
	Name  string
	Color core.RGB
}

// ColorPresets lists the selectable snake colors.
var ColorPresets = []ColorPreset{
	{"Green", core.ColorSnakeDefault},
	{"Cyan", core.MustParseHex("#00d7ff")},
	{"Orange", core.MustParseHex("#ff8700")},
	{"Magenta", core.MustParseHex("#ff00d7")},
	{"Yellow", core.MustParseHex("#ffff00")},
	{"White", core.ColorWhite},
}

// SettingsKeyMap defines the key bindings for the settings overlay.
type SettingsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Close  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SettingsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Select, k.Close}
}

// FullHelp returns key bindings for the full help view.
func (k SettingsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Close},
	}
}

// DefaultSettingsKeyMap returns default key bindings.
func DefaultSettingsKeyMap() SettingsKeyMap {
	return SettingsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up", "prev"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left", "change"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right", "change"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "apply"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

const (
	settingsDifficulty = iota
	settingsColor
	settingsRestart
	settingsClose
	settingsCount
)

// SettingsModel is the settings overlay shown while the game is paused.
// Update returns engine commands instead of touching the game directly.
type SettingsModel struct {
	keys       SettingsKeyMap
	help       help.Model
	cursor     int
	difficulty int // Index into config.Difficulties
	color      int // Index into ColorPresets
}

// NewSettingsModel opens the overlay on the current selections.
func NewSettingsModel(d config.Difficulty, c core.RGB) SettingsModel {
	m := SettingsModel{
		keys: DefaultSettingsKeyMap(),
		help: help.New(),
	}
	for i, v := range config.Difficulties {
		if v == d {
			m.difficulty = i
		}
	}
	for i, p := range ColorPresets {
		if p.Color == c {
			m.color = i
		}
	}
	return m
}

// Difficulty returns the highlighted difficulty.
func (m SettingsModel) Difficulty() config.Difficulty {
	return config.Difficulties[m.difficulty]
}

// Color returns the highlighted color preset.
func (m SettingsModel) Color() ColorPreset {
	return ColorPresets[m.color]
}

// Update handles a key and returns the commands to send to the engine.
func (m SettingsModel) Update(msg tea.KeyMsg) (SettingsModel, []snake.Command) {
	switch {
	case key.Matches(msg, m.keys.Close):
		return m, []snake.Command{snake.ToggleSettings()}

	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + settingsCount - 1) % settingsCount

	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % settingsCount

	case key.Matches(msg, m.keys.Left):
		m.cycle(-1)

	case key.Matches(msg, m.keys.Right):
		m.cycle(1)

	case key.Matches(msg, m.keys.Select):
		switch m.cursor {
		case settingsDifficulty:
			return m, []snake.Command{snake.SetDifficultyPreset(m.Difficulty())}
		case settingsColor:
			return m, []snake.Command{snake.SetColor(m.Color().Color)}
		case settingsRestart:
			return m, []snake.Command{snake.Restart()}
		case settingsClose:
			return m, []snake.Command{snake.ToggleSettings()}
		}
	}
	return m, nil
}

func (m *SettingsModel) cycle(step int) {
	switch m.cursor {
	case settingsDifficulty:
		n := len(config.Difficulties)
		m.difficulty = (m.difficulty + n + step) % n
	case settingsColor:
		n := len(ColorPresets)
		m.color = (m.color + n + step) % n
	}
}

// View renders the overlay box.
func (m SettingsModel) View() string {
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(m.Color().Color.Hex())).Render("██")

	lines := []string{
		fmt.Sprintf("Difficulty   < %-6s >", m.Difficulty().Title()),
		fmt.Sprintf("Snake color  < %-7s > %s", m.Color().Name, swatch),
		"Restart",
		"Close",
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("SETTINGS"))
	b.WriteString("\n\n")
	for i, line := range lines {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = style.Bold(true).Foreground(lipgloss.Color("229"))
		}
		b.WriteString(style.Render(cursor + line))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(1, 2).
		Render(b.String())
}
