package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Panel is the engine's Renderer and ScoreSink for one terminal.
// It keeps the latest values; View reads them on the next frame.
type Panel struct {
	Score     int
	HighScore int
	PowerUp   string
	Snapshot  snake.Snapshot
	Redraws   int
}

// NewPanel returns a panel with no power-up shown.
func NewPanel() *Panel {
	return &Panel{PowerUp: snake.PowerUpNone.Label()}
}

func (p *Panel) RequestRedraw(s snake.Snapshot) {
	p.Snapshot = s
	p.Redraws++
}

func (p *Panel) UpdateScore(score int)      { p.Score = score }
func (p *Panel) UpdatePowerUp(label string) { p.PowerUp = label }
func (p *Panel) ReportHighScore(high int)   { p.HighScore = high }

// Line is the score panel text.
func (p *Panel) Line() string {
	return fmt.Sprintf("Power-Up: %s  Score: %d  High Score: %d", p.PowerUp, p.Score, p.HighScore)
}

var (
	_ snake.Renderer  = (*Panel)(nil)
	_ snake.ScoreSink = (*Panel)(nil)
)
