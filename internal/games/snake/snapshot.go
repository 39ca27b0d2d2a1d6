package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot is an immutable copy of everything a renderer or test needs.
type Snapshot struct {
	Variant    string
	Generation uint64
	Tick       uint64 // Steps executed in this session
	State      State
	Paused     bool

	GridW, GridH int
	Boundary     BoundaryPolicy

	Snake   []Cell // Head first
	Heading Direction
	Item    *Item

	Score      int
	HighScore  int
	Difficulty config.Difficulty
	Interval   time.Duration

	Effect          PowerUpKind
	EffectRemaining time.Duration

	SnakeColor     core.RGB // Currently displayed color, flashing while Speed is active
	PreferredColor core.RGB
	GameOverColor  core.RGB
}

// GameOver reports whether the session has ended.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Head returns the snake's head cell.
func (s Snapshot) Head() Cell {
	if len(s.Snake) == 0 {
		return Cell{}
	}
	return s.Snake[0]
}

// Food returns the food cell, if food is on the board.
func (s Snapshot) Food() (Cell, bool) {
	if s.Item == nil || !s.Item.IsFood() {
		return Cell{}, false
	}
	return s.Item.Cell, true
}

// PowerUp returns the power-up cell and kind, if one is on the board.
func (s Snapshot) PowerUp() (Cell, PowerUpKind, bool) {
	if s.Item == nil || s.Item.IsFood() {
		return Cell{}, PowerUpNone, false
	}
	return s.Item.Cell, s.Item.PowerUp, true
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := &g.session
	snap := Snapshot{
		Variant:        g.variant,
		Generation:     g.timers.gen,
		State:          g.state,
		Paused:         g.paused,
		GridW:          g.grid.Width,
		GridH:          g.grid.Height,
		Boundary:       g.grid.Policy,
		HighScore:      g.store.HighScore(),
		Difficulty:     g.difficulty,
		Interval:       g.cfg.Difficulty.Interval(g.difficulty),
		PreferredColor: g.color,
		SnakeColor:     g.color,
	}
	if s.body == nil {
		return snap
	}

	snap.Tick = s.ticks
	snap.Snake = s.body.Cells()
	snap.Heading = s.heading
	snap.Score = s.score
	snap.Interval = s.effects.Interval()
	snap.SnakeColor = s.displayColor
	snap.GameOverColor = s.overColor
	if s.item != nil {
		item := *s.item
		snap.Item = &item
	}
	if eff, ok := s.effects.Active(); ok {
		snap.Effect = eff.Kind
		snap.EffectRemaining = eff.Remaining(g.clock())
	}
	return snap
}
