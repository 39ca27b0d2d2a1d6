// Package snake implements the snake engine: grid, body, spawner, timed
// power-up effects and the tick-driven state machine. It has no UI
// dependencies; the platform feeds it commands and virtual time.
package snake

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Variant ids registered by this package.
const (
	VariantWrap  = "snake"
	VariantWalls = "snake_walls"
)

func init() {
	registry.Register(registry.Variant{
		ID:    VariantWrap,
		Title: "Snake",
		Apply: func(cfg *config.SnakeConfig) { cfg.Board.Boundary = config.BoundaryWrap },
	})
	registry.Register(registry.Variant{
		ID:    VariantWalls,
		Title: "Snake (Walls)",
		Apply: func(cfg *config.SnakeConfig) { cfg.Board.Boundary = config.BoundaryWall },
	})
}

// State is the game state machine position.
type State int

const (
	StateStopped State = iota // Not started yet, or torn down
	StateRunning
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateGameOver:
		return "game_over"
	default:
		return "stopped"
	}
}

// MoveOutcome is the result of one step.
type MoveOutcome int

const (
	Moved MoveOutcome = iota
	Grew
	AteFood
	AtePowerUp
	Collided
)

func (o MoveOutcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Grew:
		return "grew"
	case AteFood:
		return "ate_food"
	case AtePowerUp:
		return "ate_power_up"
	case Collided:
		return "collided"
	default:
		return "unknown"
	}
}

// maxLag bounds tick catch-up. A caller that stalls longer than this
// resumes from its current time instead of replaying every missed step.
const maxLag = time.Second

// Options configures a Game. Nil collaborators are replaced by no-ops.
type Options struct {
	Config      config.SnakeConfig
	Variant     string // Registry id applied on top of Config; empty keeps Config as is
	Renderer    Renderer
	ScoreSink   ScoreSink
	ConfigStore ConfigStore
	Logger      *log.Logger
	Seed        int64
}

// session is the state owned by one play-through. Reset replaces it whole.
type session struct {
	body     *Body
	heading  Direction // Direction of the last executed step
	pending  Direction // Buffered direction for the next step
	lastTurn time.Time
	turned   bool
	grow     int // Start-length segments still to grow

	item    *Item
	itemSeq uint64

	score   int
	ticks   uint64
	effects *Effects

	displayColor core.RGB
	overColor    core.RGB
}

// Game is the snake state machine. It is driven entirely by the caller:
// Handle for input, Advance for time. It is not safe for concurrent use.
type Game struct {
	cfg     config.SnakeConfig
	variant string
	grid    Grid
	log     *log.Logger

	renderer Renderer
	sink     ScoreSink
	store    ConfigStore

	rng     *rand.Rand // Gameplay randomness
	paint   *rand.Rand // Cosmetic colors, kept apart so flashing never changes gameplay
	spawner *Spawner
	timers  scheduler

	state      State
	difficulty config.Difficulty
	color      core.RGB // Preferred snake color
	paused     bool
	pausedAt   time.Time
	now        time.Time

	session session
}

// New creates a game. Call Start to begin the first session.
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if opts.Variant != "" {
		var err error
		cfg, err = registry.Configure(opts.Variant, cfg)
		if err != nil {
			return nil, fmt.Errorf("snake: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	policy, err := ParseBoundaryPolicy(cfg.Board.Boundary)
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:        cfg,
		variant:    opts.Variant,
		grid:       Grid{Width: cfg.Board.Width, Height: cfg.Board.Height, Policy: policy},
		log:        opts.Logger,
		renderer:   opts.Renderer,
		sink:       opts.ScoreSink,
		store:      opts.ConfigStore,
		rng:        rand.New(rand.NewSource(opts.Seed)),
		paint:      rand.New(rand.NewSource(opts.Seed ^ 0x5eed)),
		difficulty: cfg.Difficulty.Default,
	}
	if g.log == nil {
		g.log = log.New(io.Discard)
	}
	if g.renderer == nil {
		g.renderer = nopRenderer{}
	}
	if g.sink == nil {
		g.sink = nopScoreSink{}
	}
	if g.store == nil {
		g.store = NewMemoryStore()
	}
	g.spawner = NewSpawner(g.rng, cfg.Spawn)
	g.color = g.store.SnakeColor()

	return g, nil
}

// Config returns the effective configuration (variant applied).
func (g *Game) Config() config.SnakeConfig { return g.cfg }

// Variant returns the registry id the game was created with.
func (g *Game) Variant() string { return g.variant }

// State returns the current state.
func (g *Game) State() State { return g.state }

// Difficulty returns the selected difficulty.
func (g *Game) Difficulty() config.Difficulty { return g.difficulty }

// Paused reports whether the settings pause is active.
func (g *Game) Paused() bool { return g.paused }

// Start begins a new session at now.
func (g *Game) Start(now time.Time) {
	g.reset(now)
	g.redraw()
}

// Stop tears the session down. No timer fires afterwards and further
// commands are ignored until Start is called again.
func (g *Game) Stop() {
	g.timers.newGeneration()
	g.state = StateStopped
	g.paused = false
}

// NextWake returns when Advance next has work to do.
func (g *Game) NextWake() (time.Time, bool) {
	if g.state == StateStopped || g.paused {
		return time.Time{}, false
	}
	return g.timers.next()
}

// Advance fires every timer due at or before now, in deadline order.
// Each timer runs at its own deadline, so results do not depend on how
// often the caller polls.
func (g *Game) Advance(now time.Time) {
	if g.state == StateStopped || g.paused {
		return
	}

	fired := false
	for {
		kind, t, ok := g.timers.popDue(now)
		if !ok {
			break
		}
		g.fire(kind, t, now)
		fired = true
	}
	g.observe(now)

	if fired {
		g.redraw()
	}
}

// Handle applies one command at now.
func (g *Game) Handle(cmd Command, now time.Time) {
	if g.state == StateStopped {
		return
	}
	g.observe(now)

	switch cmd.Kind {
	case CmdMove:
		if g.state != StateRunning || g.paused {
			return
		}
		if !g.turn(cmd.Dir, now) {
			return
		}
	case CmdRestart:
		g.reset(now)
	case CmdSetDifficulty:
		d, err := config.ParseDifficulty(cmd.Difficulty)
		if err != nil {
			g.log.Warn("ignoring difficulty change", "value", cmd.Difficulty, "err", err)
			return
		}
		g.difficulty = d
		g.reset(now)
	case CmdSetColor:
		g.setColor(cmd.Color)
	case CmdToggleSettings:
		if g.paused {
			g.resume(now)
		} else {
			g.pause(now)
		}
	default:
		g.log.Warn("ignoring unknown command", "kind", cmd.Kind)
		return
	}

	g.redraw()
}

// reset starts a new session with the selected difficulty.
func (g *Game) reset(now time.Time) {
	gen := g.timers.newGeneration()
	g.now = now
	g.paused = false
	g.state = StateRunning

	start := g.grid.Clamp(Cell{X: g.cfg.Board.StartX, Y: g.cfg.Board.StartY})
	base := g.cfg.Difficulty.Interval(g.difficulty)
	g.session = session{
		body:         NewBody(start),
		heading:      DirRight,
		pending:      DirRight,
		grow:         g.cfg.Board.StartLength - 1,
		effects:      NewEffects(base, g.cfg.EffectDuration(), g.cfg.Scoring.DoubleMultiplier),
		displayColor: g.color,
		overColor:    g.color,
	}

	g.log.Info("session started",
		"variant", g.variant,
		"generation", gen,
		"difficulty", g.difficulty,
		"interval", base,
	)

	g.sink.UpdateScore(0)
	g.sink.UpdatePowerUp(PowerUpNone.Label())
	g.sink.ReportHighScore(g.store.HighScore())

	g.timers.schedule(timerTick, now.Add(base), 0)
	g.spawn(now)
}

// fire dispatches one due timer.
func (g *Game) fire(kind timerKind, t timer, now time.Time) {
	if t.gen != g.timers.gen {
		return
	}
	s := &g.session
	g.now = t.at

	switch kind {
	case timerTick:
		if g.state != StateRunning {
			return
		}
		g.step(t.at)
		if g.state != StateRunning {
			return
		}
		next := t.at.Add(s.effects.Interval())
		if now.Sub(next) > maxLag {
			next = now.Add(s.effects.Interval())
		}
		g.timers.schedule(timerTick, next, 0)

	case timerExpire:
		if g.state != StateRunning || t.seq != s.itemSeq {
			return
		}
		s.item = nil
		g.spawn(t.at)

	case timerEffect:
		if t.seq != s.effects.activeSeq() {
			return
		}
		if eff, ok := s.effects.Active(); ok {
			s.effects.Revert(eff.Kind)
			g.timers.cancel(timerSpeedFlash)
			s.displayColor = g.color
			g.sink.UpdatePowerUp(PowerUpNone.Label())
		}

	case timerSpeedFlash:
		if eff, ok := s.effects.Active(); ok && eff.Kind == PowerUpSpeed {
			s.displayColor = core.RandomColor(g.paint)
			g.timers.schedule(timerSpeedFlash, t.at.Add(g.cfg.FlashInterval()), 0)
		}

	case timerGameOverFlash:
		if g.state == StateGameOver {
			s.overColor = core.RandomColor(g.paint)
			g.timers.schedule(timerGameOverFlash, t.at.Add(g.cfg.FlashInterval()), 0)
		}
	}
}

// step moves the snake one cell along the buffered direction.
func (g *Game) step(now time.Time) MoveOutcome {
	s := &g.session
	s.heading = s.pending

	head, ok := g.grid.Resolve(s.body.Head().Add(s.heading))
	if !ok {
		g.gameOver(now, "wall")
		return Collided
	}
	// Checked before the head is prepended, so the tail cell counts too.
	if s.body.Contains(head) {
		g.gameOver(now, "self")
		return Collided
	}

	s.body.push(head)
	s.ticks++

	if s.item != nil && s.item.Cell == head {
		item := *s.item
		s.item = nil
		outcome := AteFood
		if item.IsFood() {
			s.score += g.cfg.Scoring.FoodPoints * s.effects.Multiplier()
			g.sink.UpdateScore(s.score)
		} else {
			outcome = AtePowerUp
			g.activate(item.PowerUp, now)
		}
		g.spawn(now)
		return outcome
	}

	if s.grow > 0 {
		s.grow--
		return Grew
	}
	s.body.dropTail()
	return Moved
}

// spawn replaces the item and restarts its expiry. A full board ends the game.
func (g *Game) spawn(now time.Time) bool {
	s := &g.session
	s.item = nil

	res := g.spawner.Spawn(s.body, g.grid, now)
	if res.BoardFull {
		g.gameOver(now, "board_full")
		return false
	}

	item := res.Item
	s.item = &item
	s.itemSeq++
	g.timers.schedule(timerExpire, now.Add(g.cfg.ItemTTL()), s.itemSeq)
	return true
}

// activate applies a power-up, superseding any live effect.
func (g *Game) activate(kind PowerUpKind, now time.Time) {
	s := &g.session

	superseded := s.effects.Activate(kind, now)
	g.timers.cancel(timerEffect)
	g.timers.cancel(timerSpeedFlash)
	if superseded == PowerUpSpeed {
		s.displayColor = g.color
	}

	g.timers.schedule(timerEffect, now.Add(g.cfg.EffectDuration()), s.effects.activeSeq())
	if kind == PowerUpSpeed && g.cfg.Cosmetics.Enabled {
		g.timers.schedule(timerSpeedFlash, now.Add(g.cfg.FlashInterval()), 0)
	}

	g.log.Debug("power-up activated", "kind", kind, "superseded", superseded, "interval", s.effects.Interval())
	g.sink.UpdatePowerUp(kind.Label())
}

// gameOver stops gameplay timers and records the high score.
func (g *Game) gameOver(now time.Time, reason string) {
	s := &g.session
	g.state = StateGameOver

	g.timers.cancel(timerTick)
	g.timers.cancel(timerExpire)
	g.timers.cancel(timerEffect)
	g.timers.cancel(timerSpeedFlash)
	if eff, ok := s.effects.Active(); ok {
		s.effects.Revert(eff.Kind)
		g.sink.UpdatePowerUp(PowerUpNone.Label())
	}
	s.displayColor = g.color

	high := g.store.HighScore()
	if s.score > high {
		high = s.score
		g.store.SetHighScore(high)
		if err := g.store.Persist(); err != nil {
			g.log.Warn("failed to persist high score", "score", high, "err", err)
		}
	}
	g.sink.ReportHighScore(high)

	g.log.Debug("game over", "reason", reason, "score", s.score, "length", s.body.Len(), "ticks", s.ticks)

	if g.cfg.Cosmetics.Enabled {
		s.overColor = core.RandomColor(g.paint)
		g.timers.schedule(timerGameOverFlash, now.Add(g.cfg.FlashInterval()), 0)
	}
}

// turn buffers a direction change. It returns false if the change was
// discarded (debounced, reversal, or no change).
func (g *Game) turn(dir Direction, now time.Time) bool {
	s := &g.session
	if dir == s.pending {
		return false
	}
	if s.turned && now.Sub(s.lastTurn) < g.cfg.Debounce() {
		return false
	}
	if dir == s.heading.Opposite() {
		return false
	}
	s.pending = dir
	s.lastTurn = now
	s.turned = true
	return true
}

func (g *Game) setColor(c core.RGB) {
	g.color = c
	s := &g.session
	if eff, ok := s.effects.Active(); !ok || eff.Kind != PowerUpSpeed {
		s.displayColor = c
	}

	g.store.SetSnakeColor(c)
	if err := g.store.Persist(); err != nil {
		g.log.Warn("failed to persist snake color", "color", c.Hex(), "err", err)
	}
}

// pause freezes virtual time until resume.
func (g *Game) pause(now time.Time) {
	g.paused = true
	g.pausedAt = now
}

// resume shifts every deadline by the paused span.
func (g *Game) resume(now time.Time) {
	g.paused = false
	d := now.Sub(g.pausedAt)
	if d <= 0 {
		return
	}

	s := &g.session
	g.timers.shift(d)
	s.effects.shift(d)
	if s.item != nil {
		s.item.SpawnedAt = s.item.SpawnedAt.Add(d)
	}
	if s.turned {
		s.lastTurn = s.lastTurn.Add(d)
	}
}

// observe records the caller's clock for remaining-time queries.
func (g *Game) observe(now time.Time) {
	if !g.paused && now.After(g.now) {
		g.now = now
	}
}

// clock is the game's view of the current time.
func (g *Game) clock() time.Time {
	if g.paused {
		return g.pausedAt
	}
	return g.now
}

func (g *Game) redraw() {
	g.renderer.RequestRedraw(g.Snapshot())
}
