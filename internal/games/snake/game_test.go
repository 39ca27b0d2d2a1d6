package snake

import (
	"reflect"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time { return t0.Add(d) }

// recorder captures Renderer and ScoreSink calls.
type recorder struct {
	redraws  int
	last     Snapshot
	scores   []int
	powerUps []string
	highs    []int
}

func (r *recorder) RequestRedraw(s Snapshot) { r.redraws++; r.last = s }
func (r *recorder) UpdateScore(n int)        { r.scores = append(r.scores, n) }
func (r *recorder) UpdatePowerUp(l string)   { r.powerUps = append(r.powerUps, l) }
func (r *recorder) ReportHighScore(n int)    { r.highs = append(r.highs, n) }

// testConfig disables power-up rolls and cosmetics so tests control items.
func testConfig() config.SnakeConfig {
	cfg := config.DefaultSnakeConfig()
	cfg.Spawn.SpeedChance = 0
	cfg.Spawn.DoublePointsChance = 0
	cfg.Cosmetics.Enabled = false
	return cfg
}

func newTestGame(t *testing.T, cfg config.SnakeConfig, variant string) (*Game, *recorder, *MemoryStore) {
	t.Helper()
	rec := &recorder{}
	store := NewMemoryStore()
	g, err := New(Options{
		Config:      cfg,
		Variant:     variant,
		Renderer:    rec,
		ScoreSink:   rec,
		ConfigStore: store,
		Seed:        42,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	g.Start(t0)
	return g, rec, store
}

// placeItem puts a specific item on the board, replacing the spawned one.
func placeItem(g *Game, c Cell, kind PowerUpKind) {
	g.session.item = &Item{Cell: c, PowerUp: kind, SpawnedAt: g.clock()}
}

func TestStartInitialState(t *testing.T) {
	g, rec, _ := newTestGame(t, testConfig(), VariantWrap)

	snap := g.Snapshot()
	if snap.State != StateRunning {
		t.Fatalf("state = %v, expected running", snap.State)
	}
	if snap.Head() != (Cell{X: 5, Y: 5}) || len(snap.Snake) != 1 {
		t.Errorf("snake = %v, expected single cell at (5,5)", snap.Snake)
	}
	if snap.Heading != DirRight {
		t.Errorf("heading = %v, expected right", snap.Heading)
	}
	if snap.Item == nil {
		t.Error("expected an item to be spawned")
	}
	if snap.Interval != 80*time.Millisecond {
		t.Errorf("interval = %v, expected 80ms", snap.Interval)
	}
	if rec.redraws != 1 {
		t.Errorf("redraws = %d, expected 1", rec.redraws)
	}
	if len(rec.powerUps) != 1 || rec.powerUps[0] != "None" {
		t.Errorf("power-up labels = %v", rec.powerUps)
	}
	if wake, ok := g.NextWake(); !ok || !wake.Equal(at(80*time.Millisecond)) {
		t.Errorf("NextWake() = %v, %v; expected first tick at 80ms", wake, ok)
	}
}

func TestEatFood(t *testing.T) {
	g, rec, _ := newTestGame(t, testConfig(), VariantWrap)
	placeItem(g, Cell{X: 6, Y: 5}, PowerUpNone)

	g.Advance(at(80 * time.Millisecond))

	snap := g.Snapshot()
	if snap.Head() != (Cell{X: 6, Y: 5}) {
		t.Errorf("head = %v, expected (6,5)", snap.Head())
	}
	if len(snap.Snake) != 2 {
		t.Errorf("length = %d, expected 2", len(snap.Snake))
	}
	if snap.Score != 10 {
		t.Errorf("score = %d, expected 10", snap.Score)
	}
	if snap.Item == nil {
		t.Fatal("expected a new item after eating")
	}
	for _, c := range snap.Snake {
		if c == snap.Item.Cell {
			t.Errorf("item spawned on the snake at %v", c)
		}
	}
	if got := rec.scores[len(rec.scores)-1]; got != 10 {
		t.Errorf("last reported score = %d, expected 10", got)
	}
}

func TestEatFoodWithDoublePoints(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig(), VariantWrap)
	g.activate(PowerUpDoublePoints, t0)
	placeItem(g, Cell{X: 6, Y: 5}, PowerUpNone)

	if outcome := g.step(at(80 * time.Millisecond)); outcome != AteFood {
		t.Fatalf("outcome = %v, expected ate_food", outcome)
	}
	if g.session.score != 20 {
		t.Errorf("score = %d, expected 20", g.session.score)
	}
}

func TestStepOutcomes(t *testing.T) {
	cfg := testConfig()
	cfg.Board.StartLength = 3
	g, _, _ := newTestGame(t, cfg, VariantWrap)
	placeItem(g, Cell{X: 70, Y: 40}, PowerUpNone)

	want := []MoveOutcome{Grew, Grew, Moved, Moved}
	for i, w := range want {
		if got := g.step(at(time.Duration(i+1) * 80 * time.Millisecond)); got != w {
			t.Errorf("step %d: outcome = %v, expected %v", i, got, w)
		}
	}
	if n := g.session.body.Len(); n != 3 {
		t.Errorf("length = %d, expected 3", n)
	}

	placeItem(g, g.session.body.Head().Add(DirRight), PowerUpSpeed)
	if got := g.step(at(time.Second)); got != AtePowerUp {
		t.Errorf("outcome = %v, expected ate_power_up", got)
	}
	if n := g.session.body.Len(); n != 4 {
		t.Errorf("length after power-up = %d, expected 4", n)
	}
}

func TestSpeedRevertsToDifficultyInterval(t *testing.T) {
	g, rec, _ := newTestGame(t, testConfig(), VariantWrap)
	placeItem(g, Cell{X: 6, Y: 5}, PowerUpSpeed)

	g.Advance(at(80 * time.Millisecond))
	if got := g.session.effects.Interval(); got != 40*time.Millisecond {
		t.Fatalf("interval = %v, expected 40ms", got)
	}
	if wake, _ := g.timers.deadline(timerTick); !wake.Equal(at(120 * time.Millisecond)) {
		t.Errorf("next tick at %v, expected 120ms", wake.Sub(t0))
	}

	// A second Speed reverts the first before applying, so no 20ms.
	g.activate(PowerUpSpeed, at(100*time.Millisecond))
	if got := g.session.effects.Interval(); got != 40*time.Millisecond {
		t.Fatalf("interval after re-trigger = %v, expected 40ms", got)
	}

	g.Advance(at(100*time.Millisecond + 7*time.Second))
	if got := g.session.effects.Interval(); got != 80*time.Millisecond {
		t.Errorf("interval after expiry = %v, expected exactly 80ms", got)
	}
	if snap := g.Snapshot(); snap.Effect != PowerUpNone {
		t.Errorf("effect = %v, expected none", snap.Effect)
	}
	if last := rec.powerUps[len(rec.powerUps)-1]; last != "None" {
		t.Errorf("last power-up label = %q, expected None", last)
	}
}

func TestSupersededEffectTimerIgnored(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig(), VariantWrap)
	g.timers.cancel(timerTick)

	g.activate(PowerUpSpeed, t0)
	old := g.timers.slots[timerEffect]
	g.activate(PowerUpDoublePoints, at(time.Second))

	if g.session.effects.Interval() != 80*time.Millisecond {
		t.Error("speed not reverted when double points superseded it")
	}

	g.fire(timerEffect, old, old.at)
	eff, ok := g.session.effects.Active()
	if !ok || eff.Kind != PowerUpDoublePoints {
		t.Errorf("superseded timer reverted the live effect: %+v, %v", eff, ok)
	}
}

func TestBoardFullOnStart(t *testing.T) {
	cfg := testConfig()
	cfg.Board.Width = 1
	cfg.Board.Height = 1
	g, _, _ := newTestGame(t, cfg, VariantWrap)

	snap := g.Snapshot()
	if !snap.GameOver() {
		t.Fatalf("state = %v, expected game over on a full board", snap.State)
	}
	if snap.Head() != (Cell{}) {
		t.Errorf("start not clamped into a 1x1 grid: %v", snap.Head())
	}
	if g.timers.armed(timerTick) {
		t.Error("tick timer still armed after game over")
	}
}

func TestBoardFullAfterEating(t *testing.T) {
	cfg := testConfig()
	cfg.Board.Width = 2
	cfg.Board.Height = 1
	g, rec, store := newTestGame(t, cfg, VariantWrap)
	store.High = 5

	// Start (5,5) clamps to (1,0), leaving (0,0) as the only free cell.
	if snap := g.Snapshot(); snap.Item == nil || snap.Item.Cell != (Cell{X: 0, Y: 0}) {
		t.Fatalf("expected food on the only free cell, got %+v", snap.Item)
	}

	g.Advance(at(80 * time.Millisecond))

	snap := g.Snapshot()
	if !snap.GameOver() {
		t.Fatalf("state = %v, expected game over", snap.State)
	}
	if snap.Score != 10 || len(snap.Snake) != 2 {
		t.Errorf("score = %d length = %d, expected 10 and 2", snap.Score, len(snap.Snake))
	}
	if store.High != 10 || store.Persists != 1 {
		t.Errorf("high score = %d persists = %d, expected 10 and 1", store.High, store.Persists)
	}
	if got := rec.highs[len(rec.highs)-1]; got != 10 {
		t.Errorf("reported high score = %d, expected 10", got)
	}
}

func TestHighScoreNotLowered(t *testing.T) {
	cfg := testConfig()
	cfg.Board.StartX = 79
	g, rec, store := newTestGame(t, cfg, VariantWalls)
	store.High = 500

	g.Advance(at(80 * time.Millisecond))
	if !g.Snapshot().GameOver() {
		t.Fatal("expected game over")
	}
	if store.High != 500 || store.Persists != 0 {
		t.Errorf("high score = %d persists = %d, expected unchanged", store.High, store.Persists)
	}
	if got := rec.highs[len(rec.highs)-1]; got != 500 {
		t.Errorf("reported high score = %d, expected 500", got)
	}
}

func TestWrapAllEdges(t *testing.T) {
	grid := Grid{Width: 80, Height: 50, Policy: BoundaryWrap}
	tests := []struct {
		in, want Cell
	}{
		{Cell{X: -1, Y: 7}, Cell{X: 79, Y: 7}},
		{Cell{X: 80, Y: 7}, Cell{X: 0, Y: 7}},
		{Cell{X: 7, Y: -1}, Cell{X: 7, Y: 49}},
		{Cell{X: 7, Y: 50}, Cell{X: 7, Y: 0}},
		{Cell{X: 3, Y: 3}, Cell{X: 3, Y: 3}},
	}
	for _, tc := range tests {
		got, ok := grid.Resolve(tc.in)
		if !ok || got != tc.want {
			t.Errorf("Resolve(%v) = %v, %v; expected %v", tc.in, got, ok, tc.want)
		}
	}
}

func TestWrapDuringPlay(t *testing.T) {
	cfg := testConfig()
	cfg.Board.StartY = 0
	g, _, _ := newTestGame(t, cfg, VariantWrap)
	placeItem(g, Cell{X: 70, Y: 40}, PowerUpNone)

	g.Handle(Move(DirUp), at(10*time.Millisecond))
	g.Advance(at(80 * time.Millisecond))

	if head := g.Snapshot().Head(); head != (Cell{X: 5, Y: 49}) {
		t.Errorf("head = %v, expected (5,49)", head)
	}
}

func TestWallPolicy(t *testing.T) {
	grid := Grid{Width: 80, Height: 50, Policy: BoundaryWall}
	for _, c := range []Cell{{X: -1, Y: 0}, {X: 80, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 50}} {
		if _, ok := grid.Resolve(c); ok {
			t.Errorf("Resolve(%v) should fail under the wall policy", c)
		}
	}

	cfg := testConfig()
	cfg.Board.StartX = 79
	g, _, _ := newTestGame(t, cfg, VariantWalls)
	if g.Config().Board.Boundary != config.BoundaryWall {
		t.Fatalf("variant did not set the wall boundary")
	}

	g.Advance(at(80 * time.Millisecond))
	if !g.Snapshot().GameOver() {
		t.Error("leaving the grid should end the game")
	}
}

func TestSelfCollisionIncludesTail(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig(), VariantWrap)
	placeItem(g, Cell{X: 70, Y: 40}, PowerUpNone)

	s := &g.session
	s.body = &Body{cells: []Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}}}
	s.heading = DirUp
	s.pending = DirRight

	if got := g.step(at(80 * time.Millisecond)); got != Collided {
		t.Fatalf("outcome = %v, expected collided", got)
	}
	if g.State() != StateGameOver {
		t.Errorf("state = %v, expected game over", g.State())
	}
	if g.timers.armed(timerTick) || g.timers.armed(timerExpire) {
		t.Error("gameplay timers still armed after collision")
	}
	if s.body.Len() != 4 {
		t.Errorf("body changed on collision: %v", s.body.Cells())
	}
}

func TestRestart(t *testing.T) {
	cfg := testConfig()
	cfg.Board.StartX = 79
	g, _, _ := newTestGame(t, cfg, VariantWalls)
	g.Advance(at(80 * time.Millisecond))
	if !g.Snapshot().GameOver() {
		t.Fatal("expected game over")
	}
	gen := g.Snapshot().Generation

	g.Handle(Restart(), at(time.Second))

	snap := g.Snapshot()
	if snap.State != StateRunning || snap.Score != 0 || len(snap.Snake) != 1 {
		t.Errorf("restart did not reinitialize: %+v", snap)
	}
	if snap.Item == nil {
		t.Error("spawner not re-armed")
	}
	if snap.Generation != gen+1 {
		t.Errorf("generation = %d, expected %d", snap.Generation, gen+1)
	}
	if wake, ok := g.NextWake(); !ok || !wake.Equal(at(time.Second+80*time.Millisecond)) {
		t.Errorf("tick not re-armed: %v, %v", wake, ok)
	}
}

func TestStaleTimerAfterRestart(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig(), VariantWrap)
	stale := g.timers.slots[timerExpire]

	g.Handle(Restart(), at(time.Second))
	before := *g.session.item

	g.fire(timerExpire, stale, stale.at)
	g.fire(timerTick, timer{at: at(2 * time.Second), gen: stale.gen}, at(2*time.Second))

	if *g.session.item != before {
		t.Error("stale expiry timer replaced the new session's item")
	}
	if g.session.ticks != 0 {
		t.Error("stale tick moved the snake")
	}
}

func TestItemExpiresAndRespawns(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig(), VariantWrap)
	g.timers.cancel(timerTick)
	seq := g.session.itemSeq

	g.Advance(at(9 * time.Second))

	item := g.session.item
	if item == nil {
		t.Fatal("board left without a target after expiry")
	}
	if !item.SpawnedAt.Equal(at(9 * time.Second)) {
		t.Errorf("respawned at %v, expected 9s", item.SpawnedAt.Sub(t0))
	}
	if g.session.itemSeq != seq+1 {
		t.Errorf("item seq = %d, expected %d", g.session.itemSeq, seq+1)
	}
	if wake, _ := g.timers.deadline(timerExpire); !wake.Equal(at(18 * time.Second)) {
		t.Errorf("expiry not restarted: %v", wake.Sub(t0))
	}
}

func TestDebounce(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig(), VariantWrap)

	g.Handle(Move(DirUp), at(10*time.Millisecond))
	g.Handle(Move(DirDown), at(50*time.Millisecond))
	if g.session.pending != DirUp {
		t.Fatalf("pending = %v, expected up (down within 80ms)", g.session.pending)
	}

	g.Handle(Move(DirDown), at(90*time.Millisecond))
	if g.session.pending != DirDown {
		t.Errorf("pending = %v, expected down after the debounce window", g.session.pending)
	}
}

func TestReversalRejected(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig(), VariantWrap)
	placeItem(g, Cell{X: 70, Y: 40}, PowerUpNone)

	g.Handle(Move(DirLeft), at(10*time.Millisecond))
	if g.session.pending != DirRight {
		t.Errorf("reverse accepted: pending = %v", g.session.pending)
	}

	// A buffered turn does not change what counts as reverse until it runs.
	g.Handle(Move(DirUp), at(20*time.Millisecond))
	g.Handle(Move(DirLeft), at(200*time.Millisecond))
	if g.session.pending != DirUp {
		t.Errorf("pending = %v, expected up", g.session.pending)
	}

	g.Advance(at(240 * time.Millisecond))
	if g.session.heading != DirUp {
		t.Fatalf("heading = %v, expected up", g.session.heading)
	}
	g.Handle(Move(DirDown), at(400*time.Millisecond))
	if g.session.pending != DirUp {
		t.Errorf("reverse of the executed heading accepted: %v", g.session.pending)
	}
}

func TestMoveIgnoredWhenNotRunning(t *testing.T) {
	cfg := testConfig()
	cfg.Board.StartX = 79
	g, _, _ := newTestGame(t, cfg, VariantWalls)

	g.Handle(ToggleSettings(), at(10*time.Millisecond))
	g.Handle(Move(DirUp), at(20*time.Millisecond))
	if g.session.pending != DirRight {
		t.Error("move accepted while paused")
	}
	g.Handle(ToggleSettings(), at(30*time.Millisecond))

	g.Advance(at(time.Second))
	g.Handle(Move(DirUp), at(2*time.Second))
	if g.session.pending != DirRight {
		t.Error("move accepted after game over")
	}
}

func TestPauseShiftsDeadlines(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig(), VariantWrap)
	spawned := g.session.item.SpawnedAt

	g.Handle(ToggleSettings(), at(40*time.Millisecond))
	if !g.Snapshot().Paused {
		t.Fatal("settings did not pause the game")
	}
	if _, ok := g.NextWake(); ok {
		t.Error("NextWake() should report nothing while paused")
	}
	g.Advance(at(time.Second))
	if g.session.ticks != 0 {
		t.Error("snake moved while paused")
	}

	g.Handle(ToggleSettings(), at(time.Second))
	paused := time.Second - 40*time.Millisecond

	if wake, _ := g.timers.deadline(timerTick); !wake.Equal(at(80*time.Millisecond + paused)) {
		t.Errorf("tick deadline = %v, expected %v", wake.Sub(t0), 80*time.Millisecond+paused)
	}
	if got := g.session.item.SpawnedAt; !got.Equal(spawned.Add(paused)) {
		t.Errorf("item SpawnedAt = %v, expected shifted by %v", got.Sub(t0), paused)
	}
}

func TestSetDifficulty(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig(), VariantWrap)
	gen := g.Snapshot().Generation

	g.Handle(SetDifficulty("nightmare"), at(10*time.Millisecond))
	if g.Difficulty() != config.DifficultyEasy || g.Snapshot().Generation != gen {
		t.Error("invalid difficulty changed the session")
	}

	g.Handle(SetDifficultyPreset(config.DifficultyHard), at(20*time.Millisecond))
	snap := g.Snapshot()
	if snap.Difficulty != config.DifficultyHard || snap.Interval != 40*time.Millisecond {
		t.Errorf("difficulty = %v interval = %v, expected hard/40ms", snap.Difficulty, snap.Interval)
	}
	if snap.Generation != gen+1 {
		t.Error("difficulty change should reset the session")
	}
}

func TestSetColorPersists(t *testing.T) {
	g, _, store := newTestGame(t, testConfig(), VariantWrap)
	purple := core.RGB{R: 0x80, B: 0x80}

	g.Handle(SetColor(purple), at(10*time.Millisecond))

	if store.Color != purple || store.Persists != 1 {
		t.Errorf("store color = %v persists = %d", store.Color, store.Persists)
	}
	snap := g.Snapshot()
	if snap.SnakeColor != purple || snap.PreferredColor != purple {
		t.Errorf("snapshot colors = %v / %v", snap.SnakeColor, snap.PreferredColor)
	}
}

func TestCosmeticFlashes(t *testing.T) {
	cfg := testConfig()
	cfg.Cosmetics.Enabled = true
	g, _, _ := newTestGame(t, cfg, VariantWrap)
	g.timers.cancel(timerTick)
	g.timers.cancel(timerExpire)

	g.activate(PowerUpSpeed, t0)
	if !g.timers.armed(timerSpeedFlash) {
		t.Fatal("speed flash not started")
	}
	g.Advance(at(7 * time.Second))
	if g.timers.armed(timerSpeedFlash) {
		t.Error("speed flash still running after revert")
	}
	if g.Snapshot().SnakeColor != g.color {
		t.Error("snake color not restored after speed ended")
	}

	g.gameOver(at(8*time.Second), "test")
	if !g.timers.armed(timerGameOverFlash) {
		t.Fatal("game-over flash not started")
	}
	g.Handle(Restart(), at(9*time.Second))
	if g.timers.armed(timerGameOverFlash) {
		t.Error("game-over flash survived restart")
	}
}

func TestStop(t *testing.T) {
	g, rec, _ := newTestGame(t, testConfig(), VariantWrap)
	g.Stop()

	if _, ok := g.NextWake(); ok {
		t.Error("timers still scheduled after Stop")
	}
	redraws := rec.redraws
	g.Advance(at(time.Minute))
	g.Handle(Move(DirUp), at(time.Minute))
	if rec.redraws != redraws || g.session.ticks != 0 {
		t.Error("stopped game reacted to input or time")
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	a, _, _ := newTestGame(t, cfg, VariantWrap)
	b, _, _ := newTestGame(t, cfg, VariantWrap)

	script := []Command{Move(DirDown), Move(DirLeft), Move(DirUp), Move(DirRight)}
	for i := range 200 {
		now := at(time.Duration(i) * 50 * time.Millisecond)
		if i%7 == 0 {
			cmd := script[(i/7)%len(script)]
			a.Handle(cmd, now)
			b.Handle(cmd, now)
		}
		a.Advance(now)
		b.Advance(now)
	}

	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Errorf("same seed diverged:\n%+v\n%+v", a.Snapshot(), b.Snapshot())
	}
}

func TestLongRunKeepsBodyConsistent(t *testing.T) {
	cfg := config.DefaultSnakeConfig()
	cfg.Board.Width = 12
	cfg.Board.Height = 8
	g, _, _ := newTestGame(t, cfg, VariantWrap)

	dirs := []Direction{DirDown, DirRight, DirUp, DirRight}
	lastScore := 0
	for i := range 2000 {
		now := at(time.Duration(i) * 20 * time.Millisecond)
		if i%13 == 0 {
			g.Handle(Move(dirs[(i/13)%len(dirs)]), now)
		}
		g.Advance(now)

		snap := g.Snapshot()
		if len(snap.Snake) < 1 {
			t.Fatalf("tick %d: empty snake", i)
		}
		if snap.Score < lastScore {
			t.Fatalf("tick %d: score decreased %d -> %d", i, lastScore, snap.Score)
		}
		lastScore = snap.Score
		seen := make(map[Cell]bool, len(snap.Snake))
		for _, c := range snap.Snake {
			if seen[c] {
				t.Fatalf("tick %d: duplicate body cell %v", i, c)
			}
			seen[c] = true
		}
		if snap.GameOver() {
			g.Handle(Restart(), now)
			lastScore = 0
		}
	}
}

func TestNewErrors(t *testing.T) {
	if _, err := New(Options{Config: testConfig(), Variant: "snake_unknown"}); err == nil {
		t.Error("expected error for unknown variant")
	}

	cfg := testConfig()
	cfg.Board.Width = 0
	if _, err := New(Options{Config: cfg}); err == nil {
		t.Error("expected validation error")
	}
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{VariantWrap, VariantWalls} {
		g, err := New(Options{Config: testConfig(), Variant: id})
		if err != nil {
			t.Errorf("New(%q) failed: %v", id, err)
			continue
		}
		if g.Variant() != id {
			t.Errorf("Variant() = %q, expected %q", g.Variant(), id)
		}
	}
}
