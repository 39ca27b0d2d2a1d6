package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuSelectVariantAndDifficulty(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyEasy)
	if len(m.items) != 2 {
		t.Fatalf("items = %v, expected both variants", m.items)
	}

	m = menuUpdate(t, m, keyDown)
	m = menuUpdate(t, m, keyRight)
	m = menuUpdate(t, m, keyEnter)

	res := m.Result()
	if res.VariantID != snake.VariantWalls {
		t.Errorf("VariantID = %q, expected %q", res.VariantID, snake.VariantWalls)
	}
	if res.Difficulty != config.DifficultyMedium {
		t.Errorf("Difficulty = %v, expected medium", res.Difficulty)
	}
	if res.Quit || res.WantsScoreboard {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyHard)
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.Result().WantsScoreboard {
		t.Error("tab should open the scoreboard")
	}

	m = NewMenuModel(core.DefaultConfig(), config.DifficultyHard)
	m = menuUpdate(t, m, runeKey('q'))
	if !m.Result().Quit || !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.Result().Difficulty != config.DifficultyHard {
		t.Errorf("difficulty = %v, expected hard", m.Result().Difficulty)
	}
}

func TestMenuResize(t *testing.T) {
	m := NewMenuModel(core.DefaultConfig(), config.DifficultyEasy)
	m = menuUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 50 {
		t.Errorf("config = %+v, expected 120x50", cfg)
	}
}

func TestScoreboardSwitchesVariants(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"), nil)
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	defer store.Close()

	for _, e := range []storage.ScoreEntry{
		{Variant: snake.VariantWrap, Difficulty: "easy", Score: 30, Length: 4},
		{Variant: snake.VariantWrap, Difficulty: "hard", Score: 50, Length: 6},
		{Variant: snake.VariantWalls, Difficulty: "medium", Score: 10, Length: 2},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 100, 30)
	if got := len(m.Scores()); got != 2 {
		t.Fatalf("wrap scores = %d, expected 2", got)
	}
	if m.Scores()[0].Score != 50 {
		t.Errorf("top score = %d, expected 50", m.Scores()[0].Score)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if got := len(m.Scores()); got != 1 {
		t.Errorf("walls scores = %d, expected 1", got)
	}

	next, _ = m.Update(keyEsc)
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() {
		t.Error("esc should return to the menu")
	}
}

func TestSessionModelFlow(t *testing.T) {
	cfg := tinyConfig()
	s := NewSessionModel(SessionOptions{
		Game:    cfg,
		Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60},
	})

	next, cmd := s.Update(keyEnter)
	s = next.(SessionModel)
	if s.screen != screenGame || cmd == nil {
		t.Fatalf("enter should start a game, screen = %v", s.screen)
	}

	next, _ = s.Update(runeKey('q'))
	s = next.(SessionModel)
	if !s.quitting {
		t.Error("q in game should end the session")
	}
}
