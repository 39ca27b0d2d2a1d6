package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Renderer is asked to draw after every state change.
type Renderer interface {
	RequestRedraw(s Snapshot)
}

// ScoreSink receives score panel updates.
type ScoreSink interface {
	UpdateScore(score int)
	UpdatePowerUp(label string)
	ReportHighScore(high int)
}

// ConfigStore holds the persisted high score and preferred snake color.
// Persist is called synchronously, at most once per game over or color change.
type ConfigStore interface {
	HighScore() int
	SetHighScore(score int)
	SnakeColor() core.RGB
	SetSnakeColor(c core.RGB)
	Persist() error
}

type nopRenderer struct{}

func (nopRenderer) RequestRedraw(Snapshot) {}

type nopScoreSink struct{}

func (nopScoreSink) UpdateScore(int)      {}
func (nopScoreSink) UpdatePowerUp(string) {}
func (nopScoreSink) ReportHighScore(int)  {}

// MemoryStore is a ConfigStore that never touches disk.
type MemoryStore struct {
	High     int
	Color    core.RGB
	Persists int // Number of Persist calls
}

// NewMemoryStore returns a store holding the defaults.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Color: core.ColorSnakeDefault}
}

func (m *MemoryStore) HighScore() int           { return m.High }
func (m *MemoryStore) SetHighScore(score int)   { m.High = score }
func (m *MemoryStore) SnakeColor() core.RGB     { return m.Color }
func (m *MemoryStore) SetSnakeColor(c core.RGB) { m.Color = c }

func (m *MemoryStore) Persist() error {
	m.Persists++
	return nil
}
