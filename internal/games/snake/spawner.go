package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// PowerUpKind identifies a timed effect. PowerUpNone marks plain food.
type PowerUpKind int

const (
	PowerUpNone PowerUpKind = iota
	PowerUpSpeed
	PowerUpDoublePoints
)

// Label returns the text shown in the score panel.
func (k PowerUpKind) Label() string {
	switch k {
	case PowerUpSpeed:
		return "Speed"
	case PowerUpDoublePoints:
		return "Double Points"
	default:
		return "None"
	}
}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpeed:
		return "speed"
	case PowerUpDoublePoints:
		return "double_points"
	default:
		return "none"
	}
}

// Item is the single collectible on the board: food or a power-up.
type Item struct {
	Cell      Cell
	PowerUp   PowerUpKind
	SpawnedAt time.Time
}

// IsFood reports whether eating the item scores points.
func (i Item) IsFood() bool {
	return i.PowerUp == PowerUpNone
}

// Occupancy answers whether a cell is taken. *Body implements it.
type Occupancy interface {
	Contains(c Cell) bool
}

// SpawnResult is the outcome of one placement.
// BoardFull means no free cell was found within the attempt budget.
type SpawnResult struct {
	Item      Item
	BoardFull bool
}

// Spawner places food and power-ups on free cells.
type Spawner struct {
	rng          *rand.Rand
	attempts     int
	speedChance  int
	doubleChance int
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(rng *rand.Rand, cfg config.SpawnConfig) *Spawner {
	return &Spawner{
		rng:          rng,
		attempts:     max(cfg.Attempts, 1),
		speedChance:  cfg.SpeedChance,
		doubleChance: cfg.DoublePointsChance,
	}
}

// Spawn samples uniformly for a cell not in occupied, then rolls the item kind.
func (s *Spawner) Spawn(occupied Occupancy, grid Grid, now time.Time) SpawnResult {
	if grid.Area() == 0 {
		return SpawnResult{BoardFull: true}
	}

	var (
		cell  Cell
		found bool
	)
	for range s.attempts {
		cell = Cell{X: s.rng.Intn(grid.Width), Y: s.rng.Intn(grid.Height)}
		if !occupied.Contains(cell) {
			found = true
			break
		}
	}
	if !found {
		return SpawnResult{BoardFull: true}
	}

	return SpawnResult{Item: Item{
		Cell:      cell,
		PowerUp:   s.rollKind(),
		SpawnedAt: now,
	}}
}

// rollKind draws p in [0,100): speed first, then double points, else food.
func (s *Spawner) rollKind() PowerUpKind {
	p := s.rng.Intn(100)
	switch {
	case p < s.speedChance:
		return PowerUpSpeed
	case p < s.speedChance+s.doubleChance:
		return PowerUpDoublePoints
	default:
		return PowerUpNone
	}
}
