// Package storage provides persistence for scores and player preferences:
// a SQLite score history (pure-Go modernc.org/sqlite driver, no CGO) and
// a flat key=value preferences file.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Store manages the SQLite database connection.
type Store struct {
	db  *sql.DB
	log *log.Logger
}

// ScoreEntry is one finished run.
type ScoreEntry struct {
	ID         int64
	RunID      string
	Variant    string
	Difficulty string
	Score      int
	Length     int
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string, logger *log.Logger) (*Store, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, log: logger}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			variant TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_variant ON scores(variant);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(variant, score DESC);

		CREATE TABLE IF NOT EXISTS prefs (
			user TEXT PRIMARY KEY,
			high_score INTEGER NOT NULL DEFAULT 0,
			snake_color TEXT NOT NULL DEFAULT '#00ff00',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScore records a finished run and returns its run id.
func (s *Store) SaveScore(e ScoreEntry) (string, error) {
	if e.RunID == "" {
		e.RunID = uuid.NewString()
	}
	_, err := s.db.Exec(
		"INSERT INTO scores (run_id, variant, difficulty, score, length) VALUES (?, ?, ?, ?, ?)",
		e.RunID, e.Variant, e.Difficulty, e.Score, e.Length,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save score: %w", err)
	}
	return e.RunID, nil
}

// TopScores retrieves the top N scores for a variant, highest first.
func (s *Store) TopScores(variant string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, variant, difficulty, score, length, created_at
		 FROM scores
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.RunID, &e.Variant, &e.Difficulty, &e.Score, &e.Length, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest recorded score for a variant, 0 if none.
func (s *Store) HighScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM scores WHERE variant = ?",
		variant,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all scores for a variant.
func (s *Store) ClearScores(variant string) error {
	_, err := s.db.Exec("DELETE FROM scores WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a variant.
type GameStats struct {
	Variant    string
	GamesCount int
	HighScore  int
	AvgScore   float64
	MaxLength  int
	LastPlayed time.Time
}

// Stats retrieves aggregated statistics for a variant.
func (s *Store) Stats(variant string) (*GameStats, error) {
	stats := &GameStats{Variant: variant}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(length), 0), MAX(created_at)
		 FROM scores WHERE variant = ?`,
		variant,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.MaxLength, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// Prefs returns the preferences of user as a snake.ConfigStore.
// A failed read yields defaults and is logged.
func (s *Store) Prefs(user string) *UserPrefs {
	p := &UserPrefs{store: s, user: user, color: core.ColorSnakeDefault}

	var color string
	err := s.db.QueryRow(
		"SELECT high_score, snake_color FROM prefs WHERE user = ?",
		user,
	).Scan(&p.high, &color)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		s.log.Warn("cannot load preferences, using defaults", "user", user, "err", err)
	default:
		if c, err := core.ParseHex(color); err == nil {
			p.color = c
		} else {
			s.log.Warn("ignoring invalid snake color", "user", user, "value", color)
		}
	}
	return p
}

// UserPrefs is a per-user row of the prefs table.
type UserPrefs struct {
	store *Store
	user  string
	high  int
	color core.RGB
}

func (p *UserPrefs) HighScore() int           { return p.high }
func (p *UserPrefs) SetHighScore(score int)   { p.high = score }
func (p *UserPrefs) SnakeColor() core.RGB     { return p.color }
func (p *UserPrefs) SetSnakeColor(c core.RGB) { p.color = c }

// Persist upserts the row.
func (p *UserPrefs) Persist() error {
	_, err := p.store.db.Exec(
		`INSERT INTO prefs (user, high_score, snake_color, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(user) DO UPDATE SET
		   high_score = excluded.high_score,
		   snake_color = excluded.snake_color,
		   updated_at = excluded.updated_at`,
		p.user, p.high, p.color.Hex(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save preferences for %s: %w", p.user, err)
	}
	return nil
}

var (
	_ snake.ConfigStore = (*UserPrefs)(nil)
	_ snake.ConfigStore = (*PropertiesFile)(nil)
)

// parseTime handles both time.Time and string DATETIME values.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
