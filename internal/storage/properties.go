package storage

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/magiconair/properties"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Keys of the flat preferences file.
const (
	keyHighScore  = "highscore"
	keySnakeColor = "snakeColor"
)

// DefaultPropertiesPath is where the local player's preferences live.
const DefaultPropertiesPath = "~/.snake/config.properties"

// PropertiesFile is a preferences store backed by a key=value file.
// Missing or unreadable values fall back to defaults and are never fatal.
type PropertiesFile struct {
	path  string
	log   *log.Logger
	high  int
	color core.RGB
}

// OpenProperties loads preferences from path. A missing or corrupt file
// yields defaults; the error is only logged.
func OpenProperties(path string, logger *log.Logger) (*PropertiesFile, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	f := &PropertiesFile{
		path:  path,
		log:   logger,
		color: core.ColorSnakeDefault,
	}

	p, err := properties.LoadFile(path, properties.UTF8)
	switch {
	case err == nil:
		f.load(p)
	case os.IsNotExist(err):
		logger.Debug("preferences file not found, using defaults", "path", path)
	default:
		logger.Warn("cannot read preferences, using defaults", "path", path, "err", err)
	}
	return f, nil
}

func (f *PropertiesFile) load(p *properties.Properties) {
	p.DisableExpansion = true

	if v, ok := p.Get(keyHighScore); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			f.log.Warn("ignoring invalid high score", "value", v)
		} else {
			f.high = n
		}
	}
	if v, ok := p.Get(keySnakeColor); ok {
		c, err := core.ParseHex(strings.TrimSpace(v))
		if err != nil {
			f.log.Warn("ignoring invalid snake color", "value", v, "err", err)
		} else {
			f.color = c
		}
	}
}

// Path returns the resolved file location.
func (f *PropertiesFile) Path() string { return f.path }

func (f *PropertiesFile) HighScore() int           { return f.high }
func (f *PropertiesFile) SetHighScore(score int)   { f.high = score }
func (f *PropertiesFile) SnakeColor() core.RGB     { return f.color }
func (f *PropertiesFile) SetSnakeColor(c core.RGB) { f.color = c }

// Persist writes both keys atomically (temp file + rename).
func (f *PropertiesFile) Persist() error {
	p := properties.NewProperties()
	p.DisableExpansion = true
	if _, _, err := p.Set(keyHighScore, strconv.Itoa(f.high)); err != nil {
		return fmt.Errorf("storage: cannot set %s: %w", keyHighScore, err)
	}
	if _, _, err := p.Set(keySnakeColor, f.color.Hex()); err != nil {
		return fmt.Errorf("storage: cannot set %s: %w", keySnakeColor, err)
	}

	var buf bytes.Buffer
	if _, err := p.Write(&buf, properties.UTF8); err != nil {
		return fmt.Errorf("storage: cannot encode preferences: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".config-*.properties")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write preferences: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot write preferences: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", f.path, err)
	}
	return nil
}

// expandHome resolves a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
