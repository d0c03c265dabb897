package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New opens a file-backed zerolog logger. Logs go to a file rather
// than stderr because the TUI owns the terminal; writing there would
// corrupt the display.
func New(path string) (zerolog.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}

	log := zerolog.New(f).With().Timestamp().Logger()
	return log, f.Close, nil
}

// Nop returns a logger that discards everything.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// DefaultLogPath resolves the log file path:
// 1. PREPDECK_LOG environment variable
// 2. $XDG_STATE_HOME/prepdeck/prepdeck.log
// 3. ~/.local/state/prepdeck/prepdeck.log
func DefaultLogPath() (string, error) {
	if p := os.Getenv("PREPDECK_LOG"); p != "" {
		return p, nil
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	return filepath.Join(stateHome, "prepdeck", "prepdeck.log"), nil
}
