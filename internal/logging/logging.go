// Package logging provides opt-in structured logging for loadsheet.
// With the --debug flag, JSON logs are written to ~/.loadsheet/logs/;
// without it, only warnings and errors reach stderr.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Config contains logging configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// FilePath is the log file path. Empty disables file logging.
	FilePath string
	// MaxSizeMB is the file size in MB before rotation.
	MaxSizeMB int
	// WriteToStderr also mirrors records to stderr.
	WriteToStderr bool
}

// DefaultConfig returns the quiet stderr-only configuration.
func DefaultConfig() Config {
	return Config{Level: "warn", WriteToStderr: true}
}

// DebugConfig returns the --debug configuration: everything to file.
func DebugConfig() Config {
	return Config{
		Level:     "debug",
		FilePath:  DefaultLogPath(),
		MaxSizeMB: 5,
	}
}

// DefaultLogDir returns the log directory, falling back to the temp
// directory when the home directory is unavailable.
func DefaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".loadsheet", "logs")
	}
	return filepath.Join(home, ".loadsheet", "logs")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(DefaultLogDir(), "loadsheet.log")
}

// Setup initializes logging per cfg, sets the default slog logger, and
// returns a cleanup function that closes the log file.
func Setup(cfg Config) (func(), error) {
	var writers []io.Writer
	cleanup := func() {}

	if cfg.FilePath != "" {
		w, err := NewRotatingWriter(cfg.FilePath, cfg.MaxSizeMB)
		if err != nil {
			return nil, err
		}
		writers = append(writers, w)
		cleanup = func() { _ = w.Close() }
	}
	if cfg.WriteToStderr || len(writers) == 0 {
		writers = append(writers, os.Stderr)
	}

	handler := slog.NewJSONHandler(io.MultiWriter(writers...), &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	})
	slog.SetDefault(slog.New(handler))
	return cleanup, nil
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
