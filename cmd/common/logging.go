package common

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// LogPath returns the default log file location under the cache dir.
func LogPath() string {
	return filepath.Join(CacheDir(), appName+".log")
}

// SetupLogging points the default slog logger at path.
// The terminal is owned by the UI while the player runs, so nothing is written to stderr.
// The returned closer must be called on shutdown.
func SetupLogging(path string) (io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	logFile, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))
	return logFile, nil
}
