// Package logging configures the process-wide slog logger: a JSON log file in
// the user cache directory, optionally mirrored to stderr as text.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const appName = "shopdocs"

// Log level mapping
var logLevelMap = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Options controls Init.
type Options struct {
	Level   string // debug, info, warn or error; anything else means warn
	Verbose bool   // also write text records to Stderr
	Dir     string // log directory, defaults to CacheDir()
	Stderr  io.Writer
	RunID   string // attached to every record when set
}

// ParseLevel maps a level name to a slog.Level, defaulting to warn.
func ParseLevel(name string) slog.Level {
	level, ok := logLevelMap[strings.ToLower(name)]
	if !ok {
		return slog.LevelWarn
	}
	return level
}

// Init opens the log file, builds the logger, installs it with
// slog.SetDefault and returns it with a function that closes the file.
func Init(opts Options) (*slog.Logger, func() error, error) {
	level := ParseLevel(opts.Level)

	logDir := opts.Dir
	if logDir == "" {
		logDir = CacheDir()
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, appName+".log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	logger := New(logFile, stderr, level, opts.Verbose)
	if opts.RunID != "" {
		logger = logger.With("run_id", opts.RunID)
	}
	slog.SetDefault(logger)

	logger.Debug("logging initialized",
		"level", level.String(),
		"log_file", logPath,
		"verbose", opts.Verbose)

	return logger, logFile.Close, nil
}

// New builds a logger writing JSON to file and, when verbose, text to stderr.
func New(file io.Writer, stderr io.Writer, level slog.Level, verbose bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
	})

	if verbose && stderr != nil {
		stderrHandler := slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: level,
		})
		handler = &multiHandler{
			handlers: []slog.Handler{handler, stderrHandler},
		}
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// CacheDir returns the XDG cache directory for shopdocs
func CacheDir() string {
	// First check XDG_CACHE_HOME
	if xdgCache := os.Getenv("XDG_CACHE_HOME"); xdgCache != "" {
		return filepath.Join(xdgCache, appName)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Last resort - use temp directory
		return filepath.Join(os.TempDir(), appName)
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Caches", appName)
	case "windows":
		if appData := os.Getenv("LOCALAPPDATA"); appData != "" {
			return filepath.Join(appData, appName, "cache")
		}
	}

	return filepath.Join(homeDir, ".cache", appName)
}

// multiHandler implements slog.Handler to write to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil {
			return err
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}
