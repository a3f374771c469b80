package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelWarn,
		"verbose": slog.LevelWarn,
	}
	for name, want := range tests {
		if got := ParseLevel(name); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestNewFansOutWhenVerbose(t *testing.T) {
	var file, stderr bytes.Buffer
	logger := New(&file, &stderr, slog.LevelInfo, true)

	logger.Info("opened", "id", "A1")
	logger.Debug("hidden")

	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(file.Bytes()), &record); err != nil {
		t.Fatalf("file output is not a single JSON record: %v\n%s", err, file.String())
	}
	if record["msg"] != "opened" || record["id"] != "A1" {
		t.Errorf("unexpected record %v", record)
	}
	if _, ok := record["source"]; !ok {
		t.Error("expected source attribute in file log")
	}

	if !strings.Contains(stderr.String(), "msg=opened") {
		t.Errorf("expected text record on stderr, got %q", stderr.String())
	}
	if strings.Contains(stderr.String(), "hidden") {
		t.Error("debug record leaked past info level")
	}
}

func TestNewQuietByDefault(t *testing.T) {
	var file, stderr bytes.Buffer
	logger := New(&file, &stderr, slog.LevelWarn, false)

	logger.Warn("not found", "id", "12345")

	if stderr.Len() != 0 {
		t.Errorf("expected nothing on stderr, got %q", stderr.String())
	}
	if !strings.Contains(file.String(), `"not found"`) {
		t.Errorf("expected record in file, got %q", file.String())
	}
}

func TestMultiHandlerWithAttrs(t *testing.T) {
	var file, stderr bytes.Buffer
	logger := New(&file, &stderr, slog.LevelInfo, true).With("run_id", "r1").WithGroup("dwg")

	logger.Info("located", "path", "/x.PDF")

	if !strings.Contains(stderr.String(), "run_id=r1") || !strings.Contains(stderr.String(), "dwg.path=/x.PDF") {
		t.Errorf("attrs lost on stderr: %q", stderr.String())
	}
	if !strings.Contains(file.String(), `"run_id":"r1"`) {
		t.Errorf("attrs lost in file: %q", file.String())
	}
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var stderr bytes.Buffer
	logger, closeLog, err := Init(Options{Level: "info", Dir: dir, Stderr: &stderr, Verbose: true, RunID: "abc"})
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	logger.Info("hello")
	if err := closeLog(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "shopdocs.log"))
	if err != nil {
		t.Fatalf("log file missing: %v", err)
	}
	if !strings.Contains(string(data), `"run_id":"abc"`) {
		t.Errorf("expected run_id in log file, got %s", data)
	}
	if slog.Default() != logger {
		t.Error("expected Init to install the default logger")
	}
}

func TestCacheDirHonoursXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	if got := CacheDir(); got != filepath.Join("/tmp/xdg-cache", "shopdocs") {
		t.Errorf("CacheDir() = %q", got)
	}
}
