// Package opener hands located files to the operating system's PDF viewer.
package opener

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"sync"
)

// Opener opens a batch of files.
type Opener interface {
	Open(ctx context.Context, paths []string) error
}

// System starts viewer processes without waiting for them. With a handler
// configured every path goes to one handler process; otherwise each path is
// opened with the platform's default opener.
type System struct {
	handler string
	goos    string
	start   func(*exec.Cmd) error
	logger  *slog.Logger
}

// Option configures a System.
type Option func(*System)

// WithGOOS overrides the platform used to pick the default opener.
func WithGOOS(goos string) Option {
	return func(s *System) { s.goos = goos }
}

// WithStarter replaces process start-up, mainly for tests.
func WithStarter(start func(*exec.Cmd) error) Option {
	return func(s *System) { s.start = start }
}

// WithLogger sets the logger used for spawn records.
func WithLogger(logger *slog.Logger) Option {
	return func(s *System) { s.logger = logger }
}

// NewSystem creates a System opener. An empty handler selects the platform
// default.
func NewSystem(handler string, opts ...Option) *System {
	s := &System{
		handler: handler,
		goos:    runtime.GOOS,
		start:   startDetached,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Commands returns the argument vectors Open would run for paths.
func (s *System) Commands(paths []string) [][]string {
	if len(paths) == 0 {
		return nil
	}
	if s.handler != "" {
		return [][]string{append([]string{s.handler}, paths...)}
	}

	cmds := make([][]string, 0, len(paths))
	for _, path := range paths {
		cmds = append(cmds, defaultCommand(s.goos, path))
	}
	return cmds
}

func defaultCommand(goos, path string) []string {
	switch goos {
	case "windows":
		return []string{"rundll32", "url.dll,FileProtocolHandler", path}
	case "darwin":
		return []string{"open", path}
	default:
		return []string{"xdg-open", path}
	}
}

// Open starts every command for paths. A failed start does not stop the
// remaining ones; all failures are joined into the returned error.
func (s *System) Open(ctx context.Context, paths []string) error {
	var errs []error
	for _, argv := range s.Commands(paths) {
		if err := ctx.Err(); err != nil {
			return errors.Join(append(errs, err)...)
		}

		cmd := exec.Command(argv[0], argv[1:]...)
		if err := s.start(cmd); err != nil {
			s.logger.Error("viewer failed to start", "argv", argv, "error", err)
			errs = append(errs, fmt.Errorf("failed to start %s: %w", argv[0], err))
			continue
		}
		s.logger.Debug("viewer started", "argv", argv)
	}
	return errors.Join(errs...)
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}

// Recorder is an Opener that only remembers what it was asked to open. It
// backs dry runs and tests.
type Recorder struct {
	mu     sync.Mutex
	opened []string
	err    error
}

// NewRecorder returns a Recorder that fails every Open with err, if non-nil.
func NewRecorder(err error) *Recorder {
	return &Recorder{err: err}
}

// Open implements Opener.
func (r *Recorder) Open(ctx context.Context, paths []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.opened = append(r.opened, paths...)
	return nil
}

// Opened returns every path recorded so far.
func (r *Recorder) Opened() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.opened...)
}
