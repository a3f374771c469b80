// Package history keeps a small ledger of recently opened files. The ledger
// is a JSON file shared by concurrent launcher processes through a lock file.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// Entry is one opened file.
type Entry struct {
	ID         string    `json:"id" yaml:"id"`
	RunID      string    `json:"run_id" yaml:"run_id"`
	Command    string    `json:"command" yaml:"command"`
	Identifier string    `json:"identifier" yaml:"identifier"`
	Path       string    `json:"path" yaml:"path"`
	Source     string    `json:"source" yaml:"source"`
	OpenedAt   time.Time `json:"opened_at" yaml:"opened_at"`
}

type ledger struct {
	Version string  `json:"version"`
	Entries []Entry `json:"entries"`
}

const ledgerVersion = "1"

// Constants for file locking
const (
	lockTimeout    = 3 * time.Second
	lockMaxRetries = 3
	lockRetryDelay = 100 * time.Millisecond
)

// Store reads and appends ledger entries. Only the newest limit entries are
// kept.
type Store struct {
	path  string
	limit int
	fs    afero.Fs
	lock  FileLock
	now   func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithFileSystem replaces the OS filesystem.
func WithFileSystem(fsys afero.Fs) Option {
	return func(s *Store) { s.fs = fsys }
}

// WithFileLockFactory replaces the flock-based lock.
func WithFileLockFactory(factory FileLockFactory) Option {
	return func(s *Store) { s.lock = factory.New(s.path + ".lock") }
}

// WithClock sets the time source used for OpenedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// Open prepares a Store for the ledger at path. The file is created lazily on
// the first Append.
func Open(path string, limit int, opts ...Option) (*Store, error) {
	if path == "" {
		return nil, errors.New("history file path is required")
	}
	if limit < 1 {
		return nil, fmt.Errorf("history limit must be at least 1, got %d", limit)
	}

	s := &Store{
		path:  path,
		limit: limit,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}

	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create history directory: %w", err)
	}
	if s.lock == nil {
		s.lock = flockFactory{}.New(path + ".lock")
	}
	return s, nil
}

// Path returns the ledger file path.
func (s *Store) Path() string {
	return s.path
}

// Append stamps and stores entries, assigning an ID and OpenedAt where unset,
// and trims the ledger to the store's limit.
func (s *Store) Append(ctx context.Context, entries ...Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return s.withLock(ctx, func() error {
		data, err := s.load()
		if err != nil {
			return err
		}

		now := s.now()
		for _, e := range entries {
			if e.ID == "" {
				e.ID = uuid.NewString()
			}
			if e.OpenedAt.IsZero() {
				e.OpenedAt = now
			}
			data.Entries = append(data.Entries, e)
		}
		if excess := len(data.Entries) - s.limit; excess > 0 {
			data.Entries = data.Entries[excess:]
		}
		return s.save(data)
	})
}

// Recent returns up to n entries, newest first. n <= 0 returns all entries.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	var result []Entry
	err := s.withLock(ctx, func() error {
		data, err := s.load()
		if err != nil {
			return err
		}
		count := len(data.Entries)
		if n > 0 && n < count {
			count = n
		}
		result = make([]Entry, 0, count)
		for i := len(data.Entries) - 1; i >= 0 && len(result) < count; i-- {
			result = append(result, data.Entries[i])
		}
		return nil
	})
	return result, err
}

// Clear removes every entry.
func (s *Store) Clear(ctx context.Context) error {
	return s.withLock(ctx, func() error {
		return s.save(&ledger{Version: ledgerVersion})
	})
}

func (s *Store) withLock(ctx context.Context, fn func() error) error {
	ctx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	if err := s.acquireLock(ctx); err != nil {
		return err
	}
	defer func() { _ = s.lock.Unlock() }()

	return fn()
}

// acquireLock attempts to acquire an exclusive file lock with retry logic
func (s *Store) acquireLock(ctx context.Context) error {
	for i := 0; i < lockMaxRetries; i++ {
		locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
		if err != nil {
			return fmt.Errorf("failed to acquire history lock: %w", err)
		}
		if locked {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}

	return fmt.Errorf("failed to acquire history lock after %d attempts", lockMaxRetries)
}

// load reads the ledger; caller must hold the lock.
func (s *Store) load() (*ledger, error) {
	raw, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &ledger{Version: ledgerVersion}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	if len(raw) == 0 {
		return &ledger{Version: ledgerVersion}, nil
	}

	var data ledger
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse history %s: %w", s.path, err)
	}
	return &data, nil
}

// save writes the ledger atomically; caller must hold the lock.
func (s *Store) save(data *ledger) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	tmpFile := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmpFile, raw, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := s.fs.Rename(tmpFile, s.path); err != nil {
		_ = s.fs.Remove(tmpFile)
		return fmt.Errorf("failed to rename file: %w", err)
	}
	return nil
}
