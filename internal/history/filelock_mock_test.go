package history

import (
	"context"
	"sync"
	"time"
)

// mockFileLock provides a mock implementation of FileLock for testing
type mockFileLock struct {
	mu        sync.Mutex
	isLocked  bool
	lockError error

	LockAttempts   int
	UnlockAttempts int
}

func (m *mockFileLock) TryLockContext(ctx context.Context, retryInterval time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LockAttempts++
	if m.lockError != nil {
		return false, m.lockError
	}
	if m.isLocked {
		return false, nil
	}
	m.isLocked = true
	return true, nil
}

func (m *mockFileLock) Unlock() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UnlockAttempts++
	m.isLocked = false
	return nil
}

// mockFileLockFactory hands out a single shared mock lock
type mockFileLockFactory struct {
	lock *mockFileLock
}

func newMockFileLockFactory() *mockFileLockFactory {
	return &mockFileLockFactory{lock: &mockFileLock{}}
}

func (f *mockFileLockFactory) New(path string) FileLock {
	return f.lock
}
