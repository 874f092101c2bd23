// Package session keeps short-lived CLI state between two invocations, such
// as the PKCE verifier created by "auth url --pkce" and consumed by
// "auth exchange". Files are guarded by a lock so that concurrent CLI
// instances do not corrupt them.
package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/tonimelisma/onedrive-live/pkg/onedrive"
)

// ErrLocked is returned when another process holds a session file lock.
var ErrLocked = errors.New("session file is locked by another process")

// Manager handles session file operations with configurable directory
type Manager struct {
	configDir string
}

// NewManagerWithConfigDir creates a session manager rooted at configDir.
func NewManagerWithConfigDir(configDir string) *Manager {
	return &Manager{configDir: configDir}
}

func (m *Manager) getSessionDir() string {
	return filepath.Join(m.configDir, "sessions")
}

// withLock ensures the session directory exists, takes the lock for
// filePath and runs fn while holding it.
func (m *Manager) withLock(filePath string, fn func() error) error {
	if err := os.MkdirAll(m.getSessionDir(), onedrive.PermSecureDir); err != nil {
		return fmt.Errorf("creating session directory '%s': %w", m.getSessionDir(), err)
	}

	fileLock := flock.New(filePath + ".lock")
	locked, err := fileLock.TryLock()
	if err != nil {
		return fmt.Errorf("acquiring file lock for '%s': %w", filePath, err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrLocked, filePath)
	}
	defer func() { _ = fileLock.Unlock() }()

	return fn()
}
