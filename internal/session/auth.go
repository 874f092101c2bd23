package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tonimelisma/onedrive-live/pkg/onedrive"
)

// pendingAuthFile is the name of the file holding a pending PKCE login.
const pendingAuthFile = "pending_auth.json"

// PendingAuthTTL is how long a pending login stays usable. Authorization
// codes are short-lived, so an older verifier is useless.
const PendingAuthTTL = 10 * time.Minute

// PendingAuth is a login started with a PKCE challenge whose code has not
// been exchanged yet. It holds no token.
type PendingAuth struct {
	CodeVerifier string    `json:"code_verifier"`
	Scopes       []string  `json:"scopes"`
	CreatedAt    time.Time `json:"created_at"`
}

// Expired reports whether the pending login is older than PendingAuthTTL.
func (p *PendingAuth) Expired(now time.Time) bool {
	return now.Sub(p.CreatedAt) > PendingAuthTTL
}

func (m *Manager) getPendingAuthFilePath() string {
	return filepath.Join(m.getSessionDir(), pendingAuthFile)
}

// SavePendingAuth persists a pending login, replacing any earlier one.
func (m *Manager) SavePendingAuth(state *PendingAuth) error {
	filePath := m.getPendingAuthFilePath()
	return m.withLock(filePath, func() error {
		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling pending auth: %w", err)
		}
		if err := os.WriteFile(filePath, data, onedrive.PermSecureFile); err != nil {
			return fmt.Errorf("writing pending auth file '%s': %w", filePath, err)
		}
		return nil
	})
}

// LoadPendingAuth returns the pending login, or nil when there is none.
func (m *Manager) LoadPendingAuth() (*PendingAuth, error) {
	filePath := m.getPendingAuthFilePath()
	var state *PendingAuth
	err := m.withLock(filePath, func() error {
		data, err := os.ReadFile(filePath)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil
			}
			return fmt.Errorf("reading pending auth file '%s': %w", filePath, err)
		}

		var loaded PendingAuth
		if err := json.Unmarshal(data, &loaded); err != nil {
			return fmt.Errorf("unmarshalling pending auth from '%s': %w", filePath, err)
		}
		state = &loaded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// DeletePendingAuth removes the pending login. Deleting when there is none
// is not an error.
func (m *Manager) DeletePendingAuth() error {
	filePath := m.getPendingAuthFilePath()
	return m.withLock(filePath, func() error {
		if err := os.Remove(filePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("deleting pending auth file '%s': %w", filePath, err)
		}
		return nil
	})
}
