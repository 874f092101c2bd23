package cmd

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/tonimelisma/onedrive-live/internal/app"
	"github.com/tonimelisma/onedrive-live/internal/logger"
	"github.com/tonimelisma/onedrive-live/internal/session"
	"github.com/tonimelisma/onedrive-live/pkg/onedrive"
	"golang.org/x/oauth2"
)

const testAccessToken = "test-access-token"

// MockSDK is a mock implementation of the SDK interface for testing.
type MockSDK struct {
	AuthorizationURLFunc           func(scopes ...onedrive.Scope) string
	AuthorizationURLWithPKCEFunc   func(scopes ...onedrive.Scope) (string, string, error)
	ExchangeAuthorizationCodeFunc  func(code string, opts ...onedrive.ExchangeOption) (*onedrive.AccessToken, error)
	ExchangeRefreshTokenFunc       func(refreshToken string) (*onedrive.AccessToken, error)
	GetMeFunc                      func(accessToken string) (*onedrive.Me, error)
	ListPhotosFunc                 func(accessToken, albumID string, opts ...onedrive.ListOption) ([]onedrive.Photo, error)
	GetPhotoFunc                   func(accessToken, photoID string) (*onedrive.Photo, error)
	UploadPhotoFunc                func(accessToken, albumID, format string, data []byte) (*onedrive.Photo, error)
	UploadPhotoWithDescriptionFunc func(accessToken, albumID, format, description string, data []byte) (*onedrive.Photo, error)
	UpdatePhotoDescriptionFunc     func(accessToken, photoID, description string) (*onedrive.Photo, error)
	DeletePhotoFunc                func(accessToken, photoID string) error
	ListAlbumsFunc                 func(accessToken string, opts ...onedrive.ListOption) ([]onedrive.Album, error)
	GetAlbumFunc                   func(accessToken, albumID string) (*onedrive.Album, error)
	CreateAlbumFunc                func(accessToken, name, description string) (*onedrive.Album, error)
	DeleteAlbumFunc                func(accessToken, albumID string) error
	GetRootFunc                    func(accessToken string) (*onedrive.Drive, error)
	GetQuotaFunc                   func(accessToken string) (*onedrive.Quota, error)
}

var errNotImplemented = errors.New("not implemented")

func (m *MockSDK) AuthorizationURL(scopes ...onedrive.Scope) string {
	if m.AuthorizationURLFunc != nil {
		return m.AuthorizationURLFunc(scopes...)
	}
	return ""
}

func (m *MockSDK) AuthorizationURLWithPKCE(scopes ...onedrive.Scope) (string, string, error) {
	if m.AuthorizationURLWithPKCEFunc != nil {
		return m.AuthorizationURLWithPKCEFunc(scopes...)
	}
	return "", "", errNotImplemented
}

func (m *MockSDK) ExchangeAuthorizationCode(_ context.Context, code string, opts ...onedrive.ExchangeOption) (*onedrive.AccessToken, error) {
	if m.ExchangeAuthorizationCodeFunc != nil {
		return m.ExchangeAuthorizationCodeFunc(code, opts...)
	}
	return nil, errNotImplemented
}

func (m *MockSDK) ExchangeRefreshToken(_ context.Context, refreshToken string) (*onedrive.AccessToken, error) {
	if m.ExchangeRefreshTokenFunc != nil {
		return m.ExchangeRefreshTokenFunc(refreshToken)
	}
	return nil, errNotImplemented
}

func (m *MockSDK) GetMe(_ context.Context, accessToken string) (*onedrive.Me, error) {
	if m.GetMeFunc != nil {
		return m.GetMeFunc(accessToken)
	}
	return nil, nil
}

func (m *MockSDK) ListPhotos(_ context.Context, accessToken, albumID string, opts ...onedrive.ListOption) ([]onedrive.Photo, error) {
	if m.ListPhotosFunc != nil {
		return m.ListPhotosFunc(accessToken, albumID, opts...)
	}
	return []onedrive.Photo{}, nil
}

func (m *MockSDK) GetPhoto(_ context.Context, accessToken, photoID string) (*onedrive.Photo, error) {
	if m.GetPhotoFunc != nil {
		return m.GetPhotoFunc(accessToken, photoID)
	}
	return nil, nil
}

func (m *MockSDK) UploadPhoto(_ context.Context, accessToken, albumID, format string, data []byte) (*onedrive.Photo, error) {
	if m.UploadPhotoFunc != nil {
		return m.UploadPhotoFunc(accessToken, albumID, format, data)
	}
	return nil, errNotImplemented
}

func (m *MockSDK) UploadPhotoWithDescription(_ context.Context, accessToken, albumID, format, description string, data []byte) (*onedrive.Photo, error) {
	if m.UploadPhotoWithDescriptionFunc != nil {
		return m.UploadPhotoWithDescriptionFunc(accessToken, albumID, format, description, data)
	}
	return nil, errNotImplemented
}

func (m *MockSDK) UpdatePhotoDescription(_ context.Context, accessToken, photoID, description string) (*onedrive.Photo, error) {
	if m.UpdatePhotoDescriptionFunc != nil {
		return m.UpdatePhotoDescriptionFunc(accessToken, photoID, description)
	}
	return nil, errNotImplemented
}

func (m *MockSDK) DeletePhoto(_ context.Context, accessToken, photoID string) error {
	if m.DeletePhotoFunc != nil {
		return m.DeletePhotoFunc(accessToken, photoID)
	}
	return nil
}

func (m *MockSDK) ListAlbums(_ context.Context, accessToken string, opts ...onedrive.ListOption) ([]onedrive.Album, error) {
	if m.ListAlbumsFunc != nil {
		return m.ListAlbumsFunc(accessToken, opts...)
	}
	return []onedrive.Album{}, nil
}

func (m *MockSDK) GetAlbum(_ context.Context, accessToken, albumID string) (*onedrive.Album, error) {
	if m.GetAlbumFunc != nil {
		return m.GetAlbumFunc(accessToken, albumID)
	}
	return nil, nil
}

func (m *MockSDK) CreateAlbum(_ context.Context, accessToken, name, description string) (*onedrive.Album, error) {
	if m.CreateAlbumFunc != nil {
		return m.CreateAlbumFunc(accessToken, name, description)
	}
	return nil, errNotImplemented
}

func (m *MockSDK) DeleteAlbum(_ context.Context, accessToken, albumID string) error {
	if m.DeleteAlbumFunc != nil {
		return m.DeleteAlbumFunc(accessToken, albumID)
	}
	return nil
}

func (m *MockSDK) GetRoot(_ context.Context, accessToken string) (*onedrive.Drive, error) {
	if m.GetRootFunc != nil {
		return m.GetRootFunc(accessToken)
	}
	return nil, nil
}

func (m *MockSDK) GetQuota(_ context.Context, accessToken string) (*onedrive.Quota, error) {
	if m.GetQuotaFunc != nil {
		return m.GetQuotaFunc(accessToken)
	}
	return nil, nil
}

// newTestApp creates a new app instance with a mock SDK for testing. The
// access token is always testAccessToken and pending sign-ins live in a
// temporary directory.
func newTestApp(t *testing.T, sdk app.SDK) *app.App {
	t.Helper()
	return &app.App{
		Logger:   logger.NoopLogger{},
		SDK:      sdk,
		Sessions: session.NewManagerWithConfigDir(t.TempDir()),
		Tokens:   oauth2.StaticTokenSource(&oauth2.Token{AccessToken: testAccessToken}),
	}
}

// newTestCmd returns a command carrying a background context, as
// ExecuteContext would give it.
func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

// captureOutput captures stdout and stderr, returning them as a string.
// This version doesn't mutate global log state.
func captureOutput(t *testing.T, f func()) string {
	t.Helper()

	// Save original log output
	originalLogOutput := log.Writer()

	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Capture stderr and redirect log to it
	oldStderr := os.Stderr
	r2, w2, _ := os.Pipe()
	os.Stderr = w2
	log.SetOutput(w2)

	// Run the function
	f()

	// Restore everything
	w.Close()
	w2.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr
	log.SetOutput(originalLogOutput)

	// Read captured output
	stdout, _ := io.ReadAll(r)
	stderr, _ := io.ReadAll(r2)

	// Combine stdout and stderr
	output := string(stdout) + string(stderr)
	return output
}
