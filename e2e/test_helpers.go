//go:build e2e

package e2e

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/tonimelisma/onedrive-live/internal/app"
	"github.com/tonimelisma/onedrive-live/internal/config"
	"github.com/tonimelisma/onedrive-live/internal/logger"
	"github.com/tonimelisma/onedrive-live/pkg/onedrive"
)

const testAlbumPrefix = "E2E-Tests"

// E2ETestHelper provides utilities for E2E testing
type E2ETestHelper struct {
	App     *app.App
	Config  *Config
	Token   string
	TestID  string
	AlbumID string
}

// NewE2ETestHelper creates a new E2E test helper with a fresh album that is
// removed when the test ends.
func NewE2ETestHelper(t *testing.T) *E2ETestHelper {
	t.Helper()

	e2eCfg := LoadConfig()
	if e2eCfg.AccessToken == "" {
		t.Skip(`
E2E Testing Setup Required:

1. Register the client once:
   ./onedrive-live config init --client-id ... --client-secret ... --callback ...
   cp ~/.config/onedrive-live/config.json ./config.json

2. Obtain an access token:
   ./onedrive-live auth url --pkce
   ./onedrive-live auth exchange <code>

3. Run the E2E tests:
   ONEDRIVE_E2E_ACCESS_TOKEN=<token> go test -tags=e2e -v ./e2e/...
`)
	}

	t.Setenv(config.PathEnv, e2eCfg.ConfigPath)
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config from %s: %v", e2eCfg.ConfigPath, err)
	}

	log := logger.New(os.Stderr, cfg.Debug)
	od, err := onedrive.New(cfg.SDKConfig(log))
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}

	helper := &E2ETestHelper{
		App:    &app.App{Config: cfg, Logger: log, SDK: app.NewLiveSDK(od)},
		Config: e2eCfg,
		Token:  e2eCfg.AccessToken,
		TestID: generateTestID(),
	}

	album, err := helper.App.SDK.CreateAlbum(helper.Context(t), helper.Token, testAlbumPrefix+"-"+helper.TestID, "Created by the E2E tests")
	if err != nil {
		t.Fatalf("Failed to create test album: %v", err)
	}
	if album == nil {
		t.Fatal("Album creation returned no album")
	}
	helper.AlbumID = album.ID

	t.Cleanup(func() {
		helper.Cleanup(t)
	})
	return helper
}

// Context returns a context bounded by the configured E2E timeout.
func (h *E2ETestHelper) Context(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), h.Config.Timeout)
	t.Cleanup(cancel)
	return ctx
}

// TestImage encodes a small solid PNG. Albums only accept real image data.
func (h *E2ETestHelper) TestImage(t *testing.T, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

// Cleanup removes the test album and everything in it.
func (h *E2ETestHelper) Cleanup(t *testing.T) {
	t.Helper()
	if !h.Config.Cleanup || h.AlbumID == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), h.Config.Timeout)
	defer cancel()
	if err := h.App.SDK.DeleteAlbum(ctx, h.Token, h.AlbumID); err != nil {
		t.Logf("Warning: failed to delete test album %s: %v", h.AlbumID, err)
	}
}

// generateTestID creates a unique test identifier
func generateTestID() string {
	return fmt.Sprintf("test-%d", time.Now().UnixNano())
}

// LogTestInfo logs useful information about the test setup
func (h *E2ETestHelper) LogTestInfo(t *testing.T) {
	t.Helper()
	t.Logf("Test ID: %s", h.TestID)
	t.Logf("Test Album: %s", h.AlbumID)
}
