// Package config persists the onedrive-live CLI settings: the application's
// client registration, endpoint overrides, HTTP settings and the debug flag.
// Tokens are never written here; the CLI prints them and takes them back
// through a flag or the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/tonimelisma/onedrive-live/pkg/onedrive"
)

const (
	configDir  = "onedrive-live"
	configFile = "config.json"

	// PathEnv overrides the config file location.
	PathEnv = "ONEDRIVE_CONFIG_PATH"
)

// ErrLocked is returned when another process holds the config lock.
var ErrLocked = errors.New("config file is locked by another process")

// Endpoints overrides the provider URLs. Empty fields use the SDK defaults.
type Endpoints struct {
	AuthURL  string `json:"auth_url,omitempty"`
	TokenURL string `json:"token_url,omitempty"`
	APIURL   string `json:"api_url,omitempty"`
}

// Configuration holds all the application's persisted settings.
type Configuration struct {
	ClientID     string              `json:"client_id"`
	ClientSecret string              `json:"client_secret"`
	Callback     string              `json:"callback"`
	Endpoints    Endpoints           `json:"endpoints"`
	HTTP         onedrive.HTTPConfig `json:"http"`
	Debug        bool                `json:"debug"`
}

// Path returns the config file location, honoring ONEDRIVE_CONFIG_PATH.
func Path() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config directory: %w", err)
	}
	return filepath.Join(dir, configDir, configFile), nil
}

// Dir returns the directory holding the config file. Other CLI state lives
// next to it.
func Dir() (string, error) {
	p, err := Path()
	if err != nil {
		return "", err
	}
	return filepath.Dir(p), nil
}

// SDKConfig turns the settings into an onedrive.Config.
func (c *Configuration) SDKConfig(log onedrive.Logger) onedrive.Config {
	return onedrive.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		Callback:     c.Callback,
		Endpoint: onedrive.Endpoint{
			AuthURL:  c.Endpoints.AuthURL,
			TokenURL: c.Endpoints.TokenURL,
			APIURL:   c.Endpoints.APIURL,
		},
		NewTransport: onedrive.NewHTTPTransportFactory(c.HTTP),
		Logger:       log,
	}
}

// Save persists the configuration to disk under an exclusive file lock.
func (c *Configuration) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), onedrive.PermSecureDir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	unlock, err := lock(path)
	if err != nil {
		return err
	}
	defer unlock()

	jsonData, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling config to JSON: %w", err)
	}
	if err := os.WriteFile(path, jsonData, onedrive.PermSecureFile); err != nil {
		return fmt.Errorf("writing configuration file: %w", err)
	}
	return nil
}

// Load reads the configuration file. Missing HTTP settings are filled with
// the SDK defaults.
func Load() (*Configuration, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Configuration{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config file %s: %w", path, err)
	}
	if cfg.HTTP.Timeout <= 0 {
		cfg.HTTP = onedrive.DefaultHTTPConfig()
	}
	return cfg, nil
}

// LoadOrCreate loads the configuration file, or returns a default
// configuration when it does not exist yet.
func LoadOrCreate() (*Configuration, error) {
	cfg, err := Load()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Configuration{HTTP: onedrive.DefaultHTTPConfig()}, nil
		}
		return nil, err
	}
	return cfg, nil
}

// lock takes the file lock guarding path and returns its release func.
func lock(path string) (func(), error) {
	fileLock := flock.New(path + ".lock")
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring file lock for %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%w: %s", ErrLocked, path)
	}
	return func() { _ = fileLock.Unlock() }, nil
}
