// Package app wires the CLI's persisted configuration, logger, pending
// session state and token source into a ready-to-use SDK for the commands.
package app

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tonimelisma/onedrive-live/internal/config"
	"github.com/tonimelisma/onedrive-live/internal/logger"
	"github.com/tonimelisma/onedrive-live/internal/session"
	"github.com/tonimelisma/onedrive-live/pkg/onedrive"
	"golang.org/x/oauth2"
)

// ErrNotConfigured is returned when the client registration is missing.
var ErrNotConfigured = errors.New("client is not configured: run 'onedrive-live config init'")

type App struct {
	Config   *config.Configuration
	Logger   logger.Logger
	SDK      SDK
	Sessions *session.Manager
	Tokens   oauth2.TokenSource
}

func NewApp(cmd *cobra.Command) (*App, error) {
	cfg, err := config.LoadOrCreate()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	// Set debug mode from the flag if it was passed.
	debug, _ := cmd.Flags().GetBool("debug")
	if debug {
		cfg.Debug = true
	}

	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.Callback == "" {
		return nil, ErrNotConfigured
	}

	log := logger.New(cmd.ErrOrStderr(), cfg.Debug).With("command", cmd.CommandPath())
	od, err := onedrive.New(cfg.SDKConfig(log))
	if err != nil {
		return nil, fmt.Errorf("initializing onedrive client: %w", err)
	}

	dir, err := config.Dir()
	if err != nil {
		return nil, err
	}

	tokenFlag, _ := cmd.Flags().GetString("token")
	return &App{
		Config:   cfg,
		Logger:   log,
		SDK:      NewLiveSDK(od),
		Sessions: session.NewManagerWithConfigDir(dir),
		Tokens:   newCLITokenSource(tokenFlag),
	}, nil
}

// AccessToken returns the token the current invocation acts with.
func (a *App) AccessToken() (string, error) {
	tok, err := a.Tokens.Token()
	if err != nil {
		return "", err
	}
	return tok.AccessToken, nil
}
