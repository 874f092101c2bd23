// Package cmd (auth.go) defines the Cobra commands related to authentication.
// The CLI walks the user through the browser sign-in and prints the issued
// tokens; it never stores them. A PKCE verifier is kept only until its code
// is exchanged.
package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tonimelisma/onedrive-live/internal/app"
	"github.com/tonimelisma/onedrive-live/internal/session"
	"github.com/tonimelisma/onedrive-live/internal/ui"
	"github.com/tonimelisma/onedrive-live/pkg/onedrive"
)

// defaultScopes are requested when 'auth url' is given no --scope.
var defaultScopes = []string{
	string(onedrive.ScopeSignin),
	string(onedrive.ScopeOfflineAccess),
	string(onedrive.ScopePhotos),
	string(onedrive.ScopeSkyDriveUpdate),
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Sign in and manage tokens",
	Long:  `Provides subcommands to build the sign-in URL, exchange the returned code or a refresh token, and show who a token belongs to.`,
}

var authURLCmd = &cobra.Command{
	Use:   "url",
	Short: "Print the browser sign-in URL",
	Long: `Prints the URL to open in a browser. After granting access the browser is
redirected to the registered callback with a 'code' query parameter; pass it to
'onedrive-live auth exchange'.

With --pkce the URL carries an S256 code challenge and the matching verifier is
kept on disk until the code is exchanged.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'auth url': %w", err)
		}
		scopes, _ := cmd.Flags().GetStringSlice("scope")
		pkce, _ := cmd.Flags().GetBool("pkce")
		return authURLLogic(a, scopes, pkce)
	},
}

var authExchangeCmd = &cobra.Command{
	Use:   "exchange <code>",
	Short: "Exchange an authorization code for tokens",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'auth exchange': %w", err)
		}
		verifier, _ := cmd.Flags().GetString("verifier")
		return authExchangeLogic(a, cmd, args[0], verifier)
	},
}

var authRefreshCmd = &cobra.Command{
	Use:   "refresh <refresh-token>",
	Short: "Trade a refresh token for a new access token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'auth refresh': %w", err)
		}
		return authRefreshLogic(a, cmd, args[0])
	},
}

var authWhoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the profile the access token belongs to",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.NewApp(cmd)
		if err != nil {
			return fmt.Errorf("initializing app for 'auth whoami': %w", err)
		}
		return authWhoamiLogic(a, cmd)
	},
}

func authURLLogic(a *app.App, scopes []string, pkce bool) error {
	if len(scopes) == 0 {
		scopes = defaultScopes
	}
	requested := make([]onedrive.Scope, 0, len(scopes))
	for _, s := range scopes {
		requested = append(requested, onedrive.Scope(s))
	}

	if !pkce {
		ui.DisplayAuthURL(a.SDK.AuthorizationURL(requested...))
		return nil
	}

	authURL, verifier, err := a.SDK.AuthorizationURLWithPKCE(requested...)
	if err != nil {
		return fmt.Errorf("building sign-in URL: %w", err)
	}
	pending := &session.PendingAuth{
		CodeVerifier: verifier,
		Scopes:       scopes,
		CreatedAt:    time.Now(),
	}
	if err := a.Sessions.SavePendingAuth(pending); err != nil {
		return fmt.Errorf("saving pending sign-in: %w", err)
	}
	ui.DisplayAuthURL(authURL)
	return nil
}

func authExchangeLogic(a *app.App, cmd *cobra.Command, code, verifier string) error {
	fromSession := false
	if verifier == "" && a.Sessions != nil {
		pending, err := a.Sessions.LoadPendingAuth()
		if err != nil {
			return fmt.Errorf("loading pending sign-in: %w", err)
		}
		switch {
		case pending == nil:
		case pending.Expired(time.Now()):
			a.Logger.Warn("pending sign-in expired, exchanging without a code verifier", "created_at", pending.CreatedAt)
			if err := a.Sessions.DeletePendingAuth(); err != nil {
				return fmt.Errorf("clearing expired sign-in: %w", err)
			}
		default:
			verifier = pending.CodeVerifier
			fromSession = true
		}
	}

	var opts []onedrive.ExchangeOption
	if verifier != "" {
		opts = append(opts, onedrive.WithCodeVerifier(verifier))
	}

	token, err := a.SDK.ExchangeAuthorizationCode(cmd.Context(), code, opts...)
	if err != nil {
		return fmt.Errorf("exchanging authorization code: %w", err)
	}
	if fromSession {
		if err := a.Sessions.DeletePendingAuth(); err != nil {
			return fmt.Errorf("clearing pending sign-in: %w", err)
		}
	}
	ui.DisplayToken(token)
	return nil
}

func authRefreshLogic(a *app.App, cmd *cobra.Command, refreshToken string) error {
	token, err := a.SDK.ExchangeRefreshToken(cmd.Context(), refreshToken)
	if err != nil {
		return fmt.Errorf("refreshing token: %w", err)
	}
	ui.DisplayToken(token)
	return nil
}

func authWhoamiLogic(a *app.App, cmd *cobra.Command) error {
	token, err := a.AccessToken()
	if err != nil {
		return err
	}
	me, err := a.SDK.GetMe(cmd.Context(), token)
	if err != nil {
		return wrapAPIError("getting profile", err)
	}
	ui.DisplayMe(me)
	return nil
}

// wrapAPIError adds a hint when the provider rejected the access token.
func wrapAPIError(action string, err error) error {
	var svcErr *onedrive.ServiceError
	if errors.As(err, &svcErr) && strings.HasPrefix(svcErr.Code, "request_token_") {
		return fmt.Errorf("%s: the access token was rejected, run 'onedrive-live auth refresh': %w", action, err)
	}
	return fmt.Errorf("%s: %w", action, err)
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authURLCmd)
	authCmd.AddCommand(authExchangeCmd)
	authCmd.AddCommand(authRefreshCmd)
	authCmd.AddCommand(authWhoamiCmd)

	authURLCmd.Flags().StringSlice("scope", nil, "Scope to request (repeatable, default wl.signin,wl.offline_access,wl.photos,wl.skydrive_update)")
	authURLCmd.Flags().Bool("pkce", false, "Add an S256 code challenge and remember its verifier")
	authExchangeCmd.Flags().String("verifier", "", "PKCE code verifier (default: the one saved by 'auth url --pkce')")
}
