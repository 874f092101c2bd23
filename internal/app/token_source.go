package app

import (
	"errors"
	"os"
	"strings"

	"golang.org/x/oauth2"
)

// AccessTokenEnv is consulted when no --token flag is given.
const AccessTokenEnv = "ONEDRIVE_ACCESS_TOKEN"

// ErrNoAccessToken is returned when neither the flag nor the environment
// carries an access token.
var ErrNoAccessToken = errors.New("no access token: pass --token or set " + AccessTokenEnv + " (see 'onedrive-live auth exchange')")

// cliTokenSource resolves the access token from the --token flag first and
// the environment second. Nothing is cached on disk or refreshed.
type cliTokenSource struct {
	flagValue string
	lookupEnv func(string) (string, bool)
}

func newCLITokenSource(flagValue string) *cliTokenSource {
	return &cliTokenSource{flagValue: flagValue, lookupEnv: os.LookupEnv}
}

// Token implements oauth2.TokenSource.
func (s *cliTokenSource) Token() (*oauth2.Token, error) {
	if v := strings.TrimSpace(s.flagValue); v != "" {
		return &oauth2.Token{AccessToken: v, TokenType: "bearer"}, nil
	}
	if v, ok := s.lookupEnv(AccessTokenEnv); ok && strings.TrimSpace(v) != "" {
		return &oauth2.Token{AccessToken: strings.TrimSpace(v), TokenType: "bearer"}, nil
	}
	return nil, ErrNoAccessToken
}
