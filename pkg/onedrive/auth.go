// Package onedrive (auth.go) implements the OAuth2 token lifecycle against the
// Live identity provider: building the authorization URL, exchanging an
// authorization code for a token, and exchanging a refresh token for a new
// one. Both exchanges produce the same AccessToken model.
package onedrive

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	cv "github.com/nirasan/go-oauth-pkce-code-verifier"
	"github.com/spf13/cast"
	"golang.org/x/oauth2"
)

// AccessToken is the credential issued by the token endpoint.
// RefreshToken and UserID are nil when the provider did not send them.
type AccessToken struct {
	TokenType    string
	ExpiresIn    int
	Scope        string
	AccessToken  string
	RefreshToken *string
	UserID       *string
}

// OAuth2Token converts the token into an *oauth2.Token whose expiry is
// counted from issuedAt. Nothing is refreshed.
func (t *AccessToken) OAuth2Token(issuedAt time.Time) *oauth2.Token {
	tok := &oauth2.Token{
		AccessToken: t.AccessToken,
		TokenType:   t.TokenType,
		Expiry:      issuedAt.Add(time.Duration(t.ExpiresIn) * time.Second),
	}
	if t.RefreshToken != nil {
		tok.RefreshToken = *t.RefreshToken
	}
	return tok
}

// Authenticator manages the token lifecycle for one client registration.
// It has no mutable state.
type Authenticator struct {
	clientID     string
	clientSecret string
	callback     string
	tokenURL     string
	oauth        *oauth2.Config
	api          *apiClient
}

func newAuthenticator(cfg Config, api *apiClient) *Authenticator {
	return &Authenticator{
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		callback:     cfg.Callback,
		tokenURL:     cfg.Endpoint.TokenURL,
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.Callback,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.Endpoint.AuthURL,
				TokenURL: cfg.Endpoint.TokenURL,
			},
		},
		api: api,
	}
}

// AuthorizationURL returns the URL the user must visit to grant the given
// scopes. The scopes are joined with single spaces in the order given.
// No network access takes place.
func (a *Authenticator) AuthorizationURL(scopes ...Scope) string {
	return a.withScopes(scopes).AuthCodeURL("")
}

// AuthorizationURLWithPKCE is AuthorizationURL plus a PKCE challenge.
// The returned verifier must be kept by the caller and handed back through
// WithCodeVerifier when the code is exchanged.
func (a *Authenticator) AuthorizationURLWithPKCE(scopes ...Scope) (authURL string, verifier string, err error) {
	codeVerifier, err := cv.CreateCodeVerifier()
	if err != nil {
		return "", "", fmt.Errorf("creating code verifier: %w", err)
	}

	authURL = a.withScopes(scopes).AuthCodeURL("",
		oauth2.SetAuthURLParam("code_challenge", codeVerifier.CodeChallengeS256()),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)
	return authURL, codeVerifier.String(), nil
}

func (a *Authenticator) withScopes(scopes []Scope) *oauth2.Config {
	conf := *a.oauth
	conf.Scopes = make([]string, len(scopes))
	for i, s := range scopes {
		conf.Scopes[i] = string(s)
	}
	return &conf
}

// ExchangeOption adds parameters to an authorization code exchange.
type ExchangeOption func(url.Values)

// WithCodeVerifier sends the PKCE verifier obtained from
// AuthorizationURLWithPKCE.
func WithCodeVerifier(verifier string) ExchangeOption {
	return func(form url.Values) {
		form.Set("code_verifier", verifier)
	}
}

// ExchangeAuthorizationCode trades an authorization code for a token.
// A nil token with a nil error means the provider answered with an empty
// body and no token was issued.
func (a *Authenticator) ExchangeAuthorizationCode(ctx context.Context, code string, opts ...ExchangeOption) (*AccessToken, error) {
	form := a.baseForm(GrantAuthorizationCode)
	form.Set("code", code)
	for _, opt := range opts {
		opt(form)
	}
	return a.exchange(ctx, "exchange authorization code", GrantAuthorizationCode, form)
}

// ExchangeRefreshToken trades a refresh token for a new token.
// The result follows the same rules as ExchangeAuthorizationCode, except
// that the provider may omit user_id.
func (a *Authenticator) ExchangeRefreshToken(ctx context.Context, refreshToken string) (*AccessToken, error) {
	form := a.baseForm(GrantRefreshToken)
	form.Set("refresh_token", refreshToken)
	return a.exchange(ctx, "exchange refresh token", GrantRefreshToken, form)
}

func (a *Authenticator) baseForm(grant string) url.Values {
	return url.Values{
		"client_id":     {a.clientID},
		"redirect_uri":  {a.callback},
		"client_secret": {a.clientSecret},
		"grant_type":    {grant},
	}
}

func (a *Authenticator) exchange(ctx context.Context, op, grant string, form url.Values) (*AccessToken, error) {
	tree, err := a.api.do(ctx, op, request{
		method:      http.MethodPost,
		endpoint:    a.tokenURL,
		body:        []byte(form.Encode()),
		contentType: "application/x-www-form-urlencoded",
		secret:      true,
	})
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, nil
	}

	token, err := mapAccessToken(tree, grant)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return token, nil
}

// mapAccessToken reads the fixed token keys. user_id is only required for
// the authorization code grant.
func mapAccessToken(tree Tree, grant string) (*AccessToken, error) {
	r := newFieldReader("access token", tree)

	token := &AccessToken{
		TokenType:   r.str("token_type"),
		ExpiresIn:   r.expiresIn("expires_in"),
		Scope:       r.str("scope"),
		AccessToken: r.str("access_token"),
	}
	token.RefreshToken = r.optStr("refresh_token")
	if grant == GrantAuthorizationCode {
		userID := r.str("user_id")
		token.UserID = &userID
	} else {
		token.UserID = r.optStr("user_id")
	}

	if r.err != nil {
		return nil, r.err
	}
	return token, nil
}

// expiresIn accepts a JSON number or a numeric string, truncates it and
// rejects negative or unrepresentable lifetimes.
func (r *fieldReader) expiresIn(key string) int {
	v, ok := r.required(key)
	if !ok {
		return 0
	}
	switch t := v.(type) {
	case float64:
	case string:
		v = strings.TrimSpace(t)
	default:
		r.fail(key, fmt.Errorf("expected number, got %T", v))
		return 0
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		r.fail(key, err)
		return 0
	}
	if f < 0 {
		r.fail(key, fmt.Errorf("negative lifetime %v", f))
		return 0
	}
	n, err := truncate(f)
	if err != nil || n > math.MaxInt {
		r.fail(key, fmt.Errorf("lifetime %v is out of range", f))
		return 0
	}
	return int(n)
}
