package onedrive

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"
)

// Logger is the interface that the SDK uses for logging.
// internal/logger provides slog-backed and no-op implementations.
type Logger interface {
	Debug(msg string, args ...any)
	Debugf(format string, args ...any)
	Info(msg string, args ...any)
	Infof(format string, args ...any)
	Warn(msg string, args ...any)
	Warnf(format string, args ...any)
	Error(msg string, args ...any)
	Errorf(format string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any)  {}
func (noopLogger) Debugf(string, ...any) {}
func (noopLogger) Info(string, ...any)   {}
func (noopLogger) Infof(string, ...any)  {}
func (noopLogger) Warn(string, ...any)   {}
func (noopLogger) Warnf(string, ...any)  {}
func (noopLogger) Error(string, ...any)  {}
func (noopLogger) Errorf(string, ...any) {}

// Endpoint holds the provider URLs. Zero fields fall back to the defaults.
type Endpoint struct {
	AuthURL  string `validate:"omitempty,url"`
	TokenURL string `validate:"omitempty,url"`
	APIURL   string `validate:"omitempty,url"`
}

// Config is the application's registration with the provider plus the
// collaborators the SDK needs. It is copied by New and never mutated.
type Config struct {
	ClientID     string `validate:"required"`
	ClientSecret string `validate:"required"`
	Callback     string `validate:"required,url"`
	Endpoint     Endpoint
	// NewTransport builds the transport for each call. Defaults to
	// NewHTTPTransportFactory(DefaultHTTPConfig()).
	NewTransport TransportFactory
	Logger       Logger
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// Validate reports whether cfg is usable.
func (cfg Config) Validate() error {
	if err := configValidator.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func (cfg Config) withDefaults() Config {
	if cfg.Endpoint.AuthURL == "" {
		cfg.Endpoint.AuthURL = DefaultAuthURL
	}
	if cfg.Endpoint.TokenURL == "" {
		cfg.Endpoint.TokenURL = DefaultTokenURL
	}
	if cfg.Endpoint.APIURL == "" {
		cfg.Endpoint.APIURL = DefaultAPIURL
	}
	if cfg.NewTransport == nil {
		cfg.NewTransport = NewHTTPTransportFactory(DefaultHTTPConfig())
	}
	if cfg.Logger == nil {
		cfg.Logger = noopLogger{}
	}
	return cfg
}

// OneDrive is the entry point of the SDK. It holds only immutable
// configuration, so one instance may be shared by concurrent callers.
type OneDrive struct {
	auth   *Authenticator
	api    *apiClient
	photos *PhotoService
	albums *AlbumService
	drives *DriveService
}

// New validates cfg and builds a OneDrive.
//
// Example:
//
//	od, err := onedrive.New(onedrive.Config{
//	    ClientID:     "YOUR_CLIENT_ID",
//	    ClientSecret: "YOUR_CLIENT_SECRET",
//	    Callback:     "https://example.com/callback",
//	})
//	if err != nil { log.Fatal(err) }
//	fmt.Println(od.Auth().AuthorizationURL(onedrive.ScopeBasic, onedrive.ScopePhotos))
func New(cfg Config) (*OneDrive, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	api := &apiClient{
		baseURL:      cfg.Endpoint.APIURL,
		newTransport: cfg.NewTransport,
		logger:       cfg.Logger,
	}
	return &OneDrive{
		auth:   newAuthenticator(cfg, api),
		api:    api,
		photos: &PhotoService{api: api},
		albums: &AlbumService{api: api},
		drives: &DriveService{api: api},
	}, nil
}

// Auth returns the token lifecycle manager.
func (od *OneDrive) Auth() *Authenticator { return od.auth }

// Photos returns the photo service.
func (od *OneDrive) Photos() *PhotoService { return od.photos }

// Albums returns the album service.
func (od *OneDrive) Albums() *AlbumService { return od.albums }

// Drives returns the drive service.
func (od *OneDrive) Drives() *DriveService { return od.drives }

// GetMe retrieves the profile of the user the access token belongs to.
// It returns nil when the provider answers with an empty body.
func (od *OneDrive) GetMe(ctx context.Context, accessToken string) (*Me, error) {
	body, err := od.api.fetch(ctx, "get me", request{
		method: http.MethodGet,
		path:   "/me",
		query:  tokenQuery(accessToken),
	})
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	var me Me
	if err := DecodeInto(body, &me); err != nil {
		return nil, fmt.Errorf("get me: %w", err)
	}
	return &me, nil
}

func tokenQuery(accessToken string) url.Values {
	return url.Values{"access_token": {accessToken}}
}
