// Package onedrive provides constants used throughout the OneDrive SDK.
package onedrive

import "time"

// Provider endpoints.
const (
	DefaultAuthURL  = "https://login.live.com/oauth20_authorize.srf"
	DefaultTokenURL = "https://login.live.com/oauth20_token.srf"
	DefaultAPIURL   = "https://apis.live.net/v5.0"
)

// Resource kinds, as reported in a payload's "type" field.
const (
	KindPhoto  = "photo"
	KindAlbum  = "album"
	KindFolder = "folder"
)

// Scope is a permission requested during authorization.
type Scope string

// Scopes understood by the identity provider.
const (
	ScopeBasic          Scope = "wl.basic"
	ScopeSignin         Scope = "wl.signin"
	ScopeOfflineAccess  Scope = "wl.offline_access"
	ScopeEmails         Scope = "wl.emails"
	ScopePhotos         Scope = "wl.photos"
	ScopeSkyDrive       Scope = "wl.skydrive"
	ScopeSkyDriveUpdate Scope = "wl.skydrive_update"
)

// Grant types sent to the token endpoint.
const (
	GrantAuthorizationCode = "authorization_code"
	GrantRefreshToken      = "refresh_token"
)

// Default HTTP Configuration Constants
const (
	DefaultTimeout = 30 * time.Second
)

// UI Display Constants
const (
	ProgressBarWidth     = 40
	SpinnerType          = 14
	ProgressBarThrottle  = 100 * time.Millisecond
	MaxNameDisplayLength = 57
)

// File permission constants for configuration files.
const (
	PermSecureFile = 0o600
	PermSecureDir  = 0o700
)
