package app

import (
	"context"

	"github.com/tonimelisma/onedrive-live/pkg/onedrive"
)

// SDK defines the operations the CLI needs from the OneDrive SDK.
// This allows for mocking in tests.
type SDK interface {
	AuthorizationURL(scopes ...onedrive.Scope) string
	AuthorizationURLWithPKCE(scopes ...onedrive.Scope) (string, string, error)
	ExchangeAuthorizationCode(ctx context.Context, code string, opts ...onedrive.ExchangeOption) (*onedrive.AccessToken, error)
	ExchangeRefreshToken(ctx context.Context, refreshToken string) (*onedrive.AccessToken, error)
	GetMe(ctx context.Context, accessToken string) (*onedrive.Me, error)

	ListPhotos(ctx context.Context, accessToken, albumID string, opts ...onedrive.ListOption) ([]onedrive.Photo, error)
	GetPhoto(ctx context.Context, accessToken, photoID string) (*onedrive.Photo, error)
	UploadPhoto(ctx context.Context, accessToken, albumID, format string, data []byte) (*onedrive.Photo, error)
	UploadPhotoWithDescription(ctx context.Context, accessToken, albumID, format, description string, data []byte) (*onedrive.Photo, error)
	UpdatePhotoDescription(ctx context.Context, accessToken, photoID, description string) (*onedrive.Photo, error)
	DeletePhoto(ctx context.Context, accessToken, photoID string) error

	ListAlbums(ctx context.Context, accessToken string, opts ...onedrive.ListOption) ([]onedrive.Album, error)
	GetAlbum(ctx context.Context, accessToken, albumID string) (*onedrive.Album, error)
	CreateAlbum(ctx context.Context, accessToken, name, description string) (*onedrive.Album, error)
	DeleteAlbum(ctx context.Context, accessToken, albumID string) error

	GetRoot(ctx context.Context, accessToken string) (*onedrive.Drive, error)
	GetQuota(ctx context.Context, accessToken string) (*onedrive.Quota, error)
}

// LiveSDK is the concrete implementation of the SDK interface that makes real API calls.
type LiveSDK struct {
	od *onedrive.OneDrive
}

// NewLiveSDK wraps a configured OneDrive.
func NewLiveSDK(od *onedrive.OneDrive) *LiveSDK {
	return &LiveSDK{od: od}
}

func (s *LiveSDK) AuthorizationURL(scopes ...onedrive.Scope) string {
	return s.od.Auth().AuthorizationURL(scopes...)
}

func (s *LiveSDK) AuthorizationURLWithPKCE(scopes ...onedrive.Scope) (string, string, error) {
	return s.od.Auth().AuthorizationURLWithPKCE(scopes...)
}

func (s *LiveSDK) ExchangeAuthorizationCode(ctx context.Context, code string, opts ...onedrive.ExchangeOption) (*onedrive.AccessToken, error) {
	return s.od.Auth().ExchangeAuthorizationCode(ctx, code, opts...)
}

func (s *LiveSDK) ExchangeRefreshToken(ctx context.Context, refreshToken string) (*onedrive.AccessToken, error) {
	return s.od.Auth().ExchangeRefreshToken(ctx, refreshToken)
}

func (s *LiveSDK) GetMe(ctx context.Context, accessToken string) (*onedrive.Me, error) {
	return s.od.GetMe(ctx, accessToken)
}

func (s *LiveSDK) ListPhotos(ctx context.Context, accessToken, albumID string, opts ...onedrive.ListOption) ([]onedrive.Photo, error) {
	return s.od.Photos().ListPhotos(ctx, accessToken, albumID, opts...)
}

func (s *LiveSDK) GetPhoto(ctx context.Context, accessToken, photoID string) (*onedrive.Photo, error) {
	return s.od.Photos().GetPhoto(ctx, accessToken, photoID)
}

func (s *LiveSDK) UploadPhoto(ctx context.Context, accessToken, albumID, format string, data []byte) (*onedrive.Photo, error) {
	return s.od.Photos().UploadPhoto(ctx, accessToken, albumID, format, data)
}

func (s *LiveSDK) UploadPhotoWithDescription(ctx context.Context, accessToken, albumID, format, description string, data []byte) (*onedrive.Photo, error) {
	return s.od.Photos().UploadPhotoWithDescription(ctx, accessToken, albumID, format, description, data)
}

func (s *LiveSDK) UpdatePhotoDescription(ctx context.Context, accessToken, photoID, description string) (*onedrive.Photo, error) {
	return s.od.Photos().UpdatePhotoDescription(ctx, accessToken, photoID, description)
}

func (s *LiveSDK) DeletePhoto(ctx context.Context, accessToken, photoID string) error {
	return s.od.Photos().DeletePhoto(ctx, accessToken, photoID)
}

func (s *LiveSDK) ListAlbums(ctx context.Context, accessToken string, opts ...onedrive.ListOption) ([]onedrive.Album, error) {
	return s.od.Albums().ListAlbums(ctx, accessToken, opts...)
}

func (s *LiveSDK) GetAlbum(ctx context.Context, accessToken, albumID string) (*onedrive.Album, error) {
	return s.od.Albums().GetAlbum(ctx, accessToken, albumID)
}

func (s *LiveSDK) CreateAlbum(ctx context.Context, accessToken, name, description string) (*onedrive.Album, error) {
	return s.od.Albums().CreateAlbum(ctx, accessToken, name, description)
}

func (s *LiveSDK) DeleteAlbum(ctx context.Context, accessToken, albumID string) error {
	return s.od.Albums().DeleteAlbum(ctx, accessToken, albumID)
}

func (s *LiveSDK) GetRoot(ctx context.Context, accessToken string) (*onedrive.Drive, error) {
	return s.od.Drives().GetRoot(ctx, accessToken)
}

func (s *LiveSDK) GetQuota(ctx context.Context, accessToken string) (*onedrive.Quota, error) {
	return s.od.Drives().GetQuota(ctx, accessToken)
}
