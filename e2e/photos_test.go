//go:build e2e

package e2e

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tonimelisma/onedrive-live/pkg/onedrive"
)

func TestPhotoLifecycle(t *testing.T) {
	helper := NewE2ETestHelper(t)
	helper.LogTestInfo(t)
	ctx := helper.Context(t)
	sdk := helper.App.SDK

	var photoID string

	t.Run("Upload", func(t *testing.T) {
		photo, err := sdk.UploadPhoto(ctx, helper.Token, helper.AlbumID, "png", helper.TestImage(t, color.RGBA{R: 255, A: 255}))
		require.NoError(t, err)
		require.NotNil(t, photo)
		assert.NotEmpty(t, photo.ID)
		assert.Contains(t, photo.Name, ".png")
		photoID = photo.ID
	})

	t.Run("Describe", func(t *testing.T) {
		require.NotEmpty(t, photoID)
		photo, err := sdk.UpdatePhotoDescription(ctx, helper.Token, photoID, "red square")
		require.NoError(t, err)
		require.NotNil(t, photo)
		require.NotNil(t, photo.Description)
		assert.Equal(t, "red square", *photo.Description)
	})

	t.Run("List", func(t *testing.T) {
		photos, err := sdk.ListPhotos(ctx, helper.Token, helper.AlbumID)
		require.NoError(t, err)
		ids := make([]string, 0, len(photos))
		for _, p := range photos {
			ids = append(ids, p.ID)
		}
		assert.Contains(t, ids, photoID)

		limited, err := sdk.ListPhotos(ctx, helper.Token, helper.AlbumID, onedrive.WithLimit(1), onedrive.WithOffset(1))
		require.NoError(t, err)
		assert.Empty(t, limited)
	})

	t.Run("Get", func(t *testing.T) {
		photo, err := sdk.GetPhoto(ctx, helper.Token, photoID)
		require.NoError(t, err)
		require.NotNil(t, photo)
		assert.Equal(t, onedrive.KindPhoto, photo.Type)
		assert.Equal(t, helper.AlbumID, photo.ParentID)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, sdk.DeletePhoto(ctx, helper.Token, photoID))
		_, err := sdk.GetPhoto(ctx, helper.Token, photoID)
		assert.ErrorIs(t, err, onedrive.ErrServiceError)
	})
}

func TestProfileAndQuota(t *testing.T) {
	helper := NewE2ETestHelper(t)
	ctx := helper.Context(t)

	me, err := helper.App.SDK.GetMe(ctx, helper.Token)
	require.NoError(t, err)
	require.NotNil(t, me)
	assert.NotEmpty(t, me.ID)

	quota, err := helper.App.SDK.GetQuota(ctx, helper.Token)
	require.NoError(t, err)
	require.NotNil(t, quota)
	assert.GreaterOrEqual(t, quota.Quota, quota.Available)

	album, err := helper.App.SDK.GetAlbum(ctx, helper.Token, helper.AlbumID)
	require.NoError(t, err)
	require.NotNil(t, album)
	assert.Contains(t, album.Name, testAlbumPrefix)
}
