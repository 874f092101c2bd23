package onedrive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSharedWith(t *testing.T) {
	tests := []struct {
		input   string
		want    SharedWith
		wantErr bool
	}{
		{"Just me", SharedWithJustMe, false},
		{"just ME", SharedWithJustMe, false},
		{"  Friends ", SharedWithFriends, false},
		{"People I selected", SharedWithSelected, false},
		{"My friends and their friends", SharedWithFriendsOfFriends, false},
		{"everyone (public)", SharedWithEveryone, false},
		{"Everyone", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseSharedWith(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownSharedWith)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReadSharedWithUnknownIsMappingError(t *testing.T) {
	r := newFieldReader(KindPhoto, Tree{"shared_with": map[string]any{"access": "Nobody"}})
	r.readSharedWith()

	assert.ErrorIs(t, r.err, ErrMappingFailed)
	assert.ErrorIs(t, r.err, ErrUnknownSharedWith)
}

func TestReadImagesKeepsOrder(t *testing.T) {
	r := newFieldReader(KindPhoto, photoPayload("photo.1"))
	images := r.readImages()

	require.NoError(t, r.err)
	require.Len(t, images, 3)
	assert.Equal(t, "full", images[0].Type)
	assert.Equal(t, "normal", images[1].Type)
	assert.Equal(t, "thumbnail", images[2].Type)
	assert.Equal(t, 128.0, images[2].Width)
}

func TestReadImagesBadItem(t *testing.T) {
	r := newFieldReader(KindPhoto, Tree{"images": []any{map[string]any{"height": 1.0}}})
	images := r.readImages()

	assert.Empty(t, images)
	var mErr *MappingError
	require.ErrorAs(t, r.err, &mErr)
	assert.Equal(t, "images[0].width", mErr.Field)
}

func TestQuotaUsed(t *testing.T) {
	assert.Equal(t, int64(75), Quota{Quota: 100, Available: 25}.Used())
}
