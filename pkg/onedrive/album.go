package onedrive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// AlbumService manages the signed-in user's photo albums.
type AlbumService struct {
	api *apiClient
}

// ListAlbums returns the user's albums. Entries that are not albums are
// skipped.
func (s *AlbumService) ListAlbums(ctx context.Context, accessToken string, opts ...ListOption) ([]Album, error) {
	const op = "list albums"
	tree, err := s.api.do(ctx, op, request{
		method: http.MethodGet,
		path:   "me/albums",
		query:  listQuery(accessToken, opts),
	})
	if err != nil {
		return nil, err
	}

	albums := []Album{}
	if tree == nil {
		return albums, nil
	}

	r := newFieldReader(KindAlbum, tree)
	for i, entry := range r.list("data") {
		if entry == nil {
			continue
		}
		sub := r.asObject(fmt.Sprintf("data[%d]", i), entry)
		if r.err != nil {
			break
		}
		album, err := mapAlbum(sub)
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", op, i, err)
		}
		if album != nil {
			albums = append(albums, *album)
		}
	}
	if r.err != nil {
		return nil, fmt.Errorf("%s: %w", op, r.err)
	}
	return albums, nil
}

// GetAlbum returns one album, or nil when the id does not name an album.
func (s *AlbumService) GetAlbum(ctx context.Context, accessToken, albumID string) (*Album, error) {
	op := fmt.Sprintf("get album %q", albumID)
	tree, err := s.api.do(ctx, op, request{
		method: http.MethodGet,
		path:   itemPath(albumID),
		query:  tokenQuery(accessToken),
	})
	if err != nil || tree == nil {
		return nil, err
	}

	album, err := mapAlbum(tree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return album, nil
}

// CreateAlbum creates an album. An empty description is not sent.
func (s *AlbumService) CreateAlbum(ctx context.Context, accessToken, name, description string) (*Album, error) {
	op := fmt.Sprintf("create album %q", name)

	fields := map[string]string{"name": name}
	if description != "" {
		fields["description"] = description
	}
	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%s: encoding body: %w", op, err)
	}

	tree, err := s.api.do(ctx, op, request{
		method:      http.MethodPost,
		path:        "me/albums",
		query:       tokenQuery(accessToken),
		body:        payload,
		contentType: "application/json",
	})
	if err != nil || tree == nil {
		return nil, err
	}

	album, err := mapAlbum(tree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return album, nil
}

// DeleteAlbum removes an album together with its photos.
func (s *AlbumService) DeleteAlbum(ctx context.Context, accessToken, albumID string) error {
	return deleteResource(ctx, s.api, fmt.Sprintf("delete album %q", albumID), accessToken, albumID)
}

func mapAlbum(tree Tree) (*Album, error) {
	if !discriminator(tree, KindAlbum) {
		return nil, nil
	}
	r := newFieldReader(KindAlbum, tree)

	a := &Album{
		ID:                r.str("id"),
		Name:              r.str("name"),
		From:              r.readFrom(),
		Description:       r.optStr("description"),
		ParentID:          r.str("parent_id"),
		UploadLocation:    r.str("upload_location"),
		IsEmbeddable:      r.boolean("is_embeddable"),
		Count:             r.integer("count"),
		Link:              r.str("link"),
		Type:              KindAlbum,
		SharedWith:        r.readSharedWith(),
		CreatedTime:       r.time("created_time"),
		UpdatedTime:       r.time("updated_time"),
		ClientUpdatedTime: r.time("client_updated_time"),
	}
	if r.err != nil {
		return nil, r.err
	}
	return a, nil
}
