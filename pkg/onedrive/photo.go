package onedrive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// PhotoService reads and writes photos.
type PhotoService struct {
	api *apiClient
}

// ListPhotos returns the photos in an album, in the provider's order.
// Entries that are not photos are skipped. An empty response yields an
// empty slice.
func (s *PhotoService) ListPhotos(ctx context.Context, accessToken, albumID string, opts ...ListOption) ([]Photo, error) {
	op := fmt.Sprintf("list photos of %q", albumID)
	tree, err := s.api.do(ctx, op, request{
		method: http.MethodGet,
		path:   itemPath(albumID, "files"),
		query:  listQuery(accessToken, opts),
	})
	if err != nil {
		return nil, err
	}

	photos := []Photo{}
	if tree == nil {
		return photos, nil
	}

	r := newFieldReader(KindPhoto, tree)
	for i, entry := range r.list("data") {
		if entry == nil {
			continue
		}
		sub := r.asObject(fmt.Sprintf("data[%d]", i), entry)
		if r.err != nil {
			break
		}
		photo, err := mapPhoto(sub)
		if err != nil {
			return nil, fmt.Errorf("%s: entry %d: %w", op, i, err)
		}
		if photo != nil {
			photos = append(photos, *photo)
		}
	}
	if r.err != nil {
		return nil, fmt.Errorf("%s: %w", op, r.err)
	}
	return photos, nil
}

// GetPhoto returns one photo, or nil when the provider returns no photo.
func (s *PhotoService) GetPhoto(ctx context.Context, accessToken, photoID string) (*Photo, error) {
	op := fmt.Sprintf("get photo %q", photoID)
	tree, err := s.api.do(ctx, op, request{
		method: http.MethodGet,
		path:   itemPath(photoID),
		query:  tokenQuery(accessToken),
	})
	if err != nil || tree == nil {
		return nil, err
	}

	photo, err := mapPhoto(tree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return photo, nil
}

// UploadPhoto stores data in an album under a generated name of the form
// <uuid>.<format>. The provider only echoes the id and name, so the
// returned Photo carries just those two fields.
func (s *PhotoService) UploadPhoto(ctx context.Context, accessToken, albumID, format string, data []byte) (*Photo, error) {
	if err := ValidateFormat(format); err != nil {
		return nil, fmt.Errorf("upload photo to %q: %w", albumID, err)
	}
	name := uuid.NewString() + "." + format
	op := fmt.Sprintf("upload photo %q to %q", name, albumID)

	query := tokenQuery(accessToken)
	query.Set("downsize_photo_uploads", "false")
	tree, err := s.api.do(ctx, op, request{
		method:      http.MethodPut,
		path:        itemPath(albumID, "files", name),
		query:       query,
		body:        data,
		contentType: "application/octet-stream",
	})
	if err != nil || tree == nil {
		return nil, err
	}

	r := newFieldReader(KindPhoto, tree)
	photo := &Photo{
		ID:   r.str("id"),
		Name: r.str("name"),
	}
	if r.err != nil {
		return nil, fmt.Errorf("%s: %w", op, r.err)
	}
	return photo, nil
}

// UploadPhotoWithDescription uploads data and then sets its description.
// The returned Photo is the result of the description update.
func (s *PhotoService) UploadPhotoWithDescription(ctx context.Context, accessToken, albumID, format, description string, data []byte) (*Photo, error) {
	uploaded, err := s.UploadPhoto(ctx, accessToken, albumID, format, data)
	if err != nil {
		return nil, err
	}
	if uploaded == nil {
		return nil, nil
	}
	return s.UpdatePhotoDescription(ctx, accessToken, uploaded.ID, description)
}

// UpdatePhotoDescription replaces a photo's description. This endpoint
// takes the token as a bearer header, not as a query parameter. The
// provider's response may omit the id, so photoID is set on the result.
// A response that is not a photo is a *MappingError.
func (s *PhotoService) UpdatePhotoDescription(ctx context.Context, accessToken, photoID, description string) (*Photo, error) {
	op := fmt.Sprintf("update description of photo %q", photoID)

	payload, err := json.Marshal(map[string]string{"description": description})
	if err != nil {
		return nil, fmt.Errorf("%s: encoding body: %w", op, err)
	}
	tree, err := s.api.do(ctx, op, request{
		method:      http.MethodPut,
		path:        itemPath(photoID),
		header:      http.Header{"Authorization": {"Bearer " + accessToken}},
		body:        payload,
		contentType: "application/json",
	})
	if err != nil || tree == nil {
		return nil, err
	}

	if _, ok := tree["id"]; !ok {
		tree["id"] = photoID
	}
	photo, err := mapPhoto(tree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if photo == nil {
		return nil, fmt.Errorf("%s: %w", op, &MappingError{
			Kind:  KindPhoto,
			Field: "type",
			Err:   fmt.Errorf("expected %q, got %v", KindPhoto, tree["type"]),
		})
	}
	photo.ID = photoID
	return photo, nil
}

// DeletePhoto removes a photo. Any response without an error envelope or a
// failing status counts as success.
func (s *PhotoService) DeletePhoto(ctx context.Context, accessToken, photoID string) error {
	return deleteResource(ctx, s.api, fmt.Sprintf("delete photo %q", photoID), accessToken, photoID)
}

func deleteResource(ctx context.Context, api *apiClient, op, accessToken, id string) error {
	_, err := api.do(ctx, op, request{
		method: http.MethodDelete,
		path:   itemPath(id),
		query:  tokenQuery(accessToken),
	})
	return err
}

// mapPhoto maps a photo payload. It returns nil, nil when the payload is
// not a photo.
func mapPhoto(tree Tree) (*Photo, error) {
	if !discriminator(tree, KindPhoto) {
		return nil, nil
	}
	r := newFieldReader(KindPhoto, tree)

	p := &Photo{
		ID:                  r.str("id"),
		Name:                r.str("name"),
		From:                r.readFrom(),
		Description:         r.optStr("description"),
		ParentID:            r.str("parent_id"),
		Size:                r.int64("size"),
		CommentsCount:       r.integer("comments_count"),
		CommentsEnabled:     r.boolean("comments_enabled"),
		TagsCount:           r.integer("tags_count"),
		TagsEnabled:         r.boolean("tags_enabled"),
		IsEmbeddable:        r.boolean("is_embeddable"),
		Link:                r.str("link"),
		Picture:             r.optStr("picture"),
		Source:              r.optStr("source"),
		UploadLocation:      r.str("upload_location"),
		Images:              r.readImages(),
		WhenTaken:           r.optTime("when_taken"),
		Width:               r.integer("width"),
		Height:              r.integer("height"),
		Type:                KindPhoto,
		Location:            r.readLocation(),
		CameraMake:          r.optStr("camera_make"),
		CameraModel:         r.optStr("camera_model"),
		FocalLength:         r.float("focal_length"),
		FocalRatio:          r.float("focal_ratio"),
		ExposureNumerator:   r.float("exposure_numerator"),
		ExposureDenominator: r.float("exposure_denominator"),
		SharedWith:          r.readSharedWith(),
		CreatedTime:         r.time("created_time"),
		UpdatedTime:         r.time("updated_time"),
		ClientUpdatedTime:   r.time("client_updated_time"),
	}
	if r.err != nil {
		return nil, r.err
	}
	return p, nil
}
