package onedrive

import (
	"context"
	"fmt"
	"net/http"
)

// DriveService exposes the user's storage root and quota.
type DriveService struct {
	api *apiClient
}

// GetRoot returns the top-level folder of the user's storage.
func (s *DriveService) GetRoot(ctx context.Context, accessToken string) (*Drive, error) {
	const op = "get drive root"
	tree, err := s.api.do(ctx, op, request{
		method: http.MethodGet,
		path:   "me/skydrive",
		query:  tokenQuery(accessToken),
	})
	if err != nil || tree == nil {
		return nil, err
	}

	drive, err := mapDrive(tree)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return drive, nil
}

// GetQuota returns the total and available bytes of the user's storage.
func (s *DriveService) GetQuota(ctx context.Context, accessToken string) (*Quota, error) {
	const op = "get drive quota"
	tree, err := s.api.do(ctx, op, request{
		method: http.MethodGet,
		path:   "me/skydrive/quota",
		query:  tokenQuery(accessToken),
	})
	if err != nil || tree == nil {
		return nil, err
	}

	r := newFieldReader("quota", tree)
	quota := &Quota{
		Quota:     r.int64("quota"),
		Available: r.int64("available"),
	}
	if r.err != nil {
		return nil, fmt.Errorf("%s: %w", op, r.err)
	}
	return quota, nil
}

func mapDrive(tree Tree) (*Drive, error) {
	if !discriminator(tree, KindFolder) {
		return nil, nil
	}
	r := newFieldReader(KindFolder, tree)

	d := &Drive{
		ID:                r.str("id"),
		Name:              r.str("name"),
		From:              r.readFrom(),
		Description:       r.optStr("description"),
		ParentID:          r.optStr("parent_id"),
		Size:              r.int64("size"),
		UploadLocation:    r.str("upload_location"),
		Count:             r.integer("count"),
		Link:              r.str("link"),
		Type:              KindFolder,
		SharedWith:        r.readSharedWith(),
		CreatedTime:       r.time("created_time"),
		UpdatedTime:       r.time("updated_time"),
		ClientUpdatedTime: r.time("client_updated_time"),
	}
	if r.err != nil {
		return nil, r.err
	}
	return d, nil
}
