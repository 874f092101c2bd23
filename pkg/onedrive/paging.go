package onedrive

import (
	"net/url"
	"strconv"
)

// ListOption narrows a list call. The provider pages with limit and offset.
type ListOption func(url.Values)

// WithLimit caps the number of entries returned. Values below one are ignored.
func WithLimit(n int) ListOption {
	return func(q url.Values) {
		if n > 0 {
			q.Set("limit", strconv.Itoa(n))
		}
	}
}

// WithOffset skips the first n entries. Values below one are ignored.
func WithOffset(n int) ListOption {
	return func(q url.Values) {
		if n > 0 {
			q.Set("offset", strconv.Itoa(n))
		}
	}
}

func listQuery(accessToken string, opts []ListOption) url.Values {
	q := tokenQuery(accessToken)
	for _, opt := range opts {
		opt(q)
	}
	return q
}
