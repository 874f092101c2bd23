// Package onedrive provides utility functions for common operations and error handling.
package onedrive

import (
	"io"
	"net/url"
	"strings"
)

// maxTraceBody caps how much of a failed response body goes into an error.
const maxTraceBody = 512

// closeBodySafely closes an HTTP response body and logs any error.
// This is intended for use in defer statements where error handling is not critical.
func closeBodySafely(body io.Closer, logger Logger, operation string) {
	if err := body.Close(); err != nil {
		logger.Warnf("Failed to close %s body: %v", operation, err)
	}
}

// logOnError logs an error if it occurs, but doesn't return it.
// Useful for cleanup operations where we want to log but not fail the main operation.
func logOnError(err error, logger Logger, operation string) {
	if err != nil {
		logger.Warnf("Non-critical error in %s: %v", operation, err)
	}
}

// buildURL joins base and path and appends the encoded query, if any.
func buildURL(base, path string, query url.Values) string {
	u := strings.TrimRight(base, "/")
	if path != "" {
		u += "/" + strings.TrimLeft(path, "/")
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// itemPath escapes an id and any trailing segments into a path.
func itemPath(id string, segments ...string) string {
	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, url.PathEscape(id))
	for _, s := range segments {
		parts = append(parts, url.PathEscape(s))
	}
	return strings.Join(parts, "/")
}

// snippet returns at most maxTraceBody bytes of body for error messages.
func snippet(body []byte) string {
	if len(body) > maxTraceBody {
		return string(body[:maxTraceBody]) + "..."
	}
	return string(body)
}
