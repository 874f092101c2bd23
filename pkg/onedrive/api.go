package onedrive

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// request describes one call to the provider. When endpoint is set it is
// used as the full URL and path is ignored.
type request struct {
	method      string
	endpoint    string
	path        string
	query       url.Values
	header      http.Header
	body        []byte
	contentType string
	// secret keeps the response body out of the debug trace.
	secret      bool
}

// apiClient runs the call skeleton shared by every operation.
type apiClient struct {
	baseURL      string
	newTransport TransportFactory
	logger       Logger
}

// response is a completed call: the status, the raw body and, when the body
// was not empty, its decoded tree.
type response struct {
	status int
	body   []byte
	tree   Tree
}

// do executes req and returns the decoded tree, already checked for the
// provider's error envelope and for a failing status. A nil tree with a nil
// error means the provider answered with an empty body.
func (a *apiClient) do(ctx context.Context, op string, req request) (Tree, error) {
	res, err := a.execute(ctx, op, req)
	if err != nil {
		return nil, err
	}
	return res.tree, nil
}

// fetch is like do but returns the raw body, for fixed shapes that are
// decoded with DecodeInto. A nil body means the response was empty.
func (a *apiClient) fetch(ctx context.Context, op string, req request) ([]byte, error) {
	res, err := a.execute(ctx, op, req)
	if err != nil {
		return nil, err
	}
	if res.tree == nil {
		return nil, nil
	}
	return res.body, nil
}

func (a *apiClient) execute(ctx context.Context, op string, req request) (*response, error) {
	res, err := a.roundTrip(ctx, op, req)
	if err != nil {
		return nil, err
	}

	tree, err := DecodeTree(res.body)
	switch {
	case errors.Is(err, ErrNoContent):
		if res.status >= http.StatusBadRequest {
			return nil, fmt.Errorf("%s: %w: status %d with empty body", op, ErrOperationFailed, res.status)
		}
		return res, nil
	case err != nil:
		if res.status >= http.StatusBadRequest {
			return nil, fmt.Errorf("%s: %w: status %d: %s", op, ErrOperationFailed, res.status, snippet(res.body))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := CheckForError(tree); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if res.status >= http.StatusBadRequest {
		return nil, fmt.Errorf("%s: %w: status %d: %s", op, ErrOperationFailed, res.status, snippet(res.body))
	}

	res.tree = tree
	return res, nil
}

// roundTrip acquires a transport, sends req once and reads the whole body.
// The transport is released on every path.
func (a *apiClient) roundTrip(ctx context.Context, op string, req request) (*response, error) {
	target := req.endpoint
	if target == "" {
		target = buildURL(a.baseURL, req.path, req.query)
	} else if len(req.query) > 0 {
		target = buildURL(target, "", req.query)
	}

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: building request: %w", op, ErrRequestFailed, err)
	}
	for key, values := range req.header {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}
	if req.contentType != "" {
		httpReq.Header.Set("Content-Type", req.contentType)
	}
	httpReq.Header.Set("Accept", "application/json")

	transport, err := a.newTransport()
	if err != nil {
		return nil, fmt.Errorf("%s: %w: acquiring transport: %w", op, ErrRequestFailed, err)
	}
	defer func() {
		logOnError(transport.Close(), a.logger, op+" transport release")
	}()

	a.logger.Debugf("%s: %s %s", op, req.method, redactQuery(httpReq.URL))
	httpRes, err := transport.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, ErrRequestFailed, err)
	}
	defer closeBodySafely(httpRes.Body, a.logger, op)

	raw, err := io.ReadAll(httpRes.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: reading body: %w", op, ErrRequestFailed, err)
	}
	if req.secret {
		a.logger.Debugf("%s: status %d body withheld (%d bytes)", op, httpRes.StatusCode, len(raw))
	} else {
		a.logger.Debugf("%s: status %d body %s", op, httpRes.StatusCode, raw)
	}

	return &response{status: httpRes.StatusCode, body: raw}, nil
}

// redactQuery hides the access token when a URL is logged.
func redactQuery(u *url.URL) string {
	q := u.Query()
	if q.Has("access_token") {
		q.Set("access_token", "REDACTED")
	}
	clone := *u
	clone.RawQuery = q.Encode()
	return clone.String()
}
