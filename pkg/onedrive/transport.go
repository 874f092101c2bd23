package onedrive

import (
	"net/http"
	"time"
)

// Transport executes HTTP requests for a single SDK call. The SDK acquires
// one from a TransportFactory at the start of every call and closes it when
// the call returns, whatever the outcome.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
	Close() error
}

// TransportFactory builds a Transport. Connection pooling, TLS and proxying
// are the factory's concern.
type TransportFactory func() (Transport, error)

// HTTPConfig configures the default transport.
type HTTPConfig struct {
	Timeout time.Duration `json:"timeout"`
}

// DefaultHTTPConfig returns the HTTP settings used when none are given.
func DefaultHTTPConfig() HTTPConfig {
	return HTTPConfig{Timeout: DefaultTimeout}
}

// NewConfiguredHTTPClient returns an *http.Client honoring cfg.
func NewConfiguredHTTPClient(cfg HTTPConfig) *http.Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &http.Client{Timeout: cfg.Timeout}
}

// httpTransport adapts an *http.Client to Transport.
type httpTransport struct {
	client *http.Client
}

func (t *httpTransport) Do(req *http.Request) (*http.Response, error) {
	return t.client.Do(req)
}

func (t *httpTransport) Close() error {
	t.client.CloseIdleConnections()
	return nil
}

// NewHTTPTransportFactory returns a factory that builds a fresh
// *http.Client per call.
func NewHTTPTransportFactory(cfg HTTPConfig) TransportFactory {
	return func() (Transport, error) {
		return &httpTransport{client: NewConfiguredHTTPClient(cfg)}, nil
	}
}

// ClientTransportFactory returns a factory that hands out the given client
// for every call. Releasing the transport leaves the client and its
// connection pool untouched; they belong to the caller.
func ClientTransportFactory(client *http.Client) TransportFactory {
	return func() (Transport, error) {
		return sharedTransport{client: client}, nil
	}
}

// sharedTransport wraps a caller-owned *http.Client.
type sharedTransport struct {
	client *http.Client
}

func (t sharedTransport) Do(req *http.Request) (*http.Response, error) {
	return t.client.Do(req)
}

func (t sharedTransport) Close() error { return nil }
