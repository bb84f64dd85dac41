package http

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"time"

	"github.com/guinchoja/backend/internal/pkg/models"
)

// HTTPError carries a non-2xx status returned by an upstream call.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// Client is a generic HTTP client for communicating with the backend of
// record.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the configured backend. InsecureSkipVerify
// exists only because the legacy backend serves a self-signed certificate in
// development environments.
func NewClient(cfg models.BackendConfig) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		BaseURL: cfg.BaseURL,
		HTTPClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}
