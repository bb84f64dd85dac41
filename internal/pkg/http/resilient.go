package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/guinchoja/backend/internal/pkg/circuitbreaker"
	"github.com/guinchoja/backend/internal/pkg/logger"
	"github.com/guinchoja/backend/internal/pkg/models"
	"github.com/guinchoja/backend/internal/pkg/retry"
)

// ResilientClient wraps Client with retry and circuit breaker protection.
// Transient transport failures and 5xx responses are retried; 4xx responses
// are returned to the caller as HTTPError without retrying.
type ResilientClient struct {
	base    *Client
	retrier *retry.Retrier
	breaker *circuitbreaker.CircuitBreaker
	logger  *logger.ZapLogger
}

// NewResilientClient builds the protected client used by the gateways.
func NewResilientClient(cfg models.BackendConfig, log *logger.ZapLogger) *ResilientClient {
	retryCfg := retry.DefaultConfig()
	if cfg.MaxRetries > 0 {
		retryCfg.MaxRetries = cfg.MaxRetries
	}
	retryCfg.RetryableFunc = func(err error) bool {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			return httpErr.StatusCode >= 500
		}
		return true
	}

	return &ResilientClient{
		base:    NewClient(cfg),
		retrier: retry.New(retryCfg, log),
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("backend"), log),
		logger:  log,
	}
}

// BaseURL returns the configured backend base URL.
func (c *ResilientClient) BaseURL() string {
	return c.base.BaseURL
}

// Do executes the request with breaker and retry protection and returns the
// response body. Callers own interpretation of the payload.
func (c *ResilientClient) Do(ctx context.Context, method, url string, body interface{}, headers map[string]string) ([]byte, error) {
	var respBody []byte

	err := c.breaker.Execute(ctx, func(ctx context.Context) error {
		return c.retrier.Execute(ctx, func(ctx context.Context) error {
			var reader io.Reader
			if body != nil {
				payload, err := json.Marshal(body)
				if err != nil {
					return fmt.Errorf("failed to marshal request body: %w", err)
				}
				reader = bytes.NewReader(payload)
			}

			req, err := http.NewRequestWithContext(ctx, method, url, reader)
			if err != nil {
				return err
			}
			if body != nil {
				req.Header.Set("Content-Type", "application/json")
			}
			for k, v := range headers {
				req.Header.Set(k, v)
			}

			resp, err := c.base.HTTPClient.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()

			data, err := io.ReadAll(resp.Body)
			if err != nil {
				return err
			}

			if resp.StatusCode >= 400 {
				return &HTTPError{
					StatusCode: resp.StatusCode,
					Message:    string(data),
				}
			}

			respBody = data
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return respBody, nil
}
