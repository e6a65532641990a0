package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Client defines the interface for JSON REST operations against one API.
// All requests carry the API key the client was created with.
type Client interface {
	// GetJSON issues a GET request and decodes the response body into out.
	GetJSON(ctx context.Context, url string, out any) error
	// PostJSON issues a POST request with a JSON body. If out is non-nil,
	// the response body is decoded into it.
	PostJSON(ctx context.Context, url string, body any, out any) error
	// PutJSON issues a PUT request with a JSON body. If out is non-nil,
	// the response body is decoded into it.
	PutJSON(ctx context.Context, url string, body any, out any) error
}

// StatusError is returned when the server responds with a non-success status.
// Body holds the raw response body so callers can surface the server-reported
// detail (e.g. a validation message for a rejected indexer).
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("unexpected status %d", e.Status)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.Status, body)
}

// New creates a REST client authenticating with the given API key.
// timeoutSeconds bounds connection setup, TLS handshake, and time to first
// response byte; zero or negative values fall back to 30 seconds.
func New(apiKey string, timeoutSeconds int) Client {
	if timeoutSeconds <= 0 {
		timeoutSeconds = 30
	}
	timeout := time.Duration(timeoutSeconds) * time.Second

	// Custom transport with strict timeouts so an unreachable consumer
	// cannot stall a whole run.
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}

	return &restClient{
		apiKey: apiKey,
		http:   &http.Client{Transport: tr},
	}
}

type restClient struct {
	apiKey string
	http   *http.Client
}

func (c *restClient) GetJSON(ctx context.Context, url string, out any) error {
	return c.do(ctx, http.MethodGet, url, nil, out)
}

func (c *restClient) PostJSON(ctx context.Context, url string, body any, out any) error {
	return c.do(ctx, http.MethodPost, url, body, out)
}

func (c *restClient) PutJSON(ctx context.Context, url string, body any, out any) error {
	return c.do(ctx, http.MethodPut, url, body, out)
}

func (c *restClient) do(ctx context.Context, method, url string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Read a bounded amount of the body for the error detail.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Status: resp.StatusCode, Body: string(detail)}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}
