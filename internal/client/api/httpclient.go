package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ligadeportiva/ligacli/internal/common"
)

// fallbackMessage is shown when the server did not provide one.
const fallbackMessage = "request failed"

// HTTPClient implements Client over net/http against a single base URL.
// All error mapping happens here: transport failures become ErrUnavailable,
// 401 becomes ErrSessionExpired, 404 becomes common.ErrNotFound, every other
// non-2xx becomes *APIError.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient builds a client for the given base URL. The transport is
// expected to be an *AuthTransport so the bearer token is attached and 401
// handling stays centralized.
func NewHTTPClient(baseURL string, transport http.RoundTripper, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

var _ Client = (*HTTPClient)(nil)

// errorMessage is the error body shape the platform API uses.
type errorMessage struct {
	Message string `json:"message"`
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// Context errors keep their identity; everything else is the
		// server being unreachable.
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return resp, nil
}

func (c *HTTPClient) errorFromResponse(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrSessionExpired
	}
	if resp.StatusCode == http.StatusNotFound {
		return common.ErrNotFound
	}

	var em errorMessage
	msg := fallbackMessage
	if err := json.NewDecoder(resp.Body).Decode(&em); err == nil && em.Message != "" {
		msg = em.Message
	}
	return &APIError{Status: resp.StatusCode, Message: msg}
}

// request performs a call that expects a JSON body of type T on success.
func request[T any](ctx context.Context, c *HTTPClient, method, path string, body any) (T, error) {
	var zero T

	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return zero, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zero, c.errorFromResponse(resp)
	}
	defer resp.Body.Close()

	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return zero, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// requestNoContent performs a call whose success response body is ignored.
func requestNoContent(ctx context.Context, c *HTTPClient, method, path string, body any) error {
	resp, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.errorFromResponse(resp)
	}
	resp.Body.Close()
	return nil
}
