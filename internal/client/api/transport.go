package api

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/ligadeportiva/ligacli/internal/common"
)

// TokenSource yields the current bearer token. An empty string means no
// session exists and no credential header is attached.
type TokenSource interface {
	Token() string
}

// AuthTransport decorates an http.RoundTripper so every outbound request
// carries the session's bearer token and a correlation id. A 401 response
// from ANY endpoint means the shared credential is no longer valid, so the
// OnUnauthorized hook runs before the response is handed back to the caller.
type AuthTransport struct {
	// Base performs the actual round trip. http.DefaultTransport when nil.
	Base http.RoundTripper

	// Tokens supplies the bearer token for each request.
	Tokens TokenSource

	// OnUnauthorized runs once per 401 response. Typically wired to the
	// session's forced logout.
	OnUnauthorized func()
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// RoundTrip implements http.RoundTripper. The incoming request is cloned
// before mutation, as the RoundTripper contract requires.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	if t.Tokens != nil {
		if token := t.Tokens.Token(); token != "" {
			clone.Header.Set(common.AuthHeaderName, common.BearerPrefix+token)
		}
	}
	clone.Header.Set(common.RequestIDHeaderName, uuid.NewString())

	resp, err := t.base().RoundTrip(clone)
	if err != nil {
		return nil, err
	}

	// A 401 from a credential endpoint means the submitted credentials were
	// bad, not that the session died; it must not tear the session down.
	if resp.StatusCode == http.StatusUnauthorized && t.OnUnauthorized != nil &&
		!isCredentialEndpoint(req.URL.Path) {
		t.OnUnauthorized()
	}

	return resp, nil
}

func isCredentialEndpoint(path string) bool {
	return strings.HasSuffix(path, "/auth/login") || strings.HasSuffix(path, "/auth/register")
}
