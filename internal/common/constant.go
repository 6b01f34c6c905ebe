// Package common contains shared constants and sentinel errors used across
// ligacli components.
package common

const (
	// AuthHeaderName is the HTTP header used to carry the bearer token on
	// outbound requests.
	AuthHeaderName = "Authorization"

	// BearerPrefix prefixes the token value inside AuthHeaderName.
	BearerPrefix = "Bearer "

	// RequestIDHeaderName carries a client-generated correlation id so the
	// server can tie duplicate submissions together.
	RequestIDHeaderName = "X-Request-Id"
)

const (
	// TokenStorageKey is the local-store key holding the bearer token.
	TokenStorageKey = "auth_token"

	// UserStorageKey is the local-store key holding the serialized user.
	UserStorageKey = "auth_user"
)
