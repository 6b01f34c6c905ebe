package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

// Login authenticates against POST /auth/login. A 401 here means the
// credentials were wrong, not that a session expired.
func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	resp, err := request[*models.AuthResponse](ctx, c, http.MethodPost, "/auth/login", req)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}
	return resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	resp, err := request[*models.AuthResponse](ctx, c, http.MethodPost, "/auth/register", req)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return resp, nil
}

func (c *HTTPClient) GetRoles(ctx context.Context) ([]models.Role, error) {
	return request[[]models.Role](ctx, c, http.MethodGet, "/auth/roles", nil)
}

// GetDirigentesDisponibles lists users eligible to manage a team, optionally
// narrowed to one league.
func (c *HTTPClient) GetDirigentesDisponibles(ctx context.Context, ligaID *int64) ([]models.User, error) {
	path := "/auth/users/dirigentes-disponibles"
	if ligaID != nil {
		path = fmt.Sprintf("%s?ligaId=%d", path, *ligaID)
	}
	return request[[]models.User](ctx, c, http.MethodGet, path, nil)
}

func (c *HTTPClient) GetDirectivosDisponibles(ctx context.Context) ([]models.User, error) {
	return request[[]models.User](ctx, c, http.MethodGet, "/auth/users/directivos-disponibles", nil)
}
