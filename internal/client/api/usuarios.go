package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

func (c *HTTPClient) ListUsuarios(ctx context.Context) ([]models.User, error) {
	return request[[]models.User](ctx, c, http.MethodGet, "/usuarios", nil)
}

func (c *HTTPClient) GetUsuario(ctx context.Context, id int64) (*models.User, error) {
	return request[*models.User](ctx, c, http.MethodGet, fmt.Sprintf("/usuarios/%d", id), nil)
}

func (c *HTTPClient) CreateUsuario(ctx context.Context, req models.CreateUsuarioRequest) (*models.User, error) {
	return request[*models.User](ctx, c, http.MethodPost, "/usuarios", req)
}

func (c *HTTPClient) UpdateUsuario(ctx context.Context, id int64, req models.UpdateUsuarioRequest) (*models.User, error) {
	return request[*models.User](ctx, c, http.MethodPatch, fmt.Sprintf("/usuarios/%d", id), req)
}

func (c *HTTPClient) ActivateUsuario(ctx context.Context, id int64) (*models.User, error) {
	return request[*models.User](ctx, c, http.MethodPatch, fmt.Sprintf("/usuarios/%d/activar", id), nil)
}

func (c *HTTPClient) DeactivateUsuario(ctx context.Context, id int64) (*models.User, error) {
	return request[*models.User](ctx, c, http.MethodPatch, fmt.Sprintf("/usuarios/%d/desactivar", id), nil)
}

func (c *HTTPClient) ChangePassword(ctx context.Context, id int64, req models.ChangePasswordRequest) error {
	return requestNoContent(ctx, c, http.MethodPatch, fmt.Sprintf("/usuarios/%d/cambiar-password", id), req)
}

func (c *HTTPClient) DeleteUsuario(ctx context.Context, id int64) error {
	return requestNoContent(ctx, c, http.MethodDelete, fmt.Sprintf("/usuarios/%d", id), nil)
}
