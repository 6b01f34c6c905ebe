package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

func (c *HTTPClient) ListEquipos(ctx context.Context) ([]models.Equipo, error) {
	return request[[]models.Equipo](ctx, c, http.MethodGet, "/equipos", nil)
}

func (c *HTTPClient) GetEquipo(ctx context.Context, id int64) (*models.Equipo, error) {
	return request[*models.Equipo](ctx, c, http.MethodGet, fmt.Sprintf("/equipos/%d", id), nil)
}

func (c *HTTPClient) CreateEquipo(ctx context.Context, req models.CreateEquipoRequest) (*models.Equipo, error) {
	return request[*models.Equipo](ctx, c, http.MethodPost, "/equipos", req)
}

func (c *HTTPClient) UpdateEquipo(ctx context.Context, id int64, req models.CreateEquipoRequest) (*models.Equipo, error) {
	return request[*models.Equipo](ctx, c, http.MethodPatch, fmt.Sprintf("/equipos/%d", id), req)
}

func (c *HTTPClient) DeleteEquipo(ctx context.Context, id int64) error {
	return requestNoContent(ctx, c, http.MethodDelete, fmt.Sprintf("/equipos/%d", id), nil)
}
