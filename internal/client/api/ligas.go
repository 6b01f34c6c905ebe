package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

func (c *HTTPClient) ListLigas(ctx context.Context) ([]models.Liga, error) {
	return request[[]models.Liga](ctx, c, http.MethodGet, "/ligas", nil)
}

func (c *HTTPClient) GetLiga(ctx context.Context, id int64) (*models.Liga, error) {
	return request[*models.Liga](ctx, c, http.MethodGet, fmt.Sprintf("/ligas/%d", id), nil)
}

func (c *HTTPClient) CreateLiga(ctx context.Context, req models.CreateLigaRequest) (*models.Liga, error) {
	return request[*models.Liga](ctx, c, http.MethodPost, "/ligas", req)
}

func (c *HTTPClient) UpdateLiga(ctx context.Context, id int64, req models.CreateLigaRequest) (*models.Liga, error) {
	return request[*models.Liga](ctx, c, http.MethodPatch, fmt.Sprintf("/ligas/%d", id), req)
}

func (c *HTTPClient) DeleteLiga(ctx context.Context, id int64) error {
	return requestNoContent(ctx, c, http.MethodDelete, fmt.Sprintf("/ligas/%d", id), nil)
}
