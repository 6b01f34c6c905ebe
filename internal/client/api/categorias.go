package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

func (c *HTTPClient) ListCategorias(ctx context.Context) ([]models.Categoria, error) {
	return request[[]models.Categoria](ctx, c, http.MethodGet, "/categorias", nil)
}

func (c *HTTPClient) GetCategoria(ctx context.Context, id int64) (*models.Categoria, error) {
	return request[*models.Categoria](ctx, c, http.MethodGet, fmt.Sprintf("/categorias/%d", id), nil)
}

func (c *HTTPClient) CreateCategoria(ctx context.Context, req models.CreateCategoriaRequest) (*models.Categoria, error) {
	return request[*models.Categoria](ctx, c, http.MethodPost, "/categorias", req)
}

func (c *HTTPClient) UpdateCategoria(ctx context.Context, id int64, req models.CreateCategoriaRequest) (*models.Categoria, error) {
	return request[*models.Categoria](ctx, c, http.MethodPatch, fmt.Sprintf("/categorias/%d", id), req)
}

func (c *HTTPClient) DeleteCategoria(ctx context.Context, id int64) error {
	return requestNoContent(ctx, c, http.MethodDelete, fmt.Sprintf("/categorias/%d", id), nil)
}
