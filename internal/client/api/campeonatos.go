package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

func (c *HTTPClient) ListCampeonatos(ctx context.Context) ([]models.Campeonato, error) {
	return request[[]models.Campeonato](ctx, c, http.MethodGet, "/campeonatos", nil)
}

func (c *HTTPClient) ListCampeonatosByLiga(ctx context.Context, ligaID int64) ([]models.Campeonato, error) {
	return request[[]models.Campeonato](ctx, c, http.MethodGet, fmt.Sprintf("/campeonatos/liga/%d", ligaID), nil)
}

func (c *HTTPClient) GetCampeonato(ctx context.Context, id int64) (*models.Campeonato, error) {
	return request[*models.Campeonato](ctx, c, http.MethodGet, fmt.Sprintf("/campeonatos/%d", id), nil)
}

func (c *HTTPClient) CreateCampeonato(ctx context.Context, req models.CreateCampeonatoRequest) (*models.Campeonato, error) {
	return request[*models.Campeonato](ctx, c, http.MethodPost, "/campeonatos", req)
}

func (c *HTTPClient) UpdateCampeonato(ctx context.Context, id int64, req models.CreateCampeonatoRequest) (*models.Campeonato, error) {
	return request[*models.Campeonato](ctx, c, http.MethodPatch, fmt.Sprintf("/campeonatos/%d", id), req)
}

func (c *HTTPClient) CambiarEstadoCampeonato(ctx context.Context, id int64, estado models.EstadoCampeonato) (*models.Campeonato, error) {
	body := struct {
		Estado models.EstadoCampeonato `json:"estado"`
	}{Estado: estado}
	return request[*models.Campeonato](ctx, c, http.MethodPatch, fmt.Sprintf("/campeonatos/%d/estado", id), body)
}

func (c *HTTPClient) DeleteCampeonato(ctx context.Context, id int64) error {
	return requestNoContent(ctx, c, http.MethodDelete, fmt.Sprintf("/campeonatos/%d", id), nil)
}
