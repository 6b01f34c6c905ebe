package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

func (c *HTTPClient) ListJugadores(ctx context.Context) ([]models.Jugador, error) {
	return request[[]models.Jugador](ctx, c, http.MethodGet, "/jugadores", nil)
}

func (c *HTTPClient) GetJugador(ctx context.Context, id int64) (*models.Jugador, error) {
	return request[*models.Jugador](ctx, c, http.MethodGet, fmt.Sprintf("/jugadores/%d", id), nil)
}

func (c *HTTPClient) CreateJugador(ctx context.Context, req models.CreateJugadorRequest) (*models.Jugador, error) {
	return request[*models.Jugador](ctx, c, http.MethodPost, "/jugadores", req)
}

func (c *HTTPClient) UpdateJugador(ctx context.Context, id int64, req models.CreateJugadorRequest) (*models.Jugador, error) {
	return request[*models.Jugador](ctx, c, http.MethodPatch, fmt.Sprintf("/jugadores/%d", id), req)
}

func (c *HTTPClient) DeleteJugador(ctx context.Context, id int64) error {
	return requestNoContent(ctx, c, http.MethodDelete, fmt.Sprintf("/jugadores/%d", id), nil)
}
