package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

func (c *HTTPClient) ListJugadorCampeonatos(ctx context.Context) ([]models.JugadorCampeonato, error) {
	return request[[]models.JugadorCampeonato](ctx, c, http.MethodGet, "/jugador-campeonatos", nil)
}

func (c *HTTPClient) ListJugadorCampeonatosByCampeonato(ctx context.Context, campeonatoID int64) ([]models.JugadorCampeonato, error) {
	return request[[]models.JugadorCampeonato](ctx, c, http.MethodGet, fmt.Sprintf("/jugador-campeonatos/campeonato/%d", campeonatoID), nil)
}

func (c *HTTPClient) GetJugadorCampeonato(ctx context.Context, id int64) (*models.JugadorCampeonato, error) {
	return request[*models.JugadorCampeonato](ctx, c, http.MethodGet, fmt.Sprintf("/jugador-campeonatos/%d", id), nil)
}

func (c *HTTPClient) CreateJugadorCampeonato(ctx context.Context, req models.CreateJugadorCampeonatoRequest) (*models.JugadorCampeonato, error) {
	return request[*models.JugadorCampeonato](ctx, c, http.MethodPost, "/jugador-campeonatos", req)
}

func (c *HTTPClient) UpdateJugadorCampeonato(ctx context.Context, id int64, req models.UpdateJugadorCampeonatoRequest) (*models.JugadorCampeonato, error) {
	return request[*models.JugadorCampeonato](ctx, c, http.MethodPatch, fmt.Sprintf("/jugador-campeonatos/%d", id), req)
}

// AprobarJugadorCampeonato resolves an eligibility request one way or the other.
func (c *HTTPClient) AprobarJugadorCampeonato(ctx context.Context, id int64, aprobar bool, observaciones string) (*models.JugadorCampeonato, error) {
	body := struct {
		Aprobar       bool   `json:"aprobar"`
		Observaciones string `json:"observaciones,omitempty"`
	}{Aprobar: aprobar, Observaciones: observaciones}
	return request[*models.JugadorCampeonato](ctx, c, http.MethodPatch, fmt.Sprintf("/jugador-campeonatos/%d/aprobar", id), body)
}

func (c *HTTPClient) DeleteJugadorCampeonato(ctx context.Context, id int64) error {
	return requestNoContent(ctx, c, http.MethodDelete, fmt.Sprintf("/jugador-campeonatos/%d", id), nil)
}
