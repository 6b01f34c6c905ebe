package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

// observacionesBody is the shared payload for confirm/reject-style calls.
type observacionesBody struct {
	Observaciones string `json:"observaciones"`
}

func (c *HTTPClient) ListInscripciones(ctx context.Context) ([]models.Inscripcion, error) {
	return request[[]models.Inscripcion](ctx, c, http.MethodGet, "/inscripciones", nil)
}

func (c *HTTPClient) ListInscripcionesByCampeonato(ctx context.Context, campeonatoID int64) ([]models.Inscripcion, error) {
	return request[[]models.Inscripcion](ctx, c, http.MethodGet, fmt.Sprintf("/inscripciones/campeonato/%d", campeonatoID), nil)
}

func (c *HTTPClient) ListInscripcionesByCategoria(ctx context.Context, categoriaID int64) ([]models.Inscripcion, error) {
	return request[[]models.Inscripcion](ctx, c, http.MethodGet, fmt.Sprintf("/inscripciones/categoria/%d", categoriaID), nil)
}

func (c *HTTPClient) GetInscripcion(ctx context.Context, id int64) (*models.Inscripcion, error) {
	return request[*models.Inscripcion](ctx, c, http.MethodGet, fmt.Sprintf("/inscripciones/%d", id), nil)
}

func (c *HTTPClient) CreateInscripcion(ctx context.Context, req models.CreateInscripcionRequest) (*models.Inscripcion, error) {
	return request[*models.Inscripcion](ctx, c, http.MethodPost, "/inscripciones", req)
}

func (c *HTTPClient) ConfirmarInscripcion(ctx context.Context, id int64, observaciones string) (*models.Inscripcion, error) {
	return request[*models.Inscripcion](ctx, c, http.MethodPatch, fmt.Sprintf("/inscripciones/%d/confirmar", id), observacionesBody{observaciones})
}

func (c *HTTPClient) RechazarInscripcion(ctx context.Context, id int64, observaciones string) (*models.Inscripcion, error) {
	return request[*models.Inscripcion](ctx, c, http.MethodPatch, fmt.Sprintf("/inscripciones/%d/rechazar", id), observacionesBody{observaciones})
}

func (c *HTTPClient) DeleteInscripcion(ctx context.Context, id int64) error {
	return requestNoContent(ctx, c, http.MethodDelete, fmt.Sprintf("/inscripciones/%d", id), nil)
}
