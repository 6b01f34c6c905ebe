package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

func (c *HTTPClient) ListTransferencias(ctx context.Context) ([]models.Transferencia, error) {
	return request[[]models.Transferencia](ctx, c, http.MethodGet, "/transferencias", nil)
}

func (c *HTTPClient) GetTransferencia(ctx context.Context, id int64) (*models.Transferencia, error) {
	return request[*models.Transferencia](ctx, c, http.MethodGet, fmt.Sprintf("/transferencias/%d", id), nil)
}

func (c *HTTPClient) CreateTransferencia(ctx context.Context, req models.CreateTransferenciaRequest) (*models.Transferencia, error) {
	return request[*models.Transferencia](ctx, c, http.MethodPost, "/transferencias", req)
}

// ResolverTransferenciaOrigen settles the origin-team approval track.
func (c *HTTPClient) ResolverTransferenciaOrigen(ctx context.Context, id int64, req models.ResolverTransferenciaRequest) (*models.Transferencia, error) {
	return request[*models.Transferencia](ctx, c, http.MethodPatch, fmt.Sprintf("/transferencias/%d/aprobar-origen", id), req)
}

// ResolverTransferenciaDirectivo settles the league-director approval track.
func (c *HTTPClient) ResolverTransferenciaDirectivo(ctx context.Context, id int64, req models.ResolverTransferenciaRequest) (*models.Transferencia, error) {
	return request[*models.Transferencia](ctx, c, http.MethodPatch, fmt.Sprintf("/transferencias/%d/aprobar-directivo", id), req)
}

func (c *HTTPClient) CancelarTransferencia(ctx context.Context, id int64) error {
	return requestNoContent(ctx, c, http.MethodDelete, fmt.Sprintf("/transferencias/%d", id), nil)
}
