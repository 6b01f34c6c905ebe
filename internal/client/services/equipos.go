package services

import (
	"context"
	"fmt"

	"github.com/ligadeportiva/ligacli/internal/client/api"
	"github.com/ligadeportiva/ligacli/internal/client/models"
	"github.com/ligadeportiva/ligacli/internal/client/permissions"
	"github.com/ligadeportiva/ligacli/internal/common"
)

type EquipoService interface {
	List(ctx context.Context) ([]models.Equipo, error)
	Get(ctx context.Context, id int64) (*models.Equipo, error)
	Create(ctx context.Context, req models.CreateEquipoRequest) (*models.Equipo, error)
	Update(ctx context.Context, id int64, req models.CreateEquipoRequest) (*models.Equipo, error)
	Delete(ctx context.Context, id int64) error
}

type equipoService struct {
	api   api.EquipoAPI
	users permissions.UserSource
}

func NewEquipoService(a api.EquipoAPI, users permissions.UserSource) EquipoService {
	return &equipoService{api: a, users: users}
}

// List narrows to the director's league or the manager's own team.
func (s *equipoService) List(ctx context.Context) ([]models.Equipo, error) {
	rows, err := s.api.ListEquipos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipos: %w", err)
	}
	sc := scopeFor(s.users)
	out := make([]models.Equipo, 0, len(rows))
	for _, e := range rows {
		if sc.keepLiga(e.LigaID) && sc.keepEquipo(e.ID) {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *equipoService) Get(ctx context.Context, id int64) (*models.Equipo, error) {
	return s.api.GetEquipo(ctx, id)
}

func (s *equipoService) Create(ctx context.Context, req models.CreateEquipoRequest) (*models.Equipo, error) {
	if req.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre is required", common.ErrValidation)
	}
	if req.LigaID == 0 {
		return nil, fmt.Errorf("%w: ligaId is required", common.ErrValidation)
	}
	return s.api.CreateEquipo(ctx, req)
}

func (s *equipoService) Update(ctx context.Context, id int64, req models.CreateEquipoRequest) (*models.Equipo, error) {
	return s.api.UpdateEquipo(ctx, id, req)
}

func (s *equipoService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteEquipo(ctx, id)
}
