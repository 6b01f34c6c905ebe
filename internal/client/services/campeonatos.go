package services

import (
	"context"
	"fmt"

	"github.com/ligadeportiva/ligacli/internal/client/api"
	"github.com/ligadeportiva/ligacli/internal/client/models"
	"github.com/ligadeportiva/ligacli/internal/client/permissions"
	"github.com/ligadeportiva/ligacli/internal/common"
)

type CampeonatoService interface {
	List(ctx context.Context) ([]models.Campeonato, error)
	ListByLiga(ctx context.Context, ligaID int64) ([]models.Campeonato, error)
	Get(ctx context.Context, id int64) (*models.Campeonato, error)
	Create(ctx context.Context, req models.CreateCampeonatoRequest) (*models.Campeonato, error)
	Update(ctx context.Context, id int64, req models.CreateCampeonatoRequest) (*models.Campeonato, error)
	CambiarEstado(ctx context.Context, id int64, estado models.EstadoCampeonato) (*models.Campeonato, error)
	Delete(ctx context.Context, id int64) error
}

type campeonatoService struct {
	api   api.CampeonatoAPI
	users permissions.UserSource
}

func NewCampeonatoService(a api.CampeonatoAPI, users permissions.UserSource) CampeonatoService {
	return &campeonatoService{api: a, users: users}
}

// List narrows to the director's league and uses the dedicated endpoint when
// it can.
func (s *campeonatoService) List(ctx context.Context) ([]models.Campeonato, error) {
	sc := scopeFor(s.users)
	if sc.ligaID != nil {
		return s.ListByLiga(ctx, *sc.ligaID)
	}
	rows, err := s.api.ListCampeonatos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campeonatos: %w", err)
	}
	return rows, nil
}

func (s *campeonatoService) ListByLiga(ctx context.Context, ligaID int64) ([]models.Campeonato, error) {
	rows, err := s.api.ListCampeonatosByLiga(ctx, ligaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list campeonatos for liga %d: %w", ligaID, err)
	}
	return rows, nil
}

func (s *campeonatoService) Get(ctx context.Context, id int64) (*models.Campeonato, error) {
	return s.api.GetCampeonato(ctx, id)
}

// Create defaults the league to the director's own when unset and checks the
// date ordering before sending anything.
func (s *campeonatoService) Create(ctx context.Context, req models.CreateCampeonatoRequest) (*models.Campeonato, error) {
	if req.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre is required", common.ErrValidation)
	}
	if req.LigaID == 0 {
		if u := s.users.CurrentUser(); u != nil && u.LigaID != nil {
			req.LigaID = *u.LigaID
		}
	}
	if req.FechaInicio != nil && req.FechaFin != nil && req.FechaFin.Before(*req.FechaInicio) {
		return nil, fmt.Errorf("%w: fechaFin precedes fechaInicio", common.ErrValidation)
	}
	if req.FechaLimiteInscripcion != nil && req.FechaInicio != nil && req.FechaLimiteInscripcion.After(*req.FechaInicio) {
		return nil, fmt.Errorf("%w: fechaLimiteInscripcion is after fechaInicio", common.ErrValidation)
	}
	return s.api.CreateCampeonato(ctx, req)
}

func (s *campeonatoService) Update(ctx context.Context, id int64, req models.CreateCampeonatoRequest) (*models.Campeonato, error) {
	return s.api.UpdateCampeonato(ctx, id, req)
}

func (s *campeonatoService) CambiarEstado(ctx context.Context, id int64, estado models.EstadoCampeonato) (*models.Campeonato, error) {
	switch estado {
	case models.CampeonatoInscripcionAbierta, models.CampeonatoEnCurso,
		models.CampeonatoFinalizado, models.CampeonatoCancelado:
	default:
		return nil, fmt.Errorf("%w: unknown estado %q", common.ErrValidation, estado)
	}
	return s.api.CambiarEstadoCampeonato(ctx, id, estado)
}

func (s *campeonatoService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteCampeonato(ctx, id)
}
