package services

import (
	"context"
	"fmt"

	"github.com/ligadeportiva/ligacli/internal/client/api"
	"github.com/ligadeportiva/ligacli/internal/client/models"
	"github.com/ligadeportiva/ligacli/internal/client/permissions"
	"github.com/ligadeportiva/ligacli/internal/common"
)

type InscripcionService interface {
	List(ctx context.Context) ([]models.Inscripcion, error)
	ListByCampeonato(ctx context.Context, campeonatoID int64) ([]models.Inscripcion, error)
	Get(ctx context.Context, id int64) (*models.Inscripcion, error)
	Create(ctx context.Context, req models.CreateInscripcionRequest) (*models.Inscripcion, error)
	Confirmar(ctx context.Context, id int64, observaciones string) (*models.Inscripcion, error)
	Rechazar(ctx context.Context, id int64, observaciones string) (*models.Inscripcion, error)
	Delete(ctx context.Context, id int64) error
}

type inscripcionService struct {
	api   api.InscripcionAPI
	users permissions.UserSource
}

func NewInscripcionService(a api.InscripcionAPI, users permissions.UserSource) InscripcionService {
	return &inscripcionService{api: a, users: users}
}

// List narrows to the manager's team or the director's league.
func (s *inscripcionService) List(ctx context.Context) ([]models.Inscripcion, error) {
	rows, err := s.api.ListInscripciones(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list inscripciones: %w", err)
	}
	sc := scopeFor(s.users)
	out := make([]models.Inscripcion, 0, len(rows))
	for _, i := range rows {
		if sc.keepEquipo(i.EquipoID) && sc.keepCampeonato(i.Campeonato) {
			out = append(out, i)
		}
	}
	return out, nil
}

func (s *inscripcionService) ListByCampeonato(ctx context.Context, campeonatoID int64) ([]models.Inscripcion, error) {
	rows, err := s.api.ListInscripcionesByCampeonato(ctx, campeonatoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inscripciones for campeonato %d: %w", campeonatoID, err)
	}
	return rows, nil
}

func (s *inscripcionService) Get(ctx context.Context, id int64) (*models.Inscripcion, error) {
	return s.api.GetInscripcion(ctx, id)
}

// Create defaults the registering team to the manager's own when unset.
func (s *inscripcionService) Create(ctx context.Context, req models.CreateInscripcionRequest) (*models.Inscripcion, error) {
	if req.EquipoID == 0 {
		if u := s.users.CurrentUser(); u != nil && u.EquipoID != nil {
			req.EquipoID = *u.EquipoID
		}
	}
	if req.EquipoID == 0 || req.CampeonatoID == 0 || req.CategoriaID == 0 {
		return nil, fmt.Errorf("%w: equipoId, campeonatoId and categoriaId are required", common.ErrValidation)
	}
	return s.api.CreateInscripcion(ctx, req)
}

func (s *inscripcionService) Confirmar(ctx context.Context, id int64, observaciones string) (*models.Inscripcion, error) {
	return s.api.ConfirmarInscripcion(ctx, id, observaciones)
}

func (s *inscripcionService) Rechazar(ctx context.Context, id int64, observaciones string) (*models.Inscripcion, error) {
	return s.api.RechazarInscripcion(ctx, id, observaciones)
}

func (s *inscripcionService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteInscripcion(ctx, id)
}
