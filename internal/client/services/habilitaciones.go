package services

import (
	"context"
	"fmt"

	"github.com/ligadeportiva/ligacli/internal/client/api"
	"github.com/ligadeportiva/ligacli/internal/client/models"
	"github.com/ligadeportiva/ligacli/internal/client/permissions"
	"github.com/ligadeportiva/ligacli/internal/common"
)

// HabilitacionService manages player-championship eligibility records. The
// approval is single-track: a league director (or master) habilitates or
// rejects, there is no origin-team voice.
type HabilitacionService interface {
	List(ctx context.Context) ([]models.JugadorCampeonato, error)
	ListByCampeonato(ctx context.Context, campeonatoID int64) ([]models.JugadorCampeonato, error)
	Get(ctx context.Context, id int64) (*models.JugadorCampeonato, error)
	Inscribir(ctx context.Context, req models.CreateJugadorCampeonatoRequest) (*models.JugadorCampeonato, error)
	Update(ctx context.Context, id int64, req models.UpdateJugadorCampeonatoRequest) (*models.JugadorCampeonato, error)
	Aprobar(ctx context.Context, id int64, observaciones string) (*models.JugadorCampeonato, error)
	Rechazar(ctx context.Context, id int64, observaciones string) (*models.JugadorCampeonato, error)
	Delete(ctx context.Context, id int64) error
}

type habilitacionService struct {
	api   api.JugadorCampeonatoAPI
	users permissions.UserSource
}

func NewHabilitacionService(a api.JugadorCampeonatoAPI, users permissions.UserSource) HabilitacionService {
	return &habilitacionService{api: a, users: users}
}

func (s *habilitacionService) List(ctx context.Context) ([]models.JugadorCampeonato, error) {
	rows, err := s.api.ListJugadorCampeonatos(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list habilitaciones: %w", err)
	}
	sc := scopeFor(s.users)
	out := make([]models.JugadorCampeonato, 0, len(rows))
	for _, h := range rows {
		if sc.keepEquipo(h.EquipoID) && sc.keepCampeonato(h.Campeonato) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (s *habilitacionService) ListByCampeonato(ctx context.Context, campeonatoID int64) ([]models.JugadorCampeonato, error) {
	rows, err := s.api.ListJugadorCampeonatosByCampeonato(ctx, campeonatoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list habilitaciones for campeonato %d: %w", campeonatoID, err)
	}
	return rows, nil
}

func (s *habilitacionService) Get(ctx context.Context, id int64) (*models.JugadorCampeonato, error) {
	return s.api.GetJugadorCampeonato(ctx, id)
}

// Inscribir requests eligibility for a player. The manager's team is the
// default when the caller leaves it unset.
func (s *habilitacionService) Inscribir(ctx context.Context, req models.CreateJugadorCampeonatoRequest) (*models.JugadorCampeonato, error) {
	if req.EquipoID == 0 {
		if u := s.users.CurrentUser(); u != nil && u.EquipoID != nil {
			req.EquipoID = *u.EquipoID
		}
	}
	if req.JugadorID == 0 || req.CampeonatoID == 0 || req.EquipoID == 0 || req.CategoriaID == 0 {
		return nil, fmt.Errorf("%w: jugadorId, campeonatoId, equipoId and categoriaId are required", common.ErrValidation)
	}
	return s.api.CreateJugadorCampeonato(ctx, req)
}

func (s *habilitacionService) Update(ctx context.Context, id int64, req models.UpdateJugadorCampeonatoRequest) (*models.JugadorCampeonato, error) {
	return s.api.UpdateJugadorCampeonato(ctx, id, req)
}

func (s *habilitacionService) Aprobar(ctx context.Context, id int64, observaciones string) (*models.JugadorCampeonato, error) {
	return s.resolve(ctx, id, true, observaciones)
}

func (s *habilitacionService) Rechazar(ctx context.Context, id int64, observaciones string) (*models.JugadorCampeonato, error) {
	return s.resolve(ctx, id, false, observaciones)
}

func (s *habilitacionService) resolve(ctx context.Context, id int64, aprobar bool, observaciones string) (*models.JugadorCampeonato, error) {
	h, err := s.api.GetJugadorCampeonato(ctx, id)
	if err != nil {
		return nil, err
	}
	if h.Estado != models.HabilitacionPendiente {
		return nil, common.ErrTrackAlreadySet
	}
	return s.api.AprobarJugadorCampeonato(ctx, id, aprobar, observaciones)
}

func (s *habilitacionService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteJugadorCampeonato(ctx, id)
}
