package services

import (
	"context"
	"fmt"

	"github.com/ligadeportiva/ligacli/internal/client/api"
	"github.com/ligadeportiva/ligacli/internal/client/models"
	"github.com/ligadeportiva/ligacli/internal/client/permissions"
	"github.com/ligadeportiva/ligacli/internal/common"
)

type JugadorService interface {
	List(ctx context.Context) ([]models.Jugador, error)
	Get(ctx context.Context, id int64) (*models.Jugador, error)
	Create(ctx context.Context, req models.CreateJugadorRequest) (*models.Jugador, error)
	Update(ctx context.Context, id int64, req models.CreateJugadorRequest) (*models.Jugador, error)
	Delete(ctx context.Context, id int64) error
}

type jugadorService struct {
	api   api.JugadorAPI
	users permissions.UserSource
}

func NewJugadorService(a api.JugadorAPI, users permissions.UserSource) JugadorService {
	return &jugadorService{api: a, users: users}
}

// List narrows to the manager's own players. For a league director players
// are narrowed through the embedded team when the API expands it; free agents
// stay visible.
func (s *jugadorService) List(ctx context.Context) ([]models.Jugador, error) {
	rows, err := s.api.ListJugadores(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jugadores: %w", err)
	}
	sc := scopeFor(s.users)
	out := make([]models.Jugador, 0, len(rows))
	for _, j := range rows {
		if sc.equipoID != nil && (j.EquipoID == nil || *j.EquipoID != *sc.equipoID) {
			continue
		}
		if sc.ligaID != nil && j.Equipo != nil && j.Equipo.LigaID != *sc.ligaID {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (s *jugadorService) Get(ctx context.Context, id int64) (*models.Jugador, error) {
	return s.api.GetJugador(ctx, id)
}

// Create defaults the player's team to the manager's own when the caller
// leaves it unset.
func (s *jugadorService) Create(ctx context.Context, req models.CreateJugadorRequest) (*models.Jugador, error) {
	if req.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre is required", common.ErrValidation)
	}
	if req.EquipoID == nil {
		if u := s.users.CurrentUser(); u != nil && u.EquipoID != nil {
			req.EquipoID = u.EquipoID
		}
	}
	return s.api.CreateJugador(ctx, req)
}

func (s *jugadorService) Update(ctx context.Context, id int64, req models.CreateJugadorRequest) (*models.Jugador, error) {
	return s.api.UpdateJugador(ctx, id, req)
}

func (s *jugadorService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteJugador(ctx, id)
}
