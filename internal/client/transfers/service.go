// Package transfers implements the two-track transfer approval workflow on
// top of the transfer API. Every operation checks its preconditions locally
// before touching the wire, so a user is told "no" without a round trip and
// without relying on the server for the error shape.
package transfers

import (
	"context"
	"fmt"

	"github.com/ligadeportiva/ligacli/internal/client/api"
	"github.com/ligadeportiva/ligacli/internal/client/models"
	"github.com/ligadeportiva/ligacli/internal/client/permissions"
	"github.com/ligadeportiva/ligacli/internal/common"
	"github.com/ligadeportiva/ligacli/internal/logging"
)

// Service drives the transfer workflow for the current user.
type Service struct {
	api   api.TransferenciaAPI
	users permissions.UserSource
	log   logging.Logger
}

func NewService(a api.TransferenciaAPI, users permissions.UserSource, log logging.Logger) *Service {
	return &Service{api: a, users: users, log: log}
}

// require resolves the current user and checks a capability. It distinguishes
// "nobody logged in" from "logged in but not allowed".
func (s *Service) require(c permissions.Capability) (*models.User, error) {
	u := s.users.CurrentUser()
	if u == nil {
		return nil, common.ErrNotAuthenticated
	}
	if !permissions.Allowed(u, c) {
		return nil, common.ErrPermissionDenied
	}
	return u, nil
}

// List returns the transfers visible to the current user. Team managers only
// see transfers their own team takes part in, on either side.
func (s *Service) List(ctx context.Context) ([]models.Transferencia, error) {
	u, err := s.require(permissions.CapAccessTransferencias)
	if err != nil {
		return nil, err
	}

	all, err := s.api.ListTransferencias(ctx)
	if err != nil {
		return nil, err
	}

	if !permissions.HasAnyRole(u, permissions.RoleDirigenteEquipo) {
		return all, nil
	}
	own := make([]models.Transferencia, 0, len(all))
	for _, t := range all {
		if t.EquipoOrigenID == *u.EquipoID || t.EquipoDestinoID == *u.EquipoID {
			own = append(own, t)
		}
	}
	return own, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*models.Transferencia, error) {
	if _, err := s.require(permissions.CapAccessTransferencias); err != nil {
		return nil, err
	}
	return s.api.GetTransferencia(ctx, id)
}

// Solicitar requests a transfer of a player into the current user's team.
// The user's team is always the destination; the server resolves the origin
// from the player's current eligibility record.
func (s *Service) Solicitar(ctx context.Context, jugadorID, campeonatoID int64, observaciones string) (*models.Transferencia, error) {
	u, err := s.require(permissions.CapSolicitarTransferencia)
	if err != nil {
		return nil, err
	}
	if u.EquipoID == nil {
		return nil, common.ErrNoTeamAssigned
	}

	t, err := s.api.CreateTransferencia(ctx, models.CreateTransferenciaRequest{
		JugadorID:     jugadorID,
		CampeonatoID:  campeonatoID,
		EquipoDestino: *u.EquipoID,
		Observaciones: observaciones,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request transfer: %w", err)
	}
	s.log.Info(ctx, "transfer requested", "id", t.ID, "jugador", t.JugadorID)
	return t, nil
}

// AprobarOrigen approves the origin-team track of a transfer.
func (s *Service) AprobarOrigen(ctx context.Context, id int64, observaciones string) (*models.Transferencia, error) {
	return s.resolveOrigen(ctx, id, true, observaciones)
}

// RechazarOrigen rejects the origin-team track of a transfer.
func (s *Service) RechazarOrigen(ctx context.Context, id int64, observaciones string) (*models.Transferencia, error) {
	return s.resolveOrigen(ctx, id, false, observaciones)
}

func (s *Service) resolveOrigen(ctx context.Context, id int64, aprobar bool, observaciones string) (*models.Transferencia, error) {
	u, err := s.require(permissions.CapAprobarTransferenciaOrigen)
	if err != nil {
		return nil, err
	}

	t, err := s.api.GetTransferencia(ctx, id)
	if err != nil {
		return nil, err
	}
	// Master acts on behalf of any team; a manager only on their own.
	if !permissions.HasAnyRole(u, permissions.RoleMaster) {
		if u.EquipoID == nil {
			return nil, common.ErrNoTeamAssigned
		}
		if t.EquipoOrigenID != *u.EquipoID {
			return nil, common.ErrWrongTeam
		}
	}
	if !t.Activo || t.EstadoEquipoOrigen != models.AprobacionPendiente {
		return nil, common.ErrTrackAlreadySet
	}

	resolved, err := s.api.ResolverTransferenciaOrigen(ctx, id, models.ResolverTransferenciaRequest{
		Aprobar:       aprobar,
		Observaciones: observaciones,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve origin track: %w", err)
	}
	s.log.Info(ctx, "origin track resolved", "id", id, "aprobar", aprobar)
	return resolved, nil
}

// AprobarDirectivo approves the league-director track of a transfer.
func (s *Service) AprobarDirectivo(ctx context.Context, id int64, observaciones string) (*models.Transferencia, error) {
	return s.resolveDirectivo(ctx, id, true, observaciones)
}

// RechazarDirectivo rejects the league-director track of a transfer.
func (s *Service) RechazarDirectivo(ctx context.Context, id int64, observaciones string) (*models.Transferencia, error) {
	return s.resolveDirectivo(ctx, id, false, observaciones)
}

func (s *Service) resolveDirectivo(ctx context.Context, id int64, aprobar bool, observaciones string) (*models.Transferencia, error) {
	u, err := s.require(permissions.CapAprobarTransferenciaDirectivo)
	if err != nil {
		return nil, err
	}

	t, err := s.api.GetTransferencia(ctx, id)
	if err != nil {
		return nil, err
	}
	// League ownership is only checkable when the championship is embedded
	// on the record; the server enforces it either way.
	if !permissions.HasAnyRole(u, permissions.RoleMaster) &&
		u.LigaID != nil && t.Campeonato != nil && t.Campeonato.LigaID != *u.LigaID {
		return nil, common.ErrWrongLiga
	}
	if !t.Activo || t.EstadoDirectivo != models.AprobacionPendiente {
		return nil, common.ErrTrackAlreadySet
	}

	resolved, err := s.api.ResolverTransferenciaDirectivo(ctx, id, models.ResolverTransferenciaRequest{
		Aprobar:       aprobar,
		Observaciones: observaciones,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve director track: %w", err)
	}
	s.log.Info(ctx, "director track resolved", "id", id, "aprobar", aprobar)
	return resolved, nil
}

// Cancelar retracts a pending transfer request. Only the destination team
// that made the request may cancel it, and only while neither track has been
// resolved.
func (s *Service) Cancelar(ctx context.Context, id int64) error {
	u, err := s.require(permissions.CapCancelarTransferencia)
	if err != nil {
		return err
	}

	t, err := s.api.GetTransferencia(ctx, id)
	if err != nil {
		return err
	}
	equipoID := t.EquipoDestinoID
	if !permissions.HasAnyRole(u, permissions.RoleMaster) {
		if u.EquipoID == nil {
			return common.ErrNoTeamAssigned
		}
		if t.EquipoDestinoID != *u.EquipoID {
			return common.ErrWrongTeam
		}
		equipoID = *u.EquipoID
	}
	if !t.Cancellable(equipoID) {
		return common.ErrNotCancellable
	}

	if err := s.api.CancelarTransferencia(ctx, id); err != nil {
		return fmt.Errorf("failed to cancel transfer: %w", err)
	}
	s.log.Info(ctx, "transfer cancelled", "id", id)
	return nil
}
