package models

import "time"

// EstadoAprobacion is the state of one approval track of a transfer.
type EstadoAprobacion string

const (
	AprobacionPendiente EstadoAprobacion = "pendiente"
	AprobacionAprobado  EstadoAprobacion = "aprobado"
	AprobacionRechazado EstadoAprobacion = "rechazado"
)

// EstadoTransferencia is the overall state of a transfer. It is derived from
// the two approval tracks and never stored on the record.
type EstadoTransferencia string

const (
	TransferenciaEnProceso  EstadoTransferencia = "en_proceso"
	TransferenciaCompletada EstadoTransferencia = "completada"
	TransferenciaRechazada  EstadoTransferencia = "rechazada"
	TransferenciaCancelada  EstadoTransferencia = "cancelada"
)

// Transferencia is a request to move a player from an origin team to a
// destination team within a championship. The destination team requests it;
// the origin team and a league director approve it independently.
type Transferencia struct {
	ID                       int64            `json:"id"`
	JugadorID                int64            `json:"jugadorId"`
	Jugador                  *Jugador         `json:"jugador,omitempty"`
	CampeonatoID             int64            `json:"campeonatoId"`
	Campeonato               *Campeonato      `json:"campeonato,omitempty"`
	EquipoOrigenID           int64            `json:"equipoOrigenId"`
	EquipoOrigen             *Equipo          `json:"equipoOrigen,omitempty"`
	EquipoDestinoID          int64            `json:"equipoDestinoId"`
	EquipoDestino            *Equipo          `json:"equipoDestino,omitempty"`
	FechaSolicitud           time.Time        `json:"fechaSolicitud"`
	EstadoEquipoOrigen       EstadoAprobacion `json:"estadoEquipoOrigen"`
	EstadoDirectivo          EstadoAprobacion `json:"estadoDirectivo"`
	SolicitadoPor            int64            `json:"solicitadoPor"`
	AprobadoPorOrigen        *int64           `json:"aprobadoPorOrigen,omitempty"`
	FechaAprobacionOrigen    *time.Time       `json:"fechaAprobacionOrigen,omitempty"`
	AprobadoPorDirectivo     *int64           `json:"aprobadoPorDirectivo,omitempty"`
	FechaAprobacionDirectivo *time.Time       `json:"fechaAprobacionDirectivo,omitempty"`
	Observaciones            string           `json:"observaciones,omitempty"`
	Activo                   bool             `json:"activo"`
	CreadoEn                 time.Time        `json:"creadoEn"`
}

// Estado derives the overall transfer state from the two approval tracks.
// The enumeration is exhaustive so list and detail views cannot diverge:
//
//	inactive record               -> cancelada
//	both tracks aprobado          -> completada
//	either track rechazado        -> rechazada
//	anything else                 -> en_proceso
func (t *Transferencia) Estado() EstadoTransferencia {
	switch {
	case !t.Activo:
		return TransferenciaCancelada
	case t.EstadoEquipoOrigen == AprobacionAprobado && t.EstadoDirectivo == AprobacionAprobado:
		return TransferenciaCompletada
	case t.EstadoEquipoOrigen == AprobacionRechazado || t.EstadoDirectivo == AprobacionRechazado:
		return TransferenciaRechazada
	default:
		return TransferenciaEnProceso
	}
}

// Cancellable reports whether the team with the given id may still cancel
// the transfer: only the destination (requesting) team, and only while both
// tracks remain pendiente. Once a counterparty has acted, the request can no
// longer be retracted.
func (t *Transferencia) Cancellable(equipoID int64) bool {
	return t.Activo &&
		t.EquipoDestinoID == equipoID &&
		t.EstadoEquipoOrigen == AprobacionPendiente &&
		t.EstadoDirectivo == AprobacionPendiente
}

// CreateTransferenciaRequest is the payload to request a transfer. The
// requesting user's team is the destination; the server resolves the origin
// from the player's current eligibility record.
type CreateTransferenciaRequest struct {
	JugadorID     int64  `json:"jugadorId"`
	CampeonatoID  int64  `json:"campeonatoId"`
	EquipoDestino int64  `json:"equipoDestinoId"`
	Observaciones string `json:"observaciones,omitempty"`
}

// ResolverTransferenciaRequest approves or rejects one approval track.
type ResolverTransferenciaRequest struct {
	Aprobar       bool   `json:"aprobar"`
	Observaciones string `json:"observaciones,omitempty"`
}
