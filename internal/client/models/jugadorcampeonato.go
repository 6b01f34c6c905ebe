package models

import "time"

// EstadoHabilitacion is the state of a player-championship eligibility request.
type EstadoHabilitacion string

const (
	HabilitacionPendiente  EstadoHabilitacion = "pendiente"
	HabilitacionHabilitado EstadoHabilitacion = "habilitado"
	HabilitacionRechazado  EstadoHabilitacion = "rechazado"
)

// JugadorCampeonato enables a player to play for a team in a championship
// category. Approvals are single-track, unlike transfers.
type JugadorCampeonato struct {
	ID               int64              `json:"id"`
	JugadorID        int64              `json:"jugadorId"`
	Jugador          *Jugador           `json:"jugador,omitempty"`
	CampeonatoID     int64              `json:"campeonatoId"`
	Campeonato       *Campeonato        `json:"campeonato,omitempty"`
	EquipoID         int64              `json:"equipoId"`
	Equipo           *Equipo            `json:"equipo,omitempty"`
	CategoriaID      int64              `json:"categoriaId"`
	Categoria        *Categoria         `json:"categoria,omitempty"`
	NumeroCancha     int                `json:"numeroCancha"`
	Posicion         string             `json:"posicion"`
	Estado           EstadoHabilitacion `json:"estado"`
	SolicitadoPor    *int64             `json:"solicitadoPor,omitempty"`
	AprobadoPor      *int64             `json:"aprobadoPor,omitempty"`
	FechaAprobacion  *time.Time         `json:"fechaAprobacion,omitempty"`
	Observaciones    string             `json:"observaciones,omitempty"`
	FechaInscripcion time.Time          `json:"fechaInscripcion"`
	Activo           bool               `json:"activo"`
	CreadoEn         time.Time          `json:"creadoEn"`
}

type CreateJugadorCampeonatoRequest struct {
	JugadorID    int64  `json:"jugadorId"`
	CampeonatoID int64  `json:"campeonatoId"`
	EquipoID     int64  `json:"equipoId"`
	CategoriaID  int64  `json:"categoriaId"`
	NumeroCancha int    `json:"numeroCancha"`
	Posicion     string `json:"posicion"`
}

type UpdateJugadorCampeonatoRequest struct {
	CategoriaID   *int64 `json:"categoriaId,omitempty"`
	NumeroCancha  *int   `json:"numeroCancha,omitempty"`
	Posicion      string `json:"posicion,omitempty"`
	Observaciones string `json:"observaciones,omitempty"`
}
