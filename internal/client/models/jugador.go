package models

import "time"

// Jugador is a player, optionally attached to a team.
type Jugador struct {
	ID              int64      `json:"id"`
	Nombre          string     `json:"nombre"`
	FechaNacimiento *time.Time `json:"fechaNacimiento,omitempty"`
	Cedula          string     `json:"cedula,omitempty"`
	EquipoID        *int64     `json:"equipoId,omitempty"`
	Equipo          *Equipo    `json:"equipo,omitempty"`
	Descripcion     string     `json:"descripcion,omitempty"`
	NumeroCancha    int        `json:"numeroCancha,omitempty"`
	Posicion        string     `json:"posicion,omitempty"`
	Activo          bool       `json:"activo"`
	CreadoEn        time.Time  `json:"creadoEn"`
}

type CreateJugadorRequest struct {
	Nombre          string     `json:"nombre,omitempty"`
	FechaNacimiento *time.Time `json:"fechaNacimiento,omitempty"`
	Cedula          string     `json:"cedula,omitempty"`
	EquipoID        *int64     `json:"equipoId,omitempty"`
	Descripcion     string     `json:"descripcion,omitempty"`
	NumeroCancha    int        `json:"numeroCancha,omitempty"`
	Posicion        string     `json:"posicion,omitempty"`
}
