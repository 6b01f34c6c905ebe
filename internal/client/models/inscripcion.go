package models

import "time"

// EstadoInscripcion is the confirmation state of a team registration.
type EstadoInscripcion string

const (
	InscripcionPendiente  EstadoInscripcion = "pendiente"
	InscripcionConfirmada EstadoInscripcion = "confirmada"
	InscripcionRechazada  EstadoInscripcion = "rechazada"
)

// Inscripcion registers a team into a championship category.
type Inscripcion struct {
	ID            int64             `json:"id"`
	EquipoID      int64             `json:"equipoId"`
	Equipo        *Equipo           `json:"equipo,omitempty"`
	CampeonatoID  int64             `json:"campeonatoId"`
	Campeonato    *Campeonato       `json:"campeonato,omitempty"`
	CategoriaID   int64             `json:"categoriaId"`
	Categoria     *Categoria        `json:"categoria,omitempty"`
	Estado        EstadoInscripcion `json:"estado"`
	Observaciones string            `json:"observaciones,omitempty"`
	Activo        bool              `json:"activo"`
	CreadoEn      time.Time         `json:"creadoEn"`
}

type CreateInscripcionRequest struct {
	EquipoID     int64 `json:"equipoId,omitempty"`
	CampeonatoID int64 `json:"campeonatoId,omitempty"`
	CategoriaID  int64 `json:"categoriaId,omitempty"`
}
