package models

import "time"

// EstadoCampeonato is the lifecycle state of a championship.
type EstadoCampeonato string

const (
	CampeonatoInscripcionAbierta EstadoCampeonato = "inscripcion_abierta"
	CampeonatoEnCurso            EstadoCampeonato = "en_curso"
	CampeonatoFinalizado         EstadoCampeonato = "finalizado"
	CampeonatoCancelado          EstadoCampeonato = "cancelado"
)

// Campeonato is a championship run inside a league.
type Campeonato struct {
	ID                     int64            `json:"id"`
	Nombre                 string           `json:"nombre"`
	Descripcion            string           `json:"descripcion,omitempty"`
	LigaID                 int64            `json:"ligaId"`
	Liga                   *Liga            `json:"liga,omitempty"`
	FechaInicio            time.Time        `json:"fechaInicio"`
	FechaFin               time.Time        `json:"fechaFin"`
	FechaLimiteInscripcion time.Time        `json:"fechaLimiteInscripcion"`
	Estado                 EstadoCampeonato `json:"estado"`
	Activo                 bool             `json:"activo"`
	CreadoEn               time.Time        `json:"creadoEn"`
}

type CreateCampeonatoRequest struct {
	Nombre                 string           `json:"nombre,omitempty"`
	Descripcion            string           `json:"descripcion,omitempty"`
	LigaID                 int64            `json:"ligaId,omitempty"`
	FechaInicio            *time.Time       `json:"fechaInicio,omitempty"`
	FechaFin               *time.Time       `json:"fechaFin,omitempty"`
	FechaLimiteInscripcion *time.Time       `json:"fechaLimiteInscripcion,omitempty"`
	Estado                 EstadoCampeonato `json:"estado,omitempty"`
}
