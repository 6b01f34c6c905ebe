package models

import "time"

// Equipo is a team, owned by a league and run by a dirigente.
type Equipo struct {
	ID            int64      `json:"id"`
	Nombre        string     `json:"nombre"`
	Representante string     `json:"representante,omitempty"`
	Fundacion     *time.Time `json:"fundacion,omitempty"`
	Descripcion   string     `json:"descripcion,omitempty"`
	Imagen        string     `json:"imagen,omitempty"`
	LigaID        int64      `json:"ligaId"`
	Liga          *Liga      `json:"liga,omitempty"`
	DirigenteID   int64      `json:"dirigenteId"`
	Dirigente     *User      `json:"dirigente,omitempty"`
	Activo        bool       `json:"activo"`
	CreadoEn      time.Time  `json:"creadoEn"`
}

type CreateEquipoRequest struct {
	Nombre        string     `json:"nombre,omitempty"`
	Representante string     `json:"representante,omitempty"`
	Fundacion     *time.Time `json:"fundacion,omitempty"`
	Descripcion   string     `json:"descripcion,omitempty"`
	Imagen        string     `json:"imagen,omitempty"`
	LigaID        int64      `json:"ligaId,omitempty"`
	DirigenteID   int64      `json:"dirigenteId,omitempty"`
}
