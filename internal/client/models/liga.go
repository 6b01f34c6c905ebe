package models

import "time"

// Liga is a league, the top-level grouping of teams and championships.
type Liga struct {
	ID          int64     `json:"id"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion,omitempty"`
	Imagen      string    `json:"imagen,omitempty"`
	Activo      bool      `json:"activo"`
	CreadoEn    time.Time `json:"creadoEn"`
}

// CreateLigaRequest creates or updates a league. Update requests send only
// the fields being changed.
type CreateLigaRequest struct {
	Nombre      string `json:"nombre,omitempty"`
	Descripcion string `json:"descripcion,omitempty"`
	Imagen      string `json:"imagen,omitempty"`
}
