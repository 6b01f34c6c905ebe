package models

import "time"

// Categoria is a division inside a championship; Orden defines its rank and
// the ascension/descension quotas tie neighboring categories together.
type Categoria struct {
	ID                int64       `json:"id"`
	Nombre            string      `json:"nombre"`
	Descripcion       string      `json:"descripcion,omitempty"`
	CampeonatoID      int64       `json:"campeonatoId"`
	Campeonato        *Campeonato `json:"campeonato,omitempty"`
	Orden             int         `json:"orden"`
	EquiposAscienden  int         `json:"equiposAscienden"`
	EquiposDescienden int         `json:"equiposDescienden"`
	Activo            bool        `json:"activo"`
	CreadoEn          time.Time   `json:"creadoEn"`
}

type CreateCategoriaRequest struct {
	Nombre            string `json:"nombre,omitempty"`
	Descripcion       string `json:"descripcion,omitempty"`
	CampeonatoID      int64  `json:"campeonatoId,omitempty"`
	Orden             int    `json:"orden,omitempty"`
	EquiposAscienden  int    `json:"equiposAscienden,omitempty"`
	EquiposDescienden int    `json:"equiposDescienden,omitempty"`
}
