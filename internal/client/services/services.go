// Package services holds one thin service per resource over the API client.
// Services narrow lists to the current user's league or team where that is
// the useful default view. The narrowing is a display convenience only; the
// server enforces access on every request.
package services

import (
	"github.com/ligadeportiva/ligacli/internal/client/models"
	"github.com/ligadeportiva/ligacli/internal/client/permissions"
)

// scope captures the current user's narrowing, resolved once per call.
type scope struct {
	ligaID   *int64
	equipoID *int64
}

func scopeFor(users permissions.UserSource) scope {
	u := users.CurrentUser()
	if u == nil {
		return scope{}
	}
	switch {
	case permissions.HasAnyRole(u, permissions.RoleDirectivoLiga):
		return scope{ligaID: u.LigaID}
	case permissions.HasAnyRole(u, permissions.RoleDirigenteEquipo):
		return scope{equipoID: u.EquipoID}
	default:
		return scope{}
	}
}

// keepLiga reports whether a row belonging to the given league stays in view.
func (s scope) keepLiga(ligaID int64) bool {
	return s.ligaID == nil || *s.ligaID == ligaID
}

// keepEquipo reports whether a row belonging to the given team stays in view.
func (s scope) keepEquipo(equipoID int64) bool {
	return s.equipoID == nil || *s.equipoID == equipoID
}

// keepCampeonato narrows by the league of an embedded championship. Rows
// without the embedded record stay visible rather than silently vanish.
func (s scope) keepCampeonato(c *models.Campeonato) bool {
	if s.ligaID == nil || c == nil {
		return true
	}
	return c.LigaID == *s.ligaID
}
