// Package permissions centralizes role-based authorization: a closed role
// enumeration, a closed capability enumeration, and a single capability-to-
// role-set table so the whole policy can be audited in one place.
package permissions

import "github.com/ligadeportiva/ligacli/internal/client/models"

// Role identifies one of the role names that carry special-cased behavior.
// Role rows outside this set may exist on the server; they authenticate fine
// but appear in no capability entry and therefore grant nothing.
type Role string

const (
	// RoleMaster is the system administrator.
	RoleMaster Role = "master"

	// RoleDirectivoLiga is a league director, scoped to one league.
	RoleDirectivoLiga Role = "directivo_liga"

	// RoleDirigenteEquipo is a team manager, scoped to one team.
	RoleDirigenteEquipo Role = "dirigente_equipo"
)

// HasAnyRole reports whether u is non-nil and its role name is one of the
// given roles. This is the single authorization primitive; every capability
// is a fixed role set checked through it. It performs pure membership; no
// scope logic lives here.
func HasAnyRole(u *models.User, roles ...Role) bool {
	if u == nil {
		return false
	}
	for _, r := range roles {
		if Role(u.Rol.Nombre) == r {
			return true
		}
	}
	return false
}

// scopeSatisfied reports whether the user's role has the assignment it is
// scoped to. A league director without a league, or a team manager without a
// team, degrades to no capabilities at all, never to broader access.
func scopeSatisfied(u *models.User) bool {
	switch Role(u.Rol.Nombre) {
	case RoleDirectivoLiga:
		return u.LigaID != nil
	case RoleDirigenteEquipo:
		return u.EquipoID != nil
	default:
		return true
	}
}
