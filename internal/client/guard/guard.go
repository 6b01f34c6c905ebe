// Package guard gates navigation to protected screens by the role list each
// route declares. Decisions are synchronous over the in-memory session
// snapshot; no network call happens during evaluation.
package guard

import (
	"github.com/ligadeportiva/ligacli/internal/client/permissions"
)

// Well-known navigation targets for denial redirects.
const (
	LoginRoute     = "/login"
	DashboardRoute = "/dashboard"
)

// Route is a protected screen with an optional list of allowed roles.
// An empty list means the route only requires authentication.
type Route struct {
	Name  string
	Path  string
	Roles []permissions.Role
}

// Decision is the terminal outcome of a guard evaluation. Redirect is set
// only on denial.
type Decision struct {
	Allowed  bool
	Redirect string
}

// Guard evaluates route access against the current session user.
type Guard struct {
	users permissions.UserSource
}

func New(users permissions.UserSource) *Guard {
	return &Guard{users: users}
}

// CanActivate decides whether the current user may enter the route.
//
//	no user            -> deny, redirect to login
//	no declared roles  -> allow (authentication-only gate)
//	role in the list   -> allow
//	otherwise          -> deny, redirect to the dashboard; the user is
//	                      authenticated, merely unauthorized for this route
func (g *Guard) CanActivate(route Route) Decision {
	user := g.users.CurrentUser()

	if user == nil {
		return Decision{Allowed: false, Redirect: LoginRoute}
	}

	if len(route.Roles) == 0 {
		return Decision{Allowed: true}
	}

	if permissions.HasAnyRole(user, route.Roles...) {
		return Decision{Allowed: true}
	}

	return Decision{Allowed: false, Redirect: DashboardRoute}
}

// Routes is the client's screen table, mirroring the modules the platform
// exposes. Kept here so the full navigation policy is visible in one place.
var Routes = map[string]Route{
	"dashboard":      {Name: "dashboard", Path: DashboardRoute},
	"ligas":          {Name: "ligas", Path: "/ligas", Roles: []permissions.Role{permissions.RoleMaster, permissions.RoleDirectivoLiga}},
	"equipos":        {Name: "equipos", Path: "/equipos"},
	"jugadores":      {Name: "jugadores", Path: "/jugadores"},
	"usuarios":       {Name: "usuarios", Path: "/usuarios", Roles: []permissions.Role{permissions.RoleMaster, permissions.RoleDirectivoLiga}},
	"campeonatos":    {Name: "campeonatos", Path: "/campeonatos"},
	"categorias":     {Name: "categorias", Path: "/categorias"},
	"inscripciones":  {Name: "inscripciones", Path: "/inscripciones"},
	"habilitaciones": {Name: "habilitaciones", Path: "/jugador-campeonatos"},
	"transferencias": {Name: "transferencias", Path: "/transferencias"},
}
