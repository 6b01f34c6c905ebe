package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ligadeportiva/ligacli/internal/client/models"
	"github.com/ligadeportiva/ligacli/internal/client/permissions"
)

type fixedUser struct {
	u *models.User
}

func (f *fixedUser) CurrentUser() *models.User { return f.u }

func user(role string) *models.User {
	return &models.User{ID: 1, Rol: models.Role{Nombre: role}}
}

func TestCanActivate(t *testing.T) {
	tests := []struct {
		name         string
		user         *models.User
		route        Route
		wantAllowed  bool
		wantRedirect string
	}{
		{
			name:         "anonymous user denied to login",
			user:         nil,
			route:        Route{Name: "equipos"},
			wantAllowed:  false,
			wantRedirect: LoginRoute,
		},
		{
			name:         "anonymous user denied even on role-free route",
			user:         nil,
			route:        Route{Name: "dashboard"},
			wantAllowed:  false,
			wantRedirect: LoginRoute,
		},
		{
			name:        "authenticated user allowed on role-free route",
			user:        user("dirigente_equipo"),
			route:       Route{Name: "dashboard"},
			wantAllowed: true,
		},
		{
			name:        "role in declared list",
			user:        user("master"),
			route:       Route{Name: "usuarios", Roles: []permissions.Role{permissions.RoleMaster, permissions.RoleDirectivoLiga}},
			wantAllowed: true,
		},
		{
			name:         "authenticated but unauthorized goes to dashboard, not login",
			user:         user("directivo_liga"),
			route:        Route{Name: "admin", Roles: []permissions.Role{permissions.RoleMaster}},
			wantAllowed:  false,
			wantRedirect: DashboardRoute,
		},
		{
			name:         "role outside the closed set is unauthorized",
			user:         user("arbitro"),
			route:        Route{Name: "usuarios", Roles: []permissions.Role{permissions.RoleMaster, permissions.RoleDirectivoLiga}},
			wantAllowed:  false,
			wantRedirect: DashboardRoute,
		},
		{
			name:        "role outside the closed set may enter role-free routes",
			user:        user("arbitro"),
			route:       Route{Name: "dashboard"},
			wantAllowed: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			g := New(&fixedUser{u: tt.user})
			d := g.CanActivate(tt.route)
			assert.Equal(t, tt.wantAllowed, d.Allowed)
			assert.Equal(t, tt.wantRedirect, d.Redirect)
		})
	}
}

func TestRouteTable_DeclaredRoleLists(t *testing.T) {
	// The restricted modules declare their role lists; the rest are
	// authentication-only gates.
	assert.NotEmpty(t, Routes["ligas"].Roles)
	assert.NotEmpty(t, Routes["usuarios"].Roles)
	assert.Empty(t, Routes["equipos"].Roles)
	assert.Empty(t, Routes["transferencias"].Roles)
}
