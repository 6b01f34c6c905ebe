package permissions

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

func userWithRole(name string) *models.User {
	return &models.User{ID: 1, Rol: models.Role{ID: 1, Nombre: name}}
}

func masterUser() *models.User {
	return userWithRole("master")
}

func directivoUser(ligaID int64) *models.User {
	u := userWithRole("directivo_liga")
	u.LigaID = &ligaID
	return u
}

func dirigenteUser(equipoID int64) *models.User {
	u := userWithRole("dirigente_equipo")
	u.EquipoID = &equipoID
	return u
}

func TestHasAnyRole_PureMembership(t *testing.T) {
	tests := []struct {
		name  string
		user  *models.User
		roles []Role
		want  bool
	}{
		{"nil user never matches", nil, []Role{RoleMaster}, false},
		{"nil user with empty set", nil, nil, false},
		{"role in set", userWithRole("master"), []Role{RoleMaster, RoleDirectivoLiga}, true},
		{"role not in set", userWithRole("dirigente_equipo"), []Role{RoleMaster, RoleDirectivoLiga}, false},
		{"empty set matches nothing", userWithRole("master"), nil, false},
		{"unknown role name", userWithRole("arbitro"), []Role{RoleMaster, RoleDirectivoLiga, RoleDirigenteEquipo}, false},
		// Membership only: a scoped role with no assignment still matches here.
		{"no scope logic in the primitive", userWithRole("dirigente_equipo"), []Role{RoleDirigenteEquipo}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasAnyRole(tt.user, tt.roles...))
		})
	}
}

func TestAllowed_CapabilityTable(t *testing.T) {
	master := masterUser()
	directivo := directivoUser(2)
	dirigente := dirigenteUser(7)

	tests := []struct {
		cap       Capability
		master    bool
		directivo bool
		dirigente bool
	}{
		{CapAccessLigas, true, true, false},
		{CapCreateLiga, true, false, false},
		{CapEditLiga, true, true, false},
		{CapDeleteLiga, true, false, false},
		{CapCreateEquipo, true, true, false},
		{CapDeleteEquipo, true, true, false},
		{CapCreateJugador, true, true, true},
		{CapDeleteJugador, true, true, true},
		{CapAccessUsuarios, true, true, false},
		{CapCreateCampeonato, true, true, false},
		{CapCreateCategoria, true, true, false},
		{CapCreateInscripcion, true, true, true},
		{CapManageInscripcion, true, true, false},
		{CapAprobarHabilitaciones, true, true, false},
		{CapSolicitarTransferencia, true, false, true},
		{CapAprobarTransferenciaOrigen, true, false, true},
		{CapAprobarTransferenciaDirectivo, true, true, false},
		{CapCancelarTransferencia, true, false, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.cap), func(t *testing.T) {
			assert.Equal(t, tt.master, Allowed(master, tt.cap), "master")
			assert.Equal(t, tt.directivo, Allowed(directivo, tt.cap), "directivo_liga")
			assert.Equal(t, tt.dirigente, Allowed(dirigente, tt.cap), "dirigente_equipo")
		})
	}
}

func TestAllowed_NilUserDeniedEverything(t *testing.T) {
	for cap := range capabilityRoles {
		assert.False(t, Allowed(nil, cap), string(cap))
	}
}

func TestAllowed_MissingScopeDegradesToNone(t *testing.T) {
	t.Run("dirigente without team", func(t *testing.T) {
		u := userWithRole("dirigente_equipo") // no EquipoID
		assert.False(t, Allowed(u, CapCreateJugador))
		assert.False(t, Allowed(u, CapSolicitarTransferencia))
		assert.False(t, Allowed(u, CapAccessEquipos))
	})

	t.Run("dirigente with team", func(t *testing.T) {
		u := dirigenteUser(7)
		assert.True(t, Allowed(u, CapCreateJugador))
	})

	t.Run("directivo without league", func(t *testing.T) {
		u := userWithRole("directivo_liga") // no LigaID
		assert.False(t, Allowed(u, CapEditLiga))
		assert.False(t, Allowed(u, CapManageInscripcion))
	})

	t.Run("master needs no assignment", func(t *testing.T) {
		assert.True(t, Allowed(masterUser(), CapDeleteLiga))
	})
}

func TestAllowed_UnknownRoleGrantsNothing(t *testing.T) {
	u := userWithRole("arbitro")
	for cap := range capabilityRoles {
		assert.False(t, Allowed(u, cap), string(cap))
	}
}

type fixedUser struct {
	u *models.User
}

func (f *fixedUser) CurrentUser() *models.User { return f.u }

func TestPolicy_NamedPredicates(t *testing.T) {
	src := &fixedUser{}
	p := NewPolicy(src)

	assert.False(t, p.CanCreateLiga(), "logged out")

	src.u = masterUser()
	assert.True(t, p.IsMaster())
	assert.True(t, p.CanCreateLiga())
	assert.True(t, p.CanCancelarTransferencia())

	src.u = directivoUser(1)
	assert.True(t, p.IsDirectivo())
	assert.False(t, p.CanCreateLiga())
	assert.True(t, p.CanEditLiga())
	assert.True(t, p.CanAprobarTransferenciaDirectivo())
	assert.False(t, p.CanSolicitarTransferencia())

	src.u = dirigenteUser(7)
	assert.True(t, p.IsDirigente())
	assert.True(t, p.CanSolicitarTransferencia())
	assert.True(t, p.CanAprobarTransferenciaEquipoOrigen())
	assert.False(t, p.CanManageInscripcion())
}
