package permissions

import "github.com/ligadeportiva/ligacli/internal/client/models"

// UserSource yields the currently authenticated user, or nil. The session
// satisfies this interface.
type UserSource interface {
	CurrentUser() *models.User
}

// Policy is a convenience façade over the capability table bound to a user
// source, so UI code can ask named questions without threading the user
// through every call site.
type Policy struct {
	users UserSource
}

func NewPolicy(users UserSource) *Policy {
	return &Policy{users: users}
}

// Can answers an arbitrary capability for the current user.
func (p *Policy) Can(c Capability) bool {
	return Allowed(p.users.CurrentUser(), c)
}

func (p *Policy) IsMaster() bool {
	return HasAnyRole(p.users.CurrentUser(), RoleMaster)
}

func (p *Policy) IsDirectivo() bool {
	return HasAnyRole(p.users.CurrentUser(), RoleDirectivoLiga)
}

func (p *Policy) IsDirigente() bool {
	return HasAnyRole(p.users.CurrentUser(), RoleDirigenteEquipo)
}

func (p *Policy) CanAccessLigas() bool { return p.Can(CapAccessLigas) }
func (p *Policy) CanCreateLiga() bool { return p.Can(CapCreateLiga) }
func (p *Policy) CanEditLiga() bool { return p.Can(CapEditLiga) }
func (p *Policy) CanDeleteLiga() bool { return p.Can(CapDeleteLiga) }
func (p *Policy) CanAccessEquipos() bool { return p.Can(CapAccessEquipos) }
func (p *Policy) CanCreateEquipo() bool { return p.Can(CapCreateEquipo) }
func (p *Policy) CanEditEquipo() bool { return p.Can(CapEditEquipo) }
func (p *Policy) CanDeleteEquipo() bool { return p.Can(CapDeleteEquipo) }
func (p *Policy) CanAccessJugadores() bool { return p.Can(CapAccessJugadores) }
func (p *Policy) CanCreateJugador() bool { return p.Can(CapCreateJugador) }
func (p *Policy) CanEditJugador() bool { return p.Can(CapEditJugador) }
func (p *Policy) CanDeleteJugador() bool { return p.Can(CapDeleteJugador) }
func (p *Policy) CanAccessUsuarios() bool { return p.Can(CapAccessUsuarios) }

func (p *Policy) CanAccessCampeonatos() bool { return p.Can(CapAccessCampeonatos) }
func (p *Policy) CanCreateCampeonato() bool { return p.Can(CapCreateCampeonato) }
func (p *Policy) CanEditCampeonato() bool { return p.Can(CapEditCampeonato) }
func (p *Policy) CanDeleteCampeonato() bool { return p.Can(CapDeleteCampeonato) }
func (p *Policy) CanAccessCategorias() bool { return p.Can(CapAccessCategorias) }
func (p *Policy) CanCreateCategoria() bool { return p.Can(CapCreateCategoria) }
func (p *Policy) CanEditCategoria() bool { return p.Can(CapEditCategoria) }
func (p *Policy) CanDeleteCategoria() bool { return p.Can(CapDeleteCategoria) }

func (p *Policy) CanAccessInscripciones() bool { return p.Can(CapAccessInscripciones) }
func (p *Policy) CanCreateInscripcion() bool { return p.Can(CapCreateInscripcion) }
func (p *Policy) CanManageInscripcion() bool { return p.Can(CapManageInscripcion) }
func (p *Policy) CanDeleteInscripcion() bool { return p.Can(CapDeleteInscripcion) }

func (p *Policy) CanAccessJugadorCampeonatos() bool { return p.Can(CapAccessJugadorCampeonatos) }
func (p *Policy) CanInscribirJugador() bool { return p.Can(CapInscribirJugador) }
func (p *Policy) CanEditJugadorCampeonato() bool { return p.Can(CapEditJugadorCampeonato) }
func (p *Policy) CanAprobarHabilitaciones() bool { return p.Can(CapAprobarHabilitaciones) }
func (p *Policy) CanDeleteJugadorCampeonato() bool { return p.Can(CapDeleteJugadorCampeonato) }

func (p *Policy) CanAccessTransferencias() bool { return p.Can(CapAccessTransferencias) }
func (p *Policy) CanSolicitarTransferencia() bool {
	return p.Can(CapSolicitarTransferencia)
}
func (p *Policy) CanAprobarTransferenciaEquipoOrigen() bool {
	return p.Can(CapAprobarTransferenciaOrigen)
}
func (p *Policy) CanAprobarTransferenciaDirectivo() bool {
	return p.Can(CapAprobarTransferenciaDirectivo)
}
func (p *Policy) CanCancelarTransferencia() bool {
	return p.Can(CapCancelarTransferencia)
}
