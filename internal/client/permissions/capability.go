package permissions

import "github.com/ligadeportiva/ligacli/internal/client/models"

// Capability names one yes/no authorization decision.
type Capability string

const (
	CapAccessLigas Capability = "access_ligas"
	CapCreateLiga  Capability = "create_liga"
	CapEditLiga    Capability = "edit_liga"
	CapDeleteLiga  Capability = "delete_liga"

	CapAccessEquipos Capability = "access_equipos"
	CapCreateEquipo  Capability = "create_equipo"
	CapEditEquipo    Capability = "edit_equipo"
	CapDeleteEquipo  Capability = "delete_equipo"

	CapAccessJugadores Capability = "access_jugadores"
	CapCreateJugador   Capability = "create_jugador"
	CapEditJugador     Capability = "edit_jugador"
	CapDeleteJugador   Capability = "delete_jugador"

	CapAccessUsuarios Capability = "access_usuarios"

	CapAccessCampeonatos Capability = "access_campeonatos"
	CapCreateCampeonato  Capability = "create_campeonato"
	CapEditCampeonato    Capability = "edit_campeonato"
	CapDeleteCampeonato  Capability = "delete_campeonato"

	CapAccessCategorias Capability = "access_categorias"
	CapCreateCategoria  Capability = "create_categoria"
	CapEditCategoria    Capability = "edit_categoria"
	CapDeleteCategoria  Capability = "delete_categoria"

	CapAccessInscripciones Capability = "access_inscripciones"
	CapCreateInscripcion   Capability = "create_inscripcion"
	CapManageInscripcion   Capability = "manage_inscripcion"
	CapDeleteInscripcion   Capability = "delete_inscripcion"

	CapAccessJugadorCampeonatos Capability = "access_jugador_campeonatos"
	CapInscribirJugador         Capability = "inscribir_jugador"
	CapEditJugadorCampeonato    Capability = "edit_jugador_campeonato"
	CapAprobarHabilitaciones    Capability = "aprobar_habilitaciones"
	CapDeleteJugadorCampeonato  Capability = "delete_jugador_campeonato"

	CapAccessTransferencias          Capability = "access_transferencias"
	CapSolicitarTransferencia        Capability = "solicitar_transferencia"
	CapAprobarTransferenciaOrigen    Capability = "aprobar_transferencia_origen"
	CapAprobarTransferenciaDirectivo Capability = "aprobar_transferencia_directivo"
	CapCancelarTransferencia         Capability = "cancelar_transferencia"
)

// capabilityRoles is the whole policy. Each capability maps to the fixed set
// of roles that grant it; there is no other logic.
var capabilityRoles = map[Capability][]Role{
	CapAccessLigas: {RoleMaster, RoleDirectivoLiga},
	CapCreateLiga:  {RoleMaster},
	CapEditLiga:    {RoleMaster, RoleDirectivoLiga},
	CapDeleteLiga:  {RoleMaster},

	CapAccessEquipos: {RoleMaster, RoleDirectivoLiga, RoleDirigenteEquipo},
	CapCreateEquipo:  {RoleMaster, RoleDirectivoLiga},
	CapEditEquipo:    {RoleMaster, RoleDirectivoLiga},
	CapDeleteEquipo:  {RoleMaster, RoleDirectivoLiga},

	CapAccessJugadores: {RoleMaster, RoleDirectivoLiga, RoleDirigenteEquipo},
	CapCreateJugador:   {RoleMaster, RoleDirectivoLiga, RoleDirigenteEquipo},
	CapEditJugador:     {RoleMaster, RoleDirectivoLiga, RoleDirigenteEquipo},
	CapDeleteJugador:   {RoleMaster, RoleDirectivoLiga, RoleDirigenteEquipo},

	CapAccessUsuarios: {RoleMaster, RoleDirectivoLiga},

	CapAccessCampeonatos: {RoleMaster, RoleDirectivoLiga, RoleDirigenteEquipo},
	CapCreateCampeonato:  {RoleMaster, RoleDirectivoLiga},
	CapEditCampeonato:    {RoleMaster, RoleDirectivoLiga},
	CapDeleteCampeonato:  {RoleMaster, RoleDirectivoLiga},

	CapAccessCategorias: {RoleMaster, RoleDirectivoLiga, RoleDirigenteEquipo},
	CapCreateCategoria:  {RoleMaster, RoleDirectivoLiga},
	CapEditCategoria:    {RoleMaster, RoleDirectivoLiga},
	CapDeleteCategoria:  {RoleMaster, RoleDirectivoLiga},

	CapAccessInscripciones: {RoleMaster, RoleDirectivoLiga, RoleDirigenteEquipo},
	CapCreateInscripcion:   {RoleMaster, RoleDirectivoLiga, RoleDirigenteEquipo},
	CapManageInscripcion:   {RoleMaster, RoleDirectivoLiga},
	CapDeleteInscripcion:   {RoleMaster, RoleDirectivoLiga},

	CapAccessJugadorCampeonatos: {RoleMaster, RoleDirectivoLiga, RoleDirigenteEquipo},
	CapInscribirJugador:         {RoleMaster, RoleDirectivoLiga, RoleDirigenteEquipo},
	CapEditJugadorCampeonato:    {RoleMaster, RoleDirectivoLiga, RoleDirigenteEquipo},
	CapAprobarHabilitaciones:    {RoleMaster, RoleDirectivoLiga},
	CapDeleteJugadorCampeonato:  {RoleMaster, RoleDirectivoLiga},

	CapAccessTransferencias:          {RoleMaster, RoleDirectivoLiga, RoleDirigenteEquipo},
	CapSolicitarTransferencia:        {RoleMaster, RoleDirigenteEquipo},
	CapAprobarTransferenciaOrigen:    {RoleMaster, RoleDirigenteEquipo},
	CapAprobarTransferenciaDirectivo: {RoleMaster, RoleDirectivoLiga},
	CapCancelarTransferencia:         {RoleMaster, RoleDirigenteEquipo},
}

// Allowed reports whether the user holds the capability: role membership in
// the table plus scope satisfaction. A nil user holds nothing.
func Allowed(u *models.User, c Capability) bool {
	if u == nil {
		return false
	}
	if !scopeSatisfied(u) {
		return false
	}
	return HasAnyRole(u, capabilityRoles[c]...)
}
