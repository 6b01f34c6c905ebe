// Package api implements the REST client for the league platform. The
// Client interface is the single seam between the rest of the application
// and the wire; services hold the sub-interface they need.
package api

import (
	"context"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

// AuthAPI covers the authentication endpoint and its auxiliary lookups.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	GetRoles(ctx context.Context) ([]models.Role, error)
	GetDirigentesDisponibles(ctx context.Context, ligaID *int64) ([]models.User, error)
	GetDirectivosDisponibles(ctx context.Context) ([]models.User, error)
}

// UsuarioAPI covers the user-management module. Activation and deactivation
// are separate endpoints, mirroring the soft-delete toggle on the record.
type UsuarioAPI interface {
	ListUsuarios(ctx context.Context) ([]models.User, error)
	GetUsuario(ctx context.Context, id int64) (*models.User, error)
	CreateUsuario(ctx context.Context, req models.CreateUsuarioRequest) (*models.User, error)
	UpdateUsuario(ctx context.Context, id int64, req models.UpdateUsuarioRequest) (*models.User, error)
	ActivateUsuario(ctx context.Context, id int64) (*models.User, error)
	DeactivateUsuario(ctx context.Context, id int64) (*models.User, error)
	ChangePassword(ctx context.Context, id int64, req models.ChangePasswordRequest) error
	DeleteUsuario(ctx context.Context, id int64) error
}

type LigaAPI interface {
	ListLigas(ctx context.Context) ([]models.Liga, error)
	GetLiga(ctx context.Context, id int64) (*models.Liga, error)
	CreateLiga(ctx context.Context, req models.CreateLigaRequest) (*models.Liga, error)
	UpdateLiga(ctx context.Context, id int64, req models.CreateLigaRequest) (*models.Liga, error)
	DeleteLiga(ctx context.Context, id int64) error
}

type EquipoAPI interface {
	ListEquipos(ctx context.Context) ([]models.Equipo, error)
	GetEquipo(ctx context.Context, id int64) (*models.Equipo, error)
	CreateEquipo(ctx context.Context, req models.CreateEquipoRequest) (*models.Equipo, error)
	UpdateEquipo(ctx context.Context, id int64, req models.CreateEquipoRequest) (*models.Equipo, error)
	DeleteEquipo(ctx context.Context, id int64) error
}

type JugadorAPI interface {
	ListJugadores(ctx context.Context) ([]models.Jugador, error)
	GetJugador(ctx context.Context, id int64) (*models.Jugador, error)
	CreateJugador(ctx context.Context, req models.CreateJugadorRequest) (*models.Jugador, error)
	UpdateJugador(ctx context.Context, id int64, req models.CreateJugadorRequest) (*models.Jugador, error)
	DeleteJugador(ctx context.Context, id int64) error
}

type CampeonatoAPI interface {
	ListCampeonatos(ctx context.Context) ([]models.Campeonato, error)
	ListCampeonatosByLiga(ctx context.Context, ligaID int64) ([]models.Campeonato, error)
	GetCampeonato(ctx context.Context, id int64) (*models.Campeonato, error)
	CreateCampeonato(ctx context.Context, req models.CreateCampeonatoRequest) (*models.Campeonato, error)
	UpdateCampeonato(ctx context.Context, id int64, req models.CreateCampeonatoRequest) (*models.Campeonato, error)
	CambiarEstadoCampeonato(ctx context.Context, id int64, estado models.EstadoCampeonato) (*models.Campeonato, error)
	DeleteCampeonato(ctx context.Context, id int64) error
}

type CategoriaAPI interface {
	ListCategorias(ctx context.Context) ([]models.Categoria, error)
	GetCategoria(ctx context.Context, id int64) (*models.Categoria, error)
	CreateCategoria(ctx context.Context, req models.CreateCategoriaRequest) (*models.Categoria, error)
	UpdateCategoria(ctx context.Context, id int64, req models.CreateCategoriaRequest) (*models.Categoria, error)
	DeleteCategoria(ctx context.Context, id int64) error
}

type InscripcionAPI interface {
	ListInscripciones(ctx context.Context) ([]models.Inscripcion, error)
	ListInscripcionesByCampeonato(ctx context.Context, campeonatoID int64) ([]models.Inscripcion, error)
	ListInscripcionesByCategoria(ctx context.Context, categoriaID int64) ([]models.Inscripcion, error)
	GetInscripcion(ctx context.Context, id int64) (*models.Inscripcion, error)
	CreateInscripcion(ctx context.Context, req models.CreateInscripcionRequest) (*models.Inscripcion, error)
	ConfirmarInscripcion(ctx context.Context, id int64, observaciones string) (*models.Inscripcion, error)
	RechazarInscripcion(ctx context.Context, id int64, observaciones string) (*models.Inscripcion, error)
	DeleteInscripcion(ctx context.Context, id int64) error
}

type JugadorCampeonatoAPI interface {
	ListJugadorCampeonatos(ctx context.Context) ([]models.JugadorCampeonato, error)
	ListJugadorCampeonatosByCampeonato(ctx context.Context, campeonatoID int64) ([]models.JugadorCampeonato, error)
	GetJugadorCampeonato(ctx context.Context, id int64) (*models.JugadorCampeonato, error)
	CreateJugadorCampeonato(ctx context.Context, req models.CreateJugadorCampeonatoRequest) (*models.JugadorCampeonato, error)
	UpdateJugadorCampeonato(ctx context.Context, id int64, req models.UpdateJugadorCampeonatoRequest) (*models.JugadorCampeonato, error)
	AprobarJugadorCampeonato(ctx context.Context, id int64, aprobar bool, observaciones string) (*models.JugadorCampeonato, error)
	DeleteJugadorCampeonato(ctx context.Context, id int64) error
}

type TransferenciaAPI interface {
	ListTransferencias(ctx context.Context) ([]models.Transferencia, error)
	GetTransferencia(ctx context.Context, id int64) (*models.Transferencia, error)
	CreateTransferencia(ctx context.Context, req models.CreateTransferenciaRequest) (*models.Transferencia, error)
	ResolverTransferenciaOrigen(ctx context.Context, id int64, req models.ResolverTransferenciaRequest) (*models.Transferencia, error)
	ResolverTransferenciaDirectivo(ctx context.Context, id int64, req models.ResolverTransferenciaRequest) (*models.Transferencia, error)
	CancelarTransferencia(ctx context.Context, id int64) error
}

// Client is the full API surface, one sub-interface per resource.
type Client interface {
	AuthAPI
	UsuarioAPI
	LigaAPI
	EquipoAPI
	JugadorAPI
	CampeonatoAPI
	CategoriaAPI
	InscripcionAPI
	JugadorCampeonatoAPI
	TransferenciaAPI
}
