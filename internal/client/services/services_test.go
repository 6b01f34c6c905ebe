package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ligadeportiva/ligacli/internal/client/models"
	"github.com/ligadeportiva/ligacli/internal/common"
)

type fixedUsers struct{ u *models.User }

func (f fixedUsers) CurrentUser() *models.User { return f.u }

func ptr(v int64) *int64 { return &v }

func master() fixedUsers {
	return fixedUsers{&models.User{ID: 1, Rol: models.Role{Nombre: "master"}}}
}

func directivo(ligaID int64) fixedUsers {
	return fixedUsers{&models.User{ID: 2, Rol: models.Role{Nombre: "directivo_liga"}, LigaID: ptr(ligaID)}}
}

func dirigente(equipoID int64) fixedUsers {
	return fixedUsers{&models.User{ID: 3, Rol: models.Role{Nombre: "dirigente_equipo"}, EquipoID: ptr(equipoID)}}
}

// ---- ligas ----

type fakeLigaAPI struct {
	ligas []models.Liga
}

func (f *fakeLigaAPI) ListLigas(ctx context.Context) ([]models.Liga, error) { return f.ligas, nil }
func (f *fakeLigaAPI) GetLiga(ctx context.Context, id int64) (*models.Liga, error) {
	return nil, common.ErrNotFound
}
func (f *fakeLigaAPI) CreateLiga(ctx context.Context, req models.CreateLigaRequest) (*models.Liga, error) {
	return &models.Liga{ID: 9, Nombre: req.Nombre}, nil
}
func (f *fakeLigaAPI) UpdateLiga(ctx context.Context, id int64, req models.CreateLigaRequest) (*models.Liga, error) {
	return &models.Liga{ID: id, Nombre: req.Nombre}, nil
}
func (f *fakeLigaAPI) DeleteLiga(ctx context.Context, id int64) error { return nil }

func TestLigaList_DirectivoNarrowedToOwnLeague(t *testing.T) {
	f := &fakeLigaAPI{ligas: []models.Liga{{ID: 1}, {ID: 2}, {ID: 3}}}
	s := NewLigaService(f, directivo(2))

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestLigaList_MasterSeesAll(t *testing.T) {
	f := &fakeLigaAPI{ligas: []models.Liga{{ID: 1}, {ID: 2}}}
	s := NewLigaService(f, master())

	got, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestLigaCreate_RequiresNombre(t *testing.T) {
	s := NewLigaService(&fakeLigaAPI{}, master())
	_, err := s.Create(context.Background(), models.CreateLigaRequest{})
	assert.ErrorIs(t, err, common.ErrValidation)
}

// ---- equipos ----

type fakeEquipoAPI struct {
	equipos []models.Equipo
}

func (f *fakeEquipoAPI) ListEquipos(ctx context.Context) ([]models.Equipo, error) {
	return f.equipos, nil
}
func (f *fakeEquipoAPI) GetEquipo(ctx context.Context, id int64) (*models.Equipo, error) {
	return nil, common.ErrNotFound
}
func (f *fakeEquipoAPI) CreateEquipo(ctx context.Context, req models.CreateEquipoRequest) (*models.Equipo, error) {
	return &models.Equipo{ID: 9, Nombre: req.Nombre, LigaID: req.LigaID}, nil
}
func (f *fakeEquipoAPI) UpdateEquipo(ctx context.Context, id int64, req models.CreateEquipoRequest) (*models.Equipo, error) {
	return &models.Equipo{ID: id}, nil
}
func (f *fakeEquipoAPI) DeleteEquipo(ctx context.Context, id int64) error { return nil }

func TestEquipoList_Scoping(t *testing.T) {
	f := &fakeEquipoAPI{equipos: []models.Equipo{
		{ID: 10, LigaID: 1},
		{ID: 20, LigaID: 1},
		{ID: 30, LigaID: 2},
	}}

	t.Run("dirigente sees own team", func(t *testing.T) {
		got, err := NewEquipoService(f, dirigente(20)).List(context.Background())
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, int64(20), got[0].ID)
	})

	t.Run("directivo sees league teams", func(t *testing.T) {
		got, err := NewEquipoService(f, directivo(1)).List(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("master sees all", func(t *testing.T) {
		got, err := NewEquipoService(f, master()).List(context.Background())
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})
}

func TestEquipoCreate_Validation(t *testing.T) {
	s := NewEquipoService(&fakeEquipoAPI{}, master())

	_, err := s.Create(context.Background(), models.CreateEquipoRequest{LigaID: 1})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = s.Create(context.Background(), models.CreateEquipoRequest{Nombre: "Barcelona SC"})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = s.Create(context.Background(), models.CreateEquipoRequest{Nombre: "Barcelona SC", LigaID: 1})
	assert.NoError(t, err)
}

// ---- jugadores ----

type fakeJugadorAPI struct {
	jugadores []models.Jugador
	created   []models.CreateJugadorRequest
}

func (f *fakeJugadorAPI) ListJugadores(ctx context.Context) ([]models.Jugador, error) {
	return f.jugadores, nil
}
func (f *fakeJugadorAPI) GetJugador(ctx context.Context, id int64) (*models.Jugador, error) {
	return nil, common.ErrNotFound
}
func (f *fakeJugadorAPI) CreateJugador(ctx context.Context, req models.CreateJugadorRequest) (*models.Jugador, error) {
	f.created = append(f.created, req)
	return &models.Jugador{ID: 9, Nombre: req.Nombre, EquipoID: req.EquipoID}, nil
}
func (f *fakeJugadorAPI) UpdateJugador(ctx context.Context, id int64, req models.CreateJugadorRequest) (*models.Jugador, error) {
	return &models.Jugador{ID: id}, nil
}
func (f *fakeJugadorAPI) DeleteJugador(ctx context.Context, id int64) error { return nil }

func TestJugadorList_DirigenteOwnPlayers(t *testing.T) {
	f := &fakeJugadorAPI{jugadores: []models.Jugador{
		{ID: 1, EquipoID: ptr(20)},
		{ID: 2, EquipoID: ptr(30)},
		{ID: 3}, // free agent
	}}
	got, err := NewJugadorService(f, dirigente(20)).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

func TestJugadorCreate_DefaultsToOwnTeam(t *testing.T) {
	f := &fakeJugadorAPI{}
	s := NewJugadorService(f, dirigente(20))

	_, err := s.Create(context.Background(), models.CreateJugadorRequest{Nombre: "Luis"})
	require.NoError(t, err)
	require.Len(t, f.created, 1)
	require.NotNil(t, f.created[0].EquipoID)
	assert.Equal(t, int64(20), *f.created[0].EquipoID)
}

// ---- campeonatos ----

type fakeCampeonatoAPI struct {
	all      []models.Campeonato
	byLiga   map[int64][]models.Campeonato
	ligaCall []int64
}

func (f *fakeCampeonatoAPI) ListCampeonatos(ctx context.Context) ([]models.Campeonato, error) {
	return f.all, nil
}
func (f *fakeCampeonatoAPI) ListCampeonatosByLiga(ctx context.Context, ligaID int64) ([]models.Campeonato, error) {
	f.ligaCall = append(f.ligaCall, ligaID)
	return f.byLiga[ligaID], nil
}
func (f *fakeCampeonatoAPI) GetCampeonato(ctx context.Context, id int64) (*models.Campeonato, error) {
	return nil, common.ErrNotFound
}
func (f *fakeCampeonatoAPI) CreateCampeonato(ctx context.Context, req models.CreateCampeonatoRequest) (*models.Campeonato, error) {
	return &models.Campeonato{ID: 9, Nombre: req.Nombre, LigaID: req.LigaID}, nil
}
func (f *fakeCampeonatoAPI) UpdateCampeonato(ctx context.Context, id int64, req models.CreateCampeonatoRequest) (*models.Campeonato, error) {
	return &models.Campeonato{ID: id}, nil
}
func (f *fakeCampeonatoAPI) CambiarEstadoCampeonato(ctx context.Context, id int64, estado models.EstadoCampeonato) (*models.Campeonato, error) {
	return &models.Campeonato{ID: id, Estado: estado}, nil
}
func (f *fakeCampeonatoAPI) DeleteCampeonato(ctx context.Context, id int64) error { return nil }

func TestCampeonatoList_DirectivoUsesLeagueEndpoint(t *testing.T) {
	f := &fakeCampeonatoAPI{byLiga: map[int64][]models.Campeonato{
		1: {{ID: 5, LigaID: 1}},
	}}
	got, err := NewCampeonatoService(f, directivo(1)).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, []int64{1}, f.ligaCall)
}

func TestCampeonatoCreate_DateOrdering(t *testing.T) {
	s := NewCampeonatoService(&fakeCampeonatoAPI{}, master())
	inicio := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	fin := inicio.AddDate(0, -1, 0)

	_, err := s.Create(context.Background(), models.CreateCampeonatoRequest{
		Nombre:      "Apertura",
		LigaID:      1,
		FechaInicio: &inicio,
		FechaFin:    &fin,
	})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestCampeonatoCreate_DirectivoDefaultsOwnLeague(t *testing.T) {
	s := NewCampeonatoService(&fakeCampeonatoAPI{}, directivo(4))
	c, err := s.Create(context.Background(), models.CreateCampeonatoRequest{Nombre: "Clausura"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), c.LigaID)
}

func TestCampeonatoCambiarEstado_RejectsUnknown(t *testing.T) {
	s := NewCampeonatoService(&fakeCampeonatoAPI{}, master())
	_, err := s.CambiarEstado(context.Background(), 1, "suspendido")
	assert.ErrorIs(t, err, common.ErrValidation)
}

// ---- inscripciones ----

type fakeInscripcionAPI struct {
	rows    []models.Inscripcion
	created []models.CreateInscripcionRequest
}

func (f *fakeInscripcionAPI) ListInscripciones(ctx context.Context) ([]models.Inscripcion, error) {
	return f.rows, nil
}
func (f *fakeInscripcionAPI) ListInscripcionesByCampeonato(ctx context.Context, campeonatoID int64) ([]models.Inscripcion, error) {
	return f.rows, nil
}
func (f *fakeInscripcionAPI) ListInscripcionesByCategoria(ctx context.Context, categoriaID int64) ([]models.Inscripcion, error) {
	return f.rows, nil
}
func (f *fakeInscripcionAPI) GetInscripcion(ctx context.Context, id int64) (*models.Inscripcion, error) {
	return nil, common.ErrNotFound
}
func (f *fakeInscripcionAPI) CreateInscripcion(ctx context.Context, req models.CreateInscripcionRequest) (*models.Inscripcion, error) {
	f.created = append(f.created, req)
	return &models.Inscripcion{ID: 9, EquipoID: req.EquipoID}, nil
}
func (f *fakeInscripcionAPI) ConfirmarInscripcion(ctx context.Context, id int64, observaciones string) (*models.Inscripcion, error) {
	return &models.Inscripcion{ID: id, Estado: models.InscripcionConfirmada}, nil
}
func (f *fakeInscripcionAPI) RechazarInscripcion(ctx context.Context, id int64, observaciones string) (*models.Inscripcion, error) {
	return &models.Inscripcion{ID: id, Estado: models.InscripcionRechazada}, nil
}
func (f *fakeInscripcionAPI) DeleteInscripcion(ctx context.Context, id int64) error { return nil }

func TestInscripcionCreate_DefaultsAndValidates(t *testing.T) {
	f := &fakeInscripcionAPI{}
	s := NewInscripcionService(f, dirigente(20))

	_, err := s.Create(context.Background(), models.CreateInscripcionRequest{CampeonatoID: 3, CategoriaID: 2})
	require.NoError(t, err)
	require.Len(t, f.created, 1)
	assert.Equal(t, int64(20), f.created[0].EquipoID)

	_, err = s.Create(context.Background(), models.CreateInscripcionRequest{CampeonatoID: 3})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestInscripcionList_DirigenteOwnTeam(t *testing.T) {
	f := &fakeInscripcionAPI{rows: []models.Inscripcion{
		{ID: 1, EquipoID: 20},
		{ID: 2, EquipoID: 30},
	}}
	got, err := NewInscripcionService(f, dirigente(20)).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)
}

// ---- habilitaciones ----

type fakeHabilitacionAPI struct {
	rows     map[int64]*models.JugadorCampeonato
	resolved []int64
}

func (f *fakeHabilitacionAPI) ListJugadorCampeonatos(ctx context.Context) ([]models.JugadorCampeonato, error) {
	out := make([]models.JugadorCampeonato, 0, len(f.rows))
	for _, h := range f.rows {
		out = append(out, *h)
	}
	return out, nil
}
func (f *fakeHabilitacionAPI) ListJugadorCampeonatosByCampeonato(ctx context.Context, campeonatoID int64) ([]models.JugadorCampeonato, error) {
	return nil, nil
}
func (f *fakeHabilitacionAPI) GetJugadorCampeonato(ctx context.Context, id int64) (*models.JugadorCampeonato, error) {
	h, ok := f.rows[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *h
	return &cp, nil
}
func (f *fakeHabilitacionAPI) CreateJugadorCampeonato(ctx context.Context, req models.CreateJugadorCampeonatoRequest) (*models.JugadorCampeonato, error) {
	return &models.JugadorCampeonato{ID: 9, EquipoID: req.EquipoID, Estado: models.HabilitacionPendiente}, nil
}
func (f *fakeHabilitacionAPI) UpdateJugadorCampeonato(ctx context.Context, id int64, req models.UpdateJugadorCampeonatoRequest) (*models.JugadorCampeonato, error) {
	return &models.JugadorCampeonato{ID: id}, nil
}
func (f *fakeHabilitacionAPI) AprobarJugadorCampeonato(ctx context.Context, id int64, aprobar bool, observaciones string) (*models.JugadorCampeonato, error) {
	f.resolved = append(f.resolved, id)
	estado := models.HabilitacionHabilitado
	if !aprobar {
		estado = models.HabilitacionRechazado
	}
	return &models.JugadorCampeonato{ID: id, Estado: estado}, nil
}
func (f *fakeHabilitacionAPI) DeleteJugadorCampeonato(ctx context.Context, id int64) error {
	return nil
}

func TestHabilitacionAprobar_PendingOnly(t *testing.T) {
	f := &fakeHabilitacionAPI{rows: map[int64]*models.JugadorCampeonato{
		1: {ID: 1, Estado: models.HabilitacionPendiente},
		2: {ID: 2, Estado: models.HabilitacionHabilitado},
	}}
	s := NewHabilitacionService(f, directivo(1))

	h, err := s.Aprobar(context.Background(), 1, "ok")
	require.NoError(t, err)
	assert.Equal(t, models.HabilitacionHabilitado, h.Estado)

	_, err = s.Rechazar(context.Background(), 2, "")
	assert.ErrorIs(t, err, common.ErrTrackAlreadySet)
	assert.Equal(t, []int64{1}, f.resolved)
}

func TestHabilitacionInscribir_DefaultsOwnTeam(t *testing.T) {
	s := NewHabilitacionService(&fakeHabilitacionAPI{}, dirigente(20))

	h, err := s.Inscribir(context.Background(), models.CreateJugadorCampeonatoRequest{
		JugadorID:    5,
		CampeonatoID: 3,
		CategoriaID:  2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(20), h.EquipoID)
}

// ---- categorias ----

type fakeCategoriaAPI struct {
	rows []models.Categoria
}

func (f *fakeCategoriaAPI) ListCategorias(ctx context.Context) ([]models.Categoria, error) {
	return f.rows, nil
}
func (f *fakeCategoriaAPI) GetCategoria(ctx context.Context, id int64) (*models.Categoria, error) {
	return nil, common.ErrNotFound
}
func (f *fakeCategoriaAPI) CreateCategoria(ctx context.Context, req models.CreateCategoriaRequest) (*models.Categoria, error) {
	return &models.Categoria{ID: 9, Nombre: req.Nombre}, nil
}
func (f *fakeCategoriaAPI) UpdateCategoria(ctx context.Context, id int64, req models.CreateCategoriaRequest) (*models.Categoria, error) {
	return &models.Categoria{ID: id}, nil
}
func (f *fakeCategoriaAPI) DeleteCategoria(ctx context.Context, id int64) error { return nil }

func TestCategoriaList_DirectivoNarrowsThroughCampeonato(t *testing.T) {
	f := &fakeCategoriaAPI{rows: []models.Categoria{
		{ID: 1, Campeonato: &models.Campeonato{ID: 5, LigaID: 1}},
		{ID: 2, Campeonato: &models.Campeonato{ID: 6, LigaID: 2}},
		{ID: 3}, // no expansion, stays visible
	}}
	got, err := NewCategoriaService(f, directivo(1)).List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}

func TestCategoriaCreate_Validation(t *testing.T) {
	s := NewCategoriaService(&fakeCategoriaAPI{}, master())

	_, err := s.Create(context.Background(), models.CreateCategoriaRequest{Nombre: "Primera"})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = s.Create(context.Background(), models.CreateCategoriaRequest{
		Nombre: "Primera", CampeonatoID: 1, EquiposAscienden: -1,
	})
	assert.ErrorIs(t, err, common.ErrValidation)
}

// ---- usuarios ----

type fakeUsuarioAPI struct {
	usuarios    []models.User
	created     []models.CreateUsuarioRequest
	updated     []models.UpdateUsuarioRequest
	activated   []int64
	deactivated []int64
	passwords   []models.ChangePasswordRequest
	deleted     []int64
}

func (f *fakeUsuarioAPI) ListUsuarios(ctx context.Context) ([]models.User, error) {
	return f.usuarios, nil
}
func (f *fakeUsuarioAPI) GetUsuario(ctx context.Context, id int64) (*models.User, error) {
	return nil, common.ErrNotFound
}
func (f *fakeUsuarioAPI) CreateUsuario(ctx context.Context, req models.CreateUsuarioRequest) (*models.User, error) {
	f.created = append(f.created, req)
	return &models.User{ID: 99, Nombre: req.Nombre, Email: req.Email}, nil
}
func (f *fakeUsuarioAPI) UpdateUsuario(ctx context.Context, id int64, req models.UpdateUsuarioRequest) (*models.User, error) {
	f.updated = append(f.updated, req)
	return &models.User{ID: id, Nombre: req.Nombre}, nil
}
func (f *fakeUsuarioAPI) ActivateUsuario(ctx context.Context, id int64) (*models.User, error) {
	f.activated = append(f.activated, id)
	return &models.User{ID: id, Activo: true}, nil
}
func (f *fakeUsuarioAPI) DeactivateUsuario(ctx context.Context, id int64) (*models.User, error) {
	f.deactivated = append(f.deactivated, id)
	return &models.User{ID: id}, nil
}
func (f *fakeUsuarioAPI) ChangePassword(ctx context.Context, id int64, req models.ChangePasswordRequest) error {
	f.passwords = append(f.passwords, req)
	return nil
}
func (f *fakeUsuarioAPI) DeleteUsuario(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeRolesAPI struct {
	roles []models.Role
}

func (f *fakeRolesAPI) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	return nil, nil
}
func (f *fakeRolesAPI) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	return nil, nil
}
func (f *fakeRolesAPI) GetRoles(ctx context.Context) ([]models.Role, error) { return f.roles, nil }
func (f *fakeRolesAPI) GetDirigentesDisponibles(ctx context.Context, ligaID *int64) ([]models.User, error) {
	return nil, nil
}
func (f *fakeRolesAPI) GetDirectivosDisponibles(ctx context.Context) ([]models.User, error) {
	return nil, nil
}

func rosterFixture() []models.User {
	return []models.User{
		{ID: 1, Nombre: "Root", Rol: models.Role{Nombre: "master"}},
		{ID: 2, Nombre: "Diana", Rol: models.Role{Nombre: "directivo_liga"}, LigaID: ptr(1)},
		{ID: 3, Nombre: "Tito", Rol: models.Role{Nombre: "dirigente_equipo"}, LigaID: ptr(1)},
		{ID: 4, Nombre: "Vera", Rol: models.Role{Nombre: "dirigente_equipo"}, LigaID: ptr(2)},
	}
}

func TestUsuarioList_MasterSeesEveryone(t *testing.T) {
	f := &fakeUsuarioAPI{usuarios: rosterFixture()}
	s := NewUsuarioService(f, &fakeRolesAPI{}, master())

	got, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestUsuarioList_DirectivoSeesOwnLeagueManagers(t *testing.T) {
	f := &fakeUsuarioAPI{usuarios: rosterFixture()}
	s := NewUsuarioService(f, &fakeRolesAPI{}, directivo(1))

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
}

func TestUsuarioList_DirigenteSeesNobody(t *testing.T) {
	f := &fakeUsuarioAPI{usuarios: rosterFixture()}
	s := NewUsuarioService(f, &fakeRolesAPI{}, dirigente(20))

	got, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUsuarioCreate_Validation(t *testing.T) {
	s := NewUsuarioService(&fakeUsuarioAPI{}, &fakeRolesAPI{}, master())

	_, err := s.Create(context.Background(), models.CreateUsuarioRequest{
		Nombre: "Al", Email: "al@liga.ec", Password: "secreto", RolID: 1,
	})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = s.Create(context.Background(), models.CreateUsuarioRequest{
		Nombre: "Alvaro", Email: "alvaro@liga.ec", Password: "corto", RolID: 1,
	})
	assert.ErrorIs(t, err, common.ErrValidation)

	_, err = s.Create(context.Background(), models.CreateUsuarioRequest{
		Nombre: "Alvaro", Email: "alvaro@liga.ec", Password: "secreto",
	})
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestUsuarioCreate_DirectivoPinnedToOwnLeague(t *testing.T) {
	f := &fakeUsuarioAPI{}
	s := NewUsuarioService(f, &fakeRolesAPI{}, directivo(1))

	otherLiga := ptr(7)
	_, err := s.Create(context.Background(), models.CreateUsuarioRequest{
		Nombre: "Alvaro", Email: "alvaro@liga.ec", Password: "secreto", RolID: 3, LigaID: otherLiga,
	})
	require.NoError(t, err)
	require.Len(t, f.created, 1)
	require.NotNil(t, f.created[0].LigaID)
	assert.Equal(t, int64(1), *f.created[0].LigaID)
}

func TestUsuarioUpdate_EmptyPasswordAllowed(t *testing.T) {
	f := &fakeUsuarioAPI{}
	s := NewUsuarioService(f, &fakeRolesAPI{}, master())

	_, err := s.Update(context.Background(), 3, models.UpdateUsuarioRequest{
		Nombre: "Alvaro", Email: "alvaro@liga.ec", RolID: 3,
	})
	require.NoError(t, err)
	require.Len(t, f.updated, 1)
}

func TestUsuarioSetActivo_RoutesToEndpoint(t *testing.T) {
	f := &fakeUsuarioAPI{}
	s := NewUsuarioService(f, &fakeRolesAPI{}, master())

	_, err := s.SetActivo(context.Background(), 5, true)
	require.NoError(t, err)
	_, err = s.SetActivo(context.Background(), 6, false)
	require.NoError(t, err)

	assert.Equal(t, []int64{5}, f.activated)
	assert.Equal(t, []int64{6}, f.deactivated)
}

func TestUsuarioChangePassword(t *testing.T) {
	f := &fakeUsuarioAPI{}
	s := NewUsuarioService(f, &fakeRolesAPI{}, master())

	err := s.ChangePassword(context.Background(), 3, "corto")
	assert.ErrorIs(t, err, common.ErrValidation)
	assert.Empty(t, f.passwords)

	require.NoError(t, s.ChangePassword(context.Background(), 3, "secreto"))
	require.Len(t, f.passwords, 1)
	assert.Equal(t, "secreto", f.passwords[0].NewPassword)
}

func TestUsuarioRoles_DirectivoOnlySeesDirigente(t *testing.T) {
	auth := &fakeRolesAPI{roles: []models.Role{
		{ID: 1, Nombre: "master"},
		{ID: 2, Nombre: "directivo_liga"},
		{ID: 3, Nombre: "dirigente_equipo"},
	}}

	got, err := NewUsuarioService(&fakeUsuarioAPI{}, auth, directivo(1)).Roles(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "dirigente_equipo", got[0].Nombre)

	got, err = NewUsuarioService(&fakeUsuarioAPI{}, auth, master()).Roles(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
