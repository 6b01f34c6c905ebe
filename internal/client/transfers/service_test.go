package transfers

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ligadeportiva/ligacli/internal/client/models"
	"github.com/ligadeportiva/ligacli/internal/common"
	"github.com/ligadeportiva/ligacli/internal/logging"
)

// fakeTransferAPI implements api.TransferenciaAPI with canned data and call
// recording.
type fakeTransferAPI struct {
	transfers map[int64]*models.Transferencia

	resolvedOrigen    []int64
	resolvedDirectivo []int64
	cancelled         []int64
	created           []models.CreateTransferenciaRequest
}

func newFakeTransferAPI(ts ...*models.Transferencia) *fakeTransferAPI {
	f := &fakeTransferAPI{transfers: map[int64]*models.Transferencia{}}
	for _, t := range ts {
		f.transfers[t.ID] = t
	}
	return f
}

func (f *fakeTransferAPI) ListTransferencias(ctx context.Context) ([]models.Transferencia, error) {
	out := make([]models.Transferencia, 0, len(f.transfers))
	for _, t := range f.transfers {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTransferAPI) GetTransferencia(ctx context.Context, id int64) (*models.Transferencia, error) {
	t, ok := f.transfers[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeTransferAPI) CreateTransferencia(ctx context.Context, req models.CreateTransferenciaRequest) (*models.Transferencia, error) {
	f.created = append(f.created, req)
	return &models.Transferencia{
		ID:                 100,
		JugadorID:          req.JugadorID,
		CampeonatoID:       req.CampeonatoID,
		EquipoDestinoID:    req.EquipoDestino,
		EstadoEquipoOrigen: models.AprobacionPendiente,
		EstadoDirectivo:    models.AprobacionPendiente,
		Activo:             true,
	}, nil
}

func (f *fakeTransferAPI) ResolverTransferenciaOrigen(ctx context.Context, id int64, req models.ResolverTransferenciaRequest) (*models.Transferencia, error) {
	f.resolvedOrigen = append(f.resolvedOrigen, id)
	t := *f.transfers[id]
	if req.Aprobar {
		t.EstadoEquipoOrigen = models.AprobacionAprobado
	} else {
		t.EstadoEquipoOrigen = models.AprobacionRechazado
	}
	return &t, nil
}

func (f *fakeTransferAPI) ResolverTransferenciaDirectivo(ctx context.Context, id int64, req models.ResolverTransferenciaRequest) (*models.Transferencia, error) {
	f.resolvedDirectivo = append(f.resolvedDirectivo, id)
	t := *f.transfers[id]
	if req.Aprobar {
		t.EstadoDirectivo = models.AprobacionAprobado
	} else {
		t.EstadoDirectivo = models.AprobacionRechazado
	}
	return &t, nil
}

func (f *fakeTransferAPI) CancelarTransferencia(ctx context.Context, id int64) error {
	f.cancelled = append(f.cancelled, id)
	return nil
}

// fixedUser satisfies permissions.UserSource.
type fixedUser struct{ u *models.User }

func (f fixedUser) CurrentUser() *models.User { return f.u }

func ptr(v int64) *int64 { return &v }

func dirigente(equipoID int64) *models.User {
	return &models.User{
		ID:       7,
		Rol:      models.Role{Nombre: "dirigente_equipo"},
		EquipoID: ptr(equipoID),
	}
}

func directivo(ligaID int64) *models.User {
	return &models.User{
		ID:     8,
		Rol:    models.Role{Nombre: "directivo_liga"},
		LigaID: ptr(ligaID),
	}
}

func pendingTransfer(id, origen, destino int64) *models.Transferencia {
	return &models.Transferencia{
		ID:                 id,
		JugadorID:          55,
		CampeonatoID:       3,
		EquipoOrigenID:     origen,
		EquipoDestinoID:    destino,
		EstadoEquipoOrigen: models.AprobacionPendiente,
		EstadoDirectivo:    models.AprobacionPendiente,
		Activo:             true,
	}
}

func newService(f *fakeTransferAPI, u *models.User) *Service {
	log := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	return NewService(f, fixedUser{u}, log)
}

func TestList_DirigenteSeesOnlyOwnTeam(t *testing.T) {
	f := newFakeTransferAPI(
		pendingTransfer(1, 10, 20),
		pendingTransfer(2, 20, 30),
		pendingTransfer(3, 40, 50),
	)
	s := newService(f, dirigente(20))

	got, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, tr := range got {
		assert.True(t, tr.EquipoOrigenID == 20 || tr.EquipoDestinoID == 20)
	}
}

func TestList_DirectivoSeesAll(t *testing.T) {
	f := newFakeTransferAPI(
		pendingTransfer(1, 10, 20),
		pendingTransfer(2, 40, 50),
	)
	s := newService(f, directivo(1))

	got, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestList_LoggedOut(t *testing.T) {
	s := newService(newFakeTransferAPI(), nil)
	_, err := s.List(context.Background())
	assert.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestSolicitar_UsesOwnTeamAsDestination(t *testing.T) {
	f := newFakeTransferAPI()
	s := newService(f, dirigente(20))

	tr, err := s.Solicitar(context.Background(), 55, 3, "mitad de temporada")
	require.NoError(t, err)
	assert.Equal(t, int64(20), tr.EquipoDestinoID)
	require.Len(t, f.created, 1)
	assert.Equal(t, int64(20), f.created[0].EquipoDestino)
	assert.Equal(t, models.TransferenciaEnProceso, tr.Estado())
}

func TestSolicitar_DirectivoDenied(t *testing.T) {
	f := newFakeTransferAPI()
	s := newService(f, directivo(1))

	_, err := s.Solicitar(context.Background(), 55, 3, "")
	assert.ErrorIs(t, err, common.ErrPermissionDenied)
	assert.Empty(t, f.created)
}

func TestSolicitar_NoTeamAssignment(t *testing.T) {
	u := dirigente(20)
	u.EquipoID = nil
	s := newService(newFakeTransferAPI(), u)

	_, err := s.Solicitar(context.Background(), 55, 3, "")
	// Without a team the role degrades to no capabilities at all.
	assert.ErrorIs(t, err, common.ErrPermissionDenied)
}

func TestAprobarOrigen_HappyPath(t *testing.T) {
	f := newFakeTransferAPI(pendingTransfer(1, 10, 20))
	s := newService(f, dirigente(10))

	tr, err := s.AprobarOrigen(context.Background(), 1, "ok")
	require.NoError(t, err)
	assert.Equal(t, models.AprobacionAprobado, tr.EstadoEquipoOrigen)
	assert.Equal(t, []int64{1}, f.resolvedOrigen)
}

func TestAprobarOrigen_WrongTeam(t *testing.T) {
	f := newFakeTransferAPI(pendingTransfer(1, 10, 20))
	s := newService(f, dirigente(20))

	_, err := s.AprobarOrigen(context.Background(), 1, "")
	assert.ErrorIs(t, err, common.ErrWrongTeam)
	assert.Empty(t, f.resolvedOrigen)
}

func TestRechazarOrigen_TrackAlreadyResolved(t *testing.T) {
	tr := pendingTransfer(1, 10, 20)
	tr.EstadoEquipoOrigen = models.AprobacionAprobado
	f := newFakeTransferAPI(tr)
	s := newService(f, dirigente(10))

	_, err := s.RechazarOrigen(context.Background(), 1, "")
	assert.ErrorIs(t, err, common.ErrTrackAlreadySet)
}

func TestAprobarDirectivo_HappyPath(t *testing.T) {
	f := newFakeTransferAPI(pendingTransfer(1, 10, 20))
	s := newService(f, directivo(1))

	tr, err := s.AprobarDirectivo(context.Background(), 1, "habilitado")
	require.NoError(t, err)
	assert.Equal(t, models.AprobacionAprobado, tr.EstadoDirectivo)
	assert.Equal(t, []int64{1}, f.resolvedDirectivo)
}

func TestAprobarDirectivo_OtherLeague(t *testing.T) {
	tr := pendingTransfer(1, 10, 20)
	tr.Campeonato = &models.Campeonato{ID: 3, LigaID: 9}
	f := newFakeTransferAPI(tr)
	s := newService(f, directivo(1))

	_, err := s.AprobarDirectivo(context.Background(), 1, "")
	assert.ErrorIs(t, err, common.ErrWrongLiga)
	assert.Empty(t, f.resolvedDirectivo)
}

func TestAprobarDirectivo_DirigenteDenied(t *testing.T) {
	f := newFakeTransferAPI(pendingTransfer(1, 10, 20))
	s := newService(f, dirigente(10))

	_, err := s.AprobarDirectivo(context.Background(), 1, "")
	assert.ErrorIs(t, err, common.ErrPermissionDenied)
}

func TestResolverDirectivo_CancelledTransfer(t *testing.T) {
	tr := pendingTransfer(1, 10, 20)
	tr.Activo = false
	f := newFakeTransferAPI(tr)
	s := newService(f, directivo(1))

	_, err := s.RechazarDirectivo(context.Background(), 1, "")
	assert.ErrorIs(t, err, common.ErrTrackAlreadySet)
}

func TestCancelar_DestinationTeamWhilePending(t *testing.T) {
	f := newFakeTransferAPI(pendingTransfer(1, 10, 20))
	s := newService(f, dirigente(20))

	require.NoError(t, s.Cancelar(context.Background(), 1))
	assert.Equal(t, []int64{1}, f.cancelled)
}

func TestCancelar_OriginTeamDenied(t *testing.T) {
	f := newFakeTransferAPI(pendingTransfer(1, 10, 20))
	s := newService(f, dirigente(10))

	err := s.Cancelar(context.Background(), 1)
	assert.ErrorIs(t, err, common.ErrWrongTeam)
	assert.Empty(t, f.cancelled)
}

func TestCancelar_AfterCounterpartyActed(t *testing.T) {
	tr := pendingTransfer(1, 10, 20)
	tr.EstadoDirectivo = models.AprobacionAprobado
	f := newFakeTransferAPI(tr)
	s := newService(f, dirigente(20))

	err := s.Cancelar(context.Background(), 1)
	assert.ErrorIs(t, err, common.ErrNotCancellable)
	assert.Empty(t, f.cancelled)
}

func TestMaster_ActsOnAnyTeam(t *testing.T) {
	master := &models.User{ID: 1, Rol: models.Role{Nombre: "master"}}

	f := newFakeTransferAPI(pendingTransfer(1, 10, 20), pendingTransfer(2, 30, 40))
	s := newService(f, master)

	_, err := s.AprobarOrigen(context.Background(), 1, "")
	require.NoError(t, err)

	require.NoError(t, s.Cancelar(context.Background(), 2))
	assert.Equal(t, []int64{2}, f.cancelled)
}

func TestGet_NotFoundPassesThrough(t *testing.T) {
	s := newService(newFakeTransferAPI(), directivo(1))
	_, err := s.Get(context.Background(), 99)
	assert.ErrorIs(t, err, common.ErrNotFound)
}
