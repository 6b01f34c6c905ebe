package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/ligadeportiva/ligacli/internal/client/api"
	"github.com/ligadeportiva/ligacli/internal/client/config"
	"github.com/ligadeportiva/ligacli/internal/client/guard"
	"github.com/ligadeportiva/ligacli/internal/client/models"
	"github.com/ligadeportiva/ligacli/internal/client/permissions"
	"github.com/ligadeportiva/ligacli/internal/client/repositories"
	"github.com/ligadeportiva/ligacli/internal/client/services"
	"github.com/ligadeportiva/ligacli/internal/client/session"
	"github.com/ligadeportiva/ligacli/internal/client/transfers"
	"github.com/ligadeportiva/ligacli/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the session, the guard and the per-resource services behind a
// REPL. One instance lives for the whole process.
type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Session
	guard   *guard.Guard
	policy  *permissions.Policy

	ligas          services.LigaService
	equipos        services.EquipoService
	jugadores      services.JugadorService
	usuarios       services.UsuarioService
	campeonatos    services.CampeonatoService
	categorias     services.CategoriaService
	inscripciones  services.InscripcionService
	habilitaciones services.HabilitacionService
	transfers      *transfers.Service

	reader *bufio.Reader
	out    io.Writer
	route  string
	status string
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := repositories.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	app := &App{
		config: cfg,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}

	// The transport needs the session for tokens and the session needs the
	// client for auth calls; both seams are interfaces so the wiring is done
	// here after construction.
	transport := &api.AuthTransport{}
	client := api.NewHTTPClient(cfg.APIBaseURL, transport, cfg.RequestTimeout)

	sess := session.New(client, db, log, app.navigate)
	transport.Tokens = sess
	transport.OnUnauthorized = func() { sess.ForceLogout(context.Background()) }

	app.session = sess
	app.watchSession()
	app.guard = guard.New(sess)
	app.policy = permissions.NewPolicy(sess)
	app.ligas = services.NewLigaService(client, sess)
	app.equipos = services.NewEquipoService(client, sess)
	app.jugadores = services.NewJugadorService(client, sess)
	app.usuarios = services.NewUsuarioService(client, client, sess)
	app.campeonatos = services.NewCampeonatoService(client, sess)
	app.categorias = services.NewCategoriaService(client, sess)
	app.inscripciones = services.NewInscripcionService(client, sess)
	app.habilitaciones = services.NewHabilitacionService(client, sess)
	app.transfers = transfers.NewService(client, sess, log)

	if err := sess.Restore(ctx); err != nil {
		log.Warn(ctx, "could not restore session", "error", err)
	}

	return app, nil
}

// watchSession keeps the prompt status in step with the session. The
// subscription delivers the current user immediately and again on every
// login, logout and forced logout.
func (a *App) watchSession() {
	a.session.Subscribe(func(u *models.User) {
		if u == nil {
			a.status = ""
			return
		}
		a.status = fmt.Sprintf("(%s %s)", u.Email, u.Rol.Nombre)
	})
}

// navigate records the current screen. The session calls this on logout and
// on forced logout; the guard's redirects go through it too.
func (a *App) navigate(route string) {
	if a.route == route {
		return
	}
	a.route = route
	fmt.Fprintf(a.out, "-> %s\n", route)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// enter runs the guard for a named screen and reports whether the command
// may proceed. Denials print the reason and navigate to the redirect target.
func (a *App) enter(name string) bool {
	route, ok := guard.Routes[name]
	if !ok {
		return true
	}

	d := a.guard.CanActivate(route)
	if d.Allowed {
		a.route = route.Path
		return true
	}

	switch d.Redirect {
	case guard.LoginRoute:
		fmt.Fprintln(a.out, "Please log in first.")
	default:
		fmt.Fprintln(a.out, "You do not have access to this module.")
	}
	a.navigate(d.Redirect)
	return false
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
