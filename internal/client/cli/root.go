package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// getStatus reads the prompt status maintained by the session subscription.
func (a *App) getStatus() string {
	return a.status
}

// Root runs the command loop until EOF or an explicit exit.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Liga Deportiva CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "liga %s> ", a.getStatus())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		if !a.dispatch(ctx, parts[0], parts[1:]) {
			return
		}
	}
}

// dispatch runs one command. It returns false when the loop should stop.
func (a *App) dispatch(ctx context.Context, cmd string, args []string) bool {
	switch cmd {
	case "help":
		a.help()

	case "login":
		a.login(ctx)
	case "register":
		a.register(ctx)
	case "logout":
		a.logout(ctx)
	case "whoami":
		a.whoami()

	case "ligas":
		if a.enter("ligas") {
			a.runLigas(ctx, args)
		}
	case "equipos":
		if a.enter("equipos") {
			a.runEquipos(ctx, args)
		}
	case "jugadores":
		if a.enter("jugadores") {
			a.runJugadores(ctx, args)
		}
	case "usuarios":
		if a.enter("usuarios") {
			a.runUsuarios(ctx, args)
		}
	case "campeonatos":
		if a.enter("campeonatos") {
			a.runCampeonatos(ctx, args)
		}
	case "categorias":
		if a.enter("categorias") {
			a.runCategorias(ctx, args)
		}
	case "inscripciones":
		if a.enter("inscripciones") {
			a.runInscripciones(ctx, args)
		}
	case "habilitaciones":
		if a.enter("habilitaciones") {
			a.runHabilitaciones(ctx, args)
		}
	case "transferencias":
		if a.enter("transferencias") {
			a.runTransferencias(ctx, args)
		}

	case "exit", "quit":
		fmt.Fprintln(a.out, "Bye!")
		return false

	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
	return true
}

func (a *App) help() {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: login, register, help, exit")
		return
	}

	modules := []string{"equipos", "jugadores", "campeonatos", "categorias",
		"inscripciones", "habilitaciones", "transferencias"}
	if a.policy.CanAccessLigas() {
		modules = append([]string{"ligas"}, modules...)
	}
	if a.policy.CanAccessUsuarios() {
		modules = append(modules, "usuarios")
	}

	fmt.Fprintln(a.out, "Modules:", strings.Join(modules, ", "))
	fmt.Fprintln(a.out, "Each module accepts a subcommand, e.g. 'equipos list' or 'equipos get 3'.")
	fmt.Fprintln(a.out, "Session: whoami, logout, exit")
}
