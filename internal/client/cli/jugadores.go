package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

func (a *App) runJugadores(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		rows, err := a.jugadores.List(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tEQUIPO\tPOSICION\tACTIVO")
		for _, j := range rows {
			equipo := "-"
			if j.EquipoID != nil {
				equipo = fmt.Sprintf("%d", *j.EquipoID)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\n", j.ID, j.Nombre, equipo, j.Posicion, j.Activo)
		}
		w.Flush()

	case "get":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		j, err := a.jugadores.Get(ctx, id)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintf(a.out, "Jugador %d: %s", j.ID, j.Nombre)
		if j.Cedula != "" {
			fmt.Fprintf(a.out, " (cedula %s)", j.Cedula)
		}
		fmt.Fprintln(a.out)

	case "create":
		if !a.policy.CanCreateJugador() {
			fmt.Fprintln(a.out, "You cannot create players.")
			return
		}
		req, ok := a.promptJugador()
		if !ok {
			return
		}
		j, err := a.jugadores.Create(ctx, req)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintf(a.out, "Created jugador %d\n", j.ID)

	case "update":
		if !a.policy.CanEditJugador() {
			fmt.Fprintln(a.out, "You cannot edit players.")
			return
		}
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		req, ok := a.promptJugador()
		if !ok {
			return
		}
		if _, err := a.jugadores.Update(ctx, id, req); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintln(a.out, "Updated.")

	case "delete":
		if !a.policy.CanDeleteJugador() {
			fmt.Fprintln(a.out, "You cannot delete players.")
			return
		}
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		if err := a.jugadores.Delete(ctx, id); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintln(a.out, "Deleted.")

	default:
		fmt.Fprintln(a.out, "Usage: jugadores [list|get <id>|create|update <id>|delete <id>]")
	}
}

func (a *App) promptJugador() (models.CreateJugadorRequest, bool) {
	var req models.CreateJugadorRequest
	var err error

	if req.Nombre, err = GetSimpleText(a.reader, "Nombre", a.out); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return req, false
	}
	if req.Cedula, err = GetSimpleText(a.reader, "Cedula", a.out); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return req, false
	}
	if req.Posicion, err = GetSimpleText(a.reader, "Posicion", a.out); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return req, false
	}
	equipoText, err := GetSimpleText(a.reader, "Equipo id (empty for your own team)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return req, false
	}
	if req.EquipoID, err = optionalInt64(equipoText); err != nil {
		fmt.Fprintln(a.out, err)
		return req, false
	}
	return req, true
}
