package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

func (a *App) runEquipos(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		rows, err := a.equipos.List(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tLIGA\tACTIVO")
		for _, e := range rows {
			fmt.Fprintf(w, "%d\t%s\t%d\t%v\n", e.ID, e.Nombre, e.LigaID, e.Activo)
		}
		w.Flush()

	case "get":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		e, err := a.equipos.Get(ctx, id)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintf(a.out, "Equipo %d: %s (liga %d)\n", e.ID, e.Nombre, e.LigaID)
		if e.Representante != "" {
			fmt.Fprintf(a.out, "Representante: %s\n", e.Representante)
		}

	case "create":
		if !a.policy.CanCreateEquipo() {
			fmt.Fprintln(a.out, "You cannot create teams.")
			return
		}
		req, ok := a.promptEquipo()
		if !ok {
			return
		}
		e, err := a.equipos.Create(ctx, req)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintf(a.out, "Created equipo %d\n", e.ID)

	case "update":
		if !a.policy.CanEditEquipo() {
			fmt.Fprintln(a.out, "You cannot edit teams.")
			return
		}
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		req, ok := a.promptEquipo()
		if !ok {
			return
		}
		if _, err := a.equipos.Update(ctx, id, req); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintln(a.out, "Updated.")

	case "delete":
		if !a.policy.CanDeleteEquipo() {
			fmt.Fprintln(a.out, "You cannot delete teams.")
			return
		}
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		if err := a.equipos.Delete(ctx, id); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintln(a.out, "Deleted.")

	default:
		fmt.Fprintln(a.out, "Usage: equipos [list|get <id>|create|update <id>|delete <id>]")
	}
}

func (a *App) promptEquipo() (models.CreateEquipoRequest, bool) {
	var req models.CreateEquipoRequest
	var err error

	if req.Nombre, err = GetSimpleText(a.reader, "Nombre", a.out); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return req, false
	}
	ligaText, err := GetSimpleText(a.reader, "Liga id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return req, false
	}
	if req.LigaID, err = strconv.ParseInt(ligaText, 10, 64); err != nil {
		fmt.Fprintln(a.out, "Invalid liga id.")
		return req, false
	}
	dirigenteText, err := GetSimpleText(a.reader, "Dirigente id (empty for none)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return req, false
	}
	if dirigenteText != "" {
		if req.DirigenteID, err = strconv.ParseInt(dirigenteText, 10, 64); err != nil {
			fmt.Fprintln(a.out, "Invalid dirigente id.")
			return req, false
		}
	}
	return req, true
}
