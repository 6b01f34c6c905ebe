package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

func (a *App) runLigas(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		rows, err := a.ligas.List(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tACTIVO")
		for _, l := range rows {
			fmt.Fprintf(w, "%d\t%s\t%v\n", l.ID, l.Nombre, l.Activo)
		}
		w.Flush()

	case "get":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		l, err := a.ligas.Get(ctx, id)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintf(a.out, "Liga %d: %s\n%s\n", l.ID, l.Nombre, l.Descripcion)

	case "create":
		if !a.policy.CanCreateLiga() {
			fmt.Fprintln(a.out, "Only master can create leagues.")
			return
		}
		req, ok := a.promptLiga()
		if !ok {
			return
		}
		l, err := a.ligas.Create(ctx, req)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintf(a.out, "Created liga %d\n", l.ID)

	case "update":
		if !a.policy.CanEditLiga() {
			fmt.Fprintln(a.out, "You cannot edit leagues.")
			return
		}
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		req, ok := a.promptLiga()
		if !ok {
			return
		}
		if _, err := a.ligas.Update(ctx, id, req); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintln(a.out, "Updated.")

	case "delete":
		if !a.policy.CanDeleteLiga() {
			fmt.Fprintln(a.out, "Only master can delete leagues.")
			return
		}
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		if err := a.ligas.Delete(ctx, id); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintln(a.out, "Deleted.")

	default:
		fmt.Fprintln(a.out, "Usage: ligas [list|get <id>|create|update <id>|delete <id>]")
	}
}

func (a *App) promptLiga() (models.CreateLigaRequest, bool) {
	nombre, err := GetSimpleText(a.reader, "Nombre", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return models.CreateLigaRequest{}, false
	}
	descripcion, err := GetSimpleText(a.reader, "Descripcion", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return models.CreateLigaRequest{}, false
	}
	return models.CreateLigaRequest{Nombre: nombre, Descripcion: descripcion}, true
}
