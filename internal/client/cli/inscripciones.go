package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

func (a *App) runInscripciones(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		rows, err := a.inscripciones.List(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEQUIPO\tCAMPEONATO\tCATEGORIA\tESTADO")
		for _, i := range rows {
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\n",
				i.ID, i.EquipoID, i.CampeonatoID, i.CategoriaID, i.Estado)
		}
		w.Flush()

	case "create":
		if !a.policy.CanCreateInscripcion() {
			fmt.Fprintln(a.out, "You cannot register teams.")
			return
		}
		var req models.CreateInscripcionRequest
		for _, p := range []struct {
			prompt   string
			dst      *int64
			optional bool
		}{
			{"Campeonato id", &req.CampeonatoID, false},
			{"Categoria id", &req.CategoriaID, false},
			{"Equipo id (empty for your own team)", &req.EquipoID, true},
		} {
			text, err := GetSimpleText(a.reader, p.prompt, a.out)
			if err != nil {
				fmt.Fprintln(a.out, "Error:", err)
				return
			}
			if text == "" && p.optional {
				continue
			}
			v, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				fmt.Fprintf(a.out, "Invalid number %q\n", text)
				return
			}
			*p.dst = v
		}
		i, err := a.inscripciones.Create(ctx, req)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintf(a.out, "Created inscripcion %d (%s)\n", i.ID, i.Estado)

	case "confirmar", "rechazar":
		if !a.policy.CanManageInscripcion() {
			fmt.Fprintln(a.out, "You cannot confirm or reject registrations.")
			return
		}
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		obs, err := GetSimpleText(a.reader, "Observaciones", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		var i *models.Inscripcion
		if sub == "confirmar" {
			i, err = a.inscripciones.Confirmar(ctx, id, obs)
		} else {
			i, err = a.inscripciones.Rechazar(ctx, id, obs)
		}
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintf(a.out, "Inscripcion %d is now %s\n", i.ID, i.Estado)

	case "delete":
		if !a.policy.CanDeleteInscripcion() {
			fmt.Fprintln(a.out, "You cannot delete registrations.")
			return
		}
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		if err := a.inscripciones.Delete(ctx, id); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintln(a.out, "Deleted.")

	default:
		fmt.Fprintln(a.out, "Usage: inscripciones [list|create|confirmar <id>|rechazar <id>|delete <id>]")
	}
}
