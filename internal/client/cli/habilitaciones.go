package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

func (a *App) runHabilitaciones(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		rows, err := a.habilitaciones.List(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tJUGADOR\tEQUIPO\tCAMPEONATO\tESTADO")
		for _, h := range rows {
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\n",
				h.ID, h.JugadorID, h.EquipoID, h.CampeonatoID, h.Estado)
		}
		w.Flush()

	case "inscribir":
		if !a.policy.CanInscribirJugador() {
			fmt.Fprintln(a.out, "You cannot request player eligibility.")
			return
		}
		var req models.CreateJugadorCampeonatoRequest
		for _, p := range []struct {
			prompt   string
			dst      *int64
			optional bool
		}{
			{"Jugador id", &req.JugadorID, false},
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
		h, err := a.habilitaciones.Inscribir(ctx, req)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintf(a.out, "Created habilitacion %d (%s)\n", h.ID, h.Estado)

	case "aprobar", "rechazar":
		if !a.policy.CanAprobarHabilitaciones() {
			fmt.Fprintln(a.out, "You cannot approve eligibility requests.")
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
		var h *models.JugadorCampeonato
		if sub == "aprobar" {
			h, err = a.habilitaciones.Aprobar(ctx, id, obs)
		} else {
			h, err = a.habilitaciones.Rechazar(ctx, id, obs)
		}
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintf(a.out, "Habilitacion %d is now %s\n", h.ID, h.Estado)

	case "delete":
		if !a.policy.CanDeleteJugadorCampeonato() {
			fmt.Fprintln(a.out, "You cannot delete eligibility records.")
			return
		}
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		if err := a.habilitaciones.Delete(ctx, id); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintln(a.out, "Deleted.")

	default:
		fmt.Fprintln(a.out, "Usage: habilitaciones [list|inscribir|aprobar <id>|rechazar <id>|delete <id>]")
	}
}
