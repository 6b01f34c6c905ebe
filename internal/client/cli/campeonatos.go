package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

const dateLayout = "2006-01-02"

func (a *App) runCampeonatos(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		rows, err := a.campeonatos.List(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tLIGA\tESTADO\tINICIO")
		for _, c := range rows {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\n",
				c.ID, c.Nombre, c.LigaID, c.Estado, c.FechaInicio.Format(dateLayout))
		}
		w.Flush()

	case "get":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		c, err := a.campeonatos.Get(ctx, id)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintf(a.out, "Campeonato %d: %s [%s]\n", c.ID, c.Nombre, c.Estado)
		fmt.Fprintf(a.out, "%s to %s, inscripcion hasta %s\n",
			c.FechaInicio.Format(dateLayout), c.FechaFin.Format(dateLayout),
			c.FechaLimiteInscripcion.Format(dateLayout))

	case "create":
		if !a.policy.CanCreateCampeonato() {
			fmt.Fprintln(a.out, "You cannot create championships.")
			return
		}
		req, ok := a.promptCampeonato()
		if !ok {
			return
		}
		c, err := a.campeonatos.Create(ctx, req)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintf(a.out, "Created campeonato %d\n", c.ID)

	case "estado":
		if !a.policy.CanEditCampeonato() {
			fmt.Fprintln(a.out, "You cannot change championship state.")
			return
		}
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: campeonatos estado <id> <estado>")
			return
		}
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		c, err := a.campeonatos.CambiarEstado(ctx, id, models.EstadoCampeonato(args[1]))
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintf(a.out, "Campeonato %d is now %s\n", c.ID, c.Estado)

	case "delete":
		if !a.policy.CanDeleteCampeonato() {
			fmt.Fprintln(a.out, "You cannot delete championships.")
			return
		}
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		if err := a.campeonatos.Delete(ctx, id); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintln(a.out, "Deleted.")

	default:
		fmt.Fprintln(a.out, "Usage: campeonatos [list|get <id>|create|estado <id> <estado>|delete <id>]")
	}
}

func (a *App) promptCampeonato() (models.CreateCampeonatoRequest, bool) {
	var req models.CreateCampeonatoRequest
	var err error

	if req.Nombre, err = GetSimpleText(a.reader, "Nombre", a.out); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return req, false
	}

	ligaText, err := GetSimpleText(a.reader, "Liga id (empty for your own league)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return req, false
	}
	if ligaText != "" {
		if req.LigaID, err = strconv.ParseInt(ligaText, 10, 64); err != nil {
			fmt.Fprintln(a.out, "Invalid liga id.")
			return req, false
		}
	}

	for _, p := range []struct {
		prompt string
		dst    **time.Time
	}{
		{"Fecha inicio (YYYY-MM-DD)", &req.FechaInicio},
		{"Fecha fin (YYYY-MM-DD)", &req.FechaFin},
		{"Fecha limite inscripcion (YYYY-MM-DD)", &req.FechaLimiteInscripcion},
	} {
		text, err := GetSimpleText(a.reader, p.prompt, a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return req, false
		}
		if text == "" {
			continue
		}
		parsed, err := time.Parse(dateLayout, text)
		if err != nil {
			fmt.Fprintf(a.out, "Invalid date %q\n", text)
			return req, false
		}
		*p.dst = &parsed
	}

	return req, true
}
