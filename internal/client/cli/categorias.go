package cli

import (
	"context"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/ligadeportiva/ligacli/internal/client/models"
)

func (a *App) runCategorias(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		rows, err := a.categorias.List(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tCAMPEONATO\tORDEN\tSUBEN\tBAJAN")
		for _, c := range rows {
			fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%d\t%d\n",
				c.ID, c.Nombre, c.CampeonatoID, c.Orden, c.EquiposAscienden, c.EquiposDescienden)
		}
		w.Flush()

	case "get":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		c, err := a.categorias.Get(ctx, id)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintf(a.out, "Categoria %d: %s (orden %d)\n", c.ID, c.Nombre, c.Orden)

	case "create":
		if !a.policy.CanCreateCategoria() {
			fmt.Fprintln(a.out, "You cannot create categories.")
			return
		}
		req, ok := a.promptCategoria()
		if !ok {
			return
		}
		c, err := a.categorias.Create(ctx, req)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintf(a.out, "Created categoria %d\n", c.ID)

	case "delete":
		if !a.policy.CanDeleteCategoria() {
			fmt.Fprintln(a.out, "You cannot delete categories.")
			return
		}
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		if err := a.categorias.Delete(ctx, id); err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintln(a.out, "Deleted.")

	default:
		fmt.Fprintln(a.out, "Usage: categorias [list|get <id>|create|delete <id>]")
	}
}

func (a *App) promptCategoria() (models.CreateCategoriaRequest, bool) {
	var req models.CreateCategoriaRequest
	var err error

	if req.Nombre, err = GetSimpleText(a.reader, "Nombre", a.out); err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return req, false
	}

	for _, p := range []struct {
		prompt string
		dst    *int
	}{
		{"Orden", &req.Orden},
		{"Equipos que ascienden", &req.EquiposAscienden},
		{"Equipos que descienden", &req.EquiposDescienden},
	} {
		text, err := GetSimpleText(a.reader, p.prompt, a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return req, false
		}
		if text == "" {
			continue
		}
		if *p.dst, err = strconv.Atoi(text); err != nil {
			fmt.Fprintf(a.out, "Invalid number %q\n", text)
			return req, false
		}
	}

	campText, err := GetSimpleText(a.reader, "Campeonato id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return req, false
	}
	if req.CampeonatoID, err = strconv.ParseInt(campText, 10, 64); err != nil {
		fmt.Fprintln(a.out, "Invalid campeonato id.")
		return req, false
	}

	return req, true
}
