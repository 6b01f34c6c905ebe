package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/ligadeportiva/ligacli/internal/client/models"
	"github.com/ligadeportiva/ligacli/internal/common"
)

func (a *App) runTransferencias(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		rows, err := a.transfers.List(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tJUGADOR\tORIGEN\tDESTINO\tORIGEN-TRACK\tDIRECTIVO-TRACK\tESTADO")
		for _, t := range rows {
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%s\t%s\t%s\n",
				t.ID, t.JugadorID, t.EquipoOrigenID, t.EquipoDestinoID,
				t.EstadoEquipoOrigen, t.EstadoDirectivo, t.Estado())
		}
		w.Flush()

	case "get":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		t, err := a.transfers.Get(ctx, id)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		fmt.Fprintf(a.out, "Transferencia %d: jugador %d, %d -> %d\n",
			t.ID, t.JugadorID, t.EquipoOrigenID, t.EquipoDestinoID)
		fmt.Fprintf(a.out, "origen=%s directivo=%s estado=%s\n",
			t.EstadoEquipoOrigen, t.EstadoDirectivo, t.Estado())
		if t.Observaciones != "" {
			fmt.Fprintln(a.out, "Observaciones:", t.Observaciones)
		}

	case "solicitar":
		var jugadorID, campeonatoID int64
		for _, p := range []struct {
			prompt string
			dst    *int64
		}{
			{"Jugador id", &jugadorID},
			{"Campeonato id", &campeonatoID},
		} {
			text, err := GetSimpleText(a.reader, p.prompt, a.out)
			if err != nil {
				fmt.Fprintln(a.out, "Error:", err)
				return
			}
			v, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				fmt.Fprintf(a.out, "Invalid number %q\n", text)
				return
			}
			*p.dst = v
		}
		obs, err := GetSimpleText(a.reader, "Observaciones", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		t, err := a.transfers.Solicitar(ctx, jugadorID, campeonatoID, obs)
		if err != nil {
			a.printTransferError(err)
			return
		}
		fmt.Fprintf(a.out, "Requested transferencia %d (%s)\n", t.ID, t.Estado())

	case "aprobar-origen", "rechazar-origen", "aprobar-directivo", "rechazar-directivo":
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

		t, err := a.resolveTransfer(ctx, sub, id, obs)
		if err != nil {
			a.printTransferError(err)
			return
		}
		fmt.Fprintf(a.out, "Transferencia %d is now %s\n", t.ID, t.Estado())

	case "cancelar":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		if err := a.transfers.Cancelar(ctx, id); err != nil {
			a.printTransferError(err)
			return
		}
		fmt.Fprintln(a.out, "Cancelled.")

	default:
		fmt.Fprintln(a.out, "Usage: transferencias [list|get <id>|solicitar|aprobar-origen <id>|"+
			"rechazar-origen <id>|aprobar-directivo <id>|rechazar-directivo <id>|cancelar <id>]")
	}
}

func (a *App) resolveTransfer(ctx context.Context, action string, id int64, obs string) (*models.Transferencia, error) {
	switch action {
	case "aprobar-origen":
		return a.transfers.AprobarOrigen(ctx, id, obs)
	case "rechazar-origen":
		return a.transfers.RechazarOrigen(ctx, id, obs)
	case "aprobar-directivo":
		return a.transfers.AprobarDirectivo(ctx, id, obs)
	default:
		return a.transfers.RechazarDirectivo(ctx, id, obs)
	}
}

func (a *App) printTransferError(err error) {
	switch {
	case errors.Is(err, common.ErrPermissionDenied):
		fmt.Fprintln(a.out, "You are not allowed to do that.")
	case errors.Is(err, common.ErrWrongTeam):
		fmt.Fprintln(a.out, "This transfer belongs to another team.")
	case errors.Is(err, common.ErrWrongLiga):
		fmt.Fprintln(a.out, "This transfer belongs to another league.")
	case errors.Is(err, common.ErrTrackAlreadySet):
		fmt.Fprintln(a.out, "That approval has already been resolved.")
	case errors.Is(err, common.ErrNotCancellable):
		fmt.Fprintln(a.out, "The transfer can no longer be cancelled.")
	case errors.Is(err, common.ErrNoTeamAssigned):
		fmt.Fprintln(a.out, "Your account has no team assigned.")
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintln(a.out, "No such transfer.")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}
