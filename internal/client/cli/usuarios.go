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

// runUsuarios serves the user-management module: the scoped user roster,
// account maintenance, and the lookup catalogs the forms need.
func (a *App) runUsuarios(ctx context.Context, args []string) {
	sub := "list"
	if len(args) > 0 {
		sub, args = args[0], args[1:]
	}

	switch sub {
	case "list":
		users, err := a.usuarios.List(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		a.printUsers(users)

	case "get":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		u, err := a.usuarios.Get(ctx, id)
		if err != nil {
			a.printUsuarioError(err)
			return
		}
		fmt.Fprintf(a.out, "Usuario %d: %s <%s> rol=%s activo=%v\n", u.ID, u.Nombre, u.Email, u.Rol.Nombre, u.Activo)

	case "create":
		req, ok := a.promptUsuarioCreate(ctx)
		if !ok {
			return
		}
		u, err := a.usuarios.Create(ctx, req)
		if err != nil {
			a.printUsuarioError(err)
			return
		}
		fmt.Fprintf(a.out, "Created usuario %d\n", u.ID)

	case "update":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		req, ok := a.promptUsuarioUpdate(ctx)
		if !ok {
			return
		}
		if _, err := a.usuarios.Update(ctx, id, req); err != nil {
			a.printUsuarioError(err)
			return
		}
		fmt.Fprintln(a.out, "Updated.")

	case "activar", "desactivar":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		u, err := a.usuarios.SetActivo(ctx, id, sub == "activar")
		if err != nil {
			a.printUsuarioError(err)
			return
		}
		fmt.Fprintf(a.out, "Usuario %d activo=%v\n", u.ID, u.Activo)

	case "password":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		pw, err := GetPassword(a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		confirm, err := GetPassword(a.out)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		if pw != confirm {
			fmt.Fprintln(a.out, "Passwords do not match.")
			return
		}
		if err := a.usuarios.ChangePassword(ctx, id, pw); err != nil {
			a.printUsuarioError(err)
			return
		}
		fmt.Fprintln(a.out, "Password changed.")

	case "delete":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(a.out, err)
			return
		}
		if err := a.usuarios.Delete(ctx, id); err != nil {
			a.printUsuarioError(err)
			return
		}
		fmt.Fprintln(a.out, "Deleted.")

	case "roles":
		roles, err := a.usuarios.Roles(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNOMBRE\tDESCRIPCION")
		for _, r := range roles {
			fmt.Fprintf(w, "%d\t%s\t%s\n", r.ID, r.Nombre, r.Descripcion)
		}
		w.Flush()

	case "dirigentes":
		users, err := a.usuarios.DirigentesDisponibles(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		a.printUsers(users)

	case "directivos":
		users, err := a.usuarios.DirectivosDisponibles(ctx)
		if err != nil {
			fmt.Fprintln(a.out, "Error:", err)
			return
		}
		a.printUsers(users)

	default:
		fmt.Fprintln(a.out, "Usage: usuarios [list|get <id>|create|update <id>|activar <id>|desactivar <id>|password <id>|delete <id>|roles|dirigentes|directivos]")
	}
}

// promptUsuarioForm reads the fields shared by create and update. The role
// is picked from the catalog the service allows the current user to assign.
func (a *App) promptUsuarioForm(ctx context.Context) (nombre, email string, rolID int64, ligaID *int64, ok bool) {
	nombre, err := GetSimpleText(a.reader, "Nombre", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	email, err = GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	roles, err := a.usuarios.Roles(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load roles:", err)
		return
	}
	for _, r := range roles {
		fmt.Fprintf(a.out, "  %d  %s\n", r.ID, r.Nombre)
	}
	rolText, err := GetSimpleText(a.reader, "Role id", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	rolID, err = strconv.ParseInt(rolText, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid role id.")
		return
	}

	// The service pins a league director to their own league regardless of
	// what is entered here.
	ligaText, err := GetSimpleText(a.reader, "Liga id (blank for none)", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	ligaID, err = optionalInt64(ligaText)
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	return nombre, email, rolID, ligaID, true
}

func (a *App) promptUsuarioCreate(ctx context.Context) (models.CreateUsuarioRequest, bool) {
	nombre, email, rolID, ligaID, ok := a.promptUsuarioForm(ctx)
	if !ok {
		return models.CreateUsuarioRequest{}, false
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return models.CreateUsuarioRequest{}, false
	}
	return models.CreateUsuarioRequest{
		Nombre:   nombre,
		Email:    email,
		Password: password,
		RolID:    rolID,
		LigaID:   ligaID,
	}, true
}

func (a *App) promptUsuarioUpdate(ctx context.Context) (models.UpdateUsuarioRequest, bool) {
	nombre, email, rolID, ligaID, ok := a.promptUsuarioForm(ctx)
	if !ok {
		return models.UpdateUsuarioRequest{}, false
	}
	return models.UpdateUsuarioRequest{
		Nombre: nombre,
		Email:  email,
		RolID:  rolID,
		LigaID: ligaID,
	}, true
}

func (a *App) printUsuarioError(err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		fmt.Fprintln(a.out, err)
	case errors.Is(err, common.ErrNotFound):
		fmt.Fprintln(a.out, "No such user.")
	default:
		fmt.Fprintln(a.out, "Error:", err)
	}
}

func (a *App) printUsers(users []models.User) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNOMBRE\tEMAIL\tROL\tACTIVO")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%v\n", u.ID, u.Nombre, u.Email, u.Rol.Nombre, u.Activo)
	}
	w.Flush()
}
