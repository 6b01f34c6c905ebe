package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/ligadeportiva/ligacli/internal/client/api"
	"github.com/ligadeportiva/ligacli/internal/client/models"
)

func (a *App) login(ctx context.Context) {
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}

	u, err := a.session.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, api.ErrInvalidCredentials) {
			fmt.Fprintln(a.out, "Invalid email or password.")
			return
		}
		fmt.Fprintln(a.out, "Login failed:", err)
		return
	}
	fmt.Fprintf(a.out, "Welcome, %s (%s)\n", u.Nombre, u.Rol.Nombre)
	a.navigate("/dashboard")
}

func (a *App) register(ctx context.Context) {
	nombre, err := GetSimpleText(a.reader, "Full name", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Email", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "Error:", err)
		return
	}
	password, err := GetPassword(a.out)
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
	rolID, err := strconv.ParseInt(rolText, 10, 64)
	if err != nil {
		fmt.Fprintln(a.out, "Invalid role id.")
		return
	}

	u, err := a.session.Register(ctx, models.RegisterRequest{
		Nombre:   nombre,
		Email:    email,
		Password: password,
		RolID:    rolID,
	})
	if err != nil {
		fmt.Fprintln(a.out, "Registration failed:", err)
		return
	}
	fmt.Fprintf(a.out, "Account created for %s\n", u.Email)
	a.navigate("/dashboard")
}

func (a *App) logout(ctx context.Context) {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	if err := a.session.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return
	}
	fmt.Fprintln(a.out, "Logged out.")
}

func (a *App) whoami() {
	u := a.session.CurrentUser()
	if u == nil {
		fmt.Fprintln(a.out, "Not logged in.")
		return
	}
	fmt.Fprintf(a.out, "%s <%s> role=%s", u.Nombre, u.Email, u.Rol.Nombre)
	if u.LigaID != nil {
		fmt.Fprintf(a.out, " liga=%d", *u.LigaID)
	}
	if u.EquipoID != nil {
		fmt.Fprintf(a.out, " equipo=%d", *u.EquipoID)
	}
	fmt.Fprintln(a.out)

	if exp, ok := a.session.TokenExpiresAt(); ok {
		fmt.Fprintf(a.out, "Session expires %s\n", exp.Format("2006-01-02 15:04"))
	}
}
