// Package models defines the domain entities of the league platform as the
// REST API exposes them, plus the request/response DTOs the client sends.
package models

import "time"

// Role is a role row as stored on the server. Only a closed subset of names
// carries special-cased behavior; see the permissions package.
type Role struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}

// User is the authenticated platform user. LigaID is set for league
// directors, EquipoID for team managers; a missing assignment degrades the
// role's capabilities to none.
type User struct {
	ID       int64     `json:"id"`
	Nombre   string    `json:"nombre"`
	Email    string    `json:"email"`
	Rol      Role      `json:"rol"`
	LigaID   *int64    `json:"ligaId,omitempty"`
	EquipoID *int64    `json:"equipoId,omitempty"`
	Activo   bool      `json:"activo"`
	CreadoEn time.Time `json:"creadoEn"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the payload for POST /auth/register.
type RegisterRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RolID    int64  `json:"rolId"`
	LigaID   *int64 `json:"ligaId,omitempty"`
	EquipoID *int64 `json:"equipoId,omitempty"`
}

// AuthResponse is returned by both login and register.
type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// CreateUsuarioRequest is the payload to create a user from the
// user-management module. LigaID only applies to league-scoped roles and may
// be assigned later.
type CreateUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RolID    int64  `json:"rolId"`
	LigaID   *int64 `json:"ligaId,omitempty"`
}

// UpdateUsuarioRequest edits a user. An empty Password keeps the current one.
type UpdateUsuarioRequest struct {
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	RolID    int64  `json:"rolId"`
	LigaID   *int64 `json:"ligaId,omitempty"`
}

// ChangePasswordRequest replaces a user's password.
type ChangePasswordRequest struct {
	NewPassword string `json:"newPassword"`
}
