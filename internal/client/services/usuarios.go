package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ligadeportiva/ligacli/internal/client/api"
	"github.com/ligadeportiva/ligacli/internal/client/models"
	"github.com/ligadeportiva/ligacli/internal/client/permissions"
	"github.com/ligadeportiva/ligacli/internal/common"
)

const minPasswordLen = 6

// UsuarioService is the user-management module: the user roster with its
// scoped view, account maintenance, plus the auxiliary lookups the forms
// need (role options and users still available for an assignment).
type UsuarioService interface {
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, req models.CreateUsuarioRequest) (*models.User, error)
	Update(ctx context.Context, id int64, req models.UpdateUsuarioRequest) (*models.User, error)
	SetActivo(ctx context.Context, id int64, activo bool) (*models.User, error)
	ChangePassword(ctx context.Context, id int64, newPassword string) error
	Delete(ctx context.Context, id int64) error

	Roles(ctx context.Context) ([]models.Role, error)
	DirigentesDisponibles(ctx context.Context) ([]models.User, error)
	DirectivosDisponibles(ctx context.Context) ([]models.User, error)
}

type usuarioService struct {
	api   api.UsuarioAPI
	auth  api.AuthAPI
	users permissions.UserSource
}

func NewUsuarioService(a api.UsuarioAPI, auth api.AuthAPI, users permissions.UserSource) UsuarioService {
	return &usuarioService{api: a, auth: auth, users: users}
}

// List narrows the roster by role: master sees everyone, a league director
// sees only the team managers of their own league, anyone else sees nobody.
func (s *usuarioService) List(ctx context.Context) ([]models.User, error) {
	rows, err := s.api.ListUsuarios(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list usuarios: %w", err)
	}

	u := s.users.CurrentUser()
	switch {
	case permissions.HasAnyRole(u, permissions.RoleMaster):
		return rows, nil
	case permissions.HasAnyRole(u, permissions.RoleDirectivoLiga) && u.LigaID != nil:
		out := make([]models.User, 0, len(rows))
		for _, row := range rows {
			if row.Rol.Nombre == string(permissions.RoleDirigenteEquipo) &&
				row.LigaID != nil && *row.LigaID == *u.LigaID {
				out = append(out, row)
			}
		}
		return out, nil
	default:
		return nil, nil
	}
}

func (s *usuarioService) Get(ctx context.Context, id int64) (*models.User, error) {
	return s.api.GetUsuario(ctx, id)
}

func (s *usuarioService) Create(ctx context.Context, req models.CreateUsuarioRequest) (*models.User, error) {
	if err := validateUsuario(req.Nombre, req.Email); err != nil {
		return nil, err
	}
	if len(req.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLen)
	}
	if req.RolID == 0 {
		return nil, fmt.Errorf("%w: rol is required", common.ErrValidation)
	}
	// A league director can only create accounts inside their own league.
	if u := s.users.CurrentUser(); permissions.HasAnyRole(u, permissions.RoleDirectivoLiga) && u.LigaID != nil {
		req.LigaID = u.LigaID
	}
	return s.api.CreateUsuario(ctx, req)
}

func (s *usuarioService) Update(ctx context.Context, id int64, req models.UpdateUsuarioRequest) (*models.User, error) {
	if err := validateUsuario(req.Nombre, req.Email); err != nil {
		return nil, err
	}
	if req.Password != "" && len(req.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLen)
	}
	if req.RolID == 0 {
		return nil, fmt.Errorf("%w: rol is required", common.ErrValidation)
	}
	if u := s.users.CurrentUser(); permissions.HasAnyRole(u, permissions.RoleDirectivoLiga) && u.LigaID != nil {
		req.LigaID = u.LigaID
	}
	return s.api.UpdateUsuario(ctx, id, req)
}

func (s *usuarioService) SetActivo(ctx context.Context, id int64, activo bool) (*models.User, error) {
	if activo {
		return s.api.ActivateUsuario(ctx, id)
	}
	return s.api.DeactivateUsuario(ctx, id)
}

func (s *usuarioService) ChangePassword(ctx context.Context, id int64, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", common.ErrValidation, minPasswordLen)
	}
	return s.api.ChangePassword(ctx, id, models.ChangePasswordRequest{NewPassword: newPassword})
}

func (s *usuarioService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteUsuario(ctx, id)
}

// Roles lists the role options for a user form. A league director can only
// hand out the team-manager role.
func (s *usuarioService) Roles(ctx context.Context) ([]models.Role, error) {
	roles, err := s.auth.GetRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	if permissions.HasAnyRole(s.users.CurrentUser(), permissions.RoleDirectivoLiga) {
		out := make([]models.Role, 0, 1)
		for _, r := range roles {
			if r.Nombre == string(permissions.RoleDirigenteEquipo) {
				out = append(out, r)
			}
		}
		return out, nil
	}
	return roles, nil
}

// DirigentesDisponibles asks for managers without a team. A league director
// gets the lookup narrowed to their own league.
func (s *usuarioService) DirigentesDisponibles(ctx context.Context) ([]models.User, error) {
	sc := scopeFor(s.users)
	out, err := s.auth.GetDirigentesDisponibles(ctx, sc.ligaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list available dirigentes: %w", err)
	}
	return out, nil
}

func (s *usuarioService) DirectivosDisponibles(ctx context.Context) ([]models.User, error) {
	out, err := s.auth.GetDirectivosDisponibles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list available directivos: %w", err)
	}
	return out, nil
}

func validateUsuario(nombre, email string) error {
	if len(nombre) < 3 {
		return fmt.Errorf("%w: nombre must be at least 3 characters", common.ErrValidation)
	}
	if !strings.Contains(email, "@") {
		return fmt.Errorf("%w: email is not valid", common.ErrValidation)
	}
	return nil
}
