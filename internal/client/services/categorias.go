package services

import (
	"context"
	"fmt"

	"github.com/ligadeportiva/ligacli/internal/client/api"
	"github.com/ligadeportiva/ligacli/internal/client/models"
	"github.com/ligadeportiva/ligacli/internal/client/permissions"
	"github.com/ligadeportiva/ligacli/internal/common"
)

type CategoriaService interface {
	List(ctx context.Context) ([]models.Categoria, error)
	Get(ctx context.Context, id int64) (*models.Categoria, error)
	Create(ctx context.Context, req models.CreateCategoriaRequest) (*models.Categoria, error)
	Update(ctx context.Context, id int64, req models.CreateCategoriaRequest) (*models.Categoria, error)
	Delete(ctx context.Context, id int64) error
}

type categoriaService struct {
	api   api.CategoriaAPI
	users permissions.UserSource
}

func NewCategoriaService(a api.CategoriaAPI, users permissions.UserSource) CategoriaService {
	return &categoriaService{api: a, users: users}
}

func (s *categoriaService) List(ctx context.Context) ([]models.Categoria, error) {
	rows, err := s.api.ListCategorias(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categorias: %w", err)
	}
	sc := scopeFor(s.users)
	out := make([]models.Categoria, 0, len(rows))
	for _, c := range rows {
		if sc.keepCampeonato(c.Campeonato) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *categoriaService) Get(ctx context.Context, id int64) (*models.Categoria, error) {
	return s.api.GetCategoria(ctx, id)
}

func (s *categoriaService) Create(ctx context.Context, req models.CreateCategoriaRequest) (*models.Categoria, error) {
	if req.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre is required", common.ErrValidation)
	}
	if req.CampeonatoID == 0 {
		return nil, fmt.Errorf("%w: campeonatoId is required", common.ErrValidation)
	}
	if req.EquiposAscienden < 0 || req.EquiposDescienden < 0 {
		return nil, fmt.Errorf("%w: promotion and relegation quotas cannot be negative", common.ErrValidation)
	}
	return s.api.CreateCategoria(ctx, req)
}

func (s *categoriaService) Update(ctx context.Context, id int64, req models.CreateCategoriaRequest) (*models.Categoria, error) {
	return s.api.UpdateCategoria(ctx, id, req)
}

func (s *categoriaService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteCategoria(ctx, id)
}
