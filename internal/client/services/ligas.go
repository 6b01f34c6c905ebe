package services

import (
	"context"
	"fmt"

	"github.com/ligadeportiva/ligacli/internal/client/api"
	"github.com/ligadeportiva/ligacli/internal/client/models"
	"github.com/ligadeportiva/ligacli/internal/client/permissions"
	"github.com/ligadeportiva/ligacli/internal/common"
)

type LigaService interface {
	List(ctx context.Context) ([]models.Liga, error)
	Get(ctx context.Context, id int64) (*models.Liga, error)
	Create(ctx context.Context, req models.CreateLigaRequest) (*models.Liga, error)
	Update(ctx context.Context, id int64, req models.CreateLigaRequest) (*models.Liga, error)
	Delete(ctx context.Context, id int64) error
}

type ligaService struct {
	api   api.LigaAPI
	users permissions.UserSource
}

func NewLigaService(a api.LigaAPI, users permissions.UserSource) LigaService {
	return &ligaService{api: a, users: users}
}

// List narrows to the director's own league; master sees every league.
func (s *ligaService) List(ctx context.Context) ([]models.Liga, error) {
	rows, err := s.api.ListLigas(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ligas: %w", err)
	}
	sc := scopeFor(s.users)
	if sc.ligaID == nil {
		return rows, nil
	}
	out := make([]models.Liga, 0, 1)
	for _, l := range rows {
		if sc.keepLiga(l.ID) {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *ligaService) Get(ctx context.Context, id int64) (*models.Liga, error) {
	return s.api.GetLiga(ctx, id)
}

func (s *ligaService) Create(ctx context.Context, req models.CreateLigaRequest) (*models.Liga, error) {
	if req.Nombre == "" {
		return nil, fmt.Errorf("%w: nombre is required", common.ErrValidation)
	}
	return s.api.CreateLiga(ctx, req)
}

func (s *ligaService) Update(ctx context.Context, id int64, req models.CreateLigaRequest) (*models.Liga, error) {
	return s.api.UpdateLiga(ctx, id, req)
}

func (s *ligaService) Delete(ctx context.Context, id int64) error {
	return s.api.DeleteLiga(ctx, id)
}
