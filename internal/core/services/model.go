// internal/core/services/model.go
package services

import (
	"context"
	"errors"

	"inference-back/internal/core/model"
	"inference-back/internal/core/ports"
)

// ModelService looks up model metadata. Models are not owner-scoped, so only
// token validity is checked.
type ModelService struct {
	ports ports.Ports
}

func NewModelService(p ports.Ports) *ModelService {
	return &ModelService{ports: p}
}

func (s *ModelService) GetByID(ctx context.Context, modelID, token string) (*model.Model, error) {
	if _, err := resolveUser(ctx, s.ports, token); err != nil {
		return nil, err
	}

	mdl, err := s.ports.Database.GetModelByID(ctx, modelID)
	if err != nil {
		if errors.Is(err, model.ErrMalformedID) {
			return nil, model.Unprocessable("model id is not valid")
		}
		return nil, model.Internal("could not retrieve model", err)
	}
	if mdl == nil {
		return nil, model.NotFound("model not found")
	}
	return mdl, nil
}

func (s *ModelService) GetList(ctx context.Context, token string) ([]model.Model, error) {
	if _, err := resolveUser(ctx, s.ports, token); err != nil {
		return nil, err
	}

	models, err := s.ports.Database.GetModelList(ctx)
	if err != nil {
		return nil, model.Internal("could not retrieve model list", err)
	}
	return models, nil
}
