// internal/core/services/result.go
package services

import (
	"context"
	"errors"

	"inference-back/internal/core/model"
	"inference-back/internal/core/ports"
)

// ResultService reads the stored output for an inference.
type ResultService struct {
	ports ports.Ports
}

func NewResultService(p ports.Ports) *ResultService {
	return &ResultService{ports: p}
}

// GetByInferenceID returns the inference together with its result. The result
// exists only after the listener has processed the worker's message.
func (s *ResultService) GetByInferenceID(ctx context.Context, inferenceID, userID, token string) (*model.Inference, *model.Result, error) {
	if _, err := authorizeOwner(ctx, s.ports, userID, token); err != nil {
		return nil, nil, err
	}

	inference, err := s.ports.Database.GetInferenceByID(ctx, inferenceID, userID)
	if err != nil {
		if errors.Is(err, model.ErrMalformedID) {
			return nil, nil, model.Unprocessable("inference id is not valid")
		}
		return nil, nil, model.Internal("could not retrieve inference", err)
	}
	if inference == nil {
		return nil, nil, model.NotFound("inference not found")
	}

	result, err := s.ports.Database.GetResultByInferenceID(ctx, inferenceID)
	if err != nil {
		return nil, nil, model.Internal("could not retrieve result", err)
	}
	if result == nil {
		return nil, nil, model.NotFound("result not found")
	}
	return inference, result, nil
}
