// internal/core/services/inference.go
package services

import (
	"context"
	"errors"
	"log/slog"

	"inference-back/internal/core/model"
	"inference-back/internal/core/ports"
	"inference-back/internal/observability"
)

// InferenceService orchestrates the create/read/list workflow for inferences.
type InferenceService struct {
	ports ports.Ports
	log   *slog.Logger
}

func NewInferenceService(p ports.Ports, log *slog.Logger) *InferenceService {
	if log == nil {
		log = slog.Default()
	}
	return &InferenceService{ports: p, log: log}
}

func (s *InferenceService) GetByID(ctx context.Context, inferenceID, userID, token string) (*model.Inference, error) {
	if _, err := authorizeOwner(ctx, s.ports, userID, token); err != nil {
		return nil, err
	}

	inference, err := s.ports.Database.GetInferenceByID(ctx, inferenceID, userID)
	if err != nil {
		if errors.Is(err, model.ErrMalformedID) {
			return nil, model.Unprocessable("inference id is not valid")
		}
		return nil, model.Internal("could not retrieve inference", err)
	}
	if inference == nil {
		return nil, model.NotFound("inference not found")
	}
	return inference, nil
}

func (s *InferenceService) GetList(ctx context.Context, userID, token string) ([]model.Inference, error) {
	if _, err := authorizeOwner(ctx, s.ports, userID, token); err != nil {
		return nil, err
	}

	inferences, err := s.ports.Database.GetInferenceList(ctx, userID)
	if err != nil {
		return nil, model.Internal("could not retrieve inference list", err)
	}
	return inferences, nil
}

// Create registers a new inference and dispatches it to its model's channel.
// The ordering is fixed: persist the row, then store the files, then publish,
// so a blob never exists without a matching row and a worker never sees a
// request before the row it will complete.
func (s *InferenceService) Create(ctx context.Context, userID string, form model.InferenceCreationForm, files model.InferenceFiles, token string) (string, error) {
	if _, err := authorizeOwner(ctx, s.ports, userID, token); err != nil {
		return "", err
	}

	// Model lookup happens before persistence so an invalid model never
	// creates a dangling inference row.
	mdl, err := s.validateModel(ctx, form.ModelID)
	if err != nil {
		return "", err
	}

	creation := model.InferenceCreation{
		Age:     form.Age,
		Sex:     form.Sex,
		UserID:  userID,
		ModelID: form.ModelID,
		Status:  model.StatusProcessing,
	}

	newID, err := s.ports.Database.InsertInference(ctx, creation)
	if err != nil {
		return "", s.creationFailure("persist", newID, err)
	}

	if err := s.storeFiles(ctx, newID, files); err != nil {
		return "", s.creationFailure("store_files", newID, err)
	}

	letter := model.RequestLetter{
		Content:           creation,
		PublishingChannel: mdl.ReceivingChannel(),
	}
	if err := s.ports.MessageService.SendMessage(ctx, letter); err != nil {
		return "", s.creationFailure("publish", newID, err)
	}

	observability.InferencesCreated.Inc()
	return newID, nil
}

func (s *InferenceService) validateModel(ctx context.Context, modelID string) (*model.Model, error) {
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

func (s *InferenceService) storeFiles(ctx context.Context, inferenceID string, files model.InferenceFiles) error {
	for fileType, file := range files.ByType() {
		if err := s.ports.SimpleStorage.StoreFile(ctx, inferenceID, fileType, file); err != nil {
			return err
		}
	}
	return nil
}

// creationFailure logs the step-specific cause and collapses it into the
// single caller-facing message; the caller learns nothing about how far the
// sequence got.
func (s *InferenceService) creationFailure(step, inferenceID string, err error) error {
	s.log.Error("inference creation failed",
		"step", step,
		"inference_id", inferenceID,
		"error", err,
	)
	return model.Internal("could not create new inference", err)
}
