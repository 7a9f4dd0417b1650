// internal/core/ports/ports.go
package ports

import (
	"context"

	"inference-back/internal/core/model"
)

// DatabasePort is the outbound storage boundary. Lookups return (nil, nil)
// when no row matches a well-formed identifier; a malformed identifier yields
// an error wrapping model.ErrMalformedID.
type DatabasePort interface {
	GetUserByID(ctx context.Context, userID string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetAuthUserByUsername(ctx context.Context, username string) (*model.AuthenticationUser, error)
	InsertUser(ctx context.Context, user model.AuthenticationUser) (string, error)

	GetInferenceByID(ctx context.Context, inferenceID, userID string) (*model.Inference, error)
	GetInferenceList(ctx context.Context, userID string) ([]model.Inference, error)
	InsertInference(ctx context.Context, creation model.InferenceCreation) (string, error)
	UpdateInferenceStatus(ctx context.Context, inferenceID, status string) error

	GetModelByID(ctx context.Context, modelID string) (*model.Model, error)
	GetModelList(ctx context.Context) ([]model.Model, error)

	UpdateResult(ctx context.Context, update model.ResultUpdate) error
	GetResultByInferenceID(ctx context.Context, inferenceID string) (*model.Result, error)
}

// AuthenticationPort decodes and validates bearer tokens.
type AuthenticationPort interface {
	DecodeToken(token string) (model.TokenData, error)
	ValidateToken(token string) bool
}

// MessageServicePort is the pub/sub boundary. WaitForMessage blocks until one
// message arrives on the channel and returns its raw payload.
type MessageServicePort interface {
	SendMessage(ctx context.Context, letter model.RequestLetter) error
	Subscribe(ctx context.Context, channel string) error
	WaitForMessage(ctx context.Context, channel string) ([]byte, error)
}

// SimpleStoragePort stores the binary payloads attached to an inference.
type SimpleStoragePort interface {
	StoreFile(ctx context.Context, inferenceID, fileType string, file model.InferenceFile) error
}

// Ports bundles the four backend boundaries; the composition root builds one
// and hands it to the services.
type Ports struct {
	Database       DatabasePort
	Authentication AuthenticationPort
	MessageService MessageServicePort
	SimpleStorage  SimpleStoragePort
}
