// internal/core/services/user.go
package services

import (
	"context"

	"inference-back/internal/core/model"
	"inference-back/internal/core/ports"
)

// UserService reads user records. A user can only read themselves.
type UserService struct {
	ports ports.Ports
}

func NewUserService(p ports.Ports) *UserService {
	return &UserService{ports: p}
}

func (s *UserService) GetByID(ctx context.Context, userID, token string) (*model.User, error) {
	if _, err := authorizeOwner(ctx, s.ports, userID, token); err != nil {
		return nil, err
	}

	// A malformed user id can never match the resolved user's id, so the
	// guard has already rejected it as Forbidden; past this point userID is
	// a well-formed identifier.
	user, err := s.ports.Database.GetUserByID(ctx, userID)
	if err != nil {
		return nil, model.Internal("could not retrieve user", err)
	}
	if user == nil {
		return nil, model.NotFound("user not found")
	}
	return user, nil
}
