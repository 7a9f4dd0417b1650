// internal/core/services/guard.go
package services

import (
	"context"
	"errors"

	"inference-back/internal/core/model"
	"inference-back/internal/core/ports"
)

// authorizeOwner decodes the bearer token, resolves the acting user and
// checks that they own the target resource. Every inference operation runs
// this before touching anything else.
func authorizeOwner(ctx context.Context, p ports.Ports, userID, token string) (*model.User, error) {
	user, err := resolveUser(ctx, p, token)
	if err != nil {
		return nil, err
	}
	if user.ID != userID {
		return nil, model.ForbiddenOperationError()
	}
	return user, nil
}

// resolveUser decodes the token and resolves the user it names. Any decode or
// lookup failure collapses into the canonical credentials error.
func resolveUser(ctx context.Context, p ports.Ports, token string) (*model.User, error) {
	data, err := p.Authentication.DecodeToken(token)
	if err != nil {
		return nil, model.CredentialsError(err)
	}
	user, err := p.Database.GetUserByUsername(ctx, data.Username)
	if err != nil {
		return nil, model.CredentialsError(err)
	}
	if user == nil {
		return nil, model.CredentialsError(errors.New("token subject does not match any user"))
	}
	return user, nil
}
