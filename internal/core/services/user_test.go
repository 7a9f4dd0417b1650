// internal/core/services/user_test.go
package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inference-back/internal/core/model"
)

func TestGetUserByID(t *testing.T) {
	env := newTestEnv()
	svc := NewUserService(env.ports)

	user, err := svc.GetByID(context.Background(), env.userID, env.token)
	require.NoError(t, err)
	assert.Equal(t, "ada", user.Username)
	assert.Equal(t, env.userID, user.ID)
}

func TestGetUserByIDMalformedIDIsForbidden(t *testing.T) {
	env := newTestEnv()
	svc := NewUserService(env.ports)

	// The ownership guard runs before the lookup; a malformed id can never
	// equal the resolved user's id, so it fails Forbidden, not 422.
	_, err := svc.GetByID(context.Background(), "invalid_id", env.token)
	assertKind(t, err, model.KindForbidden, "Forbidden operation")
}

func TestGetUserByIDOtherUserForbidden(t *testing.T) {
	env := newTestEnv()
	svc := NewUserService(env.ports)

	_, err := svc.GetByID(context.Background(), uuid.NewString(), env.token)
	assertKind(t, err, model.KindForbidden, "Forbidden operation")
}
