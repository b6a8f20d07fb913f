package serviceimpl

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"coursehub/domain/errs"
	"coursehub/domain/models"
)

func TestSessionService_StartAndVerify(t *testing.T) {
	repo := newMemSessionRepo()
	svc := NewSessionService(repo, 24*time.Hour)

	user := &models.User{
		ID:          primitive.NewObjectID(),
		Email:       "alice@example.com",
		DisplayName: "Alice",
	}

	sid, err := svc.Start(context.Background(), user)
	require.NoError(t, err)

	// session id เป็น opaque UUID
	_, err = uuid.Parse(sid)
	require.NoError(t, err)

	got, err := svc.Verify(context.Background(), sid)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, user.Email, got.Email)
}

func TestSessionService_VerifyUnknownSID(t *testing.T) {
	svc := NewSessionService(newMemSessionRepo(), time.Hour)

	_, err := svc.Verify(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestSessionService_DestroyInvalidatesSession(t *testing.T) {
	repo := newMemSessionRepo()
	svc := NewSessionService(repo, time.Hour)

	user := &models.User{ID: primitive.NewObjectID(), Email: "bob@example.com"}
	sid, err := svc.Start(context.Background(), user)
	require.NoError(t, err)

	require.NoError(t, svc.Destroy(context.Background(), sid))

	_, err = svc.Verify(context.Background(), sid)
	assert.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestSessionService_DistinctSIDsPerLogin(t *testing.T) {
	svc := NewSessionService(newMemSessionRepo(), time.Hour)
	user := &models.User{ID: primitive.NewObjectID(), Email: "carol@example.com"}

	first, err := svc.Start(context.Background(), user)
	require.NoError(t, err)
	second, err := svc.Start(context.Background(), user)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	// login ซ้ำไม่เตะ session เดิม
	_, err = svc.Verify(context.Background(), first)
	assert.NoError(t, err)
}

func TestSessionService_TTL(t *testing.T) {
	svc := NewSessionService(newMemSessionRepo(), 36*time.Hour)
	assert.Equal(t, 36*time.Hour, svc.TTL())
}
