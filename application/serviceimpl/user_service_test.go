package serviceimpl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"coursehub/domain/dto"
	"coursehub/domain/errs"
)

func TestUserService_RegisterNormalizesEmailAndHashesPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:       "  Alice@Example.COM ",
		DisplayName: "Alice",
		Password:    "correct horse battery",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@example.com", user.Email)
	assert.False(t, user.ID.IsZero())
	assert.NotEqual(t, "correct horse battery", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("correct horse battery")))
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo)

	req := &dto.RegisterRequest{Email: "dup@example.com", DisplayName: "First", Password: "password123"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "DUP@example.com", DisplayName: "Second", Password: "password123",
	})
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestUserService_LoginSuccess(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo)

	registered, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "bob@example.com", DisplayName: "Bob", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	user, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "Bob@Example.com", Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestUserService_LoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email: "carol@example.com", DisplayName: "Carol", Password: "right-password",
	})
	require.NoError(t, err)

	_, wrongPass := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "carol@example.com", Password: "wrong-password",
	})
	_, noUser := svc.Login(context.Background(), &dto.LoginRequest{
		Email: "nobody@example.com", Password: "whatever",
	})

	// ทั้งสอง case ต้องให้ error เดียวกัน ไม่หลุดว่าผิดตรงไหน
	assert.ErrorIs(t, wrongPass, errs.ErrUnauthorized)
	assert.ErrorIs(t, noUser, errs.ErrUnauthorized)
	assert.Equal(t, wrongPass.Error(), noUser.Error())
}
