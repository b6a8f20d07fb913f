package serviceimpl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"coursehub/domain/dto"
	"coursehub/domain/errs"
	"coursehub/domain/models"
	"coursehub/domain/repositories"
	"coursehub/pkg/logger"
)

type UserServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserServiceImpl {
	return &UserServiceImpl{userRepo: userRepo}
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, _ := s.userRepo.GetByEmail(ctx, email)
	if existing != nil {
		logger.WarnContext(ctx, "Email already exists", "email", email)
		return nil, fmt.Errorf("email %s: %w", email, errs.ErrConflict)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		Email:        email,
		DisplayName:  req.DisplayName,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ErrorContext(ctx, "Failed to create user", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID.Hex(), "email", email)
	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		logger.WarnContext(ctx, "Login failed: user not found", "email", email)
		// ไม่บอกว่า email หรือ password ผิด
		return nil, errs.ErrUnauthorized
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed: wrong password", "email", email)
		return nil, errs.ErrUnauthorized
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID.Hex())
	return user, nil
}
