package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/khanhduong/smartresume/internal/domain/user"
	"github.com/khanhduong/smartresume/pkg/apperror"
	"github.com/khanhduong/smartresume/pkg/auth"
	"github.com/khanhduong/smartresume/pkg/logger"
)

type RegisterUseCase struct {
	userRepo user.Repository
	logger   logger.Logger
}

func NewRegisterUseCase(repo user.Repository, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{userRepo: repo, logger: log}
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Bio       string
}

func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*user.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, apperror.NewInvalidInput("username and password are required", nil)
	}

	existing, err := uc.userRepo.FindByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, apperror.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflict("user", "username", input.Username)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	u := &user.User{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Bio:          input.Bio,
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.userRepo.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
