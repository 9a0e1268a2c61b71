package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/khanhduong/smartresume/internal/domain/user"
)

type MeUseCase struct {
	userRepo user.Repository
}

func NewMeUseCase(repo user.Repository) *MeUseCase {
	return &MeUseCase{userRepo: repo}
}

func (uc *MeUseCase) Execute(ctx context.Context, userID uuid.UUID) (*user.User, error) {
	return uc.userRepo.FindByID(ctx, userID)
}
