package auth

import (
	"context"

	"github.com/khanhduong/smartresume/pkg/apperror"
	authpkg "github.com/khanhduong/smartresume/pkg/auth"
	"github.com/khanhduong/smartresume/pkg/logger"
)

type RefreshUseCase struct {
	jwtSvc *authpkg.JWTService
	tokens TokenStore
	logger logger.Logger
}

func NewRefreshUseCase(jwtSvc *authpkg.JWTService, tokens TokenStore, log logger.Logger) *RefreshUseCase {
	return &RefreshUseCase{jwtSvc: jwtSvc, tokens: tokens, logger: log}
}

func (uc *RefreshUseCase) Execute(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, apperror.NewInvalidInput("refresh token is required", nil)
	}

	u, err := uc.tokens.Exchange(ctx, refreshToken)
	if err != nil {
		return nil, apperror.NewUnauthorized("refresh token is invalid or expired", err)
	}

	access, err := uc.jwtSvc.GenerateToken(u.ID, u.Username)
	if err != nil {
		return nil, apperror.NewInternal("failed to generate access token", err)
	}

	refresh := authpkg.NewRefreshToken()
	if err := uc.tokens.Store(ctx, refresh, u); err != nil {
		return nil, apperror.NewInternal("failed to store refresh token", err)
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}
