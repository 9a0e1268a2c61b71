package auth

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khanhduong/smartresume/internal/domain/user"
	"github.com/khanhduong/smartresume/pkg/apperror"
	"github.com/khanhduong/smartresume/pkg/auth"
	"github.com/khanhduong/smartresume/pkg/logger"
)

// TokenStore holds opaque refresh tokens. Exchange consumes the token
// so every refresh rotates.
type TokenStore interface {
	Store(ctx context.Context, token string, u *user.User) error
	Exchange(ctx context.Context, token string) (*user.User, error)
}

type LoginUseCase struct {
	userRepo user.Repository
	jwtSvc   *auth.JWTService
	tokens   TokenStore
	logger   logger.Logger
}

func NewLoginUseCase(repo user.Repository, jwtSvc *auth.JWTService, tokens TokenStore, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{userRepo: repo, jwtSvc: jwtSvc, tokens: tokens, logger: log}
}

type LoginInput struct {
	Username string
	Password string
}

type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

var tracer = otel.Tracer("auth_usecase")

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*TokenPair, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	u, err := uc.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewUnauthorized("username or password is incorrect", nil)
	}

	if !auth.CheckPasswordHash(input.Password, u.PasswordHash) {
		err := apperror.NewUnauthorized("username or password is incorrect", nil)
		span.RecordError(err)
		return nil, err
	}

	pair, err := uc.issuePair(ctx, u)
	if err != nil {
		uc.logger.Error("Failed to issue token pair", err, zap.String("user_id", u.ID.String()))
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	return pair, nil
}

func (uc *LoginUseCase) issuePair(ctx context.Context, u *user.User) (*TokenPair, error) {
	access, err := uc.jwtSvc.GenerateToken(u.ID, u.Username)
	if err != nil {
		return nil, apperror.NewInternal("failed to generate access token", err)
	}

	refresh := auth.NewRefreshToken()
	if err := uc.tokens.Store(ctx, refresh, u); err != nil {
		return nil, apperror.NewInternal("failed to store refresh token", err)
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}
