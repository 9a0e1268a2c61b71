package record

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khanhduong/smartresume/internal/domain/resume"
	"github.com/khanhduong/smartresume/pkg/apperror"
	"github.com/khanhduong/smartresume/pkg/logger"
)

type AchievementUseCase struct {
	resumes      resume.Repository
	achievements resume.AchievementRepository
	logger       logger.Logger
}

func NewAchievementUseCase(resumes resume.Repository, achievements resume.AchievementRepository, log logger.Logger) *AchievementUseCase {
	return &AchievementUseCase{resumes: resumes, achievements: achievements, logger: log}
}

type AchievementInput struct {
	ResumeID    uuid.UUID
	Title       string
	Date        *time.Time
	Issuer      string
	ProofURL    *string
	Description string
}

func (uc *AchievementUseCase) Create(ctx context.Context, actorID uuid.UUID, in AchievementInput) (*resume.Achievement, error) {
	if in.Title == "" {
		return nil, apperror.NewInvalidInput("title is required", nil)
	}
	r, err := resolveOwnedResume(ctx, uc.resumes, in.ResumeID, actorID)
	if err != nil {
		return nil, err
	}

	a := &resume.Achievement{
		ID:          uuid.New(),
		ResumeID:    r.ID,
		Title:       in.Title,
		Date:        in.Date,
		Issuer:      in.Issuer,
		ProofURL:    in.ProofURL,
		Description: in.Description,
	}
	if err := uc.achievements.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *AchievementUseCase) Update(ctx context.Context, actorID, id uuid.UUID, in AchievementInput) (*resume.Achievement, error) {
	a, err := uc.achievements.FindByID(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	if in.ResumeID != uuid.Nil && in.ResumeID != a.ResumeID {
		r, err := resolveOwnedResume(ctx, uc.resumes, in.ResumeID, actorID)
		if err != nil {
			return nil, err
		}
		a.ResumeID = r.ID
	}

	a.Title = in.Title
	a.Date = in.Date
	a.Issuer = in.Issuer
	a.ProofURL = in.ProofURL
	a.Description = in.Description

	if err := uc.achievements.Update(ctx, a, actorID); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *AchievementUseCase) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	return uc.achievements.Delete(ctx, id, actorID)
}

func (uc *AchievementUseCase) Get(ctx context.Context, actorID, id uuid.UUID) (*resume.Achievement, error) {
	return uc.achievements.FindByID(ctx, id, actorID)
}

func (uc *AchievementUseCase) List(ctx context.Context, actorID uuid.UUID) ([]*resume.Achievement, error) {
	return uc.achievements.ListByOwner(ctx, actorID)
}
