package record

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khanhduong/smartresume/internal/domain/resume"
	"github.com/khanhduong/smartresume/pkg/apperror"
	"github.com/khanhduong/smartresume/pkg/logger"
)

type ExperienceUseCase struct {
	resumes     resume.Repository
	experiences resume.ExperienceRepository
	logger      logger.Logger
}

func NewExperienceUseCase(resumes resume.Repository, experiences resume.ExperienceRepository, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{resumes: resumes, experiences: experiences, logger: log}
}

type ExperienceInput struct {
	ResumeID    uuid.UUID
	Company     string
	Role        string
	StartDate   *time.Time
	EndDate     *time.Time
	Description string
}

func (uc *ExperienceUseCase) Create(ctx context.Context, actorID uuid.UUID, in ExperienceInput) (*resume.Experience, error) {
	if in.Company == "" || in.Role == "" {
		return nil, apperror.NewInvalidInput("company and role are required", nil)
	}
	if in.StartDate == nil {
		return nil, apperror.NewInvalidInput("start_date is required", nil)
	}
	r, err := resolveOwnedResume(ctx, uc.resumes, in.ResumeID, actorID)
	if err != nil {
		return nil, err
	}

	e := &resume.Experience{
		ID:          uuid.New(),
		ResumeID:    r.ID,
		Company:     in.Company,
		Role:        in.Role,
		StartDate:   *in.StartDate,
		EndDate:     in.EndDate,
		Description: in.Description,
	}
	if err := uc.experiences.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *ExperienceUseCase) Update(ctx context.Context, actorID, id uuid.UUID, in ExperienceInput) (*resume.Experience, error) {
	e, err := uc.experiences.FindByID(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	if in.ResumeID != uuid.Nil && in.ResumeID != e.ResumeID {
		r, err := resolveOwnedResume(ctx, uc.resumes, in.ResumeID, actorID)
		if err != nil {
			return nil, err
		}
		e.ResumeID = r.ID
	}

	e.Company = in.Company
	e.Role = in.Role
	if in.StartDate != nil {
		e.StartDate = *in.StartDate
	}
	e.EndDate = in.EndDate
	e.Description = in.Description

	if err := uc.experiences.Update(ctx, e, actorID); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *ExperienceUseCase) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	return uc.experiences.Delete(ctx, id, actorID)
}

func (uc *ExperienceUseCase) Get(ctx context.Context, actorID, id uuid.UUID) (*resume.Experience, error) {
	return uc.experiences.FindByID(ctx, id, actorID)
}

func (uc *ExperienceUseCase) List(ctx context.Context, actorID uuid.UUID) ([]*resume.Experience, error) {
	return uc.experiences.ListByOwner(ctx, actorID)
}
