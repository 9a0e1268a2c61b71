package record

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khanhduong/smartresume/internal/domain/resume"
	"github.com/khanhduong/smartresume/pkg/apperror"
	"github.com/khanhduong/smartresume/pkg/logger"
)

type EducationUseCase struct {
	resumes    resume.Repository
	educations resume.EducationRepository
	logger     logger.Logger
}

func NewEducationUseCase(resumes resume.Repository, educations resume.EducationRepository, log logger.Logger) *EducationUseCase {
	return &EducationUseCase{resumes: resumes, educations: educations, logger: log}
}

type EducationInput struct {
	ResumeID  uuid.UUID
	Institute string
	Degree    string
	StartDate *time.Time
	EndDate   *time.Time
	Details   string
}

func (uc *EducationUseCase) Create(ctx context.Context, actorID uuid.UUID, in EducationInput) (*resume.Education, error) {
	if in.Institute == "" || in.Degree == "" {
		return nil, apperror.NewInvalidInput("institute and degree are required", nil)
	}
	r, err := resolveOwnedResume(ctx, uc.resumes, in.ResumeID, actorID)
	if err != nil {
		return nil, err
	}

	e := &resume.Education{
		ID:        uuid.New(),
		ResumeID:  r.ID,
		Institute: in.Institute,
		Degree:    in.Degree,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Details:   in.Details,
	}
	if err := uc.educations.Save(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *EducationUseCase) Update(ctx context.Context, actorID, id uuid.UUID, in EducationInput) (*resume.Education, error) {
	e, err := uc.educations.FindByID(ctx, id, actorID)
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

	e.Institute = in.Institute
	e.Degree = in.Degree
	e.StartDate = in.StartDate
	e.EndDate = in.EndDate
	e.Details = in.Details

	if err := uc.educations.Update(ctx, e, actorID); err != nil {
		return nil, err
	}
	return e, nil
}

func (uc *EducationUseCase) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	return uc.educations.Delete(ctx, id, actorID)
}

func (uc *EducationUseCase) Get(ctx context.Context, actorID, id uuid.UUID) (*resume.Education, error) {
	return uc.educations.FindByID(ctx, id, actorID)
}

func (uc *EducationUseCase) List(ctx context.Context, actorID uuid.UUID) ([]*resume.Education, error) {
	return uc.educations.ListByOwner(ctx, actorID)
}
