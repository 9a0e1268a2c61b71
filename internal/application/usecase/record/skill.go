package record

import (
	"context"

	"github.com/google/uuid"

	"github.com/khanhduong/smartresume/internal/domain/resume"
	"github.com/khanhduong/smartresume/pkg/apperror"
	"github.com/khanhduong/smartresume/pkg/logger"
)

type SkillUseCase struct {
	resumes resume.Repository
	skills  resume.SkillRepository
	logger  logger.Logger
}

func NewSkillUseCase(resumes resume.Repository, skills resume.SkillRepository, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{resumes: resumes, skills: skills, logger: log}
}

type SkillInput struct {
	ResumeID uuid.UUID
	Name     string
	Level    string
}

func (uc *SkillUseCase) Create(ctx context.Context, actorID uuid.UUID, in SkillInput) (*resume.Skill, error) {
	if in.Name == "" {
		return nil, apperror.NewInvalidInput("name is required", nil)
	}
	r, err := resolveOwnedResume(ctx, uc.resumes, in.ResumeID, actorID)
	if err != nil {
		return nil, err
	}

	s := &resume.Skill{
		ID:       uuid.New(),
		ResumeID: r.ID,
		Name:     in.Name,
		Level:    in.Level,
	}
	if err := uc.skills.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *SkillUseCase) Update(ctx context.Context, actorID, id uuid.UUID, in SkillInput) (*resume.Skill, error) {
	s, err := uc.skills.FindByID(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	if in.ResumeID != uuid.Nil && in.ResumeID != s.ResumeID {
		r, err := resolveOwnedResume(ctx, uc.resumes, in.ResumeID, actorID)
		if err != nil {
			return nil, err
		}
		s.ResumeID = r.ID
	}

	s.Name = in.Name
	s.Level = in.Level

	if err := uc.skills.Update(ctx, s, actorID); err != nil {
		return nil, err
	}
	return s, nil
}

func (uc *SkillUseCase) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	return uc.skills.Delete(ctx, id, actorID)
}

func (uc *SkillUseCase) Get(ctx context.Context, actorID, id uuid.UUID) (*resume.Skill, error) {
	return uc.skills.FindByID(ctx, id, actorID)
}

func (uc *SkillUseCase) List(ctx context.Context, actorID uuid.UUID) ([]*resume.Skill, error) {
	return uc.skills.ListByOwner(ctx, actorID)
}
