package record

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khanhduong/smartresume/internal/domain/resume"
	"github.com/khanhduong/smartresume/pkg/apperror"
	"github.com/khanhduong/smartresume/pkg/logger"
)

type ProjectUseCase struct {
	resumes  resume.Repository
	projects resume.ProjectRepository
	logger   logger.Logger
}

func NewProjectUseCase(resumes resume.Repository, projects resume.ProjectRepository, log logger.Logger) *ProjectUseCase {
	return &ProjectUseCase{resumes: resumes, projects: projects, logger: log}
}

type ProjectInput struct {
	ResumeID    uuid.UUID
	Title       string
	Description string
	TechStack   string
	Link        *string
	StartDate   *time.Time
	EndDate     *time.Time
}

func (uc *ProjectUseCase) Create(ctx context.Context, actorID uuid.UUID, in ProjectInput) (*resume.Project, error) {
	if in.Title == "" {
		return nil, apperror.NewInvalidInput("title is required", nil)
	}
	r, err := resolveOwnedResume(ctx, uc.resumes, in.ResumeID, actorID)
	if err != nil {
		return nil, err
	}

	p := &resume.Project{
		ID:          uuid.New(),
		ResumeID:    r.ID,
		Title:       in.Title,
		Description: in.Description,
		TechStack:   in.TechStack,
		Link:        in.Link,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}
	if err := uc.projects.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProjectUseCase) Update(ctx context.Context, actorID, id uuid.UUID, in ProjectInput) (*resume.Project, error) {
	p, err := uc.projects.FindByID(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	// A changed resume reference is re-validated like a create.
	if in.ResumeID != uuid.Nil && in.ResumeID != p.ResumeID {
		r, err := resolveOwnedResume(ctx, uc.resumes, in.ResumeID, actorID)
		if err != nil {
			return nil, err
		}
		p.ResumeID = r.ID
	}

	p.Title = in.Title
	p.Description = in.Description
	p.TechStack = in.TechStack
	p.Link = in.Link
	p.StartDate = in.StartDate
	p.EndDate = in.EndDate

	if err := uc.projects.Update(ctx, p, actorID); err != nil {
		return nil, err
	}
	return p, nil
}

func (uc *ProjectUseCase) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	return uc.projects.Delete(ctx, id, actorID)
}

func (uc *ProjectUseCase) Get(ctx context.Context, actorID, id uuid.UUID) (*resume.Project, error) {
	return uc.projects.FindByID(ctx, id, actorID)
}

func (uc *ProjectUseCase) List(ctx context.Context, actorID uuid.UUID) ([]*resume.Project, error) {
	return uc.projects.ListByOwner(ctx, actorID)
}
