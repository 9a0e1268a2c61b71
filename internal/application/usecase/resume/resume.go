package resume

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khanhduong/smartresume/internal/domain/resume"
	"github.com/khanhduong/smartresume/pkg/logger"
)

// Repos bundles the aggregate's repositories. Retrieval returns a
// resume with all of its child records, matching the API's nested
// representation.
type Repos struct {
	Resumes      resume.Repository
	Projects     resume.ProjectRepository
	Experiences  resume.ExperienceRepository
	Educations   resume.EducationRepository
	Skills       resume.SkillRepository
	Achievements resume.AchievementRepository
}

type ResumeUseCase struct {
	repos  Repos
	logger logger.Logger
}

func NewResumeUseCase(repos Repos, log logger.Logger) *ResumeUseCase {
	return &ResumeUseCase{repos: repos, logger: log}
}

type CreateResumeInput struct {
	OwnerID uuid.UUID
	Title   string
}

// Create stamps the acting identity as owner. A client-supplied owner
// field never reaches this layer.
func (uc *ResumeUseCase) Create(ctx context.Context, input CreateResumeInput) (*resume.Resume, error) {
	title := input.Title
	if title == "" {
		title = resume.DefaultTitle
	}

	r := &resume.Resume{
		ID:          uuid.New(),
		OwnerID:     input.OwnerID,
		Title:       title,
		LastUpdated: time.Now().UTC(),
	}
	if err := uc.repos.Resumes.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

type UpdateResumeInput struct {
	ResumeID uuid.UUID
	OwnerID  uuid.UUID
	Title    string
}

func (uc *ResumeUseCase) Update(ctx context.Context, input UpdateResumeInput) (*resume.Resume, error) {
	r, err := uc.repos.Resumes.FindByID(ctx, input.ResumeID, input.OwnerID)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		r.Title = input.Title
	}
	r.LastUpdated = time.Now().UTC()

	if err := uc.repos.Resumes.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *ResumeUseCase) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return uc.repos.Resumes.Delete(ctx, id, ownerID)
}

// ResumeDetail is a resume together with its child records.
type ResumeDetail struct {
	Resume       *resume.Resume
	Projects     []*resume.Project
	Experiences  []*resume.Experience
	Educations   []*resume.Education
	Skills       []*resume.Skill
	Achievements []*resume.Achievement
}

func (uc *ResumeUseCase) Get(ctx context.Context, id, ownerID uuid.UUID) (*ResumeDetail, error) {
	r, err := uc.repos.Resumes.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	return uc.loadDetail(ctx, r)
}

func (uc *ResumeUseCase) List(ctx context.Context, ownerID uuid.UUID) ([]*ResumeDetail, error) {
	rs, err := uc.repos.Resumes.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	details := make([]*ResumeDetail, 0, len(rs))
	for _, r := range rs {
		d, err := uc.loadDetail(ctx, r)
		if err != nil {
			return nil, err
		}
		details = append(details, d)
	}
	return details, nil
}

func (uc *ResumeUseCase) loadDetail(ctx context.Context, r *resume.Resume) (*ResumeDetail, error) {
	d := &ResumeDetail{Resume: r}

	var err error
	if d.Projects, err = uc.repos.Projects.ListByResume(ctx, r.ID); err != nil {
		return nil, err
	}
	if d.Experiences, err = uc.repos.Experiences.ListByResume(ctx, r.ID); err != nil {
		return nil, err
	}
	if d.Educations, err = uc.repos.Educations.ListByResume(ctx, r.ID); err != nil {
		return nil, err
	}
	if d.Skills, err = uc.repos.Skills.ListByResume(ctx, r.ID); err != nil {
		return nil, err
	}
	if d.Achievements, err = uc.repos.Achievements.ListByResume(ctx, r.ID); err != nil {
		return nil, err
	}
	return d, nil
}
