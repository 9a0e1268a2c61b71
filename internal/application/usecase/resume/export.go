package resume

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/khanhduong/smartresume/internal/application/service"
	"github.com/khanhduong/smartresume/internal/domain/user"
	"github.com/khanhduong/smartresume/pkg/logger"
)

const exportProjectLimit = 6

type ExportUseCase struct {
	repos    Repos
	userRepo user.Repository
	renderer service.ResumeRenderer
	logger   logger.Logger
}

func NewExportUseCase(repos Repos, userRepo user.Repository, renderer service.ResumeRenderer, log logger.Logger) *ExportUseCase {
	return &ExportUseCase{repos: repos, userRepo: userRepo, renderer: renderer, logger: log}
}

type ExportOutput struct {
	Filename string
	PDF      []byte
}

// Execute renders an owned resume to PDF. The lookup is owner-scoped,
// so exporting someone else's resume reports not-found rather than
// forbidden.
func (uc *ExportUseCase) Execute(ctx context.Context, resumeID, actorID uuid.UUID) (*ExportOutput, error) {
	r, err := uc.repos.Resumes.FindByID(ctx, resumeID, actorID)
	if err != nil {
		return nil, err
	}
	owner, err := uc.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	projects, err := uc.repos.Projects.ListByResume(ctx, r.ID)
	if err != nil {
		return nil, err
	}

	doc := service.ResumeDocument{
		Title:     r.Title,
		OwnerName: owner.FullName(),
	}
	if r.SummaryText != nil && *r.SummaryText != "" {
		// Wrap at the summary's own line breaks only.
		doc.SummaryLines = strings.Split(*r.SummaryText, "\n")
	}
	for i, p := range projects {
		if i == exportProjectLimit {
			break
		}
		doc.Projects = append(doc.Projects, service.ProjectLine{Title: p.Title, TechStack: p.TechStack})
	}

	pdf, err := uc.renderer.Render(doc)
	if err != nil {
		return nil, err
	}

	return &ExportOutput{
		Filename: "resume_" + r.ID.String() + ".pdf",
		PDF:      pdf,
	}, nil
}
