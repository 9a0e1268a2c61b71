// Package webhook ingests third-party submissions appending records to
// a named resume. The caller authenticates with a shared secret, not a
// user identity, so resume ownership is deliberately not checked here.
package webhook

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khanhduong/smartresume/internal/domain/resume"
	"github.com/khanhduong/smartresume/pkg/logger"
)

const (
	CreatedAchievement         = "achievement"
	CreatedProject             = "project"
	CreatedAchievementFallback = "achievement_fallback"
)

type IngestUseCase struct {
	resumes      resume.Repository
	projects     resume.ProjectRepository
	achievements resume.AchievementRepository
	logger       logger.Logger
}

func NewIngestUseCase(resumes resume.Repository, projects resume.ProjectRepository, achievements resume.AchievementRepository, log logger.Logger) *IngestUseCase {
	return &IngestUseCase{resumes: resumes, projects: projects, achievements: achievements, logger: log}
}

type IngestInput struct {
	Source         string
	ExternalID     string
	Type           string
	Data           map[string]any
	TargetResumeID uuid.UUID
}

type IngestResult struct {
	Created string
	Item    any
}

// Execute appends a record to the target resume. Unknown types never
// reject: they degrade to an achievement carrying a dump of the raw
// data. Repeated delivery of the same event creates duplicate records;
// external_id is accepted but not used for deduplication.
func (uc *IngestUseCase) Execute(ctx context.Context, in IngestInput) (*IngestResult, error) {
	target, err := uc.resumes.FindAny(ctx, in.TargetResumeID)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Webhook payload accepted",
		zap.String("source", in.Source),
		zap.String("external_id", in.ExternalID),
		zap.String("type", in.Type),
		zap.String("resume_id", target.ID.String()))

	switch strings.ToLower(in.Type) {
	case "achievement":
		return uc.createAchievement(ctx, target, in)
	case "project":
		return uc.createProject(ctx, target, in)
	default:
		return uc.createFallback(ctx, target, in)
	}
}

func (uc *IngestUseCase) createAchievement(ctx context.Context, target *resume.Resume, in IngestInput) (*IngestResult, error) {
	issuer := stringField(in.Data, "issuer")
	if issuer == "" {
		issuer = in.Source
	}

	a := &resume.Achievement{
		ID:          uuid.New(),
		ResumeID:    target.ID,
		Title:       stringFieldOr(in.Data, "title", "Achievement"),
		Description: stringField(in.Data, "description"),
		Issuer:      issuer,
		ProofURL:    optionalString(in.Data, "proof_url"),
		Date:        dateField(in.Data, "date"),
	}
	if err := uc.achievements.Save(ctx, a); err != nil {
		return nil, err
	}
	return &IngestResult{Created: CreatedAchievement, Item: a}, nil
}

func (uc *IngestUseCase) createProject(ctx context.Context, target *resume.Resume, in IngestInput) (*IngestResult, error) {
	p := &resume.Project{
		ID:          uuid.New(),
		ResumeID:    target.ID,
		Title:       stringFieldOr(in.Data, "title", "Project"),
		Description: stringField(in.Data, "description"),
		TechStack:   stringField(in.Data, "tech_stack"),
		Link:        optionalString(in.Data, "link"),
	}
	if err := uc.projects.Save(ctx, p); err != nil {
		return nil, err
	}
	return &IngestResult{Created: CreatedProject, Item: p}, nil
}

func (uc *IngestUseCase) createFallback(ctx context.Context, target *resume.Resume, in IngestInput) (*IngestResult, error) {
	title := stringField(in.Data, "title")
	if title == "" {
		title = "Imported from " + in.Source
	}

	dump, err := json.Marshal(in.Data)
	if err != nil {
		dump = []byte("{}")
	}

	a := &resume.Achievement{
		ID:          uuid.New(),
		ResumeID:    target.ID,
		Title:       title,
		Issuer:      in.Source,
		Description: string(dump),
	}
	if err := uc.achievements.Save(ctx, a); err != nil {
		return nil, err
	}
	return &IngestResult{Created: CreatedAchievementFallback, Item: a}, nil
}

func stringField(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

func stringFieldOr(data map[string]any, key, fallback string) string {
	if v := stringField(data, key); v != "" {
		return v
	}
	return fallback
}

func optionalString(data map[string]any, key string) *string {
	if v := stringField(data, key); v != "" {
		return &v
	}
	return nil
}

func dateField(data map[string]any, key string) *time.Time {
	raw := stringField(data, key)
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		// Unparseable dates are left unset rather than rejected.
		return nil
	}
	return &t
}
