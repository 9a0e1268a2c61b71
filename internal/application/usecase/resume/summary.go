package resume

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khanhduong/smartresume/internal/application/service"
	"github.com/khanhduong/smartresume/internal/domain/resume"
	"github.com/khanhduong/smartresume/internal/domain/user"
	"github.com/khanhduong/smartresume/pkg/logger"
)

const (
	fallbackSkillLimit      = 8
	fallbackRoleLimit       = 2
	fallbackProjectLimit    = 3
	enhancerSkillLimit      = 10
	enhancerProjectLimit    = 5
	enhancerRoleLimit       = 3
	defaultExperiencePhrase = "web development and backend systems"
)

type SummaryUseCase struct {
	repos           Repos
	userRepo        user.Repository
	enhancer        service.SummaryEnhancer
	enhancerTimeout time.Duration
	logger          logger.Logger
}

// NewSummaryUseCase accepts a nil enhancer; the deterministic composer
// then serves every request.
func NewSummaryUseCase(repos Repos, userRepo user.Repository, enhancer service.SummaryEnhancer, enhancerTimeout time.Duration, log logger.Logger) *SummaryUseCase {
	return &SummaryUseCase{
		repos:           repos,
		userRepo:        userRepo,
		enhancer:        enhancer,
		enhancerTimeout: enhancerTimeout,
		logger:          log,
	}
}

var summaryTracer = otel.Tracer("summary_usecase")

// Execute generates a summary for an owned resume, persists it into
// summary_text and advances last_updated. It never fails because of the
// external provider: enhancement errors degrade to the deterministic
// composer.
func (uc *SummaryUseCase) Execute(ctx context.Context, resumeID, actorID uuid.UUID) (string, error) {
	ctx, span := summaryTracer.Start(ctx, "GenerateSummary")
	defer span.End()
	span.SetAttributes(attribute.String("resume_id", resumeID.String()))

	r, err := uc.repos.Resumes.FindByID(ctx, resumeID, actorID)
	if err != nil {
		return "", err
	}
	actor, err := uc.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return "", err
	}

	skills, err := uc.repos.Skills.ListByResume(ctx, r.ID)
	if err != nil {
		return "", err
	}
	experiences, err := uc.repos.Experiences.ListByResume(ctx, r.ID)
	if err != nil {
		return "", err
	}
	projects, err := uc.repos.Projects.ListByResume(ctx, r.ID)
	if err != nil {
		return "", err
	}

	summary := uc.enhance(ctx, actor, skills, experiences, projects)
	if summary == "" {
		summary = ComposeSummary(actor, skills, experiences, projects)
	}

	if err := uc.repos.Resumes.UpdateSummary(ctx, r.ID, summary, time.Now().UTC()); err != nil {
		return "", err
	}
	return summary, nil
}

// ComposeSummary is the deterministic fallback. It is always available
// and is what the tests pin down.
func ComposeSummary(actor *user.User, skills []*resume.Skill, experiences []*resume.Experience, projects []*resume.Project) string {
	skillNames := make([]string, 0, fallbackSkillLimit)
	for _, s := range skills {
		if len(skillNames) == fallbackSkillLimit {
			break
		}
		skillNames = append(skillNames, s.Name)
	}
	skillPart := defaultExperiencePhrase
	if len(skillNames) > 0 {
		skillPart = strings.Join(skillNames, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s is a backend developer experienced in %s.", actor.DisplayName(), skillPart)

	roles := make([]string, 0, fallbackRoleLimit)
	for _, e := range experiences {
		if len(roles) == fallbackRoleLimit {
			break
		}
		roles = append(roles, fmt.Sprintf("%s at %s", e.Role, e.Company))
	}
	if len(roles) > 0 {
		fmt.Fprintf(&b, " Recent roles: %s.", strings.Join(roles, "; "))
	}

	titles := make([]string, 0, fallbackProjectLimit)
	for _, p := range projects {
		if len(titles) == fallbackProjectLimit {
			break
		}
		titles = append(titles, p.Title)
	}
	if len(titles) > 0 {
		fmt.Fprintf(&b, " Recent projects: %s.", strings.Join(titles, ", "))
	}

	return b.String()
}

// enhance tries the external provider and returns "" on any failure so
// the caller falls back. The call is bounded by the configured timeout.
func (uc *SummaryUseCase) enhance(ctx context.Context, actor *user.User, skills []*resume.Skill, experiences []*resume.Experience, projects []*resume.Project) string {
	if uc.enhancer == nil {
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, uc.enhancerTimeout)
	defer cancel()

	prompt := buildEnhancerPrompt(actor, skills, experiences, projects)
	text, err := uc.enhancer.Enhance(ctx, prompt)
	if err != nil {
		uc.logger.Warn("Summary enhancement failed, using deterministic fallback", zap.Error(err))
		return ""
	}
	return strings.TrimSpace(text)
}

func buildEnhancerPrompt(actor *user.User, skills []*resume.Skill, experiences []*resume.Experience, projects []*resume.Project) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a short 2-3 sentence professional resume summary for %s, a backend developer.\n", actor.DisplayName())

	if len(skills) > 0 {
		names := make([]string, 0, enhancerSkillLimit)
		for _, s := range skills {
			if len(names) == enhancerSkillLimit {
				break
			}
			names = append(names, s.Name)
		}
		fmt.Fprintf(&b, "Skills: %s.\n", strings.Join(names, ", "))
	}
	if len(experiences) > 0 {
		roles := make([]string, 0, enhancerRoleLimit)
		for _, e := range experiences {
			if len(roles) == enhancerRoleLimit {
				break
			}
			roles = append(roles, fmt.Sprintf("%s at %s", e.Role, e.Company))
		}
		fmt.Fprintf(&b, "Recent roles: %s.\n", strings.Join(roles, "; "))
	}
	if len(projects) > 0 {
		titles := make([]string, 0, enhancerProjectLimit)
		for _, p := range projects {
			if len(titles) == enhancerProjectLimit {
				break
			}
			titles = append(titles, p.Title)
		}
		fmt.Fprintf(&b, "Projects: %s.\n", strings.Join(titles, ", "))
	}

	b.WriteString("Respond with the summary text only.")
	return b.String()
}
