// Package testutil provides in-memory repository implementations with
// the same ownership-scoping behavior as the Postgres adapters. They
// back the use case and handler tests.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/khanhduong/smartresume/internal/domain/resume"
	"github.com/khanhduong/smartresume/internal/domain/user"
	"github.com/khanhduong/smartresume/pkg/apperror"
)

// Store holds all records behind one mutex. Child lookups resolve
// ownership through the parent resume, mirroring the SQL joins.
type Store struct {
	mu           sync.Mutex
	users        map[uuid.UUID]*user.User
	resumes      map[uuid.UUID]*resume.Resume
	projects     []*resume.Project
	experiences  []*resume.Experience
	educations   []*resume.Education
	skills       []*resume.Skill
	achievements []*resume.Achievement
}

func NewStore() *Store {
	return &Store{
		users:   make(map[uuid.UUID]*user.User),
		resumes: make(map[uuid.UUID]*resume.Resume),
	}
}

func (s *Store) ownerOf(resumeID uuid.UUID) (uuid.UUID, bool) {
	r, ok := s.resumes[resumeID]
	if !ok {
		return uuid.Nil, false
	}
	return r.OwnerID, true
}

// Users returns the user repository view of the store.
func (s *Store) Users() user.Repository { return (*userRepo)(s) }

// Resumes returns the resume repository view of the store.
func (s *Store) Resumes() resume.Repository { return (*resumeRepo)(s) }

func (s *Store) Projects() resume.ProjectRepository         { return (*projectRepo)(s) }
func (s *Store) Experiences() resume.ExperienceRepository   { return (*experienceRepo)(s) }
func (s *Store) Educations() resume.EducationRepository     { return (*educationRepo)(s) }
func (s *Store) Skills() resume.SkillRepository             { return (*skillRepo)(s) }
func (s *Store) Achievements() resume.AchievementRepository { return (*achievementRepo)(s) }

// CountProjects reports how many projects exist, for asserting that a
// rejected request persisted nothing.
func (s *Store) CountProjects() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.projects)
}

func (s *Store) CountAchievements() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.achievements)
}

// userRepo

type userRepo Store

func (r *userRepo) Save(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username && existing.ID != u.ID {
			return apperror.NewConflict("user", "username", u.Username)
		}
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperror.NewNotFound("user", id.String())
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("user", username)
}

// resumeRepo

type resumeRepo Store

func (r *resumeRepo) Save(_ context.Context, res *resume.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *res
	r.resumes[res.ID] = &cp
	return nil
}

func (r *resumeRepo) Update(_ context.Context, res *resume.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.resumes[res.ID]
	if !ok || existing.OwnerID != res.OwnerID {
		return apperror.NewNotFound("resume", res.ID.String())
	}
	cp := *res
	r.resumes[res.ID] = &cp
	return nil
}

func (r *resumeRepo) UpdateSummary(_ context.Context, id uuid.UUID, summary string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.resumes[id]
	if !ok {
		return apperror.NewNotFound("resume", id.String())
	}
	existing.SummaryText = &summary
	existing.LastUpdated = updatedAt
	return nil
}

func (r *resumeRepo) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.resumes[id]
	if !ok || existing.OwnerID != ownerID {
		return apperror.NewNotFound("resume", id.String())
	}
	delete(r.resumes, id)
	return nil
}

func (r *resumeRepo) FindByID(_ context.Context, id, ownerID uuid.UUID) (*resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.resumes[id]
	if !ok || existing.OwnerID != ownerID {
		return nil, apperror.NewNotFound("resume", id.String())
	}
	cp := *existing
	return &cp, nil
}

func (r *resumeRepo) FindAny(_ context.Context, id uuid.UUID) (*resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.resumes[id]
	if !ok {
		return nil, apperror.NewNotFound("resume", id.String())
	}
	cp := *existing
	return &cp, nil
}

func (r *resumeRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*resume.Resume, 0)
	for _, res := range r.resumes {
		if res.OwnerID == ownerID {
			cp := *res
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastUpdated.After(out[j].LastUpdated) })
	return out, nil
}

// projectRepo

type projectRepo Store

func (r *projectRepo) Save(_ context.Context, p *resume.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *p
	r.projects = append(r.projects, &cp)
	return nil
}

func (r *projectRepo) Update(_ context.Context, p *resume.Project, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.projects {
		owner, ok := (*Store)(r).ownerOf(existing.ResumeID)
		if existing.ID == p.ID && ok && owner == ownerID {
			cp := *p
			r.projects[i] = &cp
			return nil
		}
	}
	return apperror.NewNotFound("project", p.ID.String())
}

func (r *projectRepo) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.projects {
		owner, ok := (*Store)(r).ownerOf(existing.ResumeID)
		if existing.ID == id && ok && owner == ownerID {
			r.projects = append(r.projects[:i], r.projects[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("project", id.String())
}

func (r *projectRepo) FindByID(_ context.Context, id, ownerID uuid.UUID) (*resume.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.projects {
		owner, ok := (*Store)(r).ownerOf(existing.ResumeID)
		if existing.ID == id && ok && owner == ownerID {
			cp := *existing
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("project", id.String())
}

func (r *projectRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*resume.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*resume.Project, 0)
	for _, p := range r.projects {
		if owner, ok := (*Store)(r).ownerOf(p.ResumeID); ok && owner == ownerID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *projectRepo) ListByResume(_ context.Context, resumeID uuid.UUID) ([]*resume.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*resume.Project, 0)
	for _, p := range r.projects {
		if p.ResumeID == resumeID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

// experienceRepo

type experienceRepo Store

func (r *experienceRepo) Save(_ context.Context, e *resume.Experience) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.experiences = append(r.experiences, &cp)
	return nil
}

func (r *experienceRepo) Update(_ context.Context, e *resume.Experience, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.experiences {
		owner, ok := (*Store)(r).ownerOf(existing.ResumeID)
		if existing.ID == e.ID && ok && owner == ownerID {
			cp := *e
			r.experiences[i] = &cp
			return nil
		}
	}
	return apperror.NewNotFound("experience", e.ID.String())
}

func (r *experienceRepo) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.experiences {
		owner, ok := (*Store)(r).ownerOf(existing.ResumeID)
		if existing.ID == id && ok && owner == ownerID {
			r.experiences = append(r.experiences[:i], r.experiences[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("experience", id.String())
}

func (r *experienceRepo) FindByID(_ context.Context, id, ownerID uuid.UUID) (*resume.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.experiences {
		owner, ok := (*Store)(r).ownerOf(existing.ResumeID)
		if existing.ID == id && ok && owner == ownerID {
			cp := *existing
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("experience", id.String())
}

func (r *experienceRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*resume.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*resume.Experience, 0)
	for _, e := range r.experiences {
		if owner, ok := (*Store)(r).ownerOf(e.ResumeID); ok && owner == ownerID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *experienceRepo) ListByResume(_ context.Context, resumeID uuid.UUID) ([]*resume.Experience, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*resume.Experience, 0)
	for _, e := range r.experiences {
		if e.ResumeID == resumeID {
			cp := *e
			out = append(out, &cp)
		}
	}
	// Most recent role first, matching the SQL ordering.
	sort.Slice(out, func(i, j int) bool { return out[i].StartDate.After(out[j].StartDate) })
	return out, nil
}

// educationRepo

type educationRepo Store

func (r *educationRepo) Save(_ context.Context, e *resume.Education) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *e
	r.educations = append(r.educations, &cp)
	return nil
}

func (r *educationRepo) Update(_ context.Context, e *resume.Education, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.educations {
		owner, ok := (*Store)(r).ownerOf(existing.ResumeID)
		if existing.ID == e.ID && ok && owner == ownerID {
			cp := *e
			r.educations[i] = &cp
			return nil
		}
	}
	return apperror.NewNotFound("education", e.ID.String())
}

func (r *educationRepo) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.educations {
		owner, ok := (*Store)(r).ownerOf(existing.ResumeID)
		if existing.ID == id && ok && owner == ownerID {
			r.educations = append(r.educations[:i], r.educations[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("education", id.String())
}

func (r *educationRepo) FindByID(_ context.Context, id, ownerID uuid.UUID) (*resume.Education, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.educations {
		owner, ok := (*Store)(r).ownerOf(existing.ResumeID)
		if existing.ID == id && ok && owner == ownerID {
			cp := *existing
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("education", id.String())
}

func (r *educationRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*resume.Education, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*resume.Education, 0)
	for _, e := range r.educations {
		if owner, ok := (*Store)(r).ownerOf(e.ResumeID); ok && owner == ownerID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *educationRepo) ListByResume(_ context.Context, resumeID uuid.UUID) ([]*resume.Education, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*resume.Education, 0)
	for _, e := range r.educations {
		if e.ResumeID == resumeID {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

// skillRepo

type skillRepo Store

func (r *skillRepo) Save(_ context.Context, s *resume.Skill) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.skills = append(r.skills, &cp)
	return nil
}

func (r *skillRepo) Update(_ context.Context, s *resume.Skill, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.skills {
		owner, ok := (*Store)(r).ownerOf(existing.ResumeID)
		if existing.ID == s.ID && ok && owner == ownerID {
			cp := *s
			r.skills[i] = &cp
			return nil
		}
	}
	return apperror.NewNotFound("skill", s.ID.String())
}

func (r *skillRepo) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.skills {
		owner, ok := (*Store)(r).ownerOf(existing.ResumeID)
		if existing.ID == id && ok && owner == ownerID {
			r.skills = append(r.skills[:i], r.skills[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("skill", id.String())
}

func (r *skillRepo) FindByID(_ context.Context, id, ownerID uuid.UUID) (*resume.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.skills {
		owner, ok := (*Store)(r).ownerOf(existing.ResumeID)
		if existing.ID == id && ok && owner == ownerID {
			cp := *existing
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("skill", id.String())
}

func (r *skillRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*resume.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*resume.Skill, 0)
	for _, s := range r.skills {
		if owner, ok := (*Store)(r).ownerOf(s.ResumeID); ok && owner == ownerID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *skillRepo) ListByResume(_ context.Context, resumeID uuid.UUID) ([]*resume.Skill, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*resume.Skill, 0)
	for _, s := range r.skills {
		if s.ResumeID == resumeID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

// achievementRepo

type achievementRepo Store

func (r *achievementRepo) Save(_ context.Context, a *resume.Achievement) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *a
	r.achievements = append(r.achievements, &cp)
	return nil
}

func (r *achievementRepo) Update(_ context.Context, a *resume.Achievement, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.achievements {
		owner, ok := (*Store)(r).ownerOf(existing.ResumeID)
		if existing.ID == a.ID && ok && owner == ownerID {
			cp := *a
			r.achievements[i] = &cp
			return nil
		}
	}
	return apperror.NewNotFound("achievement", a.ID.String())
}

func (r *achievementRepo) Delete(_ context.Context, id, ownerID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.achievements {
		owner, ok := (*Store)(r).ownerOf(existing.ResumeID)
		if existing.ID == id && ok && owner == ownerID {
			r.achievements = append(r.achievements[:i], r.achievements[i+1:]...)
			return nil
		}
	}
	return apperror.NewNotFound("achievement", id.String())
}

func (r *achievementRepo) FindByID(_ context.Context, id, ownerID uuid.UUID) (*resume.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.achievements {
		owner, ok := (*Store)(r).ownerOf(existing.ResumeID)
		if existing.ID == id && ok && owner == ownerID {
			cp := *existing
			return &cp, nil
		}
	}
	return nil, apperror.NewNotFound("achievement", id.String())
}

func (r *achievementRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*resume.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*resume.Achievement, 0)
	for _, a := range r.achievements {
		if owner, ok := (*Store)(r).ownerOf(a.ResumeID); ok && owner == ownerID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *achievementRepo) ListByResume(_ context.Context, resumeID uuid.UUID) ([]*resume.Achievement, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*resume.Achievement, 0)
	for _, a := range r.achievements {
		if a.ResumeID == resumeID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}
