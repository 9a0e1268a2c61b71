package http

import (
	"time"

	"github.com/google/uuid"

	resumeUC "github.com/khanhduong/smartresume/internal/application/usecase/resume"
	"github.com/khanhduong/smartresume/internal/domain/resume"
	"github.com/khanhduong/smartresume/internal/domain/user"
	"github.com/khanhduong/smartresume/pkg/apperror"
)

const dateLayout = "2006-01-02"

// parseDate accepts "" as absent. Dates travel as YYYY-MM-DD strings.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, apperror.NewInvalidInput("invalid date, expected YYYY-MM-DD", err)
	}
	return &t, nil
}

func parseResumeRef(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, apperror.NewInvalidInput("resume reference is required", nil)
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, apperror.NewInvalidInput("invalid resume reference", err)
	}
	return id, nil
}

// User DTOs

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio"`
}

type UserDTO struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Bio       string    `json:"bio"`
}

func ToUserDTO(u *user.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Bio:       u.Bio,
	}
}

// Resume DTOs

type CreateResumeRequest struct {
	Title string `json:"title"`
}

type UpdateResumeRequest struct {
	Title string `json:"title"`
}

type ResumeDTO struct {
	ID           uuid.UUID             `json:"id"`
	Owner        uuid.UUID             `json:"owner"`
	Title        string                `json:"title"`
	SummaryText  *string               `json:"summary_text"`
	LastUpdated  time.Time             `json:"last_updated"`
	Projects     []*resume.Project     `json:"projects"`
	Experiences  []*resume.Experience  `json:"experiences"`
	Educations   []*resume.Education   `json:"educations"`
	Skills       []*resume.Skill       `json:"skills"`
	Achievements []*resume.Achievement `json:"achievements"`
}

func ToResumeDTO(d *resumeUC.ResumeDetail) ResumeDTO {
	return ResumeDTO{
		ID:           d.Resume.ID,
		Owner:        d.Resume.OwnerID,
		Title:        d.Resume.Title,
		SummaryText:  d.Resume.SummaryText,
		LastUpdated:  d.Resume.LastUpdated,
		Projects:     d.Projects,
		Experiences:  d.Experiences,
		Educations:   d.Educations,
		Skills:       d.Skills,
		Achievements: d.Achievements,
	}
}

// Child record requests. Each carries the parent resume reference that
// the use case re-validates against the acting identity.

type ProjectRequest struct {
	Resume      string  `json:"resume"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	TechStack   string  `json:"tech_stack"`
	Link        *string `json:"link"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
}

type ExperienceRequest struct {
	Resume      string `json:"resume"`
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type EducationRequest struct {
	Resume    string `json:"resume"`
	Institute string `json:"institute"`
	Degree    string `json:"degree"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Details   string `json:"details"`
}

type SkillRequest struct {
	Resume string `json:"resume"`
	Name   string `json:"name"`
	Level  string `json:"level"`
}

type AchievementRequest struct {
	Resume      string  `json:"resume"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	Issuer      string  `json:"issuer"`
	ProofURL    *string `json:"proof_url"`
	Description string  `json:"description"`
}
