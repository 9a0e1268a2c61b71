package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID          uuid.UUID  `json:"id"`
	ResumeID    uuid.UUID  `json:"resume"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	TechStack   string     `json:"tech_stack"`
	Link        *string    `json:"link"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type ProjectRepository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project, ownerID uuid.UUID) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Project, error)
	ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*Project, error)
}
