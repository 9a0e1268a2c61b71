package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID          uuid.UUID  `json:"id"`
	ResumeID    uuid.UUID  `json:"resume"`
	Company     string     `json:"company"`
	Role        string     `json:"role"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Description string     `json:"description"`
}

type ExperienceRepository interface {
	Save(ctx context.Context, e *Experience) error
	Update(ctx context.Context, e *Experience, ownerID uuid.UUID) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*Experience, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Experience, error)
	// ListByResume returns experiences ordered by start date descending,
	// most recent first.
	ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*Experience, error)
}
