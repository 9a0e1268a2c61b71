package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Education struct {
	ID        uuid.UUID  `json:"id"`
	ResumeID  uuid.UUID  `json:"resume"`
	Institute string     `json:"institute"`
	Degree    string     `json:"degree"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	Details   string     `json:"details"`
}

type EducationRepository interface {
	Save(ctx context.Context, e *Education) error
	Update(ctx context.Context, e *Education, ownerID uuid.UUID) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*Education, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Education, error)
	ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*Education, error)
}
