package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Achievement struct {
	ID          uuid.UUID  `json:"id"`
	ResumeID    uuid.UUID  `json:"resume"`
	Title       string     `json:"title"`
	Date        *time.Time `json:"date"`
	Issuer      string     `json:"issuer"`
	ProofURL    *string    `json:"proof_url"`
	Description string     `json:"description"`
}

type AchievementRepository interface {
	Save(ctx context.Context, a *Achievement) error
	Update(ctx context.Context, a *Achievement, ownerID uuid.UUID) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*Achievement, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Achievement, error)
	ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*Achievement, error)
}
