package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Resume is the top-level user-owned aggregate. Child records (Project,
// Experience, Education, Skill, Achievement) belong to exactly one
// resume and are deleted with it.
type Resume struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Title       string    `json:"title"`
	SummaryText *string   `json:"summary_text"`
	LastUpdated time.Time `json:"last_updated"`
}

const DefaultTitle = "My Resume"

type Repository interface {
	Save(ctx context.Context, r *Resume) error
	// Update writes title changes. LastUpdated must advance on every call.
	Update(ctx context.Context, r *Resume) error
	// UpdateSummary persists a regenerated summary and bumps LastUpdated.
	UpdateSummary(ctx context.Context, id uuid.UUID, summary string, updatedAt time.Time) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	// FindByID is owner-scoped: asking for another owner's resume reports
	// not-found so its existence never leaks.
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*Resume, error)
	// FindAny resolves a resume with no owner scoping. Only the webhook
	// ingestor uses it; the webhook authenticates with a shared secret and
	// carries no user identity.
	FindAny(ctx context.Context, id uuid.UUID) (*Resume, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Resume, error)
}
