package resume

import (
	"context"

	"github.com/google/uuid"
)

type Skill struct {
	ID       uuid.UUID `json:"id"`
	ResumeID uuid.UUID `json:"resume"`
	Name     string    `json:"name"`
	Level    string    `json:"level"`
}

type SkillRepository interface {
	Save(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill, ownerID uuid.UUID) error
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
	FindByID(ctx context.Context, id, ownerID uuid.UUID) (*Skill, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Skill, error)
	// ListByResume returns skills in stored (insertion) order.
	ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*Skill, error)
}
