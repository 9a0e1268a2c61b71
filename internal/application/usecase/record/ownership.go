// Package record implements the write and read paths for the five
// child record types hanging off a resume.
package record

import (
	"context"

	"github.com/google/uuid"

	"github.com/khanhduong/smartresume/internal/domain/resume"
	"github.com/khanhduong/smartresume/pkg/apperror"
)

// resolveOwnedResume is the single guard every child write path goes
// through. The client-supplied resume id is never trusted: the resume
// is resolved and its owner compared against the acting identity. A
// missing resume reports not-found; someone else's resume reports
// permission denied.
func resolveOwnedResume(ctx context.Context, resumes resume.Repository, resumeID, actorID uuid.UUID) (*resume.Resume, error) {
	r, err := resumes.FindAny(ctx, resumeID)
	if err != nil {
		return nil, err
	}
	if r.OwnerID != actorID {
		return nil, apperror.NewPermissionDenied("you can only add items to your own resumes")
	}
	return r, nil
}
