package record

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhduong/smartresume/internal/domain/resume"
	"github.com/khanhduong/smartresume/internal/testutil"
	"github.com/khanhduong/smartresume/pkg/apperror"
	"github.com/khanhduong/smartresume/pkg/logger"
)

type recordFixture struct {
	store    *testutil.Store
	ownerID  uuid.UUID
	otherID  uuid.UUID
	resume   *resume.Resume
	foreign  *resume.Resume
	projects *ProjectUseCase
	skills   *SkillUseCase
}

func newRecordFixture(t *testing.T) *recordFixture {
	t.Helper()
	store := testutil.NewStore()
	ctx := context.Background()

	f := &recordFixture{
		store:   store,
		ownerID: uuid.New(),
		otherID: uuid.New(),
	}
	f.resume = &resume.Resume{ID: uuid.New(), OwnerID: f.ownerID, Title: "Mine", LastUpdated: time.Now().UTC()}
	f.foreign = &resume.Resume{ID: uuid.New(), OwnerID: f.otherID, Title: "Theirs", LastUpdated: time.Now().UTC()}
	require.NoError(t, store.Resumes().Save(ctx, f.resume))
	require.NoError(t, store.Resumes().Save(ctx, f.foreign))

	f.projects = NewProjectUseCase(store.Resumes(), store.Projects(), logger.NewNop())
	f.skills = NewSkillUseCase(store.Resumes(), store.Skills(), logger.NewNop())
	return f
}

func TestCreateProjectOnOwnResume(t *testing.T) {
	f := newRecordFixture(t)

	p, err := f.projects.Create(context.Background(), f.ownerID, ProjectInput{
		ResumeID: f.resume.ID,
		Title:    "Test Project",
	})

	require.NoError(t, err)
	assert.Equal(t, f.resume.ID, p.ResumeID)
	assert.Equal(t, 1, f.store.CountProjects())
}

func TestCreateProjectOnForeignResumeForbidden(t *testing.T) {
	f := newRecordFixture(t)

	_, err := f.projects.Create(context.Background(), f.ownerID, ProjectInput{
		ResumeID: f.foreign.ID,
		Title:    "Sneaky",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrPermission))
	assert.Equal(t, 0, f.store.CountProjects())
}

func TestCreateProjectOnMissingResumeNotFound(t *testing.T) {
	f := newRecordFixture(t)

	_, err := f.projects.Create(context.Background(), f.ownerID, ProjectInput{
		ResumeID: uuid.New(),
		Title:    "Ghost",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, 0, f.store.CountProjects())
}

func TestCreateProjectRequiresTitle(t *testing.T) {
	f := newRecordFixture(t)

	_, err := f.projects.Create(context.Background(), f.ownerID, ProjectInput{ResumeID: f.resume.ID})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestGetForeignProjectNotFound(t *testing.T) {
	f := newRecordFixture(t)
	ctx := context.Background()

	p, err := f.projects.Create(ctx, f.ownerID, ProjectInput{ResumeID: f.resume.ID, Title: "Mine"})
	require.NoError(t, err)

	// The other account cannot see it, let alone delete it.
	_, err = f.projects.Get(ctx, f.otherID, p.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))

	err = f.projects.Delete(ctx, f.otherID, p.ID)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, 1, f.store.CountProjects())
}

func TestUpdateProjectReparentToForeignResumeForbidden(t *testing.T) {
	f := newRecordFixture(t)
	ctx := context.Background()

	p, err := f.projects.Create(ctx, f.ownerID, ProjectInput{ResumeID: f.resume.ID, Title: "Mine"})
	require.NoError(t, err)

	_, err = f.projects.Update(ctx, f.ownerID, p.ID, ProjectInput{
		ResumeID: f.foreign.ID,
		Title:    "Moved",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrPermission))

	kept, err := f.projects.Get(ctx, f.ownerID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, f.resume.ID, kept.ResumeID)
	assert.Equal(t, "Mine", kept.Title)
}

func TestExperienceRequiresStartDate(t *testing.T) {
	f := newRecordFixture(t)
	uc := NewExperienceUseCase(f.store.Resumes(), f.store.Experiences(), logger.NewNop())

	_, err := uc.Create(context.Background(), f.ownerID, ExperienceInput{
		ResumeID: f.resume.ID,
		Company:  "Acme",
		Role:     "Engineer",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrInvalidInput))
}

func TestSkillCRUD(t *testing.T) {
	f := newRecordFixture(t)
	ctx := context.Background()

	s, err := f.skills.Create(ctx, f.ownerID, SkillInput{ResumeID: f.resume.ID, Name: "Go", Level: "Advanced"})
	require.NoError(t, err)

	updated, err := f.skills.Update(ctx, f.ownerID, s.ID, SkillInput{ResumeID: f.resume.ID, Name: "Go", Level: "Expert"})
	require.NoError(t, err)
	assert.Equal(t, "Expert", updated.Level)

	list, err := f.skills.List(ctx, f.ownerID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, f.skills.Delete(ctx, f.ownerID, s.ID))

	list, err = f.skills.List(ctx, f.ownerID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
