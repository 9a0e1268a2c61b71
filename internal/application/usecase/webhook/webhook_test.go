package webhook

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

func newIngestFixture(t *testing.T) (*testutil.Store, *IngestUseCase, *resume.Resume) {
	t.Helper()
	store := testutil.NewStore()

	r := &resume.Resume{ID: uuid.New(), OwnerID: uuid.New(), Title: "My Test Resume", LastUpdated: time.Now().UTC()}
	require.NoError(t, store.Resumes().Save(context.Background(), r))

	uc := NewIngestUseCase(store.Resumes(), store.Projects(), store.Achievements(), logger.NewNop())
	return store, uc, r
}

func TestIngestAchievement(t *testing.T) {
	store, uc, r := newIngestFixture(t)

	result, err := uc.Execute(context.Background(), IngestInput{
		Source:     "hackerrank",
		ExternalID: "evt-1",
		Type:       "Achievement",
		Data: map[string]any{
			"title":       "Gold Badge",
			"description": "Top 1% in algorithms",
			"date":        "2026-03-15",
			"proof_url":   "https://example.com/badge",
		},
		TargetResumeID: r.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, CreatedAchievement, result.Created)

	a, ok := result.Item.(*resume.Achievement)
	require.True(t, ok)
	assert.Equal(t, "Gold Badge", a.Title)
	assert.Equal(t, "Top 1% in algorithms", a.Description)
	// No issuer in the payload, so the source fills in.
	assert.Equal(t, "hackerrank", a.Issuer)
	require.NotNil(t, a.Date)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), *a.Date)
	require.NotNil(t, a.ProofURL)
	assert.Equal(t, "https://example.com/badge", *a.ProofURL)
	assert.Equal(t, 1, store.CountAchievements())
}

func TestIngestAchievementDefaults(t *testing.T) {
	_, uc, r := newIngestFixture(t)

	result, err := uc.Execute(context.Background(), IngestInput{
		Source:         "certbot",
		ExternalID:     "evt-2",
		Type:           "achievement",
		Data:           map[string]any{"date": "not-a-date"},
		TargetResumeID: r.ID,
	})

	require.NoError(t, err)
	a := result.Item.(*resume.Achievement)
	assert.Equal(t, "Achievement", a.Title)
	assert.Equal(t, "certbot", a.Issuer)
	// Unparseable dates are dropped, not rejected.
	assert.Nil(t, a.Date)
}

func TestIngestProject(t *testing.T) {
	store, uc, r := newIngestFixture(t)

	result, err := uc.Execute(context.Background(), IngestInput{
		Source:     "github",
		ExternalID: "evt-3",
		Type:       "PROJECT",
		Data: map[string]any{
			"title":       "smartresume",
			"description": "Resume builder API",
			"tech_stack":  "Go, PostgreSQL",
			"link":        "https://github.com/example/smartresume",
		},
		TargetResumeID: r.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, CreatedProject, result.Created)

	p := result.Item.(*resume.Project)
	assert.Equal(t, "smartresume", p.Title)
	assert.Equal(t, "Go, PostgreSQL", p.TechStack)
	require.NotNil(t, p.Link)
	assert.Equal(t, 1, store.CountProjects())
}

func TestIngestUnknownTypeFallsBack(t *testing.T) {
	store, uc, r := newIngestFixture(t)

	result, err := uc.Execute(context.Background(), IngestInput{
		Source:         "coursera",
		ExternalID:     "evt-4",
		Type:           "certificate",
		Data:           map[string]any{"course": "Distributed Systems"},
		TargetResumeID: r.ID,
	})

	require.NoError(t, err)
	assert.Equal(t, CreatedAchievementFallback, result.Created)

	a := result.Item.(*resume.Achievement)
	assert.Equal(t, "Imported from coursera", a.Title)
	assert.Equal(t, "coursera", a.Issuer)
	// The raw payload survives as a JSON dump.
	assert.Contains(t, a.Description, `"course":"Distributed Systems"`)
	assert.Equal(t, 1, store.CountAchievements())
	assert.Equal(t, 0, store.CountProjects())
}

func TestIngestFallbackKeepsPayloadTitle(t *testing.T) {
	_, uc, r := newIngestFixture(t)

	result, err := uc.Execute(context.Background(), IngestInput{
		Source:         "coursera",
		ExternalID:     "evt-5",
		Type:           "certificate",
		Data:           map[string]any{"title": "ML Specialization"},
		TargetResumeID: r.ID,
	})

	require.NoError(t, err)
	a := result.Item.(*resume.Achievement)
	assert.Equal(t, "ML Specialization", a.Title)
}

func TestIngestMissingResume(t *testing.T) {
	store, uc, _ := newIngestFixture(t)

	_, err := uc.Execute(context.Background(), IngestInput{
		Source:         "github",
		ExternalID:     "evt-6",
		Type:           "project",
		Data:           map[string]any{"title": "ghost"},
		TargetResumeID: uuid.New(),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, 0, store.CountProjects())
}

func TestIngestRepeatedDeliveryDuplicates(t *testing.T) {
	store, uc, r := newIngestFixture(t)

	in := IngestInput{
		Source:         "github",
		ExternalID:     "evt-7",
		Type:           "project",
		Data:           map[string]any{"title": "repeat"},
		TargetResumeID: r.ID,
	}

	_, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), in)
	require.NoError(t, err)

	// external_id does not deduplicate; delivery is at-least-once.
	assert.Equal(t, 2, store.CountProjects())
}
