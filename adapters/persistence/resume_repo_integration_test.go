package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/khanhduong/smartresume/internal/domain/resume"
	"github.com/khanhduong/smartresume/internal/domain/user"
	"github.com/khanhduong/smartresume/pkg/apperror"
	"github.com/khanhduong/smartresume/pkg/logger"
)

type ResumeRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer

	userRepo    user.Repository
	resumeRepo  resume.Repository
	projectRepo resume.ProjectRepository
	expRepo     resume.ExperienceRepository

	owner    *user.User
	stranger *user.User
}

func (s *ResumeRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	log := logger.NewNop()
	s.userRepo = NewPostgresUserRepo(s.dbPool)
	s.resumeRepo = NewPostgresResumeRepo(s.dbPool, log)
	s.projectRepo = NewPostgresProjectRepo(s.dbPool, log)
	s.expRepo = NewPostgresExperienceRepo(s.dbPool, log)

	s.owner = &user.User{ID: uuid.New(), Username: "owner", Email: "owner@example.com", PasswordHash: "hash"}
	s.stranger = &user.User{ID: uuid.New(), Username: "stranger", Email: "stranger@example.com", PasswordHash: "hash"}
	s.Require().NoError(s.userRepo.Save(ctx, s.owner))
	s.Require().NoError(s.userRepo.Save(ctx, s.stranger))
}

func (s *ResumeRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestResumeRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(ResumeRepoIntegrationTestSuite))
}

func (s *ResumeRepoIntegrationTestSuite) newResume(title string) *resume.Resume {
	r := &resume.Resume{
		ID:          uuid.New(),
		OwnerID:     s.owner.ID,
		Title:       title,
		LastUpdated: time.Now().UTC(),
	}
	s.Require().NoError(s.resumeRepo.Save(context.Background(), r))
	return r
}

func (s *ResumeRepoIntegrationTestSuite) Test_FindByID_IsOwnerScoped() {
	ctx := context.Background()
	r := s.newResume("Scoped")

	found, err := s.resumeRepo.FindByID(ctx, r.ID, s.owner.ID)
	s.NoError(err)
	s.Equal(r.Title, found.Title)

	_, err = s.resumeRepo.FindByID(ctx, r.ID, s.stranger.ID)
	s.True(errors.Is(err, apperror.ErrNotFound))

	// FindAny ignores ownership; the webhook path depends on that.
	found, err = s.resumeRepo.FindAny(ctx, r.ID)
	s.NoError(err)
	s.Equal(s.owner.ID, found.OwnerID)
}

func (s *ResumeRepoIntegrationTestSuite) Test_UpdateSummary() {
	ctx := context.Background()
	r := s.newResume("Summary Target")

	updatedAt := time.Now().UTC().Add(time.Minute).Truncate(time.Microsecond)
	s.NoError(s.resumeRepo.UpdateSummary(ctx, r.ID, "A generated summary.", updatedAt))

	found, err := s.resumeRepo.FindByID(ctx, r.ID, s.owner.ID)
	s.NoError(err)
	s.Require().NotNil(found.SummaryText)
	s.Equal("A generated summary.", *found.SummaryText)
	s.WithinDuration(updatedAt, found.LastUpdated, time.Second)
}

func (s *ResumeRepoIntegrationTestSuite) Test_ProjectOwnershipThroughResume() {
	ctx := context.Background()
	r := s.newResume("With Project")

	p := &resume.Project{
		ID:       uuid.New(),
		ResumeID: r.ID,
		Title:    "Test Project",
	}
	s.Require().NoError(s.projectRepo.Save(ctx, p))

	found, err := s.projectRepo.FindByID(ctx, p.ID, s.owner.ID)
	s.NoError(err)
	s.Equal("Test Project", found.Title)

	_, err = s.projectRepo.FindByID(ctx, p.ID, s.stranger.ID)
	s.True(errors.Is(err, apperror.ErrNotFound))

	err = s.projectRepo.Delete(ctx, p.ID, s.stranger.ID)
	s.True(errors.Is(err, apperror.ErrNotFound))
}

func (s *ResumeRepoIntegrationTestSuite) Test_DeleteResumeCascades() {
	ctx := context.Background()
	r := s.newResume("Doomed")

	p := &resume.Project{ID: uuid.New(), ResumeID: r.ID, Title: "Goes with it"}
	s.Require().NoError(s.projectRepo.Save(ctx, p))

	s.NoError(s.resumeRepo.Delete(ctx, r.ID, s.owner.ID))

	_, err := s.resumeRepo.FindByID(ctx, r.ID, s.owner.ID)
	s.True(errors.Is(err, apperror.ErrNotFound))

	_, err = s.projectRepo.FindByID(ctx, p.ID, s.owner.ID)
	s.True(errors.Is(err, apperror.ErrNotFound))
}

func (s *ResumeRepoIntegrationTestSuite) Test_ExperiencesOrderedByStartDateDesc() {
	ctx := context.Background()
	r := s.newResume("Ordered")

	older := &resume.Experience{
		ID: uuid.New(), ResumeID: r.ID,
		Company: "Old Corp", Role: "Junior",
		StartDate: time.Date(2019, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	newer := &resume.Experience{
		ID: uuid.New(), ResumeID: r.ID,
		Company: "New Corp", Role: "Senior",
		StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	s.Require().NoError(s.expRepo.Save(ctx, older))
	s.Require().NoError(s.expRepo.Save(ctx, newer))

	list, err := s.expRepo.ListByResume(ctx, r.ID)
	s.NoError(err)
	s.Require().Len(list, 2)
	s.Equal("New Corp", list[0].Company)
	s.Equal("Old Corp", list[1].Company)
}
