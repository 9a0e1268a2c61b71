package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khanhduong/smartresume/internal/domain/resume"
	"github.com/khanhduong/smartresume/pkg/apperror"
	"github.com/khanhduong/smartresume/pkg/logger"
)

type postgresAchievementRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAchievementRepo(db *pgxpool.Pool, log logger.Logger) resume.AchievementRepository {
	return &postgresAchievementRepo{db: db, logger: log}
}

const achievementColumns = "a.id, a.resume_id, a.title, a.date, a.issuer, a.proof_url, a.description"

func scanAchievement(row pgx.Row) (*resume.Achievement, error) {
	a := &resume.Achievement{}
	err := row.Scan(&a.ID, &a.ResumeID, &a.Title, &a.Date, &a.Issuer, &a.ProofURL, &a.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("achievement", "")
		}
		return nil, apperror.NewInternal("failed to scan achievement row", err)
	}
	return a, nil
}

func scanAchievements(rows pgx.Rows) ([]*resume.Achievement, error) {
	defer rows.Close()
	achievements := make([]*resume.Achievement, 0)
	for rows.Next() {
		a, err := scanAchievement(rows)
		if err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating achievement rows", err)
	}
	return achievements, nil
}

func (r *postgresAchievementRepo) Save(ctx context.Context, a *resume.Achievement) error {
	query := `
		INSERT INTO achievements (id, resume_id, title, date, issuer, proof_url, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.ResumeID, a.Title, a.Date, a.Issuer, a.ProofURL, a.Description,
	)
	if err != nil {
		return apperror.NewInternal("failed to save achievement", err)
	}
	return nil
}

func (r *postgresAchievementRepo) Update(ctx context.Context, a *resume.Achievement, ownerID uuid.UUID) error {
	query := `
		UPDATE achievements SET
			resume_id = $2, title = $3, date = $4, issuer = $5,
			proof_url = $6, description = $7
		WHERE id = $1
		  AND resume_id IN (SELECT id FROM resumes WHERE owner_id = $8)
	`
	cmdTag, err := r.db.Exec(ctx, query,
		a.ID, a.ResumeID, a.Title, a.Date, a.Issuer, a.ProofURL, a.Description, ownerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update achievement", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("achievement", a.ID.String())
	}
	return nil
}

func (r *postgresAchievementRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `
		DELETE FROM achievements
		WHERE id = $1
		  AND resume_id IN (SELECT id FROM resumes WHERE owner_id = $2)
	`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete achievement", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("achievement", id.String())
	}
	return nil
}

func (r *postgresAchievementRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*resume.Achievement, error) {
	query := `
		SELECT ` + achievementColumns + `
		FROM achievements a
		JOIN resumes r ON r.id = a.resume_id
		WHERE a.id = $1 AND r.owner_id = $2
	`
	return scanAchievement(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *postgresAchievementRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*resume.Achievement, error) {
	builder := psql.Select(achievementColumns).
		From("achievements a").
		Join("resumes r ON r.id = a.resume_id").
		Where(sq.Eq{"r.owner_id": ownerID}).
		OrderBy("a.created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list achievements query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query achievements by owner", err)
	}
	return scanAchievements(rows)
}

func (r *postgresAchievementRepo) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*resume.Achievement, error) {
	builder := psql.Select(achievementColumns).
		From("achievements a").
		Where(sq.Eq{"a.resume_id": resumeID}).
		OrderBy("a.created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list achievements query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query achievements by resume", err)
	}
	return scanAchievements(rows)
}
