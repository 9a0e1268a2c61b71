package persistence

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khanhduong/smartresume/internal/domain/resume"
	"github.com/khanhduong/smartresume/pkg/apperror"
	"github.com/khanhduong/smartresume/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type postgresResumeRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresResumeRepo(db *pgxpool.Pool, log logger.Logger) resume.Repository {
	return &postgresResumeRepo{db: db, logger: log}
}

const resumeColumns = "id, owner_id, title, summary_text, last_updated"

func scanResume(row pgx.Row) (*resume.Resume, error) {
	r := &resume.Resume{}
	err := row.Scan(&r.ID, &r.OwnerID, &r.Title, &r.SummaryText, &r.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("resume", "")
		}
		return nil, apperror.NewInternal("failed to scan resume row", err)
	}
	return r, nil
}

func (r *postgresResumeRepo) Save(ctx context.Context, res *resume.Resume) error {
	query := `
		INSERT INTO resumes (id, owner_id, title, summary_text, last_updated)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, res.ID, res.OwnerID, res.Title, res.SummaryText, res.LastUpdated)
	if err != nil {
		return apperror.NewInternal("failed to save resume", err)
	}
	return nil
}

func (r *postgresResumeRepo) Update(ctx context.Context, res *resume.Resume) error {
	query := `
		UPDATE resumes SET title = $2, last_updated = $3
		WHERE id = $1 AND owner_id = $4
	`
	cmdTag, err := r.db.Exec(ctx, query, res.ID, res.Title, res.LastUpdated, res.OwnerID)
	if err != nil {
		return apperror.NewInternal("failed to update resume", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("resume", res.ID.String())
	}
	return nil
}

func (r *postgresResumeRepo) UpdateSummary(ctx context.Context, id uuid.UUID, summary string, updatedAt time.Time) error {
	query := `UPDATE resumes SET summary_text = $2, last_updated = $3 WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id, summary, updatedAt)
	if err != nil {
		return apperror.NewInternal("failed to update resume summary", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("resume", id.String())
	}
	return nil
}

// Delete cascades to child records through the schema's foreign keys.
func (r *postgresResumeRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `DELETE FROM resumes WHERE id = $1 AND owner_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete resume", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("resume", id.String())
	}
	return nil
}

func (r *postgresResumeRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*resume.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1 AND owner_id = $2`
	return scanResume(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *postgresResumeRepo) FindAny(ctx context.Context, id uuid.UUID) (*resume.Resume, error) {
	query := `SELECT ` + resumeColumns + ` FROM resumes WHERE id = $1`
	return scanResume(r.db.QueryRow(ctx, query, id))
}

func (r *postgresResumeRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*resume.Resume, error) {
	builder := psql.Select(resumeColumns).
		From("resumes").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("last_updated DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list resumes query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query resumes", err)
	}
	defer rows.Close()

	resumes := make([]*resume.Resume, 0)
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		resumes = append(resumes, res)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating resume rows", err)
	}
	return resumes, nil
}
