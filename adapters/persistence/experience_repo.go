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

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, log logger.Logger) resume.ExperienceRepository {
	return &postgresExperienceRepo{db: db, logger: log}
}

const experienceColumns = "e.id, e.resume_id, e.company, e.role, e.start_date, e.end_date, e.description"

func scanExperience(row pgx.Row) (*resume.Experience, error) {
	e := &resume.Experience{}
	err := row.Scan(&e.ID, &e.ResumeID, &e.Company, &e.Role, &e.StartDate, &e.EndDate, &e.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("experience", "")
		}
		return nil, apperror.NewInternal("failed to scan experience row", err)
	}
	return e, nil
}

func scanExperiences(rows pgx.Rows) ([]*resume.Experience, error) {
	defer rows.Close()
	experiences := make([]*resume.Experience, 0)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating experience rows", err)
	}
	return experiences, nil
}

func (r *postgresExperienceRepo) Save(ctx context.Context, e *resume.Experience) error {
	query := `
		INSERT INTO experiences (id, resume_id, company, role, start_date, end_date, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.ResumeID, e.Company, e.Role, e.StartDate, e.EndDate, e.Description,
	)
	if err != nil {
		return apperror.NewInternal("failed to save experience", err)
	}
	return nil
}

func (r *postgresExperienceRepo) Update(ctx context.Context, e *resume.Experience, ownerID uuid.UUID) error {
	query := `
		UPDATE experiences SET
			resume_id = $2, company = $3, role = $4, start_date = $5,
			end_date = $6, description = $7
		WHERE id = $1
		  AND resume_id IN (SELECT id FROM resumes WHERE owner_id = $8)
	`
	cmdTag, err := r.db.Exec(ctx, query,
		e.ID, e.ResumeID, e.Company, e.Role, e.StartDate, e.EndDate, e.Description, ownerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("experience", e.ID.String())
	}
	return nil
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `
		DELETE FROM experiences
		WHERE id = $1
		  AND resume_id IN (SELECT id FROM resumes WHERE owner_id = $2)
	`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("experience", id.String())
	}
	return nil
}

func (r *postgresExperienceRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*resume.Experience, error) {
	query := `
		SELECT ` + experienceColumns + `
		FROM experiences e
		JOIN resumes r ON r.id = e.resume_id
		WHERE e.id = $1 AND r.owner_id = $2
	`
	return scanExperience(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *postgresExperienceRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*resume.Experience, error) {
	builder := psql.Select(experienceColumns).
		From("experiences e").
		Join("resumes r ON r.id = e.resume_id").
		Where(sq.Eq{"r.owner_id": ownerID}).
		OrderBy("e.start_date DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list experiences query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experiences by owner", err)
	}
	return scanExperiences(rows)
}

// ListByResume orders by start date descending so callers see the most
// recent roles first.
func (r *postgresExperienceRepo) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*resume.Experience, error) {
	builder := psql.Select(experienceColumns).
		From("experiences e").
		Where(sq.Eq{"e.resume_id": resumeID}).
		OrderBy("e.start_date DESC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list experiences query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experiences by resume", err)
	}
	return scanExperiences(rows)
}
