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

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, log logger.Logger) resume.EducationRepository {
	return &postgresEducationRepo{db: db, logger: log}
}

const educationColumns = "e.id, e.resume_id, e.institute, e.degree, e.start_date, e.end_date, e.details"

func scanEducation(row pgx.Row) (*resume.Education, error) {
	e := &resume.Education{}
	err := row.Scan(&e.ID, &e.ResumeID, &e.Institute, &e.Degree, &e.StartDate, &e.EndDate, &e.Details)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("education", "")
		}
		return nil, apperror.NewInternal("failed to scan education row", err)
	}
	return e, nil
}

func scanEducations(rows pgx.Rows) ([]*resume.Education, error) {
	defer rows.Close()
	educations := make([]*resume.Education, 0)
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		educations = append(educations, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return educations, nil
}

func (r *postgresEducationRepo) Save(ctx context.Context, e *resume.Education) error {
	query := `
		INSERT INTO educations (id, resume_id, institute, degree, start_date, end_date, details)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query,
		e.ID, e.ResumeID, e.Institute, e.Degree, e.StartDate, e.EndDate, e.Details,
	)
	if err != nil {
		return apperror.NewInternal("failed to save education", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e *resume.Education, ownerID uuid.UUID) error {
	query := `
		UPDATE educations SET
			resume_id = $2, institute = $3, degree = $4, start_date = $5,
			end_date = $6, details = $7
		WHERE id = $1
		  AND resume_id IN (SELECT id FROM resumes WHERE owner_id = $8)
	`
	cmdTag, err := r.db.Exec(ctx, query,
		e.ID, e.ResumeID, e.Institute, e.Degree, e.StartDate, e.EndDate, e.Details, ownerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", e.ID.String())
	}
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `
		DELETE FROM educations
		WHERE id = $1
		  AND resume_id IN (SELECT id FROM resumes WHERE owner_id = $2)
	`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("education", id.String())
	}
	return nil
}

func (r *postgresEducationRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*resume.Education, error) {
	query := `
		SELECT ` + educationColumns + `
		FROM educations e
		JOIN resumes r ON r.id = e.resume_id
		WHERE e.id = $1 AND r.owner_id = $2
	`
	return scanEducation(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *postgresEducationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*resume.Education, error) {
	builder := psql.Select(educationColumns).
		From("educations e").
		Join("resumes r ON r.id = e.resume_id").
		Where(sq.Eq{"r.owner_id": ownerID}).
		OrderBy("e.created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list educations query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query educations by owner", err)
	}
	return scanEducations(rows)
}

func (r *postgresEducationRepo) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*resume.Education, error) {
	builder := psql.Select(educationColumns).
		From("educations e").
		Where(sq.Eq{"e.resume_id": resumeID}).
		OrderBy("e.created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list educations query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query educations by resume", err)
	}
	return scanEducations(rows)
}
