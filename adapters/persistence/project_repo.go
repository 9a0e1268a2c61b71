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

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, log logger.Logger) resume.ProjectRepository {
	return &postgresProjectRepo{db: db, logger: log}
}

const projectColumns = "p.id, p.resume_id, p.title, p.description, p.tech_stack, p.link, p.start_date, p.end_date"

func scanProject(row pgx.Row) (*resume.Project, error) {
	p := &resume.Project{}
	err := row.Scan(&p.ID, &p.ResumeID, &p.Title, &p.Description, &p.TechStack, &p.Link, &p.StartDate, &p.EndDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}
	return p, nil
}

func scanProjects(rows pgx.Rows) ([]*resume.Project, error) {
	defer rows.Close()
	projects := make([]*resume.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *resume.Project) error {
	query := `
		INSERT INTO projects (id, resume_id, title, description, tech_stack, link, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.ResumeID, p.Title, p.Description, p.TechStack, p.Link, p.StartDate, p.EndDate,
	)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *resume.Project, ownerID uuid.UUID) error {
	query := `
		UPDATE projects SET
			resume_id = $2, title = $3, description = $4, tech_stack = $5,
			link = $6, start_date = $7, end_date = $8
		WHERE id = $1
		  AND resume_id IN (SELECT id FROM resumes WHERE owner_id = $9)
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.ResumeID, p.Title, p.Description, p.TechStack,
		p.Link, p.StartDate, p.EndDate, ownerID,
	)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", p.ID.String())
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `
		DELETE FROM projects
		WHERE id = $1
		  AND resume_id IN (SELECT id FROM resumes WHERE owner_id = $2)
	`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("project", id.String())
	}
	return nil
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*resume.Project, error) {
	query := `
		SELECT ` + projectColumns + `
		FROM projects p
		JOIN resumes r ON r.id = p.resume_id
		WHERE p.id = $1 AND r.owner_id = $2
	`
	return scanProject(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *postgresProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*resume.Project, error) {
	builder := psql.Select(projectColumns).
		From("projects p").
		Join("resumes r ON r.id = p.resume_id").
		Where(sq.Eq{"r.owner_id": ownerID}).
		OrderBy("p.created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects by owner", err)
	}
	return scanProjects(rows)
}

func (r *postgresProjectRepo) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*resume.Project, error) {
	builder := psql.Select(projectColumns).
		From("projects p").
		Where(sq.Eq{"p.resume_id": resumeID}).
		OrderBy("p.created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list projects query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects by resume", err)
	}
	return scanProjects(rows)
}
