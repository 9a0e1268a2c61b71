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

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, log logger.Logger) resume.SkillRepository {
	return &postgresSkillRepo{db: db, logger: log}
}

const skillColumns = "s.id, s.resume_id, s.name, s.level"

func scanSkill(row pgx.Row) (*resume.Skill, error) {
	s := &resume.Skill{}
	err := row.Scan(&s.ID, &s.ResumeID, &s.Name, &s.Level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("skill", "")
		}
		return nil, apperror.NewInternal("failed to scan skill row", err)
	}
	return s, nil
}

func scanSkills(rows pgx.Rows) ([]*resume.Skill, error) {
	defer rows.Close()
	skills := make([]*resume.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}
	return skills, nil
}

func (r *postgresSkillRepo) Save(ctx context.Context, s *resume.Skill) error {
	query := `
		INSERT INTO skills (id, resume_id, name, level)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, s.ID, s.ResumeID, s.Name, s.Level)
	if err != nil {
		return apperror.NewInternal("failed to save skill", err)
	}
	return nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, s *resume.Skill, ownerID uuid.UUID) error {
	query := `
		UPDATE skills SET resume_id = $2, name = $3, level = $4
		WHERE id = $1
		  AND resume_id IN (SELECT id FROM resumes WHERE owner_id = $5)
	`
	cmdTag, err := r.db.Exec(ctx, query, s.ID, s.ResumeID, s.Name, s.Level, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to update skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", s.ID.String())
	}
	return nil
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	query := `
		DELETE FROM skills
		WHERE id = $1
		  AND resume_id IN (SELECT id FROM resumes WHERE owner_id = $2)
	`
	cmdTag, err := r.db.Exec(ctx, query, id, ownerID)
	if err != nil {
		return apperror.NewInternal("failed to delete skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("skill", id.String())
	}
	return nil
}

func (r *postgresSkillRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*resume.Skill, error) {
	query := `
		SELECT ` + skillColumns + `
		FROM skills s
		JOIN resumes r ON r.id = s.resume_id
		WHERE s.id = $1 AND r.owner_id = $2
	`
	return scanSkill(r.db.QueryRow(ctx, query, id, ownerID))
}

func (r *postgresSkillRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*resume.Skill, error) {
	builder := psql.Select(skillColumns).
		From("skills s").
		Join("resumes r ON r.id = s.resume_id").
		Where(sq.Eq{"r.owner_id": ownerID}).
		OrderBy("s.created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list skills query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills by owner", err)
	}
	return scanSkills(rows)
}

// ListByResume returns skills in insertion order, which is the stable
// order the summary generator relies on.
func (r *postgresSkillRepo) ListByResume(ctx context.Context, resumeID uuid.UUID) ([]*resume.Skill, error) {
	builder := psql.Select(skillColumns).
		From("skills s").
		Where(sq.Eq{"s.resume_id": resumeID}).
		OrderBy("s.created_at ASC")

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list skills query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills by resume", err)
	}
	return scanSkills(rows)
}
