package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

var skillColumns = []string{
	"id", "owner_id", "name", "category", "proficiency_level",
	"years_experience", "is_featured", "created_at",
}

func scanSkill(row pgx.Row) (*skill.Skill, error) {
	s := &skill.Skill{}
	err := row.Scan(
		&s.ID,
		&s.OwnerID,
		&s.Name,
		&s.Category,
		&s.ProficiencyLevel,
		&s.YearsExperience,
		&s.IsFeatured,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("skill", "")
		}
		return nil, apperror.NewInternal("failed to scan skill row", err)
	}
	return s, nil
}

func scanSkills(rows pgx.Rows) ([]*skill.Skill, error) {
	defer rows.Close()
	skills := make([]*skill.Skill, 0)

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

func (r *postgresSkillRepo) Save(ctx context.Context, s *skill.Skill) error {
	sql, args, err := psql.Insert("skills").
		Columns(skillColumns...).
		Values(s.ID, s.OwnerID, s.Name, s.Category, s.ProficiencyLevel,
			s.YearsExperience, s.IsFeatured, s.CreatedAt).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert skill query", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to save skill", err)
	}
	return nil
}

func (r *postgresSkillRepo) list(ctx context.Context, where sq.Sqlizer) ([]*skill.Skill, error) {
	sql, args, err := psql.Select(skillColumns...).
		From("skills").
		Where(where).
		OrderBy("category", "name", "id").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list skills query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}
	return scanSkills(rows)
}

func (r *postgresSkillRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	return r.list(ctx, sq.Eq{"owner_id": ownerID})
}

func (r *postgresSkillRepo) ListFeaturedByOwner(ctx context.Context, ownerID uuid.UUID) ([]*skill.Skill, error) {
	return r.list(ctx, sq.Eq{"owner_id": ownerID, "is_featured": true})
}

func (r *postgresSkillRepo) ListCategoriesByOwner(ctx context.Context, ownerID uuid.UUID) ([]string, error) {
	sql, args, err := psql.Select("DISTINCT category").
		From("skills").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("category").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build skill categories query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skill categories", err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, apperror.NewInternal("failed to scan skill category", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill categories", err)
	}
	return categories, nil
}

func (r *postgresSkillRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return countByOwner(ctx, r.db, "skills", ownerID)
}
