package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

var experienceColumns = []string{
	"id", "owner_id", "company", "position", "start_date", "end_date",
	"description", "technologies", "is_current", "created_at",
}

func scanExperience(row pgx.Row) (*experience.Experience, error) {
	e := &experience.Experience{}
	err := row.Scan(
		&e.ID,
		&e.OwnerID,
		&e.Company,
		&e.Position,
		&e.StartDate,
		&e.EndDate,
		&e.Description,
		&e.Technologies,
		&e.IsCurrent,
		&e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("experience", "")
		}
		return nil, apperror.NewInternal("failed to scan experience row", err)
	}
	return e, nil
}

func scanExperiences(rows pgx.Rows) ([]*experience.Experience, error) {
	defer rows.Close()
	items := make([]*experience.Experience, 0)

	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating experience rows", err)
	}
	return items, nil
}

func (r *postgresExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	sql, args, err := psql.Insert("experiences").
		Columns(experienceColumns...).
		Values(e.ID, e.OwnerID, e.Company, e.Position, e.StartDate, e.EndDate,
			e.Description, e.Technologies, e.IsCurrent, e.CreatedAt).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert experience query", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to save experience", err)
	}
	return nil
}

func (r *postgresExperienceRepo) list(ctx context.Context, where sq.Sqlizer) ([]*experience.Experience, error) {
	sql, args, err := psql.Select(experienceColumns...).
		From("experiences").
		Where(where).
		OrderBy("start_date DESC", "created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list experiences query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experiences", err)
	}
	return scanExperiences(rows)
}

func (r *postgresExperienceRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	return r.list(ctx, sq.Eq{"owner_id": ownerID})
}

func (r *postgresExperienceRepo) ListCurrentByOwner(ctx context.Context, ownerID uuid.UUID) ([]*experience.Experience, error) {
	return r.list(ctx, sq.Eq{"owner_id": ownerID, "is_current": true})
}

func (r *postgresExperienceRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return countByOwner(ctx, r.db, "experiences", ownerID)
}

// countByOwner counts rows of a dependent table belonging to one profile.
func countByOwner(ctx context.Context, db *pgxpool.Pool, table string, ownerID uuid.UUID) (int, error) {
	sql, args, err := psql.Select("COUNT(*)").From(table).Where(sq.Eq{"owner_id": ownerID}).ToSql()
	if err != nil {
		return 0, apperror.NewInternal("failed to build count query for "+table, err)
	}
	var n int
	if err := db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count "+table, err)
	}
	return n, nil
}
