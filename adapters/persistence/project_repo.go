package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

var projectColumns = []string{
	"id", "owner_id", "name", "description", "technologies", "github_url",
	"live_url", "image_url", "start_date", "end_date", "created_at",
}

func scanProject(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}
	err := row.Scan(
		&p.ID,
		&p.OwnerID,
		&p.Name,
		&p.Description,
		&p.Technologies,
		&p.GithubURL,
		&p.LiveURL,
		&p.ImageURL,
		&p.StartDate,
		&p.EndDate,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("project", "")
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}
	return p, nil
}

func scanProjects(rows pgx.Rows) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)

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

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	sql, args, err := psql.Insert("projects").
		Columns(projectColumns...).
		Values(p.ID, p.OwnerID, p.Name, p.Description, p.Technologies, p.GithubURL,
			p.LiveURL, p.ImageURL, p.StartDate, p.EndDate, p.CreatedAt).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert project query", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	sql, args, err := psql.Select(projectColumns...).
		From("projects").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("start_date DESC NULLS LAST", "created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build find by owner query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects by owner", err)
	}
	return scanProjects(rows)
}

func (r *postgresProjectRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return countByOwner(ctx, r.db, "projects", ownerID)
}
