package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

var educationColumns = []string{
	"id", "owner_id", "institution", "degree", "field_of_study",
	"start_date", "end_date", "gpa", "description", "created_at",
}

// GPA goes through decimal.NullDecimal's sql.Scanner / driver.Valuer, so
// numeric(3,2) round-trips without float rounding.
func scanEducation(row pgx.Row) (*education.Education, error) {
	e := &education.Education{}
	err := row.Scan(
		&e.ID,
		&e.OwnerID,
		&e.Institution,
		&e.Degree,
		&e.FieldOfStudy,
		&e.StartDate,
		&e.EndDate,
		&e.GPA,
		&e.Description,
		&e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("education", "")
		}
		return nil, apperror.NewInternal("failed to scan education row", err)
	}
	return e, nil
}

func scanEducations(rows pgx.Rows) ([]*education.Education, error) {
	defer rows.Close()
	items := make([]*education.Education, 0)

	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return items, nil
}

func (r *postgresEducationRepo) Save(ctx context.Context, e *education.Education) error {
	e.NormalizeGPA()
	if err := e.Validate(); err != nil {
		return apperror.NewInvalidInput(err.Error(), err)
	}

	sql, args, err := psql.Insert("educations").
		Columns(educationColumns...).
		Values(e.ID, e.OwnerID, e.Institution, e.Degree, e.FieldOfStudy,
			e.StartDate, e.EndDate, e.GPA, e.Description, e.CreatedAt).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert education query", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to save education", err)
	}
	return nil
}

func (r *postgresEducationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*education.Education, error) {
	sql, args, err := psql.Select(educationColumns...).
		From("educations").
		Where(sq.Eq{"owner_id": ownerID}).
		OrderBy("start_date DESC NULLS LAST", "created_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list education query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education", err)
	}
	return scanEducations(rows)
}

func (r *postgresEducationRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return countByOwner(ctx, r.db, "educations", ownerID)
}
