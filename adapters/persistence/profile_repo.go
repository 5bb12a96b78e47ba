package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	profileColumns = "id, full_name, email, phone, bio, profile_image, resume_url, is_active, created_at, updated_at"

	profilesEmailKey    = "profiles_email_key"
	profilesActiveIndex = "profiles_single_active_idx"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := row.Scan(
		&p.ID,
		&p.FullName,
		&p.Email,
		&p.Phone,
		&p.Bio,
		&p.ProfileImage,
		&p.ResumeURL,
		&p.IsActive,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "")
		}
		return nil, apperror.NewInternal("failed to scan profile row", err)
	}
	return p, nil
}

// profileWriteError maps unique violations on the profile table to Conflict.
func profileWriteError(err error, p *profile.Profile, action string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		switch pgErr.ConstraintName {
		case profilesActiveIndex:
			return apperror.NewAppError(apperror.ErrConflict, "profile conflict", "an active profile already exists", profile.ErrAnotherActive)
		case profilesEmailKey:
			return apperror.NewConflict("profile", "email", p.Email)
		}
		return apperror.NewConflict("profile", pgErr.ConstraintName, p.ID.String())
	}
	return apperror.NewInternal("failed to "+action+" profile", err)
}

func (r *postgresProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.FullName, p.Email, p.Phone, p.Bio,
		p.ProfileImage, p.ResumeURL, p.IsActive, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return profileWriteError(err, p, "save")
	}
	return nil
}

func (r *postgresProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	query := `
		UPDATE profiles SET
			full_name = $2, phone = $3, bio = $4, profile_image = $5,
			resume_url = $6, updated_at = $7
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.FullName, p.Phone, p.Bio, p.ProfileImage, p.ResumeURL, p.UpdatedAt,
	)
	if err != nil {
		return profileWriteError(err, p, "update")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("profile", p.ID.String())
	}
	return nil
}

func (r *postgresProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`
	p, err := scanProfile(r.db.QueryRow(ctx, query, id))
	if apperror.IsNotFound(err) {
		return nil, apperror.NewNotFound("profile", id.String())
	}
	return p, err
}

func (r *postgresProfileRepo) FindActive(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE is_active = true
		ORDER BY created_at, id
		LIMIT 1
	`
	p, err := scanProfile(r.db.QueryRow(ctx, query))
	if apperror.IsNotFound(err) {
		return nil, apperror.NewNotFound("active profile", "is_active=true")
	}
	return p, err
}

func (r *postgresProfileRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM profiles WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, apperror.NewInternal("failed to check profile email", err)
	}
	return exists, nil
}

func (r *postgresProfileRepo) Activate(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin activation transaction", err)
	}
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.logger.Warn("Rollback of profile activation failed", zap.String("profile_id", id.String()), zap.Error(rbErr))
		}
	}()

	if _, err := tx.Exec(ctx, `UPDATE profiles SET is_active = false, updated_at = NOW() WHERE is_active AND id <> $1`, id); err != nil {
		return apperror.NewInternal("failed to deactivate profiles", err)
	}

	cmdTag, err := tx.Exec(ctx, `UPDATE profiles SET is_active = true, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return profileWriteError(err, &profile.Profile{ID: id}, "activate")
	}
	if cmdTag.RowsAffected() == 0 {
		return apperror.NewNotFound("profile", id.String())
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit profile activation", err)
	}
	return nil
}

func (r *postgresProfileRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count profiles", err)
	}
	return n, nil
}
