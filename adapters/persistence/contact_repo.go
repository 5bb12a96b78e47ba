package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/contact"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresContactRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresContactRepo(db *pgxpool.Pool, logger logger.Logger) contact.Repository {
	return &postgresContactRepo{db: db, logger: logger}
}

var contactColumns = []string{"id", "name", "email", "subject", "message", "sent_at", "is_read", "response"}

func scanContactMessage(row pgx.Row) (*contact.Message, error) {
	m := &contact.Message{}
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.SentAt, &m.IsRead, &m.Response)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("contact message", "")
		}
		return nil, apperror.NewInternal("failed to scan contact message row", err)
	}
	return m, nil
}

func (r *postgresContactRepo) Save(ctx context.Context, m *contact.Message) error {
	sql, args, err := psql.Insert("contact_messages").
		Columns(contactColumns...).
		Values(m.ID, m.Name, m.Email, m.Subject, m.Body, m.SentAt, m.IsRead, m.Response).
		ToSql()
	if err != nil {
		return apperror.NewInternal("failed to build insert contact message query", err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return apperror.NewInternal("failed to save contact message", err)
	}
	return nil
}

func (r *postgresContactRepo) ListAll(ctx context.Context) ([]*contact.Message, error) {
	sql, args, err := psql.Select(contactColumns...).
		From("contact_messages").
		OrderBy("sent_at DESC", "id").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build list contact messages query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query contact messages", err)
	}
	defer rows.Close()

	messages := make([]*contact.Message, 0)
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating contact message rows", err)
	}
	return messages, nil
}

func (r *postgresContactRepo) CountUnread(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contact_messages WHERE is_read = false`).Scan(&n); err != nil {
		return 0, apperror.NewInternal("failed to count unread contact messages", err)
	}
	return n, nil
}
