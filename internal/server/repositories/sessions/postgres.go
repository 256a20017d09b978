// Package sessions provides a PostgreSQL-backed repository for refresh-token
// sessions.
package sessions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/djitsotsu/authsvc/internal/dbx"
	"github.com/djitsotsu/authsvc/internal/server/models"
	"github.com/djitsotsu/authsvc/internal/shared"
)

// PostgresRepository implements the session store over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, session *models.Session) (*models.Session, error) {

	query :=
		`INSERT INTO sessions (user_id, refresh_token, ip, user_agent, expires_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		session.UserID, session.RefreshToken, session.IP, session.UserAgent, session.ExpiresAt,
	).Scan(&session.ID, &session.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return session, nil
}

// FindByToken returns the session row for the given refresh token.
// If not found, it returns shared.ErrorNotFound.
func (r *PostgresRepository) FindByToken(ctx context.Context, token string) (*models.Session, error) {

	query :=
		`SELECT id, user_id, refresh_token, ip, user_agent, created_at, expires_at
		 FROM sessions
		 WHERE refresh_token = $1
		 `

	session := &models.Session{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(
		&session.ID, &session.UserID, &session.RefreshToken,
		&session.IP, &session.UserAgent, &session.CreatedAt, &session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return session, nil
}

// DeleteByToken deletes at most one session and reports whether it existed.
// The single DELETE is the synchronization point for refresh rotation.
func (r *PostgresRepository) DeleteByToken(ctx context.Context, token string) (bool, error) {

	query := `DELETE FROM sessions WHERE refresh_token = $1`

	res, err := r.db.ExecContext(ctx, query, token)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return affected > 0, nil
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id string) error {

	query := `DELETE FROM sessions WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteAllForUser(ctx context.Context, userID string) error {

	query := `DELETE FROM sessions WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
