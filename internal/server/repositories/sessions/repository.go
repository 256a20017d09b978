// Package sessions declares the session-store contract for refresh-token
// grants.
package sessions

import (
	"context"

	"github.com/djitsotsu/authsvc/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, session *models.Session) (*models.Session, error)
	FindByToken(ctx context.Context, token string) (*models.Session, error)

	// DeleteByToken removes the session holding the given refresh token and
	// reports whether a row was actually deleted. Racing refreshes resolve
	// through this: only the caller that observes deleted=true may rotate.
	DeleteByToken(ctx context.Context, token string) (bool, error)

	DeleteByID(ctx context.Context, id string) error

	// DeleteAllForUser revokes every session of a user. Used on detected
	// token theft and on password reset.
	DeleteAllForUser(ctx context.Context, userID string) error
}
