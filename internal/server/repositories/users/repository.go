// Package users declares the credential-store contract for durable user
// records.
package users

import (
	"context"

	"github.com/djitsotsu/authsvc/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	Update(ctx context.Context, user *models.User) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByEmailOrPhone(ctx context.Context, identifier string) (*models.User, error)
}
