package repomanager

import (
	"context"
	"database/sql"

	"github.com/djitsotsu/authsvc/internal/dbx"
	"github.com/djitsotsu/authsvc/internal/server/repositories/sessions"
	"github.com/djitsotsu/authsvc/internal/server/repositories/users"
)

// RepositoryManager vends repository implementations bound to a DBTX, so
// services can run several repository calls inside one transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Sessions(db dbx.DBTX) sessions.Repository
}
