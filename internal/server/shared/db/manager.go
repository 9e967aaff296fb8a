// Package db wires the database connection to the repositories and runs
// schema migrations at startup.
package db

import (
	"context"

	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Users() users.Repository
	Tasks() tasks.Repository
	Close() error
}
