// Package cli implements the interactive TaskKeeper command-line client:
// a small REPL over the REST API with an in-memory session token.
package cli

import (
	"bufio"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/client/api"
	"github.com/dmitrijs2005/taskkeeper/internal/client/config"
)

type App struct {
	config *config.Config
	api    *api.Client
	email  string
	reader *bufio.Reader

	// lastList holds the tasks as most recently printed, so that the
	// done/rm commands can address them by list number.
	lastList []api.Task
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.New(c.ServerAddr),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.api.HasToken()
}
