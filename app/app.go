package app

import (
	"database/sql"

	"github.com/go-chi/oauth"

	"github.com/modelvision/leadgen/config"
	"github.com/modelvision/leadgen/notify"
	"github.com/modelvision/leadgen/storage"
)

// App bundles the process-wide dependencies handlers are wired with. All of
// them are constructed once at startup; handlers hold no hidden state.
type App struct {
	*sql.DB
	*oauth.BearerServer
	config.Config

	Store    storage.ObjectStore
	Notifier notify.Notifier
}
