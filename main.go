package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/modelvision/leadgen/app"
	"github.com/modelvision/leadgen/config"
	"github.com/modelvision/leadgen/database"
	"github.com/modelvision/leadgen/httpx"
	"github.com/modelvision/leadgen/log"
	"github.com/modelvision/leadgen/notify"
	"github.com/modelvision/leadgen/routes"
	"github.com/modelvision/leadgen/storage"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Debug("main.env: no .env file loaded")
	}

	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	store := storage.Disabled()
	if cfg.StorageEnabled() {
		store = storage.NewSupabaseStore(cfg.StorageURL, cfg.StorageKey, cfg.StorageBucket)
	} else {
		log.Warn("main.storage: no object store configured, photos will be dropped")
	}

	notifier := notify.Disabled()
	if cfg.EmailEnabled() {
		notifier = notify.NewMailer(cfg)
	} else {
		log.Warn("main.notify: no email account configured, notifications disabled")
	}

	app := app.App{
		DB:           db,
		BearerServer: httpx.NewBearerServer(db, cfg),
		Config:       cfg,
		Store:        store,
		Notifier:     notifier,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
