package database

import (
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/bcrypt"

	"github.com/modelvision/leadgen/config"
	"github.com/modelvision/leadgen/log"
)

func Open(cfg config.Config) (db *sql.DB, err error) {
	db, err = sql.Open("sqlite3", cfg.DBUrl)
	if err != nil {
		return
	}

	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		db.Close()
		return
	}

	// db tuning options
	db.SetMaxOpenConns(20)
	db.SetMaxIdleConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(2 * time.Hour)

	err = migrateDB(db)
	if err != nil {
		db.Close()
		return
	}

	err = bootstrapAdmin(db, cfg)
	if err != nil {
		db.Close()
		return
	}

	return
}

// bootstrapAdmin creates the admin user on first start, from ADMIN_PASSWORD.
// An already-provisioned user is left untouched.
func bootstrapAdmin(db *sql.DB, cfg config.Config) error {
	var count int
	err := db.QueryRow("SELECT count(*) FROM user").Scan(&count)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.AdminPassword == "" {
		return errors.New("no admin user provisioned and ADMIN_PASSWORD not set")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec("INSERT INTO user (username, password_hash) VALUES (?, ?)", "admin", hash)
	if err != nil {
		return err
	}

	log.Info("db.bootstrap: created admin user")
	return nil
}
