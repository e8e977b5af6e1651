package database

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Connect opens the Postgres connection pool and verifies it with a ping.
// The DSN comes from configuration; the handle is passed down explicitly
// rather than held in a package global.
func Connect(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}
	log.Println("Successfully connected to database.")

	return db.Unsafe(), nil
}
