package infra_sqlite_init

import (
	"fmt"
	"log"

	"github.com/humanbelnik/rottenpotatoes/internal/config"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

func init() {
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

func EstablishConn(cfg config.SQLite) (*sqlx.DB, error) {
	db, err := sqlx.Connect(driverName, cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", cfg.Path, err)
	}
	// one writer at a time; sqlite serializes anyway
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}

	return db, nil
}

func MustEstablishConn(cfg config.SQLite) *sqlx.DB {
	db, err := EstablishConn(cfg)
	if err != nil {
		log.Fatal(err)
	}

	return db
}
