package main

import (
	"fmt"

	"github.com/humanbelnik/rottenpotatoes/internal/config"
	infra_database_movie "github.com/humanbelnik/rottenpotatoes/internal/infra/database/movie"
	infra_pg_init "github.com/humanbelnik/rottenpotatoes/internal/infra/postgres/init"
	infra_sqlite_init "github.com/humanbelnik/rottenpotatoes/internal/infra/sqlite/init"
	"github.com/jmoiron/sqlx"
)

type commandContext struct {
	configFlag *string

	cfg *config.Config
	db  *sqlx.DB
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() *config.Config {
	if c.cfg == nil {
		c.cfg = config.LoadFrom(*c.configFlag)
	}
	return c.cfg
}

func (c *commandContext) repository() (*infra_database_movie.Repository, error) {
	if c.db == nil {
		db, err := openStorage(c.ensureConfig())
		if err != nil {
			return nil, err
		}
		c.db = db
	}
	return infra_database_movie.New(c.db), nil
}

func (c *commandContext) close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

func openStorage(cfg *config.Config) (*sqlx.DB, error) {
	switch cfg.Storage {
	case config.DriverSQLite:
		return infra_sqlite_init.EstablishConn(cfg.SQLite)
	case config.DriverPostgres:
		return infra_pg_init.EstablishConn(cfg.Postgres)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage)
	}
}
