package app

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/humanbelnik/rottenpotatoes/internal/config"
	http_health "github.com/humanbelnik/rottenpotatoes/internal/delivery/http/health"
	http_init "github.com/humanbelnik/rottenpotatoes/internal/delivery/http/init"
	http_access_middleware "github.com/humanbelnik/rottenpotatoes/internal/delivery/http/middleware/access"
	http_session_middleware "github.com/humanbelnik/rottenpotatoes/internal/delivery/http/middleware/session"
	http_movie "github.com/humanbelnik/rottenpotatoes/internal/delivery/http/movie"
	http_templates "github.com/humanbelnik/rottenpotatoes/internal/delivery/http/templates"
	infra_database_movie "github.com/humanbelnik/rottenpotatoes/internal/infra/database/movie"
	infra_pg_init "github.com/humanbelnik/rottenpotatoes/internal/infra/postgres/init"
	infra_redis_init "github.com/humanbelnik/rottenpotatoes/internal/infra/redis/init"
	infra_redis_session "github.com/humanbelnik/rottenpotatoes/internal/infra/redis/session"
	infra_sqlite_init "github.com/humanbelnik/rottenpotatoes/internal/infra/sqlite/init"
	usecase_listing "github.com/humanbelnik/rottenpotatoes/internal/usecase/listing"
	usecase_movie "github.com/humanbelnik/rottenpotatoes/internal/usecase/movie"
	"github.com/jmoiron/sqlx"
)

const migrateTimeout = 30 * time.Second

// MustOpenStorage connects to whichever database cfg.Storage names.
func MustOpenStorage(cfg *config.Config) *sqlx.DB {
	switch cfg.Storage {
	case config.DriverSQLite:
		return infra_sqlite_init.MustEstablishConn(cfg.SQLite)
	case config.DriverPostgres:
		return infra_pg_init.MustEstablishConn(cfg.Postgres)
	default:
		log.Fatalf("unknown storage driver %q", cfg.Storage)
		return nil
	}
}

func Go(cfg *config.Config) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db := MustOpenStorage(cfg)
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)

	movieRepository := infra_database_movie.New(db)
	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	if err := movieRepository.Migrate(ctx); err != nil {
		cancel()
		log.Fatal(err)
	}
	cancel()

	sessions := infra_redis_session.New(redisConn, cfg.Session.KeyPrefix, cfg.Session.TTL)

	movieUC := usecase_movie.New(movieRepository)
	listingUC := usecase_listing.New(sessions, movieUC)

	sessionMiddleware := http_session_middleware.New(cfg.Session.CookieName, cfg.Session.TTL)

	controllerPool := http_init.NewControllerPool(http_templates.Load(),
		sessionMiddleware.Session(),
		http_access_middleware.ReadOnly(cfg.HTTP.Mode, sessions),
	)
	controllerPool.Add(http_movie.New(movieUC, listingUC, sessions, http_movie.WithLogger(logger)))
	controllerPool.Add(http_health.New(db, cfg.HTTP.Mode))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
