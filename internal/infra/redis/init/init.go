package infra_redis_init

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis"
	"github.com/humanbelnik/rottenpotatoes/internal/config"
)

const dialTimeout = 3 * time.Second

func options(cfg config.RedisCache) *redis.Options {
	return &redis.Options{
		Addr:        fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	}
}

// EstablishConn connects to the session store and checks it answers.
func EstablishConn(ctx context.Context, cfg config.RedisCache) (*redis.Client, error) {
	client := redis.NewClient(options(cfg))

	if err := client.WithContext(ctx).Ping().Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s:%s: %w", cfg.Host, cfg.Port, err)
	}

	return client, nil
}

func MustEstablishConn(cfg config.RedisCache) *redis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	client, err := EstablishConn(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	return client
}
