package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type HTTPServer struct {
	Host string
	Port string
	// RW or RO; RO rejects catalog writes.
	Mode string
}

type RedisCache struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type SQLite struct {
	Path string
}

type Session struct {
	CookieName string
	KeyPrefix  string
	TTL        time.Duration
}

type Config struct {
	HTTP     HTTPServer
	Redis    RedisCache
	Storage  string
	Postgres Postgres
	SQLite   SQLite
	Session  Session
}

const logtag = "[config]"

// Load reads the environment, optionally seeded from the file given by
// the -config flag.
func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	return LoadFrom(*configPath)
}

// LoadFrom is Load without flag parsing, for callers that own their flags.
func LoadFrom(configPath string) *Config {
	if configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:     *newHTTP(),
		Redis:    *newRedis(),
		Storage:  getenv("STORAGE_DRIVER", DriverPostgres),
		Postgres: *newPostgres(),
		SQLite:   *newSQLite(),
		Session:  *newSession(),
	}

	log.Printf("%s backend config : %+v\n", logtag, cfg)
	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
		Mode: getenv("HTTP_MODE", "RW"),
	}
}

func newRedis() *RedisCache {
	db, err := strconv.Atoi(getenv("REDIS_DB", "0"))
	if err != nil || db < 0 {
		log.Printf("%s bad REDIS_DB. Using 0", logtag)
		db = 0
	}
	return &RedisCache{
		Port:     getenv("REDIS_PORT", "6379"),
		Host:     getenv("REDIS_HOST", "redis"),
		Password: getenv("REDIS_PASSWORD", "shared"),
		DB:       db,
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", "shared"),
		DBName:   getenv("DB_NAME", "rottenpotatoes"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newSQLite() *SQLite {
	return &SQLite{
		Path: getenv("SQLITE_PATH", "rottenpotatoes.db"),
	}
}

func newSession() *Session {
	ttl, err := time.ParseDuration(getenv("SESSION_TTL", "24h"))
	if err != nil {
		log.Printf("%s bad SESSION_TTL: %v. Using 24h", logtag, err)
		ttl = 24 * time.Hour
	}
	return &Session{
		CookieName: getenv("SESSION_COOKIE", "session_id"),
		KeyPrefix:  getenv("SESSION_KEY_PREFIX", "session"),
		TTL:        ttl,
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	fmt.Printf("%s %s = %s\n", logtag, key, val)
	return val
}
