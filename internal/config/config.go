package config

import (
	"context"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// App holds core runtime configuration shared across services.
type App struct {
	Name                    string        `env:"APP_NAME" envDefault:"aventura-backend"`
	Env                     string        `env:"APP_ENV" envDefault:"development"`
	HTTPAddr                string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_SECONDS" envDefault:"20s"`

	Postgres Postgres
	Redis    Redis
	Gemini   Gemini
	Content  Content
	CORS     CORS
}

// Postgres captures connection info for the SQL database. Host being optional
// lets the service boot without persistence; the store tier is then skipped.
type Postgres struct {
	Host     string `env:"PG_HOST"`
	Port     int    `env:"PG_PORT" envDefault:"5432"`
	User     string `env:"PG_USER"`
	Password string `env:"PG_PASSWORD"`
	Database string `env:"PG_DATABASE"`
	SSLMode  string `env:"PG_SSL_MODE" envDefault:"disable"`
}

// Enabled reports whether a database was configured at all.
func (p Postgres) Enabled() bool { return p.Host != "" }

// DSN renders the pgx connection string.
func (p Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		p.User, p.Password, p.Host, p.Port, p.Database, p.SSLMode)
}

// Redis holds hot-cache configuration. Like Postgres, it is optional.
type Redis struct {
	Addr     string `env:"REDIS_ADDR"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	PoolSize int    `env:"REDIS_POOL_SIZE" envDefault:"20"`
}

func (r Redis) Enabled() bool { return r.Addr != "" }

// Gemini configures the remote content generator. An empty API key disables
// the remote tier; everything below it keeps working.
type Gemini struct {
	APIKey     string        `env:"GEMINI_API_KEY"`
	Model      string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	Timeout    time.Duration `env:"GEMINI_TIMEOUT" envDefault:"6s"`
	MaxRetries uint64        `env:"GEMINI_MAX_RETRIES" envDefault:"2"`
}

// Content groups pipeline tuning knobs.
type Content struct {
	RedisTTL         time.Duration `env:"CONTENT_REDIS_TTL" envDefault:"5m"`
	StoreTTL         time.Duration `env:"CONTENT_STORE_TTL" envDefault:"24h"`
	PrewarmQueueSize int           `env:"CONTENT_PREWARM_QUEUE" envDefault:"64"`
	PrewarmTimeout   time.Duration `env:"CONTENT_PREWARM_TIMEOUT" envDefault:"10s"`
	PurgeInterval    time.Duration `env:"CONTENT_PURGE_INTERVAL" envDefault:"1h"`
}

// CORS holds Cross-Origin Resource Sharing configuration.
type CORS struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://127.0.0.1:3000"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS" envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS" envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" envDefault:"true"`
	MaxAge           int      `env:"CORS_MAX_AGE" envDefault:"3600"`
}

// Load parses environment variables into App config.
func Load(ctx context.Context) (*App, error) {
	cfg := &App{}
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
