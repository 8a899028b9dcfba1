package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/DhavalSuthar-24/acecourt/internal/storage/relational"
)

const (
	defaultJWTSecret = "your-very-strong-access-secret"
	defaultDBPass    = "password"
)

type AppConfig struct {
	Env         string `env:"APP_ENV" env-default:"development"`
	Port        string `env:"PORT" env-default:"8088"`
	FrontendURL string `env:"FRONTEND_URL" env-default:"http://localhost:5173"`
	// Timezone decides what "today" means for dashboard and session filters.
	Timezone string `env:"APP_TIMEZONE" env-default:"UTC"`
}

type StorageConfig struct {
	Backend    string `env:"STORAGE_BACKEND" env-default:"memory"` // memory, postgres or sqlite
	SQLitePath string `env:"SQLITE_PATH" env-default:"acecourt.db"`
	Seed       bool   `env:"SEED_SAMPLE_DATA" env-default:"true"`
}

type DBConfig struct {
	Host     string `env:"DB_HOST" env-default:"localhost"`
	Port     string `env:"DB_PORT" env-default:"5432"`
	User     string `env:"DB_USER" env-default:"postgres"`
	Password string `env:"DB_PASSWORD" env-default:"password"`
	Name     string `env:"DB_NAME" env-default:"acecourt"`
	SSLMode  string `env:"DB_SSLMODE" env-default:"disable"`
}

// DSN is the postgres connection string.
func (db DBConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		db.Host, db.User, db.Password, db.Name, db.Port, db.SSLMode)
}

type JWTConfig struct {
	Secret        string `env:"JWT_SECRET" env-default:"your-very-strong-access-secret"`
	ExpiryMinutes int    `env:"JWT_EXPIRY_MINUTES" env-default:"1440"`
}

type AIConfig struct {
	APIKey            string        `env:"OPENAI_API_KEY"`
	BaseURL           string        `env:"OPENAI_BASE_URL"`
	Model             string        `env:"OPENAI_MODEL" env-default:"gpt-4o"`
	Timeout           time.Duration `env:"AI_TIMEOUT" env-default:"30s"`
	RequestsPerMinute int           `env:"AI_REQUESTS_PER_MINUTE" env-default:"60"`
	DrillCacheTTL     time.Duration `env:"AI_DRILL_CACHE_TTL" env-default:"6h"`
	// BatchConcurrency bounds parallel plan generation for a batch.
	BatchConcurrency int `env:"AI_BATCH_CONCURRENCY" env-default:"4"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" env-default:"0"`
}

type Config struct {
	App     AppConfig
	Storage StorageConfig
	DB      DBConfig
	JWT     JWTConfig
	AI      AIConfig
	Redis   RedisConfig
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.App.Timezone)
}

// LoadConfig reads a .env file when present, then fills the config from the
// environment.
func LoadConfig() (*Config, error) {
	// It's okay if .env doesn't exist, especially in production where env
	// vars are set directly.
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded, relying on system environment variables")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if _, err := cfg.Location(); err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.App.Timezone, err)
	}
	switch cfg.Storage.Backend {
	case "memory", "postgres", "sqlite":
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q", cfg.Storage.Backend)
	}

	if cfg.JWT.Secret == defaultJWTSecret {
		slog.Warn("using default JWT secret, set JWT_SECRET for production")
	}
	if cfg.Storage.Backend == "postgres" && cfg.DB.Password == defaultDBPass && cfg.App.Env == "production" {
		slog.Warn("using default DB password in production, set DB_PASSWORD")
	}
	if cfg.AI.APIKey == "" {
		slog.Warn("OPENAI_API_KEY is not set, AI features will use fallbacks or fail")
	}
	return &cfg, nil
}

// OpenDatabase connects to the relational backend chosen by Storage.Backend.
func OpenDatabase(cfg *Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{}
	if cfg.App.Env == "development" {
		gormConfig.Logger = logger.Default.LogMode(logger.Info) // Log SQL queries in development
	} else {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.Storage.Backend {
	case "postgres":
		db, err = relational.OpenPostgres(cfg.DB.DSN(), gormConfig)
	case "sqlite":
		db, err = relational.OpenSQLite(cfg.Storage.SQLitePath, gormConfig)
	default:
		return nil, fmt.Errorf("storage backend %q is not relational", cfg.Storage.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	slog.Info("connected to database", slog.String("backend", cfg.Storage.Backend))
	return db, nil
}
