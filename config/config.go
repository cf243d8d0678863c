package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config carries every deployment knob the server reads. Values come
// from the environment (a .env file is loaded in main before this).
type Config struct {
	Port string
	Env  string // "production" hides error detail in 500 responses

	DBDriver string // "mysql" or "sqlite"
	DBDSN    string

	TokenTTL   time.Duration
	SessionTTL time.Duration

	// AllowImplicitRegistration lets /auth/login auto-provision an
	// account for a never-seen email. Off by default.
	AllowImplicitRegistration bool

	// AllowedOrigins is the CORS allow-list; empty means "*".
	AllowedOrigins []string

	AdminEmail    string
	AdminPassword string
}

func Load() *Config {
	cfg := &Config{
		Port:                      getEnv("PORT", "8080"),
		Env:                       getEnv("APP_ENV", "development"),
		DBDriver:                  getEnv("DB_DRIVER", "sqlite"),
		DBDSN:                     getEnv("DB_DSN", "lastortilhas.db"),
		TokenTTL:                  getEnvDuration("TOKEN_TTL", 24*time.Hour),
		SessionTTL:                getEnvDuration("SESSION_TTL", 7*24*time.Hour),
		AllowImplicitRegistration: getEnvBool("ALLOW_IMPLICIT_REGISTRATION", false),
		AdminEmail:                os.Getenv("ADMIN_EMAIL"),
		AdminPassword:             os.Getenv("ADMIN_PASSWORD"),
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, o)
			}
		}
	}

	// Tokens are capped at a week, matching the session lifetime.
	if cfg.TokenTTL > 7*24*time.Hour {
		cfg.TokenTTL = 7 * 24 * time.Hour
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// InitDB opens the configured database. Connection pooling is handled
// by database/sql underneath gorm; a single connection serves a single
// request's statements and returns to the pool afterwards.
func InitDB(c *Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	var (
		db  *gorm.DB
		err error
	)
	switch c.DBDriver {
	case "mysql":
		db, err = gorm.Open(mysql.Open(c.DBDSN), gormCfg)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(c.DBDSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	return db, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
