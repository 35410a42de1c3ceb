package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "desarrollo"

	// Used only outside production when JWT_SECRET is unset.
	DevelopmentJWTSecret = "mi_secreto_de_ejemplo"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	Email       EmailConfig
	Scheduler   SchedulerConfig
	RateLimit   RateLimitConfig
	Logging     LoggingConfig
	Bootstrap   BootstrapConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type JWTConfig struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	FromName string
}

// Enabled reports whether SMTP credentials were provided.
func (c EmailConfig) Enabled() bool {
	return c.User != "" && c.Password != ""
}

type SchedulerConfig struct {
	EventSweepSchedule string
}

type RateLimitConfig struct {
	AuthPerMinute int
	AuthBurst     int
}

type LoggingConfig struct {
	Level  string
	Format string
	// Tagged on every line as "env".
	Environment string
}

type BootstrapConfig struct {
	Email    string
	Password string
	Nombre   string
}

// Load reads the process environment, after merging an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	env := strings.ToLower(getEnv("NODE_ENV", EnvDevelopment))
	suffix := "_DESARROLLO"
	if env == EnvProduction {
		suffix = "_PRODUCTION"
	}

	cfg := &Config{
		Environment: env,
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("PORT", 3000),
			ReadTimeout:  time.Duration(getEnvAsInt("SERVER_READ_TIMEOUT", 30)) * time.Second,
			WriteTimeout: time.Duration(getEnvAsInt("SERVER_WRITE_TIMEOUT", 30)) * time.Second,
		},
		Database: DatabaseConfig{
			Host:         profileEnv("DB_HOST", suffix, "localhost"),
			Port:         profileEnvAsInt("DB_PORT", suffix, 5432),
			User:         profileEnv("DB_USER", suffix, "postgres"),
			Password:     profileEnv("DB_PASSWORD", suffix, "postgres"),
			Database:     profileEnv("DB_NAME", suffix, "eventos"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		},
		JWT: JWTConfig{
			Secret:     getEnv("JWT_SECRET", ""),
			AccessTTL:  time.Duration(getEnvAsInt("ACCESS_TOKEN_TTL", 3600)) * time.Second,
			RefreshTTL: time.Duration(getEnvAsInt("REFRESH_TOKEN_TTL", 2592000)) * time.Second,
		},
		Email: EmailConfig{
			Host:     getEnv("EMAIL_HOST", "localhost"),
			Port:     getEnvAsInt("EMAIL_PORT", 587),
			User:     getEnv("EMAIL_USER", ""),
			Password: getEnv("EMAIL_PASS", ""),
			FromName: getEnv("EMAIL_FROM_NAME", "Equipo de Gestión de Eventos"),
		},
		Scheduler: SchedulerConfig{
			EventSweepSchedule: getEnv("EVENT_SWEEP_SCHEDULE", "0 0 * * * *"),
		},
		RateLimit: RateLimitConfig{
			AuthPerMinute: getEnvAsInt("RATE_LIMIT_AUTH_PER_MINUTE", 10),
			AuthBurst:     getEnvAsInt("RATE_LIMIT_AUTH_BURST", 5),
		},
		Logging: LoggingConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Format:      strings.ToLower(getEnv("LOG_FORMAT", "")),
			Environment: env,
		},
		Bootstrap: BootstrapConfig{
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
			Nombre:   getEnv("ADMIN_NOMBRE", "Admin"),
		},
	}

	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaultLogFormat(env)
	}

	if cfg.JWT.Secret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("JWT_SECRET is required in production")
		}
		cfg.JWT.Secret = DevelopmentJWTSecret
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" port=" + strconv.Itoa(c.Port) +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Database +
		" sslmode=" + c.SSLMode
}

// profileEnv prefers KEY+suffix (e.g. DB_HOST_PRODUCTION) over the bare KEY.
func profileEnv(key, suffix, defaultValue string) string {
	if value, exists := os.LookupEnv(key + suffix); exists && value != "" {
		return value
	}
	return getEnv(key, defaultValue)
}

func profileEnvAsInt(key, suffix string, defaultValue int) int {
	if value, exists := os.LookupEnv(key + suffix); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return getEnvAsInt(key, defaultValue)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
