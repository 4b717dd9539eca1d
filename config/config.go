package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

/* Config é um pacote auxiliar. Poderia ser uma lib externa*/

const (
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Config struct {
	Port string `mapstructure:"PORT"`

	SlotBackend    string `mapstructure:"SLOT_BACKEND"`
	UserBackend    string `mapstructure:"USER_BACKEND"`
	SessionBackend string `mapstructure:"SESSION_BACKEND"`

	SQLitePath string `mapstructure:"SQLITE_PATH"`

	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	PostgresHost     string `mapstructure:"POSTGRES_HOST"`
	PostgresPort     int    `mapstructure:"POSTGRES_PORT"`
	PostgresUser     string `mapstructure:"POSTGRES_USER"`
	PostgresPassword string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresDB       string `mapstructure:"POSTGRES_DB"`
	PostgresSSLMode  string `mapstructure:"POSTGRES_SSLMODE"`
	// pool
	PostgresMaxOpenConns   int `mapstructure:"POSTGRES_MAX_OPEN_CONNS"`
	PostgresMaxIdleConns   int `mapstructure:"POSTGRES_MAX_IDLE_CONNS"`
	PostgresConnMaxLifeMin int `mapstructure:"POSTGRES_CONN_MAX_LIFE_MINUTES"`

	JWTSecret       string `mapstructure:"JWT_SECRET"`
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`
	PageSize        int    `mapstructure:"PAGE_SIZE"`
	SeedFile        string `mapstructure:"SEED_FILE"`
}

// GetConfig reads .env from the working directory; environment variables win over the file
func GetConfig() (*Config, error) {
	return Load(".")
}

// Load is GetConfig with a custom directory for .env
func Load(dir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(".env")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8080")
	v.SetDefault("SLOT_BACKEND", BackendSQLite)
	v.SetDefault("USER_BACKEND", BackendSQLite)
	v.SetDefault("SESSION_BACKEND", BackendMemory)
	v.SetDefault("SQLITE_PATH", "data/bookshelf.db")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("POSTGRES_USER", "bookshelf")
	v.SetDefault("POSTGRES_PASSWORD", "")
	v.SetDefault("POSTGRES_DB", "bookshelf")
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("POSTGRES_MAX_OPEN_CONNS", 25)
	v.SetDefault("POSTGRES_MAX_IDLE_CONNS", 5)
	v.SetDefault("POSTGRES_CONN_MAX_LIFE_MINUTES", 5)
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("PAGE_SIZE", 5)
	v.SetDefault("SEED_FILE", "")
}

func (c *Config) Validate() error {
	switch c.SlotBackend {
	case BackendSQLite, BackendRedis, BackendPostgres:
	default:
		return fmt.Errorf("SLOT_BACKEND must be sqlite, redis or postgres, got %q", c.SlotBackend)
	}
	switch c.UserBackend {
	case BackendSQLite, BackendPostgres:
	default:
		return fmt.Errorf("USER_BACKEND must be sqlite or postgres, got %q", c.UserBackend)
	}
	switch c.SessionBackend {
	case BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("SESSION_BACKEND must be redis or memory, got %q", c.SessionBackend)
	}
	if c.SessionTTLHours < 1 {
		return fmt.Errorf("SESSION_TTL_HOURS must be at least 1")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be at least 1")
	}
	return nil
}

// PostgresConnectionString builds the lib/pq connection string
func (c *Config) PostgresConnectionString() string {
	parts := []string{
		fmt.Sprintf("host=%s", c.PostgresHost),
		fmt.Sprintf("port=%d", c.PostgresPort),
		fmt.Sprintf("user=%s", c.PostgresUser),
		fmt.Sprintf("dbname=%s", c.PostgresDB),
		fmt.Sprintf("sslmode=%s", c.PostgresSSLMode),
	}
	if c.PostgresPassword != "" {
		parts = append(parts, fmt.Sprintf("password=%s", c.PostgresPassword))
	}
	return strings.Join(parts, " ")
}

// UsesRedis reports whether any backend needs a Redis connection
func (c *Config) UsesRedis() bool {
	return c.SlotBackend == BackendRedis || c.SessionBackend == BackendRedis
}
