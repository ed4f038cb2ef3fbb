package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

type DBConfig struct {
	Driver          string
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	SSLMode         string
	TimeZone        string
	Path            string // файл sqlite
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifeTime int // минут
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled: без адреса используется блокировка внутри процесса.
func (c RedisConfig) Enabled() bool { return c.Addr != "" }

type AppConfig struct {
	GRPCAddr       string
	LogLevel       string
	LogFormat      string
	DefaultBackend string
	LockTTL        time.Duration
	AMQPURL        string // пустой: события не публикуются

	Redis RedisConfig
	DB    DBConfig
}

// Load читает .env (если есть), переменные окружения и необязательный
// файл из CONFIG_FILE. Окружение важнее файла.
func Load() (*AppConfig, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}

	dbCfg, err := dbConfigFrom(v)
	if err != nil {
		return nil, err
	}

	cfg := &AppConfig{
		GRPCAddr:       v.GetString("GRPC_ADDR"),
		LogLevel:       strings.ToLower(v.GetString("LOG_LEVEL")),
		LogFormat:      strings.ToLower(v.GetString("LOG_FORMAT")),
		DefaultBackend: v.GetString("ROSTER_DEFAULT_BACKEND"),
		LockTTL:        v.GetDuration("ROSTER_LOCK_TTL"),
		AMQPURL:        firstNonEmpty(v.GetString("RABBITMQ_URL"), v.GetString("AMQP_URL")),
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		DB: *dbCfg,
	}

	// минимальная валидация
	if cfg.GRPCAddr == "" {
		return nil, fmt.Errorf("invalid config: GRPC_ADDR must not be empty")
	}
	if cfg.LockTTL <= 0 {
		return nil, fmt.Errorf("invalid config: ROSTER_LOCK_TTL must be positive")
	}
	if cfg.DefaultBackend == "" {
		cfg.DefaultBackend = "sql"
	}

	return cfg, nil
}

// LoadDBConfig читает только настройки БД.
func LoadDBConfig() (*DBConfig, error) {
	v, err := newViper()
	if err != nil {
		return nil, err
	}
	return dbConfigFrom(v)
}

func newViper() (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("GRPC_ADDR", ":50051")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ROSTER_DEFAULT_BACKEND", "sql")
	v.SetDefault("ROSTER_LOCK_TTL", "30s")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("AMQP_URL", "")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("DB_DRIVER", DriverPostgres)
	v.SetDefault("DB_HOST", "postgres")
	v.SetDefault("DB_PORT", 0)
	v.SetDefault("DB_USER", "roster")
	v.SetDefault("DB_PASSWORD", "roster")
	v.SetDefault("DB_NAME", "roster_db")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_TIMEZONE", "UTC")
	v.SetDefault("DB_PATH", "roster.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME_MIN", 30)

	v.AutomaticEnv()

	if path, ok := os.LookupEnv("CONFIG_FILE"); ok && path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	return v, nil
}

func dbConfigFrom(v *viper.Viper) (*DBConfig, error) {
	cfg := &DBConfig{
		Driver:          strings.ToLower(v.GetString("DB_DRIVER")),
		Host:            strings.TrimSpace(v.GetString("DB_HOST")),
		Port:            v.GetInt("DB_PORT"),
		User:            strings.TrimSpace(v.GetString("DB_USER")),
		Password:        v.GetString("DB_PASSWORD"),
		Name:            strings.TrimSpace(v.GetString("DB_NAME")),
		SSLMode:         v.GetString("DB_SSLMODE"),
		TimeZone:        v.GetString("DB_TIMEZONE"),
		Path:            strings.TrimSpace(v.GetString("DB_PATH")),
		MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
		MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
		ConnMaxLifeTime: v.GetInt("DB_CONN_MAX_LIFETIME_MIN"),
	}

	switch cfg.Driver {
	case DriverPostgres, DriverMySQL:
		if cfg.Port == 0 {
			cfg.Port = defaultPort(cfg.Driver)
		}
		if cfg.Host == "" || cfg.User == "" || cfg.Name == "" {
			return nil, fmt.Errorf("invalid DB config: host/user/name must not be empty")
		}
	case DriverSQLite:
		if cfg.Path == "" {
			return nil, fmt.Errorf("invalid DB config: DB_PATH must not be empty for sqlite")
		}
	default:
		return nil, fmt.Errorf("invalid DB config: unsupported driver %q", cfg.Driver)
	}

	return cfg, nil
}

func defaultPort(driver string) int {
	if driver == DriverMySQL {
		return 3306
	}
	return 5432
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
