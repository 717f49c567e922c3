package config

import (
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env"
)

const (
	BackendPostgres = "postgres"
	BackendAPI      = "api"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server          ServerConfig          `toml:"server"`
	Logs            LogsConfig            `toml:"logs"`
	Database        DatabaseConfig        `toml:"database"`
	Redis           RedisConfig           `toml:"redis"`
	Bookings        BookingsConfig        `toml:"bookings"`
	AppointmentsAPI AppointmentsAPIConfig `toml:"appointments_api"`
	Session         SessionConfig         `toml:"session"`
	RateLimit       RateLimitConfig       `toml:"rate_limit"`
	Metrics         MetricsConfig         `toml:"metrics"`
	Calendar        CalendarConfig        `toml:"calendar"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port" env:"HTTP_PORT"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file" env:"LOG_FILE"`
	Level string `toml:"level" env:"LOG_LEVEL"`
}

type DatabaseConfig struct {
	Host            string `toml:"host" env:"DB_HOST"`
	Port            int    `toml:"port" env:"DB_PORT"`
	User            string `toml:"user" env:"DB_USER"`
	Password        string `toml:"password" env:"DB_PASSWORD"`
	DBName          string `toml:"dbname" env:"DB_NAME"`
	SSLMode         string `toml:"sslmode" env:"DB_SSLMODE"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// RedisConfig кэш бронирований (необязательный)
type RedisConfig struct {
	Enabled    bool   `toml:"enabled" env:"REDIS_ENABLED"`
	Addr       string `toml:"addr" env:"REDIS_ADDR"`
	Password   string `toml:"password" env:"REDIS_PASSWORD"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

func (r RedisConfig) TTL() time.Duration {
	return time.Duration(r.TTLSeconds) * time.Second
}

// BookingsConfig откуда календарь берёт занятые слоты и куда отправляет записи
type BookingsConfig struct {
	Backend string `toml:"backend" env:"BOOKINGS_BACKEND"`
}

type AppointmentsAPIConfig struct {
	URL     string `toml:"url" env:"APPOINTMENTS_API_URL"`
	Timeout int    `toml:"timeout"`
}

// SessionConfig ключи securecookie передаются в base64
type SessionConfig struct {
	CookieName string `toml:"cookie_name"`
	HashKey    string `toml:"hash_key" env:"SESSION_HASH_KEY"`
	BlockKey   string `toml:"block_key" env:"SESSION_BLOCK_KEY"`
	TTLHours   int    `toml:"ttl_hours"`
	// LongTTLHours время жизни сессии с флагом "keep me signed in"
	LongTTLHours int `toml:"long_ttl_hours"`
}

func (s SessionConfig) TTL() time.Duration {
	return time.Duration(s.TTLHours) * time.Hour
}

func (s SessionConfig) LongTTL() time.Duration {
	return time.Duration(s.LongTTLHours) * time.Hour
}

// Keys декодирует ключи подписи и шифрования cookie
func (s SessionConfig) Keys() (hashKey, blockKey []byte, err error) {
	hashKey, err = base64.StdEncoding.DecodeString(s.HashKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: session.hash_key: %v", ErrInvalidConfig, err)
	}
	blockKey, err = base64.StdEncoding.DecodeString(s.BlockKey)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: session.block_key: %v", ErrInvalidConfig, err)
	}
	return hashKey, blockKey, nil
}

// RateLimitConfig лимит запросов на IP.
// TrustForwardedFor включается только за своим reverse proxy, иначе IP берётся из соединения.
type RateLimitConfig struct {
	RequestsPerMinute int  `toml:"requests_per_minute"`
	Burst             int  `toml:"burst"`
	TrustForwardedFor bool `toml:"trust_forwarded_for" env:"RATE_LIMIT_TRUST_FORWARDED_FOR"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled" env:"METRICS_ENABLED"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CalendarConfig часовой пояс гаража, в котором считается "сегодня"
type CalendarConfig struct {
	Location string `toml:"location" env:"CALENDAR_LOCATION"`
}

// LoadLocation возвращает часовой пояс календаря
func (c CalendarConfig) LoadLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Location)
	if err != nil {
		return nil, fmt.Errorf("%w: calendar.location: %v", ErrInvalidConfig, err)
	}
	return loc, nil
}

// Load читает конфигурацию из TOML файла, затем применяет переменные окружения
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Logs: LogsConfig{Level: "info"},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Redis:           RedisConfig{Addr: "localhost:6379", TTLSeconds: 60},
		Bookings:        BookingsConfig{Backend: BackendPostgres},
		AppointmentsAPI: AppointmentsAPIConfig{Timeout: 5},
		Session: SessionConfig{
			CookieName:   "smc_garage_session",
			TTLHours:     12,
			LongTTLHours: 24 * 30,
		},
		RateLimit: RateLimitConfig{RequestsPerMinute: 60, Burst: 10},
		Metrics:   MetricsConfig{Path: "/metrics", ServiceName: "smc-garage-service"},
		Calendar:  CalendarConfig{Location: "UTC"},
	}
}

// applyEnv переопределяет значения из окружения. Пустые переменные игнорируются.
func applyEnv(cfg *Config) error {
	sections := []interface{}{
		&cfg.Server,
		&cfg.Logs,
		&cfg.Database,
		&cfg.Redis,
		&cfg.Bookings,
		&cfg.AppointmentsAPI,
		&cfg.Session,
		&cfg.RateLimit,
		&cfg.Metrics,
		&cfg.Calendar,
	}
	for _, section := range sections {
		if err := env.Parse(section); err != nil {
			return fmt.Errorf("%w: env: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

func (c *Config) validate() error {
	switch c.Bookings.Backend {
	case BackendPostgres:
	case BackendAPI:
		if c.AppointmentsAPI.URL == "" {
			return fmt.Errorf("%w: appointments_api.url is required for backend %q", ErrInvalidConfig, BackendAPI)
		}
	default:
		return fmt.Errorf("%w: unknown bookings.backend %q", ErrInvalidConfig, c.Bookings.Backend)
	}

	if c.Server.HTTPPort <= 0 {
		return fmt.Errorf("%w: server.http_port must be positive", ErrInvalidConfig)
	}

	if c.Session.TTLHours <= 0 {
		return fmt.Errorf("%w: session.ttl_hours must be positive", ErrInvalidConfig)
	}

	if c.RateLimit.RequestsPerMinute <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("%w: rate_limit values must be positive", ErrInvalidConfig)
	}

	if _, err := c.Calendar.LoadLocation(); err != nil {
		return err
	}

	return nil
}
