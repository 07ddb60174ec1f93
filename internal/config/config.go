package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/types"
)

// Config конфигурация сервиса, загружаемая из TOML файла
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Schedule ScheduleConfig `toml:"schedule"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // seconds
	WriteTimeout    int `toml:"write_timeout"`    // seconds
	IdleTimeout     int `toml:"idle_timeout"`     // seconds
	ShutdownTimeout int `toml:"shutdown_timeout"` // seconds
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN возвращает строку подключения к PostgreSQL
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// ScheduleConfig настройки расчета расписания
// Рабочие часы задаются целым часом начала и конца рабочего дня
type ScheduleConfig struct {
	OpenHour     int `toml:"open_hour"`
	CloseHour    int `toml:"close_hour"`
	HorizonWeeks int `toml:"horizon_weeks"` // Окно отображения в полных неделях
}

// BusinessHours возвращает рабочие часы в доменном представлении
func (c ScheduleConfig) BusinessHours() domain.BusinessHours {
	return domain.BusinessHours{
		Open:  types.TimeString(fmt.Sprintf("%02d:00", c.OpenHour)),
		Close: types.TimeString(fmt.Sprintf("%02d:00", c.CloseHour)),
	}
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// Load загружает конфигурацию из TOML файла с применением дефолтов
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to load %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Schedule: ScheduleConfig{
			OpenHour:     domain.DefaultOpenHour,
			CloseHour:    domain.DefaultCloseHour,
			HorizonWeeks: domain.DefaultHorizonWeeks,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			ServiceName: "smc-schedule-service",
			Path:        "/metrics",
		},
	}
}

func (c *Config) validate() error {
	if c.Schedule.OpenHour < 0 || c.Schedule.OpenHour > 23 {
		return fmt.Errorf("config: open_hour must be within 0..23, got %d", c.Schedule.OpenHour)
	}
	if c.Schedule.CloseHour < 0 || c.Schedule.CloseHour > 23 {
		return fmt.Errorf("config: close_hour must be within 0..23, got %d", c.Schedule.CloseHour)
	}
	if c.Schedule.CloseHour <= c.Schedule.OpenHour {
		return fmt.Errorf("config: close_hour must be after open_hour")
	}
	if c.Schedule.HorizonWeeks < 1 {
		return fmt.Errorf("config: horizon_weeks must be at least 1, got %d", c.Schedule.HorizonWeeks)
	}
	return nil
}
