package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса, загружается из config.toml
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Logs       LogsConfig       `toml:"logs"`
	Metrics    MetricsConfig    `toml:"metrics"`
	Database   DatabaseConfig   `toml:"database"`
	Centers    CentersConfig    `toml:"centers"`
	Simplauto  SimplautoConfig  `toml:"simplauto"`
	ElevenLabs ElevenLabsConfig `toml:"elevenlabs"`
	Webhook    WebhookConfig    `toml:"webhook"`
	Slots      SlotsConfig      `toml:"slots"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// DatabaseConfig настройки PostgreSQL-хранилища.
// При enabled = false сервис работает на in-memory заглушке.
type DatabaseConfig struct {
	Enabled         bool   `toml:"enabled"`
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// CentersConfig настройки in-memory хранилища центров.
// При отключенной базе заглушка инициализируется одним
// демонстрационным центром с этим идентификатором.
type CentersConfig struct {
	DemoID string `toml:"demo_id"`
}

// SimplautoConfig настройки клиента провайдера расписания
type SimplautoConfig struct {
	URL     string `toml:"url"`
	Token   string `toml:"token"`
	Timeout int    `toml:"timeout"` // секунды
}

// ElevenLabsConfig настройки клиента голосовой платформы
type ElevenLabsConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	VoiceID string `toml:"voice_id"`
	Timeout int    `toml:"timeout"` // секунды
}

// WebhookConfig внешний адрес сервиса для callback-ов голосовой платформы
// и токен защиты management-эндпоинтов
type WebhookConfig struct {
	BaseURL      string `toml:"base_url"`
	ServiceToken string `toml:"service_token"`
}

// SlotsConfig поведение выдачи слотов
type SlotsConfig struct {
	// RespectClientRange при true учитывает start_date/end_date из запроса
	// голосовой платформы; при false всегда возвращает полное будущее окно,
	// чтобы исключить ошибки вычисления дат на стороне LLM
	RespectClientRange bool `toml:"respect_client_range"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	applyDefaults(cfg)

	if cfg.Simplauto.URL == "" {
		return nil, fmt.Errorf("config: simplauto.url is required")
	}
	if cfg.ElevenLabs.URL == "" {
		return nil, fmt.Errorf("config: elevenlabs.url is required")
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPPort == 0 {
		cfg.Server.HTTPPort = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 15
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = 60
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15
	}
	if cfg.Logs.Level == "" {
		cfg.Logs.Level = "info"
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
	if cfg.Metrics.ServiceName == "" {
		cfg.Metrics.ServiceName = "ctc-voice-service"
	}
	if cfg.Simplauto.Timeout == 0 {
		cfg.Simplauto.Timeout = 10
	}
	if cfg.ElevenLabs.Timeout == 0 {
		cfg.ElevenLabs.Timeout = 30
	}
	if cfg.Centers.DemoID == "" {
		cfg.Centers.DemoID = "demo-center-001"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 300
	}
}
