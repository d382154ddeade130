package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration. Credentials are injected
// into vendor adapters at construction time; adapters never read process
// environment themselves.
type Config struct {
	Anthropic AnthropicConfig `yaml:"anthropic" mapstructure:"anthropic"`
	Verimail  VerimailConfig  `yaml:"verimail" mapstructure:"verimail"`
	Snov      SnovConfig      `yaml:"snov" mapstructure:"snov"`
	Scraper   ScraperConfig   `yaml:"scraper" mapstructure:"scraper"`
	Pipeline  PipelineConfig  `yaml:"pipeline" mapstructure:"pipeline"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	Key       string `yaml:"key" mapstructure:"key"`
	Model     string `yaml:"model" mapstructure:"model"`
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// VerimailConfig holds deliverability-verification vendor settings.
type VerimailConfig struct {
	Key        string  `yaml:"key" mapstructure:"key"`
	BaseURL    string  `yaml:"base_url" mapstructure:"base_url"`
	RatePerSec float64 `yaml:"rate_per_sec" mapstructure:"rate_per_sec"`
	Burst      int     `yaml:"burst" mapstructure:"burst"`
}

// SnovConfig holds contact-discovery vendor settings.
type SnovConfig struct {
	Key     string `yaml:"key" mapstructure:"key"`
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// ScraperConfig configures the alternate domains-mode scraping service.
// Shape selects the vendor response adapter: "flat" or "per_site".
type ScraperConfig struct {
	URL   string `yaml:"url" mapstructure:"url"`
	Shape string `yaml:"shape" mapstructure:"shape"`
}

// PipelineConfig configures orchestration behavior.
type PipelineConfig struct {
	ResultCap           int    `yaml:"result_cap" mapstructure:"result_cap"`
	PerDomainCap        int    `yaml:"per_domain_cap" mapstructure:"per_domain_cap"`
	ValidationChunkSize int    `yaml:"validation_chunk_size" mapstructure:"validation_chunk_size"`
	OperationsFile      string `yaml:"operations_file" mapstructure:"operations_file"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("MAILSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("server.port", 8080)
	v.SetDefault("anthropic.model", "claude-haiku-4-5-20251001")
	v.SetDefault("anthropic.max_tokens", 4096)
	v.SetDefault("verimail.base_url", "https://api.verimail.io/v3")
	v.SetDefault("verimail.rate_per_sec", 10.0)
	v.SetDefault("verimail.burst", 10)
	v.SetDefault("snov.base_url", "https://api.snov.io")
	v.SetDefault("scraper.shape", "flat")
	v.SetDefault("pipeline.result_cap", 30)
	v.SetDefault("pipeline.per_domain_cap", 10)
	v.SetDefault("pipeline.validation_chunk_size", 10)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
