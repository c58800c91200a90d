package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"Candl/pkg/util"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment"`
	Server      struct {
		Port            int           `yaml:"port"`
		ReadTimeout     time.Duration `yaml:"read_timeout"`
		WriteTimeout    time.Duration `yaml:"write_timeout"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
	} `yaml:"logging"`
	Finnhub struct {
		APIKey       string        `yaml:"api_key"`
		BaseURL      string        `yaml:"base_url"`
		Timeout      time.Duration `yaml:"timeout"`
		WebSocketURL string        `yaml:"websocket_url"`
		Stream       struct {
			Enabled        bool          `yaml:"enabled"`
			Symbols        []string      `yaml:"symbols"`
			ReconnectDelay time.Duration `yaml:"reconnect_delay"`
			PingInterval   time.Duration `yaml:"ping_interval"`
		} `yaml:"stream"`
	} `yaml:"finnhub"`
	Sentiment struct {
		Mode    string        `yaml:"mode"` // lexicon or http
		URL     string        `yaml:"url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"sentiment"`
	Ratios struct {
		URL     string        `yaml:"url"`
		Timeout time.Duration `yaml:"timeout"`
	} `yaml:"ratios"`
	Cache struct {
		Backend         string        `yaml:"backend"` // memory, redis, or layered
		MaxSize         int           `yaml:"max_size"`
		CleanupInterval time.Duration `yaml:"cleanup_interval"`
		Redis           struct {
			Addr     string `yaml:"addr"`
			Password string `yaml:"password"`
			DB       int    `yaml:"db"`
			Prefix   string `yaml:"prefix"`
		} `yaml:"redis"`
	} `yaml:"cache"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("FINNHUB_API_KEY"); v != "" {
		c.Finnhub.APIKey = v
	}
	if v := os.Getenv("SENTIMENT_URL"); v != "" {
		c.Sentiment.Mode = "http"
		c.Sentiment.URL = v
	}
	if v := os.Getenv("RATIOS_URL"); v != "" {
		c.Ratios.URL = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		c.Cache.Redis.Addr = v
	}
	if v := os.Getenv("WARM_SYMBOLS"); v != "" {
		c.Finnhub.Stream.Enabled = true
		c.Finnhub.Stream.Symbols = strings.Split(v, ",")
	}
	c.Server.Port = util.ParseIntDefault(os.Getenv("PORT"), c.Server.Port)

	return c, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10 * time.Second
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stdout"
	}
	if c.Finnhub.BaseURL == "" {
		c.Finnhub.BaseURL = "https://finnhub.io/api/v1"
	}
	if c.Finnhub.Timeout == 0 {
		c.Finnhub.Timeout = 12 * time.Second
	}
	if c.Finnhub.Stream.ReconnectDelay == 0 {
		c.Finnhub.Stream.ReconnectDelay = 5 * time.Second
	}
	if c.Finnhub.Stream.PingInterval == 0 {
		c.Finnhub.Stream.PingInterval = 30 * time.Second
	}
	if c.Sentiment.Mode == "" {
		c.Sentiment.Mode = "lexicon"
	}
	if c.Sentiment.Timeout == 0 {
		c.Sentiment.Timeout = 10 * time.Second
	}
	if c.Ratios.Timeout == 0 {
		c.Ratios.Timeout = 15 * time.Second
	}
	if c.Cache.Backend == "" {
		c.Cache.Backend = "memory"
	}
	if c.Cache.MaxSize == 0 {
		c.Cache.MaxSize = 1000
	}
	if c.Cache.CleanupInterval == 0 {
		c.Cache.CleanupInterval = 5 * time.Minute
	}
	if c.Cache.Redis.Prefix == "" {
		c.Cache.Redis.Prefix = "candl"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Finnhub.APIKey == "" {
		return fmt.Errorf("finnhub.api_key is required")
	}
	switch c.Cache.Backend {
	case "memory", "redis", "layered":
	default:
		return fmt.Errorf("cache.backend must be 'memory', 'redis', or 'layered', got '%s'", c.Cache.Backend)
	}
	if c.Cache.Backend != "memory" && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache.redis.addr is required for backend '%s'", c.Cache.Backend)
	}
	switch c.Sentiment.Mode {
	case "lexicon", "http":
	default:
		return fmt.Errorf("sentiment.mode must be 'lexicon' or 'http', got '%s'", c.Sentiment.Mode)
	}
	if c.Sentiment.Mode == "http" && c.Sentiment.URL == "" {
		return fmt.Errorf("sentiment.url is required for http mode")
	}
	if c.Finnhub.Stream.Enabled {
		if c.Finnhub.WebSocketURL == "" {
			return fmt.Errorf("finnhub.websocket_url is required when the stream is enabled")
		}
		if len(c.Finnhub.Stream.Symbols) == 0 {
			return fmt.Errorf("finnhub.stream.symbols cannot be empty when the stream is enabled")
		}
	}
	return nil
}
