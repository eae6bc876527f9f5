// Package config loads and validates application configuration from YAML files
// with environment-variable overrides. It provides typed structs for every
// subsystem (Server, Chat, Sessions, Postgres, Kafka, Redis, Analytics,
// Gateway, etc.).
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Chat      ChatConfig      `yaml:"chat"`
	Sessions  SessionsConfig  `yaml:"sessions"`
	Postgres  PostgresConfig  `yaml:"postgres"`
	Kafka     KafkaConfig     `yaml:"kafka"`
	Redis     RedisConfig     `yaml:"redis"`
	Analytics AnalyticsConfig `yaml:"analytics"`
	Gateway   GatewayConfig   `yaml:"gateway"`
	Logging   LoggingConfig   `yaml:"logging"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
}

// ChatConfig controls the chat service: input limits, suggestion counts,
// and how often trending questions are refreshed from analytics.
type ChatConfig struct {
	MaxMessageLength    int           `yaml:"maxMessageLength"`
	SuggestionCount     int           `yaml:"suggestionCount"`
	FallbackSuggestions int           `yaml:"fallbackSuggestions"`
	TrendingRefresh     time.Duration `yaml:"trendingRefresh"`
	TrendingLimit       int           `yaml:"trendingLimit"`
}

// SessionsConfig selects and tunes the session memory backend.
type SessionsConfig struct {
	Backend   string        `yaml:"backend"` // memory, redis, or file
	FilePath  string        `yaml:"filePath"`
	TTL       time.Duration `yaml:"ttl"`
	MaxFacts  int           `yaml:"maxFacts"`
	MaxRecent int           `yaml:"maxRecent"`
}

// PostgresConfig holds PostgreSQL connection parameters.
type PostgresConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Database        string        `yaml:"database"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	SSLMode         string        `yaml:"sslMode"`
	MaxOpenConns    int           `yaml:"maxOpenConns"`
	MaxIdleConns    int           `yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime"`
}

// DSN returns a lib/pq-compatible data source name.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// KafkaConfig holds Kafka broker and topic settings.
type KafkaConfig struct {
	Brokers       []string    `yaml:"brokers"`
	ConsumerGroup string      `yaml:"consumerGroup"`
	Topics        KafkaTopics `yaml:"topics"`
}

// KafkaTopics maps logical topic names to their Kafka topic strings.
type KafkaTopics struct {
	ChatEvents string `yaml:"chatEvents"`
}

// RedisConfig holds Redis connection and caching parameters.
type RedisConfig struct {
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	PoolSize int           `yaml:"poolSize"`
	CacheTTL time.Duration `yaml:"cacheTTL"`
}

// AnalyticsConfig controls the analytics service: snapshot cadence and the
// internal RPC endpoint that serves trending questions to chatd. RPCHost is
// where other services reach the RPC server, not where it binds.
type AnalyticsConfig struct {
	HTTPPort         int           `yaml:"httpPort"`
	RPCHost          string        `yaml:"rpcHost"`
	RPCPort          int           `yaml:"rpcPort"`
	SnapshotInterval time.Duration `yaml:"snapshotInterval"`
	TopQueriesLimit  int           `yaml:"topQueriesLimit"`
}

// RPCAddr returns the host:port other services dial for analytics RPC.
func (a AnalyticsConfig) RPCAddr() string {
	return fmt.Sprintf("%s:%d", a.RPCHost, a.RPCPort)
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// TracingConfig controls request tracing (sample rate, endpoint).
type TracingConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Endpoint   string  `yaml:"endpoint"`
	SampleRate float64 `yaml:"sampleRate"`
}

// MetricsConfig controls the Prometheus metrics server.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// GatewayConfig holds the API gateway port, upstream service URLs, CORS
// origins, and the per-client rate limit.
type GatewayConfig struct {
	Port               int      `yaml:"port"`
	ChatURL            string   `yaml:"chatUrl"`
	AnalyticsURL       string   `yaml:"analyticsUrl"`
	AllowedOrigins     []string `yaml:"allowedOrigins"`
	RateLimitPerMinute int      `yaml:"rateLimitPerMinute"`
}

// Load reads a YAML config file (if provided) and applies environment-variable
// overrides. It returns a Config populated with sensible defaults for any
// missing values.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// defaultConfig returns a Config with production-ready defaults for local
// development.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 15 * time.Second,
		},
		Chat: ChatConfig{
			MaxMessageLength:    2000,
			SuggestionCount:     5,
			FallbackSuggestions: 6,
			TrendingRefresh:     time.Minute,
			TrendingLimit:       10,
		},
		Sessions: SessionsConfig{
			Backend:   "memory",
			FilePath:  "data/sessions.json",
			TTL:       30 * 24 * time.Hour,
			MaxFacts:  100,
			MaxRecent: 50,
		},
		Postgres: PostgresConfig{
			Host:            "localhost",
			Port:            5432,
			Database:        "scholarhub",
			User:            "scholarhub",
			Password:        "localdev",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 5 * time.Minute,
		},
		Kafka: KafkaConfig{
			Brokers:       []string{"localhost:9092"},
			ConsumerGroup: "scholarhub-analytics",
			Topics: KafkaTopics{
				ChatEvents: "chat-events",
			},
		},
		Redis: RedisConfig{
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
			PoolSize: 10,
			CacheTTL: 5 * time.Minute,
		},
		Analytics: AnalyticsConfig{
			HTTPPort:         8083,
			RPCHost:          "localhost",
			RPCPort:          9000,
			SnapshotInterval: time.Minute,
			TopQueriesLimit:  10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Port:    9090,
		},
		Gateway: GatewayConfig{
			Port:               8082,
			ChatURL:            "http://localhost:8080",
			AnalyticsURL:       "http://localhost:8083",
			AllowedOrigins:     []string{"*"},
			RateLimitPerMinute: 60,
		},
	}
}

// applyEnvOverrides reads SH_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SH_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("SH_SESSIONS_BACKEND"); v != "" {
		cfg.Sessions.Backend = v
	}
	if v := os.Getenv("SH_SESSIONS_FILE_PATH"); v != "" {
		cfg.Sessions.FilePath = v
	}
	if v := os.Getenv("SH_POSTGRES_HOST"); v != "" {
		cfg.Postgres.Host = v
	}
	if v := os.Getenv("SH_POSTGRES_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.Port = port
		}
	}
	if v := os.Getenv("SH_POSTGRES_DATABASE"); v != "" {
		cfg.Postgres.Database = v
	}
	if v := os.Getenv("SH_POSTGRES_USER"); v != "" {
		cfg.Postgres.User = v
	}
	if v := os.Getenv("SH_POSTGRES_PASSWORD"); v != "" {
		cfg.Postgres.Password = v
	}
	if v := os.Getenv("SH_POSTGRES_SSLMODE"); v != "" {
		cfg.Postgres.SSLMode = v
	}
	if v := os.Getenv("SH_KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}
	if v := os.Getenv("SH_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("SH_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("SH_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("SH_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("SH_ANALYTICS_HTTP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Analytics.HTTPPort = port
		}
	}
	if v := os.Getenv("SH_ANALYTICS_RPC_HOST"); v != "" {
		cfg.Analytics.RPCHost = v
	}
	if v := os.Getenv("SH_ANALYTICS_RPC_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Analytics.RPCPort = port
		}
	}
	if v := os.Getenv("SH_GATEWAY_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Gateway.Port = port
		}
	}
	if v := os.Getenv("SH_GATEWAY_CHAT_URL"); v != "" {
		cfg.Gateway.ChatURL = v
	}
	if v := os.Getenv("SH_GATEWAY_ANALYTICS_URL"); v != "" {
		cfg.Gateway.AnalyticsURL = v
	}
}
