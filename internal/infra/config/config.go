package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP      HTTPConfig      `yaml:"http"`
	Chatbot   ChatbotConfig   `yaml:"chatbot"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Trending  TrendingConfig  `yaml:"trending"`
	Resources ResourcesConfig `yaml:"resources"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// ChatbotConfig controls the embedding model and the matching behavior.
type ChatbotConfig struct {
	Mode                string  `yaml:"mode"`
	VectorSize          int     `yaml:"vectorSize"`
	Window              int     `yaml:"window"`
	MinCount            int     `yaml:"minCount"`
	Epochs              int     `yaml:"epochs"`
	Seed                int64   `yaml:"seed"`
	SimilarityThreshold float64 `yaml:"similarityThreshold"`
	FallbackAnswer      string  `yaml:"fallbackAnswer"`
	TopRecommendations  int     `yaml:"topRecommendations"`
}

// CatalogConfig tells the service where the FAQ entries come from.
type CatalogConfig struct {
	Path     string         `yaml:"path"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN         string `yaml:"dsn"`
	MaxConns    int32  `yaml:"maxConns"`
	MinConns    int32  `yaml:"minConns"`
	SaveVectors bool   `yaml:"saveVectors"`
}

// TrendingConfig contains connection information for query statistics.
type TrendingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// ResourcesConfig locates external language resources such as the stopword
// list, either on disk or in an object store bucket.
type ResourcesConfig struct {
	Dir           string      `yaml:"dir"`
	StopwordsFile string      `yaml:"stopwordsFile"`
	Minio         MinioConfig `yaml:"minio"`
}

// MinioConfig contains object storage credentials for resource downloads.
type MinioConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"useSsl"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = boolValue(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("CHATBOT_MODE"); v != "" {
		cfg.Chatbot.Mode = v
	}
	if v := os.Getenv("CHATBOT_VECTOR_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Chatbot.VectorSize = parsed
		}
	}
	if v := os.Getenv("CHATBOT_WINDOW"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Chatbot.Window = parsed
		}
	}
	if v := os.Getenv("CHATBOT_MIN_COUNT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Chatbot.MinCount = parsed
		}
	}
	if v := os.Getenv("CHATBOT_EPOCHS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Chatbot.Epochs = parsed
		}
	}
	if v := os.Getenv("CHATBOT_SEED"); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Chatbot.Seed = parsed
		}
	}
	if v := os.Getenv("CHATBOT_SIMILARITY_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Chatbot.SimilarityThreshold = parsed
		}
	}
	if v := os.Getenv("CHATBOT_FALLBACK_ANSWER"); v != "" {
		cfg.Chatbot.FallbackAnswer = v
	}
	if v := os.Getenv("CHATBOT_RECOMMENDATIONS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Chatbot.TopRecommendations = parsed
		}
	}
	if v := os.Getenv("CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("CATALOG_POSTGRES_DSN"); v != "" {
		cfg.Catalog.Postgres.DSN = v
	}
	if v := os.Getenv("CATALOG_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Catalog.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("CATALOG_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Catalog.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("CATALOG_SAVE_VECTORS"); v != "" {
		cfg.Catalog.Postgres.SaveVectors = boolValue(v)
	}
	if v := os.Getenv("TRENDING_ENABLED"); v != "" {
		cfg.Trending.Enabled = boolValue(v)
	}
	if v := os.Getenv("TRENDING_VALKEY_ADDR"); v != "" {
		cfg.Trending.Addr = v
	}
	if v := os.Getenv("RESOURCES_DIR"); v != "" {
		cfg.Resources.Dir = v
	}
	if v := os.Getenv("RESOURCES_STOPWORDS_FILE"); v != "" {
		cfg.Resources.StopwordsFile = v
	}
	if v := os.Getenv("RESOURCES_MINIO_ENABLED"); v != "" {
		cfg.Resources.Minio.Enabled = boolValue(v)
	}
	if v := os.Getenv("RESOURCES_MINIO_ENDPOINT"); v != "" {
		cfg.Resources.Minio.Endpoint = v
	}
	if v := os.Getenv("RESOURCES_MINIO_ACCESS_KEY"); v != "" {
		cfg.Resources.Minio.AccessKey = v
	}
	if v := os.Getenv("RESOURCES_MINIO_SECRET_KEY"); v != "" {
		cfg.Resources.Minio.SecretKey = v
	}
	if v := os.Getenv("RESOURCES_MINIO_BUCKET"); v != "" {
		cfg.Resources.Minio.Bucket = v
	}
	if v := os.Getenv("RESOURCES_MINIO_USE_SSL"); v != "" {
		cfg.Resources.Minio.UseSSL = boolValue(v)
	}
}

func boolValue(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Chatbot: ChatbotConfig{
			Mode:                "word2vec",
			VectorSize:          100,
			Window:              5,
			MinCount:            1,
			Epochs:              15,
			Seed:                1337,
			SimilarityThreshold: 0.3,
			TopRecommendations:  10,
		},
		Catalog: CatalogConfig{
			Path: "data/faq.json",
			Postgres: PostgresConfig{
				MaxConns: 4,
				MinConns: 0,
			},
		},
		Trending: TrendingConfig{
			Enabled: false,
		},
		Resources: ResourcesConfig{
			Dir:           "data/resources",
			StopwordsFile: "stopwords_lt.txt",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	switch c.Chatbot.Mode {
	case "word2vec", "fasttext":
	default:
		return fmt.Errorf("chatbot.mode must be word2vec or fasttext, got %q", c.Chatbot.Mode)
	}
	if c.Chatbot.VectorSize <= 0 {
		return errors.New("chatbot.vectorSize must be positive")
	}
	if c.Chatbot.Window <= 0 {
		return errors.New("chatbot.window must be positive")
	}
	if c.Chatbot.MinCount <= 0 {
		return errors.New("chatbot.minCount must be positive")
	}
	if c.Chatbot.Epochs <= 0 {
		return errors.New("chatbot.epochs must be positive")
	}
	if c.Chatbot.SimilarityThreshold < 0 || c.Chatbot.SimilarityThreshold > 1 {
		return errors.New("chatbot.similarityThreshold must be within [0, 1]")
	}
	if c.Chatbot.TopRecommendations < 0 {
		return errors.New("chatbot.topRecommendations cannot be negative")
	}
	if c.Catalog.Path == "" && strings.TrimSpace(c.Catalog.Postgres.DSN) == "" {
		return errors.New("catalog.path or catalog.postgres.dsn must be set")
	}
	if c.Trending.Enabled && strings.TrimSpace(c.Trending.Addr) == "" {
		return errors.New("trending.addr cannot be empty when trending storage is enabled")
	}
	if c.Resources.Minio.Enabled {
		if strings.TrimSpace(c.Resources.Minio.Endpoint) == "" {
			return errors.New("resources.minio.endpoint cannot be empty when enabled")
		}
		if strings.TrimSpace(c.Resources.Minio.Bucket) == "" {
			return errors.New("resources.minio.bucket cannot be empty when enabled")
		}
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}
