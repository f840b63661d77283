package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port" default:"8080"`
		Host         string        `yaml:"host" default:"0.0.0.0"`
		ReadTimeout  time.Duration `yaml:"read_timeout" default:"30s"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"30s"`
		IdleTimeout  time.Duration `yaml:"idle_timeout" default:"60s"`
	} `yaml:"server"`

	Mongo struct {
		URL      string        `yaml:"url" default:"mongodb://localhost:27017"`
		Database string        `yaml:"database" default:"empoweryouth"`
		Timeout  time.Duration `yaml:"timeout" default:"10s"`
	} `yaml:"mongo"`

	Auth struct {
		JWTSecret string        `yaml:"jwt_secret"`
		TokenTTL  time.Duration `yaml:"token_ttl" default:"168h"` // 7 days
	} `yaml:"auth"`

	Chat struct {
		RatePerMinute int           `yaml:"rate_per_minute" default:"30"`
		Burst         int           `yaml:"burst" default:"5"`
		HistoryTTL    time.Duration `yaml:"history_ttl" default:"24h"`
	} `yaml:"chat"`

	Assistant struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"assistant"`

	Logging struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"json"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`

	Redis struct {
		URL      string        `yaml:"url" default:"redis://localhost:6379"`
		Password string        `yaml:"password"`
		DB       int           `yaml:"db" default:"0"`
		Timeout  time.Duration `yaml:"timeout" default:"5s"`
	} `yaml:"redis"`
}

// expandEnvVars expands environment variables in a string using ${VAR} syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 8080
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.Mongo.URL = "mongodb://localhost:27017"
	config.Mongo.Database = "empoweryouth"
	config.Mongo.Timeout = 10 * time.Second

	config.Auth.TokenTTL = 7 * 24 * time.Hour

	config.Chat.RatePerMinute = 30
	config.Chat.Burst = 5
	config.Chat.HistoryTTL = 24 * time.Hour

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Redis.URL = "redis://localhost:6379"
	config.Redis.DB = 0
	config.Redis.Timeout = 5 * time.Second

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))

			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	if config.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return config, nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if mongoURL := os.Getenv("MONGO_URL"); mongoURL != "" {
		c.Mongo.URL = mongoURL
	}

	if dbName := os.Getenv("DB_NAME"); dbName != "" {
		c.Mongo.Database = dbName
	}

	if mongoTimeout := os.Getenv("MONGO_TIMEOUT"); mongoTimeout != "" {
		if timeout, err := time.ParseDuration(mongoTimeout); err == nil {
			c.Mongo.Timeout = timeout
		}
	}

	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		c.Auth.JWTSecret = jwtSecret
	}

	if tokenTTL := os.Getenv("TOKEN_TTL"); tokenTTL != "" {
		if ttl, err := time.ParseDuration(tokenTTL); err == nil {
			c.Auth.TokenTTL = ttl
		}
	}

	if assistantKey := os.Getenv("ASSISTANT_API_KEY"); assistantKey != "" {
		c.Assistant.APIKey = assistantKey
	}

	// Also support WATSON_ASSISTANT_API_KEY for compatibility
	if assistantKey := os.Getenv("WATSON_ASSISTANT_API_KEY"); assistantKey != "" {
		c.Assistant.APIKey = assistantKey
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		c.Redis.URL = redisURL
	}

	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		c.Redis.Password = redisPassword
	}

	if redisDB := os.Getenv("REDIS_DB"); redisDB != "" {
		if db, err := strconv.Atoi(redisDB); err == nil {
			c.Redis.DB = db
		}
	}

	if redisTimeout := os.Getenv("REDIS_TIMEOUT"); redisTimeout != "" {
		if timeout, err := time.ParseDuration(redisTimeout); err == nil {
			c.Redis.Timeout = timeout
		}
	}

	if rate := os.Getenv("CHAT_RATE_PER_MINUTE"); rate != "" {
		if r, err := strconv.Atoi(rate); err == nil {
			c.Chat.RatePerMinute = r
		}
	}

	if burst := os.Getenv("CHAT_BURST"); burst != "" {
		if b, err := strconv.Atoi(burst); err == nil {
			c.Chat.Burst = b
		}
	}
}

// AssistantConfigured reports whether an external assistant credential is present
func (c *Config) AssistantConfigured() bool {
	return c.Assistant.APIKey != ""
}
