package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpPort            int           `yaml:"http_port" env:"FORUM_HTTP_PORT" validate:"required"`
	LogLevel            string        `yaml:"log_level" env:"FORUM_LOG_LEVEL"`
	LogJSON             bool          `yaml:"log_json" env:"FORUM_LOG_JSON"`
	JwtTTL              time.Duration `yaml:"jwt_ttl" validate:"required"`
	SecureCookies       bool          `yaml:"secure_cookies"`
	CorsOrigins         []string      `yaml:"cors_origins"`
	RecentPostsLimit    int           `yaml:"recent_posts_limit" validate:"min=1"`    // posts shown in a user profile
	RecentCommentsLimit int           `yaml:"recent_comments_limit" validate:"min=1"` // comments shown in a user profile
	VotesPerMinute      int           `yaml:"votes_per_minute" validate:"min=1"`      // per user
	TopicPostsLimit     int           `yaml:"topic_posts_limit" validate:"min=1"`
}

type Pg struct {
	Host     string `yaml:"host" env:"FORUM_PG_HOST" validate:"required"`
	Port     int    `yaml:"port" env:"FORUM_PG_PORT" validate:"required"`
	User     string `yaml:"user" env:"FORUM_PG_USER" validate:"required"`
	Password string `yaml:"password" env:"FORUM_PG_PASSWORD"`
	Dbname   string `yaml:"dbname" env:"FORUM_PG_DBNAME" validate:"required"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key" env:"FORUM_JWT_KEY" validate:"required"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL
}

func defaultPublic() Public {
	return Public{
		HttpPort:            8080,
		LogLevel:            "info",
		RecentPostsLimit:    5,
		RecentCommentsLimit: 5,
		VotesPerMinute:      30,
		TopicPostsLimit:     50,
	}
}

func loadPath(configPath string, output interface{}) error {
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("can't read config file %s: %w", configPath, err)
	}
	if err := yaml.Unmarshal(configFile, output); err != nil {
		return fmt.Errorf("can't unmarshal config file %s: %w", configPath, err)
	}
	return nil
}

// Load reads public.yaml and private.yaml from configFolder and applies
// FORUM_* environment overrides on top.
func Load(configFolder string) (*Config, error) {
	cfg := &Config{Public: defaultPublic()}
	if err := loadPath(path.Join(configFolder, "public.yaml"), &cfg.Public); err != nil {
		return nil, err
	}
	if err := loadPath(path.Join(configFolder, "private.yaml"), &cfg.Private); err != nil {
		return nil, err
	}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func MustLoad(configFolder string) *Config {
	cfg, err := Load(configFolder)
	if err != nil {
		panic(err)
	}
	return cfg
}
