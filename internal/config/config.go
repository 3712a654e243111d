package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type TokenConfig struct {
	Expiry string `yaml:"expiry"`
}

type AuthConfig struct {
	Token TokenConfig `yaml:"token"`

	PasswordStrength struct {
		MinLength int `yaml:"min_length"`
		MaxLength int `yaml:"max_length"`
	} `yaml:"password_strength"`
}

type UploadConfig struct {
	Dir         string `yaml:"dir"`
	PublicPath  string `yaml:"public_path"`
	MaxSizeMB   int64  `yaml:"max_size_mb"`
	MaxWidthPX  int    `yaml:"max_width_px"`
	JPEGQuality int    `yaml:"jpeg_quality"`
}

type AppConfig struct {
	Auth   AuthConfig   `yaml:"auth"`
	Upload UploadConfig `yaml:"upload"`
}

type EnvConfig struct {
	Server struct {
		Port        string
		Environment string
	}
	DB struct {
		Host string
		Port string
		User string
		Pass string
		Name string
	}
}

var (
	App      = defaultAppConfig()
	Messages = defaultMessages()
	Env      *EnvConfig
)

func defaultAppConfig() AppConfig {
	var cfg AppConfig
	cfg.Auth.Token.Expiry = "1h"
	cfg.Auth.PasswordStrength.MinLength = 5
	cfg.Auth.PasswordStrength.MaxLength = 72
	cfg.Upload.Dir = "./uploads"
	cfg.Upload.PublicPath = "/uploads"
	cfg.Upload.MaxSizeMB = 10
	cfg.Upload.MaxWidthPX = 1600
	cfg.Upload.JPEGQuality = 90
	return cfg
}

// EnvRule defines a validation function for a required environment variable
type EnvRule struct {
	Variable string
	Default  string
	Rule     func(value string) bool
	Message  string
}

func envRules() []EnvRule {
	notEmpty := func(v string) bool { return v != "" }

	return []EnvRule{
		// Server validation
		{
			Variable: "PORT",
			Default:  "3000",
			Rule:     notEmpty,
			Message:  "server port is required",
		},
		{
			Variable: "GO_ENV",
			Default:  "development",
			Rule:     func(v string) bool { return v == "development" || v == "production" },
			Message:  "GO_ENV must be either 'development' or 'production'",
		},

		// Database validation
		{
			Variable: "DB_HOST",
			Rule:     notEmpty,
			Message:  "database host is required",
		},
		{
			Variable: "DB_PORT",
			Default:  "5432",
			Rule:     notEmpty,
			Message:  "database port is required",
		},
		{
			Variable: "DB_USER",
			Rule:     notEmpty,
			Message:  "database user is required",
		},
		{
			Variable: "DB_PASS",
			Rule:     notEmpty,
			Message:  "database password is required",
		},
		{
			Variable: "DB_NAME",
			Default:  "blog",
			Rule:     notEmpty,
			Message:  "database name is required",
		},

		// JWT validation
		{
			Variable: "JWT_SECRET",
			Rule:     func(v string) bool { return len(v) >= 32 },
			Message:  "JWT secret is required and must be at least 32 characters long",
		},
	}
}

// LoadConfig loads environment variables and configuration files. YAML files
// overlay the built-in defaults when present.
func LoadConfig() error {
	if err := godotenv.Load(); err != nil {
		if os.Getenv("GO_ENV") != "production" {
			fmt.Fprintln(os.Stderr, "Warning: .env file not found")
		}
	}

	for _, rule := range envRules() {
		value := os.Getenv(rule.Variable)
		if value == "" && rule.Default != "" {
			value = rule.Default
			if err := os.Setenv(rule.Variable, value); err != nil {
				return err
			}
		}
		if !rule.Rule(value) {
			return fmt.Errorf("invalid %s: %s", rule.Variable, rule.Message)
		}
	}

	Env = &EnvConfig{}
	Env.Server.Port = os.Getenv("PORT")
	Env.Server.Environment = os.Getenv("GO_ENV")
	Env.DB.Host = os.Getenv("DB_HOST")
	Env.DB.Port = os.Getenv("DB_PORT")
	Env.DB.User = os.Getenv("DB_USER")
	Env.DB.Pass = os.Getenv("DB_PASS")
	Env.DB.Name = os.Getenv("DB_NAME")

	if err := loadYAML("config/app.yaml", &App); err != nil {
		return err
	}
	if err := loadYAML("config/messages.yaml", &Messages); err != nil {
		return err
	}

	return nil
}

func loadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, out)
}
