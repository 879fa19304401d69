package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// Identity provider (hosted auth backend)
	Auth AuthConfig

	// Generative backend
	Gemini GeminiConfig

	// Tracker OAuth apps
	Linear LinearConfig
	Jira   JiraConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// AuthConfig points at the hosted identity provider. Bearer tokens presented
// by clients are verified against UserInfoURL.
type AuthConfig struct {
	UserInfoURL string
	APIKey      string // provider project key sent alongside the user token
	CacheTTL    string // how long a verified token is cached, e.g. "5m"
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// LinearConfig is the Linear OAuth application.
type LinearConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// JiraConfig is the Atlassian OAuth application.
type JiraConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.ssl_mode")
	if pgPassword := viper.GetString("postgres_password"); pgPassword != "" {
		cfg.Postgres.Password = pgPassword
	}

	// Identity provider
	cfg.Auth.UserInfoURL = viper.GetString("auth.user_info_url")
	cfg.Auth.APIKey = viper.GetString("auth.api_key")
	cfg.Auth.CacheTTL = viper.GetString("auth.cache_ttl")
	if authKey := viper.GetString("auth_api_key"); authKey != "" {
		cfg.Auth.APIKey = authKey
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Linear OAuth app
	cfg.Linear.ClientID = viper.GetString("linear.client_id")
	cfg.Linear.ClientSecret = viper.GetString("linear.client_secret")
	cfg.Linear.RedirectURL = viper.GetString("linear.redirect_url")
	if linearSecret := viper.GetString("linear_client_secret"); linearSecret != "" {
		cfg.Linear.ClientSecret = linearSecret
	}

	// Jira (Atlassian) OAuth app
	cfg.Jira.ClientID = viper.GetString("jira.client_id")
	cfg.Jira.ClientSecret = viper.GetString("jira.client_secret")
	cfg.Jira.RedirectURL = viper.GetString("jira.redirect_url")
	if jiraSecret := viper.GetString("jira_client_secret"); jiraSecret != "" {
		cfg.Jira.ClientSecret = jiraSecret
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.ssl_mode", "disable")
	viper.SetDefault("auth.cache_ttl", "5m")
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
}
