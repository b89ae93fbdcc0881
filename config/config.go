package config

import "github.com/kelseyhightower/envconfig"

type ServerConfig struct {
	Port           string   `default:"8080"`
	Environment    string   `default:"development"`
	AllowedOrigins []string `split_words:"true" default:"http://localhost:5173,https://www.luxera.store"`
}

type DatabaseConfig struct {
	DSN string `envconfig:"DATABASE_DSN" required:"true"`
}

type RedisConfig struct {
	URL          string `default:"redis://localhost:6379/0"`
	ReadTimeout  int    `split_words:"true" default:"3"`
	WriteTimeout int    `split_words:"true" default:"3"`
	DialTimeout  int    `split_words:"true" default:"5"`
}

type AdminConfig struct {
	Email        string `required:"true"`
	PasswordHash string `split_words:"true" required:"true"`
	JWTSecret    string `envconfig:"JWT_SECRET" required:"true"`
}

type WhatsappConfig struct {
	// Destination number for the order handoff deep link.
	Phone     string `default:"923707910557"`
	NotifyURL string `split_words:"true"`
}

type S3Config struct {
	Bucket string `default:"luxera-products"`
}

// AppConfig holds every configurable parameter of the service, sourced
// from environment variables (a .env file is loaded first for local runs).
type AppConfig struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Admin    AdminConfig
	Whatsapp WhatsappConfig
	S3       S3Config
}

// App is the process-wide configuration, populated by Load at startup.
var App AppConfig

func Load() error {
	return envconfig.Process("", &App)
}
