package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration
type Config struct {
	BaseURL       string        `mapstructure:"BASE_URL"`
	UploadBaseURL string        `mapstructure:"UPLOAD_BASE_URL"`
	AccessToken   string        `mapstructure:"ACCESS_TOKEN"`
	UserRole      string        `mapstructure:"USER_ROLE"`
	UserID        string        `mapstructure:"USER_ID"`
	LogLevel      string        `mapstructure:"LOG_LEVEL"`
	HTTPTimeout   time.Duration `mapstructure:"HTTP_TIMEOUT"`
	JWTSecret     string        `mapstructure:"JWT_SECRET"`
	ListenAddr    string        `mapstructure:"LISTEN_ADDR"`
}

// LoadConfig reads configuration from file, .env, or env vars
func LoadConfig() (*Config, error) {
	// .env is optional, plain env vars work too
	godotenv.Load()

	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetDefault("BASE_URL", "http://localhost:3300")
	viper.SetDefault("UPLOAD_BASE_URL", "http://localhost:3300/uploads/")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("HTTP_TIMEOUT", "30s")
	viper.SetDefault("LISTEN_ADDR", ":3300")

	cfg := &Config{
		BaseURL:       viper.GetString("BASE_URL"),
		UploadBaseURL: viper.GetString("UPLOAD_BASE_URL"),
		AccessToken:   viper.GetString("ACCESS_TOKEN"),
		UserRole:      viper.GetString("USER_ROLE"),
		UserID:        viper.GetString("USER_ID"),
		LogLevel:      viper.GetString("LOG_LEVEL"),
		HTTPTimeout:   viper.GetDuration("HTTP_TIMEOUT"),
		JWTSecret:     viper.GetString("JWT_SECRET"),
		ListenAddr:    viper.GetString("LISTEN_ADDR"),
	}
	return cfg, nil
}
