package config

import (
	"errors"

	"github.com/spf13/viper"
)

// Config holds every process-wide setting. Values come from the environment,
// optionally backed by a .env file for local development.
type Config struct {
	ServerPort   string `mapstructure:"SERVER_PORT"`
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	JWTSecret    string `mapstructure:"JWT_SECRET"`
	ClientOrigin string `mapstructure:"CLIENT_ORIGIN"`

	// Notification sink (AWS SES). Booking summaries go to NotifyEmail.
	AWSRegion   string `mapstructure:"AWS_REGION"`
	EmailFrom   string `mapstructure:"EMAIL_FROM"`
	NotifyEmail string `mapstructure:"NOTIFY_EMAIL"`

	// If set and no admin exists yet, this phone number is seeded as admin.
	AdminPhone string `mapstructure:"ADMIN_PHONE"`
}

// LoadConfig reads configuration from path/.env and the environment.
// A missing .env file is fine; environment variables alone are enough.
func LoadConfig(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("AWS_REGION", "ap-south-1")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
