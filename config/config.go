package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL   string
	JWTSecret     string
	JWTExpiration time.Duration
	ServerPort    string
}

func Load() *Config {
	v := viper.New()
	v.SetDefault("database_url", "postgresql://postgres@localhost:5432/timesheet")
	v.SetDefault("jwt_secret", "your-super-secret-key-change-in-production")
	v.SetDefault("jwt_expiration", 24*time.Hour)
	v.SetDefault("server_port", "8080")
	v.AutomaticEnv()

	return &Config{
		DatabaseURL:   v.GetString("database_url"),
		JWTSecret:     v.GetString("jwt_secret"),
		JWTExpiration: v.GetDuration("jwt_expiration"),
		ServerPort:    v.GetString("server_port"),
	}
}
