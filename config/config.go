package config

import (
	"fmt"
	"os"
)

// Config carries every runtime setting. It is built once in main and passed
// by reference; nothing else reads the environment.
type Config struct {
	Port     string
	MongoURI string
	DBName   string

	RedisAddr string
	RedisPass string

	JWTSecret []byte

	AdminEmail    string
	AdminPassword string
	AdminID       string

	CloudinaryURL string
}

// Load reads the process environment into a Config. MongoURI and the JWT
// secret are mandatory; everything else has a default or is optional.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          getenv("PORT", "4000"),
		MongoURI:      os.Getenv("MONGO_URI"),
		DBName:        getenv("DB_NAME", "unitunes"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPass:     os.Getenv("REDIS_PASS"),
		JWTSecret:     []byte(os.Getenv("JWT_SECRET")),
		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminID:       getenv("ADMIN_ID", "admin"),
		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI not set in environment")
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET not set in environment")
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
