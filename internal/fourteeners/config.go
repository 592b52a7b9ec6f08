package fourteeners

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultImageBaseURL is the public storage prefix for mountain images.
const DefaultImageBaseURL = "https://kxvaohpqmhdtptwnaoyb.supabase.co/storage/v1/object/public/mountains/"

// Config holds database connection settings and dataset options.
type Config struct {
	// DBHost is the Postgres host (required).
	DBHost string

	// DBPort is the Postgres port (required).
	DBPort string

	// DBUser is the database user (required).
	DBUser string

	// DBPassword is the database password (required).
	DBPassword string

	// DBName is the database name. Defaults to "postgres".
	DBName string

	// ImageBaseURL is prepended to image filenames to form image URLs.
	ImageBaseURL string
}

// LoadConfig loads configuration from the environment, reading a .env file
// first if one is present.
func LoadConfig() (*Config, error) {
	// A missing .env file is not an error; env vars may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       os.Getenv("DB_PORT"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		ImageBaseURL: os.Getenv("IMAGE_BASE_URL"),
	}

	if cfg.DBName == "" {
		cfg.DBName = "postgres"
	}
	if cfg.ImageBaseURL == "" {
		cfg.ImageBaseURL = DefaultImageBaseURL
	}

	var missing []string
	if cfg.DBUser == "" {
		missing = append(missing, "DB_USER")
	}
	if cfg.DBPassword == "" {
		missing = append(missing, "DB_PASSWORD")
	}
	if cfg.DBHost == "" {
		missing = append(missing, "DB_HOST")
	}
	if cfg.DBPort == "" {
		missing = append(missing, "DB_PORT")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// DSN returns a Postgres connection string for pgxpool.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		url.QueryEscape(c.DBUser),
		url.QueryEscape(c.DBPassword),
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
