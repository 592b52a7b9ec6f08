package fourteeners

import (
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_HOST", "db.example.com")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "reader")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "")
	t.Setenv("IMAGE_BASE_URL", "")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if cfg.DBName != "postgres" {
		t.Errorf("DBName = %q, want postgres", cfg.DBName)
	}
	if cfg.ImageBaseURL != DefaultImageBaseURL {
		t.Errorf("ImageBaseURL = %q, want default", cfg.ImageBaseURL)
	}
}

func TestLoadConfigMissingVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PORT", "")

	_, err := LoadConfig()
	if err == nil {
		t.Fatal("LoadConfig() should fail with missing vars")
	}
	// Every missing variable is named, not just the first.
	for _, want := range []string{"DB_USER", "DB_PORT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should name %s", err, want)
		}
	}
	if strings.Contains(err.Error(), "DB_HOST") {
		t.Errorf("error %q should not name variables that are set", err)
	}
}

func TestConfigDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.example.com",
		DBPort:     "6543",
		DBUser:     "reader",
		DBPassword: "p@ss/word",
		DBName:     "postgres",
	}

	dsn := cfg.DSN()
	if !strings.HasPrefix(dsn, "postgres://") {
		t.Errorf("DSN = %q", dsn)
	}
	if !strings.Contains(dsn, "@db.example.com:6543/postgres") {
		t.Errorf("DSN = %q, missing host/port/name", dsn)
	}
	// Credentials with reserved characters must be escaped.
	if strings.Contains(dsn, "p@ss/word") {
		t.Errorf("DSN = %q, password not escaped", dsn)
	}
}
