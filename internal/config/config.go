package config

import (
	"errors"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env          string
	LogLevel     string
	ListenAddr   string
	DBType       string
	DBDSN        string
	FileFlow     string
	FileCycles   string
	FileSymptoms string
	FileSettings string
	FileUsers    string
	AuthURL      string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:          getEnv("APP_ENV", "development"),
			LogLevel:     getEnv("LOG_LEVEL", "info"),
			ListenAddr:   getEnv("LISTEN_ADDR", ":8090"),
			DBType:       getEnv("STORAGE_BACKEND", "file"),
			DBDSN:        getEnv("POSTGRES_DSN", ""),
			FileFlow:     getEnv("FLOW_FILE", "data/flow_logs.json"),
			FileCycles:   getEnv("CYCLES_FILE", "data/cycles.json"),
			FileSymptoms: getEnv("SYMPTOMS_FILE", "data/symptoms.json"),
			FileSettings: getEnv("SETTINGS_FILE", "data/settings.json"),
			FileUsers:    getEnv("USERS_FILE", "data/users.json"),
			AuthURL:      getEnv("AUTH_SERVICE_URL", ""),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	if c.DBType != "file" && c.DBType != "postgres" {
		return errors.New("STORAGE_BACKEND must be one of: file, postgres")
	}
	if c.DBType == "postgres" && c.DBDSN == "" {
		return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
	}
	if c.DBType == "file" && (c.FileFlow == "" || c.FileCycles == "" || c.FileSymptoms == "" || c.FileSettings == "") {
		return errors.New("file storage requires FLOW_FILE, CYCLES_FILE, SYMPTOMS_FILE and SETTINGS_FILE to be set")
	}
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Env != "development" && c.AuthURL == "" {
		return errors.New("AUTH_SERVICE_URL is required outside development")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
