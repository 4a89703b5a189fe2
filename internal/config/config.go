package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/xxxsen/common/logger"
)

const (
	StoreTypeFile   = "file"
	StoreTypeMemory = "memory"
)

type StoreConfig struct {
	Type string `json:"type"`
	Path string `json:"path"`
}

type Config struct {
	Port        int              `json:"port"`
	Store       StoreConfig      `json:"store"`
	CORSOrigins []string         `json:"cors_origins"`
	LogConfig   logger.LogConfig `json:"log_config"`
}

// Load reads the optional JSON config file, applies environment
// overrides (a .env file is honored), then fills defaults and validates.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()
		if err := json.NewDecoder(file).Decode(&cfg); err != nil {
			return nil, fmt.Errorf("decode config: %w", err)
		}
	}

	_ = godotenv.Load()
	if value := os.Getenv("PORT"); value != "" {
		port, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %w", err)
		}
		cfg.Port = port
	}
	if value := os.Getenv("STORE_TYPE"); value != "" {
		cfg.Store.Type = value
	}
	if value := os.Getenv("STORE_PATH"); value != "" {
		cfg.Store.Path = value
	}

	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("port out of range: %d", cfg.Port)
	}
	if cfg.Store.Type == "" {
		cfg.Store.Type = StoreTypeFile
	}
	switch cfg.Store.Type {
	case StoreTypeFile:
		if cfg.Store.Path == "" {
			cfg.Store.Path = "data/notes.json"
		}
	case StoreTypeMemory:
	default:
		return nil, fmt.Errorf("store.type must be %s or %s", StoreTypeFile, StoreTypeMemory)
	}
	if len(cfg.CORSOrigins) == 0 {
		cfg.CORSOrigins = []string{"http://localhost:3000", "https://localhost:3000"}
	}
	if cfg.LogConfig.Level == "" {
		cfg.LogConfig.Level = "info"
	}
	if cfg.LogConfig.File == "" {
		cfg.LogConfig.Console = true
	}
	return &cfg, nil
}
