package config

import (
	"errors"
	"fmt"
	"net"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds all configuration for polingest.
// Configuration can come from a YAML file or environment variables.
// Environment variables always override YAML values.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"POLINGEST_BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"POLINGEST_PORT" env-default:"3000"`

	// DataDir is the BadgerDB directory.
	DataDir string `yaml:"data_dir" env:"POLINGEST_DATA_DIR" env-default:"./data"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"POLINGEST_LOG_LEVEL" env-default:"info"`

	Ingest IngestConfig `yaml:"ingest"`
	Upload UploadConfig `yaml:"upload"`
}

// IngestConfig holds background ingestion settings.
type IngestConfig struct {
	// Workers is the number of files ingested concurrently.
	Workers int `yaml:"workers" env:"POLINGEST_WORKERS" env-default:"2"`
	// QueueSize is how many uploads may wait for a worker before new ones are rejected.
	QueueSize int `yaml:"queue_size" env:"POLINGEST_QUEUE_SIZE" env-default:"64"`
	// Upsert reuses stored entities with the same natural key instead of inserting duplicates.
	Upsert bool `yaml:"upsert" env:"POLINGEST_UPSERT" env-default:"false"`
}

// UploadConfig holds upload endpoint settings.
type UploadConfig struct {
	// Dir receives uploaded files until they are ingested.
	Dir string `yaml:"dir" env:"POLINGEST_UPLOAD_DIR" env-default:"./uploads"`
	// MaxSizeMB caps the size of one upload.
	MaxSizeMB int64 `yaml:"max_size_mb" env:"POLINGEST_UPLOAD_MAX_SIZE_MB" env-default:"32"`
	// Remove deletes each upload after its job finishes.
	Remove bool `yaml:"remove" env:"POLINGEST_UPLOAD_REMOVE" env-default:"true"`
}

// Load reads configuration from path with environment variable overrides.
// An empty path reads the environment only.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error
	if c.Port == "" {
		errs = append(errs, errors.New("port must be set"))
	}
	if c.DataDir == "" {
		errs = append(errs, errors.New("data_dir must be set"))
	}
	if c.Ingest.Workers < 1 {
		errs = append(errs, fmt.Errorf("ingest.workers must be at least 1, got %d", c.Ingest.Workers))
	}
	if c.Ingest.QueueSize < 1 {
		errs = append(errs, fmt.Errorf("ingest.queue_size must be at least 1, got %d", c.Ingest.QueueSize))
	}
	if c.Upload.MaxSizeMB < 1 {
		errs = append(errs, fmt.Errorf("upload.max_size_mb must be at least 1, got %d", c.Upload.MaxSizeMB))
	}
	return errors.Join(errs...)
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.BindAddr, c.Port)
}

// MaxUploadBytes returns the upload size cap in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.Upload.MaxSizeMB << 20
}
