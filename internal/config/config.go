package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type CORS struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Config struct {
	Listen  string  `yaml:"listen"`
	Logger  Logger  `yaml:"logger"`
	Storage Storage `yaml:"storage"`
	Admin   Admin   `yaml:"admin"`
	CORS    CORS    `yaml:"cors"`
}

type Logger struct {
	Level string `yaml:"level"`
}

type Storage struct {
	Database string `yaml:"database"`
	Logo     string `yaml:"logo"`
}

// Admin holds the shared admin secret. When PasswordHash is set it is a
// bcrypt hash and takes precedence over the plain Password.
type Admin struct {
	Password     string `yaml:"password"`
	PasswordHash string `yaml:"password_hash"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, err
	}

	if cfg.Listen == "" {
		cfg.Listen = ":8000"
	}
	if cfg.Storage.Database == "" {
		cfg.Storage.Database = "data/quizboard.db"
	}
	if cfg.Admin.Password == "" && cfg.Admin.PasswordHash == "" {
		cfg.Admin.Password = "admin123"
	}

	return &cfg, nil
}
