package app

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/tanaoroshi/masterdata-backend/internal/db"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/envutil"
)

type ServerConfig struct {
	Port         string   `yaml:"port"`
	Mode         string   `yaml:"mode"`
	AllowOrigins []string `yaml:"allow_origins"`
}

type LogConfig struct {
	Mode  string `yaml:"mode"`
	Level string `yaml:"level"`
}

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	SSLMode  string `yaml:"sslmode"`
}

// Config is built once at startup and handed to every component that needs
// it; nothing reads configuration globally after boot.
type Config struct {
	Env      string         `yaml:"-"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Database DatabaseConfig `yaml:"database"`
}

func defaultConfig() Config {
	return Config{
		Server: ServerConfig{Port: "8080", Mode: "debug"},
		Log:    LogConfig{Mode: "development", Level: "debug"},
		Database: DatabaseConfig{
			Host:    "localhost",
			Port:    "5432",
			User:    "postgres",
			Name:    "masterdata",
			SSLMode: "disable",
		},
	}
}

// LoadConfig layers config.yaml, config.<env>.yaml and environment
// variables from dir, later sources winning per field.
func LoadConfig(dir string) (Config, error) {
	cfg := defaultConfig()
	cfg.Env = envutil.String("APP_ENV", "local")

	for _, name := range []string{"config.yaml", fmt.Sprintf("config.%s.yaml", cfg.Env)} {
		path := filepath.Join(dir, name)
		raw, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return cfg, err
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.Server.Port = envutil.String("PORT", cfg.Server.Port)
	cfg.Server.Mode = envutil.String("GIN_MODE", cfg.Server.Mode)
	cfg.Log.Mode = envutil.String("LOG_MODE", cfg.Log.Mode)
	cfg.Log.Level = envutil.String("LOG_LEVEL", cfg.Log.Level)
	cfg.Database.Host = envutil.String("POSTGRES_HOST", cfg.Database.Host)
	cfg.Database.Port = envutil.String("POSTGRES_PORT", cfg.Database.Port)
	cfg.Database.User = envutil.String("POSTGRES_USER", cfg.Database.User)
	cfg.Database.Password = envutil.String("POSTGRES_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = envutil.String("POSTGRES_NAME", cfg.Database.Name)
	cfg.Database.SSLMode = envutil.String("POSTGRES_SSLMODE", cfg.Database.SSLMode)

	return cfg, nil
}

func (c Config) DBConfig() db.Config {
	return db.Config{
		Host:     c.Database.Host,
		Port:     c.Database.Port,
		User:     c.Database.User,
		Password: c.Database.Password,
		Name:     c.Database.Name,
		SSLMode:  c.Database.SSLMode,
	}
}
