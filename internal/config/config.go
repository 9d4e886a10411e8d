// Package config loads and exposes the application configuration.
// Configuration lives in a TOML file with multi-path lookup; secrets can be
// overridden through the environment (a .env file is honoured when present).
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// MainConfig holds the basic application settings.
type MainConfig struct {
	AppName         string `toml:"appName"`         // used in log identification
	Host            string `toml:"host"`            // listen address, e.g. "0.0.0.0"
	Port            int    `toml:"port"`            // listen port, e.g. 5000
	Mode            string `toml:"mode"`            // "dev" or "release"
	TLSRedirect     bool   `toml:"tlsRedirect"`     // redirect plain HTTP to HTTPS
	TLSRedirectHost string `toml:"tlsRedirectHost"` // external host used for the redirect
}

// MysqlConfig holds the MySQL connection settings.
type MysqlConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DatabaseName string `toml:"databaseName"`
}

// LogConfig configures zap output and lumberjack rotation.
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // log directory
	FileName   string `toml:"fileName"`   // log file name
	MaxSize    int    `toml:"maxSize"`    // max size of one log file (MB)
	MaxBackups int    `toml:"maxBackups"` // rotated files kept
	MaxAge     int    `toml:"maxAge"`     // days rotated files are kept
	Level      string `toml:"level"`      // debug, info, warn, error
}

// JWTConfig holds the session-token settings.
type JWTConfig struct {
	Secret           string `toml:"secret"`           // HS256 signing key
	TokenExpiryHours int    `toml:"tokenExpiryHours"` // session token lifetime
}

// CorsConfig lists the browser origins allowed to call the API.
type CorsConfig struct {
	AllowOrigins []string `toml:"allowOrigins"`
}

// StorageConfig configures where uploaded files (profile photos, payment
// proofs) are kept and the public URL they are served under.
type StorageConfig struct {
	UploadPath string `toml:"uploadPath"` // local directory for stored objects
	BaseURL    string `toml:"baseURL"`    // public prefix, e.g. "/static/uploads"
}

// Config aggregates all sections.
type Config struct {
	MainConfig    `toml:"mainConfig"`
	MysqlConfig   `toml:"mysqlConfig"`
	LogConfig     `toml:"logConfig"`
	JWTConfig     `toml:"jwtConfig"`
	CorsConfig    `toml:"corsConfig"`
	StorageConfig `toml:"storageConfig"`
}

// config is the lazily loaded singleton.
var config *Config

// LoadConfig reads the first configuration file found among the candidate
// paths, then applies environment overrides.
func LoadConfig() error {
	// Local overrides take precedence over the checked-in defaults.
	paths := []string{
		"configs/config_local.toml",
		"configs/config.toml",
		"../../configs/config_local.toml",
		"../../configs/config.toml",
	}

	loaded := false
	for _, path := range paths {
		if _, err := toml.DecodeFile(path, config); err == nil {
			loaded = true
			break
		}
	}
	if !loaded {
		return fmt.Errorf("could not find configuration file in any of the search paths")
	}

	applyEnvOverrides(config)
	return nil
}

// applyEnvOverrides lets deployment environments inject secrets without
// touching the TOML file. A .env file in the working directory is read first.
func applyEnvOverrides(c *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("JWT_SECRET"); v != "" {
		c.JWTConfig.Secret = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		c.MysqlConfig.Password = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		c.MysqlConfig.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.MainConfig.Port = port
		}
	}
}

// GetConfig returns the singleton configuration, loading it on first use.
// A missing configuration file is fatal: running with zero values would mean
// an empty signing secret and port 0. The zap logger is not up yet, so the
// standard logger reports the failure.
func GetConfig() *Config {
	if config == nil {
		config = new(Config)
		if err := LoadConfig(); err != nil {
			log.Fatalln("loading configuration failed:", err)
		}
	}
	return config
}
