/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/reenboog/touchid/internal/system/constants"
	"github.com/reenboog/touchid/internal/system/log"

	yaml "gopkg.in/yaml.v3"
)

// Supported lock store types.
const (
	LockStoreInMemory = "inmemory"
	LockStoreSQLite   = "sqlite"
	LockStorePostgres = "postgres"
	LockStoreRedis    = "redis"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port"`
	HTTPOnly bool   `yaml:"http_only"`
	// ShutdownTimeout is the number of seconds in-flight requests get to finish on shutdown.
	ShutdownTimeout int `yaml:"shutdown_timeout"`
}

// SecurityConfig holds the security configuration details.
type SecurityConfig struct {
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// CORSConfig holds the cross-origin configuration details.
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// LockConfig holds the lock table configuration details.
type LockConfig struct {
	Store string `yaml:"store"`
	// TTL is the lifetime of a lock in seconds. Zero keeps locks until they are unlocked or purged.
	TTL             int64  `yaml:"ttl"`
	CleanupSchedule string `yaml:"cleanup_schedule"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// DatabaseConfig holds the different database configuration details.
type DatabaseConfig struct {
	Runtime DataSource `yaml:"runtime"`
}

// RedisConfig holds the redis connection details.
type RedisConfig struct {
	Address     string `yaml:"address"`
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	DB          int    `yaml:"db"`
	KeyPrefix   string `yaml:"key_prefix"`
	DialTimeout int    `yaml:"dial_timeout"`
}

// MetricsConfig holds the metrics endpoint configuration details.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Security SecurityConfig `yaml:"security"`
	CORS     CORSConfig     `yaml:"cors"`
	Lock     LockConfig     `yaml:"lock"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// DefaultConfig returns the configuration used when no deployment file is present.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Hostname:        constants.DefaultServerHostname,
			Port:            constants.DefaultServerPort,
			HTTPOnly:        true,
			ShutdownTimeout: 10,
		},
		Lock: LockConfig{
			Store:           LockStoreInMemory,
			CleanupSchedule: "@every 5m",
		},
		Database: DatabaseConfig{
			Runtime: DataSource{
				Type:            LockStoreSQLite,
				Path:            "repository/database/touchid.db",
				Options:         "_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)",
				MaxOpenConns:    50,
				MaxIdleConns:    10,
				ConnMaxLifetime: 3600,
			},
		},
		Redis: RedisConfig{
			Address:     "localhost:6379",
			KeyPrefix:   "touchid:lock:",
			DialTimeout: 5,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// LoadConfig loads the configurations from the specified YAML file on top of the defaults.
// A missing file is not an error; the defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	path = filepath.Clean(path)

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.GetLogger().Info("Configuration file not found, using defaults", log.String("path", path))
			return cfg, nil
		}
		return nil, err
	}
	defer func() {
		if ferr := file.Close(); ferr != nil {
			log.GetLogger().Error("Failed to close config file", log.Error(ferr))
		}
	}()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	// A database backed lock store selects the runtime database driver.
	if cfg.Lock.Store == LockStoreSQLite || cfg.Lock.Store == LockStorePostgres {
		cfg.Database.Runtime.Type = cfg.Lock.Store
	}
	return cfg, nil
}
