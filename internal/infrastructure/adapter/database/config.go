package database

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/domain/entity"
)

// Config represents the database configuration of one entity manager
type Config struct {
	Name            string
	Driver          string
	Host            string
	Port            int
	Username        string
	Password        string
	Database        string
	SSLMode         string
	IsolationLevel  string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	QueryTimeout    time.Duration
	LogLevel        string
	RetryAttempts   int
	RetryDelay      time.Duration
}

// isolationLevels maps accepted config values to their SQL form
var isolationLevels = map[string]string{
	"":                 "",
	"read-uncommitted": "READ UNCOMMITTED",
	"read-committed":   "READ COMMITTED",
	"repeatable-read":  "REPEATABLE READ",
	"serializable":     "SERIALIZABLE",
}

// DefaultConfig returns a Config with default values for the named manager
func DefaultConfig(name string) *Config {
	return &Config{
		Name:            name,
		Driver:          "postgres",
		Port:            5432,
		SSLMode:         "disable",
		MaxOpenConns:    20,
		MaxIdleConns:    10,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 15 * time.Minute,
		QueryTimeout:    5 * time.Second,
		LogLevel:        "info",
		RetryAttempts:   3,
		RetryDelay:      time.Second,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := entity.ValidateManagerName(c.Name); err != nil {
		return err
	}
	if c.Host == "" {
		return fmt.Errorf("manager %q: database host is required", c.Name)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("manager %q: invalid port number: %d", c.Name, c.Port)
	}
	if c.Username == "" {
		return fmt.Errorf("manager %q: database username is required", c.Name)
	}
	if c.Database == "" {
		return fmt.Errorf("manager %q: database name is required", c.Name)
	}
	if c.Driver != "postgres" {
		return fmt.Errorf("manager %q: unsupported database driver: %s", c.Name, c.Driver)
	}

	validSSLModes := map[string]bool{
		"disable":     true,
		"require":     true,
		"verify-ca":   true,
		"verify-full": true,
		"prefer":      true,
	}
	if !validSSLModes[c.SSLMode] {
		return fmt.Errorf("manager %q: invalid SSL mode: %s", c.Name, c.SSLMode)
	}
	if _, ok := isolationLevels[strings.ToLower(c.IsolationLevel)]; !ok {
		return fmt.Errorf("manager %q: invalid isolation level: %s", c.Name, c.IsolationLevel)
	}

	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("manager %q: max open connections must be positive, got: %d", c.Name, c.MaxOpenConns)
	}
	if c.MaxIdleConns <= 0 {
		return fmt.Errorf("manager %q: max idle connections must be positive, got: %d", c.Name, c.MaxIdleConns)
	}
	if c.QueryTimeout <= 0 {
		return errors.New("query timeout must be positive")
	}
	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts must be non-negative, got: %d", c.RetryAttempts)
	}
	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay must be non-negative, got: %s", c.RetryDelay)
	}

	return nil
}

// DSN returns the database connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.Database, c.SSLMode,
	)
}

// IsolationSQL returns the SQL isolation level, empty for the server default
func (c *Config) IsolationSQL() string {
	return isolationLevels[strings.ToLower(c.IsolationLevel)]
}
