package database

import (
	"fmt"

	"github.com/amirhossein-jamali/multi-manager-coordinator/internal/infrastructure/config"
)

// ConfigsFromAppConfig builds one database Config per configured manager.
// Manager fields override the shared database section.
func ConfigsFromAppConfig(conf *config.Config) ([]*Config, error) {
	configs := make([]*Config, 0, len(conf.Managers))
	seen := make(map[string]bool, len(conf.Managers))

	for _, m := range conf.Managers {
		if seen[m.Name] {
			return nil, fmt.Errorf("manager %q is configured more than once", m.Name)
		}
		seen[m.Name] = true

		dbConf := CreateConfigFromViperConfig(conf, m)
		if err := dbConf.Validate(); err != nil {
			return nil, err
		}
		configs = append(configs, dbConf)
	}

	return configs, nil
}

// CreateConfigFromViperConfig adapts the global configuration to the database
// configuration of one manager
func CreateConfigFromViperConfig(conf *config.Config, m config.ManagerConfig) *Config {
	dbConf := DefaultConfig(m.Name)
	shared := conf.Database

	if shared.Driver != "" {
		dbConf.Driver = shared.Driver
	}
	dbConf.Host = firstNonEmpty(m.Host, shared.Host)
	if port := ParsePort(firstNonEmpty(m.Port, shared.Port)); port > 0 {
		dbConf.Port = port
	}
	dbConf.Username = firstNonEmpty(m.Username, shared.Username)
	dbConf.Password = firstNonEmpty(m.Password, shared.Password)
	dbConf.Database = m.Database
	if sslMode := firstNonEmpty(m.SSLMode, shared.SSLMode); sslMode != "" {
		dbConf.SSLMode = sslMode
	}
	dbConf.IsolationLevel = firstNonEmpty(m.IsolationLevel, shared.IsolationLevel)

	if shared.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = shared.MaxOpenConns
	}
	if m.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = m.MaxOpenConns
	}
	if shared.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = shared.MaxIdleConns
	}
	if m.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = m.MaxIdleConns
	}
	if shared.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = shared.ConnMaxLifetime
	}
	if shared.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = shared.ConnMaxIdleTime
	}
	if shared.QueryTimeout > 0 {
		dbConf.QueryTimeout = shared.QueryTimeout
	}
	if shared.RetryAttempts >= 0 {
		dbConf.RetryAttempts = shared.RetryAttempts
	}
	if shared.RetryDelay > 0 {
		dbConf.RetryDelay = shared.RetryDelay
	}
	if conf.Logger.Level != "" {
		dbConf.LogLevel = conf.Logger.Level
	}

	return dbConf
}

// ParsePort converts a port string to an int
func ParsePort(port string) int {
	var p int
	_, err := fmt.Sscanf(port, "%d", &p)
	if err != nil || p <= 0 || p > 65535 {
		return 0 // Return 0 to signal not set instead of defaulting
	}
	return p
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
