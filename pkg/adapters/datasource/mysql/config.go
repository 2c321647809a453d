package mysql

import (
	"fmt"
	"net/url"
	"time"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
)

// Config contains MySQL-specific connection options.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	UseTLS   bool
}

// DefaultPort returns the default MySQL port.
func DefaultPort() int {
	return 3306
}

// FromParams creates a Config from uniform connection parameters.
func FromParams(params datasource.ConnectionParams) (*Config, error) {
	cfg := &Config{
		Host:     params.Host,
		Port:     params.Port,
		User:     params.User,
		Password: params.Password,
		Database: params.Database,
		UseTLS:   params.TLS || params.SSLMode == "require",
	}

	if cfg.Host == "" {
		return nil, fmt.Errorf("host is required")
	}
	if cfg.User == "" {
		return nil, fmt.Errorf("user is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("database is required")
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort()
	}

	return cfg, nil
}

// buildDSN builds a go-sql-driver DSN with the dial timeout applied.
func buildDSN(cfg *Config, connectTimeout time.Duration) string {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?timeout=%s&parseTime=true",
		cfg.User, cfg.Password, cfg.Host, cfg.Port,
		url.PathEscape(cfg.Database), connectTimeout)
	if cfg.UseTLS {
		dsn += "&tls=true"
	}
	return dsn
}
