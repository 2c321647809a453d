package mongodb

import (
	"fmt"
	"net/url"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
)

// Config contains MongoDB-specific connection options.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	UseTLS   bool
}

// DefaultPort returns the default MongoDB port.
func DefaultPort() int {
	return 27017
}

// FromParams creates a Config from uniform connection parameters.
func FromParams(params datasource.ConnectionParams) (*Config, error) {
	cfg := &Config{
		Host:     params.Host,
		Port:     params.Port,
		User:     params.User,
		Password: params.Password,
		Database: params.Database,
		UseTLS:   params.TLS,
	}

	if cfg.Host == "" {
		return nil, fmt.Errorf("host is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("database is required")
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort()
	}

	return cfg, nil
}

// buildURI builds a mongodb:// URI with credentials escaped.
func buildURI(cfg *Config) string {
	credentials := ""
	if cfg.User != "" {
		credentials = fmt.Sprintf("%s:%s@", url.QueryEscape(cfg.User), url.QueryEscape(cfg.Password))
	}
	return fmt.Sprintf("mongodb://%s%s:%d/%s?authSource=admin&tls=%t",
		credentials, cfg.Host, cfg.Port, url.PathEscape(cfg.Database), cfg.UseTLS)
}
