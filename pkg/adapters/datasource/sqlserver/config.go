package sqlserver

import (
	"fmt"
	"net/url"
	"time"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
)

// Config contains SQL Server-specific connection options.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string

	Encrypt                bool
	TrustServerCertificate bool
}

// DefaultPort returns the default SQL Server port.
func DefaultPort() int {
	return 1433
}

// FromParams creates a Config from uniform connection parameters.
func FromParams(params datasource.ConnectionParams) (*Config, error) {
	cfg := &Config{
		Host:     params.Host,
		Port:     params.Port,
		User:     params.User,
		Password: params.Password,
		Database: params.Database,
		Encrypt:  params.TLS || params.SSLMode == "" || params.SSLMode == "require",
	}

	if params.SSLMode == "disable" {
		cfg.Encrypt = false
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

// buildConnectionString builds a sqlserver:// URL with proper escaping and
// the dial timeout applied.
func buildConnectionString(cfg *Config, connectTimeout time.Duration) string {
	query := url.Values{}
	query.Set("database", cfg.Database)
	query.Set("connection timeout", fmt.Sprintf("%d", int(connectTimeout.Seconds())))
	if cfg.Encrypt {
		query.Set("encrypt", "true")
	} else {
		query.Set("encrypt", "disable")
	}
	if cfg.TrustServerCertificate {
		query.Set("TrustServerCertificate", "true")
	}

	u := &url.URL{
		Scheme:   "sqlserver",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		RawQuery: query.Encode(),
	}
	return u.String()
}
