package redis

import (
	"fmt"
	"strconv"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
)

// Config contains Redis-specific connection options.
type Config struct {
	Host     string
	Port     int
	Password string
	// DB is the logical database index the connection starts on.
	DB     int
	UseTLS bool
}

// DefaultPort returns the default Redis port.
func DefaultPort() int {
	return 6379
}

// FromParams creates a Config from uniform connection parameters. The
// Database field, when set, must be a numeric logical database index.
func FromParams(params datasource.ConnectionParams) (*Config, error) {
	cfg := &Config{
		Host:     params.Host,
		Port:     params.Port,
		Password: params.Password,
		UseTLS:   params.TLS,
	}

	if cfg.Host == "" {
		return nil, fmt.Errorf("host is required")
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort()
	}
	if params.Database != "" {
		db, err := strconv.Atoi(params.Database)
		if err != nil {
			return nil, fmt.Errorf("database must be a numeric redis db index: %w", err)
		}
		cfg.DB = db
	}

	return cfg, nil
}

// Addr returns the host:port address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
