package redis

import (
	"context"
	"crypto/tls"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/privalens/privalens-engine/pkg/adapters/datasource"
	"github.com/privalens/privalens-engine/pkg/apperrors"
)

// Adapter provides Redis connectivity. Logical databases (db0, db1, ...)
// are presented as keyspace "tables"; keys and their values form the rows.
type Adapter struct {
	config      *Config
	dialTimeout time.Duration

	mu      sync.Mutex
	clients map[int]*redis.Client // one client per logical database index
}

// NewAdapter creates a Redis adapter and verifies reachability within the
// connect timeout from params.
func NewAdapter(ctx context.Context, params datasource.ConnectionParams) (*Adapter, error) {
	cfg, err := FromParams(params)
	if err != nil {
		return nil, apperrors.NewConnectionError("redis", err)
	}

	a := &Adapter{
		config:      cfg,
		dialTimeout: params.EffectiveConnectTimeout(),
		clients:     make(map[int]*redis.Client),
	}

	pingCtx, cancel := context.WithTimeout(ctx, a.dialTimeout)
	defer cancel()
	if err := a.client(cfg.DB).Ping(pingCtx).Err(); err != nil {
		a.Close()
		return nil, apperrors.NewConnectionError("redis", err)
	}

	return a, nil
}

// client returns (creating if needed) the client for one logical database.
func (a *Adapter) client(db int) *redis.Client {
	a.mu.Lock()
	defer a.mu.Unlock()

	if c, ok := a.clients[db]; ok {
		return c
	}

	opts := &redis.Options{
		Addr:        a.config.Addr(),
		Password:    a.config.Password,
		DB:          db,
		DialTimeout: a.dialTimeout,
	}
	if a.config.UseTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	c := redis.NewClient(opts)
	a.clients[db] = c
	return c
}

// TestConnection verifies the server is reachable with valid credentials.
func (a *Adapter) TestConnection(ctx context.Context) error {
	if err := a.client(a.config.DB).Ping(ctx).Err(); err != nil {
		return apperrors.NewConnectionError("redis", err)
	}
	return nil
}

// Close releases all per-database clients.
func (a *Adapter) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	var firstErr error
	for _, c := range a.clients {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.clients = make(map[int]*redis.Client)
	return firstErr
}

// dbIndexFromName converts a keyspace table name ("db0") back to its index.
func dbIndexFromName(name string) (int, bool) {
	if !strings.HasPrefix(name, "db") {
		return 0, false
	}
	idx, err := strconv.Atoi(name[2:])
	if err != nil || idx < 0 {
		return 0, false
	}
	return idx, true
}

// Compile-time capability checks.
var (
	_ datasource.ConnectionTester   = (*Adapter)(nil)
	_ datasource.SchemaIntrospector = (*Adapter)(nil)
	_ datasource.RowSampler         = (*Adapter)(nil)
)
