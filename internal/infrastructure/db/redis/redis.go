package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultTimeout = 5 * time.Second
	defaultAddr    = "localhost:6379"

	// clientName shows up in CLIENT LIST, which helps telling the
	// catalog cache apart from other consumers of a shared instance.
	clientName = "travel-booking"
)

// Config captures the settings for the Redis instance backing the
// destination catalog cache. An empty Addr selects the local default.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect initialises the Redis client and validates connectivity with a
// ping before the catalog cache is wired on top of it.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	addr := cfg.Addr
	if addr == "" {
		addr = defaultAddr
	}

	client := redis.NewClient(&redis.Options{
		Addr:       addr,
		DB:         cfg.DB,
		ClientName: clientName,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
