// Package store provides the key-value persistence collaborator backing
// bookings and contact submissions. Values are JSON documents keyed by
// string; Redis is the concrete store.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a key has no value in the store.
var ErrNotFound = errors.New("store: key not found")

// Config holds store connection configuration
type Config struct {
	Addr     string // Redis server address (host:port)
	Password string // Redis password (empty if no password)
	DB       int    // Redis database number (0-15)
}

// Store is the generic key-value collaborator. It is constructed once
// and injected into every repository; there is no package-level client.
type Store interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error

	// Client exposes the underlying Redis client for scripted
	// compare-and-swap operations that the plain get/set surface
	// cannot express.
	Client() *redis.Client
}

type redisStore struct {
	client *redis.Client
}

// New wraps an existing Redis client as a Store.
func New(client *redis.Client) Store {
	return &redisStore{client: client}
}

// Connect dials Redis and verifies the connection before returning a Store.
func Connect(cfg Config) (Store, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("store address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to store at %s: %w", cfg.Addr, err)
	}

	return New(client), nil
}

func (s *redisStore) GetJSON(ctx context.Context, key string, dest interface{}) error {
	val, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return fmt.Errorf("store get %q: %w", key, err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return fmt.Errorf("store unmarshal %q: %w", key, err)
	}

	return nil
}

func (s *redisStore) SetJSON(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store marshal %q: %w", key, err)
	}

	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("store set %q: %w", key, err)
	}

	return nil
}

func (s *redisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("store delete %q: %w", key, err)
	}
	return nil
}

func (s *redisStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("store ping failed: %w", err)
	}
	return nil
}

func (s *redisStore) Client() *redis.Client {
	return s.client
}
