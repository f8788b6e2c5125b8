// Package redis keeps session carts in Redis so that they survive restarts
// and are shared between replicas.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "cart:"

// Options configures the Redis connection.
type Options struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewClient connects to Redis and checks the connection.
func NewClient(ctx context.Context, opts Options) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     fmt.Sprintf("%s:%d", opts.Host, opts.Port),
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return client, nil
}

// CartStore implements ports.CartStore. Each cart is a JSON object of
// product id to quantity; every save renews its TTL.
type CartStore struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewCartStore(client *goredis.Client, ttl time.Duration) *CartStore {
	return &CartStore{client: client, ttl: ttl}
}

func (s *CartStore) Load(ctx context.Context, session kernel.UUID) (*cart.Cart, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.client.Get(ctx, key(session)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return cart.NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not load cart: %w", err)
	}

	var items map[int64]int
	if err = json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("could not decode cart: %w", err)
	}
	return cart.RestoreCart(items), nil
}

// Save replaces the stored cart. Saving an empty cart removes the key.
func (s *CartStore) Save(ctx context.Context, session kernel.UUID, c *cart.Cart) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if c == nil || c.IsEmpty() {
		return s.Delete(ctx, session)
	}

	raw, err := json.Marshal(c.Items())
	if err != nil {
		return err
	}
	if err = s.client.Set(ctx, key(session), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("could not save cart: %w", err)
	}
	return nil
}

func (s *CartStore) Delete(ctx context.Context, session kernel.UUID) error {
	if err := session.Validate(); err != nil {
		return err
	}
	if err := s.client.Del(ctx, key(session)).Err(); err != nil {
		return fmt.Errorf("could not delete cart: %w", err)
	}
	return nil
}

func key(session kernel.UUID) string {
	return keyPrefix + session.String()
}
