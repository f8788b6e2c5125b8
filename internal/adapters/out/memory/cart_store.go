// Package memory provides an in-process cart store. Carts live as long as the
// process and are not shared between replicas.
package memory

import (
	"context"
	"sync"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
)

// CartStore implements ports.CartStore with a mutex-guarded map.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]map[int64]int
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]map[int64]int)}
}

// Load returns a copy of the stored cart, or an empty cart.
func (s *CartStore) Load(_ context.Context, session kernel.UUID) (*cart.Cart, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, ok := s.carts[session.String()]
	if !ok {
		return cart.NewCart(), nil
	}
	return cart.RestoreCart(items), nil
}

// Save replaces the stored cart. Saving an empty cart removes it.
func (s *CartStore) Save(_ context.Context, session kernel.UUID, c *cart.Cart) error {
	if err := session.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if c == nil || c.IsEmpty() {
		delete(s.carts, session.String())
		return nil
	}
	s.carts[session.String()] = c.Items()
	return nil
}

func (s *CartStore) Delete(_ context.Context, session kernel.UUID) error {
	if err := session.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, session.String())
	return nil
}
