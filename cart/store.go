package cart

import (
	"context"

	"github.com/Luxera/luxera-api/models"
)

// Store binds cart operations to a Storage port. Every mutation follows
// load, mutate, save; the saved snapshot is the whole cart.
type Store struct {
	storage Storage
}

func NewStore(storage Storage) *Store {
	return &Store{storage: storage}
}

func (s *Store) load(ctx context.Context, sessionID string) (Cart, error) {
	items, err := s.storage.Load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	return Cart{Items: items}, nil
}

// Get returns the current cart for the session. A missing session is an
// empty cart, not an error.
func (s *Store) Get(ctx context.Context, sessionID string) (Cart, error) {
	return s.load(ctx, sessionID)
}

func (s *Store) Add(ctx context.Context, sessionID string, product models.Product, quantity int, options map[string]string) (Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	c.Add(product, quantity, options)
	if err := s.storage.Save(ctx, sessionID, c.Items); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (s *Store) UpdateQuantity(ctx context.Context, sessionID string, productID uint, quantity int) (Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	c.UpdateQuantity(productID, quantity)
	if err := s.storage.Save(ctx, sessionID, c.Items); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (s *Store) Remove(ctx context.Context, sessionID string, productID uint) (Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	c.Remove(productID)
	if err := s.storage.Save(ctx, sessionID, c.Items); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.storage.Save(ctx, sessionID, nil)
}
