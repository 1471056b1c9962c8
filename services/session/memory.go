package session

import (
	"context"
	"fmt"
	"sync"

	"shujia/models"
)

// MemoryStore is an in-process Store with the same encode/decode semantics as
// the Redis store. Used by tests and local runs without Redis.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

func (s *MemoryStore) key(sessionID, name string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, name)
}

func (s *MemoryStore) get(sessionID, name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.values[s.key(sessionID, name)]
	return data, ok
}

func (s *MemoryStore) set(sessionID, name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[s.key(sessionID, name)] = data
}

func (s *MemoryStore) Cart(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	data, ok := s.get(sessionID, cartKey)
	if !ok {
		return nil, ErrNotFound
	}
	items, err := decodeCart(data)
	if err != nil {
		return nil, ErrNotFound
	}
	return items, nil
}

func (s *MemoryStore) SaveCart(ctx context.Context, sessionID string, items []models.CartItem) error {
	data, err := encodeCart(items)
	if err != nil {
		return err
	}
	s.set(sessionID, cartKey, data)
	return nil
}

func (s *MemoryStore) BookingData(ctx context.Context, sessionID string) (*models.BookingFormData, error) {
	data, ok := s.get(sessionID, bookingDataKey)
	if !ok {
		return nil, ErrNotFound
	}
	form, err := decodeBookingData(data)
	if err != nil {
		return nil, ErrNotFound
	}
	return form, nil
}

func (s *MemoryStore) SaveBookingData(ctx context.Context, sessionID string, form models.BookingFormData) error {
	data, err := encodeBookingData(form)
	if err != nil {
		return err
	}
	s.set(sessionID, bookingDataKey, data)
	return nil
}

func (s *MemoryStore) ClearBookingState(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, s.key(sessionID, cartKey))
	delete(s.values, s.key(sessionID, bookingDataKey))
	return nil
}

// Seed writes a raw value under a session key, bypassing the codec. Test
// helper for exercising the corrupt-value path.
func (s *MemoryStore) Seed(sessionID, name string, data []byte) {
	s.set(sessionID, name, data)
}
