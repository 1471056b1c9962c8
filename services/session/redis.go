package session

import (
	"context"
	"fmt"
	"time"

	"shujia/models"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// RedisStore keeps session state in Redis, JSON-encoded under
// session:{id}:{name} keys with a TTL refreshed on every write.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisStore(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (s *RedisStore) key(sessionID, name string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, name)
}

func (s *RedisStore) get(ctx context.Context, sessionID, name string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key(sessionID, name)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("session: failed to read %s: %w", name, err)
	}
	return data, nil
}

func (s *RedisStore) Cart(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	data, err := s.get(ctx, sessionID, cartKey)
	if err != nil {
		return nil, err
	}
	items, err := decodeCart(data)
	if err != nil {
		s.logger.Warn("session: corrupt cart value, treating as absent",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, ErrNotFound
	}
	return items, nil
}

func (s *RedisStore) SaveCart(ctx context.Context, sessionID string, items []models.CartItem) error {
	data, err := encodeCart(items)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(sessionID, cartKey), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: failed to store cart: %w", err)
	}
	return nil
}

func (s *RedisStore) BookingData(ctx context.Context, sessionID string) (*models.BookingFormData, error) {
	data, err := s.get(ctx, sessionID, bookingDataKey)
	if err != nil {
		return nil, err
	}
	form, err := decodeBookingData(data)
	if err != nil {
		s.logger.Warn("session: corrupt booking data value, treating as absent",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, ErrNotFound
	}
	return form, nil
}

func (s *RedisStore) SaveBookingData(ctx context.Context, sessionID string, form models.BookingFormData) error {
	data, err := encodeBookingData(form)
	if err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key(sessionID, bookingDataKey), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("session: failed to store booking data: %w", err)
	}
	return nil
}

func (s *RedisStore) ClearBookingState(ctx context.Context, sessionID string) error {
	keys := []string{
		s.key(sessionID, cartKey),
		s.key(sessionID, bookingDataKey),
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("session: failed to clear booking state: %w", err)
	}
	return nil
}
