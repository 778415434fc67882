package tokenstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"midtrans_gateway/internal/domain/entities"
	"midtrans_gateway/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

// Physical key expiry. Garbage collection only: freshness is decided by
// the record's created_at against entities.SnapTokenTTL, never by Redis.
const physicalTTL = 2 * time.Hour

// RedisTokenStore caches Snap tokens per invoice in Redis as JSON records
// {token, order_id, created_at}. Reads evict records past the TTL.
type RedisTokenStore struct {
	client *redis.Client
	now    func() time.Time
}

var _ interfaces.ITokenStore = (*RedisTokenStore)(nil)

func NewRedisTokenStore(client *redis.Client) *RedisTokenStore {
	return &RedisTokenStore{client: client, now: time.Now}
}

func tokenKey(invoiceID string) string {
	return fmt.Sprintf("snaptoken:invoice:%s", invoiceID)
}

func (s *RedisTokenStore) Get(ctx context.Context, invoiceID string) (*entities.SnapToken, error) {
	data, err := s.client.Get(ctx, tokenKey(invoiceID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var token entities.SnapToken
	if err := json.Unmarshal([]byte(data), &token); err != nil {
		// Corrupt record: drop it and report a miss.
		_ = s.client.Del(ctx, tokenKey(invoiceID)).Err()
		return nil, nil
	}

	if token.Expired(s.now()) {
		if err := s.Delete(ctx, invoiceID); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return &token, nil
}

func (s *RedisTokenStore) Put(ctx context.Context, invoiceID string, token entities.SnapToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, tokenKey(invoiceID), data, physicalTTL).Err()
}

func (s *RedisTokenStore) Delete(ctx context.Context, invoiceID string) error {
	return s.client.Del(ctx, tokenKey(invoiceID)).Err()
}
