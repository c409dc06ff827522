package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"creditcall/internal/models"

	"github.com/redis/go-redis/v9"
)

// Service wraps Redis with JSON marshalling and the key scheme used for
// hot-path creator lookups. Cache misses are never errors; the caller falls
// through to the database.
type Service struct {
	client *redis.Client
	ttl    time.Duration
}

func NewService(client *redis.Client, defaultTTL time.Duration) *Service {
	return &Service{client: client, ttl: defaultTTL}
}

// Base operations

func (s *Service) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *Service) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *Service) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *Service) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

func (s *Service) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *Service) Close() error {
	return s.client.Close()
}

// Key generation
func (s *Service) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// Creator caching

func (s *Service) CacheCreator(ctx context.Context, creator *models.Creator) error {
	if creator == nil {
		return fmt.Errorf("cannot cache nil creator")
	}
	return s.Set(ctx, s.GenerateKey("creator", "handle", creator.Handle), creator)
}

func (s *Service) GetCreatorByHandle(ctx context.Context, handle string) (*models.Creator, bool) {
	var creator models.Creator
	found, err := s.Get(ctx, s.GenerateKey("creator", "handle", handle), &creator)
	if err != nil || !found {
		return nil, false
	}
	return &creator, true
}

// Wallet caching

func (s *Service) CacheWallet(ctx context.Context, wallet *models.Wallet) error {
	if wallet == nil {
		return fmt.Errorf("cannot cache nil wallet")
	}
	return s.SetWithTTL(ctx, s.GenerateKey("wallet", "creator", wallet.CreatorID), wallet, 5*time.Minute)
}

func (s *Service) GetWallet(ctx context.Context, creatorID string) (*models.Wallet, bool) {
	var wallet models.Wallet
	found, err := s.Get(ctx, s.GenerateKey("wallet", "creator", creatorID), &wallet)
	if err != nil || !found {
		return nil, false
	}
	return &wallet, true
}

func (s *Service) InvalidateWallet(ctx context.Context, creatorID string) {
	_ = s.Delete(ctx, s.GenerateKey("wallet", "creator", creatorID))
}
