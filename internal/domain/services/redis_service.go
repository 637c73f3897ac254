package services

import (
	"context"
	"encoding/json"
	"time"

	"sternkern-rent-nexus/internal/infrastructure/config"

	"github.com/go-redis/redis/v8"
)

// Cache keys for derived snapshots
const (
	keyDashboardStats = "report:dashboard_stats"
	keyRentSummary    = "billing:rent_summary"
)

// InterfaceRedisService defines the Redis service interface
type InterfaceRedisService interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string, dest interface{}) error
	Delete(key string) error
	CacheDashboardStats(stats *DashboardStats, expiration time.Duration) error
	GetDashboardStats() (*DashboardStats, error)
	CacheRentSummary(rows []RentRow, expiration time.Duration) error
	GetRentSummary() ([]RentRow, error)
	InvalidateDerived() error
	Ping() error
}

// RedisService caches derived read snapshots (dashboard stats, rent
// summary). Everything here is best-effort: callers fall back to a store
// read on any cache error.
type RedisService struct {
	Client *redis.Client
	Ctx    context.Context
}

// NewRedisService creates a new Redis service
func NewRedisService(cfg *config.Config) InterfaceRedisService {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.GetRedisAddr(),
		DB:   cfg.RedisDB,
	})

	return &RedisService{
		Client: client,
		Ctx:    context.Background(),
	}
}

// 1. Set sets a key-value pair with expiration
func (s *RedisService) Set(key string, value interface{}, expiration time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.Client.Set(s.Ctx, key, jsonValue, expiration).Err()
}

// 2. Get gets a value by key
func (s *RedisService) Get(key string, dest interface{}) error {
	val, err := s.Client.Get(s.Ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(val), dest)
}

// 3. Delete deletes a key
func (s *RedisService) Delete(key string) error {
	return s.Client.Del(s.Ctx, key).Err()
}

// 4. CacheDashboardStats stores the dashboard snapshot
func (s *RedisService) CacheDashboardStats(stats *DashboardStats, expiration time.Duration) error {
	return s.Set(keyDashboardStats, stats, expiration)
}

// 5. GetDashboardStats reads the cached dashboard snapshot
func (s *RedisService) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats
	if err := s.Get(keyDashboardStats, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// 6. CacheRentSummary stores the rent summary rows
func (s *RedisService) CacheRentSummary(rows []RentRow, expiration time.Duration) error {
	return s.Set(keyRentSummary, rows, expiration)
}

// 7. GetRentSummary reads the cached rent summary rows
func (s *RedisService) GetRentSummary() ([]RentRow, error) {
	var rows []RentRow
	if err := s.Get(keyRentSummary, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// 8. InvalidateDerived drops cached snapshots after a write
func (s *RedisService) InvalidateDerived() error {
	return s.Client.Del(s.Ctx, keyDashboardStats, keyRentSummary).Err()
}

// 9. Ping checks the Redis connection
func (s *RedisService) Ping() error {
	ctx, cancel := context.WithTimeout(s.Ctx, 2*time.Second)
	defer cancel()
	return s.Client.Ping(ctx).Err()
}
