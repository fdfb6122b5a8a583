package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alpinetrips/skipack/config"
	"github.com/alpinetrips/skipack/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	catalogTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, catalogTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		catalogTTL: catalogTTL,
	}
}

func (c *RedisCache) GetResorts(ctx context.Context) ([]domain.Resort, error) {
	data, err := c.client.Get(ctx, resortsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var resorts []domain.Resort
	if err := json.Unmarshal(data, &resorts); err != nil {
		return nil, err
	}
	return resorts, nil
}

func (c *RedisCache) SetResorts(ctx context.Context, resorts []domain.Resort) error {
	payload, err := json.Marshal(resorts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, resortsKey(), payload, c.catalogTTL).Err()
}

func (c *RedisCache) GetFlights(ctx context.Context) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.catalogTTL).Err()
}

// ToggleFavorite flips resortID in the user's favorites set and reports
// whether it is a favorite afterwards.
func (c *RedisCache) ToggleFavorite(ctx context.Context, userID, resortID string) (bool, error) {
	key := favoritesKey(userID)
	isMember, err := c.client.SIsMember(ctx, key, resortID).Result()
	if err != nil {
		return false, err
	}
	if isMember {
		if err := c.client.SRem(ctx, key, resortID).Err(); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := c.client.SAdd(ctx, key, resortID).Err(); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisCache) ListFavorites(ctx context.Context, userID string) ([]string, error) {
	return c.client.SMembers(ctx, favoritesKey(userID)).Result()
}

func resortsKey() string {
	return "cache:resorts"
}

func flightsKey() string {
	return "cache:flights"
}

func favoritesKey(userID string) string {
	return fmt.Sprintf("favorites:user:%s", userID)
}
