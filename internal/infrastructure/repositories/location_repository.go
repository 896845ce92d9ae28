package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/omxqn/api-application/domain"
)

// LocationRepositoryImpl implements domain.LocationStore using Redis.
// Only the latest position per bus is kept; history is not a contract.
type LocationRepositoryImpl struct {
	client *redis.Client
	prefix string
}

// NewLocationRepository creates a new Redis-backed location store
func NewLocationRepository(client *redis.Client) domain.LocationStore {
	return &LocationRepositoryImpl{client: client, prefix: "busloc:"}
}

func (r *LocationRepositoryImpl) key(busID uint) string {
	return fmt.Sprintf("%s%d", r.prefix, busID)
}

// Set implements domain.LocationStore
func (r *LocationRepositoryImpl) Set(ctx context.Context, loc *domain.BusLocation) error {
	data, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("failed to marshal location: %w", err)
	}
	return r.client.Set(ctx, r.key(loc.BusID), data, 0).Err()
}

// Get implements domain.LocationStore
func (r *LocationRepositoryImpl) Get(ctx context.Context, busID uint) (*domain.BusLocation, error) {
	data, err := r.client.Get(ctx, r.key(busID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrBusNotFound
		}
		return nil, err
	}

	var loc domain.BusLocation
	if err := json.Unmarshal([]byte(data), &loc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal location: %w", err)
	}
	return &loc, nil
}
