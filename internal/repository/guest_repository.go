package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	appErrors "github.com/serdarsalim/timespent-sub000/pkg/errors"
)

// GuestStore is the pluggable key-value persistence behind guest
// workspaces: whole collections stored as JSON blobs with a TTL, no
// relational schema. Domain logic never touches it directly; the
// services hand it plain data structures.
type GuestStore interface {
	Get(ctx context.Context, guestID, resource string, dest interface{}) error
	Set(ctx context.Context, guestID, resource string, value interface{}) error
	Remove(ctx context.Context, guestID, resource string) error
}

// GuestRepository implements GuestStore on Redis.
type GuestRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewGuestRepository constructs a Redis-backed guest store.
func NewGuestRepository(client *redis.Client, ttl time.Duration) *GuestRepository {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &GuestRepository{client: client, ttl: ttl}
}

func guestKey(guestID, resource string) string {
	return fmt.Sprintf("guest:%s:%s", guestID, resource)
}

// Get unmarshals the stored collection into dest. A missing key reports
// ErrNotFound; each read refreshes the workspace TTL.
func (r *GuestRepository) Get(ctx context.Context, guestID, resource string, dest interface{}) error {
	key := guestKey(guestID, resource)
	raw, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return appErrors.ErrNotFound
		}
		return fmt.Errorf("guest get %s: %w", key, err)
	}
	r.client.Expire(ctx, key, r.ttl)
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("guest decode %s: %w", key, err)
	}
	return nil
}

// Set stores the collection as JSON with the workspace TTL.
func (r *GuestRepository) Set(ctx context.Context, guestID, resource string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("guest encode: %w", err)
	}
	key := guestKey(guestID, resource)
	if err := r.client.Set(ctx, key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("guest set %s: %w", key, err)
	}
	return nil
}

// Remove deletes one resource of the workspace.
func (r *GuestRepository) Remove(ctx context.Context, guestID, resource string) error {
	key := guestKey(guestID, resource)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("guest remove %s: %w", key, err)
	}
	return nil
}
