package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"salon-reserve/internal/domain/slot"
	"salon-reserve/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "availability"

type cachedOccurrence struct {
	Date slot.Date      `json:"date"`
	Time slot.TimeOfDay `json:"time"`
}

// RedisAvailabilityCache stores open slots per operator and month as JSON.
type RedisAvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAvailabilityCache(client *redis.Client, ttl time.Duration) *RedisAvailabilityCache {
	return &RedisAvailabilityCache{
		client: client,
		ttl:    ttl,
	}
}

func key(operatorID uuid.UUID, month slot.Date) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, operatorID, month.MonthString())
}

func (c *RedisAvailabilityCache) GetOpenSlots(ctx context.Context, operatorID uuid.UUID, month slot.Date) ([]slot.Occurrence, bool) {
	val, err := c.client.Get(ctx, key(operatorID, month)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("availability cache read failed", "operator_id", operatorID, "error", err.Error())
		}
		return nil, false
	}

	var cached []cachedOccurrence
	if err := json.Unmarshal(val, &cached); err != nil {
		slog.Warn("availability cache entry corrupt", "operator_id", operatorID, "error", err.Error())
		return nil, false
	}
	occurrences := make([]slot.Occurrence, 0, len(cached))
	for _, o := range cached {
		occurrences = append(occurrences, slot.Occurrence{Date: o.Date, Time: o.Time})
	}
	return occurrences, true
}

func (c *RedisAvailabilityCache) SetOpenSlots(ctx context.Context, operatorID uuid.UUID, month slot.Date, occurrences []slot.Occurrence) {
	if c.ttl <= 0 {
		return
	}
	cached := make([]cachedOccurrence, 0, len(occurrences))
	for _, o := range occurrences {
		cached = append(cached, cachedOccurrence{Date: o.Date, Time: o.Time})
	}
	data, err := json.Marshal(cached)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(operatorID, month), data, c.ttl).Err(); err != nil {
		slog.Warn("availability cache write failed", "operator_id", operatorID, "error", err.Error())
	}
}

func (c *RedisAvailabilityCache) Invalidate(ctx context.Context, operatorID uuid.UUID, month slot.Date) {
	if err := c.client.Del(ctx, key(operatorID, month)).Err(); err != nil {
		slog.Warn("availability cache invalidation failed", "operator_id", operatorID, "month", month.MonthString(), "error", err.Error())
	}
}

// NoopAvailabilityCache is used when redis is disabled.
type NoopAvailabilityCache struct{}

func (NoopAvailabilityCache) GetOpenSlots(context.Context, uuid.UUID, slot.Date) ([]slot.Occurrence, bool) {
	return nil, false
}
func (NoopAvailabilityCache) SetOpenSlots(context.Context, uuid.UUID, slot.Date, []slot.Occurrence) {}
func (NoopAvailabilityCache) Invalidate(context.Context, uuid.UUID, slot.Date)                      {}

var (
	_ shared.AvailabilityCache = (*RedisAvailabilityCache)(nil)
	_ shared.AvailabilityCache = NoopAvailabilityCache{}
)
