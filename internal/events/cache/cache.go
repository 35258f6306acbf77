package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"ms-events/internal/models"
)

const slugKeyPrefix = "event:slug:"

// Cache is a read-side cache for event-by-slug lookups. Misses and redis
// failures both fall through to the database; the cache is never
// authoritative.
type Cache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{
		Client: client,
		TTL:    cacheTTL(),
	}
}

// cacheTTL returns the event cache TTL from the environment or the default
func cacheTTL() time.Duration {
	defaultTTL := 10 * time.Minute

	ttlStr := os.Getenv("EVENT_CACHE_TTL_MINUTES")
	if ttlStr == "" {
		return defaultTTL
	}
	ttlMin, err := strconv.Atoi(ttlStr)
	if err != nil || ttlMin <= 0 {
		fmt.Printf("Invalid EVENT_CACHE_TTL_MINUTES value %q, using default 10 minutes\n", ttlStr)
		return defaultTTL
	}
	return time.Duration(ttlMin) * time.Minute
}

func (c *Cache) GetEventBySlug(slug string) (*models.Event, bool) {
	data, err := c.Client.Get(context.Background(), slugKeyPrefix+slug).Bytes()
	if err != nil {
		return nil, false
	}
	var event models.Event
	if err := json.Unmarshal(data, &event); err != nil {
		return nil, false
	}
	return &event, true
}

func (c *Cache) SetEvent(event models.Event) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	c.Client.Set(context.Background(), slugKeyPrefix+event.Slug, data, c.TTL)
}

func (c *Cache) Invalidate(slug string) {
	c.Client.Del(context.Background(), slugKeyPrefix+slug)
}
