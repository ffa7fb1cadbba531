// Package querycache provides a read-through cache in front of the race
// registry. Time-window queries are answered from cache when possible; any
// successful registration flushes the cache, since a single insert can change
// every participant's rank.
package querycache

import (
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"finishline/internal/log"
	"finishline/internal/race"
)

const DefaultExpiration = 10 * time.Minute
const DefaultCleanupInterval = 30 * time.Minute

// Store wraps a race.Registry with cached queries.
type Store struct {
	registry *race.Registry
	cache    *gocache.Cache
}

// New creates a store caching query results for the given expiration.
func New(registry *race.Registry, defaultExpiration, cleanupInterval time.Duration) *Store {
	return &Store{
		registry: registry,
		cache:    gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Register delegates to the registry and invalidates all cached query
// results on success, so stale ranks are never served.
func (s *Store) Register(bib, rawName, finishText string) (*race.Participant, error) {
	p, err := s.registry.Register(bib, rawName, finishText)
	if err != nil {
		return nil, err
	}
	s.cache.Flush()
	log.Debug(log.CatCache, "query cache flushed", "bib", bib)
	return p, nil
}

// Query answers from cache when the bounds pair has been asked before,
// falling through to the registry otherwise.
func (s *Store) Query(lower, upper *int) []*race.Participant {
	key := boundsKey(lower, upper)

	if value, found := s.cache.Get(key); found {
		if cached, ok := value.([]*race.Participant); ok {
			log.Debug(log.CatCache, "cache hit", "key", key)
			return cached
		}
		log.Error(log.CatCache, "wrong type assertion when getting value", "key", key)
	}

	result := s.registry.Query(lower, upper)
	s.cache.Set(key, result, gocache.DefaultExpiration)
	log.Debug(log.CatCache, "cache miss", "key", key, "rows", len(result))
	return result
}

// Len returns the number of registered participants.
func (s *Store) Len() int {
	return s.registry.Len()
}

func boundsKey(lower, upper *int) string {
	bound := func(b *int) string {
		if b == nil {
			return "-"
		}
		return strconv.Itoa(*b)
	}
	return bound(lower) + ":" + bound(upper)
}
