package configrepo

import (
	"context"
	"sync"

	"shipconvenient/internal/core/ports"
)

type maxSuggestCountSource interface {
	GetMaxSuggestCount(ctx context.Context) (int, error)
}

// MaxSuggestCountCache holds the last MAX_SUGGEST_COMBO read from source. It is empty until
// the first successful Refresh and keeps the previous value when a refresh fails.
type MaxSuggestCountCache struct {
	source maxSuggestCountSource

	mu     sync.RWMutex
	value  int
	loaded bool
}

func NewMaxSuggestCountCache(source maxSuggestCountSource) *MaxSuggestCountCache {
	return &MaxSuggestCountCache{source: source}
}

// Refresh reloads the value from source.
func (c *MaxSuggestCountCache) Refresh(ctx context.Context) error {
	v, err := c.source.GetMaxSuggestCount(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.value, c.loaded = v, true
	c.mu.Unlock()
	return nil
}

// Get returns the cached value and whether one has been loaded.
func (c *MaxSuggestCountCache) Get() (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value, c.loaded
}

// CachedSettings answers GetMaxSuggestCount from a MaxSuggestCountCache and delegates
// everything else. An empty cache falls through to the wrapped repository.
type CachedSettings struct {
	ports.SettingsRepository
	cache *MaxSuggestCountCache
}

func NewCachedSettings(inner ports.SettingsRepository, cache *MaxSuggestCountCache) *CachedSettings {
	return &CachedSettings{SettingsRepository: inner, cache: cache}
}

func (s *CachedSettings) GetMaxSuggestCount(ctx context.Context) (int, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(); ok {
			return v, nil
		}
	}
	return s.SettingsRepository.GetMaxSuggestCount(ctx)
}
