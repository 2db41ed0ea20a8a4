// ABOUTME: Short-lived registry of generation results kept in the cache
// ABOUTME: Lets feedback resolve a variant index back to the text it rated

package generations

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"linkpost-api/core/domain"
	"linkpost-api/core/errors"
	"linkpost-api/core/interfaces"
)

const keyPrefix = "generation:"

// DefaultTTL is how long a generation stays resolvable
const DefaultTTL = time.Hour

// Store keeps generations in an interfaces.Cache as JSON
type Store struct {
	cache interfaces.Cache
	ttl   time.Duration
}

// NewStore creates a store over deps.Cache. A non-positive ttl falls back
// to DefaultTTL.
func NewStore(deps interfaces.Dependencies, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{cache: deps.Cache, ttl: ttl}
}

func cacheKey(id string) string {
	return keyPrefix + id
}

// Save stores generation under its ID
func (s *Store) Save(ctx context.Context, generation *domain.Generation) error {
	if generation.ID == "" {
		return &errors.ValidationError{Field: "id", Message: "generation ID is required"}
	}

	data, err := json.Marshal(generation)
	if err != nil {
		return fmt.Errorf("marshal generation: %w", err)
	}
	return s.cache.Set(ctx, cacheKey(generation.ID), data, s.ttl)
}

// Get returns the generation with id, or a NotFoundError when it was never
// stored or has expired
func (s *Store) Get(ctx context.Context, id string) (*domain.Generation, error) {
	if id == "" {
		return nil, &errors.NotFoundError{Resource: "generation", ID: id}
	}

	data, err := s.cache.Get(ctx, cacheKey(id))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &errors.NotFoundError{Resource: "generation", ID: id}
	}

	var generation domain.Generation
	if err := json.Unmarshal(data, &generation); err != nil {
		return nil, fmt.Errorf("unmarshal generation %s: %w", id, err)
	}
	return &generation, nil
}
