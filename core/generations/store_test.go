package generations

import (
	"context"
	"testing"
	"time"

	"linkpost-api/core/domain"
	coreerrors "linkpost-api/core/errors"
	"linkpost-api/core/interfaces"
	"linkpost-api/infrastructure/cache/memory"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGeneration() *domain.Generation {
	return &domain.Generation{
		ID:   "6f1c2a9e-0d8b-4a57-9a41-3c5e2b7d9f10",
		URL:  "https://example.com",
		Tone: domain.ToneCasual,
		Variants: [3]domain.PostVariant{
			{Style: domain.StyleConcise, Text: "a"},
			{Style: domain.StyleDetailed, Text: "b"},
			{Style: domain.StyleCasual, Text: "c"},
		},
		CreatedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	cache := memory.NewMemoryCache(time.Minute, time.Minute)
	store := NewStore(interfaces.Dependencies{Cache: cache}, time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testGeneration()))

	got, err := store.Get(ctx, testGeneration().ID)
	require.NoError(t, err)
	if diff := cmp.Diff(testGeneration(), got); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}

	raw, err := cache.Get(ctx, "generation:"+testGeneration().ID)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"style":"concise"`)
}

func TestStore_GetUnknown(t *testing.T) {
	store := NewStore(interfaces.Dependencies{Cache: memory.NewMemoryCache(time.Minute, time.Minute)}, time.Minute)

	for _, id := range []string{"", "missing"} {
		got, err := store.Get(context.Background(), id)
		assert.Nil(t, got)
		assert.True(t, coreerrors.IsNotFound(err), "id %q", id)
	}
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore(interfaces.Dependencies{Cache: memory.NewMemoryCache(time.Minute, time.Minute)}, 20*time.Millisecond)
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, testGeneration()))

	time.Sleep(50 * time.Millisecond)

	_, err := store.Get(ctx, testGeneration().ID)
	assert.True(t, coreerrors.IsNotFound(err))
}

func TestStore_SaveRequiresID(t *testing.T) {
	store := NewStore(interfaces.Dependencies{Cache: memory.NewMemoryCache(time.Minute, time.Minute)}, time.Minute)

	err := store.Save(context.Background(), &domain.Generation{})

	assert.True(t, coreerrors.IsValidation(err))
}

func TestNewStore_DefaultTTL(t *testing.T) {
	store := NewStore(interfaces.Dependencies{Cache: memory.NewMemoryCache(time.Minute, time.Minute)}, 0)

	assert.Equal(t, DefaultTTL, store.ttl)
}
