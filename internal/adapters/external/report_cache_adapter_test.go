package external

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherstats.app/internal/mocks"
	"weatherstats.app/pkg/errors"
)

type cachedReport struct {
	DataType  string `json:"data_type"`
	RainHours int64  `json:"rain_hours"`
}

func TestReportCacheAdapter_RoundTripThroughMemory(t *testing.T) {
	cache := NewReportCacheAdapter(NewMemoryCacheProvider())
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "report:rain", &cachedReport{DataType: "rain", RainHours: 5}, time.Minute))

	var got cachedReport
	require.NoError(t, cache.Get(ctx, "report:rain", &got))
	assert.Equal(t, cachedReport{DataType: "rain", RainHours: 5}, got)

	require.NoError(t, cache.Invalidate(ctx))
	assert.True(t, errors.IsNotFoundError(cache.Get(ctx, "report:rain", &got)))
}

func TestReportCacheAdapter_RoundTripThroughRedis(t *testing.T) {
	_, redisConfig := setupMockRedis(t)
	redisCache, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = redisCache.Close() }()

	cache := NewReportCacheAdapter(redisCache)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "report:cities", &cachedReport{DataType: "cities"}, time.Minute))

	var got cachedReport
	require.NoError(t, cache.Get(ctx, "report:cities", &got))
	assert.Equal(t, "cities", got.DataType)
}

func TestReportCacheAdapter_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("CorruptedValue", func(t *testing.T) {
		provider := mocks.NewCacheProvider(t)
		provider.EXPECT().Get(mock.Anything, "k").Return([]byte("not json"), nil).Once()

		var got cachedReport
		err := NewReportCacheAdapter(provider).Get(ctx, "k", &got)
		assert.True(t, errors.IsExternalAPIError(err))
	})

	t.Run("ProviderMiss", func(t *testing.T) {
		provider := mocks.NewCacheProvider(t)
		provider.EXPECT().Get(mock.Anything, "k").Return(nil, errors.NewNotFoundError("cache miss")).Once()

		var got cachedReport
		err := NewReportCacheAdapter(provider).Get(ctx, "k", &got)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("NilValue", func(t *testing.T) {
		err := NewReportCacheAdapter(mocks.NewCacheProvider(t)).Set(ctx, "k", nil, time.Minute)
		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("UnserializableValue", func(t *testing.T) {
		err := NewReportCacheAdapter(mocks.NewCacheProvider(t)).Set(ctx, "k", func() {}, time.Minute)
		assert.True(t, errors.IsExternalAPIError(err))
	})

	t.Run("InvalidateFailure", func(t *testing.T) {
		provider := mocks.NewCacheProvider(t)
		provider.EXPECT().Clear(mock.Anything).Return(fmt.Errorf("redis down")).Once()

		assert.EqualError(t, NewReportCacheAdapter(provider).Invalidate(ctx), "redis down")
	})
}
