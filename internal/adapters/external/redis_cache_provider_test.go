package external

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherstats.app/internal/config"
	"weatherstats.app/internal/ports"
	"weatherstats.app/pkg/errors"
)

// setupMockRedis creates a mock Redis server for testing
func setupMockRedis(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	mockRedis := miniredis.RunT(t)

	redisConfig := &config.RedisConfig{
		Addr:         mockRedis.Addr(),
		Password:     "",
		DB:           0,
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
	}

	return mockRedis, redisConfig
}

func TestRedisCacheProviderAdapter_NewRedisCacheProviderAdapter(t *testing.T) {
	tests := []struct {
		name        string
		config      *config.RedisConfig
		expectError bool
		errorType   errors.ErrorType
	}{
		{
			name:        "NilConfig",
			config:      nil,
			expectError: true,
			errorType:   errors.ErrorTypeConfiguration,
		},
		{
			name: "ValidConfig",
			config: func() *config.RedisConfig {
				_, cfg := setupMockRedis(t)
				return cfg
			}(),
			expectError: false,
		},
		{
			name: "InvalidAddress",
			config: &config.RedisConfig{
				Addr:         "invalid:address:port",
				DialTimeout:  1,
				ReadTimeout:  1,
				WriteTimeout: 1,
			},
			expectError: true,
			errorType:   errors.ErrorTypeExternalAPI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter, err := NewRedisCacheProviderAdapter(tt.config)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, adapter)
				var appErr *errors.AppError
				if assert.ErrorAs(t, err, &appErr) {
					assert.Equal(t, tt.errorType, appErr.Type)
				}
			} else {
				require.NoError(t, err)
				assert.NoError(t, adapter.Close())
			}
		})
	}
}

func TestRedisCacheProviderAdapter_Operations(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx := context.Background()

	t.Run("SetAndGet", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "report:rain", []byte(`{"rain_hours":3}`), time.Minute))

		retrieved, err := adapter.Get(ctx, "report:rain")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"rain_hours":3}`), retrieved)
		assert.True(t, mockRedis.Exists("weatherstats:report:rain"))
	})

	t.Run("GetNonExistentKey", func(t *testing.T) {
		retrieved, err := adapter.Get(ctx, "non-existent-key")
		assert.Nil(t, retrieved)
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "delete-key", []byte("v"), time.Minute))
		require.NoError(t, adapter.Delete(ctx, "delete-key"))

		_, err := adapter.Get(ctx, "delete-key")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("TTLExpiration", func(t *testing.T) {
		require.NoError(t, adapter.Set(ctx, "ttl-key", []byte("v"), 100*time.Millisecond))

		mockRedis.FastForward(150 * time.Millisecond)

		_, err := adapter.Get(ctx, "ttl-key")
		assert.True(t, errors.IsNotFoundError(err))
	})

	t.Run("ClearKeepsForeignKeys", func(t *testing.T) {
		require.NoError(t, mockRedis.Set("other-app:session", "keep"))
		for _, key := range []string{"a", "b", "c"} {
			require.NoError(t, adapter.Set(ctx, key, []byte("v"), time.Minute))
		}

		require.NoError(t, adapter.Clear(ctx))

		for _, key := range []string{"a", "b", "c"} {
			assert.False(t, mockRedis.Exists("weatherstats:"+key))
		}
		assert.True(t, mockRedis.Exists("other-app:session"))
	})

	t.Run("Ping", func(t *testing.T) {
		assert.NoError(t, adapter.Ping(ctx))
	})
}

func TestRedisCacheProviderAdapter_ValidationErrors(t *testing.T) {
	_, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	ctx := context.Background()

	tests := []struct {
		name      string
		operation func() error
	}{
		{"GetEmptyKey", func() error { _, err := adapter.Get(ctx, ""); return err }},
		{"SetEmptyKey", func() error { return adapter.Set(ctx, "", []byte("value"), time.Minute) }},
		{"SetNilValue", func() error { return adapter.Set(ctx, "key", nil, time.Minute) }},
		{"SetZeroTTL", func() error { return adapter.Set(ctx, "key", []byte("value"), 0) }},
		{"SetNegativeTTL", func() error { return adapter.Set(ctx, "key", []byte("value"), -time.Minute) }},
		{"DeleteEmptyKey", func() error { return adapter.Delete(ctx, "") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.operation()
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestRedisCacheProviderAdapter_ServerDown(t *testing.T) {
	mockRedis, redisConfig := setupMockRedis(t)

	adapter, err := NewRedisCacheProviderAdapter(redisConfig)
	require.NoError(t, err)
	defer func() { _ = adapter.Close() }()

	mockRedis.Close()
	ctx := context.Background()

	_, err = adapter.Get(ctx, "key")
	assert.True(t, errors.IsExternalAPIError(err))
	assert.True(t, errors.IsExternalAPIError(adapter.Set(ctx, "key", []byte("v"), time.Minute)))
	assert.True(t, errors.IsExternalAPIError(adapter.Clear(ctx)))
	assert.True(t, errors.IsExternalAPIError(adapter.Ping(ctx)))
}

func TestRedisCacheProviderAdapter_CacheInterface(t *testing.T) {
	var _ ports.CacheProvider = (*RedisCacheProviderAdapter)(nil)
}
