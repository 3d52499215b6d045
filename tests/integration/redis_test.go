package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buybackCalc/internal/infrastructure/redis"
	"buybackCalc/tests/integration/testutil"
)

// redisContainer — контейнер Redis, поднимается один раз для всех тестов пакета.
// Инициализируется в TestMain (main_test.go).
var redisContainer *testutil.RedisContainer

// setupRedisCache подключается к тестовому Redis и очищает его.
func setupRedisCache(t *testing.T) *redis.Cache {
	t.Helper()

	client, err := redis.New(&redis.Config{
		Host:     redisContainer.Host,
		Port:     redisContainer.Port,
		Password: "",
		DB:       0,
	})
	require.NoError(t, err, "не удалось подключиться к Redis")

	err = client.FlushDB(context.Background()).Err()
	require.NoError(t, err, "не удалось очистить Redis")

	t.Cleanup(func() {
		client.Close()
	})

	return redis.NewCache(client, newTestLogger())
}

func TestResponseCache_SetAndGet(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)
	ctx := context.Background()

	resp := sampleResponse("The Forge")
	require.NoError(t, cache.Set(ctx, resp.Hash, resp), "Set должен успешно сохранить")

	got, found, err := cache.Get(ctx, resp.Hash)
	require.NoError(t, err, "Get должен успешно получить")
	require.True(t, found, "ключ должен быть найден")
	assert.Equal(t, resp.Hash, got.Hash)
	assert.Equal(t, resp.Location, got.Location)
	assert.InDelta(t, resp.Sum, got.Sum, 1e-9)
	require.Len(t, got.Accepted, 1)
	assert.Equal(t, "Tritanium", got.Accepted[0].Name)
}

func TestResponseCache_GetMiss(t *testing.T) {
	if testing.Short() {
		t.Skip("пропускаем интеграционный тест в short режиме")
	}

	cache := setupRedisCache(t)

	got, found, err := cache.Get(context.Background(), "no-such-hash")
	require.NoError(t, err, "промах — не ошибка")
	assert.False(t, found)
	assert.Nil(t, got)
}
