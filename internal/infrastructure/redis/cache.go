package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"buybackCalc/internal/domain"
	"buybackCalc/internal/ports"
)

var _ ports.IResponseCache = (*Cache)(nil)

// responseTTL — время жизни горячей записи. Документное хранилище остаётся
// источником истины, поэтому записи можно спокойно вытеснять.
const responseTTL = 24 * time.Hour

// Cache реализует ports.IResponseCache через Redis. Ключ — content-хэш,
// значение — ответ в JSON.
type Cache struct {
	cli *Client
	log *slog.Logger
}

// NewCache возвращает горячий кэш ответов.
func NewCache(cli *Client, log *slog.Logger) *Cache {
	return &Cache{cli: cli, log: log}
}

// Get возвращает ответ по хэшу. Если ключа нет — found == false.
func (c *Cache) Get(ctx context.Context, hash string) (*domain.Response, bool, error) {
	s, err := c.cli.Client.Get(ctx, hash).Result()
	if err != nil {
		if err == redis.Nil { // ключа нет
			return nil, false, nil
		}
		c.log.Debug("cache get failed", "hash", hash, "error", err)
		return nil, false, err
	}
	var resp domain.Response
	if err := json.Unmarshal([]byte(s), &resp); err != nil {
		c.log.Debug("cache decode failed", "hash", hash, "error", err)
		return nil, false, fmt.Errorf("cache decode value: %w", err)
	}
	return &resp, true, nil
}

// Set сохраняет ответ по хэшу. Повторная запись того же ключа безвредна:
// содержимое детерминировано определяется хэшем.
func (c *Cache) Set(ctx context.Context, hash string, resp *domain.Response) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("cache encode value: %w", err)
	}
	if err := c.cli.Client.Set(ctx, hash, b, responseTTL).Err(); err != nil {
		c.log.Debug("cache set failed", "hash", hash, "error", err)
		return err
	}
	return nil
}
