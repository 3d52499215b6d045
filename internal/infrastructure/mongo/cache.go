package mongo

import (
	"context"
	"errors"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"buybackCalc/internal/domain"
	"buybackCalc/internal/ports"
)

var _ ports.IHashCache = (*HashCache)(nil)

// responseDoc — документ в коллекции hash_cache. Идентификатор документа —
// content-хэш ответа; сам ответ лежит инлайном.
type responseDoc struct {
	ID              string `bson:"_id"`
	domain.Response `bson:",inline"`
}

// HashCache реализует ports.IHashCache поверх MongoDB.
type HashCache struct {
	client *Client
	log    *slog.Logger
}

// NewHashCache возвращает шлюз кэша ответов.
func NewHashCache(client *Client, log *slog.Logger) *HashCache {
	return &HashCache{client: client, log: log}
}

// Lookup возвращает ответ по ключу. Отсутствующий документ — пустой Response, не ошибка.
func (c *HashCache) Lookup(ctx context.Context, key string) (*domain.Response, error) {
	var doc responseDoc
	err := c.client.Coll().FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.NewResponse("", 0), nil
		}
		c.log.Debug("Lookup failed", "key", key, "error", err)
		return nil, err
	}
	return &doc.Response, nil
}

// InsertIfAbsent кладёт ответ под ключ. Дубликат ключа — успех (идемпотентный
// put, существующий документ не перезаписывается); остальные ошибки всплывают.
func (c *HashCache) InsertIfAbsent(ctx context.Context, key string, resp *domain.Response) error {
	_, err := c.client.Coll().InsertOne(ctx, responseDoc{ID: key, Response: *resp})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil
		}
		c.log.Debug("InsertIfAbsent failed", "key", key, "error", err)
		return err
	}
	return nil
}

// Ping проверяет доступность БД (readiness).
func (c *HashCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}
