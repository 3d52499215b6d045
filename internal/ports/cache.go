package ports

//go:generate mockgen -source=cache.go -destination=../mocks/cache_mock.go -package=mocks

import (
	"context"

	"buybackCalc/internal/domain"
)

// IHashCache — контракт внешнего хранилища ответов по content-хэшу.
type IHashCache interface {
	// Lookup возвращает ответ по ключу. Отсутствующий ключ — пустой Response, не ошибка.
	Lookup(ctx context.Context, key string) (*domain.Response, error)
	// InsertIfAbsent кладёт ответ под ключ. Конфликт по уже существующему
	// ключу — успех (идемпотентный put); остальные ошибки всплывают.
	InsertIfAbsent(ctx context.Context, key string, resp *domain.Response) error
}

// IResponseCache — горячий кэш ответов перед документным хранилищем.
// Промах или сбой не фатальны: запрос уходит дальше, в IHashCache.
type IResponseCache interface {
	Get(ctx context.Context, hash string) (resp *domain.Response, found bool, err error)
	Set(ctx context.Context, hash string, resp *domain.Response) error
}
