package ports

//go:generate mockgen -source=usecase.go -destination=../mocks/usecase_mock.go -package=mocks

import (
	"context"

	"buybackCalc/internal/domain"
)

// IPricerUseCase — контракт бизнес-логики оценки корзины.
type IPricerUseCase interface {
	// PriceBasket оценивает корзину для локации: стратегии всех позиций
	// считаются конкурентно, итог сортируется, хэшируется и кладётся в кэш.
	PriceBasket(ctx context.Context, location string, items []domain.Item) (*domain.Response, error)
	// PriceByHash возвращает ранее посчитанный ответ по ключу.
	// Отсутствующий ключ — пустой Response, не ошибка.
	PriceByHash(ctx context.Context, hash string) (*domain.Response, error)
	// HandlePricingEvent вызывается консьюмером при получении события из брокера.
	HandlePricingEvent(ctx context.Context, ev domain.PricingEvent) error
}
