package ports

//go:generate mockgen -source=marketdata.go -destination=../mocks/marketdata_mock.go -package=mocks

import (
	"context"

	"buybackCalc/internal/domain"
)

// IMarketData — контракт источника рыночных данных: один унарный запрос —
// один стакан buy-ордеров. Пустой стакан — нормальный ответ, не ошибка;
// ошибка означает транспортный сбой.
type IMarketData interface {
	MarketOrders(ctx context.Context, req domain.OrderRequest) (domain.OrderBook, error)
}
