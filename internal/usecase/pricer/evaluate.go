package pricer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"buybackCalc/internal/domain"
)

// evaluate считает цену одной стратегии: генерирует атомарные запросы,
// конкурентно забирает стаканы и сводит их редукцией стратегии.
// Ошибка здесь — только транспортный сбой или битая таблица; «нет ордеров» —
// легитимный отказ, не ошибка.
func (u *UseCase) evaluate(ctx context.Context, st domain.Strategy) (domain.Price, error) {
	reqs, rejected, err := st.Requests(u.table)
	if err != nil {
		// Битая конфигурационная таблица: падаем громко, без тихой недооценки.
		u.log.Error("pricing table is malformed", "error", err)
		return domain.RejectedPrice, err
	}
	if rejected {
		return domain.RejectedPrice, nil
	}
	books, err := u.fetchAll(ctx, reqs)
	if err != nil {
		return domain.RejectedPrice, err
	}
	return st.Reduce(u.table, books)
}

// fetchAll издаёт все запросы конкурентно и ждёт завершения каждого.
// Сбой любого запроса валит всю выборку (fail-fast, частичных цен не бывает).
// Результат — стаканы по ключу запроса: порядок прихода ответов не важен.
func (u *UseCase) fetchAll(ctx context.Context, reqs []domain.OrderRequest) (map[domain.RequestKey]domain.OrderBook, error) {
	g, gctx := errgroup.WithContext(ctx)
	books := make([]domain.OrderBook, len(reqs))
	for i, req := range reqs {
		g.Go(func() error {
			book, err := u.market.MarketOrders(gctx, req)
			if err != nil {
				return fmt.Errorf("market orders %d@%s: %w", req.TypeID, req.Market, err)
			}
			books[i] = book
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byKey := make(map[domain.RequestKey]domain.OrderBook, len(reqs))
	for i, req := range reqs {
		byKey[req.Key()] = books[i]
	}
	return byKey, nil
}
