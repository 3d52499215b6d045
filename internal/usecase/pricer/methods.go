package pricer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"buybackCalc/internal/domain"
)

// resolvedItem — позиция корзины с уже разрешённой стратегией.
type resolvedItem struct {
	item     domain.Item
	strategy domain.Strategy
}

// outcome — итог оценки одной позиции, уходит в агрегатор в порядке завершения.
type outcome struct {
	item   domain.Item
	price  domain.Price
	source string
}

// PriceBasket оценивает корзину для локации.
//
// Каждая позиция разрешается по таблице (неизвестная пара — отказ). Если все
// позиции отказные, сетевой активности нет вовсе — это оптимизация, итог
// неотличим от общего пути. Иначе стратегии считаются конкурентно, по задаче
// на позицию; итоги складываются в Response в порядке завершения (Sum копит
// в этом же порядке), затем списки сортируются по имени, считается хэш и
// ответ кладётся в кэш под ним. Транспортный сбой любой позиции валит весь
// батч: частичных ответов не бывает.
func (u *UseCase) PriceBasket(ctx context.Context, location string, items []domain.Item) (*domain.Response, error) {
	resolved := make([]resolvedItem, len(items))
	allRejected := true
	for i, it := range items {
		st := u.table.Resolve(location, it.Name)
		resolved[i] = resolvedItem{item: it, strategy: st}
		if st.Kind != domain.StrategyRejected {
			allRejected = false
		}
	}

	resp := domain.NewResponse(location, len(items))
	if allRejected {
		for _, ri := range resolved {
			resp.Push(ri.item, domain.RejectedPrice, ri.strategy.PriceSource(u.table))
		}
	} else {
		results := make(chan outcome, len(resolved))
		g, gctx := errgroup.WithContext(ctx)
		for _, ri := range resolved {
			g.Go(func() error {
				price, err := u.evaluate(gctx, ri.strategy)
				if err != nil {
					return err
				}
				results <- outcome{item: ri.item, price: price, source: ri.strategy.PriceSource(u.table)}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("price basket: %w", err)
		}
		close(results)
		for o := range results {
			resp.Push(o.item, o.price, o.source)
		}
	}

	resp.Sort()
	resp.FinalizeHash()

	if err := u.cache.InsertIfAbsent(ctx, resp.Hash, resp); err != nil {
		return nil, fmt.Errorf("hash cache insert: %w", err)
	}
	if u.hot != nil {
		if err := u.hot.Set(ctx, resp.Hash, resp); err != nil {
			u.log.Warn("hot cache set", "hash", resp.Hash, "error", err)
		}
	}
	u.publish(ctx, resp)

	return resp, nil
}

// PriceByHash возвращает ранее посчитанный ответ: сперва горячий кэш, затем
// документное хранилище. Отсутствующий ключ — пустой Response, не ошибка.
func (u *UseCase) PriceByHash(ctx context.Context, hash string) (*domain.Response, error) {
	if u.hot != nil {
		resp, found, err := u.hot.Get(ctx, hash)
		if err != nil {
			u.log.Debug("hot cache get failed", "hash", hash, "error", err)
		} else if found {
			return resp, nil
		}
	}

	resp, err := u.cache.Lookup(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("hash cache lookup: %w", err)
	}
	if u.hot != nil && resp.Hash != "" {
		if err := u.hot.Set(ctx, hash, resp); err != nil {
			u.log.Debug("hot cache backfill failed", "hash", hash, "error", err)
		}
	}
	return resp, nil
}

// HandlePricingEvent вызывается консьюмером при получении события из брокера
// (часть IPricerUseCase): пишет событие в аналитическое хранилище.
func (u *UseCase) HandlePricingEvent(ctx context.Context, ev domain.PricingEvent) error {
	if err := u.analytics.WritePricing(ctx, ev); err != nil {
		u.log.Warn("analytics write", "hash", ev.Hash, "error", err)
		return err
	}
	u.log.Info("pricing stored to click", "hash", ev.Hash, "location", ev.Location, "sum", ev.Sum)
	return nil
}

// publish отправляет событие о свежей оценке в брокер. Сбой брокера не влияет
// на ответ клиенту: логируем и едем дальше.
func (u *UseCase) publish(ctx context.Context, resp *domain.Response) {
	if u.broker == nil {
		return
	}
	ev := domain.PricingEvent{
		Hash:     resp.Hash,
		Location: resp.Location,
		Sum:      resp.Sum,
		Accepted: len(resp.Accepted),
		Rejected: len(resp.Rejected),
		PricedAt: time.Now(),
	}
	value, err := json.Marshal(ev)
	if err != nil {
		u.log.Warn("pricing event marshal", "hash", resp.Hash, "error", err)
		return
	}
	if err := u.broker.Send(ctx, []byte(resp.Hash), value); err != nil {
		u.log.Warn("broker send", "hash", resp.Hash, "error", err)
		return
	}
	u.log.Info("pricing published", "hash", resp.Hash, "sum", resp.Sum)
}
