package pricer

import (
	"log/slog"

	"buybackCalc/internal/domain"
	"buybackCalc/internal/ports"
)

// UseCase — бизнес-логика оценки корзины: эвалюатор стратегий,
// агрегатор батча и шлюз к кэшу ответов.
//
// Таблица стратегий загружена при старте и дальше только читается; клиент
// рынка и шлюзы кэша разделяются всеми конкурентными задачами без блокировок —
// никто не мутирует общее состояние. Горячий кэш, брокер и аналитика
// опциональны (nil в shell-режиме и части тестов).
type UseCase struct {
	table     domain.Table
	market    ports.IMarketData
	cache     ports.IHashCache
	hot       ports.IResponseCache
	broker    ports.IProducer
	analytics ports.IPricingAnalytics
	log       *slog.Logger
}

// New создаёт юзкейс оценки.
func New(
	table domain.Table,
	market ports.IMarketData,
	cache ports.IHashCache,
	hot ports.IResponseCache,
	broker ports.IProducer,
	analytics ports.IPricingAnalytics,
	log *slog.Logger,
) *UseCase {
	return &UseCase{
		table:     table,
		market:    market,
		cache:     cache,
		hot:       hot,
		broker:    broker,
		analytics: analytics,
		log:       log,
	}
}
