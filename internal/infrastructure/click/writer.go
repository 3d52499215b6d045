package click

import (
	"context"
	"fmt"

	"buybackCalc/internal/domain"
)

const pricingsAnalyticsFull = "default.pricings_analytics"

// PricingWriter записывает события оценки в ClickHouse в формате, удобном для
// аналитики (суммы по локациям, динамика по времени и т.д.).
type PricingWriter struct {
	db *Client
}

// NewPricingWriter создаёт писатель событий оценки.
func NewPricingWriter(db *Client) *PricingWriter {
	return &PricingWriter{db: db}
}

// EnsureTable создаёт таблицу событий оценки в default, если её ещё нет. Вызови один раз при старте приложения.
func (w *PricingWriter) EnsureTable(ctx context.Context) error {
	query := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			hash String,
			location String,
			sum Float64,
			accepted UInt32,
			rejected UInt32,
			priced_at DateTime64(3)
		) ENGINE = MergeTree()
		ORDER BY (priced_at, location)
		PARTITION BY toYYYYMM(priced_at)`,
		pricingsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query)
	return err
}

// WritePricing реализует ports.IPricingAnalytics: пишет одно событие в ClickHouse.
func (w *PricingWriter) WritePricing(ctx context.Context, ev domain.PricingEvent) error {
	query := fmt.Sprintf(
		"INSERT INTO %s (hash, location, sum, accepted, rejected, priced_at) VALUES (?, ?, ?, ?, ?, ?)",
		pricingsAnalyticsFull,
	)
	_, err := w.db.DB().ExecContext(ctx, query,
		ev.Hash, ev.Location, ev.Sum, uint32(ev.Accepted), uint32(ev.Rejected), ev.PricedAt)
	if err != nil {
		return fmt.Errorf("insert pricing: %w", err)
	}
	return nil
}
