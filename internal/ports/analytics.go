package ports

//go:generate mockgen -source=analytics.go -destination=../mocks/analytics_mock.go -package=mocks

import (
	"context"

	"buybackCalc/internal/domain"
)

// IPricingAnalytics — запись событий оценки в хранилище для аналитики (например, ClickHouse).
type IPricingAnalytics interface {
	WritePricing(ctx context.Context, ev domain.PricingEvent) error
}
