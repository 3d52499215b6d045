package ports

import (
	"context"

	"buybackCalc/internal/domain"
)

// ITableSource — источник конфигурационной таблицы стратегий.
// Таблица читается один раз при старте и дальше неизменна.
type ITableSource interface {
	LoadTable(ctx context.Context) (domain.Table, error)
	Ping(ctx context.Context) error
}
