package pg

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"buybackCalc/internal/domain"
	"buybackCalc/internal/ports"
)

var _ ports.ITableSource = (*StrategyRepo)(nil)

// Виды стратегий в колонке kind.
const (
	kindRejected   = "rejected"
	kindSingleItem = "single_item"
	kindMultiItem  = "multi_item"
	kindSubItems   = "sub_items"
)

// typeEntryRow — элемент JSONB-колонки entries для multi_item.
type typeEntryRow struct {
	TypeID   int32   `json:"type_id"`
	Quantity float64 `json:"quantity"`
}

// subEntryRow — элемент JSONB-колонки entries для sub_items.
type subEntryRow struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

// StrategyRepo реализует ports.ITableSource для PostgreSQL: читает
// конфигурационную таблицу pricing_strategies целиком.
type StrategyRepo struct {
	db  *DB
	log *slog.Logger
}

// NewStrategyRepo возвращает источник таблицы стратегий.
func NewStrategyRepo(db *DB, log *slog.Logger) *StrategyRepo {
	return &StrategyRepo{db: db, log: log}
}

// LoadTable читает все строки, собирает domain.Table и валидирует её.
// Вызывается один раз при старте: ядро работает с таблицей только в памяти.
func (r *StrategyRepo) LoadTable(ctx context.Context) (domain.Table, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT location, item_name, kind, type_id, market, multiplier, source, entries
		 FROM pricing_strategies`)
	if err != nil {
		r.log.Debug("LoadTable failed", "error", err)
		return nil, err
	}
	defer rows.Close()

	table := domain.Table{}
	for rows.Next() {
		var (
			location, itemName, kind string
			typeID                   sql.NullInt32
			market, source           sql.NullString
			multiplier               sql.NullFloat64
			entries                  []byte
		)
		if err := rows.Scan(&location, &itemName, &kind, &typeID, &market, &multiplier, &source, &entries); err != nil {
			return nil, err
		}

		st, err := buildStrategy(location, kind, typeID, market, multiplier, source, entries)
		if err != nil {
			return nil, fmt.Errorf("strategy %q at %q: %w", itemName, location, err)
		}

		if table[location] == nil {
			table[location] = map[string]domain.Strategy{}
		}
		table[location][itemName] = st
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Ping проверяет доступность БД (readiness).
func (r *StrategyRepo) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func buildStrategy(
	location, kind string,
	typeID sql.NullInt32,
	market sql.NullString,
	multiplier sql.NullFloat64,
	source sql.NullString,
	entries []byte,
) (domain.Strategy, error) {
	switch kind {
	case kindRejected:
		return domain.RejectedStrategy, nil
	case kindSingleItem:
		return domain.NewSingleItem(typeID.Int32, market.String, multiplier.Float64, source.String), nil
	case kindMultiItem:
		var rows []typeEntryRow
		if err := json.Unmarshal(entries, &rows); err != nil {
			return domain.Strategy{}, fmt.Errorf("decode entries: %w", err)
		}
		list := make([]domain.TypeEntry, len(rows))
		for i, e := range rows {
			list[i] = domain.TypeEntry{TypeID: e.TypeID, Quantity: e.Quantity}
		}
		return domain.NewMultiItem(list, market.String, multiplier.Float64, source.String), nil
	case kindSubItems:
		var rows []subEntryRow
		if err := json.Unmarshal(entries, &rows); err != nil {
			return domain.Strategy{}, fmt.Errorf("decode entries: %w", err)
		}
		list := make([]domain.SubEntry, len(rows))
		for i, e := range rows {
			list[i] = domain.SubEntry{Name: e.Name, Quantity: e.Quantity}
		}
		return domain.NewSubItems(list, location, source.String), nil
	default:
		return domain.Strategy{}, fmt.Errorf("%w: unknown kind %q", domain.ErrMalformedTable, kind)
	}
}
