package pg

import (
	"context"
)

const createStrategiesTable = `
CREATE TABLE IF NOT EXISTS pricing_strategies (
	id         SERIAL PRIMARY KEY,
	location   TEXT NOT NULL,
	item_name  TEXT NOT NULL,
	kind       VARCHAR(16) NOT NULL,
	type_id    INTEGER,
	market     TEXT,
	multiplier DOUBLE PRECISION,
	source     TEXT,
	entries    JSONB,
	UNIQUE (location, item_name)
);
`

// seedStrategies — стартовый набор стратегий для локальной разработки.
// В бою таблицу наполняет отдельный конфигурационный пайплайн.
const seedStrategies = `
INSERT INTO pricing_strategies (location, item_name, kind, type_id, market, multiplier, source, entries) VALUES
	('The Forge', 'Tritanium', 'single_item', 34, 'Jita', 0.90, 'Jita Max Buy 90%', NULL),
	('The Forge', 'Pyerite',   'single_item', 35, 'Jita', 0.90, 'Jita Max Buy 90%', NULL),
	('The Forge', 'Mexallon',  'single_item', 36, 'Jita', 0.88, 'Jita Max Buy 88%', NULL),
	('The Forge', 'Mineral Bundle', 'multi_item', NULL, 'Jita', 0.85, 'Jita Bundle 85%',
		'[{"type_id":34,"quantity":100},{"type_id":35,"quantity":50}]'),
	('The Forge', 'Starter Pack', 'sub_items', NULL, NULL, NULL, 'Starter Pack',
		'[{"name":"Tritanium","quantity":100},{"name":"Pyerite","quantity":50}]')
ON CONFLICT (location, item_name) DO NOTHING;
`

// Migrate создаёт таблицу стратегий, если её ещё нет, и подсевает дефолтные строки.
func Migrate(ctx context.Context, db *DB) error {
	if _, err := db.ExecContext(ctx, createStrategiesTable); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, seedStrategies)
	return err
}
