// Команда shell — одноразовая оценка: вход на stdin (тот же JSON, что у
// POST /api/v1/price), итог в JSON на stdout. Подключает только нужные
// зависимости: таблицу стратегий, кэш ответов и источник рыночных данных.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"buybackCalc/internal/app"
	"buybackCalc/internal/domain"
	"buybackCalc/internal/infrastructure/mongo"
	"buybackCalc/internal/infrastructure/parser"
	"buybackCalc/internal/infrastructure/pg"
	"buybackCalc/internal/infrastructure/weve"
	"buybackCalc/internal/pkg/logger"
	pricerUsecase "buybackCalc/internal/usecase/pricer"
)

// input — запрос на stdin: либо hash, либо location + items|raw.
type input struct {
	Hash     string        `json:"hash"`
	Location string        `json:"location"`
	Items    []domain.Item `json:"items"`
	Raw      string        `json:"raw"`
}

func main() {
	if err := run(); err != nil {
		log.Fatalf("shell: %v", err)
	}
}

func run() error {
	cfg, err := app.LoadCfg()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logg := logger.NewWithLevel("error") // stdout оставляем чистым под JSON
	ctx := context.Background()

	buf, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("stdin: %w", err)
	}
	var in input
	if err := json.Unmarshal(buf, &in); err != nil {
		return fmt.Errorf("decode input: %w", err)
	}

	mdb, err := mongo.New(ctx, &cfg.Mongo)
	if err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	defer mdb.Disconnect(context.Background())
	hashCache := mongo.NewHashCache(mdb, logg)

	if in.Hash != "" {
		resp, err := hashCache.Lookup(ctx, in.Hash)
		if err != nil {
			return fmt.Errorf("lookup: %w", err)
		}
		return printJSON(resp)
	}

	db, err := pg.New(&cfg.DB)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()
	table, err := pg.NewStrategyRepo(db, logg).LoadTable(ctx)
	if err != nil {
		return fmt.Errorf("load strategy table: %w", err)
	}

	items := in.Items
	if in.Raw != "" {
		items, err = parser.New(&cfg.Parser, logg).Parse(ctx, in.Raw)
		if err != nil {
			return fmt.Errorf("parse raw: %w", err)
		}
	}

	market := weve.New(&cfg.WeveMarket, logg)
	uc := pricerUsecase.New(table, market, hashCache, nil, nil, nil, logg)

	resp, err := uc.PriceBasket(ctx, in.Location, items)
	if err != nil {
		return fmt.Errorf("price basket: %w", err)
	}
	return printJSON(resp)
}

func printJSON(v any) error {
	out, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
