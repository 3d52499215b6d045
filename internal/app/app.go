package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	apihttp "buybackCalc/internal/api/http"
	"buybackCalc/internal/api/http/controllers/pricer"
	"buybackCalc/internal/api/http/controllers/system"
	"buybackCalc/internal/infrastructure/click"
	"buybackCalc/internal/infrastructure/kafka"
	"buybackCalc/internal/infrastructure/mongo"
	"buybackCalc/internal/infrastructure/parser"
	"buybackCalc/internal/infrastructure/pg"
	"buybackCalc/internal/infrastructure/redis"
	"buybackCalc/internal/infrastructure/weve"
	"buybackCalc/internal/pkg/logger"
	pricerUsecase "buybackCalc/internal/usecase/pricer"
)

// App — приложение, хранит только конфиг.
type App struct {
	cfg Config
}

// New создаёт приложение с конфигом (зависимости подключаются в Run).
func New(cfg Config) *App {
	return &App{cfg: cfg}
}

// Run подключает зависимости, загружает таблицу стратегий и запускает
// HTTP-сервер с консьюмером событий (блокирующий вызов).
func (a *App) Run() error {
	log := logger.NewWithLevel(a.cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := pg.New(&a.cfg.DB)
	if err != nil {
		return fmt.Errorf("db: %w", err)
	}
	defer db.Close()

	if err := pg.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	tableRepo := pg.NewStrategyRepo(db, log)
	table, err := tableRepo.LoadTable(ctx)
	if err != nil {
		return fmt.Errorf("load strategy table: %w", err)
	}

	mdb, err := mongo.New(ctx, &a.cfg.Mongo)
	if err != nil {
		return fmt.Errorf("mongo: %w", err)
	}
	defer mdb.Disconnect(context.Background())

	rdb, err := redis.New(&a.cfg.Redis)
	if err != nil {
		return fmt.Errorf("redis: %w", err)
	}
	defer rdb.Close()

	ch, err := click.New(&a.cfg.ClickHouse)
	if err != nil {
		return fmt.Errorf("clickhouse: %w", err)
	}
	defer ch.Close()

	analytics := click.NewPricingWriter(ch)
	if err := analytics.EnsureTable(ctx); err != nil {
		return fmt.Errorf("clickhouse ensure table: %w", err)
	}

	producer := kafka.NewProducer(&a.cfg.Kafka)
	defer producer.Close()

	hashCache := mongo.NewHashCache(mdb, log)
	hotCache := redis.NewCache(rdb, log)
	market := weve.New(&a.cfg.WeveMarket, log)
	rawParser := parser.New(&a.cfg.Parser, log)

	uc := pricerUsecase.New(table, market, hashCache, hotCache, producer, analytics, log)

	consumer := kafka.NewConsumer(&a.cfg.Kafka, uc, log)
	defer consumer.Close()
	go func() {
		if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
			slog.Error("kafka consumer failed", "error", err)
		}
	}()

	srv := apihttp.NewServer(a.cfg.Server)
	srv.AddController(
		system.New(hashCache, tableRepo, log),
		pricer.New(uc, rawParser, log))

	httpAddr := a.cfg.Server.Host + ":" + a.cfg.Server.Port
	slog.Info("application started", "http", httpAddr, "locations", len(table))

	return srv.Start(ctx)
}
