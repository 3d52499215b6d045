package app

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"buybackCalc/internal/api/http"
	"buybackCalc/internal/infrastructure/click"
	"buybackCalc/internal/infrastructure/kafka"
	"buybackCalc/internal/infrastructure/mongo"
	"buybackCalc/internal/infrastructure/parser"
	"buybackCalc/internal/infrastructure/pg"
	"buybackCalc/internal/infrastructure/redis"
	"buybackCalc/internal/infrastructure/weve"
)

const AppName = "BUYBACK"

// Config — конфиг приложения. Заполняется через envconfig с префиксом BUYBACK.
type Config struct {
	LogLevel   string            `envconfig:"LOG_LEVEL" default:"info"`
	Server     http.ServerConfig `envconfig:"SERVER"`
	DB         pg.Config         `envconfig:"DB"`
	Mongo      mongo.Config      `envconfig:"MONGO"`
	Redis      redis.Config      `envconfig:"REDIS"`
	Kafka      kafka.Config      `envconfig:"KAFKA"`
	ClickHouse click.Config      `envconfig:"CLICKHOUSE"`
	WeveMarket weve.Config       `envconfig:"WEVEMARKET"`
	Parser     parser.Config     `envconfig:"PARSER"`
}

// LoadCfg загружает конфиг: подтягивает .env (godotenv), затем заполняет структуру из окружения (envconfig).
func LoadCfg() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("config: .env не найден, используем окружение: %v", err)
	}

	var cfg Config
	if err := envconfig.Process(AppName, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
