package weve

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"buybackCalc/internal/domain"
	"buybackCalc/internal/ports"
)

var _ ports.IMarketData = (*Client)(nil)

// Config — настройки клиента источника рыночных данных (weve-market).
// Переменные: BUYBACK_WEVEMARKET_URL, BUYBACK_WEVEMARKET_TIMEOUT.
type Config struct {
	URL     string        `envconfig:"URL" default:"http://localhost:8081"`
	Timeout time.Duration `envconfig:"TIMEOUT" default:"10s"`
}

// Client — клиент источника рыночных данных: один унарный вызов на запрос
// стакана. Дешёвый, потокобезопасный, разделяется всеми конкурентными
// задачами без блокировок.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// New создаёт клиент по конфигу. Таймаут ограничивает каждый запрос:
// подвисший апстрим не подвешивает батч навсегда.
func New(cfg *Config, log *slog.Logger) *Client {
	if cfg == nil {
		cfg = &Config{URL: "http://localhost:8081", Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: cfg.URL,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

// MarketOrders запрашивает стакан buy-ордеров для (type_id, market).
// Пустой стакан — нормальный ответ; ошибка означает транспортный сбой.
func (c *Client) MarketOrders(ctx context.Context, req domain.OrderRequest) (domain.OrderBook, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return domain.OrderBook{}, fmt.Errorf("weve encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/market/orders", bytes.NewReader(body))
	if err != nil {
		return domain.OrderBook{}, fmt.Errorf("weve build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return domain.OrderBook{}, fmt.Errorf("weve request %d@%s: %w", req.TypeID, req.Market, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(httpResp.Body, 512))
		c.log.Debug("weve non-200", "status", httpResp.StatusCode, "type_id", req.TypeID, "market", req.Market)
		return domain.OrderBook{}, fmt.Errorf("weve request %d@%s: status %d: %s",
			req.TypeID, req.Market, httpResp.StatusCode, snippet)
	}

	var book domain.OrderBook
	if err := json.NewDecoder(httpResp.Body).Decode(&book); err != nil {
		return domain.OrderBook{}, fmt.Errorf("weve decode response: %w", err)
	}
	return book, nil
}
