package weve

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buybackCalc/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestMarketOrders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/market/orders", r.URL.Path)

		var req domain.OrderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, domain.OrderRequest{TypeID: 34, Market: "Jita", Buy: true}, req)

		json.NewEncoder(w).Encode(domain.OrderBook{Orders: []domain.Order{
			{Price: 7.2, Volume: 3},
			{Price: 5.0, Volume: 10},
		}})
	}))
	defer srv.Close()

	c := New(&Config{URL: srv.URL, Timeout: time.Second}, newTestLogger())

	book, err := c.MarketOrders(context.Background(),
		domain.OrderRequest{TypeID: 34, Market: "Jita", Buy: true})

	require.NoError(t, err)
	require.Len(t, book.Orders, 2)
	assert.Equal(t, 7.2, book.Orders[0].Price)
}

// Пустой стакан — нормальный ответ, не ошибка.
func TestMarketOrders_EmptyBook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(domain.OrderBook{})
	}))
	defer srv.Close()

	c := New(&Config{URL: srv.URL, Timeout: time.Second}, newTestLogger())

	book, err := c.MarketOrders(context.Background(),
		domain.OrderRequest{TypeID: 34, Market: "Jita", Buy: true})

	require.NoError(t, err)
	assert.Empty(t, book.Orders)
}

func TestMarketOrders_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "market unavailable", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := New(&Config{URL: srv.URL, Timeout: time.Second}, newTestLogger())

	_, err := c.MarketOrders(context.Background(),
		domain.OrderRequest{TypeID: 34, Market: "Jita", Buy: true})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}
