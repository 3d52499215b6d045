package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testTable — маленькая таблица для юнит-тестов: единичные стратегии,
// мульти-набор и составная с под-позициями.
func testTable() Table {
	return Table{
		"The Forge": {
			"Tritanium": NewSingleItem(34, "Jita", 0.90, "Jita buy x0.90"),
			"Pyerite":   NewSingleItem(35, "Jita", 0.85, "Jita buy x0.85"),
			"Bundle": NewMultiItem([]TypeEntry{
				{TypeID: 34, Quantity: 100},
				{TypeID: 35, Quantity: 50},
			}, "Jita", 0.80, "Jita bundle x0.80"),
			"Pack": NewSubItems([]SubEntry{
				{Name: "Tritanium", Quantity: 2},
				{Name: "Pyerite", Quantity: 3},
			}, "The Forge", "starter pack"),
			"Scrap": RejectedStrategy,
		},
	}
}

func TestRequests_SingleItem(t *testing.T) {
	st := NewSingleItem(34, "Jita", 0.90, "src")

	reqs, rejected, err := st.Requests(testTable())

	require.NoError(t, err)
	assert.False(t, rejected)
	assert.Equal(t, []OrderRequest{{TypeID: 34, Market: "Jita", Buy: true}}, reqs)
}

func TestRequests_Rejected(t *testing.T) {
	reqs, rejected, err := RejectedStrategy.Requests(testTable())

	require.NoError(t, err)
	assert.True(t, rejected)
	assert.Empty(t, reqs)
}

// Составная стратегия разворачивается в запросы своих под-позиций.
func TestRequests_SubItems(t *testing.T) {
	table := testTable()
	st := table.Resolve("The Forge", "Pack")

	reqs, rejected, err := st.Requests(table)

	require.NoError(t, err)
	assert.False(t, rejected)
	assert.Equal(t, []OrderRequest{
		{TypeID: 34, Market: "Jita", Buy: true},
		{TypeID: 35, Market: "Jita", Buy: true},
	}, reqs)
}

// Если хоть одна под-позиция разрешается в отказ, составная стратегия отказная
// целиком, без единого запроса.
func TestRequests_SubItems_RejectedSub(t *testing.T) {
	table := testTable()
	st := NewSubItems([]SubEntry{
		{Name: "Tritanium", Quantity: 2},
		{Name: "Unknown Item", Quantity: 1},
	}, "The Forge", "pack")

	reqs, rejected, err := st.Requests(table)

	require.NoError(t, err)
	assert.True(t, rejected)
	assert.Empty(t, reqs)
}

// Под-позиция, разрешившаяся в мульти- или составную стратегию — битая таблица.
func TestRequests_SubItems_MalformedTable(t *testing.T) {
	table := testTable()
	st := NewSubItems([]SubEntry{{Name: "Bundle", Quantity: 1}}, "The Forge", "pack")

	_, _, err := st.Requests(table)

	assert.ErrorIs(t, err, ErrMalformedTable)
}

func TestReduce_SingleItem(t *testing.T) {
	st := NewSingleItem(34, "Jita", 0.90, "src")
	books := map[RequestKey]OrderBook{
		{TypeID: 34, Market: "Jita"}: {Orders: []Order{
			{Price: 5.0, Volume: 10},
			{Price: 7.2, Volume: 3},
			{Price: 3.1, Volume: 100},
		}},
	}

	price, err := st.Reduce(testTable(), books)

	require.NoError(t, err)
	assert.True(t, price.Accepted)
	// лучший buy-ордер 7.2, множитель 0.90
	assert.InDelta(t, 6.48, price.Amount, 1e-9)
}

// Пустой стакан — легитимный отказ, не ошибка.
func TestReduce_SingleItem_EmptyBook(t *testing.T) {
	st := NewSingleItem(34, "Jita", 0.90, "src")
	books := map[RequestKey]OrderBook{
		{TypeID: 34, Market: "Jita"}: {},
	}

	price, err := st.Reduce(testTable(), books)

	require.NoError(t, err)
	assert.False(t, price.Accepted)
}

// Отсутствие стакана на выданный запрос — транспортная ошибка, не отказ.
func TestReduce_SingleItem_MissingBook(t *testing.T) {
	st := NewSingleItem(34, "Jita", 0.90, "src")

	_, err := st.Reduce(testTable(), map[RequestKey]OrderBook{})

	assert.Error(t, err)
}

func TestReduce_MultiItem(t *testing.T) {
	table := testTable()
	st := table.Resolve("The Forge", "Bundle")
	books := map[RequestKey]OrderBook{
		{TypeID: 34, Market: "Jita"}: {Orders: []Order{{Price: 4.0, Volume: 1}}},
		{TypeID: 35, Market: "Jita"}: {Orders: []Order{{Price: 10.0, Volume: 1}}},
	}

	price, err := st.Reduce(table, books)

	require.NoError(t, err)
	assert.True(t, price.Accepted)
	// (4.0*100 + 10.0*50) * 0.80 = 720
	assert.InDelta(t, 720.0, price.Amount, 1e-9)
}

// Всё-или-ничего: пустой рынок одной позиции валит весь набор.
func TestReduce_MultiItem_AllOrNothing(t *testing.T) {
	table := testTable()
	st := table.Resolve("The Forge", "Bundle")
	books := map[RequestKey]OrderBook{
		{TypeID: 34, Market: "Jita"}: {Orders: []Order{{Price: 4.0, Volume: 1}}},
		{TypeID: 35, Market: "Jita"}: {}, // ордеров нет
	}

	price, err := st.Reduce(table, books)

	require.NoError(t, err)
	assert.False(t, price.Accepted)
}

// Составная: сумма цен под-позиций с их количествами, внешний множитель
// не применяется (множители уже внутри под-стратегий).
func TestReduce_SubItems(t *testing.T) {
	table := testTable()
	st := table.Resolve("The Forge", "Pack")
	books := map[RequestKey]OrderBook{
		{TypeID: 34, Market: "Jita"}: {Orders: []Order{{Price: 10.0, Volume: 1}}},
		{TypeID: 35, Market: "Jita"}: {Orders: []Order{{Price: 20.0, Volume: 1}}},
	}

	price, err := st.Reduce(table, books)

	require.NoError(t, err)
	assert.True(t, price.Accepted)
	// 10*0.90*2 + 20*0.85*3 = 18 + 51 = 69
	assert.InDelta(t, 69.0, price.Amount, 1e-9)
}

func TestReduce_SubItems_RejectedSub(t *testing.T) {
	table := testTable()
	st := NewSubItems([]SubEntry{
		{Name: "Tritanium", Quantity: 2},
		{Name: "Scrap", Quantity: 1},
	}, "The Forge", "pack")
	books := map[RequestKey]OrderBook{
		{TypeID: 34, Market: "Jita"}: {Orders: []Order{{Price: 10.0, Volume: 1}}},
	}

	price, err := st.Reduce(table, books)

	require.NoError(t, err)
	assert.False(t, price.Accepted)
}

// Порядок на ценах полный: конечная цена всегда бьёт NaN и бесконечности,
// сравнение не паникует ни на каких входах.
func TestMaxBuyPrice_NonFinite(t *testing.T) {
	tests := []struct {
		name   string
		orders []Order
		want   float64
		ok     bool
	}{
		{
			name: "конечная бьёт NaN и +Inf",
			orders: []Order{
				{Price: math.Inf(1)},
				{Price: 5.0},
				{Price: math.NaN()},
			},
			want: 5.0,
			ok:   true,
		},
		{
			name:   "одни неконечные — берётся первая",
			orders: []Order{{Price: math.NaN()}, {Price: math.Inf(-1)}},
			want:   math.NaN(),
			ok:     true,
		},
		{
			name:   "пустой стакан",
			orders: nil,
			ok:     false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := maxBuyPrice(tc.orders)
			assert.Equal(t, tc.ok, ok)
			if !tc.ok {
				return
			}
			if math.IsNaN(tc.want) {
				assert.True(t, math.IsNaN(got))
			} else {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestPriceSource(t *testing.T) {
	table := testTable()

	assert.Equal(t, "Rejected", RejectedStrategy.PriceSource(table))
	assert.Equal(t, "Jita buy x0.90", table.Resolve("The Forge", "Tritanium").PriceSource(table))

	// Составная метка синтезируется из описания и под-позиций.
	src := table.Resolve("The Forge", "Pack").PriceSource(table)
	assert.Equal(t, `MP{"description":"starter pack","values":[`+
		`{"item":"Tritanium","quantity":2,"description":"Jita buy x0.90"},`+
		`{"item":"Pyerite","quantity":3,"description":"Jita buy x0.85"}]}`, src)
}
