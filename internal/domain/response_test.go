package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_Push(t *testing.T) {
	resp := NewResponse("The Forge", 2)

	resp.Push(Item{Name: "Tritanium", Quantity: 100}, AcceptedPrice(6.48), "Jita buy x0.90")
	resp.Push(Item{Name: "Scrap", Quantity: 5}, RejectedPrice, "Rejected")

	require.Len(t, resp.Accepted, 1)
	require.Len(t, resp.Rejected, 1)
	assert.InDelta(t, 648.0, resp.Accepted[0].PriceTotal, 1e-9)
	assert.InDelta(t, 648.0, resp.Sum, 1e-9)
	assert.Equal(t, "Scrap", resp.Rejected[0].Name)
}

// Sum копится в порядке вставки и не пересчитывается после сортировки.
func TestResponse_SumInsertionOrder(t *testing.T) {
	resp := NewResponse("The Forge", 3)
	resp.Push(Item{Name: "C", Quantity: 1}, AcceptedPrice(0.1), "")
	resp.Push(Item{Name: "A", Quantity: 1}, AcceptedPrice(0.2), "")
	resp.Push(Item{Name: "B", Quantity: 1}, AcceptedPrice(0.3), "")

	sum := resp.Sum
	resp.Sort()

	assert.Equal(t, sum, resp.Sum)
	assert.Equal(t, "A", resp.Accepted[0].Name)
	assert.Equal(t, "B", resp.Accepted[1].Name)
	assert.Equal(t, "C", resp.Accepted[2].Name)
}

// Хэш — чистая функция содержимого: один и тот же отсортированный ответ даёт
// один и тот же хэш независимо от порядка вставки.
func TestResponse_HashDeterministic(t *testing.T) {
	build := func(order []int) *Response {
		items := []struct {
			name  string
			price float64
		}{
			{"Tritanium", 6.48},
			{"Pyerite", 4.25},
			{"Mexallon", 50.0},
		}
		resp := NewResponse("The Forge", len(order))
		for _, i := range order {
			resp.Push(Item{Name: items[i].name, Quantity: 10}, AcceptedPrice(items[i].price), "src")
		}
		resp.Sort()
		resp.FinalizeHash()
		return resp
	}

	a := build([]int{0, 1, 2})
	b := build([]int{2, 0, 1})

	require.NotEmpty(t, a.Hash)
	assert.Equal(t, a.Hash, b.Hash)
}

// Source в хэш не входит: происхождение цены — метаданные, не содержимое.
func TestResponse_HashIgnoresSource(t *testing.T) {
	build := func(source string) *Response {
		resp := NewResponse("The Forge", 1)
		resp.Push(Item{Name: "Tritanium", Quantity: 10}, AcceptedPrice(6.48), source)
		resp.Sort()
		resp.FinalizeHash()
		return resp
	}

	assert.Equal(t, build("Jita buy x0.90").Hash, build("другой источник").Hash)
}

func TestResponse_HashSensitive(t *testing.T) {
	build := func(location string, qty float64) *Response {
		resp := NewResponse(location, 1)
		resp.Push(Item{Name: "Tritanium", Quantity: qty}, AcceptedPrice(6.48), "")
		resp.Sort()
		resp.FinalizeHash()
		return resp
	}

	base := build("The Forge", 10)
	assert.NotEqual(t, base.Hash, build("Domain", 10).Hash, "локация входит в хэш")
	assert.NotEqual(t, base.Hash, build("The Forge", 11).Hash, "количество входит в хэш")
}
