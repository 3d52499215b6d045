package domain

import (
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// AcceptedResultItem — оценённая позиция корзины.
type AcceptedResultItem struct {
	Item       `bson:",inline"`
	PricePer   float64 `json:"price_per" bson:"price_per"`
	PriceTotal float64 `json:"price_total" bson:"price_total"`
	Source     string  `json:"source" bson:"source"`
}

// RejectedResultItem — позиция, оставшаяся без цены.
type RejectedResultItem struct {
	Item   `bson:",inline"`
	Source string `json:"source" bson:"source"`
}

// Response — итог оценки корзины. Заполняется позиция за позицией в порядке
// завершения конкурентных запросов, затем один раз сортируется и хэшируется.
// Sum накапливается инкрементально при Push и никогда не пересчитывается:
// порядок накопления с плавающей точкой — порядок вставки, не итоговый
// отсортированный.
type Response struct {
	Accepted []AcceptedResultItem `json:"accepted" bson:"accepted"`
	Rejected []RejectedResultItem `json:"rejected" bson:"rejected"`
	Hash     string               `json:"hash" bson:"hash"`
	Location string               `json:"location" bson:"location"`
	Sum      float64              `json:"sum" bson:"sum"`
}

// NewResponse создаёт пустой Response для локации с подсказкой ёмкости.
// Hash пуст до явного FinalizeHash.
func NewResponse(location string, capacity int) *Response {
	return &Response{
		Accepted: make([]AcceptedResultItem, 0, capacity),
		Rejected: make([]RejectedResultItem, 0, capacity),
		Location: location,
	}
}

// Push добавляет итог оценки одной позиции. Каждая входная позиция попадает
// ровно в один из списков.
func (r *Response) Push(item Item, price Price, source string) {
	if price.Accepted {
		accepted := AcceptedResultItem{
			Item:       item,
			PricePer:   price.Amount,
			PriceTotal: item.Quantity * price.Amount,
			Source:     source,
		}
		r.Accepted = append(r.Accepted, accepted)
		r.Sum += accepted.PriceTotal
		return
	}
	r.Rejected = append(r.Rejected, RejectedResultItem{Item: item, Source: source})
}

// Sort упорядочивает оба списка по имени предмета (побайтово).
// Вызывается до FinalizeHash: хэш считается от наблюдаемого порядка.
func (r *Response) Sort() {
	sort.Slice(r.Accepted, func(i, j int) bool {
		return r.Accepted[i].Name < r.Accepted[j].Name
	})
	sort.Slice(r.Rejected, func(i, j int) bool {
		return r.Rejected[i].Name < r.Rejected[j].Name
	})
}

// FinalizeHash считает и сохраняет content-хэш ответа.
// Хэш — чистая функция локации и списков (имя, количество, price_per,
// price_total для принятых; имя, количество для отклонённых). Source и Sum
// в хэш не входят.
func (r *Response) FinalizeHash() string {
	h := xxhash.New()
	writeField(h, r.Location)
	for _, it := range r.Accepted {
		writeField(h, it.Name)
		writeFloat(h, it.Quantity)
		writeFloat(h, it.PricePer)
		writeFloat(h, it.PriceTotal)
	}
	for _, it := range r.Rejected {
		writeField(h, it.Name)
		writeFloat(h, it.Quantity)
	}
	r.Hash = strconv.FormatUint(h.Sum64(), 16)
	return r.Hash
}

func writeField(h *xxhash.Digest, s string) {
	_, _ = h.WriteString(s)
	_, _ = h.Write([]byte{0})
}

func writeFloat(h *xxhash.Digest, f float64) {
	writeField(h, strconv.FormatFloat(f, 'g', -1, 64))
}
