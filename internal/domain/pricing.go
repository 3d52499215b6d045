package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedTable возвращается, когда составная стратегия ссылается на под-стратегию
// недопустимого вида. Это ошибка конфигурационной таблицы, а не рабочая ситуация:
// батч падает целиком, цена не считается.
var ErrMalformedTable = errors.New("malformed pricing table")

// Максимальное число позиций в стратегиях (конфигурационные константы таблицы).
const (
	MaxMultiItemEntries = 8
	MaxSubItemEntries   = 8
)

// Price — итог оценки стратегии: принятая цена или отказ.
type Price struct {
	Amount   float64
	Accepted bool
}

// AcceptedPrice возвращает принятую цену.
func AcceptedPrice(amount float64) Price {
	return Price{Amount: amount, Accepted: true}
}

// RejectedPrice — отказ (нет цены).
var RejectedPrice = Price{}

// OrderRequest — один атомарный запрос к источнику рыночных данных.
// Значимый тип, безопасно копировать и переиздавать.
type OrderRequest struct {
	TypeID int32  `json:"type_id"`
	Market string `json:"market"`
	Buy    bool   `json:"buy"`
}

// Key возвращает ключ сопоставления ответа с позицией стратегии.
// Сопоставление всегда по ключу, не по позиции в слайсе: ответы приходят в произвольном порядке.
func (r OrderRequest) Key() RequestKey {
	return RequestKey{TypeID: r.TypeID, Market: r.Market}
}

// RequestKey — ключ (type_id, market) для сопоставления запросов и ответов.
type RequestKey struct {
	TypeID int32
	Market string
}

// Order — один buy-ордер из ответа источника.
type Order struct {
	Price  float64 `json:"price"`
	Volume int64   `json:"volume"`
}

// OrderBook — ответ источника на один OrderRequest.
type OrderBook struct {
	Orders []Order `json:"orders"`
}

// StrategyKind — вид стратегии. Набор закрытый: новый вид требует правок эвалюатора.
type StrategyKind uint8

const (
	// StrategyRejected — терминальная стратегия: запросов нет, итог всегда отказ.
	StrategyRejected StrategyKind = iota
	// StrategySingleItem — один рынок, один тип: max buy × множитель.
	StrategySingleItem
	// StrategyMultiItem — один рынок, набор типов: множитель × Σ(max buy × количество),
	// всё-или-ничего.
	StrategyMultiItem
	// StrategySubItems — составная: сумма цен под-позиций, разрешаемых по таблице.
	StrategySubItems
)

// TypeEntry — позиция мульти-стратегии: тип и количество.
type TypeEntry struct {
	TypeID   int32
	Quantity float64
}

// SubEntry — позиция составной стратегии: имя под-предмета и количество.
type SubEntry struct {
	Name     string
	Quantity float64
}

// Strategy — стратегия оценки, закрытое помеченное объединение (см. StrategyKind).
// Неизменяемая, берётся из таблицы (location, имя предмета) → стратегия.
type Strategy struct {
	Kind StrategyKind

	// StrategySingleItem
	TypeID int32
	Market string // и StrategyMultiItem

	// StrategySingleItem и StrategyMultiItem
	Multiplier float64

	// StrategyMultiItem
	Entries []TypeEntry

	// StrategySubItems
	SubItems []SubEntry
	Location string

	// Метка происхождения цены. Для составной стратегии это описание:
	// полная строка собирается рекурсивно в PriceSource.
	Source string
}

// RejectedStrategy — терминальная стратегия-отказ.
var RejectedStrategy = Strategy{Kind: StrategyRejected}

// NewSingleItem создаёт стратегию "один рынок, один тип".
func NewSingleItem(typeID int32, market string, multiplier float64, source string) Strategy {
	return Strategy{
		Kind:       StrategySingleItem,
		TypeID:     typeID,
		Market:     market,
		Multiplier: multiplier,
		Source:     source,
	}
}

// NewMultiItem создаёт стратегию "один рынок, набор типов".
func NewMultiItem(entries []TypeEntry, market string, multiplier float64, source string) Strategy {
	return Strategy{
		Kind:       StrategyMultiItem,
		Entries:    entries,
		Market:     market,
		Multiplier: multiplier,
		Source:     source,
	}
}

// NewSubItems создаёт составную стратегию: под-позиции разрешаются по таблице
// в момент оценки, по той же локации, что задана здесь.
func NewSubItems(entries []SubEntry, location string, source string) Strategy {
	return Strategy{
		Kind:     StrategySubItems,
		SubItems: entries,
		Location: location,
		Source:   source,
	}
}

// Requests возвращает полный список атомарных запросов стратегии.
// Для составной стратегии разрешает под-позиции по таблице; если хоть одна
// разрешилась в отказ — возвращает rejected=true и пустой список (сетевых
// вызовов не будет). Под-стратегия недопустимого вида — ErrMalformedTable.
func (s Strategy) Requests(table Table) (reqs []OrderRequest, rejected bool, err error) {
	switch s.Kind {
	case StrategyRejected:
		return nil, true, nil
	case StrategySingleItem:
		return []OrderRequest{{TypeID: s.TypeID, Market: s.Market, Buy: true}}, false, nil
	case StrategyMultiItem:
		reqs = make([]OrderRequest, 0, len(s.Entries))
		for _, e := range s.Entries {
			reqs = append(reqs, OrderRequest{TypeID: e.TypeID, Market: s.Market, Buy: true})
		}
		return reqs, false, nil
	case StrategySubItems:
		reqs = make([]OrderRequest, 0, len(s.SubItems))
		for _, sub := range s.SubItems {
			st := table.Resolve(s.Location, sub.Name)
			switch st.Kind {
			case StrategyRejected:
				return nil, true, nil
			case StrategySingleItem:
				reqs = append(reqs, OrderRequest{TypeID: st.TypeID, Market: st.Market, Buy: true})
			default:
				return nil, false, fmt.Errorf("%w: %q at %q resolves to kind %d inside a composite",
					ErrMalformedTable, sub.Name, s.Location, st.Kind)
			}
		}
		return reqs, false, nil
	default:
		return nil, false, fmt.Errorf("%w: unknown strategy kind %d", ErrMalformedTable, s.Kind)
	}
}

// Reduce сводит набор ответов (по ключу запроса) в итоговую цену.
// Предполагает, что books содержит ответ на каждый запрос из Requests:
// отсутствие ответа — ошибка транспортного уровня, не отказ.
func (s Strategy) Reduce(table Table, books map[RequestKey]OrderBook) (Price, error) {
	switch s.Kind {
	case StrategyRejected:
		return RejectedPrice, nil
	case StrategySingleItem:
		book, ok := books[RequestKey{TypeID: s.TypeID, Market: s.Market}]
		if !ok {
			return RejectedPrice, fmt.Errorf("missing order book for type %d at %q", s.TypeID, s.Market)
		}
		best, ok := maxBuyPrice(book.Orders)
		if !ok {
			return RejectedPrice, nil // ордеров нет — легитимный отказ
		}
		return AcceptedPrice(best * s.Multiplier), nil
	case StrategyMultiItem:
		var price float64
		for _, e := range s.Entries {
			book, ok := books[RequestKey{TypeID: e.TypeID, Market: s.Market}]
			if !ok {
				return RejectedPrice, fmt.Errorf("missing order book for type %d at %q", e.TypeID, s.Market)
			}
			best, ok := maxBuyPrice(book.Orders)
			if !ok {
				return RejectedPrice, nil // всё-или-ничего: пустой рынок одной позиции валит весь набор
			}
			price += best * e.Quantity
		}
		return AcceptedPrice(price * s.Multiplier), nil
	case StrategySubItems:
		var price float64
		for _, sub := range s.SubItems {
			st := table.Resolve(s.Location, sub.Name)
			switch st.Kind {
			case StrategyRejected:
				return RejectedPrice, nil
			case StrategySingleItem:
				subPrice, err := st.Reduce(table, books)
				if err != nil {
					return RejectedPrice, err
				}
				if !subPrice.Accepted {
					return RejectedPrice, nil
				}
				price += subPrice.Amount * sub.Quantity
			default:
				return RejectedPrice, fmt.Errorf("%w: %q at %q resolves to kind %d inside a composite",
					ErrMalformedTable, sub.Name, s.Location, st.Kind)
			}
		}
		return AcceptedPrice(price), nil
	default:
		return RejectedPrice, fmt.Errorf("%w: unknown strategy kind %d", ErrMalformedTable, s.Kind)
	}
}

// PriceSource возвращает метку происхождения цены. Для составной стратегии
// метка синтезируется: описание плюс имя, количество и происхождение каждой
// разрешённой под-позиции.
func (s Strategy) PriceSource(table Table) string {
	switch s.Kind {
	case StrategyRejected:
		return "Rejected"
	case StrategySingleItem, StrategyMultiItem:
		return s.Source
	case StrategySubItems:
		var b strings.Builder
		b.WriteString(`MP{"description":"`)
		b.WriteString(s.Source)
		b.WriteString(`","values":[`)
		for i, sub := range s.SubItems {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(`{"item":"`)
			b.WriteString(sub.Name)
			b.WriteString(`","quantity":`)
			b.WriteString(strconv.FormatFloat(sub.Quantity, 'g', -1, 64))
			b.WriteString(`,"description":"`)
			b.WriteString(table.Resolve(s.Location, sub.Name).PriceSource(table))
			b.WriteString(`"}`)
		}
		b.WriteString(`]}`)
		return b.String()
	default:
		return ""
	}
}

// maxBuyPrice возвращает лучшую (максимальную) цену buy-ордера.
// ok == false, если ордеров нет.
func maxBuyPrice(orders []Order) (best float64, ok bool) {
	for i, o := range orders {
		if i == 0 || priceLess(best, o.Price) {
			best = o.Price
		}
	}
	return best, len(orders) > 0
}

// priceLess — полный порядок на ценах: любая конечная цена больше неконечной,
// две неконечные равны. Сравнение определено для всех входов, без паник.
func priceLess(a, b float64) bool {
	af, bf := isFinite(a), isFinite(b)
	switch {
	case af && bf:
		return a < b
	case bf:
		return true // a неконечна, b конечна
	default:
		return false // b неконечна: не больше любой a
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
