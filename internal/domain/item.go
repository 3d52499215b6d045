package domain

// Item — одна позиция корзины: имя предмета и количество. Количество может быть дробным.
// После парсинга не изменяется.
type Item struct {
	Name     string  `json:"name" bson:"name"`
	Quantity float64 `json:"quantity" bson:"quantity"`
}
