package domain

import (
	"errors"
	"time"
)

// ErrRawInput возвращается, когда внешний парсер отверг свободный текст корзины.
// Это ошибка формы входа: сообщается вызывающему, не ретраится.
var ErrRawInput = errors.New("raw input rejected by parser")

// PricingEvent — событие о свежепосчитанной оценке для брокера и аналитики.
type PricingEvent struct {
	Hash     string    `json:"hash"`
	Location string    `json:"location"`
	Sum      float64   `json:"sum"`
	Accepted int       `json:"accepted"`
	Rejected int       `json:"rejected"`
	PricedAt time.Time `json:"priced_at"`
}
