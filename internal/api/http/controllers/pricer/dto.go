package pricer

import "errors"

// PriceRequest — запрос оценки (POST /api/v1/price). Либо hash ранее
// посчитанного ответа, либо локация с корзиной: items (структурно) или raw
// (свободный текст, уходит внешнему парсеру).
type PriceRequest struct {
	Hash     string    `json:"hash,omitempty"`
	Location string    `json:"location,omitempty"`
	Items    []ItemDTO `json:"items,omitempty"`
	Raw      string    `json:"raw,omitempty"`
}

// ItemDTO — позиция корзины во входном запросе.
type ItemDTO struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

// Validate проверяет форму запроса до какой-либо оценки.
func (r *PriceRequest) Validate() error {
	if r.Hash != "" {
		if r.Location != "" || len(r.Items) > 0 || r.Raw != "" {
			return errors.New("hash request must not carry location or items")
		}
		return nil
	}
	if r.Location == "" {
		return errors.New("either hash or location is required")
	}
	if len(r.Items) > 0 && r.Raw != "" {
		return errors.New("items and raw are mutually exclusive")
	}
	if len(r.Items) == 0 && r.Raw == "" {
		return errors.New("items or raw is required")
	}
	for _, it := range r.Items {
		if it.Name == "" {
			return errors.New("item name must not be empty")
		}
	}
	return nil
}

// ErrorResponse — тело ответа при ошибке.
type ErrorResponse struct {
	Message string `json:"message"`
}
