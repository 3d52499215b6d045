package ports

//go:generate mockgen -source=parser.go -destination=../mocks/parser_mock.go -package=mocks

import (
	"context"

	"buybackCalc/internal/domain"
)

// IRawParser — контракт внешнего парсера свободного текста корзины
// (подпроцесс или сервис). Возвращает структурированный список позиций.
type IRawParser interface {
	Parse(ctx context.Context, raw string) ([]domain.Item, error)
}
