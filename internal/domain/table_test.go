package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_Resolve(t *testing.T) {
	table := testTable()

	assert.Equal(t, StrategySingleItem, table.Resolve("The Forge", "Tritanium").Kind)
	// Неизвестная пара — отказ, не ошибка.
	assert.Equal(t, RejectedStrategy, table.Resolve("The Forge", "no such item"))
	assert.Equal(t, RejectedStrategy, table.Resolve("no such location", "Tritanium"))
}

func TestTable_Validate(t *testing.T) {
	tooMany := make([]TypeEntry, MaxMultiItemEntries+1)
	for i := range tooMany {
		tooMany[i] = TypeEntry{TypeID: int32(i + 1), Quantity: 1}
	}

	tests := []struct {
		name    string
		table   Table
		wantErr bool
	}{
		{
			name:  "валидная таблица",
			table: testTable(),
		},
		{
			name: "мульти-набор превышает лимит позиций",
			table: Table{"L": {
				"X": NewMultiItem(tooMany, "Jita", 0.8, ""),
			}},
			wantErr: true,
		},
		{
			name: "мульти-набор без позиций",
			table: Table{"L": {
				"X": NewMultiItem(nil, "Jita", 0.8, ""),
			}},
			wantErr: true,
		},
		{
			name: "единичная стратегия с пустым рынком",
			table: Table{"L": {
				"X": NewSingleItem(34, "", 0.9, ""),
			}},
			wantErr: true,
		},
		{
			name: "единичная стратегия с неположительным type id",
			table: Table{"L": {
				"X": NewSingleItem(0, "Jita", 0.9, ""),
			}},
			wantErr: true,
		},
		{
			name: "составная ссылается на составную",
			table: Table{"L": {
				"A": NewSubItems([]SubEntry{{Name: "B", Quantity: 1}}, "L", ""),
				"B": NewSubItems([]SubEntry{{Name: "A", Quantity: 1}}, "L", ""),
			}},
			wantErr: true,
		},
		{
			name: "составная с пустым именем под-позиции",
			table: Table{"L": {
				"A": NewSubItems([]SubEntry{{Name: "", Quantity: 1}}, "L", ""),
			}},
			wantErr: true,
		},
		{
			// Под-позиция, которой нет в таблице, разрешится в отказ на оценке —
			// таблица при этом валидна.
			name: "составная с неизвестной под-позицией",
			table: Table{"L": {
				"A": NewSubItems([]SubEntry{{Name: "missing", Quantity: 1}}, "L", ""),
			}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.table.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrMalformedTable)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
