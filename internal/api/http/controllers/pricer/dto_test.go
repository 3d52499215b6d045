package pricer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     PriceRequest
		wantErr bool
	}{
		{
			name: "только hash",
			req:  PriceRequest{Hash: "abc"},
		},
		{
			name: "локация и items",
			req: PriceRequest{
				Location: "The Forge",
				Items:    []ItemDTO{{Name: "Tritanium", Quantity: 100}},
			},
		},
		{
			name: "локация и raw",
			req:  PriceRequest{Location: "The Forge", Raw: "Tritanium x100"},
		},
		{
			name:    "hash вместе с локацией",
			req:     PriceRequest{Hash: "abc", Location: "The Forge"},
			wantErr: true,
		},
		{
			name:    "пустой запрос",
			req:     PriceRequest{},
			wantErr: true,
		},
		{
			name:    "локация без корзины",
			req:     PriceRequest{Location: "The Forge"},
			wantErr: true,
		},
		{
			name: "items и raw одновременно",
			req: PriceRequest{
				Location: "The Forge",
				Items:    []ItemDTO{{Name: "Tritanium", Quantity: 1}},
				Raw:      "Tritanium x1",
			},
			wantErr: true,
		},
		{
			name: "позиция с пустым именем",
			req: PriceRequest{
				Location: "The Forge",
				Items:    []ItemDTO{{Name: "", Quantity: 1}},
			},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
