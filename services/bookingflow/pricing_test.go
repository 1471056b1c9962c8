package bookingflow

import (
	"testing"

	"shujia/models"

	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	tests := []struct {
		name     string
		services []models.HomeService
		want     models.PriceQuote
	}{
		{
			name:     "empty list quotes zero",
			services: nil,
			want:     models.PriceQuote{Subtotal: 0, Tax: 0, Total: 0},
		},
		{
			name: "single service",
			services: []models.HomeService{
				{ID: 1, Price: 100000},
			},
			want: models.PriceQuote{Subtotal: 100000, Tax: 11000, Total: 111000},
		},
		{
			name: "two services",
			services: []models.HomeService{
				{ID: 1, Price: 100000},
				{ID: 2, Price: 50000},
			},
			want: models.PriceQuote{Subtotal: 150000, Tax: 16500, Total: 166500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Quote(tt.services)
			assert.InDelta(t, tt.want.Subtotal, got.Subtotal, 1e-9)
			assert.InDelta(t, tt.want.Tax, got.Tax, 1e-9)
			assert.InDelta(t, tt.want.Total, got.Total, 1e-9)
		})
	}
}

func TestSubtotal(t *testing.T) {
	services := []models.HomeService{
		{Price: 25000},
		{Price: 75000},
	}
	assert.InDelta(t, 100000.0, Subtotal(services), 1e-9)
}
