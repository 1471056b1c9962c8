package bookingflow

import "shujia/models"

// TaxRate is the fixed rate applied to every booking subtotal.
const TaxRate = 0.11

// Subtotal sums the prices of the resolved services.
func Subtotal(services []models.HomeService) float64 {
	total := 0.0
	for _, svc := range services {
		total += svc.Price
	}
	return total
}

// Quote derives subtotal, tax and total from the resolved service list. The
// values are recomputed on every call and never persisted.
func Quote(services []models.HomeService) models.PriceQuote {
	subtotal := Subtotal(services)
	tax := subtotal * TaxRate
	return models.PriceQuote{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}
