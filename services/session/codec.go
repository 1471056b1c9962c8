package session

import (
	"encoding/json"
	"fmt"

	"shujia/models"
)

// The store validates values on read with the same encoding used on write, so
// a corrupt or foreign value degrades to "absent" instead of crashing a page
// load. Both the Redis and the in-memory store share this codec.

func encodeCart(items []models.CartItem) ([]byte, error) {
	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("session: failed to encode cart: %w", err)
	}
	return data, nil
}

func decodeCart(data []byte) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("session: failed to decode cart: %w", err)
	}
	return items, nil
}

func encodeBookingData(form models.BookingFormData) ([]byte, error) {
	data, err := json.Marshal(form)
	if err != nil {
		return nil, fmt.Errorf("session: failed to encode booking data: %w", err)
	}
	return data, nil
}

func decodeBookingData(data []byte) (*models.BookingFormData, error) {
	var form models.BookingFormData
	if err := json.Unmarshal(data, &form); err != nil {
		return nil, fmt.Errorf("session: failed to decode booking data: %w", err)
	}
	return &form, nil
}
