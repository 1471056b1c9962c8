package session

import (
	"context"
	"errors"

	"shujia/models"
)

// Names of the values kept per session, mirroring the client's storage keys.
const (
	cartKey        = "cart"
	bookingDataKey = "bookingData"
)

// ErrNotFound is returned when a session value is absent. A stored value that
// fails to decode is reported the same way, never as a crash.
var ErrNotFound = errors.New("session: value not found")

// Store is the session state service shared by the booking and payment
// controllers. It exposes typed load/save/clear operations over a narrow key
// set; a session holds at most one cart and one bookingData value.
type Store interface {
	Cart(ctx context.Context, sessionID string) ([]models.CartItem, error)
	SaveCart(ctx context.Context, sessionID string, items []models.CartItem) error
	BookingData(ctx context.Context, sessionID string) (*models.BookingFormData, error)
	SaveBookingData(ctx context.Context, sessionID string, form models.BookingFormData) error
	// ClearBookingState removes cart and bookingData together. Called only on
	// submission success.
	ClearBookingState(ctx context.Context, sessionID string) error
}
