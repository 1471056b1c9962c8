package bookingflow

import (
	"context"

	"shujia/models"
)

// BookingController collects and validates customer and schedule information
// and gates progression to the payment step. This step is local-only; no
// remote calls happen here.
type BookingController interface {
	// Enter returns the form to render, prefilled from saved booking data when
	// present. A non-nil transition means the session has no usable cart and
	// the caller must redirect before rendering any field.
	Enter(ctx context.Context, sessionID string) (*models.BookingFormData, *models.Transition, error)
	// Submit validates the full record. On violations nothing is written and
	// no transition happens; on success exactly one store write occurs and the
	// returned transition points at the payment step.
	Submit(ctx context.Context, sessionID string, form models.BookingFormData) (*models.Transition, Violations, error)
}

// PaymentView is everything the payment step renders: the resolved services
// in cart order, their derived identifiers, the loaded booking data (nil when
// absent) and the recomputed price quote.
type PaymentView struct {
	BookingData *models.BookingFormData `json:"bookingData,omitempty"`
	Services    []models.HomeService    `json:"services"`
	ServiceIDs  []int                   `json:"serviceIds"`
	Quote       models.PriceQuote       `json:"quote"`
}

// PaymentController resolves the cart into priced services, computes charges,
// and submits the finished transaction to the marketplace.
type PaymentController interface {
	Enter(ctx context.Context, sessionID string) (*PaymentView, *models.Transition, error)
	// Submit forwards the proof and booking data as one multipart transaction.
	// On success cart and bookingData are cleared together and the transition
	// carries the transaction id and email for the confirmation page.
	Submit(ctx context.Context, sessionID string, proof *models.ProofFile) (*models.Transition, Violations, error)
}
