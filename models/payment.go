package models

// ProofFile is the user-supplied proof of payment. It is forwarded verbatim
// to the marketplace API and never inspected or stored by this service.
type ProofFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// PaymentSubmission is assembled on submit from the resolved services and a
// freshly chosen proof file. It is ephemeral and never persisted; ServiceIDs
// is always derived from the resolved service list, in the same order.
type PaymentSubmission struct {
	Proof      *ProofFile `json:"proof" validate:"required"`
	ServiceIDs []int      `json:"service_ids" validate:"required,min=1"`
}

// PriceQuote holds the derived charges for the resolved services. Recomputed
// on every payment-step entry, never persisted.
type PriceQuote struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// TransactionReceipt mirrors the marketplace response for a finished booking.
type TransactionReceipt struct {
	BookingTrxID string `json:"booking_trx_id"`
	Email        string `json:"email"`
}
