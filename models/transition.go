package models

// Step identifies a destination in the client flow.
type Step string

const (
	StepEntry        Step = "entry"
	StepBooking      Step = "booking"
	StepPayment      Step = "payment"
	StepConfirmation Step = "confirmation"
)

// Transition is an abstract navigation target handed back to the client
// router. The router owns the actual URLs.
type Transition struct {
	To     Step              `json:"to"`
	Params map[string]string `json:"params,omitempty"`
}

func EntryTransition() *Transition {
	return &Transition{To: StepEntry}
}

func PaymentTransition() *Transition {
	return &Transition{To: StepPayment}
}

// ConfirmationTransition carries the transaction identifier and email the
// confirmation page renders as query parameters.
func ConfirmationTransition(trxID, email string) *Transition {
	return &Transition{To: StepConfirmation, Params: map[string]string{
		"trx_id": trxID,
		"email":  email,
	}}
}
