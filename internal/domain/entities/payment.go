package entities

import "time"

// PaymentStatus represents the outcome of the validate -> process -> log pipeline.
//
// A payment is either approved (a transaction reference was produced and logged)
// or rejected before processing. Rejection is a normal outcome, not an error.

type PaymentStatus string

const (
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// TransactionReference is the synthetic confirmation returned by a processor.
type TransactionReference string

// PaymentRequest is created per call and never persisted.
type PaymentRequest struct {
	Amount     float64 `json:"amount"`
	CardNumber string  `json:"card_number"`
}

type PaymentResult struct {
	Gateway     GatewayID            `json:"gateway"`
	Status      PaymentStatus        `json:"status"`
	Reference   TransactionReference `json:"transaction_reference,omitempty"`
	Message     string               `json:"message"`
	ProcessedAt time.Time            `json:"processed_at"`
}

func (r PaymentResult) Approved() bool {
	return r.Status == PaymentStatusApproved
}

// LogEntry is a single record emitted by a gateway logger.
type LogEntry struct {
	Gateway   GatewayID `json:"gateway"`
	Family    string    `json:"family"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
