package request

import "payment_factory/internal/domain/entities"

// PaymentRequest is the body of POST /v1/payments/:gateway.
//
// Amount and card are checked by the gateway itself, so a zero amount or a
// malformed card reaches the use case unchanged and comes back as a rejection.
type PaymentRequest struct {
	Amount     float64 `json:"amount" example:"150"`
	CardNumber string  `json:"card_number" example:"1234567890123456"`
}

func (r PaymentRequest) ToEntity() entities.PaymentRequest {
	return entities.PaymentRequest{
		Amount:     r.Amount,
		CardNumber: r.CardNumber,
	}
}
