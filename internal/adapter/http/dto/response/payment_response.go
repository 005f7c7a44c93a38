package response

import (
	"time"

	"payment_factory/internal/domain/entities"
)

type PaymentResponse struct {
	Gateway              string    `json:"gateway"`
	Status               string    `json:"status"`
	TransactionReference string    `json:"transaction_reference,omitempty"`
	Message              string    `json:"message"`
	ProcessedAt          time.Time `json:"processed_at"`
}

type GatewaysResponse struct {
	Gateways []string `json:"gateways"`
}

type PingResponse struct {
	Message string `json:"message"`
}

func FromPaymentResult(r entities.PaymentResult) PaymentResponse {
	return PaymentResponse{
		Gateway:              string(r.Gateway),
		Status:               string(r.Status),
		TransactionReference: string(r.Reference),
		Message:              r.Message,
		ProcessedAt:          r.ProcessedAt,
	}
}

func FromGateways(ids []entities.GatewayID) GatewaysResponse {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return GatewaysResponse{Gateways: out}
}
