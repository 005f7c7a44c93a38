package request

import (
	"testing"

	"payment_factory/internal/domain/entities"
)

func TestPaymentRequest_ToEntity(t *testing.T) {
	r := PaymentRequest{Amount: 150, CardNumber: "1234567890123456"}
	want := entities.PaymentRequest{Amount: 150, CardNumber: "1234567890123456"}
	if got := r.ToEntity(); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}

	if got := (PaymentRequest{}).ToEntity(); got != (entities.PaymentRequest{}) {
		t.Fatalf("expected zero request, got %+v", got)
	}
}

func TestPaymentRequest_ToEntityKeepsCardUnchanged(t *testing.T) {
	for _, card := range []string{"1234567890123456 ", " 123456789012345", "\t523456789012345", ""} {
		got := PaymentRequest{Amount: 1, CardNumber: card}.ToEntity()
		if got.CardNumber != card {
			t.Fatalf("expected card %q, got %q", card, got.CardNumber)
		}
	}
}
