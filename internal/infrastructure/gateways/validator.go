package gateways

import (
	"fmt"
	"io"

	"payment_factory/internal/domain/entities"
	"payment_factory/internal/usecase/interfaces"
)

// CardValidator applies the card rule of its family:
//   - PagSeguro: exactly 16 characters
//   - MercadoPago: 16 characters starting with '5'
//   - Stripe: 16 characters starting with '4'
//
// Empty or malformed input simply fails.
type CardValidator struct {
	family family
	out    io.Writer
}

var _ interfaces.ICardValidator = (*CardValidator)(nil)

func newCardValidator(f family, out io.Writer) *CardValidator {
	return &CardValidator{family: f, out: out}
}

func (v *CardValidator) Gateway() entities.GatewayID {
	return v.family.id
}

func (v *CardValidator) Validate(cardNumber string) bool {
	fmt.Fprintf(v.out, "[%s] validating card %s\n", v.family.name(), maskCard(cardNumber))
	return v.family.accepts(cardNumber)
}
