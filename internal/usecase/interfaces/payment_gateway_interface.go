package interfaces

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mock_interfaces

import (
	"context"
	"payment_factory/internal/domain/entities"
)

// ICardValidator checks a card number against the rules of one gateway family.
type ICardValidator interface {
	Gateway() entities.GatewayID
	Validate(cardNumber string) bool
}

// IPaymentProcessor produces a synthetic transaction reference.
// No money moves; the call always succeeds.
type IPaymentProcessor interface {
	Gateway() entities.GatewayID
	Process(amount float64, cardNumber string) entities.TransactionReference
}

// IPaymentLogger records a message tagged with its gateway family.
type IPaymentLogger interface {
	Gateway() entities.GatewayID
	Log(ctx context.Context, message string)
}

// GatewayBundle is the matched validator/processor/logger set of one gateway.
//
// Only IGatewayFactory implementations should assemble bundles; nothing in the
// type system prevents a hand-built bundle from mixing families.
type GatewayBundle struct {
	Validator ICardValidator
	Processor IPaymentProcessor
	Logger    IPaymentLogger
}

// Gateway reports the family shared by every component, or false when the
// bundle is incomplete or mixes families.
func (b GatewayBundle) Gateway() (entities.GatewayID, bool) {
	if b.Validator == nil || b.Processor == nil || b.Logger == nil {
		return "", false
	}
	id := b.Validator.Gateway()
	if b.Processor.Gateway() != id || b.Logger.Gateway() != id {
		return "", false
	}
	return id, true
}

// IGatewayFactory binds a gateway identifier to its component bundle.
type IGatewayFactory interface {
	Create(gateway entities.GatewayID) (GatewayBundle, error)
	Supported() []entities.GatewayID
}
