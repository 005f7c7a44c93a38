package gateways

import (
	"strings"

	"payment_factory/internal/domain/entities"
)

const cardNumberLength = 16

// family holds everything that differs between gateways. Validators,
// processors and loggers are single implementations parameterised by it.
type family struct {
	id        entities.GatewayID
	refPrefix string
	// cardPrefix is the required leading digit; zero accepts any.
	cardPrefix byte
}

var families = map[entities.GatewayID]family{
	entities.GatewayPagSeguro: {
		id:        entities.GatewayPagSeguro,
		refPrefix: "PAGSEG-",
	},
	entities.GatewayMercadoPago: {
		id:         entities.GatewayMercadoPago,
		refPrefix:  "MP-",
		cardPrefix: '5',
	},
	entities.GatewayStripe: {
		id:         entities.GatewayStripe,
		refPrefix:  "STRIPE-",
		cardPrefix: '4',
	},
}

func lookupFamily(id entities.GatewayID) (family, bool) {
	f, ok := families[id]
	return f, ok
}

func (f family) name() string {
	return f.id.DisplayName()
}

func (f family) accepts(cardNumber string) bool {
	if len(cardNumber) != cardNumberLength {
		return false
	}
	return f.cardPrefix == 0 || cardNumber[0] == f.cardPrefix
}

// maskCard keeps only the last 4 characters visible.
func maskCard(cardNumber string) string {
	if len(cardNumber) <= 4 {
		return strings.Repeat("*", 4)
	}
	return "****" + cardNumber[len(cardNumber)-4:]
}
