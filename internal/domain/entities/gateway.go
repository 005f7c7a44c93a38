package entities

import (
	"errors"
	"strings"
)

var ErrUnknownGateway = errors.New("unknown payment gateway")

// GatewayID identifies a simulated payment provider.
//
// The value selects a component family in the gateway factory:
//   - pagseguro   => PagSeguro validator/processor/logger
//   - mercadopago => MercadoPago validator/processor/logger
//   - stripe      => Stripe validator/processor/logger

type GatewayID string

const (
	GatewayPagSeguro   GatewayID = "pagseguro"
	GatewayMercadoPago GatewayID = "mercadopago"
	GatewayStripe      GatewayID = "stripe"
)

// SupportedGateways returns every known gateway in demo order.
func SupportedGateways() []GatewayID {
	return []GatewayID{GatewayPagSeguro, GatewayMercadoPago, GatewayStripe}
}

// ParseGatewayID resolves a caller supplied identifier ("PagSeguro", " stripe ").
func ParseGatewayID(raw string) (GatewayID, error) {
	id := GatewayID(strings.ToLower(strings.TrimSpace(raw)))
	if !id.IsValid() {
		return "", ErrUnknownGateway
	}
	return id, nil
}

func (g GatewayID) IsValid() bool {
	switch g {
	case GatewayPagSeguro, GatewayMercadoPago, GatewayStripe:
		return true
	}
	return false
}

// DisplayName returns the provider name used in notices and log lines.
func (g GatewayID) DisplayName() string {
	switch g {
	case GatewayPagSeguro:
		return "PagSeguro"
	case GatewayMercadoPago:
		return "MercadoPago"
	case GatewayStripe:
		return "Stripe"
	}
	return string(g)
}

func (g GatewayID) String() string {
	return string(g)
}
