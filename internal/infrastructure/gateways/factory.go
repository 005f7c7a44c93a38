package gateways

import (
	"fmt"
	"io"
	"log"
	"time"

	"payment_factory/internal/domain/entities"
	"payment_factory/internal/infrastructure/logsink"
	"payment_factory/internal/usecase/interfaces"
)

// GatewayFactory builds validator/processor/logger bundles. It is the only
// place where components are assembled, so a bundle can never mix families.
//
// A fresh bundle is built on every call; the factory itself holds only
// the injected outputs and is safe for concurrent use.
type GatewayFactory struct {
	out  io.Writer
	sink interfaces.ILogSink
	refs interfaces.IReferenceGenerator
	now  func() time.Time
}

var _ interfaces.IGatewayFactory = (*GatewayFactory)(nil)

// NewGatewayFactory wires the factory outputs. Nil arguments fall back to
// io.Discard for notices, a console sink on out, and UUID references.
func NewGatewayFactory(out io.Writer, sink interfaces.ILogSink, refs interfaces.IReferenceGenerator) *GatewayFactory {
	if out == nil {
		out = io.Discard
	}
	if sink == nil {
		sink = logsink.NewConsoleLogSink(out)
	}
	if refs == nil {
		refs = UUIDReferenceGenerator{}
	}
	return &GatewayFactory{out: out, sink: sink, refs: refs, now: time.Now}
}

// WithClock replaces the time source used by loggers.
func (f *GatewayFactory) WithClock(now func() time.Time) *GatewayFactory {
	if now != nil {
		f.now = now
	}
	return f
}

func (f *GatewayFactory) Create(gateway entities.GatewayID) (interfaces.GatewayBundle, error) {
	fam, ok := lookupFamily(gateway)
	if !ok {
		log.Printf("[payment][factory] unknown gateway=%q", gateway)
		return interfaces.GatewayBundle{}, fmt.Errorf("%w: %q", entities.ErrUnknownGateway, gateway)
	}

	return interfaces.GatewayBundle{
		Validator: newCardValidator(fam, f.out),
		Processor: newPaymentProcessor(fam, f.refs, f.out),
		Logger:    newPaymentLogger(fam, f.sink, f.now),
	}, nil
}

func (f *GatewayFactory) Supported() []entities.GatewayID {
	return entities.SupportedGateways()
}
