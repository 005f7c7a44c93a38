package gateways

import (
	"fmt"
	"io"
	"strings"

	"payment_factory/internal/domain/entities"
	"payment_factory/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const referenceLength = 8

// PaymentProcessor simulates a charge: it never contacts a provider and
// never checks the amount. The reference is the family prefix followed by
// the generator output.
type PaymentProcessor struct {
	family family
	refs   interfaces.IReferenceGenerator
	out    io.Writer
}

var _ interfaces.IPaymentProcessor = (*PaymentProcessor)(nil)

func newPaymentProcessor(f family, refs interfaces.IReferenceGenerator, out io.Writer) *PaymentProcessor {
	return &PaymentProcessor{family: f, refs: refs, out: out}
}

func (p *PaymentProcessor) Gateway() entities.GatewayID {
	return p.family.id
}

func (p *PaymentProcessor) Process(amount float64, _ string) entities.TransactionReference {
	fmt.Fprintf(p.out, "[%s] processing payment amount=%.2f\n", p.family.name(), amount)
	return entities.TransactionReference(p.family.refPrefix + p.refs.Next())
}

// UUIDReferenceGenerator takes the first 8 hex characters of a fresh random UUID.
type UUIDReferenceGenerator struct{}

var _ interfaces.IReferenceGenerator = UUIDReferenceGenerator{}

func (UUIDReferenceGenerator) Next() string {
	return strings.ToUpper(uuid.NewString()[:referenceLength])
}
