package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"payment_factory/internal/domain/entities"
	"payment_factory/internal/usecase/interfaces"
)

var (
	ErrGatewayFactoryNotConfigured = errors.New("gateway factory not configured")
	ErrMismatchedBundle            = errors.New("gateway bundle components belong to different families")
)

// IPaymentUseCase runs a single payment through one gateway.
//
// Pipeline:
//   - Validate the card with the gateway validator; reject on failure.
//   - Process the payment and capture the transaction reference.
//   - Log one message carrying the reference.

type IPaymentUseCase interface {
	Pay(ctx context.Context, gateway string, req entities.PaymentRequest) (entities.PaymentResult, error)
	Gateways() []entities.GatewayID
}

type PaymentUseCase struct {
	factory interfaces.IGatewayFactory
	now     func() time.Time
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(factory interfaces.IGatewayFactory) *PaymentUseCase {
	return &PaymentUseCase{factory: factory, now: time.Now}
}

func (u *PaymentUseCase) Pay(ctx context.Context, gateway string, req entities.PaymentRequest) (entities.PaymentResult, error) {
	log.Printf("[payment][usecase] pay start raw_gateway=%q amount=%.2f", gateway, req.Amount)
	if u.factory == nil {
		log.Printf("[payment][usecase] gateway factory not configured")
		return entities.PaymentResult{}, ErrGatewayFactoryNotConfigured
	}

	id, err := entities.ParseGatewayID(gateway)
	if err != nil {
		log.Printf("[payment][usecase] unknown gateway raw_gateway=%q", gateway)
		return entities.PaymentResult{}, fmt.Errorf("%w: %q", err, gateway)
	}

	bundle, err := u.factory.Create(id)
	if err != nil {
		log.Printf("[payment][usecase] factory create failed gateway=%s err=%v", id, err)
		return entities.PaymentResult{}, err
	}
	if family, ok := bundle.Gateway(); !ok || family != id {
		log.Printf("[payment][usecase] mismatched bundle gateway=%s", id)
		return entities.PaymentResult{}, ErrMismatchedBundle
	}

	name := id.DisplayName()

	if !validAmount(req.Amount) {
		log.Printf("[payment][usecase] invalid amount gateway=%s amount=%v", id, req.Amount)
		return u.rejected(id, fmt.Sprintf("%s: invalid amount", name)), nil
	}

	if !bundle.Validator.Validate(req.CardNumber) {
		log.Printf("[payment][usecase] card validation failed gateway=%s", id)
		return u.rejected(id, fmt.Sprintf("%s: invalid card", name)), nil
	}

	ref := bundle.Processor.Process(req.Amount, req.CardNumber)
	bundle.Logger.Log(ctx, fmt.Sprintf("payment approved reference=%s amount=%.2f", ref, req.Amount))

	log.Printf("[payment][usecase] pay success gateway=%s reference=%s", id, ref)
	return entities.PaymentResult{
		Gateway:     id,
		Status:      entities.PaymentStatusApproved,
		Reference:   ref,
		Message:     fmt.Sprintf("%s: payment approved", name),
		ProcessedAt: u.now().UTC(),
	}, nil
}

func (u *PaymentUseCase) Gateways() []entities.GatewayID {
	if u.factory == nil {
		return nil
	}
	return u.factory.Supported()
}

func (u *PaymentUseCase) rejected(id entities.GatewayID, msg string) entities.PaymentResult {
	return entities.PaymentResult{
		Gateway:     id,
		Status:      entities.PaymentStatusRejected,
		Message:     msg,
		ProcessedAt: u.now().UTC(),
	}
}

func validAmount(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
