package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"payment_factory/internal/domain/entities"
	"payment_factory/internal/infrastructure/gateways"
	"payment_factory/internal/infrastructure/logsink"
	"payment_factory/internal/usecase"
	"payment_factory/internal/usecase/interfaces"
)

type demoPayment struct {
	gateway entities.GatewayID
	request entities.PaymentRequest
}

var demoPayments = []demoPayment{
	{gateway: entities.GatewayPagSeguro, request: entities.PaymentRequest{Amount: 150.00, CardNumber: "1234567890123456"}},
	{gateway: entities.GatewayMercadoPago, request: entities.PaymentRequest{Amount: 150.00, CardNumber: "5234567890123456"}},
	{gateway: entities.GatewayStripe, request: entities.PaymentRequest{Amount: 150.00, CardNumber: "9234567890123456"}},
}

func main() {
	log.SetOutput(io.Discard)
	runDemo(context.Background(), os.Stdout, gateways.UUIDReferenceGenerator{})
}

// runDemo never fails: rejections and errors are printed and the next
// payment runs.
func runDemo(ctx context.Context, out io.Writer, refs interfaces.IReferenceGenerator) {
	factory := gateways.NewGatewayFactory(out, logsink.NewConsoleLogSink(out), refs)
	uc := usecase.NewPaymentUseCase(factory)

	for _, p := range demoPayments {
		fmt.Fprintf(out, "== %s ==\n", p.gateway.DisplayName())
		result, err := uc.Pay(ctx, string(p.gateway), p.request)
		switch {
		case err != nil:
			fmt.Fprintf(out, "%s: payment failed: %v\n", p.gateway.DisplayName(), err)
		case result.Approved():
			fmt.Fprintf(out, "%s: approved reference=%s\n", p.gateway.DisplayName(), result.Reference)
		default:
			fmt.Fprintf(out, "%s: payment rejected (%s)\n", p.gateway.DisplayName(), result.Message)
		}
	}
}
