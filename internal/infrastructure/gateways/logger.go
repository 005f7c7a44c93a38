package gateways

import (
	"context"
	"log"
	"time"

	"payment_factory/internal/domain/entities"
	"payment_factory/internal/usecase/interfaces"
)

// PaymentLogger stamps messages with the current time and its family name
// and hands them to the configured sink. Sink failures are only reported
// through the application log; callers never see them.
type PaymentLogger struct {
	family family
	sink   interfaces.ILogSink
	now    func() time.Time
}

var _ interfaces.IPaymentLogger = (*PaymentLogger)(nil)

func newPaymentLogger(f family, sink interfaces.ILogSink, now func() time.Time) *PaymentLogger {
	return &PaymentLogger{family: f, sink: sink, now: now}
}

func (l *PaymentLogger) Gateway() entities.GatewayID {
	return l.family.id
}

func (l *PaymentLogger) Log(ctx context.Context, message string) {
	entry := entities.LogEntry{
		Gateway:   l.family.id,
		Family:    l.family.name(),
		Message:   message,
		Timestamp: l.now().UTC(),
	}
	if err := l.sink.Record(ctx, entry); err != nil {
		log.Printf("[payment][logger] sink record failed gateway=%s err=%v", l.family.id, err)
	}
}
