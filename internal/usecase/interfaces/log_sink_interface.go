package interfaces

//go:generate mockgen -source=log_sink_interface.go -destination=mocks/log_sink_interface_mock.go -package=mock_interfaces

import (
	"context"
	"payment_factory/internal/domain/entities"
)

// ILogSink is the output destination of gateway loggers (console, DynamoDB, test capture).

type ILogSink interface {
	Record(ctx context.Context, entry entities.LogEntry) error
}
