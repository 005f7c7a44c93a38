package logsink

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"payment_factory/internal/domain/entities"
	"payment_factory/internal/usecase/interfaces"
)

// ConsoleLogSink writes one line per entry:
//
//	2026-10-19T12:00:00Z [PagSeguro] payment approved reference=PAGSEG-1A2B3C4D
type ConsoleLogSink struct {
	mu sync.Mutex
	w  io.Writer
}

var _ interfaces.ILogSink = (*ConsoleLogSink)(nil)

func NewConsoleLogSink(w io.Writer) *ConsoleLogSink {
	if w == nil {
		w = io.Discard
	}
	return &ConsoleLogSink{w: w}
}

func (s *ConsoleLogSink) Record(_ context.Context, entry entities.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintf(s.w, "%s [%s] %s\n", entry.Timestamp.UTC().Format(time.RFC3339), entry.Family, entry.Message)
	return err
}

// MultiLogSink fans an entry out to every sink and joins their errors.
type MultiLogSink []interfaces.ILogSink

var _ interfaces.ILogSink = MultiLogSink(nil)

func (m MultiLogSink) Record(ctx context.Context, entry entities.LogEntry) error {
	var errs []error
	for _, s := range m {
		if s == nil {
			continue
		}
		if err := s.Record(ctx, entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
