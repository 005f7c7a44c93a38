package gateways

import (
	"bytes"
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"
	"time"

	"payment_factory/internal/domain/entities"
	"payment_factory/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedReferences string

func (f fixedReferences) Next() string { return string(f) }

type captureSink struct {
	entries []entities.LogEntry
	err     error
}

func (c *captureSink) Record(_ context.Context, entry entities.LogEntry) error {
	c.entries = append(c.entries, entry)
	return c.err
}

var fixedNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestFactory(out *bytes.Buffer, sink interfaces.ILogSink) *GatewayFactory {
	return NewGatewayFactory(out, sink, fixedReferences("1A2B3C4D")).WithClock(func() time.Time { return fixedNow })
}

func TestGatewayFactory_BundlesShareFamily(t *testing.T) {
	f := newTestFactory(&bytes.Buffer{}, &captureSink{})

	for _, id := range f.Supported() {
		bundle, err := f.Create(id)
		require.NoError(t, err)

		assert.Equal(t, id, bundle.Validator.Gateway())
		assert.Equal(t, id, bundle.Processor.Gateway())
		assert.Equal(t, id, bundle.Logger.Gateway())

		got, ok := bundle.Gateway()
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}
}

func TestGatewayFactory_UnknownGateway(t *testing.T) {
	f := newTestFactory(&bytes.Buffer{}, &captureSink{})

	bundle, err := f.Create(entities.GatewayID("unknown"))
	assert.ErrorIs(t, err, entities.ErrUnknownGateway)
	assert.Nil(t, bundle.Validator)
	assert.Nil(t, bundle.Processor)
	assert.Nil(t, bundle.Logger)
}

func TestGatewayFactory_Defaults(t *testing.T) {
	f := NewGatewayFactory(nil, nil, nil)

	bundle, err := f.Create(entities.GatewayPagSeguro)
	require.NoError(t, err)

	ref := bundle.Processor.Process(10, "1234567890123456")
	assert.True(t, strings.HasPrefix(string(ref), "PAGSEG-"))
	assert.Len(t, string(ref), len("PAGSEG-")+referenceLength)

	bundle.Logger.Log(context.Background(), "discarded")
}

func TestCardValidator_Rules(t *testing.T) {
	cases := []struct {
		gateway entities.GatewayID
		card    string
		want    bool
	}{
		{entities.GatewayPagSeguro, "1234567890123456", true},
		{entities.GatewayPagSeguro, "abcdefghijklmnop", true},
		{entities.GatewayPagSeguro, "123456789012345", false},
		{entities.GatewayPagSeguro, "12345678901234567", false},
		{entities.GatewayPagSeguro, "", false},
		{entities.GatewayMercadoPago, "5234567890123456", true},
		{entities.GatewayMercadoPago, "4234567890123456", false},
		{entities.GatewayMercadoPago, "523456789012345", false},
		{entities.GatewayMercadoPago, "", false},
		{entities.GatewayStripe, "4234567890123456", true},
		{entities.GatewayStripe, "9234567890123456", false},
		{entities.GatewayStripe, "5234567890123456", false},
		{entities.GatewayStripe, "4", false},
	}

	f := newTestFactory(&bytes.Buffer{}, &captureSink{})
	for _, tc := range cases {
		bundle, err := f.Create(tc.gateway)
		require.NoError(t, err)
		assert.Equal(t, tc.want, bundle.Validator.Validate(tc.card), "gateway=%s card=%q", tc.gateway, tc.card)
	}
}

func TestCardValidator_LengthProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const alphabet = "0123456789abcdefXYZ -"

	f := newTestFactory(&bytes.Buffer{}, &captureSink{})
	bundles := map[entities.GatewayID]interfaces.GatewayBundle{}
	for _, id := range entities.SupportedGateways() {
		b, err := f.Create(id)
		require.NoError(t, err)
		bundles[id] = b
	}

	for i := 0; i < 500; i++ {
		n := rng.Intn(24)
		var sb strings.Builder
		for j := 0; j < n; j++ {
			sb.WriteByte(alphabet[rng.Intn(len(alphabet))])
		}
		s := sb.String()

		assert.Equal(t, len(s) == 16, bundles[entities.GatewayPagSeguro].Validator.Validate(s), "pagseguro %q", s)
		assert.Equal(t, len(s) == 16 && s[0] == '5', bundles[entities.GatewayMercadoPago].Validator.Validate(s), "mercadopago %q", s)
		assert.Equal(t, len(s) == 16 && s[0] == '4', bundles[entities.GatewayStripe].Validator.Validate(s), "stripe %q", s)
	}
}

func TestCardValidator_Notice(t *testing.T) {
	out := &bytes.Buffer{}
	f := newTestFactory(out, &captureSink{})
	bundle, err := f.Create(entities.GatewayMercadoPago)
	require.NoError(t, err)

	bundle.Validator.Validate("5234567890123456")
	assert.Equal(t, "[MercadoPago] validating card ****3456\n", out.String())
	assert.NotContains(t, out.String(), "523456789012")
}

func TestPaymentProcessor_References(t *testing.T) {
	cases := []struct {
		gateway entities.GatewayID
		want    entities.TransactionReference
	}{
		{entities.GatewayPagSeguro, "PAGSEG-1A2B3C4D"},
		{entities.GatewayMercadoPago, "MP-1A2B3C4D"},
		{entities.GatewayStripe, "STRIPE-1A2B3C4D"},
	}

	for _, tc := range cases {
		out := &bytes.Buffer{}
		f := newTestFactory(out, &captureSink{})
		bundle, err := f.Create(tc.gateway)
		require.NoError(t, err)

		assert.Equal(t, tc.want, bundle.Processor.Process(-5, ""))
		assert.Equal(t, "["+tc.gateway.DisplayName()+"] processing payment amount=-5.00\n", out.String())
	}
}

func TestUUIDReferenceGenerator(t *testing.T) {
	gen := UUIDReferenceGenerator{}
	a, b := gen.Next(), gen.Next()

	assert.Len(t, a, referenceLength)
	assert.NotEqual(t, a, b)
	assert.Equal(t, strings.ToUpper(a), a)
	assert.Empty(t, strings.Trim(a, "0123456789ABCDEF"))
}

func TestPaymentLogger_RecordsEntry(t *testing.T) {
	sink := &captureSink{}
	f := newTestFactory(&bytes.Buffer{}, sink)
	bundle, err := f.Create(entities.GatewayStripe)
	require.NoError(t, err)

	bundle.Logger.Log(context.Background(), "payment approved reference=STRIPE-1A2B3C4D")

	require.Len(t, sink.entries, 1)
	assert.Equal(t, entities.LogEntry{
		Gateway:   entities.GatewayStripe,
		Family:    "Stripe",
		Message:   "payment approved reference=STRIPE-1A2B3C4D",
		Timestamp: fixedNow,
	}, sink.entries[0])
}

func TestPaymentLogger_SinkErrorIsSwallowed(t *testing.T) {
	sink := &captureSink{err: errors.New("disk full")}
	f := newTestFactory(&bytes.Buffer{}, sink)
	bundle, err := f.Create(entities.GatewayPagSeguro)
	require.NoError(t, err)

	assert.NotPanics(t, func() { bundle.Logger.Log(context.Background(), "x") })
	assert.Len(t, sink.entries, 1)
}

func TestMaskCard(t *testing.T) {
	assert.Equal(t, "****", maskCard(""))
	assert.Equal(t, "****", maskCard("1234"))
	assert.Equal(t, "****2345", maskCard("12345"))
}
