package server

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"go.opentelemetry.io/otel/metric/noop"

	"github.com/mailgate/mailgate/internal/gmail"
	"github.com/mailgate/mailgate/internal/instrumentation"
)

// newTestContext creates a server context backed by an empty cache directory
// so no on-disk tokens leak into the test.
func newTestContext(t *testing.T) *ServerContext {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	return sc
}

func TestNewServerContext(t *testing.T) {
	sc := newTestContext(t)
	defer func() { _ = sc.Shutdown() }()

	if sc.Context() == nil {
		t.Fatal("Context() returned nil")
	}

	select {
	case <-sc.Context().Done():
		t.Error("lifecycle context should not be done before shutdown")
	default:
	}

	if sc.IsShutdown() {
		t.Error("IsShutdown() = true for a fresh context")
	}

	// No token stored, so no client can be produced for any account
	if client := sc.GmailClientForAccount("nosuch"); client != nil {
		t.Error("GmailClientForAccount() should return nil without a stored token")
	}
	if client := sc.GmailClient(); client != nil {
		t.Error("GmailClient() should return nil without a stored token")
	}
}

func TestServerContext_ClientCache(t *testing.T) {
	sc := newTestContext(t)
	defer func() { _ = sc.Shutdown() }()

	work := &gmail.Client{}
	sc.SetGmailClientForAccount("work", work)
	if got := sc.GmailClientForAccount("work"); got != work {
		t.Errorf("GmailClientForAccount(work) = %p, want %p", got, work)
	}

	def := &gmail.Client{}
	sc.SetGmailClient(def)
	if got := sc.GmailClient(); got != def {
		t.Errorf("GmailClient() = %p, want %p", got, def)
	}

	// Accounts are independent
	if got := sc.GmailClientForAccount("work"); got != work {
		t.Error("setting the default client must not touch other accounts")
	}
}

func TestServerContext_Metrics(t *testing.T) {
	sc := newTestContext(t)
	defer func() { _ = sc.Shutdown() }()

	if sc.Metrics() != nil {
		t.Error("Metrics() should be nil before SetMetrics")
	}

	meter := noop.NewMeterProvider().Meter("test")
	metrics, err := instrumentation.NewMetrics(meter, false)
	if err != nil {
		t.Fatalf("NewMetrics() error = %v", err)
	}

	sc.SetMetrics(metrics)
	if got := sc.Metrics(); got != metrics {
		t.Errorf("Metrics() = %p, want %p", got, metrics)
	}
}

func TestServerContext_AuditLogger(t *testing.T) {
	sc := newTestContext(t)
	defer func() { _ = sc.Shutdown() }()

	if sc.AuditLogger() != nil {
		t.Error("AuditLogger() should be nil before SetAuditLogger")
	}

	logger := instrumentation.NewAuditLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	sc.SetAuditLogger(logger)
	if got := sc.AuditLogger(); got != logger {
		t.Errorf("AuditLogger() = %p, want %p", got, logger)
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	sc := newTestContext(t)

	if err := sc.Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	if !sc.IsShutdown() {
		t.Error("IsShutdown() = false after Shutdown")
	}

	select {
	case <-sc.Context().Done():
	default:
		t.Error("lifecycle context should be done after shutdown")
	}

	// Shutdown is idempotent
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}
}
