package telemetry

import (
	"context"
	"errors"
	"testing"
)

func TestTracerWithoutSetup(t *testing.T) {
	// Without Setup the global provider is a no-op; spans must still be usable.
	_, span := Tracer("test").Start(context.Background(), "test.span")
	span.End()

	_, noopSpan := NoopTracer().Start(context.Background(), "test.noop")
	if noopSpan.SpanContext().IsValid() {
		t.Error("no-op tracer produced a recording span context")
	}
	noopSpan.End()
}

func TestGetHostname(t *testing.T) {
	if getHostname() == "" {
		t.Error("hostname should never be empty")
	}
}

func TestSetupWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	shutdown, err := Setup(context.Background())
	if !errors.Is(err, ErrNoEndpoint) {
		t.Fatalf("Setup error = %v, want ErrNoEndpoint", err)
	}
	if shutdown != nil {
		t.Error("shutdown should be nil when telemetry is disabled")
	}
}

func TestResourceAttributes(t *testing.T) {
	attrs := map[string]string{}
	for _, kv := range resourceAttributes() {
		attrs[string(kv.Key)] = kv.Value.AsString()
	}
	if attrs["service.name"] != serviceName {
		t.Errorf("service.name = %q, want %q", attrs["service.name"], serviceName)
	}
	if attrs["host.name"] == "" {
		t.Error("host.name should be set")
	}
}
