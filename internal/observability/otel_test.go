package observability

import (
	"context"
	"testing"

	"qa-platform/internal/config"
	"qa-platform/internal/platform/logger"
)

func TestInitTracingDisabledIsNoop(t *testing.T) {
	shutdown := InitTracing(context.Background(), logger.Nop(), config.TracingConfig{Enabled: false})
	if shutdown == nil {
		t.Fatalf("expected shutdown func")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown returned error: %v", err)
	}
}

func TestInitTracingStdoutExporter(t *testing.T) {
	shutdown := InitTracing(context.Background(), logger.Nop(), config.TracingConfig{
		Enabled:     true,
		ServiceName: "qa-service-test",
		SampleRatio: 0,
	})
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown returned error: %v", err)
	}
}
