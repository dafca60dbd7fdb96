package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"qa-platform/internal/platform/logger"
)

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	router := NewRouter(newTestBank(), RouterConfig{})

	rec := serve(t, router, "/health")
	if rec.Header().Get(headerRequestID) == "" {
		t.Fatalf("expected generated request id header")
	}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(headerRequestID, "req-123")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if got := rec.Header().Get(headerRequestID); got != "req-123" {
		t.Fatalf("request id = %q, want req-123", got)
	}
}

func TestRequestLoggerLevelsByStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}
	router := NewRouter(newTestBank(), RouterConfig{Log: log})

	serve(t, router, "/api/questions/1")
	serve(t, router, "/api/questions/404")

	entries := logs.FilterMessage("HTTP request").All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 request log entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.InfoLevel || entries[1].Level != zapcore.WarnLevel {
		t.Fatalf("unexpected levels: %v, %v", entries[0].Level, entries[1].Level)
	}

	fields := entries[1].ContextMap()
	if fields["path"] != "/api/questions/:id" {
		t.Fatalf("path field = %v, want route pattern", fields["path"])
	}
	if fields["request_id"] == "" || fields["request_id"] == nil {
		t.Fatalf("expected request_id field, got %v", fields)
	}
}

func TestCORSAllowsConfiguredOrigins(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{name: "wildcard", origins: []string{"*"}, origin: "http://anything.test", want: "*"},
		{name: "listed origin", origins: []string{"http://localhost:3000"}, origin: "http://localhost:3000", want: "http://localhost:3000"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORS(tc.origins))
			r.GET("/api/questions", func(c *gin.Context) {
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/questions", nil)
			req.Header.Set("Origin", tc.origin)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tc.want {
				t.Fatalf("allow-origin = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	router := NewRouter(newTestBank(), RouterConfig{})

	rec := serve(t, router, "/api/stats")
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("X-Content-Type-Options = %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("X-Frame-Options = %q", got)
	}
}
