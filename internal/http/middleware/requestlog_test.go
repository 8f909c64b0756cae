package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/tanaoroshi/masterdata-backend/internal/platform/ctxutil"
	"github.com/tanaoroshi/masterdata-backend/internal/platform/logger"
)

func newObservedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.DebugLevel)
	return &logger.Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestAttachRequestContextAssignsIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachRequestContext())

	var seen *ctxutil.TraceData
	r.GET("/ping", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if seen == nil || seen.RequestID == "" || seen.TraceID == "" {
		t.Fatalf("trace data = %+v", seen)
	}
	if got := w.Header().Get(RequestIDHeader); got != seen.RequestID {
		t.Fatalf("echoed request id %q, context has %q", got, seen.RequestID)
	}
}

func TestAttachRequestContextHonorsUpstreamIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AttachRequestContext())

	var seen *ctxutil.TraceData
	r.GET("/ping", func(c *gin.Context) {
		seen = ctxutil.GetTraceData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	req.Header.Set(TraceIDHeader, "trace-7")
	r.ServeHTTP(httptest.NewRecorder(), req)

	if seen == nil || seen.RequestID != "req-42" || seen.TraceID != "trace-7" {
		t.Fatalf("trace data = %+v", seen)
	}
}

func TestRequestLoggerCarriesCorrelationIDs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, logs := newObservedLogger()

	r := gin.New()
	r.Use(AttachRequestContext())
	r.Use(RequestLogger(log))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	r.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["request_id"] != "req-42" {
		t.Fatalf("request_id = %v", fields["request_id"])
	}
	if fields["method"] != "GET" || fields["path"] != "/ping" {
		t.Fatalf("method/path = %v/%v", fields["method"], fields["path"])
	}
	if fields["status"] != int64(http.StatusOK) {
		t.Fatalf("status = %v", fields["status"])
	}
}

func TestRequestLoggerSeverityFollowsStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log, logs := newObservedLogger()

	r := gin.New()
	r.Use(AttachRequestContext())
	r.Use(RequestLogger(log))
	r.GET("/missing-thing", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	r.GET("/broken", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing-thing", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/broken", nil))

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("log entries = %d, want 2", len(entries))
	}
	if entries[0].Level != zap.WarnLevel {
		t.Fatalf("4xx level = %v, want warn", entries[0].Level)
	}
	if entries[1].Level != zap.ErrorLevel {
		t.Fatalf("5xx level = %v, want error", entries[1].Level)
	}
}
