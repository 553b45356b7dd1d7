package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveDerive_CountsFailures(t *testing.T) {
	m, err := New(prometheus.NewRegistry())
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}

	m.ObserveDerive("thumbnail", 10*time.Millisecond, nil)
	m.ObserveDerive("thumbnail", 10*time.Millisecond, errors.New("boom"))
	m.ObserveDerive("large", 10*time.Millisecond, errors.New("boom"))

	if got := testutil.ToFloat64(m.deriveFailures.WithLabelValues("thumbnail")); got != 1 {
		t.Errorf("expected 1 thumbnail failure, got %f", got)
	}
	if got := testutil.ToFloat64(m.deriveFailures.WithLabelValues("large")); got != 1 {
		t.Errorf("expected 1 large failure, got %f", got)
	}
	if got := testutil.CollectAndCount(m.deriveDuration); got != 2 {
		t.Errorf("expected 2 histogram series, got %d", got)
	}
}

func TestObserveRequest(t *testing.T) {
	m, err := New(nil)
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}
	m.ObserveRequest("GET", "/api/image/resize", 200, time.Millisecond)
	m.ObserveRequest("GET", "/api/image/resize", 200, time.Millisecond)

	if got := testutil.ToFloat64(m.requestCount.WithLabelValues("GET", "/api/image/resize", "200")); got != 2 {
		t.Errorf("expected count 2, got %f", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveDerive("x", time.Second, errors.New("boom"))
	m.ObserveRequest("GET", "/", 200, time.Second)
	m.IncUpload("raster")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 from nil metrics handler, got %d", w.Code)
	}
}

func TestHandler_ExposesMetrics(t *testing.T) {
	m, err := New(nil)
	if err != nil {
		t.Fatalf("failed to create metrics: %v", err)
	}
	m.IncUpload("vector")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `image_uploads_total{kind="vector"} 1`) {
		t.Errorf("expected upload counter in output")
	}
}

func TestNew_DuplicateRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := New(reg); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := New(reg); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
}
