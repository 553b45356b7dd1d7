package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 汇总服务暴露的 Prometheus 指标。方法对 nil 接收者安全，未启用指标时可直接传 nil。
type Metrics struct {
	registry        *prometheus.Registry
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	deriveDuration  *prometheus.HistogramVec
	deriveFailures  *prometheus.CounterVec
	uploads         *prometheus.CounterVec
}

// New 在给定 registry 上注册全部指标；reg 为 nil 时新建一个。
func New(reg *prometheus.Registry) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		registry: reg,
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests processed.",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		deriveDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "image_derive_duration_seconds",
				Help:    "Time spent producing one image derivative.",
				Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"tier"},
		),
		deriveFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "image_derive_failures_total",
				Help: "Number of failed derivative generations.",
			},
			[]string{"tier"},
		),
		uploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "image_uploads_total",
				Help: "Accepted uploads by stored kind.",
			},
			[]string{"kind"},
		),
	}

	for _, c := range []prometheus.Collector{
		m.requestCount, m.requestDuration, m.deriveDuration, m.deriveFailures, m.uploads,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ObserveRequest 记录一次 HTTP 请求
func (m *Metrics) ObserveRequest(method, path string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestCount.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.requestDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

// ObserveDerive 记录一次派生耗时，err 非空时同时计入失败数
func (m *Metrics) ObserveDerive(tier string, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	m.deriveDuration.WithLabelValues(tier).Observe(elapsed.Seconds())
	if err != nil {
		m.deriveFailures.WithLabelValues(tier).Inc()
	}
}

// IncUpload 记录一次成功入库的上传（raster / vector）
func (m *Metrics) IncUpload(kind string) {
	if m == nil {
		return
	}
	m.uploads.WithLabelValues(kind).Inc()
}

// Handler 暴露 /metrics
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
