package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics は音声生成サービスのPrometheusメトリクスを保持します。
type Metrics struct {
	GenerationsTotal    prometheus.Counter
	GenerationFailures  *prometheus.CounterVec
	GenerationDuration  prometheus.Histogram
	GenerationsInFlight prometheus.Gauge
	HTTPRequests        *prometheus.CounterVec
}

// NewMetrics は全メトリクスを作成し、指定のレジストリに登録します。
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		GenerationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "azan_generations_total",
			Help: "Total number of successful voice generations",
		}),
		GenerationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "azan_generation_failures_total",
			Help: "Total number of failed voice generations by error kind",
		}, []string{"kind"}),
		GenerationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "azan_generation_duration_seconds",
			Help:    "Duration of voice generation requests in seconds",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10), // 100ms 〜 約51s
		}),
		GenerationsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "azan_generations_in_flight",
			Help: "Current number of in-flight voice generations",
		}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "azan_http_requests_total",
			Help: "Total number of HTTP requests by path and status",
		}, []string{"path", "status"}),
	}
}
