package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// metrics holds the server's Prometheus instruments.
type metrics struct {
	pagesTotal     *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderErrors   *prometheus.CounterVec
	liveSessions   prometheus.Gauge
	patchesSent    prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		pagesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "velta",
			Name:      "pages_total",
			Help:      "Pages served, by route pattern and status class",
		}, []string{"route", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "velta",
			Name:      "render_duration_seconds",
			Help:      "Page render duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),

		renderErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "velta",
			Name:      "render_errors_total",
			Help:      "Render failures, by route pattern",
		}, []string{"route"}),

		liveSessions: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: "velta",
			Name:      "live_sessions",
			Help:      "Connected live channel sessions",
		}),

		patchesSent: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "velta",
			Name:      "patches_sent_total",
			Help:      "Signal patch frames sent over the live channel",
		}),
	}
}
