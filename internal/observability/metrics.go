package observability

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type moduleMetrics struct {
	queueSize    *prometheus.GaugeVec
	enqueueTotal *prometheus.CounterVec
	dequeueTotal *prometheus.CounterVec
	commandWait  *prometheus.HistogramVec

	dispatchTotal    *prometheus.CounterVec
	dispatchDuration *prometheus.HistogramVec
}

var (
	metricsOnce sync.Once
	metricsInst *moduleMetrics
)

func getMetrics() *moduleMetrics {
	metricsOnce.Do(func() {
		m := &moduleMetrics{
			queueSize: prometheus.NewGaugeVec(
				prometheus.GaugeOpts{
					Name: "command_queue_size",
					Help: "Current resident command count by priority class.",
				},
				[]string{"class"},
			),
			enqueueTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "command_enqueue_total",
					Help: "Total enqueue operations by priority class.",
				},
				[]string{"class"},
			),
			dequeueTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "command_dequeue_total",
					Help: "Total dequeue operations by priority class.",
				},
				[]string{"class"},
			),
			commandWait: prometheus.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "command_wait_duration_seconds",
					Help:    "Time commands spend resident before release, by priority class.",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"class"},
			),
			dispatchTotal: prometheus.NewCounterVec(
				prometheus.CounterOpts{
					Name: "command_dispatch_total",
					Help: "Total dispatched commands by kind and status.",
				},
				[]string{"kind", "status"},
			),
			dispatchDuration: prometheus.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "command_dispatch_duration_seconds",
					Help:    "Command handler execution duration in seconds by kind.",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"kind"},
			),
		}

		prometheus.MustRegister(
			m.queueSize,
			m.enqueueTotal,
			m.dequeueTotal,
			m.commandWait,
			m.dispatchTotal,
			m.dispatchDuration,
		)

		metricsInst = m
	})

	return metricsInst
}

// EnsureRegistered initializes and registers metrics the first time it is called.
func EnsureRegistered() {
	_ = getMetrics()
}

func MetricsHandler() http.Handler {
	EnsureRegistered()
	return promhttp.Handler()
}

func RecordEnqueue(class string, classSize int) {
	m := getMetrics()
	m.enqueueTotal.WithLabelValues(class).Inc()
	m.queueSize.WithLabelValues(class).Set(float64(classSize))
}

func RecordDequeue(class string, wait time.Duration, classSize int) {
	m := getMetrics()
	m.dequeueTotal.WithLabelValues(class).Inc()
	m.commandWait.WithLabelValues(class).Observe(wait.Seconds())
	m.queueSize.WithLabelValues(class).Set(float64(classSize))
}

func RecordDispatch(kind string, duration time.Duration, success bool) {
	m := getMetrics()
	status := "error"
	if success {
		status = "success"
	}
	m.dispatchTotal.WithLabelValues(kind, status).Inc()
	if duration > 0 {
		m.dispatchDuration.WithLabelValues(kind).Observe(duration.Seconds())
	}
}
