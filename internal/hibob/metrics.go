package hibob

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const outcomeUnavailable = "unavailable"

// Metrics tracks outbound HiBob calls. A nil *Metrics records nothing.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "hibob_api_requests_total",
		Help: "HiBob API calls by method and response status",
	}, []string{"method", "status"})

	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "hibob_api_request_duration_seconds",
		Help:    "Round trip time of HiBob API calls",
		Buckets: prometheus.DefBuckets,
	}, []string{"method"})

	m := &Metrics{}
	if err := reg.Register(requests); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, fmt.Errorf("register request counter: %w", err)
		}
		requests = are.ExistingCollector.(*prometheus.CounterVec)
	}
	m.requests = requests

	if err := reg.Register(duration); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, fmt.Errorf("register duration histogram: %w", err)
		}
		duration = are.ExistingCollector.(*prometheus.HistogramVec)
	}
	m.duration = duration

	return m, nil
}

func (m *Metrics) observe(method Method, status string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(method.String(), status).Inc()
	m.duration.WithLabelValues(method.String()).Observe(elapsed.Seconds())
}
