package logger

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// PrometheusHook counts log statements per level.
type PrometheusHook struct {
	counter *prometheus.CounterVec
}

// Run implements zerolog.Hook run method.
func (h PrometheusHook) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	if level != zerolog.NoLevel && h.counter != nil {
		h.counter.WithLabelValues(level.String()).Inc()
	}
}

// NewPrometheusHook returns a hook counting how often a specific log level was used.
// The counter is registered with reg, or reused if reg already holds it.
func NewPrometheusHook(serviceName string, reg prometheus.Registerer) PrometheusHook {
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "log_statements_total",
			Help:        "Number of log statements, differentiated by log level.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		},
		[]string{"level"},
	)

	if err := reg.Register(counter); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return PrometheusHook{}
		}

		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return PrometheusHook{}
		}

		counter = existing
	}

	return PrometheusHook{counter: counter}
}
