// Package metrics collects generation statistics in a prometheus registry
// and exports them as a node_exporter textfile.
package metrics

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pgen"

// Collector implements random.Observer and counts generated passwords.
type Collector struct {
	registry *prometheus.Registry

	draws       prometheus.Counter
	rejections  prometheus.Counter
	passwords   prometheus.Counter
	entropyBits prometheus.Gauge
}

// New returns a Collector with its own registry.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		draws: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sampler_draws_total",
			Help:      "Number of indices accepted by the uniform sampler.",
		}),
		rejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sampler_rejections_total",
			Help:      "Number of stream words discarded to avoid modulo bias.",
		}),
		passwords: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "passwords_generated_total",
			Help:      "Number of passwords generated.",
		}),
		entropyBits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "password_entropy_bits",
			Help:      "Estimated entropy of the last generated batch, per password.",
		}),
	}

	c.registry.MustRegister(c.draws, c.rejections, c.passwords, c.entropyBits)

	return c
}

// Registry returns the registry holding the collector's metrics.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Draw implements random.Observer.
func (c *Collector) Draw(rejections int) {
	c.draws.Inc()

	if rejections > 0 {
		c.rejections.Add(float64(rejections))
	}
}

// Batch records a finished batch.
func (c *Collector) Batch(passwords int, entropyBits float64) {
	c.passwords.Add(float64(passwords))
	c.entropyBits.Set(entropyBits)
}

// WriteTextfile writes every metric of the registry to path in the text exposition format.
func (c *Collector) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return errors.Wrap(err, "failed to write metrics textfile")
	}

	return nil
}
