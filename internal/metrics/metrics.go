// Package metrics records calculator activity as Prometheus metrics. The CLI
// has no server, so metrics are flushed to a node_exporter textfile.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tokencalc"

// Collector owns a private registry so tests and multiple instances never
// collide on the default one.
type Collector struct {
	registry *prometheus.Registry

	calculations       *prometheus.CounterVec
	validationFailures prometheus.Counter
	historyEntries     prometheus.Gauge
	calculationCost    *prometheus.HistogramVec
	exchangeFailures   prometheus.Counter
}

func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Successful calculations by model preset",
		}, []string{"model"}),
		validationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Calculations rejected by parameter validation",
		}),
		historyEntries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "history_entries",
			Help:      "Entries currently held in the calculation history",
		}),
		calculationCost: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "calculation_cost_usd",
			Help:      "Total cost in USD of each calculation",
			// $0.0001 to $10k: single prompts up to million-operation batches.
			Buckets: prometheus.ExponentialBuckets(0.0001, 10, 9),
		}, []string{"model"}),
		exchangeFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exchange_refresh_failures_total",
			Help:      "Failed exchange rate fetches",
		}),
	}
	c.registry.MustRegister(
		c.calculations,
		c.validationFailures,
		c.historyEntries,
		c.calculationCost,
		c.exchangeFailures,
	)
	return c
}

func modelLabel(model string) string {
	if model == "" {
		return "custom"
	}
	return model
}

// RecordCalculation counts one successful calculation and its total cost.
func (c *Collector) RecordCalculation(model string, totalCost float64) {
	m := modelLabel(model)
	c.calculations.WithLabelValues(m).Inc()
	c.calculationCost.WithLabelValues(m).Observe(totalCost)
}

func (c *Collector) RecordValidationFailure() {
	c.validationFailures.Inc()
}

func (c *Collector) SetHistorySize(n int) {
	c.historyEntries.Set(float64(n))
}

func (c *Collector) RecordExchangeFailure() {
	c.exchangeFailures.Inc()
}

// Registry exposes the underlying registry, e.g. for promhttp or tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes all metrics in the text exposition format to path,
// atomically.
func (c *Collector) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create metrics dir: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
