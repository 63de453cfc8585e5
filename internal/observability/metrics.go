package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"tires/internal"
)

// Metrics holds run counters on a private registry. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	RunsTotal       *prometheus.CounterVec
	RecordsTotal    prometheus.Counter
	FieldsExtracted *prometheus.CounterVec
	LastRunSeconds  prometheus.Gauge
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tires_runs_total",
				Help: "Normalization runs by input source and outcome",
			},
			[]string{"source", "status"},
		),
		RecordsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tires_records_total",
				Help: "Tire records built",
			},
		),
		FieldsExtracted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tires_fields_extracted_total",
				Help: "Records with a non-empty extracted field",
			},
			[]string{"field"},
		),
		LastRunSeconds: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tires_last_run_duration_seconds",
				Help: "Wall time of the last run",
			},
		),
	}
	m.registry.MustRegister(m.RunsTotal, m.RecordsTotal, m.FieldsExtracted, m.LastRunSeconds)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

func (m *Metrics) ObserveRun(s internal.RunSummary) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(string(s.InputSource), "ok").Inc()
	m.RecordsTotal.Add(float64(s.Records))
	m.FieldsExtracted.WithLabelValues("size").Add(float64(s.WithSize))
	m.FieldsExtracted.WithLabelValues("model").Add(float64(s.WithModel))
	m.FieldsExtracted.WithLabelValues("load_index").Add(float64(s.WithLoad))
	m.FieldsExtracted.WithLabelValues("studdable").Add(float64(s.Studdable))
	m.LastRunSeconds.Set(float64(s.DurationMs) / 1000)
}

func (m *Metrics) ObserveFailure(source internal.InputSource) {
	if m == nil {
		return
	}
	m.RunsTotal.WithLabelValues(string(source), "error").Inc()
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.registry)
}
