package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	ResultHit  = "hit"
	ResultMiss = "miss"
)

type Metrics struct {
	SchemaLookups *prometheus.CounterVec
	ReasonLookups *prometheus.CounterVec
}

func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the collectors on a caller-supplied registerer.
// Tests use this to avoid colliding on the default registry.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		SchemaLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mockattest_schema_lookups_total",
			Help: "Schema id lookups by result",
		}, []string{"result"}),
		ReasonLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mockattest_reason_lookups_total",
			Help: "Status reason code lookups by result",
		}, []string{"result"}),
	}
}

func (m *Metrics) RecordSchemaLookup(hit bool) {
	m.SchemaLookups.WithLabelValues(result(hit)).Inc()
}

func (m *Metrics) RecordReasonLookup(hit bool) {
	m.ReasonLookups.WithLabelValues(result(hit)).Inc()
}

func result(hit bool) string {
	if hit {
		return ResultHit
	}
	return ResultMiss
}
