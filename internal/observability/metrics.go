// Package observability wires the ledger's metrics hooks to Prometheus.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusCollector implements ledger.MetricsCollector.
type PrometheusCollector struct {
	transfers *prometheus.CounterVec
	volume    prometheus.Counter
	fees      prometheus.Counter
	rejected  *prometheus.CounterVec
	cacheHit  *prometheus.CounterVec
	cacheMiss *prometheus.CounterVec
}

// NewPrometheusCollector registers the hook metrics on the given
// registerer (pass prometheus.DefaultRegisterer in main).
func NewPrometheusCollector(reg prometheus.Registerer) *PrometheusCollector {
	factory := promauto.With(reg)
	return &PrometheusCollector{
		transfers: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "versahook_transfers_total",
			Help: "Successful simulated transfers by loyalty tier.",
		}, []string{"loyalty_tier"}),
		volume: factory.NewCounter(prometheus.CounterOpts{
			Name: "versahook_transfer_volume_units_total",
			Help: "Total transferred volume in smallest units.",
		}),
		fees: factory.NewCounter(prometheus.CounterOpts{
			Name: "versahook_fees_collected_units_total",
			Help: "Total final fees in smallest units.",
		}),
		rejected: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "versahook_transfers_rejected_total",
			Help: "Rejected simulations by reason.",
		}, []string{"reason"}),
		cacheHit: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "versahook_cache_hits_total",
			Help: "Record cache hits by operation.",
		}, []string{"op"}),
		cacheMiss: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "versahook_cache_misses_total",
			Help: "Record cache misses by operation.",
		}, []string{"op"}),
	}
}

func (p *PrometheusCollector) RecordTransfer(tier string, amount, fee uint64) {
	p.transfers.WithLabelValues(tier).Inc()
	p.volume.Add(float64(amount))
	p.fees.Add(float64(fee))
}

func (p *PrometheusCollector) RecordRejection(reason string) {
	p.rejected.WithLabelValues(reason).Inc()
}

func (p *PrometheusCollector) RecordCacheHit(op string) {
	p.cacheHit.WithLabelValues(op).Inc()
}

func (p *PrometheusCollector) RecordCacheMiss(op string) {
	p.cacheMiss.WithLabelValues(op).Inc()
}
