package ledger

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordTransfer(string, uint64, uint64) {}
func (n *NoopMetricsCollector) RecordRejection(string)                {}
func (n *NoopMetricsCollector) RecordCacheHit(string)                 {}
func (n *NoopMetricsCollector) RecordCacheMiss(string)                {}
