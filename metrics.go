package bloomgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordAdd is called after each add operation.
	RecordAdd(duration time.Duration)

	// RecordExists is called after each membership query.
	// hit is the query result, including false positives.
	RecordExists(duration time.Duration, hit bool)

	// RecordSubstringScan is called after each substring scan.
	// windows is the number of windows examined before the scan
	// short-circuited or completed.
	RecordSubstringScan(windows int, duration time.Duration, hit bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAdd(time.Duration)                      {}
func (NoopMetricsCollector) RecordExists(time.Duration, bool)             {}
func (NoopMetricsCollector) RecordSubstringScan(int, time.Duration, bool) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AddCount       atomic.Int64
	AddTotalNanos  atomic.Int64
	ExistsCount    atomic.Int64
	ExistsHits     atomic.Int64
	ScanCount      atomic.Int64
	ScanHits       atomic.Int64
	ScanWindows    atomic.Int64
	ScanTotalNanos atomic.Int64
}

// RecordAdd implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAdd(duration time.Duration) {
	b.AddCount.Add(1)
	b.AddTotalNanos.Add(duration.Nanoseconds())
}

// RecordExists implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExists(duration time.Duration, hit bool) {
	b.ExistsCount.Add(1)
	if hit {
		b.ExistsHits.Add(1)
	}
}

// RecordSubstringScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSubstringScan(windows int, duration time.Duration, hit bool) {
	b.ScanCount.Add(1)
	b.ScanWindows.Add(int64(windows))
	b.ScanTotalNanos.Add(duration.Nanoseconds())
	if hit {
		b.ScanHits.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AddCount:     b.AddCount.Load(),
		AddAvgNanos:  avg(b.AddTotalNanos.Load(), b.AddCount.Load()),
		ExistsCount:  b.ExistsCount.Load(),
		ExistsHits:   b.ExistsHits.Load(),
		ScanCount:    b.ScanCount.Load(),
		ScanHits:     b.ScanHits.Load(),
		ScanWindows:  b.ScanWindows.Load(),
		ScanAvgNanos: avg(b.ScanTotalNanos.Load(), b.ScanCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AddCount     int64
	AddAvgNanos  int64
	ExistsCount  int64
	ExistsHits   int64
	ScanCount    int64
	ScanHits     int64
	ScanWindows  int64
	ScanAvgNanos int64
}
