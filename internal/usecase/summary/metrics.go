package summary

import (
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	summariesGeneratedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "summary_engine_summaries_generated_total",
		Help: "Number of meeting summaries generated successfully.",
	})
	summaryErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "summary_engine_errors_total",
		Help: "Number of summary pipeline runs that failed.",
	})
	summaryGenerationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "summary_engine_generation_seconds",
		Help:    "Wall-clock duration of successful summary pipeline runs.",
		Buckets: prometheus.DefBuckets,
	})
)

// Counters tracks pipeline throughput in-process. Prometheus gets the same
// signals; the in-process snapshot backs the stats endpoint and tests.
type Counters struct {
	generated       atomic.Int64
	errors          atomic.Int64
	processingNanos atomic.Int64
}

func (c *Counters) RecordSuccess(d time.Duration) {
	c.generated.Add(1)
	c.processingNanos.Add(d.Nanoseconds())
	summariesGeneratedTotal.Inc()
	summaryGenerationSeconds.Observe(d.Seconds())
}

func (c *Counters) RecordError() {
	c.errors.Add(1)
	summaryErrorsTotal.Inc()
}

// MetricsSnapshot is a point-in-time read of the pipeline counters.
type MetricsSnapshot struct {
	SummariesGenerated    int64   `json:"summaries_generated"`
	ErrorCount            int64   `json:"error_count"`
	TotalProcessingTime   float64 `json:"total_processing_time"`
	AverageProcessingTime float64 `json:"average_processing_time"`
}

func (c *Counters) Snapshot() MetricsSnapshot {
	generated := c.generated.Load()
	total := time.Duration(c.processingNanos.Load()).Seconds()

	snapshot := MetricsSnapshot{
		SummariesGenerated:  generated,
		ErrorCount:          c.errors.Load(),
		TotalProcessingTime: total,
	}
	if generated > 0 {
		snapshot.AverageProcessingTime = total / float64(generated)
	}
	return snapshot
}
