// ============================================================================
// mw2parquet Metrics - Prometheus instrumentation
// ============================================================================
//
// Package: internal/metrics
// File: metrics.go
//
// Metric categories:
//
//  1. Counters - monotonically increasing:
//     - jobs_started_total, jobs_succeeded_total, jobs_failed_total
//     - pages_processed_total, rows_written_total
//
//  2. Histogram - distribution:
//     - job_duration_seconds: wall time of one (src, dst) job, start to
//       finish or abandonment
//
// HTTP endpoint:
//   internal/cli mounts promhttp.HandlerFor against the same registry
//   passed to NewCollector at /metrics when --metrics-addr is set; this
//   package only builds and updates the metrics, it does not serve them.
// ============================================================================

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds every metric this converter reports.
type Collector struct {
	jobsStarted     prometheus.Counter
	jobsSucceeded   prometheus.Counter
	jobsFailed      prometheus.Counter
	pagesProcessed  prometheus.Counter
	rowsWritten     prometheus.Counter
	jobDuration     prometheus.Histogram
}

// NewCollector creates a Collector and registers its metrics against reg.
// Pass prometheus.NewRegistry() in tests to avoid colliding with the
// default global registry across test runs.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		jobsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mw2parquet_jobs_started_total",
			Help: "Total number of conversion jobs started.",
		}),
		jobsSucceeded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mw2parquet_jobs_succeeded_total",
			Help: "Total number of conversion jobs that completed without error.",
		}),
		jobsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mw2parquet_jobs_failed_total",
			Help: "Total number of conversion jobs abandoned due to an error.",
		}),
		pagesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mw2parquet_pages_processed_total",
			Help: "Total number of <page> elements extracted across all jobs.",
		}),
		rowsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mw2parquet_rows_written_total",
			Help: "Total number of Parquet rows written across all jobs.",
		}),
		jobDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mw2parquet_job_duration_seconds",
			Help:    "Wall-clock duration of one conversion job.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.jobsStarted,
		c.jobsSucceeded,
		c.jobsFailed,
		c.pagesProcessed,
		c.rowsWritten,
		c.jobDuration,
	)
	return c
}

// RecordJobStart increments the started counter.
func (c *Collector) RecordJobStart() {
	c.jobsStarted.Inc()
}

// RecordJobDone increments the succeeded or failed counter depending on
// err, observes durationSeconds, and adds rows to the running total.
func (c *Collector) RecordJobDone(err error, durationSeconds float64, rows int) {
	if err != nil {
		c.jobsFailed.Inc()
	} else {
		c.jobsSucceeded.Inc()
	}
	c.jobDuration.Observe(durationSeconds)
	c.rowsWritten.Add(float64(rows))
}

// RecordPage increments the pages-processed counter by one.
func (c *Collector) RecordPage() {
	c.pagesProcessed.Inc()
}
