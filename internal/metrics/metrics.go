// Package metrics provides Prometheus instrumentation for the
// settlement engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PassesTotal counts settlement passes, partitioned by result.
	PassesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settlement_passes_total",
		Help: "Total settlement passes executed",
	}, []string{"result"})

	// PassDuration tracks how long a full settlement pass takes.
	PassDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "settlement_pass_duration_seconds",
		Help:    "Settlement pass duration in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// EntriesTotal counts per-entry outcomes within passes.
	EntriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "settlement_entries_total",
		Help: "Revenue entries processed, partitioned by outcome",
	}, []string{"outcome"})

	// DivergenceTotal counts finalize failures after money has moved.
	// Any non-zero value requires manual reconciliation against the
	// gateway's records.
	DivergenceTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlement_divergence_total",
		Help: "Transfers completed at the gateway whose ledger finalize write failed",
	})

	// OverlapSkipsTotal counts scheduler ticks skipped because the
	// previous pass was still running.
	OverlapSkipsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlement_pass_overlap_skips_total",
		Help: "Scheduler ticks skipped due to an in-flight pass",
	})

	// StaleProcessing tracks entries stuck in PROCESSING past the
	// operator-review threshold, as of the last stale scan.
	StaleProcessing = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "settlement_stale_processing",
		Help: "PROCESSING entries older than the review threshold",
	})

	// NotifyFailuresTotal counts best-effort seller notifications that
	// could not be delivered.
	NotifyFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "settlement_notify_failures_total",
		Help: "Seller payout notifications that failed to send",
	})
)

const (
	OutcomeSettled            = "settled"
	OutcomeFailed             = "failed"
	OutcomeSkippedNoFundDest  = "skipped_no_fund_destination"
	OutcomeSkippedClaimed     = "skipped_already_claimed"
	OutcomeSkippedClaimFailed = "skipped_claim_write_failed"
)
