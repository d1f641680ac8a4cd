// Package metrics declares the Prometheus collectors of the backend. All of
// them register with the default registry, which GET /metrics exposes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	// LoginAttempts counts completed login callbacks.
	// Labels:
	//   - outcome: "success", "failure"
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blockplot_login_attempts_total",
			Help: "Total number of login callbacks processed",
		},
		[]string{"outcome"},
	)

	// LogoutTotal counts logouts, including those without a live session.
	LogoutTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blockplot_logout_total",
			Help: "Total number of logouts",
		},
	)

	// TokenExchangeDuration measures the authorization code exchange.
	TokenExchangeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "blockplot_token_exchange_duration_seconds",
			Help:    "Duration of authorization code exchanges",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
	)

	// ActiveSessions is the number of entries in the session store,
	// expired-but-not-removed ones included.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "blockplot_sessions_active",
			Help: "Number of sessions held in memory",
		},
	)

	// SyncRuns counts skillblock sync requests.
	// Labels:
	//   - outcome: "success", "failure"
	SyncRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blockplot_sync_runs_total",
			Help: "Total number of skillblock sync runs",
		},
		[]string{"outcome"},
	)

	// SyncDuration measures a whole sync run across all skillblocks of a user.
	SyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "blockplot_sync_duration_seconds",
			Help:    "Duration of skillblock sync runs",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// AnalyticsFetches counts calls to the analytics source.
	// Labels:
	//   - mode: "category", "overview"
	//   - outcome: "success", "failure"
	AnalyticsFetches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blockplot_analytics_fetches_total",
			Help: "Total number of analytics source fetches",
		},
		[]string{"mode", "outcome"},
	)

	// DailyRecordsWritten counts day records inserted or updated by syncs.
	// Labels:
	//   - op: "insert", "update"
	DailyRecordsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "blockplot_daily_records_written_total",
			Help: "Total number of daily time records written by syncs",
		},
		[]string{"op"},
	)

	// SkillblocksCreated counts new skillblocks.
	SkillblocksCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "blockplot_skillblocks_created_total",
			Help: "Total number of skillblocks created",
		},
	)
)

// Outcome maps an error to an outcome label value.
func Outcome(err error) string {
	if err != nil {
		return OutcomeFailure
	}
	return OutcomeSuccess
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
