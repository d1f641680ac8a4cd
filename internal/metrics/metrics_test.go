package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, Outcome(nil))
	assert.Equal(t, OutcomeFailure, Outcome(errors.New("boom")))
}

func TestSyncRunsCounter(t *testing.T) {
	before := testutil.ToFloat64(SyncRuns.WithLabelValues(OutcomeFailure))
	SyncRuns.WithLabelValues(OutcomeFailure).Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(SyncRuns.WithLabelValues(OutcomeFailure)))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	SkillblocksCreated.Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "blockplot_skillblocks_created_total")
	assert.Contains(t, rec.Body.String(), "blockplot_sessions_active")
}
