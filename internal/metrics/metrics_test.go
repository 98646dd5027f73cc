package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerExposesOperations(t *testing.T) {
	m := New()
	m.ObserveOperation("teams:balance", "applied", 2*time.Millisecond)
	m.ObserveOperation("teams:undo", "noop", time.Millisecond)
	m.VersionConflict()
	m.SetSessions(4)
	m.Purged(2)
	m.ObserveRosterSize(12)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	out := string(body)

	assert.Contains(t, out, `teammaker_session_operations_total{op="teams:balance",result="applied"} 1`)
	assert.Contains(t, out, `teammaker_session_operations_total{op="teams:undo",result="noop"} 1`)
	assert.Contains(t, out, "teammaker_session_version_conflicts_total 1")
	assert.Contains(t, out, "teammaker_session_active 4")
	assert.Contains(t, out, "teammaker_session_purged_total 2")
	assert.Contains(t, out, "teammaker_balancer_roster_size_count 1")
	assert.Contains(t, out, "go_goroutines")
}

func TestInstancesAreIndependent(t *testing.T) {
	a := New()
	b := New()
	a.SetSessions(1)
	b.SetSessions(7)

	families, err := b.Registry().Gather()
	require.NoError(t, err)

	for _, f := range families {
		if f.GetName() == "teammaker_session_active" {
			assert.Equal(t, 7.0, f.GetMetric()[0].GetGauge().GetValue())
			return
		}
	}
	t.Fatal("active sessions gauge not gathered")
}
