package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics()

	m.IncrementAPIRequests()
	m.IncrementAPIRequests()
	m.IncrementAPIErrors()
	m.RecordAPILatency(10)
	m.RecordAPILatency(30)
	m.IncrementLoginAttempts()
	m.IncrementLoginFailures()
	m.IncrementSearchesIssued()
	m.IncrementSearchesSuperseded()

	assert.EqualValues(t, 2, m.GetAPIRequests())
	assert.EqualValues(t, 1, m.GetAPIErrors())
	assert.EqualValues(t, 20.0, m.GetAPIAverageLatency())
	assert.EqualValues(t, 1, m.GetLoginAttempts())
	assert.EqualValues(t, 1, m.GetLoginFailures())
	assert.EqualValues(t, 1, m.GetSearchesIssued())
	assert.EqualValues(t, 1, m.GetSearchesSuperseded())
}

func TestMetrics_AverageLatencyEmpty(t *testing.T) {
	m := NewMetrics()
	assert.EqualValues(t, 0, m.GetAPIAverageLatency())
}

func TestMetrics_SnapshotAndReset(t *testing.T) {
	m := NewMetrics()
	m.IncrementAPIRequests()
	m.IncrementSearchesIssued()

	snapshot := m.GetSnapshot()
	assert.EqualValues(t, 1, snapshot.APIRequests)
	assert.EqualValues(t, 1, snapshot.SearchesIssued)
	assert.NotZero(t, snapshot.Timestamp)

	m.Reset()
	assert.EqualValues(t, 0, m.GetAPIRequests())
	assert.EqualValues(t, 0, m.GetSearchesIssued())
}
