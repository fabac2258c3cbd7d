package search

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manajet-client/internal/metrics"
	"manajet-client/internal/model"
	"manajet-client/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New("error")
}

// countingFetcher records every query it is asked to run and answers with
// a single airport echoing the query.
type countingFetcher struct {
	mu    sync.Mutex
	calls []string
	block map[string]chan struct{}
}

func newCountingFetcher() *countingFetcher {
	return &countingFetcher{block: make(map[string]chan struct{})}
}

func (f *countingFetcher) fetch(ctx context.Context, query string) ([]model.Airport, error) {
	f.mu.Lock()
	f.calls = append(f.calls, query)
	gate := f.block[query]
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	return []model.Airport{{Code: query}}, nil
}

func (f *countingFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *countingFetcher) callList() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func TestDebouncer_CollapsesRapidKeystrokes(t *testing.T) {
	f := newCountingFetcher()
	d := NewDebouncer("departure", 50*time.Millisecond, f.fetch, testLogger(), nil)
	d.Start()
	defer d.Stop()

	d.Update("S")
	d.Update("SF")
	d.Update("SFO")

	select {
	case result := <-d.Results():
		assert.Equal(t, "SFO", result.Query)
		require.NoError(t, result.Err)
		require.Len(t, result.Airports, 1)
		assert.Equal(t, "SFO", result.Airports[0].Code)
	case <-time.After(time.Second):
		t.Fatal("no result within a second")
	}

	assert.Equal(t, []string{"SFO"}, f.callList())
}

func TestDebouncer_SeparateQuiescentInputsEachFire(t *testing.T) {
	f := newCountingFetcher()
	d := NewDebouncer("departure", 20*time.Millisecond, f.fetch, testLogger(), nil)
	d.Start()
	defer d.Stop()

	d.Update("SFO")
	first := <-d.Results()
	assert.Equal(t, "SFO", first.Query)

	d.Update("JFK")
	second := <-d.Results()
	assert.Equal(t, "JFK", second.Query)

	assert.Equal(t, []string{"SFO", "JFK"}, f.callList())
}

func TestDebouncer_DiscardsStaleInFlightResult(t *testing.T) {
	f := newCountingFetcher()
	gate := make(chan struct{})
	f.block["OLD"] = gate

	m := metrics.NewMetrics()
	d := NewDebouncer("destination", 20*time.Millisecond, f.fetch, testLogger(), m)
	d.Start()
	defer d.Stop()

	d.Update("OLD")
	// wait until the OLD fetch is actually in flight
	require.Eventually(t, func() bool { return f.callCount() == 1 }, time.Second, 5*time.Millisecond)

	d.Update("NEW")
	result := <-d.Results()
	assert.Equal(t, "NEW", result.Query)

	// release the stale fetch; its result must be suppressed
	close(gate)
	require.Eventually(t, func() bool { return m.GetSearchesSuperseded() == 1 }, time.Second, 5*time.Millisecond)

	select {
	case stale := <-d.Results():
		t.Fatalf("stale result delivered: %+v", stale)
	case <-time.After(50 * time.Millisecond):
	}

	assert.EqualValues(t, 2, m.GetSearchesIssued())
}

func TestDebouncer_IndependentFieldsDoNotCrossCancel(t *testing.T) {
	depFetcher := newCountingFetcher()
	dstFetcher := newCountingFetcher()

	dep := NewDebouncer("departure", 20*time.Millisecond, depFetcher.fetch, testLogger(), nil)
	dst := NewDebouncer("destination", 20*time.Millisecond, dstFetcher.fetch, testLogger(), nil)
	dep.Start()
	dst.Start()
	defer dep.Stop()
	defer dst.Stop()

	dep.Update("SFO")
	dst.Update("JFK")

	depResult := <-dep.Results()
	dstResult := <-dst.Results()

	assert.Equal(t, "SFO", depResult.Query)
	assert.Equal(t, "JFK", dstResult.Query)
	assert.Equal(t, []string{"SFO"}, depFetcher.callList())
	assert.Equal(t, []string{"JFK"}, dstFetcher.callList())
}

func TestDebouncer_EmptyQuerySkipsFetch(t *testing.T) {
	f := newCountingFetcher()
	d := NewDebouncer("departure", 20*time.Millisecond, f.fetch, testLogger(), nil)
	d.Start()
	defer d.Stop()

	d.Update("")

	result := <-d.Results()
	assert.Equal(t, "", result.Query)
	assert.Empty(t, result.Airports)
	require.NoError(t, result.Err)
	assert.Equal(t, 0, f.callCount())
}
