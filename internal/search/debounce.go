package search

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"manajet-client/internal/metrics"
	"manajet-client/internal/model"
	"manajet-client/pkg/logger"
)

// Fetcher performs the actual airport lookup for a query.
type Fetcher func(ctx context.Context, query string) ([]model.Airport, error)

// Result is the outcome of one debounced lookup. Query is the exact input
// the lookup was issued for, so consumers can match results to state.
type Result struct {
	Query    string
	Airports []model.Airport
	Err      error
}

// Debouncer coalesces a stream of keystrokes for one search field into at
// most one lookup per quiescence window. Each input resets the window;
// only the newest query is fetched. A result arriving after a newer query
// has been issued for the same field is discarded. Independent fields get
// independent Debouncers and never affect each other.
type Debouncer struct {
	field   string
	window  time.Duration
	fetch   Fetcher
	input   chan string
	results chan Result
	latest  atomic.Uint64
	logger  *logger.Logger
	metrics *metrics.Metrics
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewDebouncer creates a debouncer for one search field.
func NewDebouncer(field string, window time.Duration, fetch Fetcher, log *logger.Logger, m *metrics.Metrics) *Debouncer {
	ctx, cancel := context.WithCancel(context.Background())
	return &Debouncer{
		field:   field,
		window:  window,
		fetch:   fetch,
		input:   make(chan string, 16),
		results: make(chan Result, 16),
		logger:  log,
		metrics: m,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Start begins coalescing input.
func (d *Debouncer) Start() {
	d.wg.Add(1)
	go d.run()
}

// Update submits the field's current query text.
func (d *Debouncer) Update(query string) {
	select {
	case d.input <- query:
	case <-d.ctx.Done():
	}
}

// Results returns the channel of lookup outcomes.
func (d *Debouncer) Results() <-chan Result {
	return d.results
}

// Stop cancels the debouncer and waits for in-flight work to drain.
// Stale in-flight lookups are not interrupted mid-request, only their
// results are suppressed.
func (d *Debouncer) Stop() {
	d.cancel()
	d.wg.Wait()
}

func (d *Debouncer) run() {
	defer d.wg.Done()

	timer := time.NewTimer(d.window)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	var pending string
	havePending := false

	for {
		select {
		case <-d.ctx.Done():
			return
		case query := <-d.input:
			pending = query
			havePending = true
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(d.window)
		case <-timer.C:
			if !havePending {
				continue
			}
			havePending = false
			d.dispatch(pending)
		}
	}
}

// dispatch issues the lookup for the query that survived the quiescence
// window. The token identifies the newest issued lookup; anything older
// is stale by the time it completes.
func (d *Debouncer) dispatch(query string) {
	token := d.latest.Add(1)

	if query == "" {
		d.deliver(Result{Query: ""})
		return
	}

	if d.metrics != nil {
		d.metrics.IncrementSearchesIssued()
	}
	d.logger.Debug("Searching %s airports for %q", d.field, query)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		airports, err := d.fetch(d.ctx, query)

		if token != d.latest.Load() {
			d.logger.Debug("Discarding stale %s search result for %q", d.field, query)
			if d.metrics != nil {
				d.metrics.IncrementSearchesSuperseded()
			}
			return
		}

		d.deliver(Result{Query: query, Airports: airports, Err: err})
	}()
}

func (d *Debouncer) deliver(result Result) {
	select {
	case d.results <- result:
	case <-d.ctx.Done():
	}
}
