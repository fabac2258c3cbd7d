package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics collects client-side counters: API traffic and the behavior of
// the debounced airport search.
type Metrics struct {
	// API metrics
	apiRequests     atomic.Int64
	apiErrors       atomic.Int64
	apiLatencySum   atomic.Int64
	apiLatencyCount atomic.Int64

	// Auth metrics
	loginAttempts atomic.Int64
	loginFailures atomic.Int64

	// Search metrics
	searchesIssued     atomic.Int64
	searchesSuperseded atomic.Int64

	startTime time.Time
	mu        sync.RWMutex
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),
	}
}

// API metrics methods

func (m *Metrics) IncrementAPIRequests() {
	m.apiRequests.Add(1)
}

func (m *Metrics) IncrementAPIErrors() {
	m.apiErrors.Add(1)
}

func (m *Metrics) RecordAPILatency(latencyMs int64) {
	m.apiLatencySum.Add(latencyMs)
	m.apiLatencyCount.Add(1)
}

func (m *Metrics) GetAPIRequests() int64 {
	return m.apiRequests.Load()
}

func (m *Metrics) GetAPIErrors() int64 {
	return m.apiErrors.Load()
}

func (m *Metrics) GetAPIAverageLatency() float64 {
	count := m.apiLatencyCount.Load()
	if count == 0 {
		return 0
	}
	sum := m.apiLatencySum.Load()
	return float64(sum) / float64(count)
}

// Auth metrics methods

func (m *Metrics) IncrementLoginAttempts() {
	m.loginAttempts.Add(1)
}

func (m *Metrics) IncrementLoginFailures() {
	m.loginFailures.Add(1)
}

func (m *Metrics) GetLoginAttempts() int64 {
	return m.loginAttempts.Load()
}

func (m *Metrics) GetLoginFailures() int64 {
	return m.loginFailures.Load()
}

// Search metrics methods

func (m *Metrics) IncrementSearchesIssued() {
	m.searchesIssued.Add(1)
}

func (m *Metrics) IncrementSearchesSuperseded() {
	m.searchesSuperseded.Add(1)
}

func (m *Metrics) GetSearchesIssued() int64 {
	return m.searchesIssued.Load()
}

func (m *Metrics) GetSearchesSuperseded() int64 {
	return m.searchesSuperseded.Load()
}

// General metrics methods

func (m *Metrics) GetUptime() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return time.Since(m.startTime)
}

func (m *Metrics) Reset() {
	m.apiRequests.Store(0)
	m.apiErrors.Store(0)
	m.apiLatencySum.Store(0)
	m.apiLatencyCount.Store(0)
	m.loginAttempts.Store(0)
	m.loginFailures.Store(0)
	m.searchesIssued.Store(0)
	m.searchesSuperseded.Store(0)

	m.mu.Lock()
	m.startTime = time.Now()
	m.mu.Unlock()
}

// Snapshot represents a point-in-time snapshot of all metrics
type Snapshot struct {
	APIRequests        int64   `json:"api_requests"`
	APIErrors          int64   `json:"api_errors"`
	APIAvgLatency      float64 `json:"api_avg_latency_ms"`
	LoginAttempts      int64   `json:"login_attempts"`
	LoginFailures      int64   `json:"login_failures"`
	SearchesIssued     int64   `json:"searches_issued"`
	SearchesSuperseded int64   `json:"searches_superseded"`
	UptimeSeconds      int64   `json:"uptime_seconds"`
	Timestamp          int64   `json:"timestamp"`
}

// GetSnapshot returns a snapshot of all current metrics
func (m *Metrics) GetSnapshot() *Snapshot {
	return &Snapshot{
		APIRequests:        m.GetAPIRequests(),
		APIErrors:          m.GetAPIErrors(),
		APIAvgLatency:      m.GetAPIAverageLatency(),
		LoginAttempts:      m.GetLoginAttempts(),
		LoginFailures:      m.GetLoginFailures(),
		SearchesIssued:     m.GetSearchesIssued(),
		SearchesSuperseded: m.GetSearchesSuperseded(),
		UptimeSeconds:      int64(m.GetUptime().Seconds()),
		Timestamp:          time.Now().Unix(),
	}
}
