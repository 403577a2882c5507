package observability

import (
	"strconv"
	"sync"
	"time"
)

// RequestStats is a point-in-time view over the in-memory counters,
// keyed by "path|method|status" for requests and "path|method|code"
// for errors.
type RequestStats struct {
	TotalRequests int64            `json:"total_requests"`
	TotalErrors   int64            `json:"total_errors"`
	Requests      map[string]int64 `json:"requests"`
	Errors        map[string]int64 `json:"errors"`
	LatencyMillis map[string]int64 `json:"latency_millis"`
}

// Metrics provides basic in-memory counters. Everything lives in process
// memory and resets on restart, like the rest of the service's state.
type Metrics struct {
	mu            sync.Mutex
	requestCount  map[string]int64
	errorCount    map[string]int64
	latencyMillis map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount:  make(map[string]int64),
		errorCount:    make(map[string]int64),
		latencyMillis: make(map[string]int64),
	}
}

// RecordRequest increments counters and accumulates latency for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := pathKey(path, method, status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
	m.latencyMillis[key] += duration.Milliseconds()
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errorCount[key]++
}

// Snapshot copies the counters for the admin metrics view.
func (m *Metrics) Snapshot() RequestStats {
	stats := RequestStats{
		Requests:      make(map[string]int64),
		Errors:        make(map[string]int64),
		LatencyMillis: make(map[string]int64),
	}
	if m == nil {
		return stats
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for key, count := range m.requestCount {
		stats.Requests[key] = count
		stats.TotalRequests += count
	}
	for key, count := range m.errorCount {
		stats.Errors[key] = count
		stats.TotalErrors += count
	}
	for key, ms := range m.latencyMillis {
		stats.LatencyMillis[key] = ms
	}
	return stats
}

func pathKey(path, method string, status int) string {
	return path + "|" + method + "|" + strconv.Itoa(status)
}
