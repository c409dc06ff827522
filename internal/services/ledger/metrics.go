package ledger

import "sync"

// MetricsCollector receives ledger mutation metrics.
type MetricsCollector interface {
	RecordMutation(op string, amount int64)
	RecordError(op, errType string)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (n *NoopMetricsCollector) RecordMutation(string, int64) {}
func (n *NoopMetricsCollector) RecordError(string, string)   {}

// Stats is a point-in-time snapshot of the in-process ledger counters.
type Stats struct {
	Mutations map[string]int64 `json:"mutations"`
	Amounts   map[string]int64 `json:"amounts"`
	Errors    map[string]int64 `json:"errors"`
}

// StatsCollector accumulates per-operation mutation and error counters.
// Counters reset on process restart; they are an operational gauge, not an
// audit source — the transactions table is.
type StatsCollector struct {
	mu        sync.Mutex
	mutations map[string]int64
	amounts   map[string]int64
	errors    map[string]int64
}

func NewStatsCollector() *StatsCollector {
	return &StatsCollector{
		mutations: make(map[string]int64),
		amounts:   make(map[string]int64),
		errors:    make(map[string]int64),
	}
}

func (c *StatsCollector) RecordMutation(op string, amount int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mutations[op]++
	c.amounts[op] += amount
}

func (c *StatsCollector) RecordError(op, errType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errors[op+":"+errType]++
}

func (c *StatsCollector) Snapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	stats := Stats{
		Mutations: make(map[string]int64, len(c.mutations)),
		Amounts:   make(map[string]int64, len(c.amounts)),
		Errors:    make(map[string]int64, len(c.errors)),
	}
	for k, v := range c.mutations {
		stats.Mutations[k] = v
	}
	for k, v := range c.amounts {
		stats.Amounts[k] = v
	}
	for k, v := range c.errors {
		stats.Errors[k] = v
	}
	return stats
}
