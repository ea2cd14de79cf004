package metrics

import (
	"sync"
	"time"
)

// Collector tracks aggregate pipeline counters for the dashboard.
// Everything is in-memory; counters reset on restart.
type Collector struct {
	mu sync.RWMutex

	startTime      time.Time
	tasksStarted   int64
	tasksSucceeded int64
	tasksFailed    int64
	failureCounts  map[string]int64
}

// NewCollector creates a collector with the start time set to now.
func NewCollector() *Collector {
	return &Collector{
		startTime:     time.Now(),
		failureCounts: make(map[string]int64),
	}
}

// TaskStarted records a new pipeline task.
func (c *Collector) TaskStarted() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasksStarted++
}

// TaskSucceeded records a task that reached a success notification.
func (c *Collector) TaskSucceeded() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasksSucceeded++
}

// TaskFailed records a task failure under the given reason.
func (c *Collector) TaskFailed(reason string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasksFailed++
	c.failureCounts[reason]++
}

// Snapshot is a point-in-time copy of all counters.
type Snapshot struct {
	UptimeSeconds  int64            `json:"uptime"`
	TasksStarted   int64            `json:"tasks_started"`
	TasksSucceeded int64            `json:"tasks_succeeded"`
	TasksFailed    int64            `json:"tasks_failed"`
	FailureCounts  map[string]int64 `json:"failure_counts"`
}

// Snapshot returns a copy of the current counters.
func (c *Collector) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	counts := make(map[string]int64, len(c.failureCounts))
	for k, v := range c.failureCounts {
		counts[k] = v
	}

	return Snapshot{
		UptimeSeconds:  int64(time.Since(c.startTime).Seconds()),
		TasksStarted:   c.tasksStarted,
		TasksSucceeded: c.tasksSucceeded,
		TasksFailed:    c.tasksFailed,
		FailureCounts:  counts,
	}
}
