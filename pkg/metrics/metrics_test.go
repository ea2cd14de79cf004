package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectorCounters(t *testing.T) {
	c := NewCollector()

	c.TaskStarted()
	c.TaskStarted()
	c.TaskStarted()
	c.TaskSucceeded()
	c.TaskFailed("external tool failed")
	c.TaskFailed("external tool failed")

	snap := c.Snapshot()
	assert.Equal(t, int64(3), snap.TasksStarted)
	assert.Equal(t, int64(1), snap.TasksSucceeded)
	assert.Equal(t, int64(2), snap.TasksFailed)
	assert.Equal(t, int64(2), snap.FailureCounts["external tool failed"])
}

func TestSnapshotIsACopy(t *testing.T) {
	c := NewCollector()
	c.TaskFailed("timeout")

	snap := c.Snapshot()
	snap.FailureCounts["timeout"] = 99

	assert.Equal(t, int64(1), c.Snapshot().FailureCounts["timeout"])
}

func TestCollectorConcurrentUpdates(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.TaskStarted()
			c.TaskSucceeded()
			c.Snapshot()
		}()
	}
	wg.Wait()

	snap := c.Snapshot()
	assert.Equal(t, int64(100), snap.TasksStarted)
	assert.Equal(t, int64(100), snap.TasksSucceeded)
}
