package mongodb

import (
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/event"

	"github.com/jsamuelsen11/replset-api/internal/domain/cluster"
)

// heartbeatTracker folds per-member heartbeat results into cluster-level
// connectivity. It reports Disconnected once every known member is failing
// and Connected when any member answers again.
type heartbeatTracker struct {
	mu        sync.Mutex
	emit      func(cluster.DriverEvent)
	armed     bool
	reachable bool
	members   map[string]bool
}

func newHeartbeatTracker() *heartbeatTracker {
	return &heartbeatTracker{members: make(map[string]bool)}
}

// monitor returns the driver hook that feeds the tracker.
func (t *heartbeatTracker) monitor() *event.ServerMonitor {
	return &event.ServerMonitor{
		ServerHeartbeatSucceeded: func(e *event.ServerHeartbeatSucceededEvent) {
			t.observe(memberAddr(e.ConnectionID), true, nil)
		},
		ServerHeartbeatFailed: func(e *event.ServerHeartbeatFailedEvent) {
			t.observe(memberAddr(e.ConnectionID), false, e.Failure)
		},
	}
}

// arm starts forwarding changes to emit. Results observed before arming
// only seed the member table.
func (t *heartbeatTracker) arm(emit func(cluster.DriverEvent)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.emit = emit
	t.armed = true
	t.reachable = true
}

// disarm stops forwarding. Late heartbeats from a closing pool are ignored.
func (t *heartbeatTracker) disarm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.armed = false
	t.emit = nil
}

// observe runs on each member's monitor goroutine. emit is called with
// t.mu held so transitions reach the consumer in the order they were
// decided; emit must not call back into the tracker.
func (t *heartbeatTracker) observe(member string, ok bool, failure error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.members[member] = ok

	anyUp := false
	for _, up := range t.members {
		if up {
			anyUp = true
			break
		}
	}
	if !t.armed || anyUp == t.reachable || t.emit == nil {
		return
	}

	t.reachable = anyUp
	if anyUp {
		t.emit(cluster.DriverEvent{State: cluster.Connected})
		return
	}
	t.emit(cluster.DriverEvent{State: cluster.Disconnected, Err: failure})
}

// memberAddr strips the connection counter from a driver connection ID,
// e.g. "db1:27017[-3]" becomes "db1:27017".
func memberAddr(connectionID string) string {
	if i := strings.IndexByte(connectionID, '['); i >= 0 {
		return connectionID[:i]
	}
	return connectionID
}
