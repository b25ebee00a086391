package lazy

import "sync/atomic"

// HeartbeatController is held by the party that owns a computation. As long
// as the controller is alive the computation keeps running; Stop tells every
// monitor that the result is no longer wanted.
type HeartbeatController struct {
	live *atomic.Bool
}

// HeartbeatMonitor is carried by the computation itself and polled at
// natural checkpoints. Monitors are cheap to copy and share.
type HeartbeatMonitor struct {
	live *atomic.Bool
}

// NewHeartbeat returns a linked controller/monitor pair. The heartbeat
// starts live.
func NewHeartbeat() (*HeartbeatController, HeartbeatMonitor) {
	live := &atomic.Bool{}
	live.Store(true)
	return &HeartbeatController{live: live}, HeartbeatMonitor{live: live}
}

// Stop marks the computation as abandoned. Stopping twice is harmless.
func (c *HeartbeatController) Stop() {
	c.live.Store(false)
}

// IsLive reports whether the owning controller still wants the result.
func (m HeartbeatMonitor) IsLive() bool {
	return m.live.Load()
}
