package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	KeysIssued           uint64
	UsersRegistered      uint64
	UsersRemoved         uint64
	AdminsRegistered     uint64
	AdminLoginSuccesses  uint64
	AdminLoginFailures   uint64
	DashboardReadCount   uint64
	DashboardReadTotalNs int64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	keysIssued           uint64
	usersRegistered      uint64
	usersRemoved         uint64
	adminsRegistered     uint64
	adminLoginSuccesses  uint64
	adminLoginFailures   uint64
	dashboardReadCount   uint64
	dashboardReadTotalNs int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		KeysIssued:           atomic.LoadUint64(&m.keysIssued),
		UsersRegistered:      atomic.LoadUint64(&m.usersRegistered),
		UsersRemoved:         atomic.LoadUint64(&m.usersRemoved),
		AdminsRegistered:     atomic.LoadUint64(&m.adminsRegistered),
		AdminLoginSuccesses:  atomic.LoadUint64(&m.adminLoginSuccesses),
		AdminLoginFailures:   atomic.LoadUint64(&m.adminLoginFailures),
		DashboardReadCount:   atomic.LoadUint64(&m.dashboardReadCount),
		DashboardReadTotalNs: atomic.LoadInt64(&m.dashboardReadTotalNs),
	}
}

// IncKeyIssued increments the issued key counter.
func (m *InMemoryRecorder) IncKeyIssued() {
	atomic.AddUint64(&m.keysIssued, 1)
}

// IncUserRegistered increments the registered user counter.
func (m *InMemoryRecorder) IncUserRegistered() {
	atomic.AddUint64(&m.usersRegistered, 1)
}

// IncUserRemoved increments the removed user counter.
func (m *InMemoryRecorder) IncUserRemoved() {
	atomic.AddUint64(&m.usersRemoved, 1)
}

// IncAdminRegistered increments the registered admin counter.
func (m *InMemoryRecorder) IncAdminRegistered() {
	atomic.AddUint64(&m.adminsRegistered, 1)
}

// IncAdminLogin increments the login counter for the given outcome.
func (m *InMemoryRecorder) IncAdminLogin(status string) {
	if status == LoginSuccess {
		atomic.AddUint64(&m.adminLoginSuccesses, 1)
		return
	}
	atomic.AddUint64(&m.adminLoginFailures, 1)
}

// ObserveDashboardDuration records a dashboard read duration.
func (m *InMemoryRecorder) ObserveDashboardDuration(duration time.Duration) {
	atomic.AddUint64(&m.dashboardReadCount, 1)
	atomic.AddInt64(&m.dashboardReadTotalNs, duration.Nanoseconds())
}
