package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncKeyIssued is a no-op.
func (n *NoopRecorder) IncKeyIssued() {}

// IncUserRegistered is a no-op.
func (n *NoopRecorder) IncUserRegistered() {}

// IncUserRemoved is a no-op.
func (n *NoopRecorder) IncUserRemoved() {}

// IncAdminRegistered is a no-op.
func (n *NoopRecorder) IncAdminRegistered() {}

// IncAdminLogin is a no-op.
func (n *NoopRecorder) IncAdminLogin(status string) {}

// ObserveDashboardDuration is a no-op.
func (n *NoopRecorder) ObserveDashboardDuration(duration time.Duration) {}
