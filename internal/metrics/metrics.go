// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Login outcome labels.
const (
	LoginSuccess = "success"
	LoginFailure = "failure"
)

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// Key lifecycle metrics
	IncKeyIssued()
	IncUserRegistered()
	IncUserRemoved()

	// Admin auth metrics
	IncAdminRegistered()
	IncAdminLogin(status string) // status: "success" or "failure"

	// Dashboard metrics
	ObserveDashboardDuration(duration time.Duration)
}
