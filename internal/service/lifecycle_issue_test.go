package service

import (
	"context"
	"testing"

	"github.com/keymint/keymint/internal/auth"
	"github.com/keymint/keymint/internal/metrics"
)

func TestIssueKey(t *testing.T) {
	recorder := metrics.NewInMemory()
	// No cache configured: the convenience slot is optional by design.
	svc := NewLifecycleService(nil, nil, 0, recorder)

	k1, err := svc.IssueKey(context.Background())
	if err != nil {
		t.Fatalf("IssueKey failed: %v", err)
	}
	k2, err := svc.IssueKey(context.Background())
	if err != nil {
		t.Fatalf("IssueKey failed: %v", err)
	}

	if !auth.ValidateKeyFormat(k1) {
		t.Errorf("issued key has invalid format: %s", k1)
	}
	if k1 == k2 {
		t.Error("two issued keys should differ")
	}

	if got := recorder.Snapshot().KeysIssued; got != 2 {
		t.Errorf("KeysIssued = %d, want 2", got)
	}
}
