// Package model defines domain entities for the application.
package model

import "time"

// KeyStatus represents the computed status of an API key.
type KeyStatus string

const (
	KeyStatusOnline  KeyStatus = "online"
	KeyStatusOffline KeyStatus = "offline"
)

// OfflineAfter is the age beyond which a key is reported as offline.
// The boundary is strict: a key exactly this old is still online.
const OfflineAfter = 30 * 24 * time.Hour

// APIKey represents an issued API key entity.
// CreatedAt is persisted in the legacy out_of_date column.
type APIKey struct {
	ID        int64     `json:"id"`
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"created_at"`
}

// StatusAt computes the key status relative to the given instant.
// Status is derived on every read and never persisted.
func (k *APIKey) StatusAt(now time.Time) KeyStatus {
	if now.Sub(k.CreatedAt) > OfflineAfter {
		return KeyStatusOffline
	}
	return KeyStatusOnline
}

// Status computes the key status against the current wall clock.
func (k *APIKey) Status() KeyStatus {
	return k.StatusAt(time.Now())
}

// EnrichedAPIKey is an APIKey annotated with its derived status.
type EnrichedAPIKey struct {
	APIKey
	Status KeyStatus `json:"status"`
}

// Enrich annotates the key with its status at the given instant.
func (k *APIKey) Enrich(now time.Time) EnrichedAPIKey {
	return EnrichedAPIKey{
		APIKey: *k,
		Status: k.StatusAt(now),
	}
}
