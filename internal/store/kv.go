// Package store persists analysis records through an injected key-value
// capability. The Gateway owns the slot layout and all read-side repair;
// backends only move opaque strings.
package store

import "context"

// Storage slot keys. Backends may namespace these with their own prefix.
const (
	// KeyCurrent holds the most recently saved analysis.
	KeyCurrent = "current-analysis"
	// KeyAnalysisPrefix prefixes one slot per analysis id.
	KeyAnalysisPrefix = "analysis:"
	// KeyHistory holds the most-recent-first history index.
	KeyHistory = "history-index"
	// KeyCorruption holds the sticky corruption-observed flag.
	KeyCorruption = "corruption-flag"
)

// KV is the abstract string key-value capability the Gateway runs on. All
// operations are synchronous; implementations need no locking beyond their
// own internal consistency because there is one logical writer at a time.
type KV interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes or replaces the value for key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key; deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Keys lists every stored key with the given prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// AnalysisKey builds the per-id slot key.
func AnalysisKey(id string) string {
	return KeyAnalysisPrefix + id
}
