// Package options holds process-wide switches that change how the record
// graph and validation findings are constructed.
package options

import "sync/atomic"

// collectionInitialization controls whether new findings start with empty
// (non-nil) related-item and repair slices. Enabled by default.
var collectionInitialization atomic.Bool

func init() {
	collectionInitialization.Store(true)
}

// EnableCollectionInitialization makes new findings start with empty slices.
func EnableCollectionInitialization() {
	collectionInitialization.Store(true)
}

// DisableCollectionInitialization makes new findings start with nil slices.
// Use it only when comparing against output that distinguishes absent from
// empty lists.
func DisableCollectionInitialization() {
	collectionInitialization.Store(false)
}

// CollectionInitializationEnabled reports the current setting.
// Callers read it once per constructed value.
func CollectionInitializationEnabled() bool {
	return collectionInitialization.Load()
}

// ResetToDefaults restores every option to its default value.
func ResetToDefaults() {
	collectionInitialization.Store(true)
}
