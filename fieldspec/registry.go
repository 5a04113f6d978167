package fieldspec

import (
	"reflect"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = make(map[reflect.Type]Layout)
)

// Register associates a layout with record type P, replacing any
// previous registration. Registration is intended for package init or
// other setup-time code; lookups on the hot path only take a read lock.
func Register[P any](l Layout) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[reflect.TypeFor[P]()] = l
}

// Lookup returns the layout registered for record type P, if any.
func Lookup[P any]() (Layout, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	l, ok := registry[reflect.TypeFor[P]()]
	return l, ok
}
