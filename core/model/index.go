package model

// Index is an insertion-ordered map of top-level records keyed by
// cross-reference identifier. The zero value is ready to use.
//
// Index is not safe for concurrent use; one goroutine owns a record graph.
type Index[T any] struct {
	keys   []string
	values map[string]T
}

// NewIndex creates an empty index.
func NewIndex[T any]() *Index[T] {
	return &Index[T]{values: make(map[string]T)}
}

// Put stores value under key. Replacing an existing key keeps its position.
func (x *Index[T]) Put(key string, value T) {
	if x.values == nil {
		x.values = make(map[string]T)
	}
	if _, ok := x.values[key]; !ok {
		x.keys = append(x.keys, key)
	}
	x.values[key] = value
}

// Get returns the value stored under key.
func (x *Index[T]) Get(key string) (T, bool) {
	if x == nil || x.values == nil {
		var zero T
		return zero, false
	}
	v, ok := x.values[key]
	return v, ok
}

// Has reports whether key is present.
func (x *Index[T]) Has(key string) bool {
	_, ok := x.Get(key)
	return ok
}

// Delete removes key. It is a no-op when key is absent.
func (x *Index[T]) Delete(key string) {
	if x == nil || x.values == nil {
		return
	}
	if _, ok := x.values[key]; !ok {
		return
	}
	delete(x.values, key)
	for i, k := range x.keys {
		if k == key {
			x.keys = append(x.keys[:i], x.keys[i+1:]...)
			break
		}
	}
}

// Rekey moves the value stored under oldKey to newKey, keeping its position.
// It returns false when oldKey is absent or newKey is already taken.
func (x *Index[T]) Rekey(oldKey, newKey string) bool {
	if x == nil || x.values == nil || oldKey == newKey {
		return false
	}
	v, ok := x.values[oldKey]
	if !ok {
		return false
	}
	if _, taken := x.values[newKey]; taken {
		return false
	}
	delete(x.values, oldKey)
	x.values[newKey] = v
	for i, k := range x.keys {
		if k == oldKey {
			x.keys[i] = newKey
			break
		}
	}
	return true
}

// Len returns the number of entries.
func (x *Index[T]) Len() int {
	if x == nil {
		return 0
	}
	return len(x.keys)
}

// Keys returns the keys in insertion order.
func (x *Index[T]) Keys() []string {
	if x == nil {
		return nil
	}
	out := make([]string, len(x.keys))
	copy(out, x.keys)
	return out
}

// Values returns the values in insertion order.
func (x *Index[T]) Values() []T {
	if x == nil {
		return nil
	}
	out := make([]T, 0, len(x.keys))
	for _, k := range x.keys {
		out = append(out, x.values[k])
	}
	return out
}

// Each calls fn for every entry in insertion order until fn returns false.
func (x *Index[T]) Each(fn func(key string, value T) bool) {
	if x == nil {
		return
	}
	for _, k := range x.Keys() {
		if !fn(k, x.values[k]) {
			return
		}
	}
}
