package types

// DefaultMap is a map that materializes a default value on first access of
// a missing key and remembers the order in which keys were first seen.
//
//	sums := NewDefaultMap[string](func() int64 { return 0 })
//	sums.Update("uatom", func(v int64) int64 { return v + 10 })
type DefaultMap[K comparable, V any] struct {
	data        map[K]V
	order       []K
	defaultFunc func() V
}

// NewDefaultMap creates an empty DefaultMap using defaultFunc to build
// values for missing keys.
func NewDefaultMap[K comparable, V any](defaultFunc func() V) DefaultMap[K, V] {
	return DefaultMap[K, V]{
		data:        make(map[K]V),
		defaultFunc: defaultFunc,
	}
}

// Get returns the value stored under key, storing and returning a default
// value when the key is absent.
func (d *DefaultMap[K, V]) Get(key K) V {
	if val, ok := d.data[key]; ok {
		return val
	}

	val := d.defaultFunc()
	d.Set(key, val)
	return val
}

// Set assigns val to key.
func (d *DefaultMap[K, V]) Set(key K, val V) {
	if _, ok := d.data[key]; !ok {
		d.order = append(d.order, key)
	}
	d.data[key] = val
}

// Update replaces the value under key with fn applied to its current (or
// default) value.
func (d *DefaultMap[K, V]) Update(key K, fn func(V) V) {
	d.Set(key, fn(d.Get(key)))
}

// Keys returns the keys in first-seen order.
func (d *DefaultMap[K, V]) Keys() []K {
	keys := make([]K, len(d.order))
	copy(keys, d.order)
	return keys
}

// Len returns the number of stored keys.
func (d *DefaultMap[K, V]) Len() int {
	return len(d.data)
}

// ToMap returns the underlying map. Mutating it bypasses key ordering.
func (d *DefaultMap[K, V]) ToMap() map[K]V {
	return d.data
}
