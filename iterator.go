package chainmap

import (
	I "github.com/xaionaro-go/chainmap/interfaces"
)

// iterator walks the buckets in index order and every chain from its head.
type iterator struct {
	m             *Map
	nextBucketIdx int
	current       *entry
}

var _ I.Iterator = (*iterator)(nil)

// Iter returns a lazy iterator over the current pairs of the map. The
// iterator may be restarted with Reset. Modifying the map while iterating
// is undefined behavior.
func (m *Map) Iter() I.Iterator {
	return &iterator{m: m}
}

func (it *iterator) Next() bool {
	if it.current != nil {
		it.current = it.current.next
	}
	for it.current == nil {
		if it.nextBucketIdx >= len(it.m.buckets) {
			return false
		}
		it.current = it.m.buckets[it.nextBucketIdx].head
		it.nextBucketIdx++
	}
	return true
}

func (it *iterator) Key() Key {
	if it.current == nil {
		return nil
	}
	return it.current.key
}

func (it *iterator) Value() interface{} {
	if it.current == nil {
		return nil
	}
	return it.current.value
}

func (it *iterator) Reset() {
	it.nextBucketIdx = 0
	it.current = nil
}

// Range calls fn for every pair until fn returns false.
func (m *Map) Range(fn func(key Key, value interface{}) bool) {
	it := m.Iter()
	for it.Next() {
		if !fn(it.Key(), it.Value()) {
			return
		}
	}
}
