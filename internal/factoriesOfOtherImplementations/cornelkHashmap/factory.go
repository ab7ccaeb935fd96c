//go:generate benchmarkCodeGen

package cornelkHashmap

import (
	"github.com/cornelk/hashmap"

	"github.com/xaionaro-go/chainmap/errors"
	"github.com/xaionaro-go/chainmap/hasher"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

func New() I.Map {
	return &hashmapWrapper{}
}

// NewWithArgs wraps cornelk/hashmap. It does not support nil keys.
func NewWithArgs(initialCapacity uint64) I.Map {
	return New()
}

type hashmapWrapper struct {
	hashmap.HashMap
}

func (m *hashmapWrapper) Put(key I.Key, value interface{}) (interface{}, error) {
	oldValue, _ := m.HashMap.Get(key)
	m.HashMap.Set(key, value)
	return oldValue, nil
}
func (m *hashmapWrapper) Set(key I.Key, value interface{}) error {
	m.HashMap.Set(key, value)
	return nil
}
func (m *hashmapWrapper) Get(key I.Key) interface{} {
	value, _ := m.HashMap.Get(key)
	return value
}
func (m *hashmapWrapper) Lookup(key I.Key) (interface{}, bool) {
	return m.HashMap.Get(key)
}
func (m *hashmapWrapper) ContainsKey(key I.Key) bool {
	_, ok := m.HashMap.Get(key)
	return ok
}
func (m *hashmapWrapper) ContainsValue(value interface{}) bool {
	found := false
	m.Range(func(_ I.Key, v interface{}) bool {
		found = hasher.IsEqualValue(v, value)
		return !found
	})
	return found
}
func (m *hashmapWrapper) Remove(key I.Key) interface{} {
	oldValue, ok := m.HashMap.Get(key)
	if !ok {
		return nil
	}
	m.HashMap.Del(key)
	return oldValue
}
func (m *hashmapWrapper) Unset(key I.Key) error {
	if !m.ContainsKey(key) {
		return errors.NotFound
	}
	m.HashMap.Del(key)
	return nil
}
func (m *hashmapWrapper) Len() int {
	return m.HashMap.Len()
}
func (m *hashmapWrapper) Clear() {
	var keys []I.Key
	m.Range(func(key I.Key, _ interface{}) bool {
		keys = append(keys, key)
		return true
	})
	for _, key := range keys {
		m.HashMap.Del(key)
	}
}

// Range drains the iteration channel even when fn stops early, so that the
// producing goroutine is not left blocked.
func (m *hashmapWrapper) Range(fn func(key I.Key, value interface{}) bool) {
	stopped := false
	for kv := range m.HashMap.Iter() {
		if stopped {
			continue
		}
		stopped = !fn(kv.Key, kv.Value)
	}
}
func (m *hashmapWrapper) FromSTDMap(in map[I.Key]interface{}) error {
	for k, v := range in {
		m.HashMap.Set(k, v)
	}
	return nil
}
func (m *hashmapWrapper) ToSTDMap() map[I.Key]interface{} {
	r := map[I.Key]interface{}{}
	m.Range(func(key I.Key, value interface{}) bool {
		r[key] = value
		return true
	})
	return r
}
