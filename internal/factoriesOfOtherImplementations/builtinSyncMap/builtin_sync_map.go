//go:generate benchmarkCodeGen

package builtinSyncMap

import (
	"sync"

	"github.com/xaionaro-go/chainmap/errors"
	"github.com/xaionaro-go/chainmap/hasher"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

func NewWithArgs(initialCapacity uint64) I.Map {
	return &builtinSyncMap{}
}

// sync.Map does not count its entries, so the counter is kept aside. The
// counter makes the wrapper unsafe for concurrent use.
type builtinSyncMap struct {
	sync.Map

	count int
}

func (m *builtinSyncMap) Put(key I.Key, value interface{}) (interface{}, error) {
	oldValue, loaded := m.Map.Load(key)
	m.Map.Store(key, value)
	if !loaded {
		m.count++
	}
	return oldValue, nil
}
func (m *builtinSyncMap) Set(key I.Key, value interface{}) error {
	_, err := m.Put(key, value)
	return err
}
func (m *builtinSyncMap) Get(key I.Key) interface{} {
	value, _ := m.Map.Load(key)
	return value
}
func (m *builtinSyncMap) Lookup(key I.Key) (interface{}, bool) {
	return m.Map.Load(key)
}
func (m *builtinSyncMap) ContainsKey(key I.Key) bool {
	_, ok := m.Map.Load(key)
	return ok
}
func (m *builtinSyncMap) ContainsValue(value interface{}) bool {
	found := false
	m.Map.Range(func(_, v interface{}) bool {
		found = hasher.IsEqualValue(v, value)
		return !found
	})
	return found
}
func (m *builtinSyncMap) Remove(key I.Key) interface{} {
	oldValue, loaded := m.Map.Load(key)
	if !loaded {
		return nil
	}
	m.Map.Delete(key)
	m.count--
	return oldValue
}
func (m *builtinSyncMap) Unset(key I.Key) error {
	if !m.ContainsKey(key) {
		return errors.NotFound
	}
	m.Remove(key)
	return nil
}
func (m *builtinSyncMap) Len() int {
	return m.count
}
func (m *builtinSyncMap) Clear() {
	m.Map.Range(func(key, _ interface{}) bool {
		m.Map.Delete(key)
		return true
	})
	m.count = 0
}
func (m *builtinSyncMap) Range(fn func(key I.Key, value interface{}) bool) {
	m.Map.Range(func(key, value interface{}) bool {
		return fn(key, value)
	})
}
func (m *builtinSyncMap) FromSTDMap(in map[I.Key]interface{}) error {
	for k, v := range in {
		if err := m.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}
func (m *builtinSyncMap) ToSTDMap() map[I.Key]interface{} {
	r := map[I.Key]interface{}{}
	m.Map.Range(func(key, value interface{}) bool {
		r[key] = value
		return true
	})
	return r
}
