//go:generate benchmarkCodeGen

package builtinMap

import (
	"github.com/xaionaro-go/chainmap/errors"
	"github.com/xaionaro-go/chainmap/hasher"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

// NewWithArgs returns the builtin map behind I.Map. It is the reference
// model the chained map is compared with. Keys must be hashable by the Go
// runtime.
func NewWithArgs(initialCapacity uint64) I.Map {
	return &builtinMap{
		m: make(map[I.Key]interface{}, initialCapacity),
	}
}

type builtinMap struct {
	m map[I.Key]interface{}
}

func (m *builtinMap) Put(key I.Key, value interface{}) (interface{}, error) {
	oldValue := m.m[key]
	m.m[key] = value
	return oldValue, nil
}
func (m *builtinMap) Set(key I.Key, value interface{}) error {
	m.m[key] = value
	return nil
}
func (m *builtinMap) Get(key I.Key) interface{} {
	return m.m[key]
}
func (m *builtinMap) Lookup(key I.Key) (interface{}, bool) {
	value, ok := m.m[key]
	return value, ok
}
func (m *builtinMap) ContainsKey(key I.Key) bool {
	_, ok := m.m[key]
	return ok
}
func (m *builtinMap) ContainsValue(value interface{}) bool {
	for _, v := range m.m {
		if hasher.IsEqualValue(v, value) {
			return true
		}
	}
	return false
}
func (m *builtinMap) Remove(key I.Key) interface{} {
	oldValue := m.m[key]
	delete(m.m, key)
	return oldValue
}
func (m *builtinMap) Unset(key I.Key) error {
	if _, ok := m.m[key]; !ok {
		return errors.NotFound
	}
	delete(m.m, key)
	return nil
}
func (m *builtinMap) Len() int {
	return len(m.m)
}
func (m *builtinMap) Clear() {
	m.m = map[I.Key]interface{}{}
}
func (m *builtinMap) Range(fn func(key I.Key, value interface{}) bool) {
	for k, v := range m.m {
		if !fn(k, v) {
			return
		}
	}
}
func (m *builtinMap) FromSTDMap(in map[I.Key]interface{}) error {
	for k, v := range in {
		m.m[k] = v
	}
	return nil
}
func (m *builtinMap) ToSTDMap() map[I.Key]interface{} {
	r := make(map[I.Key]interface{}, len(m.m))
	for k, v := range m.m {
		r[k] = v
	}
	return r
}
