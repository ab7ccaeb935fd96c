//go:generate benchmarkCodeGen

package chainmap

import (
	"math/bits"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/xaionaro-go/chainmap/hasher"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

const (
	loadFactor             = 0.75
	defaultCapacity        = 16
	defaultMaximalCapacity = 1 << 30
)

type Key = I.Key

func isPowerOfTwo(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}

func powerOfTwoGT(v uint64) uint64 {
	return 1 << uint(bits.Len64(v))
}

func powerOfTwoGE(v uint64) uint64 {
	if isPowerOfTwo(v) {
		return v
	}
	return powerOfTwoGT(v)
}

func thresholdFor(capacity uint64) int {
	return int(float64(capacity) * loadFactor)
}

// fixCapacity makes the capacity a power of two within the allowed range.
func fixCapacity(capacity uint64, logger *zap.Logger) uint64 {
	if capacity == 0 {
		return defaultCapacity
	}

	if capacity > defaultMaximalCapacity {
		logger.Warn("capacity is too large, clamping",
			zap.Uint64("capacity", capacity), zap.Uint64("maximalCapacity", defaultMaximalCapacity))
		return defaultMaximalCapacity
	}

	if !isPowerOfTwo(capacity) {
		fixed := powerOfTwoGT(capacity)
		logger.Warn("capacity should be a power of 2 (1, 2, 4, 8, 16, ...), rounding up",
			zap.Uint64("capacity", capacity), zap.Uint64("fixedCapacity", fixed))
		capacity = fixed
	}

	return capacity
}

// Map is a hash table resolving collisions by chaining.
//
// Keys may be of any type (including nil) and must keep their hash code for
// as long as they are stored: mutating a key after insertion is undefined
// behavior. Map is not safe for concurrent use; callers must synchronize
// access externally.
type Map struct {
	buckets         []bucket
	size            int
	threshold       int
	maximalCapacity uint64
	forbidGrowing   bool
	logger          *zap.Logger
}

var _ I.Map = (*Map)(nil)

func New() *Map {
	return NewWithArgs(0, nil)
}

// NewWithArgs creates a map with the given initial amount of buckets. The
// amount is rounded up to a power of 2; 0 means the default (16). A nil
// logger disables logging.
func NewWithArgs(initialCapacity uint64, logger *zap.Logger) *Map {
	if logger == nil {
		logger = zap.NewNop()
	}
	capacity := fixCapacity(initialCapacity, logger)
	return &Map{
		buckets:         make([]bucket, capacity),
		threshold:       thresholdFor(capacity),
		maximalCapacity: defaultMaximalCapacity,
		logger:          logger,
	}
}

// SetForbidGrowing forbids (or allows again) growing the bucket array. While
// forbidden, an insertion that requires growing fails with
// ErrForbiddenToGrow.
func (m *Map) SetForbidGrowing(forbid bool) {
	m.forbidGrowing = forbid
}

func (m *Map) capacity() uint64 {
	return uint64(len(m.buckets))
}

func (m *Map) Capacity() int {
	return len(m.buckets)
}

func (m *Map) Threshold() int {
	return m.threshold
}

func (m *Map) getIdx(hashCode uint32) uint64 {
	return hasher.Index(hashCode, m.capacity())
}

func (m *Map) findEntry(key Key) *entry {
	hashCode := hasher.HashCode(key)
	return m.buckets[m.getIdx(hashCode)].find(hashCode, key)
}

func (m *Map) Len() int {
	return m.size
}

func (m *Map) IsEmpty() bool {
	return m.size == 0
}

func (m *Map) ContainsKey(key Key) bool {
	return m.findEntry(key) != nil
}

// ContainsValue scans the whole table, values are not indexed.
func (m *Map) ContainsValue(value interface{}) bool {
	for i := range m.buckets {
		for e := m.buckets[i].head; e != nil; e = e.next {
			if hasher.IsEqualValue(e.value, value) {
				return true
			}
		}
	}
	return false
}

// Get returns the value stored for the key or nil if there is none. A key
// mapped to nil is indistinguishable from a missing key here; use Lookup or
// ContainsKey to tell them apart.
func (m *Map) Get(key Key) interface{} {
	e := m.findEntry(key)
	if e == nil {
		return nil
	}
	return e.value
}

func (m *Map) Lookup(key Key) (interface{}, bool) {
	e := m.findEntry(key)
	if e == nil {
		return nil, false
	}
	return e.value, true
}

// Put stores the value for the key and returns the previously stored value
// (nil if the key was absent).
//
// The table grows before the insertion if it is already filled up to the
// threshold, even if the key is present. If growing fails the map is left
// untouched and the error is returned.
func (m *Map) Put(key Key, value interface{}) (interface{}, error) {
	if m.size >= m.threshold {
		if err := m.grow(); err != nil {
			return nil, err
		}
	}

	hashCode := hasher.HashCode(key)
	b := &m.buckets[m.getIdx(hashCode)]
	if e := b.find(hashCode, key); e != nil {
		oldValue := e.value
		e.value = value
		return oldValue, nil
	}

	b.pushFront(&entry{key: key, hashCode: hashCode, value: value})
	m.size++
	return nil, nil
}

func (m *Map) Set(key Key, value interface{}) error {
	_, err := m.Put(key, value)
	return err
}

// Remove deletes the key and returns the value it was mapped to (nil if the
// key was absent).
func (m *Map) Remove(key Key) interface{} {
	hashCode := hasher.HashCode(key)
	b := &m.buckets[m.getIdx(hashCode)]
	e := b.find(hashCode, key)
	if e == nil {
		return nil
	}

	b.unlink(e)
	m.size--
	return e.value
}

func (m *Map) Unset(key Key) error {
	hashCode := hasher.HashCode(key)
	b := &m.buckets[m.getIdx(hashCode)]
	e := b.find(hashCode, key)
	if e == nil {
		return ErrNotFound
	}

	b.unlink(e)
	m.size--
	return nil
}

// PutAll puts every pair of the source in the source's enumeration order.
// It stops on the first error; pairs put before it stay in the map.
func (m *Map) PutAll(source I.Enumerable) (err error) {
	source.Range(func(key Key, value interface{}) bool {
		_, err = m.Put(key, value)
		return err == nil
	})
	return
}

// Clear removes all the entries. The capacity is kept.
func (m *Map) Clear() {
	for i := range m.buckets {
		m.buckets[i] = bucket{}
	}
	m.size = 0
}

func allocateBuckets(capacity uint64) (buckets []bucket, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Wrapf(ErrNoSpaceLeft, "unable to allocate %d buckets: %v", capacity, r)
		}
	}()
	return make([]bucket, capacity), nil
}

// grow doubles the amount of buckets and relinks every entry into the new
// bucket array. Entries are moved, not recreated.
func (m *Map) grow() error {
	oldCapacity := m.capacity()
	newCapacity := oldCapacity << 1

	if m.forbidGrowing {
		return errors.Wrapf(ErrForbiddenToGrow, "size %d reached threshold %d", m.size, m.threshold)
	}
	if newCapacity > m.maximalCapacity {
		m.logger.Warn("unable to grow", zap.Uint64("capacity", oldCapacity), zap.Uint64("maximalCapacity", m.maximalCapacity))
		return errors.Wrapf(ErrNoSpaceLeft, "cannot grow beyond %d buckets", m.maximalCapacity)
	}

	newBuckets, err := allocateBuckets(newCapacity)
	if err != nil {
		m.logger.Warn("unable to grow", zap.Uint64("capacity", oldCapacity), zap.Error(err))
		return err
	}

	for i := range m.buckets {
		e := m.buckets[i].head
		for e != nil {
			next := e.next
			newBuckets[hasher.Index(e.hashCode, newCapacity)].pushFront(e)
			e = next
		}
	}

	m.buckets = newBuckets
	m.threshold = thresholdFor(newCapacity)
	m.logger.Debug("grown",
		zap.Uint64("oldCapacity", oldCapacity), zap.Uint64("newCapacity", newCapacity), zap.Int("size", m.size))
	return nil
}

// Hash returns the spread hash code used to choose a bucket for the key.
func (m *Map) Hash(key Key) uint64 {
	return uint64(hasher.Spread(hasher.HashCode(key)))
}

func (m *Map) HasCollisionWithKey(key Key) bool {
	return !m.buckets[m.getIdx(hasher.HashCode(key))].isEmpty()
}

func (m *Map) CheckConsistency() error {
	if !isPowerOfTwo(m.capacity()) {
		return errors.Errorf("capacity is not a power of two: %v", m.capacity())
	}
	if m.threshold != thresholdFor(m.capacity()) {
		return errors.Errorf("threshold != capacity*%v: %v %v", loadFactor, m.threshold, m.capacity())
	}

	count := 0
	for i := range m.buckets {
		b := &m.buckets[i]
		if b.head != nil && b.head.prev != nil {
			return errors.Errorf("the head of bucket %v has a prev link", i)
		}
		for e := b.head; e != nil; e = e.next {
			if e.next != nil && e.next.prev != e {
				return errors.Errorf("broken back link in bucket %v after key %v", i, e.key)
			}
			if e.hashCode != hasher.HashCode(e.key) {
				return errors.Errorf("the hash code of key %v has changed: %v %v", e.key, e.hashCode, hasher.HashCode(e.key))
			}
			expectedIdx := m.getIdx(e.hashCode)
			if expectedIdx != uint64(i) {
				return errors.Errorf("key %v is in bucket %v instead of %v", e.key, i, expectedIdx)
			}
			for other := e.next; other != nil; other = other.next {
				if hasher.IsEqualKey(e.key, other.key) {
					return errors.Errorf("duplicate key %v in bucket %v", e.key, i)
				}
			}
			count++
		}
	}

	if count != m.Len() {
		return errors.Errorf("count != m.Len(): %v %v", count, m.Len())
	}
	return nil
}

// Keys returns a slice that contains all keys.
func (m *Map) Keys() []interface{} {
	r := make([]interface{}, 0, m.size)
	m.Range(func(key Key, _ interface{}) bool {
		r = append(r, key)
		return true
	})
	return r
}

// ToSTDMap converts to a standard map `map[Key]interface{}`. It panics if
// some key is not hashable by the Go runtime (like a slice).
func (m *Map) ToSTDMap() map[Key]interface{} {
	r := make(map[Key]interface{}, m.size)
	m.Range(func(key Key, value interface{}) bool {
		r[key] = value
		return true
	})
	return r
}

func (m *Map) FromSTDMap(stdMap map[Key]interface{}) error {
	for k, v := range stdMap {
		if err := m.Set(k, v); err != nil {
			return err
		}
	}
	return nil
}
