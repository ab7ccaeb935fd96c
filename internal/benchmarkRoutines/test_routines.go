package benchmarkRoutines

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xaionaro-go/chainmap/errors"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

const (
	collisionCheckIterations = 1 << 16
	manyElementsAmount       = 10000
	randomOperationsAmount   = 20000
)

type checkConsistencier interface {
	CheckConsistency() error
}

func checkConsistency(t *testing.T, m I.Map) {
	if c, ok := m.(checkConsistencier); ok {
		require.NoError(t, c.CheckConsistency())
	}
}

func put(t *testing.T, m I.Map, key I.Key, value interface{}) interface{} {
	previous, err := m.Put(key, value)
	require.NoError(t, err)
	return previous
}

// DoTest runs every scenario that any I.Map implementation has to pass
func DoTest(t *testing.T, factoryFunc mapFactoryFunc) {
	t.Run("PutAndGet", func(t *testing.T) { DoTestPutAndGet(t, factoryFunc) })
	t.Run("PutExistingKey", func(t *testing.T) { DoTestPutExistingKey(t, factoryFunc) })
	t.Run("Contains", func(t *testing.T) { DoTestContains(t, factoryFunc) })
	t.Run("Remove", func(t *testing.T) { DoTestRemove(t, factoryFunc) })
	t.Run("Clear", func(t *testing.T) { DoTestClear(t, factoryFunc) })
	t.Run("FromSTDMap", func(t *testing.T) { DoTestFromSTDMap(t, factoryFunc) })
	t.Run("Range", func(t *testing.T) { DoTestRange(t, factoryFunc) })
	t.Run("Growth", func(t *testing.T) { DoTestGrowth(t, factoryFunc) })
	t.Run("ManyElements", func(t *testing.T) { DoTestManyElements(t, factoryFunc, manyElementsAmount) })
}

func DoTestPutAndGet(t *testing.T, factoryFunc mapFactoryFunc) {
	m := factoryFunc(0)
	require.Equal(t, 0, m.Len())

	assert.Nil(t, put(t, m, "key1", "value1"))
	assert.Nil(t, put(t, m, "key2", "value2"))

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, "value1", m.Get("key1"))
	assert.Equal(t, "value2", m.Get("key2"))
	assert.Nil(t, m.Get("key3"))
	assert.False(t, m.ContainsKey("key3"))

	value, ok := m.Lookup("key1")
	assert.True(t, ok)
	assert.Equal(t, "value1", value)
	_, ok = m.Lookup("key3")
	assert.False(t, ok)

	checkConsistency(t, m)
}

func DoTestPutExistingKey(t *testing.T, factoryFunc mapFactoryFunc) {
	m := factoryFunc(0)

	assert.Nil(t, put(t, m, "key1", "value1"))
	assert.Equal(t, "value1", put(t, m, "key1", "newValue"))
	assert.Equal(t, "newValue", m.Get("key1"))
	assert.Equal(t, 1, m.Len())

	require.NoError(t, m.Set("key1", "setValue"))
	assert.Equal(t, "setValue", m.Get("key1"))
	assert.Equal(t, 1, m.Len())

	checkConsistency(t, m)
}

func DoTestContains(t *testing.T, factoryFunc mapFactoryFunc) {
	m := factoryFunc(0)
	put(t, m, "key1", "value1")

	assert.True(t, m.ContainsKey("key1"))
	assert.False(t, m.ContainsKey("key2"))
	assert.True(t, m.ContainsValue("value1"))
	assert.False(t, m.ContainsValue("value2"))
	assert.False(t, m.ContainsValue("key1"))

	m.Remove("key1")
	assert.False(t, m.ContainsValue("value1"))
}

func DoTestRemove(t *testing.T, factoryFunc mapFactoryFunc) {
	m := factoryFunc(0)
	put(t, m, "key1", "value1")
	put(t, m, "key2", "value2")

	assert.Equal(t, "value1", m.Remove("key1"))
	assert.False(t, m.ContainsKey("key1"))
	assert.Equal(t, 1, m.Len())

	assert.Nil(t, m.Remove("key3"))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, errors.NotFound, m.Unset("key3"))
	assert.Equal(t, 1, m.Len())

	require.NoError(t, m.Unset("key2"))
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Get("key2"))

	checkConsistency(t, m)
}

func DoTestClear(t *testing.T, factoryFunc mapFactoryFunc) {
	m := factoryFunc(0)
	put(t, m, "key1", "value1")
	put(t, m, "key2", "value2")

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Get("key1"))

	m.Clear()
	assert.Equal(t, 0, m.Len())

	put(t, m, "key1", "value3")
	assert.Equal(t, "value3", m.Get("key1"))
	assert.Equal(t, 1, m.Len())

	checkConsistency(t, m)
}

func DoTestFromSTDMap(t *testing.T, factoryFunc mapFactoryFunc) {
	source := map[I.Key]interface{}{
		"key1": "value1",
		"key2": "value2",
		"key3": "value3",
	}

	m := factoryFunc(0)
	put(t, m, "key1", "oldValue")
	require.NoError(t, m.FromSTDMap(source))

	assert.Equal(t, 3, m.Len())
	if diff := cmp.Diff(source, m.ToSTDMap()); diff != "" {
		t.Errorf("ToSTDMap() mismatch (-want +got):\n%s", diff)
	}

	checkConsistency(t, m)
}

func DoTestRange(t *testing.T, factoryFunc mapFactoryFunc) {
	m := factoryFunc(0)
	expected := map[I.Key]interface{}{}
	for i := 0; i < 100; i++ {
		put(t, m, i, fmt.Sprintf("value%d", i))
		expected[i] = fmt.Sprintf("value%d", i)
	}

	got := map[I.Key]interface{}{}
	m.Range(func(key I.Key, value interface{}) bool {
		_, alreadySeen := got[key]
		assert.False(t, alreadySeen, "key %v enumerated twice", key)
		got[key] = value
		return true
	})
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Range() mismatch (-want +got):\n%s", diff)
	}

	count := 0
	m.Range(func(I.Key, interface{}) bool {
		count++
		return count < 10
	})
	assert.Equal(t, 10, count)
}

// DoTestGrowth crosses the default threshold (16 buckets * 0.75 = 12 entries)
func DoTestGrowth(t *testing.T, factoryFunc mapFactoryFunc) {
	m := factoryFunc(0)
	for i := 0; i < 12; i++ {
		put(t, m, fmt.Sprintf("key%d", i), i)
	}
	checkConsistency(t, m)

	put(t, m, "key12", 12)
	assert.Equal(t, 13, m.Len())
	for i := 0; i < 13; i++ {
		assert.Equal(t, i, m.Get(fmt.Sprintf("key%d", i)))
	}

	checkConsistency(t, m)
}

func DoTestManyElements(t *testing.T, factoryFunc mapFactoryFunc, amount int) {
	m := factoryFunc(0)
	for i := 0; i < amount; i++ {
		assert.Nil(t, put(t, m, i, fmt.Sprintf("value%d", i)))
	}
	require.Equal(t, amount, m.Len())

	for i := 0; i < amount; i++ {
		if !assert.Equal(t, fmt.Sprintf("value%d", i), m.Get(i)) {
			continue
		}
		assert.True(t, m.ContainsKey(i))
	}
	assert.False(t, m.ContainsKey(amount))
	checkConsistency(t, m)

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Get(0))
	checkConsistency(t, m)
}

// DoTestNilKeyAndValue is only for implementations that permit nil keys
func DoTestNilKeyAndValue(t *testing.T, factoryFunc mapFactoryFunc) {
	m := factoryFunc(0)

	assert.False(t, m.ContainsKey(nil))
	assert.False(t, m.ContainsValue(nil))

	assert.Nil(t, put(t, m, nil, "valueForNilKey"))
	assert.Equal(t, "valueForNilKey", m.Get(nil))
	assert.True(t, m.ContainsKey(nil))
	assert.Equal(t, "valueForNilKey", put(t, m, nil, "anotherValueForNilKey"))
	assert.Equal(t, 1, m.Len())

	assert.Nil(t, put(t, m, "keyWithNilValue", nil))
	assert.Nil(t, m.Get("keyWithNilValue"))
	assert.True(t, m.ContainsKey("keyWithNilValue"))
	assert.True(t, m.ContainsValue(nil))
	value, ok := m.Lookup("keyWithNilValue")
	assert.True(t, ok)
	assert.Nil(t, value)
	_, ok = m.Lookup("missingKey")
	assert.False(t, ok)
	assert.Equal(t, 2, m.Len())

	assert.Equal(t, "anotherValueForNilKey", m.Remove(nil))
	assert.False(t, m.ContainsKey(nil))
	assert.Nil(t, m.Remove("keyWithNilValue"))
	assert.False(t, m.ContainsKey("keyWithNilValue"))
	assert.Equal(t, 0, m.Len())

	checkConsistency(t, m)
}

func randomKey(rng *rand.Rand) I.Key {
	if rng.Intn(2) == 0 {
		return rng.Intn(500)
	}
	return fmt.Sprintf("key_%d", rng.Intn(500))
}

// DoTestRandomOperations applies the same random operations to the map and
// to a reference implementation and expects the same results from both.
func DoTestRandomOperations(t *testing.T, factoryFunc, referenceFactoryFunc mapFactoryFunc, seed int64) {
	m := factoryFunc(0)
	reference := referenceFactoryFunc(0)
	rng := rand.New(rand.NewSource(seed))

	for i := 0; i < randomOperationsAmount; i++ {
		key := randomKey(rng)
		switch op := rng.Intn(10); {
		case op < 5:
			value := fmt.Sprintf("value_%d", rng.Intn(1000))
			require.Equal(t, put(t, reference, key, value), put(t, m, key, value), "Put(%v)", key)
		case op < 8:
			require.Equal(t, reference.Remove(key), m.Remove(key), "Remove(%v)", key)
		default:
			require.Equal(t, reference.Get(key), m.Get(key), "Get(%v)", key)
			require.Equal(t, reference.ContainsKey(key), m.ContainsKey(key), "ContainsKey(%v)", key)
		}
		require.Equal(t, reference.Len(), m.Len())
	}

	reference.Range(func(key I.Key, value interface{}) bool {
		assert.True(t, m.ContainsKey(key))
		assert.True(t, m.ContainsValue(value))
		return true
	})
	if diff := cmp.Diff(reference.ToSTDMap(), m.ToSTDMap()); diff != "" {
		t.Errorf("ToSTDMap() mismatch (-reference +map):\n%s", diff)
	}
	checkConsistency(t, m)

	m.Clear()
	assert.Equal(t, 0, m.Len())
}

func DoTestCollisions(t *testing.T, factoryFunc mapFactoryFunc) {
	m := factoryFunc(16 * collisionCheckIterations)
	keys := generateKeys(collisionCheckIterations/2, "int")
	keys = append(keys, generateKeys(collisionCheckIterations/2, "string")...)

	collisions := 0
	for _, key := range keys {
		if m.(interface{ HasCollisionWithKey(I.Key) bool }).HasCollisionWithKey(key) {
			collisions++
		}
		put(t, m, key, true)
	}

	t.Logf("Total collisions: %v/%v; capacity %v (%.1f%%)", collisions, len(keys), 16*collisionCheckIterations, float32(collisions)*100/float32(len(keys)))
	checkConsistency(t, m)
}

func tryHashCollisions(h I.Hasher, capacity uint64, keys []interface{}) int {
	alreadyIsSet := map[uint64]bool{}

	collisions := 0
	for _, key := range keys {
		idx := h.Index(h.HashCode(key), capacity)
		if alreadyIsSet[idx] {
			collisions++
		}
		alreadyIsSet[idx] = true
	}

	return collisions
}

func DoTestHashCollisions(t *testing.T, h I.Hasher, capacity uint64, keyAmount uint64) {
	keys := generateKeys(keyAmount/2, "int")
	keys = append(keys, generateKeys(keyAmount/2, "string")...)

	collisions := tryHashCollisions(h, capacity, keys)
	t.Logf("Total collisions on random keys: keyAmount %v, capacity %v: %v (%.1f%%)", keyAmount, capacity, collisions, float32(collisions)*100/float32(keyAmount))

	keys = []interface{}{}
	for i := uint64(0); i < keyAmount; i++ {
		keys = append(keys, i*capacity*63)
	}

	collisions = tryHashCollisions(h, capacity, keys)
	t.Logf("Total collisions on keys of pessimistic scenario (keys are multiple of capacity): keyAmount %v, capacity %v: %v (%.1f%%)", keyAmount, capacity, collisions, float32(collisions)*100/float32(keyAmount))

	keys = []interface{}{}
	for i := uint64(0); i < keyAmount; i++ {
		keys = append(keys, i)
	}

	collisions = tryHashCollisions(h, capacity, keys)
	t.Logf("Total collisions on consecutive keys: keyAmount %v, capacity %v: %v (%.1f%%)", keyAmount, capacity, collisions, float32(collisions)*100/float32(keyAmount))
	if keyAmount <= capacity && capacity <= 1<<16 {
		assert.Zero(t, collisions, "consecutive keys are expected to fill distinct buckets")
	}
}
