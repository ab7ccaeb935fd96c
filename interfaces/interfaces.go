package interfaces

// Key is any value usable as a map key, including nil.
type Key interface{}

// HashableKey may be implemented by key types that want to provide their own
// hash code and equality instead of the built-in ones.
//
// Hash64 must be stable for as long as the key is stored in a map, and equal
// keys must return equal hashes.
type HashableKey interface {
	Hash64() uint64
	Equals(other Key) bool
}

// Hasher computes native hash codes of keys and maps them onto bucket
// indexes.
type Hasher interface {
	HashCode(key Key) uint32
	Index(hashCode uint32, capacity uint64) uint64
	IsEqualKey(keyA, keyB Key) bool
	IsEqualValue(valueA, valueB interface{}) bool
}

// Iterator is a lazy restartable cursor over key/value pairs.
//
// Modifying the underlying map while iterating is undefined behavior.
type Iterator interface {
	Next() bool
	Key() Key
	Value() interface{}
	Reset()
}

// Enumerable is anything able to enumerate its key/value pairs in its own
// order. Returning false from fn stops the enumeration.
type Enumerable interface {
	Range(fn func(key Key, value interface{}) bool)
}

// Collection is a view over a map (keys, values or entries).
type Collection interface {
	Len() int
	Contains(item interface{}) bool
	Iter() Iterator
}

// Map is the contract shared by the chained map and the reference
// implementations it is tested and benchmarked against.
type Map interface {
	Enumerable

	Put(key Key, value interface{}) (previous interface{}, err error)
	Set(key Key, value interface{}) error
	Get(key Key) interface{}
	Lookup(key Key) (value interface{}, ok bool)
	ContainsKey(key Key) bool
	ContainsValue(value interface{}) bool
	Remove(key Key) interface{}
	Unset(key Key) error
	Len() int
	Clear()
	ToSTDMap() map[Key]interface{}
	FromSTDMap(map[Key]interface{}) error
}
