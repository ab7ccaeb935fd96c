package hasher

import (
	"math"
	"reflect"

	"github.com/OneOfOne/xxhash"
	I "github.com/xaionaro-go/chainmap/interfaces"
)

const (
	nilHashCode   = 0
	trueHashCode  = 1231
	falseHashCode = 1237
)

func foldUint64(v uint64) uint32 {
	return uint32(v ^ (v >> 32))
}

func hashString(in string) uint32 {
	return foldUint64(xxhash.ChecksumString64(in))
}

func hashBytes(in []byte) uint32 {
	return foldUint64(xxhash.Checksum64(in))
}

func hashBool(in bool) uint32 {
	if in {
		return trueHashCode
	}
	return falseHashCode
}

// -0.0 == +0.0, so both must hash the same
func hashFloat32(in float32) uint32 {
	if in == 0 {
		return 0
	}
	return math.Float32bits(in)
}

func hashFloat64(in float64) uint32 {
	if in == 0 {
		return 0
	}
	return foldUint64(math.Float64bits(in))
}

// HashCode returns the native hash code of the key. It depends only on the
// content of the key, so equal keys always have equal hash codes.
func HashCode(keyI I.Key) uint32 {
	switch key := keyI.(type) {
	case nil:
		return nilHashCode
	case I.HashableKey:
		return foldUint64(key.Hash64())
	case string:
		return hashString(key)
	case []byte:
		return hashBytes(key)
	case bool:
		return hashBool(key)
	case int:
		return foldUint64(uint64(key))
	case uint:
		return foldUint64(uint64(key))
	case int8:
		return uint32(key)
	case uint8:
		return uint32(key)
	case int16:
		return uint32(key)
	case uint16:
		return uint32(key)
	case int32:
		return uint32(key)
	case uint32:
		return key
	case int64:
		return foldUint64(uint64(key))
	case uint64:
		return foldUint64(key)
	case uintptr:
		return foldUint64(uint64(key))
	case float32:
		return hashFloat32(key)
	case float64:
		return hashFloat64(key)
	case complex64:
		return 31*hashFloat32(real(key)) + hashFloat32(imag(key))
	case complex128:
		return 31*hashFloat64(real(key)) + hashFloat64(imag(key))
	default:
		return hashReflect(reflect.ValueOf(keyI))
	}
}

const maxReflectDepth = 16

// hashReflect handles named types and composite keys. isEqual compares
// comparable types with "==" and the rest with reflect.DeepEqual, which also
// compares pointed-to values; pointers are followed only in the latter case.
func hashReflect(v reflect.Value) uint32 {
	return hashValue(v, !v.Type().Comparable(), 0)
}

func hashValue(v reflect.Value, deep bool, depth int) uint32 {
	if depth > maxReflectDepth {
		return 0
	}

	switch v.Kind() {
	case reflect.Bool:
		return hashBool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return foldUint64(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return foldUint64(v.Uint())
	case reflect.Float32, reflect.Float64:
		return hashFloat64(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		return 31*hashFloat64(real(c)) + hashFloat64(imag(c))
	case reflect.String:
		return hashString(v.String())
	case reflect.Chan, reflect.UnsafePointer:
		return foldUint64(uint64(v.Pointer()))
	case reflect.Ptr:
		if !deep {
			return foldUint64(uint64(v.Pointer()))
		}
		if v.IsNil() {
			return 0
		}
		return hashValue(v.Elem(), deep, depth+1)
	case reflect.Interface:
		if v.IsNil() {
			return 0
		}
		return hashValue(v.Elem(), deep, depth+1)
	case reflect.Array, reflect.Slice:
		h := uint32(1)
		for i := 0; i < v.Len(); i++ {
			h = 31*h + hashValue(v.Index(i), deep, depth+1)
		}
		return h
	case reflect.Struct:
		h := uint32(1)
		for i := 0; i < v.NumField(); i++ {
			h = 31*h + hashValue(v.Field(i), deep, depth+1)
		}
		return h
	case reflect.Map:
		// the order of map entries is random, so their hashes are summed up
		h := uint32(0)
		iter := v.MapRange()
		for iter.Next() {
			h += hashValue(iter.Key(), false, depth+1) ^ hashValue(iter.Value(), deep, depth+1)
		}
		return h
	default:
		// funcs are DeepEqual only when both are nil
		return 0
	}
}

// Spread mixes the high half of the hash code into the low half, so that
// hash codes differing only in high bits do not end up in the same bucket
// of a small table.
func Spread(hashCode uint32) uint32 {
	return hashCode ^ (hashCode >> 16)
}

// Index maps a hash code onto a bucket of a table with the given capacity.
// The capacity is required to be a power of two.
func Index(hashCode uint32, capacity uint64) uint64 {
	return uint64(Spread(hashCode)) & (capacity - 1) // example 01000000 -> 00111111
}
