package hasher

import (
	"bytes"
	"reflect"

	I "github.com/xaionaro-go/chainmap/interfaces"
)

// IsEqualKey reports whether two keys are the same map key.
//
// nil is equal only to nil. Keys of different dynamic types are never equal
// (int(1) and int64(1) are different keys). A key implementing
// I.HashableKey decides on its own.
func IsEqualKey(keyA, keyB I.Key) bool {
	if keyA == nil || keyB == nil {
		return keyA == nil && keyB == nil
	}
	if hashable, ok := keyA.(I.HashableKey); ok {
		return hashable.Equals(keyB)
	}
	return isEqual(keyA, keyB)
}

// IsEqualValue reports whether two stored values are equal. nil is equal
// only to nil.
func IsEqualValue(valueA, valueB interface{}) bool {
	if valueA == nil || valueB == nil {
		return valueA == nil && valueB == nil
	}
	return isEqual(valueA, valueB)
}

func isEqual(a, b interface{}) bool {
	switch a := a.(type) {
	case string:
		b, ok := b.(string)
		return ok && a == b
	case int:
		b, ok := b.(int)
		return ok && a == b
	case int64:
		b, ok := b.(int64)
		return ok && a == b
	case uint64:
		b, ok := b.(uint64)
		return ok && a == b
	case []byte:
		b, ok := b.([]byte)
		return ok && bytes.Equal(a, b)
	}

	typeA := reflect.TypeOf(a)
	if typeA != reflect.TypeOf(b) {
		return false
	}
	switch typeA.Kind() {
	case reflect.Slice, reflect.Map, reflect.Func:
		return reflect.DeepEqual(a, b)
	}
	if !typeA.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}
