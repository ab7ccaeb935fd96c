package hasher

import (
	I "github.com/xaionaro-go/chainmap/interfaces"
)

type Hasher = I.Hasher

type hasher struct{}

func New() Hasher {
	return &hasher{}
}

func (h *hasher) HashCode(key I.Key) uint32 {
	return HashCode(key)
}
func (h *hasher) Index(hashCode uint32, capacity uint64) uint64 {
	return Index(hashCode, capacity)
}
func (h *hasher) IsEqualKey(keyA, keyB I.Key) bool {
	return IsEqualKey(keyA, keyB)
}
func (h *hasher) IsEqualValue(valueA, valueB interface{}) bool {
	return IsEqualValue(valueA, valueB)
}
