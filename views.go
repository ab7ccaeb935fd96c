package chainmap

import (
	I "github.com/xaionaro-go/chainmap/interfaces"
)

// KeySet is not implemented yet, use Keys, Range or Iter instead.
func (m *Map) KeySet() (I.Collection, error) {
	return nil, ErrNotImplemented
}

// Values is not implemented yet, use Range or Iter instead.
func (m *Map) Values() (I.Collection, error) {
	return nil, ErrNotImplemented
}

// EntrySet is not implemented yet, use Range or Iter instead.
func (m *Map) EntrySet() (I.Collection, error) {
	return nil, ErrNotImplemented
}
