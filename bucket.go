package chainmap

import (
	"github.com/xaionaro-go/chainmap/hasher"
)

type entry struct {
	key      Key
	hashCode uint32
	value    interface{}
	prev     *entry
	next     *entry
}

// bucket is the head of a doubly linked chain of entries whose keys map
// onto the same index. The head never has a prev link.
type bucket struct {
	head *entry
}

func (b *bucket) isEmpty() bool {
	return b.head == nil
}

func (b *bucket) find(hashCode uint32, key Key) *entry {
	for e := b.head; e != nil; e = e.next {
		if e.hashCode != hashCode {
			continue
		}
		if hasher.IsEqualKey(e.key, key) {
			return e
		}
	}
	return nil
}

// pushFront makes the entry the new head of the chain, the previous head
// (if any) becomes its successor.
func (b *bucket) pushFront(e *entry) {
	e.prev = nil
	e.next = b.head
	if b.head != nil {
		b.head.prev = e
	}
	b.head = e
}

func (b *bucket) unlink(e *entry) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		b.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	}
	e.prev = nil
	e.next = nil
}

func (b *bucket) len() int {
	count := 0
	for e := b.head; e != nil; e = e.next {
		count++
	}
	return count
}
