package arena

import "unsafe"

// Buffer is a growable array whose storage comes from one allocator
// Growth allocates a new block from the same allocator and copies; the old
// block stays dead in the region until the owning checkpoint is restored
type Buffer[T any] struct {
	alloc Allocator
	items []T
}

// NewBuffer binds a buffer to a, reserving capacity elements up front
func NewBuffer[T any](a Allocator, capacity int) Buffer[T] {
	return Buffer[T]{alloc: a, items: MakeSlice[T](a, capacity)[:0]}
}

// NewBufferIn binds to the stack's current allocator at creation time
func NewBufferIn[T any](s *Stack, capacity int) Buffer[T] {
	return NewBuffer[T](s.allocator(), capacity)
}

// Push appends item and returns a pointer to the stored copy
// The pointer is invalidated by the next growth
func (b *Buffer[T]) Push(item T) *T {
	if len(b.items) == cap(b.items) {
		b.grow(len(b.items) + 1)
	}
	b.items = append(b.items, item)
	return &b.items[len(b.items)-1]
}

// Append pushes several items with at most one growth
func (b *Buffer[T]) Append(items ...T) {
	if need := len(b.items) + len(items); need > cap(b.items) {
		b.grow(need)
	}
	b.items = append(b.items, items...)
}

func (b *Buffer[T]) grow(need int) {
	if b.alloc == nil {
		panic(ErrNoContext)
	}
	n := max(2*cap(b.items), need, 1)
	next := MakeSlice[T](b.alloc, n)[:len(b.items)]
	copy(next, b.items)
	b.items = next
}

// Len returns the element count
func (b *Buffer[T]) Len() int { return len(b.items) }

// Cap returns the reserved element count
func (b *Buffer[T]) Cap() int { return cap(b.items) }

// SizeInBytes returns the bytes occupied by live elements
func (b *Buffer[T]) SizeInBytes() int {
	var zero T
	return len(b.items) * int(unsafe.Sizeof(zero))
}

// Items returns the live elements; valid until the next growth
func (b *Buffer[T]) Items() []T { return b.items }

// At returns a pointer to element i
func (b *Buffer[T]) At(i int) *T { return &b.items[i] }

// Reset drops all elements and keeps the storage
func (b *Buffer[T]) Reset() { b.items = b.items[:0] }
