package arena

import "unsafe"

// Allocator hands out zeroed, aligned byte blocks
// *Region is the only implementation; the interface lets a context carry
// a different strategy without touching call sites
type Allocator interface {
	Alloc(size, align int) []byte
}

// New returns a zeroed *T placed in allocator memory
// T must be pointer-free
func New[T any](a Allocator) *T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return new(T)
	}
	b := a.Alloc(size, alignOf[T]())
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// MakeSlice returns n zeroed elements placed in allocator memory
// T must be pointer-free
func MakeSlice[T any](a Allocator, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return make([]T, n)
	}
	b := a.Alloc(size*n, alignOf[T]())
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n)
}

// MakeSliceIn resolves the allocator through the stack's current context
func MakeSliceIn[T any](s *Stack, n int) []T {
	return MakeSlice[T](s.allocator(), n)
}

// TempSlice allocates from the current context's scratch region
func TempSlice[T any](s *Stack, n int) []T {
	return MakeSlice[T](s.scratch(), n)
}

func alignOf[T any]() int {
	var zero T
	return max(DefaultAlign, int(unsafe.Alignof(zero)))
}
