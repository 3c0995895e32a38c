// Package arena implements region (bump pointer) memory with checkpoints,
// an explicit stack of allocation contexts, and allocator-bound growable buffers.
//
// Regions never free individual objects: memory is reclaimed only by restoring
// a checkpoint, which logically kills everything allocated after it. Typed
// helpers place Go values inside region memory, so the element types must not
// contain pointers (slices, maps, strings, interfaces) because the garbage
// collector does not scan region bytes.
package arena

import (
	"errors"
	"fmt"
	"unsafe"
)

// DefaultAlign is applied when a caller passes align <= 0
const DefaultAlign = 32

var (
	// ErrOutOfMemory is raised when an allocation would pass the region capacity
	ErrOutOfMemory = errors.New("arena: out of memory")
	// ErrInvalidCheckpoint is raised when restoring forward past the current mark
	ErrInvalidCheckpoint = errors.New("arena: invalid checkpoint")
	// ErrBadAlign is raised for alignments that are not powers of two
	ErrBadAlign = errors.New("arena: alignment must be a power of two")
)

// Region is a bump allocator over one contiguous byte block
type Region struct {
	buf  []byte
	mark int
	peak int

	// gen counts restores; stable is the lowest mark any restore has set,
	// spans from older generations ending at or below it are still intact
	gen    uint64
	stable int
}

// Checkpoint is a saved allocation offset
type Checkpoint struct {
	mark int
}

// Span is a generation-tagged handle to bytes inside a region
type Span struct {
	off, n int
	gen    uint64
}

// Len returns the span size in bytes
func (s Span) Len() int { return s.n }

// NewRegion claims capacity bytes from the Go heap
// The block starts on a DefaultAlign boundary, so default-aligned
// allocations can use the full capacity
func NewRegion(capacity int) *Region {
	if capacity < 0 {
		capacity = 0
	}
	buf := make([]byte, capacity+DefaultAlign-1)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	off := int((base+DefaultAlign-1)&^(DefaultAlign-1) - base)
	return RegionFrom(buf[off : off+capacity : off+capacity])
}

// RegionFrom wraps a caller-owned block; the caller keeps it reachable
// Padding for alignment is taken from the block when it is not itself aligned
func RegionFrom(buf []byte) *Region {
	return &Region{buf: buf, stable: len(buf)}
}

// Alloc returns size zeroed bytes aligned to align (DefaultAlign when <= 0)
// Alignment is applied to the real address. Overflow panics with ErrOutOfMemory
func (r *Region) Alloc(size, align int) []byte {
	off := r.alignedOffset(align)
	if size < 0 || off+size > len(r.buf) {
		panic(fmt.Errorf("%w: %d bytes at offset %d, capacity %d", ErrOutOfMemory, size, off, len(r.buf)))
	}
	end := off + size
	b := r.buf[off:end:end]
	clear(b)
	r.mark = end
	if end > r.peak {
		r.peak = end
	}
	return b
}

// AllocSpan allocates like Alloc and returns a checked handle instead of a slice
func (r *Region) AllocSpan(size, align int) Span {
	b := r.Alloc(size, align)
	return Span{off: r.mark - len(b), n: len(b), gen: r.gen}
}

// Bytes resolves a span, false if a restore has invalidated it
// Validation is conservative: it may reject an intact span from an older
// generation, it never accepts memory that was handed out again
func (r *Region) Bytes(s Span) ([]byte, bool) {
	end := s.off + s.n
	if end > r.mark {
		return nil, false
	}
	if s.gen != r.gen && end > r.stable {
		return nil, false
	}
	return r.buf[s.off:end:end], true
}

// Carve claims size bytes and returns them as an independent sub-region
func (r *Region) Carve(size int) *Region {
	return RegionFrom(r.Alloc(size, DefaultAlign))
}

// CarveRemaining hands everything left after alignment to a sub-region
func (r *Region) CarveRemaining() *Region {
	off := r.alignedOffset(DefaultAlign)
	if off > len(r.buf) {
		off = len(r.buf)
	}
	return r.Carve(len(r.buf) - off)
}

// Checkpoint saves the current offset
func (r *Region) Checkpoint() Checkpoint {
	return Checkpoint{mark: r.mark}
}

// Restore rewinds to cp; everything allocated after cp is dead
// Restoring forward panics with ErrInvalidCheckpoint
func (r *Region) Restore(cp Checkpoint) {
	if cp.mark > r.mark || cp.mark < 0 {
		panic(fmt.Errorf("%w: checkpoint %d, mark %d", ErrInvalidCheckpoint, cp.mark, r.mark))
	}
	if cp.mark == r.mark {
		return
	}
	r.mark = cp.mark
	r.gen++
	if cp.mark < r.stable {
		r.stable = cp.mark
	}
}

// Reset rewinds to the start of the region
func (r *Region) Reset() {
	r.Restore(Checkpoint{})
}

// Used returns bytes consumed including alignment padding
func (r *Region) Used() int { return r.mark }

// Cap returns total capacity in bytes
func (r *Region) Cap() int { return len(r.buf) }

// Available returns bytes left before alignment
func (r *Region) Available() int { return len(r.buf) - r.mark }

// Peak returns the high-water mark, kept across restores
func (r *Region) Peak() int { return r.peak }

func (r *Region) alignedOffset(align int) int {
	if align <= 0 {
		align = DefaultAlign
	}
	if align&(align-1) != 0 {
		panic(fmt.Errorf("%w: %d", ErrBadAlign, align))
	}
	if len(r.buf) == 0 {
		return r.mark
	}
	base := uintptr(unsafe.Pointer(unsafe.SliceData(r.buf)))
	addr := base + uintptr(r.mark)
	mask := uintptr(align - 1)
	aligned := (addr + mask) &^ mask
	return int(aligned - base)
}
