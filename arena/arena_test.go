package arena

import (
	"errors"
	"testing"
	"unsafe"
)

func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("Expected panic with %v, got none", target)
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, target) {
			t.Fatalf("Expected panic with %v, got %v", target, r)
		}
	}()
	fn()
}

func TestRegionExactCapacity(t *testing.T) {
	r := NewRegion(64)
	b := r.Alloc(64, 1)
	if len(b) != 64 {
		t.Fatalf("Expected 64 bytes, got %d", len(b))
	}
	if r.Available() != 0 {
		t.Errorf("Expected 0 available, got %d", r.Available())
	}
	expectPanic(t, ErrOutOfMemory, func() { r.Alloc(1, 1) })
}

func TestRegionExactCapacityDefaultAlign(t *testing.T) {
	for _, size := range []int{1, 31, 32, 48, 100, 4096} {
		for i := 0; i < 50; i++ {
			r := NewRegion(size)
			if b := r.Alloc(size, 0); len(b) != size {
				t.Fatalf("Expected %d bytes, got %d", size, len(b))
			}
			if r.Available() != 0 {
				t.Fatalf("Expected 0 available for size %d, got %d", size, r.Available())
			}
		}
	}
	r := NewRegion(48)
	r.Alloc(48, 0)
	expectPanic(t, ErrOutOfMemory, func() { r.Alloc(1, 0) })
}

func TestRegionOverflowByOne(t *testing.T) {
	r := NewRegion(64)
	expectPanic(t, ErrOutOfMemory, func() { r.Alloc(65, 1) })
}

func TestRegionAlignment(t *testing.T) {
	r := NewRegion(256)
	r.Alloc(3, 1)
	b := r.Alloc(8, 0)
	addr := uintptr(unsafe.Pointer(&b[0]))
	if addr%DefaultAlign != 0 {
		t.Errorf("Expected %d-byte aligned address, got %#x", DefaultAlign, addr)
	}
	expectPanic(t, ErrBadAlign, func() { r.Alloc(1, 3) })
}

func TestRegionZeroesOnAlloc(t *testing.T) {
	r := NewRegion(64)
	cp := r.Checkpoint()
	b := r.Alloc(16, 1)
	for i := range b {
		b[i] = 0xff
	}
	r.Restore(cp)
	b = r.Alloc(16, 1)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("Expected zeroed byte at %d, got %#x", i, v)
		}
	}
}

func TestCheckpointReuse(t *testing.T) {
	r := NewRegion(1024)
	r.Alloc(10, 1)
	cp := r.Checkpoint()
	first := r.Alloc(32, 1)
	r.Alloc(64, 1)
	r.Alloc(128, 1)

	r.Restore(cp)
	again := r.Alloc(8, 1)
	if &first[0] != &again[0] {
		t.Error("Expected allocation after restore to reuse the first dead offset")
	}
	if r.Used() != 18 {
		t.Errorf("Expected 18 bytes used, got %d", r.Used())
	}
	if r.Peak() != 234 {
		t.Errorf("Expected peak 234, got %d", r.Peak())
	}
}

func TestRestoreForwardPanics(t *testing.T) {
	r := NewRegion(128)
	r.Alloc(64, 1)
	cp := r.Checkpoint()
	r.Reset()
	expectPanic(t, ErrInvalidCheckpoint, func() { r.Restore(cp) })
}

func TestSpanStaleness(t *testing.T) {
	r := NewRegion(256)
	old := r.AllocSpan(16, 1)
	cp := r.Checkpoint()
	fresh := r.AllocSpan(16, 1)

	if _, ok := r.Bytes(fresh); !ok {
		t.Fatal("Expected fresh span valid before restore")
	}
	r.Restore(cp)
	if _, ok := r.Bytes(fresh); ok {
		t.Error("Expected span after checkpoint to be stale")
	}
	if b, ok := r.Bytes(old); !ok || len(b) != 16 {
		t.Error("Expected span before checkpoint to survive restore")
	}

	// Same offset handed out again must not revive the old handle
	r.AllocSpan(16, 1)
	if _, ok := r.Bytes(fresh); ok {
		t.Error("Expected reused span to stay stale")
	}
}

func TestCarve(t *testing.T) {
	r := NewRegion(1024)
	a := r.Carve(256)
	if a.Cap() != 256 {
		t.Errorf("Expected carved cap 256, got %d", a.Cap())
	}
	rest := r.CarveRemaining()
	if r.Available() != 0 {
		t.Errorf("Expected parent exhausted, got %d available", r.Available())
	}
	if rest.Cap() == 0 {
		t.Error("Expected remaining sub-region to be non-empty")
	}
}

type point struct{ X, Y float64 }

func TestTypedAlloc(t *testing.T) {
	r := NewRegion(1024)
	p := New[point](r)
	p.X = 3
	if p.Y != 0 {
		t.Errorf("Expected zeroed Y, got %v", p.Y)
	}
	s := MakeSlice[point](r, 8)
	if len(s) != 8 {
		t.Fatalf("Expected 8 elements, got %d", len(s))
	}
	if MakeSlice[point](r, 0) != nil {
		t.Error("Expected nil slice for zero count")
	}
}

func TestStackUnderflowOverflow(t *testing.T) {
	var s Stack
	expectPanic(t, ErrContextUnderflow, func() { s.Pop() })
	expectPanic(t, ErrContextUnderflow, func() { s.Current() })

	for i := 0; i < MaxContextDepth; i++ {
		s.Push(Context{})
	}
	expectPanic(t, ErrContextOverflow, func() { s.Push(Context{}) })
}

func TestStackImplicitAllocation(t *testing.T) {
	var s Stack
	perm := NewRegion(512)
	scratch := NewRegion(512)

	s.With(Context{Allocator: perm, Scratch: scratch}, func() {
		s.Alloc(16, 1)
		TempSlice[point](&s, 4)
	})
	if perm.Used() != 16 {
		t.Errorf("Expected 16 bytes from permanent, got %d", perm.Used())
	}
	if scratch.Used() == 0 {
		t.Error("Expected scratch allocation")
	}
	if s.Depth() != 0 {
		t.Errorf("Expected empty stack after With, got depth %d", s.Depth())
	}

	s.Push(Context{Scratch: scratch})
	expectPanic(t, ErrNoContext, func() { s.Alloc(1, 1) })
}

func TestWithPopsOnPanic(t *testing.T) {
	var s Stack
	func() {
		defer func() { recover() }()
		s.With(Context{}, func() { panic("boom") })
	}()
	if s.Depth() != 0 {
		t.Errorf("Expected depth 0 after panic, got %d", s.Depth())
	}
}

func TestScopeOrder(t *testing.T) {
	var s Stack
	outer := s.Enter(Context{})
	inner := s.Enter(Context{})
	expectPanic(t, ErrUnbalancedScope, func() { outer.Exit() })
	inner.Exit()
	outer.Exit()
	if s.Depth() != 0 {
		t.Errorf("Expected depth 0, got %d", s.Depth())
	}
}

func TestDeriveOverridesScratch(t *testing.T) {
	var s Stack
	perm := NewRegion(64)
	s.Push(Context{Allocator: perm})
	ctx := s.Derive()
	ctx.Scratch = NewRegion(64)
	s.Push(ctx)
	if s.Current().Allocator != Allocator(perm) {
		t.Error("Expected derived context to keep allocator")
	}
}

func TestBufferGrowth(t *testing.T) {
	r := NewRegion(4096)
	b := NewBuffer[int64](r, 2)
	for i := int64(0); i < 5; i++ {
		b.Push(i)
	}
	if b.Len() != 5 {
		t.Fatalf("Expected len 5, got %d", b.Len())
	}
	if b.Cap() != 8 {
		t.Errorf("Expected cap 8 after two doublings, got %d", b.Cap())
	}
	for i, v := range b.Items() {
		if v != int64(i) {
			t.Errorf("Expected %d at %d, got %d", i, i, v)
		}
	}
	if b.SizeInBytes() != 40 {
		t.Errorf("Expected 40 bytes, got %d", b.SizeInBytes())
	}

	base := uintptr(unsafe.Pointer(&r.buf[0]))
	addr := uintptr(unsafe.Pointer(b.At(0)))
	if addr < base || addr >= base+uintptr(r.Cap()) {
		t.Error("Expected grown storage inside the same region")
	}

	b.Reset()
	if b.Len() != 0 || b.Cap() != 8 {
		t.Errorf("Expected empty buffer keeping cap 8, got len %d cap %d", b.Len(), b.Cap())
	}
}

func TestBufferFromZeroCapacity(t *testing.T) {
	r := NewRegion(256)
	b := NewBuffer[point](r, 0)
	p := b.Push(point{X: 1})
	if p.X != 1 || b.Cap() != 1 {
		t.Errorf("Expected one element of cap 1, got cap %d", b.Cap())
	}
}

func TestMetrics(t *testing.T) {
	r := NewRegion(100)
	r.Alloc(50, 1)
	r.Reset()
	m := r.Metrics()
	if m.Peak != 50 || m.Used != 0 || m.Restores != 1 {
		t.Errorf("Expected peak 50 used 0 restores 1, got %+v", m)
	}
	if m.Utilization() != 0.5 {
		t.Errorf("Expected utilization 0.5, got %v", m.Utilization())
	}
}
