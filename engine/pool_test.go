package engine

import (
	"errors"
	"testing"

	"github.com/lixenwraith/asteroids/arena"
)

func newTestPool(capacity int) *Pool {
	return NewPool(arena.NewRegion(1<<20), capacity)
}

func TestPoolSentinel(t *testing.T) {
	p := newTestPool(8)
	if p.Count() != 1 || p.Live() != 0 {
		t.Fatalf("Expected count 1 live 0, got %d/%d", p.Count(), p.Live())
	}
	if p.Get(Handle{}) != nil {
		t.Error("Expected null handle to resolve to nil")
	}
	if p.RemoveAt(0) {
		t.Error("Expected sentinel removal to fail")
	}
}

func TestPoolAddDefaults(t *testing.T) {
	p := newTestPool(8)
	h, e := p.Add(KindAsteroid)
	if h.IsNil() {
		t.Fatal("Expected non-nil handle")
	}
	if !e.Exists || e.Kind != KindAsteroid {
		t.Errorf("Expected existing asteroid, got exists=%v kind=%s", e.Exists, e.Kind)
	}
	if e.T.Scale.X != 1 || e.T.Scale.Y != 1 {
		t.Errorf("Expected unit scale, got %v", e.T.Scale)
	}
	if p.Get(h) != e {
		t.Error("Expected Get to return the added entity")
	}
}

func TestPoolSwapRemove(t *testing.T) {
	p := newTestPool(8)
	a, _ := p.Add(KindPlayer)
	b, _ := p.Add(KindBullet)
	c, _ := p.Add(KindAsteroid)

	if !p.Remove(a) {
		t.Fatal("Expected remove to succeed")
	}
	if p.Count() != 3 {
		t.Errorf("Expected count 3, got %d", p.Count())
	}
	if p.At(1).Kind != KindAsteroid {
		t.Errorf("Expected last entity moved into index 1, got %s", p.At(1).Kind)
	}
	if i, ok := p.Index(c); !ok || i != 1 {
		t.Errorf("Expected moved handle at index 1, got %d/%v", i, ok)
	}
	if e := p.Get(b); e == nil || e.Kind != KindBullet {
		t.Error("Expected untouched handle to stay valid")
	}
	if p.Get(a) != nil {
		t.Error("Expected removed handle to be stale")
	}
	if p.Remove(a) {
		t.Error("Expected second remove to fail")
	}
}

func TestPoolSlotReuse(t *testing.T) {
	p := newTestPool(8)
	a, _ := p.Add(KindAsteroid)
	p.Remove(a)
	d, _ := p.Add(KindBullet)

	if d.Index != a.Index {
		t.Errorf("Expected slot %d reused, got %d", a.Index, d.Index)
	}
	if d.Gen == a.Gen {
		t.Error("Expected generation to advance on reuse")
	}
	if p.Get(a) != nil {
		t.Error("Expected old handle stale after slot reuse")
	}
	if e := p.Get(d); e == nil || e.Kind != KindBullet {
		t.Error("Expected new handle valid")
	}
}

func TestPoolHandleAt(t *testing.T) {
	p := newTestPool(8)
	p.Add(KindPlayer)
	h, _ := p.Add(KindAsteroid)
	if p.HandleAt(2) != h {
		t.Errorf("Expected HandleAt(2) == %v, got %v", h, p.HandleAt(2))
	}
	if !p.HandleAt(0).IsNil() || !p.HandleAt(5).IsNil() {
		t.Error("Expected out-of-range HandleAt to be nil")
	}
}

func TestPoolFull(t *testing.T) {
	p := newTestPool(3)
	p.Add(KindAsteroid)
	p.Add(KindAsteroid)
	if p.Free() != 0 {
		t.Fatalf("Expected pool full, got %d free", p.Free())
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrPoolFull) {
			t.Errorf("Expected ErrPoolFull panic, got %v", r)
		}
	}()
	p.Add(KindAsteroid)
}

func TestPoolDuplicate(t *testing.T) {
	p := newTestPool(8)
	h, e := p.Add(KindAsteroid)
	e.Asteroid.Scale = 2.5
	e.T.P.X = 3

	dh, d := p.Duplicate(h)
	if dh == h {
		t.Fatal("Expected distinct handle for duplicate")
	}
	if d.Asteroid.Scale != 2.5 || d.T.P.X != 3 {
		t.Errorf("Expected copied payload, got %+v", d.Asteroid)
	}
	if i, ok := p.Index(dh); !ok || p.At(i) != d {
		t.Error("Expected duplicate to resolve through its own slot")
	}
	p.Remove(h)
	if p.Get(dh) == nil {
		t.Error("Expected duplicate to survive removal of its source")
	}
}

func TestPoolReset(t *testing.T) {
	p := newTestPool(8)
	h, _ := p.Add(KindPlayer)
	p.Add(KindAsteroid)
	p.Reset()
	if p.Live() != 0 {
		t.Errorf("Expected empty pool, got %d", p.Live())
	}
	if p.Get(h) != nil {
		t.Error("Expected handle stale after reset")
	}
	nh, _ := p.Add(KindPlayer)
	if nh == h {
		t.Error("Expected reissued slot to carry a new generation")
	}
}

func TestPayloadAccessors(t *testing.T) {
	p := newTestPool(4)
	_, e := p.Add(KindBullet)
	if e.AsBullet() == nil {
		t.Error("Expected bullet payload")
	}
	if e.AsPlayer() != nil || e.AsAsteroid() != nil {
		t.Error("Expected nil payloads for other kinds")
	}
	if KindAsteroid.String() != "asteroid" {
		t.Errorf("Expected asteroid, got %s", KindAsteroid.String())
	}
}
