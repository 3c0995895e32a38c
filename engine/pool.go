package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/asteroids/arena"
	"github.com/lixenwraith/asteroids/vmath"
)

// ErrPoolFull is raised when Add finds no free dense index
var ErrPoolFull = errors.New("engine: entity pool full")

// Handle identifies an entity across swap-removes of other entities
// The zero Handle is the null sentinel and never resolves
type Handle struct {
	Index uint32 // slot
	Gen   uint32
}

// IsNil reports whether h is the null handle
func (h Handle) IsNil() bool { return h.Index == 0 }

type slot struct {
	dense uint32
	gen   uint32
}

// Pool is a generation-counted slot map over a dense swap-remove array
// Dense index 0 and slot 0 hold the null sentinel. Iterate live entities
// with At(i) for i in [1, Count())
type Pool struct {
	dense []Entity
	slots []slot
	free  []uint32

	count    int // dense entries including sentinel
	freeN    int
	nextSlot uint32
}

// NewPool allocates all storage once from a; capacity includes the sentinel
func NewPool(a arena.Allocator, capacity int) *Pool {
	if capacity < 2 {
		panic(fmt.Errorf("%w: capacity %d leaves no room past the sentinel", ErrPoolFull, capacity))
	}
	p := &Pool{
		dense: arena.MakeSlice[Entity](a, capacity),
		slots: arena.MakeSlice[slot](a, capacity),
		free:  arena.MakeSlice[uint32](a, capacity),
	}
	p.Reset()
	return p
}

// Add claims a dense index and a slot for a new entity of kind
func (p *Pool) Add(kind Kind) (Handle, *Entity) {
	if p.count == len(p.dense) {
		panic(fmt.Errorf("%w: capacity %d", ErrPoolFull, len(p.dense)))
	}

	var s uint32
	if p.freeN > 0 {
		p.freeN--
		s = p.free[p.freeN]
	} else {
		s = p.nextSlot
		p.nextSlot++
	}

	i := p.count
	p.count++
	p.dense[i] = Entity{
		Exists: true,
		Kind:   kind,
		T:      vmath.DefaultTransform(),
		slot:   s,
	}
	p.slots[s].dense = uint32(i)
	return Handle{Index: s, Gen: p.slots[s].gen}, &p.dense[i]
}

// Duplicate adds a copy of the entity behind h, nil if h is stale
func (p *Pool) Duplicate(h Handle) (Handle, *Entity) {
	src := p.Get(h)
	if src == nil {
		return Handle{}, nil
	}
	nh, e := p.Add(src.Kind)
	s := e.slot
	*e = *src
	e.slot = s
	return nh, e
}

// Get resolves h, nil when stale or removed
func (p *Pool) Get(h Handle) *Entity {
	i, ok := p.Index(h)
	if !ok {
		return nil
	}
	return &p.dense[i]
}

// Index resolves h to its current dense index
func (p *Pool) Index(h Handle) (int, bool) {
	if h.Index == 0 || h.Index >= p.nextSlot {
		return 0, false
	}
	s := p.slots[h.Index]
	if s.gen != h.Gen || int(s.dense) >= p.count {
		return 0, false
	}
	e := &p.dense[s.dense]
	if !e.Exists || e.slot != h.Index {
		return 0, false
	}
	return int(s.dense), true
}

// Remove swap-removes the entity behind h; false if h is stale
func (p *Pool) Remove(h Handle) bool {
	i, ok := p.Index(h)
	if !ok {
		return false
	}
	return p.RemoveAt(i)
}

// RemoveAt swap-removes dense index i: the last live entity moves into i
func (p *Pool) RemoveAt(i int) bool {
	if i <= 0 || i >= p.count {
		return false
	}
	s := p.dense[i].slot
	p.slots[s].gen++
	p.free[p.freeN] = s
	p.freeN++

	last := p.count - 1
	if i != last {
		p.dense[i] = p.dense[last]
		p.slots[p.dense[i].slot].dense = uint32(i)
	}
	p.dense[last] = Entity{}
	p.count--
	return true
}

// HandleAt returns the handle of the entity at dense index i
func (p *Pool) HandleAt(i int) Handle {
	if i <= 0 || i >= p.count {
		return Handle{}
	}
	s := p.dense[i].slot
	return Handle{Index: s, Gen: p.slots[s].gen}
}

// At returns the entity at dense index i; index 0 is the sentinel
func (p *Pool) At(i int) *Entity { return &p.dense[i] }

// Count returns dense entries including the sentinel
func (p *Pool) Count() int { return p.count }

// Live returns the number of real entities
func (p *Pool) Live() int { return p.count - 1 }

// Free returns how many more entities fit
func (p *Pool) Free() int { return len(p.dense) - p.count }

// Cap returns the capacity including the sentinel
func (p *Pool) Cap() int { return len(p.dense) }

// Reset drops every entity; outstanding handles become stale
func (p *Pool) Reset() {
	for s := uint32(1); s < p.nextSlot; s++ {
		p.slots[s].gen++
	}
	clear(p.dense[:p.count])
	p.count = 1
	p.freeN = 0
	p.nextSlot = 1
}
