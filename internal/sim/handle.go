package sim

import "fmt"

// EntityID is a generation-tagged handle: the low 32 bits index a slot,
// the high 32 bits carry the slot's generation. Removing an entity bumps the
// generation so old handles (a projectile's owner after the owner is gone)
// stop resolving instead of pointing at a newcomer. The zero value means
// "no entity".
type EntityID uint64

// NoEntity is the zero handle.
const NoEntity EntityID = 0

func newEntityID(index, generation uint32) EntityID {
	return EntityID(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index.
func (id EntityID) Index() uint32 { return uint32(id) }

// Generation returns the slot generation.
func (id EntityID) Generation() uint32 { return uint32(id >> 32) }

// IsZero reports whether the handle is NoEntity.
func (id EntityID) IsZero() bool { return id == NoEntity }

func (id EntityID) String() string {
	if id.IsZero() {
		return "none"
	}
	return fmt.Sprintf("%d:%d", id.Index(), id.Generation())
}

// handlePool allocates entity handles with generational indices and a free
// list. Generations start at 1 so no live handle equals NoEntity.
type handlePool struct {
	generations []uint32
	freeList    []uint32
}

func newHandlePool() *handlePool {
	return &handlePool{
		generations: make([]uint32, 0, 64),
		freeList:    make([]uint32, 0, 16),
	}
}

func (p *handlePool) create() EntityID {
	if n := len(p.freeList); n > 0 {
		idx := p.freeList[n-1]
		p.freeList = p.freeList[:n-1]
		return newEntityID(idx, p.generations[idx])
	}
	idx := uint32(len(p.generations))
	p.generations = append(p.generations, 1)
	return newEntityID(idx, 1)
}

func (p *handlePool) alive(id EntityID) bool {
	idx := id.Index()
	if id.IsZero() || int(idx) >= len(p.generations) {
		return false
	}
	return p.generations[idx] == id.Generation()
}

func (p *handlePool) release(id EntityID) {
	if !p.alive(id) {
		return // stale or already released
	}
	idx := id.Index()
	p.generations[idx]++
	p.freeList = append(p.freeList, idx)
}
