package rtfmerge

import (
	"fmt"
	"sort"
)

// registry is the ordered, index-addressable store of document handles
// for one merge session. It is deliberately sparse: removing an index
// leaves a gap rather than shifting later entries, and a gap is
// distinguishable from an index that was never set.
type registry struct {
	handles map[int]*handle
	removed map[int]bool
	next    int // next append index, one past the highest index ever set
}

func newRegistry() *registry {
	return &registry{
		handles: make(map[int]*handle),
		removed: make(map[int]bool),
	}
}

// add appends h after the highest index ever used and returns its index.
func (r *registry) add(h *handle) int {
	i := r.next
	r.set(i, h)
	return i
}

// set stores h at an explicit index, overwriting any handle already there.
func (r *registry) set(i int, h *handle) {
	r.handles[i] = h
	delete(r.removed, i)
	if i >= r.next {
		r.next = i + 1
	}
}

// get returns the handle at i. Negative, never-set, and removed indices
// all fail with ErrIndexOutOfRange; removed indices are called out so a
// gap left by remove is distinguishable from an index beyond the end.
func (r *registry) get(i int) (*handle, error) {
	if i < 0 {
		return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	if h, ok := r.handles[i]; ok {
		return h, nil
	}
	if r.removed[i] {
		return nil, fmt.Errorf("%w: %d (removed)", ErrIndexOutOfRange, i)
	}
	return nil, fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
}

// remove deletes the handle at i, leaving a gap. Absent indices are a
// no-op, not an error.
func (r *registry) remove(i int) {
	if _, ok := r.handles[i]; !ok {
		return
	}
	delete(r.handles, i)
	r.removed[i] = true
}

// count returns the number of occupied positions.
func (r *registry) count() int { return len(r.handles) }

// exists reports whether i currently holds a handle.
func (r *registry) exists(i int) bool {
	_, ok := r.handles[i]
	return ok
}

// indices returns the occupied indices in ascending order.
func (r *registry) indices() []int {
	idx := make([]int, 0, len(r.handles))
	for i := range r.handles {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// ordered returns the held handles in ascending index order.
func (r *registry) ordered() []*handle {
	idx := r.indices()
	ordered := make([]*handle, len(idx))
	for n, i := range idx {
		ordered[n] = r.handles[i]
	}
	return ordered
}
