// Package plume provides the bookkeeping substrate of a physics step: a
// growable list of simulation objects partitioned into an active prefix and a
// sleeping suffix, with O(1) transitions between the two states.
//
// A physics engine must skip every sleeping body or island on every step
// without scanning for them. The ActiveList keeps active members contiguous at
// the low indices, so the step pipeline iterates exactly the active region and
// never touches a sleeper. Every structural change is a single swap plus
// bookkeeping: stable big-O is traded for stable ordering, which is the right
// trade here - what matters is who is active, never in what order.
//
// The list holds no synchronization, matching an engine's
// single-writer-per-step model. Callers serialize access; a ReadOnlyList may
// be shared between readers only while no writer is mutating the list.
package plume

// Indexed is the capability an element must carry to be stored in an
// ActiveList: a single mutable slot index, equal to -1 while the element is in
// no list and equal to its current position otherwise.
//
// The list is the exclusive writer of this field while the element is a
// member. Because the index is not list-qualified, an element must never be
// added to two lists at once.
type Indexed interface {
	ListIndex() int
	SetListIndex(index int)
}

// ActiveList stores elements partitioned into an active prefix [0, ActiveCount)
// and a sleeping suffix [ActiveCount, Count). Iteration order within either
// region is unstable across mutating calls.
//
// The zero value is ready to use.
type ActiveList[T Indexed] struct {
	items       []T
	activeCount int
}

// NewActiveList creates an empty list.
func NewActiveList[T Indexed]() *ActiveList[T] {
	return &ActiveList[T]{}
}

// Add appends e to the sleeping region. e must not already be in a list.
func (l *ActiveList[T]) Add(e T) {
	assert(e.ListIndex() == -1, "Add: element is already in a list")

	e.SetListIndex(len(l.items))
	l.items = append(l.items, e)
}

// AddActive appends e and immediately promotes it to the active region.
func (l *ActiveList[T]) AddActive(e T) {
	l.Add(e)
	l.MoveToActive(e)
}

// Remove takes e out of the list and resets its index to -1. The freed slot is
// reclaimed by the last element, so Count shrinks by one and no run of
// elements ever shifts. Counts and indices of the other elements are
// preserved up to that single swap.
func (l *ActiveList[T]) Remove(e T) {
	l.assertMember(e, "Remove")

	// Demote first, so removal never straddles the active boundary.
	l.MoveToInactive(e)

	last := len(l.items) - 1
	index := e.ListIndex()

	l.items[index] = l.items[last]
	l.items[index].SetListIndex(index)
	l.items = l.items[:last]

	e.SetListIndex(-1)
}

// MoveToActive promotes e into the active prefix. Reports false without
// touching anything if e is already active.
func (l *ActiveList[T]) MoveToActive(e T) bool {
	l.assertMember(e, "MoveToActive")

	if e.ListIndex() < l.activeCount {
		return false
	}

	// Échange avec le premier élément endormi, qui devient la frontière.
	l.swap(l.activeCount, e.ListIndex())
	l.activeCount++

	return true
}

// MoveToInactive demotes e into the sleeping suffix. Reports false without
// touching anything if e is already sleeping.
func (l *ActiveList[T]) MoveToInactive(e T) bool {
	l.assertMember(e, "MoveToInactive")

	if e.ListIndex() >= l.activeCount {
		return false
	}

	l.activeCount--
	l.swap(l.activeCount, e.ListIndex())

	return true
}

// IsActive reports whether member e is in the active region.
func (l *ActiveList[T]) IsActive(e T) bool {
	l.assertMember(e, "IsActive")

	return e.ListIndex() < l.activeCount
}

// Count returns the number of elements in the list.
func (l *ActiveList[T]) Count() int {
	return len(l.items)
}

// ActiveCount returns the number of elements in the active region.
func (l *ActiveList[T]) ActiveCount() int {
	return l.activeCount
}

// At returns the element in slot i, 0 <= i < Count.
func (l *ActiveList[T]) At(i int) T {
	return l.items[i]
}

// Active returns the contiguous active region as a sub-slice of the backing
// array. It is valid until the next mutating call.
func (l *ActiveList[T]) Active() []T {
	return l.items[:l.activeCount]
}

// All returns every element as a sub-slice of the backing array. It is valid
// until the next mutating call.
func (l *ActiveList[T]) All() []T {
	return l.items
}

// Clear resets every member's index to -1 and empties the list. Capacity is
// kept for reuse.
func (l *ActiveList[T]) Clear() {
	for _, e := range l.items {
		e.SetListIndex(-1)
	}

	l.items = l.items[:0]
	l.activeCount = 0
}

// ReadOnly returns a non-mutating view over the list.
func (l *ActiveList[T]) ReadOnly() ReadOnlyList[T] {
	return ReadOnlyList[T]{list: l}
}

func (l *ActiveList[T]) swap(i, j int) {
	if i == j {
		return
	}

	l.items[i], l.items[j] = l.items[j], l.items[i]
	l.items[i].SetListIndex(i)
	l.items[j].SetListIndex(j)
}

func (l *ActiveList[T]) assertMember(e T, op string) {
	if !contractChecks {
		return
	}

	index := e.ListIndex()
	assert(index >= 0 && index < len(l.items), op+": element is not in the list")
	assert(l.items[index].ListIndex() == index, op+": slot index out of sync with position")
}
