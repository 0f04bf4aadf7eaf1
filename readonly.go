package plume

// ReadOnlyList is a non-owning view over an ActiveList with no mutating
// operation in its surface. Hand it to code that must observe activity state
// without being able to alter it, such as diagnostics or read-only solver
// stages.
//
// The view stays coherent with its list; it may be shared between concurrent
// readers only while no writer is mutating the underlying list.
type ReadOnlyList[T Indexed] struct {
	list *ActiveList[T]
}

// Count returns the number of elements in the underlying list.
func (r ReadOnlyList[T]) Count() int {
	return r.list.Count()
}

// ActiveCount returns the number of elements in the active region.
func (r ReadOnlyList[T]) ActiveCount() int {
	return r.list.ActiveCount()
}

// At returns the element in slot i, 0 <= i < Count.
func (r ReadOnlyList[T]) At(i int) T {
	return r.list.At(i)
}

// IsActive reports whether member e is in the active region.
func (r ReadOnlyList[T]) IsActive(e T) bool {
	return r.list.IsActive(e)
}

// Each calls fn for every element, sleeping ones included, and stops early
// when fn returns false.
func (r ReadOnlyList[T]) Each(fn func(e T) bool) {
	for _, e := range r.list.items {
		if !fn(e) {
			break
		}
	}
}

// EachActive calls fn for every element of the active region and stops early
// when fn returns false.
func (r ReadOnlyList[T]) EachActive(fn func(e T) bool) {
	for _, e := range r.list.Active() {
		if !fn(e) {
			break
		}
	}
}
