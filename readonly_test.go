package plume

import "testing"

func newPopulatedList(t *testing.T, n, nActive int) (*ActiveList[*testBody], []*testBody) {
	t.Helper()

	l := NewActiveList[*testBody]()
	bodies := newTestBodies(n)
	for i, b := range bodies {
		if i < nActive {
			l.AddActive(b)
		} else {
			l.Add(b)
		}
	}
	return l, bodies
}

func TestReadOnlyList_Counts(t *testing.T) {
	l, _ := newPopulatedList(t, 8, 3)
	view := l.ReadOnly()

	if view.Count() != 8 {
		t.Errorf("Count() = %d, want 8", view.Count())
	}
	if view.ActiveCount() != 3 {
		t.Errorf("ActiveCount() = %d, want 3", view.ActiveCount())
	}
}

func TestReadOnlyList_MirrorsList(t *testing.T) {
	l, bodies := newPopulatedList(t, 8, 3)
	view := l.ReadOnly()

	for i := 0; i < l.Count(); i++ {
		if view.At(i) != l.At(i) {
			t.Errorf("At(%d) differs between view and list", i)
		}
	}
	for _, b := range bodies {
		if view.IsActive(b) != l.IsActive(b) {
			t.Errorf("IsActive(%d) differs between view and list", b.id)
		}
	}

	// The view stays coherent after a mutation through the list.
	l.MoveToActive(bodies[7])
	if view.ActiveCount() != 4 {
		t.Errorf("ActiveCount() = %d after promotion, want 4", view.ActiveCount())
	}
}

func TestReadOnlyList_Each(t *testing.T) {
	t.Run("visits every element", func(t *testing.T) {
		l, _ := newPopulatedList(t, 6, 2)
		view := l.ReadOnly()

		visited := 0
		view.Each(func(e *testBody) bool {
			visited++
			return true
		})

		if visited != 6 {
			t.Errorf("Each visited %d elements, want 6", visited)
		}
	})

	t.Run("stops when fn returns false", func(t *testing.T) {
		l, _ := newPopulatedList(t, 6, 2)
		view := l.ReadOnly()

		visited := 0
		view.Each(func(e *testBody) bool {
			visited++
			return visited < 3
		})

		if visited != 3 {
			t.Errorf("Each visited %d elements, want 3", visited)
		}
	})
}

func TestReadOnlyList_EachActive(t *testing.T) {
	l, _ := newPopulatedList(t, 6, 2)
	view := l.ReadOnly()

	visited := 0
	view.EachActive(func(e *testBody) bool {
		if !l.IsActive(e) {
			t.Errorf("EachActive visited sleeping element %d", e.id)
		}
		visited++
		return true
	})

	if visited != 2 {
		t.Errorf("EachActive visited %d elements, want 2", visited)
	}
}
