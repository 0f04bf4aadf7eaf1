package main

import (
	"fmt"

	"github.com/akmonengine/plume"
	"github.com/akmonengine/plume/cso"
	"github.com/go-gl/mathgl/mgl64"
)

// Body est un objet de simulation minimal: une position, une forme, et
// l'index de liste requis par plume.
type Body struct {
	Name     string
	Position mgl64.Vec3
	Shape    cso.SupportMappable

	listIndex int
}

func NewBody(name string, position mgl64.Vec3, shape cso.SupportMappable) *Body {
	return &Body{Name: name, Position: position, Shape: shape, listIndex: -1}
}

func (b *Body) ListIndex() int         { return b.listIndex }
func (b *Body) SetListIndex(index int) { b.listIndex = index }

// Box is a convex shape with an analytic support function.
type Box struct {
	HalfExtents mgl64.Vec3
}

func (b Box) Support(direction mgl64.Vec3) mgl64.Vec3 {
	hx, hy, hz := b.HalfExtents.X(), b.HalfExtents.Y(), b.HalfExtents.Z()

	if direction.X() < 0 {
		hx = -hx
	}
	if direction.Y() < 0 {
		hy = -hy
	}
	if direction.Z() < 0 {
		hz = -hz
	}

	return mgl64.Vec3{hx, hy, hz}
}

func (b Box) Center() mgl64.Vec3 {
	return mgl64.Vec3{}
}

func main() {
	bodies := plume.NewActiveList[*Body]()

	// Populate a sleeping world, then wake a few bodies as a solver would.
	for i := 0; i < 8; i++ {
		position := mgl64.Vec3{float64(i) * 3, 0, 0}
		bodies.Add(NewBody(fmt.Sprintf("crate-%d", i), position, Box{HalfExtents: mgl64.Vec3{1, 1, 1}}))
	}

	bodies.MoveToActive(bodies.At(2))
	bodies.MoveToActive(bodies.At(5))

	fmt.Printf("🌍 World: %d bodies, %d awake\n", bodies.Count(), bodies.ActiveCount())

	// A step pipeline only ever walks the active region.
	for _, body := range bodies.Active() {
		fmt.Printf("   stepping %s at %v\n", body.Name, body.Position)
	}

	// Narrow phase between the two awake bodies: pose B relative to A and
	// sample their Minkowski difference.
	bodyA := bodies.Active()[0]
	bodyB := bodies.Active()[1]
	diff := cso.NewMinkowskiDifference(
		bodyA.Shape, bodyB.Shape,
		mgl64.QuatIdent(),
		bodyB.Position.Sub(bodyA.Position),
	)

	seed := diff.Center()
	fmt.Printf("🔍 CSO seed for %s vs %s: %v\n", bodyA.Name, bodyB.Name, seed.Diff)

	v := diff.Support(seed.Diff.Mul(-1))
	fmt.Printf("   support toward origin: diff=%v (onA=%v, onB=%v)\n", v.Diff, v.OnA, v.OnB)
	if v.Diff.Dot(seed.Diff.Mul(-1)) <= 0 {
		fmt.Println("   ➡ origin unreachable: the pair is separated")
	}

	// Everyone falls asleep again; diagnostics observe through the view.
	for _, body := range bodies.Active() {
		fmt.Printf("💤 %s goes to sleep\n", body.Name)
	}
	for bodies.ActiveCount() > 0 {
		bodies.MoveToInactive(bodies.At(0))
	}

	view := bodies.ReadOnly()
	fmt.Printf("🌙 World: %d bodies, %d awake\n", view.Count(), view.ActiveCount())
}
