package cso

import "github.com/go-gl/mathgl/mgl64"

// MinkowskiDifference evaluates support queries over A - B for two convex
// shapes, where shape A is already expressed in the frame of comparison and
// shape B is posed relative to it by Orientation and Position.
//
// The shapes are referenced, not owned: they must outlive every query.
// The struct holds no mutable state, so every query is a pure function of the
// direction and this configuration. Build one per candidate contact pair,
// query it through the narrow-phase loop, discard it.
type MinkowskiDifference struct {
	ShapeA SupportMappable
	ShapeB SupportMappable

	// Pose of B in A's frame. InverseOrientation is cached so the per-query
	// cost is two quaternion rotations, never an inversion.
	Orientation        mgl64.Quat
	InverseOrientation mgl64.Quat
	Position           mgl64.Vec3
}

// NewMinkowskiDifference builds an evaluator for A - B with shape B rotated by
// orientation and translated by position, both expressed in A's frame.
func NewMinkowskiDifference(shapeA, shapeB SupportMappable, orientation mgl64.Quat, position mgl64.Vec3) MinkowskiDifference {
	return MinkowskiDifference{
		ShapeA:             shapeA,
		ShapeB:             shapeB,
		Orientation:        orientation,
		InverseOrientation: orientation.Inverse(),
		Position:           position,
	}
}

// SupportB returns the support point of the posed shape B along direction,
// in A's frame.
//
//  1. Transformer la direction en espace local de B (rotation inverse)
//  2. Trouver le support en espace local
//  3. Transformer le point support dans le repère de A (rotation + translation)
func (m MinkowskiDifference) SupportB(direction mgl64.Vec3) mgl64.Vec3 {
	localDirection := m.InverseOrientation.Rotate(direction)
	localSupport := m.ShapeB.Support(localDirection)

	return m.Orientation.Rotate(localSupport).Add(m.Position)
}

// Support samples the Minkowski difference along direction: the support of A
// along direction minus the support of the posed B along the negated
// direction. The returned Diff satisfies Diff·direction >= p·direction for
// every point p on A - B, up to the exactness of the shape support functions.
//
// Degenerate (zero-length) directions are forwarded to the shapes as-is; no
// degeneracy handling happens at this level.
func (m MinkowskiDifference) Support(direction mgl64.Vec3) Vertex {
	onA := m.ShapeA.Support(direction)
	onB := m.SupportB(direction.Mul(-1))

	return Vertex{OnA: onA, OnB: onB, Diff: onA.Sub(onB)}
}

// Center returns an interior sample of the Minkowski difference built from
// each shape's reported center, B's transformed by its pose. GJK typically
// seeds its first search direction from Center().Diff.
func (m MinkowskiDifference) Center() Vertex {
	onA := m.ShapeA.Center()
	onB := m.Orientation.Rotate(m.ShapeB.Center()).Add(m.Position)

	return Vertex{OnA: onA, OnB: onB, Diff: onA.Sub(onB)}
}
