// Package cso provides support queries over the configuration space object
// (Minkowski difference) of two convex shapes.
//
// The Minkowski difference A - B is the set of all vectors (a - b) where a ∈ A
// and b ∈ B. Its boundary encodes every relative separation or penetration
// between the two shapes, which is why iterative algorithms such as GJK and
// EPA never look at the shapes directly: they only sample the difference
// through its support function. This package is that sampling layer - it
// composes the support functions of two shapes under the relative pose of the
// second one, and records which point on each shape produced every sample.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance Between
//     Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
package cso

import "github.com/go-gl/mathgl/mgl64"

// SupportMappable is the capability a convex shape must expose to be used in
// configuration space queries.
//
// Support returns the farthest point of the shape along the given direction,
// in the shape's own local frame. Center returns a representative interior
// point (not necessarily the exact centroid). Both must be pure and
// allocation-free: they are called millions of times per frame inside
// iterative narrow-phase loops.
type SupportMappable interface {
	Support(direction mgl64.Vec3) mgl64.Vec3
	Center() mgl64.Vec3
}

// Vertex is a single sample on the Minkowski difference of two shapes.
//
// OnA and OnB are the witness points on each shape that produced the sample;
// Diff is OnA - OnB, the actual point on the difference. GJK and EPA iterate
// purely on Diff, and recover world-space contact points from the witnesses
// once they converge.
type Vertex struct {
	OnA  mgl64.Vec3
	OnB  mgl64.Vec3
	Diff mgl64.Vec3
}
