// Package collider provides volumetric containment primitives used for
// player-versus-world collision tests. Colliders answer a single question:
// does a query point lie inside the volume anchored at a reference position?
// There is no penetration depth or physics response, only binary block/allow.
package collider

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Shape identifies the kind of collider primitive
type Shape string

const (
	ShapeEmpty  Shape = "empty"
	ShapeSphere Shape = "sphere"
	ShapeBox    Shape = "box"
)

// Collider is a containment test anchored at a reference position.
// Implementations are immutable after construction.
type Collider interface {
	// Intersects reports whether query lies inside the volume when the
	// collider is anchored at ref.
	Intersects(ref, query mgl32.Vec3) bool

	// Shape returns the primitive kind
	Shape() Shape
}

// Empty is the absent-collider variant. It never reports a collision.
type Empty struct{}

func (Empty) Intersects(ref, query mgl32.Vec3) bool { return false }
func (Empty) Shape() Shape                          { return ShapeEmpty }

// Sphere tests containment within radius of the anchored center.
type Sphere struct {
	// Offset shifts the sphere center relative to the reference position
	Offset mgl32.Vec3
	Radius float32
}

// NewSphere creates a sphere collider with the given center offset and radius
func NewSphere(offset mgl32.Vec3, radius float32) Sphere {
	return Sphere{Offset: offset, Radius: radius}
}

// Intersects is true iff the Euclidean distance from the sphere center to
// query is at most Radius. The boundary case distance == radius counts as
// a hit.
func (s Sphere) Intersects(ref, query mgl32.Vec3) bool {
	center := ref.Add(s.Offset)
	return query.Sub(center).Len() <= s.Radius
}

func (Sphere) Shape() Shape { return ShapeSphere }

// Box tests containment within an oriented box centered on the reference
// position. The query point is rotated into the box's local axes before
// the per-axis extent check.
type Box struct {
	// HalfExtents are the box half-sizes along its local X/Y/Z axes
	HalfExtents mgl32.Vec3

	// Orientation rotates box-local axes into world space
	Orientation mgl32.Quat
}

// NewBox creates a box collider with the given half-extents and orientation
func NewBox(halfExtents mgl32.Vec3, orientation mgl32.Quat) Box {
	return Box{HalfExtents: halfExtents, Orientation: orientation.Normalize()}
}

// Intersects is true iff the offset of query from ref, expressed in the
// box's local axes, lies within the half-extents on all three axes.
func (b Box) Intersects(ref, query mgl32.Vec3) bool {
	local := b.Orientation.Inverse().Rotate(query.Sub(ref))
	return abs(local.X()) <= b.HalfExtents.X() &&
		abs(local.Y()) <= b.HalfExtents.Y() &&
		abs(local.Z()) <= b.HalfExtents.Z()
}

func (Box) Shape() Shape { return ShapeBox }

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
