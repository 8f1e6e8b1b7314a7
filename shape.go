package sorb

import "sort"

// Shape is a transformable surface. Concrete shapes implement only the two
// object-space primitives; Intersect and NormalAt lift them to world space.
type Shape interface {
	Transform() Matrix
	InverseTransform() Matrix
	Material() *Material

	// LocalIntersect returns the ray parameters of every intersection with
	// the shape in object space, in the order produced.
	LocalIntersect(r Ray) []float64
	// LocalNormalAt returns the object-space surface normal at an
	// object-space point assumed to lie on the surface.
	LocalNormalAt(p Point) Vector
}

// shapeBase carries the state shared by every shape: an object-to-world
// transform with its cached inverse, and a material.
type shapeBase struct {
	transform Matrix
	inverse   Matrix
	material  Material
}

func newShapeBase() shapeBase {
	return shapeBase{
		transform: Identity(),
		inverse:   Identity(),
		material:  DefaultMaterial(),
	}
}

func (b *shapeBase) Transform() Matrix {
	return b.transform
}

func (b *shapeBase) SetTransform(m Matrix) {
	b.transform = m
	b.inverse = m.Inverse()
}

func (b *shapeBase) InverseTransform() Matrix {
	return b.inverse
}

func (b *shapeBase) Material() *Material {
	return &b.material
}

func (b *shapeBase) SetMaterial(m Material) {
	b.material = m
}

// Intersection records a single ray-surface crossing, with everything
// shading needs: the world-space hit point, the unit vector back toward the
// ray origin, the world-space normal, and the shape's material. The material
// pointer is borrowed from the shape and shares its lifetime.
type Intersection struct {
	T        float64
	Point    Point
	Eye      Vector
	Normal   Vector
	Material *Material
}

// Intersect casts a world-space ray at a shape. The ray is moved to object
// space for the primitive test; the records are built from the world ray so
// points, eyes and normals come out in world space.
func Intersect(s Shape, worldRay Ray) []Intersection {
	localRay := s.InverseTransform().MulRay(worldRay)
	ts := s.LocalIntersect(localRay)
	if len(ts) == 0 {
		return nil
	}
	eye := worldRay.Direction.Normalize().Negate()
	xs := make([]Intersection, 0, len(ts))
	for _, t := range ts {
		point := worldRay.Position(t)
		xs = append(xs, Intersection{
			T:        t,
			Point:    point,
			Eye:      eye,
			Normal:   NormalAt(s, point),
			Material: s.Material(),
		})
	}
	return xs
}

// NormalAt computes the world-space surface normal at a world-space point.
// Normals transform by the transpose of the inverse so they stay
// perpendicular under non-uniform scaling.
func NormalAt(s Shape, worldPoint Point) Vector {
	localPoint := s.InverseTransform().MulPosition(worldPoint)
	localNormal := s.LocalNormalAt(localPoint)
	worldNormal := s.InverseTransform().Transpose().MulDirection(localNormal)
	return worldNormal.Normalize()
}

// SortIntersections orders records by ascending t. NaNs compare as equal,
// so finite records keep their relative order around them.
func SortIntersections(xs []Intersection) {
	sort.SliceStable(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// Hit selects the visible intersection: the one with the smallest
// non-negative t. ok is false when the ray hit nothing in front of its
// origin.
func Hit(xs []Intersection) (hit Intersection, ok bool) {
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !ok || x.T < hit.T {
			hit = x
			ok = true
		}
	}
	return hit, ok
}
