package sorb

import "math"

// Plane is the infinite y=0 plane with normal +y in object space.
type Plane struct {
	shapeBase
}

func NewPlane() *Plane {
	return &Plane{newShapeBase()}
}

func (p *Plane) LocalIntersect(r Ray) []float64 {
	// A ray parallel to the plane, coplanar or not, never crosses it.
	if math.Abs(r.Direction.Y) < Epsilon {
		return nil
	}
	return []float64{-r.Origin.Y / r.Direction.Y}
}

func (p *Plane) LocalNormalAt(Point) Vector {
	return Vector{0, 1, 0}
}
