package sorb

import "math"

// Point is a position in space. Under an affine transform it carries an
// implicit w=1, so translation applies.
type Point struct {
	X, Y, Z float64
}

func P(x, y, z float64) Point {
	return Point{x, y, z}
}

// Origin is the zero point.
var Origin = Point{}

// Add offsets the point by a displacement.
func (a Point) Add(v Vector) Point {
	return Point{a.X + v.X, a.Y + v.Y, a.Z + v.Z}
}

// Sub returns the displacement from b to a.
func (a Point) Sub(b Point) Vector {
	return Vector{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Point) Distance(b Point) float64 {
	return a.Sub(b).Length()
}

// ToVector reinterprets the point as a displacement from the origin.
func (a Point) ToVector() Vector {
	return Vector{a.X, a.Y, a.Z}
}

func (a Point) IsDegenerate() bool {
	nan := math.IsNaN(a.X) || math.IsNaN(a.Y) || math.IsNaN(a.Z)
	inf := math.IsInf(a.X, 0) || math.IsInf(a.Y, 0) || math.IsInf(a.Z, 0)
	return nan || inf
}

func (a Point) ApproxEqual(b Point) bool {
	return ApproxEqual(a.X, b.X) && ApproxEqual(a.Y, b.Y) && ApproxEqual(a.Z, b.Z)
}
