package sorb

import "math"

// Matrix is a row-major 4x4 affine transform.
type Matrix struct {
	X00, X01, X02, X03 float64
	X10, X11, X12, X13 float64
	X20, X21, X22, X23 float64
	X30, X31, X32, X33 float64
}

func Identity() Matrix {
	return Matrix{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1}
}

func Translate(v Vector) Matrix {
	return Matrix{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1}
}

func Scale(v Vector) Matrix {
	return Matrix{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1}
}

func RotateX(a float64) Matrix {
	s := math.Sin(a)
	c := math.Cos(a)
	return Matrix{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1}
}

func RotateY(a float64) Matrix {
	s := math.Sin(a)
	c := math.Cos(a)
	return Matrix{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1}
}

func RotateZ(a float64) Matrix {
	s := math.Sin(a)
	c := math.Cos(a)
	return Matrix{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1}
}

// Rotate builds a counterclockwise rotation of angle a about an arbitrary
// axis v, looking down the axis toward the origin.
func Rotate(v Vector, a float64) Matrix {
	v = v.Normalize()
	s := math.Sin(a)
	c := math.Cos(a)
	m := 1 - c
	return Matrix{
		m*v.X*v.X + c, m*v.X*v.Y - v.Z*s, m*v.X*v.Z + v.Y*s, 0,
		m*v.X*v.Y + v.Z*s, m*v.Y*v.Y + c, m*v.Y*v.Z - v.X*s, 0,
		m*v.X*v.Z - v.Y*s, m*v.Y*v.Z + v.X*s, m*v.Z*v.Z + c, 0,
		0, 0, 0, 1}
}

// Shear builds a shearing transform. Each parameter names the component it
// moves in proportion to another: xy shears x by y, zx shears z by x, and
// so on.
func Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Matrix{
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1}
}

// LookAt builds the camera-to-world transform for a camera at from looking
// toward to. The columns are the camera's side, true-up and backward axes
// plus its position, so camera-space rays multiply straight out to world
// space.
func LookAt(from, to Point, up Vector) Matrix {
	f := to.Sub(from).Normalize()
	s := f.Cross(up.Normalize()).Normalize()
	u := s.Cross(f)
	return Matrix{
		s.X, u.X, -f.X, from.X,
		s.Y, u.Y, -f.Y, from.Y,
		s.Z, u.Z, -f.Z, from.Z,
		0, 0, 0, 1,
	}
}

// Fluent builders. Each left-multiplies, so the last call in a chain is the
// outermost transform: Identity().RotateX(a).Scale(s).Translate(t) scales
// after rotating and translates last.

func (a Matrix) Translate(v Vector) Matrix {
	return Translate(v).Mul(a)
}

func (a Matrix) Scale(v Vector) Matrix {
	return Scale(v).Mul(a)
}

func (a Matrix) RotateX(f float64) Matrix {
	return RotateX(f).Mul(a)
}

func (a Matrix) RotateY(f float64) Matrix {
	return RotateY(f).Mul(a)
}

func (a Matrix) RotateZ(f float64) Matrix {
	return RotateZ(f).Mul(a)
}

func (a Matrix) Rotate(v Vector, f float64) Matrix {
	return Rotate(v, f).Mul(a)
}

func (a Matrix) Shear(xy, xz, yx, yz, zx, zy float64) Matrix {
	return Shear(xy, xz, yx, yz, zx, zy).Mul(a)
}

func (a Matrix) Mul(b Matrix) Matrix {
	return Matrix{
		a.X00*b.X00 + a.X01*b.X10 + a.X02*b.X20 + a.X03*b.X30,
		a.X00*b.X01 + a.X01*b.X11 + a.X02*b.X21 + a.X03*b.X31,
		a.X00*b.X02 + a.X01*b.X12 + a.X02*b.X22 + a.X03*b.X32,
		a.X00*b.X03 + a.X01*b.X13 + a.X02*b.X23 + a.X03*b.X33,
		a.X10*b.X00 + a.X11*b.X10 + a.X12*b.X20 + a.X13*b.X30,
		a.X10*b.X01 + a.X11*b.X11 + a.X12*b.X21 + a.X13*b.X31,
		a.X10*b.X02 + a.X11*b.X12 + a.X12*b.X22 + a.X13*b.X32,
		a.X10*b.X03 + a.X11*b.X13 + a.X12*b.X23 + a.X13*b.X33,
		a.X20*b.X00 + a.X21*b.X10 + a.X22*b.X20 + a.X23*b.X30,
		a.X20*b.X01 + a.X21*b.X11 + a.X22*b.X21 + a.X23*b.X31,
		a.X20*b.X02 + a.X21*b.X12 + a.X22*b.X22 + a.X23*b.X32,
		a.X20*b.X03 + a.X21*b.X13 + a.X22*b.X23 + a.X23*b.X33,
		a.X30*b.X00 + a.X31*b.X10 + a.X32*b.X20 + a.X33*b.X30,
		a.X30*b.X01 + a.X31*b.X11 + a.X32*b.X21 + a.X33*b.X31,
		a.X30*b.X02 + a.X31*b.X12 + a.X32*b.X22 + a.X33*b.X32,
		a.X30*b.X03 + a.X31*b.X13 + a.X32*b.X23 + a.X33*b.X33,
	}
}

// MulPosition transforms a point, applying translation (implicit w=1).
func (a Matrix) MulPosition(b Point) Point {
	x := a.X00*b.X + a.X01*b.Y + a.X02*b.Z + a.X03
	y := a.X10*b.X + a.X11*b.Y + a.X12*b.Z + a.X13
	z := a.X20*b.X + a.X21*b.Y + a.X22*b.Z + a.X23
	return Point{x, y, z}
}

// MulDirection transforms a direction, ignoring translation (implicit w=0).
// The result is not renormalized; intersection t values computed against a
// transformed ray stay valid in the original parameter space.
func (a Matrix) MulDirection(b Vector) Vector {
	x := a.X00*b.X + a.X01*b.Y + a.X02*b.Z
	y := a.X10*b.X + a.X11*b.Y + a.X12*b.Z
	z := a.X20*b.X + a.X21*b.Y + a.X22*b.Z
	return Vector{x, y, z}
}

func (a Matrix) MulRay(b Ray) Ray {
	return Ray{a.MulPosition(b.Origin), a.MulDirection(b.Direction)}
}

func (a Matrix) Transpose() Matrix {
	return Matrix{
		a.X00, a.X10, a.X20, a.X30,
		a.X01, a.X11, a.X21, a.X31,
		a.X02, a.X12, a.X22, a.X32,
		a.X03, a.X13, a.X23, a.X33}
}

func (a Matrix) Determinant() float64 {
	return (a.X00*a.X11*a.X22*a.X33 - a.X00*a.X11*a.X23*a.X32 +
		a.X00*a.X12*a.X23*a.X31 - a.X00*a.X12*a.X21*a.X33 +
		a.X00*a.X13*a.X21*a.X32 - a.X00*a.X13*a.X22*a.X31 -
		a.X01*a.X12*a.X23*a.X30 + a.X01*a.X12*a.X20*a.X33 -
		a.X01*a.X13*a.X20*a.X32 + a.X01*a.X13*a.X22*a.X30 -
		a.X01*a.X10*a.X22*a.X33 + a.X01*a.X10*a.X23*a.X32 +
		a.X02*a.X13*a.X20*a.X31 - a.X02*a.X13*a.X21*a.X30 +
		a.X02*a.X10*a.X21*a.X33 - a.X02*a.X10*a.X23*a.X31 +
		a.X02*a.X11*a.X23*a.X30 - a.X02*a.X11*a.X20*a.X33 -
		a.X03*a.X10*a.X21*a.X32 + a.X03*a.X10*a.X22*a.X31 -
		a.X03*a.X11*a.X22*a.X30 + a.X03*a.X11*a.X20*a.X32 -
		a.X03*a.X12*a.X20*a.X31 + a.X03*a.X12*a.X21*a.X30)
}

func (a Matrix) rows() [4][4]float64 {
	return [4][4]float64{
		{a.X00, a.X01, a.X02, a.X03},
		{a.X10, a.X11, a.X12, a.X13},
		{a.X20, a.X21, a.X22, a.X23},
		{a.X30, a.X31, a.X32, a.X33},
	}
}

// Inverse inverts the matrix by Gauss-Jordan elimination with row-swap
// pivoting. Inverting a singular matrix is a programming error and panics.
func (a Matrix) Inverse() Matrix {
	m := a.rows()
	inv := Identity().rows()
	for col := 0; col < 4; col++ {
		if m[col][col] == 0 {
			swapped := false
			for row := col + 1; row < 4; row++ {
				if m[row][col] != 0 {
					m[col], m[row] = m[row], m[col]
					inv[col], inv[row] = inv[row], inv[col]
					swapped = true
					break
				}
			}
			if !swapped {
				panic("sorb: matrix is singular and can not be inverted")
			}
		}
		pivot := m[col][col]
		for k := 0; k < 4; k++ {
			m[col][k] /= pivot
			inv[col][k] /= pivot
		}
		for row := 0; row < 4; row++ {
			if row == col || m[row][col] == 0 {
				continue
			}
			factor := m[row][col]
			for k := 0; k < 4; k++ {
				m[row][k] -= factor * m[col][k]
				inv[row][k] -= factor * inv[col][k]
			}
		}
	}
	return Matrix{
		inv[0][0], inv[0][1], inv[0][2], inv[0][3],
		inv[1][0], inv[1][1], inv[1][2], inv[1][3],
		inv[2][0], inv[2][1], inv[2][2], inv[2][3],
		inv[3][0], inv[3][1], inv[3][2], inv[3][3],
	}
}

func (a Matrix) ApproxEqual(b Matrix) bool {
	ar, br := a.rows(), b.rows()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !ApproxEqual(ar[row][col], br[row][col]) {
				return false
			}
		}
	}
	return true
}
