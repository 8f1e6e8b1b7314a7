package sorb

import "math"

// Texture maps points to colors. Every texture except a bare Color carries
// a texture-to-world transform; ColorAt is always queried with a world-space
// point and evaluates the texture in its own space.
type Texture interface {
	ColorAt(p Point) Color
	Transform() Matrix
}

// A rule combines the two child colors at a point in pattern space.
type patternRule func(p Point, a, b Color) Color

// Pattern is a two-texture procedural pattern. Child textures nest: each is
// evaluated at the pattern-space point, so a child's own transform composes
// with the parent's.
type Pattern struct {
	A, B      Texture
	rule      patternRule
	transform Matrix
	inverse   Matrix
}

func newPattern(rule patternRule, a, b Texture) *Pattern {
	return &Pattern{a, b, rule, Identity(), Identity()}
}

// NewStripes alternates a and b in unit-wide bands along x.
func NewStripes(a, b Texture) *Pattern {
	return newPattern(stripes, a, b)
}

// NewGradient blends linearly from a to b along x, mirroring every unit so
// the result is continuous.
func NewGradient(a, b Texture) *Pattern {
	return newPattern(gradient, a, b)
}

// NewRing alternates a and b in concentric rings around the y axis.
func NewRing(a, b Texture) *Pattern {
	return newPattern(ring, a, b)
}

// NewCheckers alternates a and b in unit cubes.
func NewCheckers(a, b Texture) *Pattern {
	return newPattern(checkers, a, b)
}

func (p *Pattern) Transform() Matrix {
	return p.transform
}

func (p *Pattern) SetTransform(m Matrix) {
	p.transform = m
	p.inverse = m.Inverse()
}

func (p *Pattern) ColorAt(point Point) Color {
	local := p.inverse.MulPosition(point)
	return p.rule(local, p.A.ColorAt(local), p.B.ColorAt(local))
}

func stripes(p Point, a, b Color) Color {
	if math.Floor(emod(p.X, 2)) == 0 {
		return a
	}
	return b
}

func gradient(p Point, a, b Color) Color {
	x := math.Abs(p.X)
	if math.Floor(emod(x, 2)) == 0 {
		return a.Lerp(b, fract(x))
	}
	return b.Lerp(a, fract(x))
}

func ring(p Point, a, b Color) Color {
	radius := math.Sqrt(p.X*p.X + p.Z*p.Z)
	if math.Floor(emod(radius, 2)) == 0 {
		return a
	}
	return b
}

func checkers(p Point, a, b Color) Color {
	sum := math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z)
	if emod(sum, 2) == 0 {
		return a
	}
	return b
}
