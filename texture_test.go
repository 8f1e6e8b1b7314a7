package sorb

import "testing"

func TestStripesAlternateInX(t *testing.T) {
	p := NewStripes(White, Black)
	assertColorEqual(t, White, p.ColorAt(Origin))
	assertColorEqual(t, White, p.ColorAt(P(0.9, 0, 0)))
	assertColorEqual(t, Black, p.ColorAt(P(1, 0, 0)))
	assertColorEqual(t, Black, p.ColorAt(P(-0.1, 0, 0)))
	assertColorEqual(t, Black, p.ColorAt(P(-1, 0, 0)))
	assertColorEqual(t, White, p.ColorAt(P(-1.1, 0, 0)))
}

func TestStripesConstantInYAndZ(t *testing.T) {
	p := NewStripes(White, Black)
	for _, y := range []float64{0, 0.9, 1, -0.1, -1, -1.1} {
		assertColorEqual(t, White, p.ColorAt(P(0, y, 0)))
		assertColorEqual(t, White, p.ColorAt(P(0, 0, y)))
	}
}

func TestStripesWithTransform(t *testing.T) {
	p := NewStripes(White, Black)
	p.SetTransform(Identity().Scale(V(2, 2, 2)))
	assertColorEqual(t, White, p.ColorAt(P(1.9, 0, 0)))
	assertColorEqual(t, Black, p.ColorAt(P(2, 0, 0)))

	p.SetTransform(Identity().Translate(V(5, 0, 0)))
	assertColorEqual(t, White, p.ColorAt(P(5.5, 0, 0)))
	assertColorEqual(t, Black, p.ColorAt(P(4.5, 0, 0)))
}

func TestGradientInterpolatesInX(t *testing.T) {
	p := NewGradient(White, Black)
	assertColorEqual(t, White, p.ColorAt(Origin))
	assertColorEqual(t, Color{0.75, 0.75, 0.75}, p.ColorAt(P(0.25, 0, 0)))
	assertColorEqual(t, Color{0.5, 0.5, 0.5}, p.ColorAt(P(0.5, 0, 0)))
	assertColorEqual(t, Color{0.25, 0.25, 0.25}, p.ColorAt(P(0.75, 0, 0)))
}

func TestGradientIsContinuousAndMirrored(t *testing.T) {
	p := NewGradient(White, Black)
	// Past x=1 the ramp reverses, so there is no seam.
	assertColorEqual(t, Color{0.25, 0.25, 0.25}, p.ColorAt(P(1.25, 1.25, 1.25)))
	assertColorEqual(t, Color{0.75, 0.75, 0.75}, p.ColorAt(P(1.75, 0, 0)))
	// Mirrored through zero.
	assertColorEqual(t, Color{0.75, 0.75, 0.75}, p.ColorAt(P(-0.25, 0, 0)))
	assertColorEqual(t, Color{0.25, 0.25, 0.25}, p.ColorAt(P(-0.75, 0, 0)))
}

func TestGradientConstantInYAndZ(t *testing.T) {
	p := NewGradient(White, Black)
	assertColorEqual(t, White, p.ColorAt(P(0, 1, 0)))
	assertColorEqual(t, White, p.ColorAt(P(0, -1.1, 0)))
	assertColorEqual(t, White, p.ColorAt(P(0, 0, 0.9)))
}

func TestRingAlternatesRadially(t *testing.T) {
	p := NewRing(White, Black)
	assertColorEqual(t, White, p.ColorAt(Origin))
	assertColorEqual(t, Black, p.ColorAt(P(1.5, 0, 0)))
	assertColorEqual(t, Black, p.ColorAt(P(-1.5, 0, 0)))
	assertColorEqual(t, White, p.ColorAt(P(2.5, 0, 0)))
	assertColorEqual(t, White, p.ColorAt(P(-2.5, 0, 0)))
	assertColorEqual(t, Black, p.ColorAt(P(0, 0, 1.5)))
	assertColorEqual(t, White, p.ColorAt(P(0, 0, 2.5)))
	// Just past the unit circle on the diagonal.
	assertColorEqual(t, Black, p.ColorAt(P(0.708, 0, 0.708)))
	assertColorEqual(t, White, p.ColorAt(P(1.415, 0, 1.415)))
}

func TestRingConstantInY(t *testing.T) {
	p := NewRing(White, Black)
	assertColorEqual(t, White, p.ColorAt(P(0, 1.5, 0)))
	assertColorEqual(t, White, p.ColorAt(P(0, -2.5, 0)))
}

func TestCheckersAlternateInEachAxis(t *testing.T) {
	p := NewCheckers(White, Black)
	assertColorEqual(t, Black, p.ColorAt(P(-0.5, 0, 0)))
	assertColorEqual(t, White, p.ColorAt(P(0.5, 0, 0)))
	assertColorEqual(t, Black, p.ColorAt(P(1.5, 0, 0)))
	assertColorEqual(t, Black, p.ColorAt(P(0, -0.5, 0)))
	assertColorEqual(t, White, p.ColorAt(P(0, 0.5, 0)))
	assertColorEqual(t, Black, p.ColorAt(P(0, 1.5, 0)))
	assertColorEqual(t, Black, p.ColorAt(P(0, 0, -0.5)))
	assertColorEqual(t, White, p.ColorAt(P(0, 0, 0.5)))
	assertColorEqual(t, Black, p.ColorAt(P(0, 0, 1.5)))
}

func TestPatternsNest(t *testing.T) {
	// A stripe pattern whose first band is itself a gradient: the child is
	// evaluated at the stripe's local point.
	p := NewStripes(NewGradient(White, Black), Red)
	assertColorEqual(t, Color{0.5, 0.5, 0.5}, p.ColorAt(P(0.5, 0, 0)))
	assertColorEqual(t, Red, p.ColorAt(P(1.5, 0, 0)))
}

func TestNestedPatternTransformsCompose(t *testing.T) {
	child := NewStripes(White, Black)
	child.SetTransform(Identity().Scale(V(0.5, 0.5, 0.5)))
	p := NewCheckers(child, Red)
	p.SetTransform(Identity().Translate(V(2, 0, 0)))

	// (2.75, 0, 0) is (0.75, 0, 0) in checker space: the first cube, so
	// the stripes run there, scaled to half-unit bands.
	assertColorEqual(t, Black, p.ColorAt(P(2.75, 0, 0)))
	assertColorEqual(t, White, p.ColorAt(P(2.25, 0, 0)))
	// The second cube is solid red regardless of the child.
	assertColorEqual(t, Red, p.ColorAt(P(3.5, 0, 0)))
}

func TestPatternTransformAccessor(t *testing.T) {
	p := NewRing(White, Black)
	assertMatrixEqual(t, Identity(), p.Transform())
	m := Identity().Scale(V(5, -5, 5))
	p.SetTransform(m)
	assertMatrixEqual(t, m, p.Transform())
}
