package sorb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Tolerance-aware assertions shared by the package tests.

func assertFloatEqual(t *testing.T, expected, actual float64) {
	t.Helper()
	assert.InDelta(t, expected, actual, Epsilon)
}

func assertVectorEqual(t *testing.T, expected, actual Vector) {
	t.Helper()
	assert.True(t, expected.ApproxEqual(actual), "expected %v, got %v", expected, actual)
}

func assertPointEqual(t *testing.T, expected, actual Point) {
	t.Helper()
	assert.True(t, expected.ApproxEqual(actual), "expected %v, got %v", expected, actual)
}

func assertColorEqual(t *testing.T, expected, actual Color) {
	t.Helper()
	assert.True(t, expected.ApproxEqual(actual), "expected %v, got %v", expected, actual)
}

func assertMatrixEqual(t *testing.T, expected, actual Matrix) {
	t.Helper()
	assert.True(t, expected.ApproxEqual(actual), "expected\n%+v\ngot\n%+v", expected, actual)
}

// defaultWorld is the two-sphere scene most world tests run against: an
// outer green-ish sphere with a matte finish, a half-size default sphere
// inside it, and a single white light up and to the left.
func defaultWorld() *World {
	outer := NewSphere()
	material := DefaultMaterial()
	material.Texture = Color{0.8, 1.0, 0.6}
	material.Diffuse = 0.7
	material.Specular = 0.2
	outer.SetMaterial(material)

	inner := NewSphere()
	inner.SetTransform(Identity().Scale(V(0.5, 0.5, 0.5)))

	w := NewWorld()
	w.AddShape(outer)
	w.AddShape(inner)
	w.AddLight(NewLight(P(-10, 10, -10), White))
	return w
}
