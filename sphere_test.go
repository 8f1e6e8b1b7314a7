package sorb

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sphereTs(s *Sphere, r Ray) []float64 {
	xs := Intersect(s, r)
	ts := make([]float64, len(xs))
	for i, x := range xs {
		ts[i] = x.T
	}
	return ts
}

func TestSphereIntersectTwoPoints(t *testing.T) {
	r := NewRay(P(0, 0, -5), V(0, 0, 1))
	assert.Equal(t, []float64{4, 6}, sphereTs(NewSphere(), r))
}

func TestSphereIntersectTangent(t *testing.T) {
	r := NewRay(P(0, 1, -5), V(0, 0, 1))
	assert.Equal(t, []float64{5, 5}, sphereTs(NewSphere(), r))
}

func TestSphereIntersectMiss(t *testing.T) {
	r := NewRay(P(0, 2, -5), V(0, 0, 1))
	assert.Empty(t, sphereTs(NewSphere(), r))
}

func TestSphereIntersectFromInside(t *testing.T) {
	r := NewRay(Origin, V(0, 0, 1))
	assert.Equal(t, []float64{-1, 1}, sphereTs(NewSphere(), r))
}

func TestSphereIntersectBehind(t *testing.T) {
	r := NewRay(P(0, 0, 5), V(0, 0, 1))
	assert.Equal(t, []float64{-6, -4}, sphereTs(NewSphere(), r))
}

func TestScaledSphereIntersect(t *testing.T) {
	s := NewSphere()
	s.SetTransform(Identity().Scale(V(2, 2, 2)))
	r := NewRay(P(0, 0, -5), V(0, 0, 1))
	assert.Equal(t, []float64{3, 7}, sphereTs(s, r))
}

func TestTranslatedSphereIntersectMiss(t *testing.T) {
	s := NewSphere()
	s.SetTransform(Identity().Translate(V(5, 0, 0)))
	r := NewRay(P(0, 0, -5), V(0, 0, 1))
	assert.Empty(t, sphereTs(s, r))
}

func TestSphereIntersectionsSatisfyUnitSphereEquation(t *testing.T) {
	transforms := []Matrix{
		Identity(),
		Identity().Scale(V(2, 0.5, 3)).Translate(V(1, -2, 0.5)),
		Identity().RotateY(0.7).Shear(0.2, 0, 0, 0, 0, 0).Translate(V(0, 0, -1)),
	}
	r := NewRay(P(0.1, 0.2, -5), V(-0.02, 0.01, 1).Normalize())
	for _, m := range transforms {
		s := NewSphere()
		s.SetTransform(m)
		local := s.InverseTransform().MulRay(r)
		for _, x := range Intersect(s, r) {
			p := local.Position(x.T)
			assertFloatEqual(t, 1, p.Sub(Origin).Length())
		}
	}
}

func TestSphereNormalsOnAxes(t *testing.T) {
	s := NewSphere()
	assertVectorEqual(t, V(1, 0, 0), NormalAt(s, P(1, 0, 0)))
	assertVectorEqual(t, V(0, 1, 0), NormalAt(s, P(0, 1, 0)))
	assertVectorEqual(t, V(0, 0, 1), NormalAt(s, P(0, 0, 1)))
}

func TestSphereNormalNonAxial(t *testing.T) {
	s := NewSphere()
	k := math.Sqrt(3) / 3
	n := NormalAt(s, P(k, k, k))
	assertVectorEqual(t, V(k, k, k), n)
	assertVectorEqual(t, n.Normalize(), n)
}

func TestTranslatedSphereNormal(t *testing.T) {
	s := NewSphere()
	s.SetTransform(Identity().Translate(V(0, 1, 0)))
	n := NormalAt(s, P(0, 1.70711, -0.70711))
	assertVectorEqual(t, V(0, 0.70711, -0.70711), n)
}

func TestTransformedSphereNormal(t *testing.T) {
	s := NewSphere()
	s.SetTransform(Identity().RotateZ(math.Pi / 5).Scale(V(1, 0.5, 1)))
	n := NormalAt(s, P(0, math.Sqrt2/2, -math.Sqrt2/2))
	assertVectorEqual(t, V(0, 0.97014, -0.24254), n)
}

func TestSphereDefaults(t *testing.T) {
	s := NewSphere()
	assertMatrixEqual(t, Identity(), s.Transform())
	assert.Equal(t, DefaultMaterial(), *s.Material())
}

func TestSphereSetMaterial(t *testing.T) {
	s := NewSphere()
	m := DefaultMaterial()
	m.Ambient = 1
	s.SetMaterial(m)
	assert.Equal(t, 1.0, s.Material().Ambient)
}
