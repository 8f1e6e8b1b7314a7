package sorb

import "math"

// Light is a point light source.
type Light struct {
	Position Point
	Color    Color
}

func NewLight(position Point, color Color) Light {
	return Light{position, color}
}

// Lighting evaluates the Phong reflection model for one light at a surface
// point. eye and normal must be unit vectors. A shadowed point keeps only
// its ambient term.
func Lighting(m *Material, p Point, light Light, eye, normal Vector, inShadow bool) Color {
	effective := m.ColorAt(p).Mul(light.Color)
	ambient := effective.MulScalar(m.Ambient)

	lightDir := light.Position.Sub(p).Normalize()
	lightDotNormal := lightDir.Dot(normal)
	if inShadow || lightDotNormal <= 0 {
		return ambient
	}

	diffuse := effective.MulScalar(m.Diffuse * lightDotNormal)

	specular := Black
	reflected := lightDir.Negate().Reflect(normal)
	reflectDotEye := reflected.Dot(eye)
	if reflectDotEye > 0 {
		factor := math.Pow(reflectDotEye, m.Shininess)
		specular = light.Color.MulScalar(m.Specular * factor)
	}

	return ambient.Add(diffuse).Add(specular)
}
