package sorb

// Material pairs a texture with the Phong reflection coefficients.
type Material struct {
	Texture   Texture
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// DefaultMaterial is a white surface with a bright, tight specular
// highlight.
func DefaultMaterial() Material {
	return Material{
		Texture:   White,
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200,
	}
}

// ColorAt looks up the material's texture at a world-space point.
func (m *Material) ColorAt(p Point) Color {
	return m.Texture.ColorAt(p)
}
