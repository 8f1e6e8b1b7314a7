package sorb

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scene file support. A scene is a YAML document describing the camera, the
// lights and the shapes; LoadScene turns one into a renderable World plus
// Camera. Transforms are op lists applied first-to-last:
//
//	camera:
//	  width: 800
//	  height: 400
//	  fov: 60
//	  from: [0, 1.5, -5]
//	  to: [0, 1, 0]
//	  up: [0, 1, 0]
//	lights:
//	  - at: [-10, 10, -10]
//	    color: [1, 1, 1]
//	shapes:
//	  - type: plane
//	    material:
//	      texture: {type: checkers, a: [1, 1, 1], b: [0.2, 0.2, 0.2]}
//	  - type: sphere
//	    transform:
//	      - scale: [0.5, 0.5, 0.5]
//	      - translate: [-1.5, 0.5, 0]
//	    material:
//	      texture: [0.8, 1, 0.6]
//	      diffuse: 0.7
//	      specular: 0.2

type sceneFile struct {
	Camera cameraConfig  `yaml:"camera"`
	Lights []lightConfig `yaml:"lights"`
	Shapes []shapeConfig `yaml:"shapes"`
}

type cameraConfig struct {
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	FOV    float64     `yaml:"fov"`
	From   *[3]float64 `yaml:"from"`
	To     [3]float64  `yaml:"to"`
	Up     *[3]float64 `yaml:"up"`
}

type lightConfig struct {
	At    [3]float64  `yaml:"at"`
	Color *[3]float64 `yaml:"color"`
}

type shapeConfig struct {
	Type      string          `yaml:"type"`
	Transform []transformOp   `yaml:"transform"`
	Material  *materialConfig `yaml:"material"`
}

type materialConfig struct {
	Texture   *textureConfig `yaml:"texture"`
	Ambient   *float64       `yaml:"ambient"`
	Diffuse   *float64       `yaml:"diffuse"`
	Specular  *float64       `yaml:"specular"`
	Shininess *float64       `yaml:"shininess"`
}

// textureConfig is either a bare [r, g, b] sequence (a solid color) or a
// mapping with a pattern type and two child textures, themselves nested
// textureConfigs.
type textureConfig struct {
	solid     *Color
	Type      string         `yaml:"type"`
	A         *textureConfig `yaml:"a"`
	B         *textureConfig `yaml:"b"`
	Transform []transformOp  `yaml:"transform"`
}

func (t *textureConfig) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.SequenceNode {
		var rgb [3]float64
		if err := value.Decode(&rgb); err != nil {
			return err
		}
		t.solid = &Color{rgb[0], rgb[1], rgb[2]}
		return nil
	}
	type plain textureConfig
	return value.Decode((*plain)(t))
}

// transformOp is a single-key mapping such as {translate: [x, y, z]},
// {rotate-y: degrees} or {shear: [xy, xz, yx, yz, zx, zy]}.
type transformOp struct {
	name  string
	vec   [3]float64
	angle float64
	shear [6]float64
}

func (op *transformOp) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode || len(value.Content) != 2 {
		return fmt.Errorf("transform op must be a single-key mapping, got %q", value.Value)
	}
	key, val := value.Content[0], value.Content[1]
	op.name = key.Value
	switch op.name {
	case "translate", "scale":
		return val.Decode(&op.vec)
	case "rotate-x", "rotate-y", "rotate-z":
		return val.Decode(&op.angle)
	case "shear":
		return val.Decode(&op.shear)
	}
	return fmt.Errorf("unknown transform op %q", op.name)
}

func buildTransform(ops []transformOp) Matrix {
	m := Identity()
	for _, op := range ops {
		switch op.name {
		case "translate":
			m = m.Translate(V(op.vec[0], op.vec[1], op.vec[2]))
		case "scale":
			m = m.Scale(V(op.vec[0], op.vec[1], op.vec[2]))
		case "rotate-x":
			m = m.RotateX(Radians(op.angle))
		case "rotate-y":
			m = m.RotateY(Radians(op.angle))
		case "rotate-z":
			m = m.RotateZ(Radians(op.angle))
		case "shear":
			s := op.shear
			m = m.Shear(s[0], s[1], s[2], s[3], s[4], s[5])
		}
	}
	return m
}

func buildTexture(cfg *textureConfig) (Texture, error) {
	if cfg.solid != nil {
		return *cfg.solid, nil
	}
	if cfg.A == nil || cfg.B == nil {
		return nil, fmt.Errorf("pattern %q needs both a and b textures", cfg.Type)
	}
	a, err := buildTexture(cfg.A)
	if err != nil {
		return nil, err
	}
	b, err := buildTexture(cfg.B)
	if err != nil {
		return nil, err
	}

	var pattern *Pattern
	switch cfg.Type {
	case "stripes":
		pattern = NewStripes(a, b)
	case "gradient":
		pattern = NewGradient(a, b)
	case "ring":
		pattern = NewRing(a, b)
	case "checkers":
		pattern = NewCheckers(a, b)
	default:
		return nil, fmt.Errorf("unknown pattern type %q", cfg.Type)
	}
	if len(cfg.Transform) > 0 {
		pattern.SetTransform(buildTransform(cfg.Transform))
	}
	return pattern, nil
}

func buildMaterial(cfg *materialConfig) (Material, error) {
	m := DefaultMaterial()
	if cfg == nil {
		return m, nil
	}
	if cfg.Texture != nil {
		texture, err := buildTexture(cfg.Texture)
		if err != nil {
			return m, err
		}
		m.Texture = texture
	}
	if cfg.Ambient != nil {
		m.Ambient = *cfg.Ambient
	}
	if cfg.Diffuse != nil {
		m.Diffuse = *cfg.Diffuse
	}
	if cfg.Specular != nil {
		m.Specular = *cfg.Specular
	}
	if cfg.Shininess != nil {
		m.Shininess = *cfg.Shininess
	}
	return m, nil
}

func point(v [3]float64) Point {
	return Point{v[0], v[1], v[2]}
}

// ParseScene builds a world and camera from YAML scene data.
func ParseScene(data []byte) (*World, *Camera, error) {
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("parsing scene: %w", err)
	}

	world := NewWorld()
	for _, lc := range file.Lights {
		light := NewLight(point(lc.At), White)
		if lc.Color != nil {
			light.Color = Color{lc.Color[0], lc.Color[1], lc.Color[2]}
		}
		world.AddLight(light)
	}

	for i, sc := range file.Shapes {
		material, err := buildMaterial(sc.Material)
		if err != nil {
			return nil, nil, fmt.Errorf("shape %d: %w", i, err)
		}

		var shape Shape
		switch sc.Type {
		case "sphere":
			s := NewSphere()
			s.SetTransform(buildTransform(sc.Transform))
			s.SetMaterial(material)
			shape = s
		case "plane":
			p := NewPlane()
			p.SetTransform(buildTransform(sc.Transform))
			p.SetMaterial(material)
			shape = p
		default:
			return nil, nil, fmt.Errorf("shape %d: unknown type %q", i, sc.Type)
		}
		world.AddShape(shape)
	}

	cc := file.Camera
	if cc.Width <= 0 || cc.Height <= 0 {
		return nil, nil, fmt.Errorf("camera needs positive width and height")
	}
	if cc.FOV <= 0 {
		cc.FOV = 60
	}
	camera := NewCamera(cc.Width, cc.Height, cc.FOV)
	if cc.From != nil {
		up := V(0, 1, 0)
		if cc.Up != nil {
			up = V(cc.Up[0], cc.Up[1], cc.Up[2])
		}
		camera.Transform = LookAt(point(*cc.From), point(cc.To), up)
	}

	return world, camera, nil
}

// LoadScene reads and parses a YAML scene file.
func LoadScene(path string) (*World, *Camera, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return ParseScene(data)
}
