package sorb

import (
	"fmt"
	"strings"

	"github.com/qmuntal/gltf"
)

// glTF scene import. glTF has no analytic primitives, so the importer uses a
// naming convention: nodes whose name starts with "sphere" or "plane" become
// the matching shape (with the node's TRS transform and the default
// material), nodes starting with "light" become white point lights at the
// node's position, and a camera node poses the render camera. Triangle
// meshes are ignored.

// LoadGLTFScene reads a .gltf or .glb file and builds a world and camera.
// Canvas dimensions come from the caller; glTF does not carry them.
func LoadGLTFScene(path string, width, height int) (*World, *Camera, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening gltf scene: %w", err)
	}
	return buildGLTFScene(doc, width, height)
}

func buildGLTFScene(doc *gltf.Document, width, height int) (*World, *Camera, error) {
	loader := &gltfLoader{doc: doc, world: NewWorld()}

	roots := rootNodes(doc)
	for _, index := range roots {
		loader.walkNode(index, Identity())
	}

	if len(loader.world.Lights) == 0 {
		// Same spirit as the default light fallback in mesh viewers: an
		// unlit scene renders pure black, which reads as a loader bug.
		loader.world.AddLight(NewLight(P(-10, 10, -10), White))
	}

	camera := NewCamera(width, height, 60)
	if loader.cameraNode != nil {
		camera.Transform = loader.cameraTransform
		if fov := loader.cameraFOV(); fov > 0 {
			camera.FOV = fov
		}
	}
	return loader.world, camera, nil
}

func rootNodes(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		return doc.Scenes[0].Nodes
	}
	all := make([]int, len(doc.Nodes))
	for i := range doc.Nodes {
		all[i] = i
	}
	return all
}

type gltfLoader struct {
	doc             *gltf.Document
	world           *World
	cameraNode      *gltf.Node
	cameraTransform Matrix
}

func (l *gltfLoader) walkNode(index int, parent Matrix) {
	if index >= len(l.doc.Nodes) {
		return
	}
	node := l.doc.Nodes[index]
	world := parent.Mul(nodeTransform(node))

	name := strings.ToLower(node.Name)
	switch {
	case node.Camera != nil:
		l.cameraNode = node
		l.cameraTransform = world
	case strings.HasPrefix(name, "sphere"):
		s := NewSphere()
		s.SetTransform(world)
		l.world.AddShape(s)
	case strings.HasPrefix(name, "plane"):
		p := NewPlane()
		p.SetTransform(world)
		l.world.AddShape(p)
	case strings.HasPrefix(name, "light"):
		position := world.MulPosition(Origin)
		l.world.AddLight(NewLight(position, White))
	}

	for _, child := range node.Children {
		l.walkNode(int(child), world)
	}
}

func (l *gltfLoader) cameraFOV() float64 {
	index := int(*l.cameraNode.Camera)
	if index >= len(l.doc.Cameras) {
		return 0
	}
	camera := l.doc.Cameras[index]
	if camera.Perspective == nil {
		return 0
	}
	return Degrees(float64(camera.Perspective.Yfov))
}

var gltfIdentity = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// nodeTransform builds the node's local matrix: either the explicit matrix
// or translation * rotation * scale, the glTF composition order.
func nodeTransform(node *gltf.Node) Matrix {
	if m := node.MatrixOrDefault(); m != gltfIdentity {
		// glTF matrices are column-major.
		return Matrix{
			m[0], m[4], m[8], m[12],
			m[1], m[5], m[9], m[13],
			m[2], m[6], m[10], m[14],
			m[3], m[7], m[11], m[15],
		}
	}

	t := node.TranslationOrDefault()
	r := node.RotationOrDefault()
	s := node.ScaleOrDefault()
	m := Scale(V(s[0], s[1], s[2]))
	m = quaternionMatrix(r[0], r[1], r[2], r[3]).Mul(m)
	return Translate(V(t[0], t[1], t[2])).Mul(m)
}

func quaternionMatrix(x, y, z, w float64) Matrix {
	return Matrix{
		1 - 2*(y*y+z*z), 2 * (x*y - z*w), 2 * (x*z + y*w), 0,
		2 * (x*y + z*w), 1 - 2*(x*x+z*z), 2 * (y*z - x*w), 0,
		2 * (x*z - y*w), 2 * (y*z + x*w), 1 - 2*(x*x+y*y), 0,
		0, 0, 0, 1,
	}
}
