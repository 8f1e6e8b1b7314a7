package main

import (
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"github.com/nfnt/resize"
	"github.com/swordkee/sorb"
)

var (
	scenePath = kingpin.Arg("scene", "Scene file (.yml, .yaml, .gltf or .glb).").Required().ExistingFile()
	output    = kingpin.Flag("out", "Output image path (.png or .ppm).").Short('o').Default("out.png").String()
	width     = kingpin.Flag("width", "Canvas width, overriding the scene file.").Short('w').Int()
	height    = kingpin.Flag("height", "Canvas height, overriding the scene file.").Short('h').Int()
	scale     = kingpin.Flag("scale", "Resample the output by this factor (PNG only).").Default("1").Float64()
)

func main() {
	log.SetFlags(0)
	kingpin.Parse()

	world, camera, err := loadScene(*scenePath)
	if err != nil {
		log.Fatal(err)
	}
	if *width > 0 {
		camera.Width = *width
	}
	if *height > 0 {
		camera.Height = *height
	}

	start := time.Now()
	canvas := camera.Render(world)
	log.Printf("rendered %dx%d in %s", camera.Width, camera.Height, time.Since(start).Round(time.Millisecond))

	if err := writeOutput(canvas, *output, *scale); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s", *output)
}

func loadScene(path string) (*sorb.World, *sorb.Camera, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return sorb.LoadScene(path)
	case ".gltf", ".glb":
		return sorb.LoadGLTFScene(path, 960, 540)
	}
	return nil, nil, fmt.Errorf("unsupported scene format %q", filepath.Ext(path))
}

func writeOutput(canvas *sorb.Canvas, path string, scale float64) error {
	if strings.ToLower(filepath.Ext(path)) == ".ppm" {
		return canvas.SavePPM(path)
	}

	var im image.Image = canvas.Image()
	if scale != 1 {
		w := uint(float64(canvas.Width) * scale)
		im = resize.Resize(w, 0, im, resize.Bilinear)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, im)
}
