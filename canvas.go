package sorb

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"
	"strconv"
)

// Canvas is a raster of colors. Pixels start out black.
type Canvas struct {
	Width  int
	Height int
	Pixels []Color
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pixels: make([]Color, width*height),
	}
}

func (c *Canvas) checkBounds(x, y int) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		panic(fmt.Sprintf("sorb: pixel (%d, %d) outside %dx%d canvas", x, y, c.Width, c.Height))
	}
}

func (c *Canvas) PixelAt(x, y int) Color {
	c.checkBounds(x, y)
	return c.Pixels[y*c.Width+x]
}

func (c *Canvas) WritePixel(x, y int, color Color) {
	c.checkBounds(x, y)
	c.Pixels[y*c.Width+x] = color
}

func channel(v float64) int {
	return int(math.Round(Clamp(v*255, 0, 255)))
}

// WritePPM emits the canvas as plain-text P3 PPM: a header, then one line
// per pixel row with each channel as a decimal integer followed by a space.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p := c.Pixels[y*c.Width+x]
			bw.WriteString(strconv.Itoa(channel(p.R)))
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(channel(p.G)))
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(channel(p.B)))
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (c *Canvas) SavePPM(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return c.WritePPM(file)
}

// Image converts the canvas to an 8-bit image, clamping each channel.
func (c *Canvas) Image() *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			im.SetNRGBA(x, y, c.Pixels[y*c.Width+x].NRGBA())
		}
	}
	return im
}

func (c *Canvas) SavePNG(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, c.Image())
}
