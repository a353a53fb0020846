// Package texture generates the procedural textures used by the game,
// currently the segmented ball skin for the player sphere.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
)

// segmentColors are the eight wedge colors of the ball skin, clockwise from
// angle zero.
var segmentColors = [8]color.RGBA{
	{200, 50, 50, 255},
	{50, 50, 200, 255},
	{200, 200, 50, 255},
	{50, 200, 50, 255},
	{200, 50, 200, 255},
	{200, 120, 50, 255},
	{230, 230, 230, 255},
	{40, 40, 40, 255},
}

// Sphere renders a size x size ball texture split into eight colored
// wedges around the center. Pixels outside the inscribed circle are
// transparent white so the texture can be applied over any background.
func Sphere(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := float64(size) / 2
	radius := center

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - center
			dy := float64(y) + 0.5 - center

			if math.Hypot(dx, dy) > radius {
				img.SetRGBA(x, y, color.RGBA{255, 255, 255, 0})
				continue
			}

			angle := math.Atan2(dy, dx)
			if angle < 0 {
				angle += 2 * math.Pi
			}
			seg := int(angle / (2 * math.Pi) * 8)
			if seg > 7 {
				seg = 7
			}
			img.SetRGBA(x, y, segmentColors[seg])
		}
	}

	return img
}

// WritePNG encodes the image as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the image to a PNG file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WritePNG(f, img); err != nil {
		return err
	}
	return f.Close()
}
