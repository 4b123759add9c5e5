package imaging

// Image Decoding and Grayscale Conversion
//
// The classification engine operates on a plain 8-bit grayscale pixel grid
// and never touches files itself. This package is the caller-side glue that
// bridges the two: it decodes a raster file (PNG, JPEG, BMP or TIFF) and
// converts it to the single-channel representation the engine consumes.
//
// Conversion uses the ITU-R 601 luma weights via image/color.GrayModel, the
// same weighting used by common imaging toolkits for "L" mode conversion, so
// feature values stay comparable across sources.

import (
	"fmt"
	"image"
	"image/color"
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder registration
	_ "golang.org/x/image/tiff" // TIFF decoder registration
	_ "image/jpeg"
	_ "image/png"
)

// Grayscale is a decoded single-channel raster. Pix holds intensities in
// row-major order, one byte per pixel.
type Grayscale struct {
	Pix    []uint8
	Width  int
	Height int
}

// New allocates a zeroed grayscale raster of the given dimensions.
func New(width, height int) *Grayscale {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Grayscale{
		Pix:    make([]uint8, width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the intensity at (x, y). Callers are expected to stay in bounds.
func (g *Grayscale) At(x, y int) uint8 {
	return g.Pix[y*g.Width+x]
}

// Set stores an intensity at (x, y).
func (g *Grayscale) Set(x, y int, v uint8) {
	g.Pix[y*g.Width+x] = v
}

// FromImage converts any decoded image into an 8-bit grayscale raster.
func FromImage(img image.Image) *Grayscale {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	result := New(width, height)

	if gray, ok := img.(*image.Gray); ok {
		for y := 0; y < height; y++ {
			srcRow := gray.Pix[y*gray.Stride : y*gray.Stride+width]
			copy(result.Pix[y*width:(y+1)*width], srcRow)
		}
		return result
	}

	idx := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			result.Pix[idx] = gray.Y
			idx++
		}
	}
	return result
}

// LoadFile decodes an image file and converts it to grayscale.
func LoadFile(path string) (*Grayscale, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	return FromImage(img), nil
}
