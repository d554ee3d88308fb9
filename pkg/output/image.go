package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// JPEGQuality is the encoder quality used by WriteJPEG
const JPEGQuality = 90

// ToByte maps a linear channel value to 8 bits: gamma 2 (square root), clamp to [0, 1],
// then round. NaN maps to 0.
func ToByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(math.Sqrt(v) * 255))
}

// ToRGBA converts a linear color to a display color with gamma correction and clamping
func ToRGBA(c core.Color) color.NRGBA {
	return color.NRGBA{
		R: ToByte(c.R()),
		G: ToByte(c.G()),
		B: ToByte(c.B()),
		A: 255,
	}
}

// ToImage converts a row-major pixel buffer, top row first, to an image
func ToImage(pixels []core.Color, width, height int) (*image.NRGBA, error) {
	if err := checkSize(pixels, width, height); err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, ToRGBA(pixels[y*width+x]))
		}
	}
	return img, nil
}

// WritePNG encodes the pixels as PNG
func WritePNG(w io.Writer, pixels []core.Color, width, height int) error {
	img, err := ToImage(pixels, width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WriteJPEG encodes the pixels as JPEG
func WriteJPEG(w io.Writer, pixels []core.Color, width, height int) error {
	img, err := ToImage(pixels, width, height)
	if err != nil {
		return err
	}
	return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
}

// WritePPM encodes the pixels as plain-text PPM (P3), one pixel per line
func WritePPM(w io.Writer, pixels []core.Color, width, height int) error {
	if err := checkSize(pixels, width, height); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)
	for _, c := range pixels {
		fmt.Fprintf(bw, "%d %d %d\n", ToByte(c.R()), ToByte(c.G()), ToByte(c.B()))
	}
	return bw.Flush()
}

// Writer encodes a pixel buffer to w
type Writer func(w io.Writer, pixels []core.Color, width, height int) error

// WriterFor returns the encoder matching the file extension of path
func WriterFor(path string) (Writer, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return WritePNG, nil
	case ".jpg", ".jpeg":
		return WriteJPEG, nil
	case ".ppm":
		return WritePPM, nil
	default:
		return nil, fmt.Errorf("unsupported image format %q", ext)
	}
}

// Save writes the pixels to path, choosing the format from its extension
func Save(path string, pixels []core.Color, width, height int) error {
	write, err := WriterFor(path)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	if err := write(file, pixels, width, height); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return file.Close()
}

func checkSize(pixels []core.Color, width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("image size must be at least 1x1, got %dx%d", width, height)
	}
	if len(pixels) != width*height {
		return fmt.Errorf("expected %d pixels for %dx%d image, got %d", width*height, width, height, len(pixels))
	}
	return nil
}
