package output

import (
	"bytes"
	"image/jpeg"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

func TestToByte(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected uint8
	}{
		{"black", 0, 0},
		{"white", 1, 255},
		{"quarter is half after gamma", 0.25, 128}, // sqrt(0.25)*255 = 127.5 rounds up
		{"small value", 0.01, 26},                  // sqrt(0.01)*255 = 25.5 rounds up
		{"overexposed clamps", 4.2, 255},
		{"negative clamps", -0.5, 0},
		{"NaN is black", math.NaN(), 0},
		{"infinity clamps", math.Inf(1), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToByte(tt.input); got != tt.expected {
				t.Errorf("ToByte(%v) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func testPixels() []core.Color {
	// 2x2 image, row-major from the top-left
	return []core.Color{
		core.NewColor(1, 1, 1), core.NewColor(1, 0, 0),
		core.NewColor(0, 1, 0), core.NewColor(0, 0, 1),
	}
}

func TestToImage_RowMajorTopLeft(t *testing.T) {
	img, err := ToImage(testPixels(), 2, 2)
	if err != nil {
		t.Fatalf("ToImage failed: %v", err)
	}

	tests := []struct {
		x, y    int
		r, g, b uint8
	}{
		{0, 0, 255, 255, 255},
		{1, 0, 255, 0, 0},
		{0, 1, 0, 255, 0},
		{1, 1, 0, 0, 255},
	}
	for _, tt := range tests {
		c := img.NRGBAAt(tt.x, tt.y)
		if c.R != tt.r || c.G != tt.g || c.B != tt.b || c.A != 255 {
			t.Errorf("Pixel (%d,%d): expected (%d,%d,%d), got %v", tt.x, tt.y, tt.r, tt.g, tt.b, c)
		}
	}
}

func TestToImage_SizeMismatch(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"too few pixels", 3, 2},
		{"too many pixels", 1, 1},
		{"zero width", 0, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ToImage(testPixels(), tt.width, tt.height); err == nil {
				t.Error("Expected error, got nil")
			}
		})
	}
}

func TestWritePNG_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePNG(&buf, testPixels(), 2, 2); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 2x2 image, got %v", img.Bounds())
	}
	r, g, b, _ := img.At(1, 0).RGBA()
	if r != 0xffff || g != 0 || b != 0 {
		t.Errorf("Expected red at (1,0), got (%d,%d,%d)", r, g, b)
	}
}

func TestWriteJPEG_Decodes(t *testing.T) {
	pixels := make([]core.Color, 16*16)
	for i := range pixels {
		pixels[i] = core.NewColor(0.25, 0.25, 0.25)
	}

	var buf bytes.Buffer
	if err := WriteJPEG(&buf, pixels, 16, 16); err != nil {
		t.Fatalf("WriteJPEG failed: %v", err)
	}
	img, err := jpeg.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode JPEG: %v", err)
	}

	// Lossy, but a flat gray survives within a couple of levels
	r, _, _, _ := img.At(8, 8).RGBA()
	if diff := int(r>>8) - 128; diff < -3 || diff > 3 {
		t.Errorf("Expected gray near 128, got %d", r>>8)
	}
}

func TestWritePPM(t *testing.T) {
	var buf bytes.Buffer
	pixels := []core.Color{core.NewColor(0.25, 1, 0), core.NewColor(2, -1, 0.01)}
	if err := WritePPM(&buf, pixels, 2, 1); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := "P3\n2 1\n255\n128 255 0\n255 0 26\n"
	if buf.String() != expected {
		t.Errorf("Expected %q, got %q", expected, buf.String())
	}
}

func TestWriterFor(t *testing.T) {
	tests := []struct {
		path      string
		expectErr bool
	}{
		{"render.png", false},
		{"render.PNG", false},
		{"render.jpg", false},
		{"render.jpeg", false},
		{"out/render.ppm", false},
		{"render.gif", true},
		{"render", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := WriterFor(tt.path)
			if (err != nil) != tt.expectErr {
				t.Errorf("WriterFor(%q) error = %v, expectErr %t", tt.path, err, tt.expectErr)
			}
		})
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"render.png", "render.jpg", "render.ppm"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := Save(path, testPixels(), 2, 2); err != nil {
				t.Fatalf("Save failed: %v", err)
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatalf("Saved file missing: %v", err)
			}
			if info.Size() == 0 {
				t.Error("Saved file is empty")
			}
		})
	}

	if err := Save(filepath.Join(dir, "render.bmp"), testPixels(), 2, 2); err == nil {
		t.Error("Expected error for unsupported extension")
	}
	err := Save(filepath.Join(dir, "missing", "render.png"), testPixels(), 2, 2)
	if err == nil || !strings.Contains(err.Error(), "failed to create") {
		t.Errorf("Expected create error for missing directory, got %v", err)
	}
}
